/*
 * doc.go, part of gosoap.
 *
 * Copyright 2023 The gosoap developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package radial evaluates SOAP radial integrals: for one inter-atomic
//distance, a dense (max_angular+1) x max_radial table of radial
//basis-function values, and optionally their distance-gradients.
//
//The entry point is Cache, which picks the concrete evaluator for a Basis
//(closed-form GTO, spline-accelerated GTO, or user-tabulated spline) and
//owns the preallocated output buffers. Evaluators themselves are immutable
//after construction and safe to share between goroutines; the mutable
//buffers live in the Cache, which is why each worker needs its own Cache.
//
//This is the hot loop of the descriptor pipeline: Compute runs once per atom
//pair per structure and does not allocate.
package radial
