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

//Package soap holds the per-pair numeric core used to build SOAP-type
//atomic-environment descriptors: atomic systems under periodic boundary
//conditions, neighbor enumeration within a cutoff with minimum-image
//displacement vectors, and (in the radial subpackage) the radial-integral
//engine evaluating dense tables of basis-function values and gradients per
//inter-atomic distance.
//
//The package also hosts the two process-wide facilities shared by the
//subpackages: the Error/Decorate error convention and the diagnostic
//callback channel (see SetLogCallback).
//
//Higher-level descriptor assembly, which combines the radial tables with
//spherical harmonics, is a consumer of this package and lives elsewhere.
package soap
