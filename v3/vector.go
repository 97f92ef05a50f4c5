/*
 * vector.go, part of gosoap.
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

//Package v3 provides the small geometric primitives used by gosoap: a plain
//3D vector value type and the periodic unit cell with its minimum-image
//convention. Vectors are values, not gonum matrices: they are created and
//passed around once per atom pair in the hot loop, so they must not allocate.
package v3

import "math"

//Vector is a point or displacement in 3D space. It is an immutable value
//type; all methods return new values.
type Vector [3]float64

//NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

//Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

//Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

//Scale returns c*v.
func (v Vector) Scale(c float64) Vector {
	return Vector{c * v[0], c * v[1], c * v[2]}
}

//Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v[0], -v[1], -v[2]}
}

//Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

//Norm2 returns the squared Euclidean norm of v. Preferred over Norm when
//only comparisons against a squared cutoff are needed.
func (v Vector) Norm2() float64 {
	return v.Dot(v)
}

//Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.Norm2())
}
