/*
 * cell.go, part of gosoap.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

type cellShape int

const (
	infinite cellShape = iota
	orthorhombic
	triclinic
)

//Cell describes the periodic repeat structure of a simulation box. It can be
//infinite (non-periodic), orthorhombic (three perpendicular vectors, which
//includes cubic) or fully triclinic. A Cell is immutable after construction
//and safe to share between goroutines.
type Cell struct {
	shape cellShape
	//rows of m are the cell vectors a, b, c. nil for an infinite cell.
	m   *mat.Dense
	inv *mat.Dense
	//orthorhombic edge lengths, kept out of the matrix for the fast path.
	lens [3]float64
}

//InfiniteCell returns a non-periodic cell. Its VectorImage is the identity.
func InfiniteCell() *Cell {
	return &Cell{shape: infinite}
}

//CubicCell returns a periodic cubic cell with edge length a.
func CubicCell(a float64) (*Cell, error) {
	return OrthorhombicCell(a, a, a)
}

//OrthorhombicCell returns a periodic cell with perpendicular edges of
//lengths a, b and c.
func OrthorhombicCell(a, b, c float64) (*Cell, error) {
	for _, l := range []float64{a, b, c} {
		if l <= 0 || math.IsInf(l, 0) || math.IsNaN(l) {
			return nil, Error{fmt.Sprintf("cell lengths must be positive and finite, got (%v,%v,%v)", a, b, c), []string{"OrthorhombicCell"}}
		}
	}
	m := mat.NewDense(3, 3, []float64{a, 0, 0, 0, b, 0, 0, 0, c})
	cell := &Cell{shape: orthorhombic, m: m, lens: [3]float64{a, b, c}}
	cell.inv = mat.NewDense(3, 3, nil)
	cell.inv.Inverse(m) //diagonal, can't fail for the lengths checked above
	return cell, nil
}

//TriclinicCell returns a periodic cell whose repeat vectors are the rows of
//matrix. The matrix must be non-singular.
func TriclinicCell(matrix *mat.Dense) (*Cell, error) {
	r, c := matrix.Dims()
	if r != 3 || c != 3 {
		return nil, Error{fmt.Sprintf("cell matrix must be 3x3, got %dx%d", r, c), []string{"TriclinicCell"}}
	}
	m := mat.DenseCopyOf(matrix)
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(m); err != nil {
		return nil, Error{"cell matrix is singular: " + err.Error(), []string{"TriclinicCell"}}
	}
	cell := &Cell{shape: triclinic, m: m, inv: inv}
	return cell, nil
}

//Periodic returns whether the cell has periodic boundary conditions.
func (C *Cell) Periodic() bool {
	return C.shape != infinite
}

//Matrix returns a copy of the cell matrix (rows are the cell vectors), or
//nil for an infinite cell.
func (C *Cell) Matrix() *mat.Dense {
	if C.m == nil {
		return nil
	}
	return mat.DenseCopyOf(C.m)
}

//Volume returns the cell volume, or +Inf for an infinite cell.
func (C *Cell) Volume() float64 {
	if C.shape == infinite {
		return math.Inf(1)
	}
	return math.Abs(mat.Det(C.m))
}

//VectorImage replaces *v with its minimum-image representative under the
//periodicity of the cell. For an infinite cell it is the identity. Only the
//nearest periodic replica is considered (see MaxImageCutoff).
func (C *Cell) VectorImage(v *Vector) {
	switch C.shape {
	case infinite:
		return
	case orthorhombic:
		v[0] -= C.lens[0] * math.Round(v[0]/C.lens[0])
		v[1] -= C.lens[1] * math.Round(v[1]/C.lens[1])
		v[2] -= C.lens[2] * math.Round(v[2]/C.lens[2])
	case triclinic:
		//fractional coordinates f = v * m^-1, with v a row vector
		var f Vector
		for j := 0; j < 3; j++ {
			f[j] = math.Round(v[0]*C.inv.At(0, j) + v[1]*C.inv.At(1, j) + v[2]*C.inv.At(2, j))
		}
		for j := 0; j < 3; j++ {
			v[j] -= f[0]*C.m.At(0, j) + f[1]*C.m.At(1, j) + f[2]*C.m.At(2, j)
		}
	}
}

//MaxImageCutoff returns the largest pair cutoff for which the single
//minimum-image convention used by VectorImage finds every neighbor: half the
//smallest distance between opposite cell faces. Neighbor searches beyond
//this radius under-count pairs, since replicas past the nearest one are
//never considered. Returns +Inf for an infinite cell.
func (C *Cell) MaxImageCutoff() float64 {
	switch C.shape {
	case infinite:
		return math.Inf(1)
	case orthorhombic:
		return math.Min(C.lens[0], math.Min(C.lens[1], C.lens[2])) / 2
	default:
		//the distance between the pair of faces spanned by two cell vectors
		//is volume / area of the face
		vol := C.Volume()
		a := rowVec(C.m, 0)
		b := rowVec(C.m, 1)
		c := rowVec(C.m, 2)
		min := vol / cross(b, c).Norm()
		if d := vol / cross(c, a).Norm(); d < min {
			min = d
		}
		if d := vol / cross(a, b).Norm(); d < min {
			min = d
		}
		return min / 2
	}
}

func rowVec(m *mat.Dense, i int) Vector {
	return Vector{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
}

func cross(a, b Vector) Vector {
	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

//Errors

//Error is the error type for the v3 package, implementing the gosoap
//Decorate convention.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate adds dec to the "call trail" of the error and returns the
//resulting slice. An empty dec just returns the current trail.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
