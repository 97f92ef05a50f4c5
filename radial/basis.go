/*
 * basis.go, part of gosoap.
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

package radial

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Parameters control the shape and support of the radial integral.
type Parameters struct {
	//MaxRadial is the number of radial channels n. Must be at least 1.
	MaxRadial int
	//MaxAngular is the largest angular order l; the tables hold
	//MaxAngular+1 rows.
	MaxAngular int
	//AtomicGaussianWidth is the width sigma of the Gaussian density placed
	//on each atom. Zero selects the delta-density integral, where the basis
	//function is evaluated directly at the pair distance.
	AtomicGaussianWidth float64
	//Cutoff is the maximal pair distance; it bounds the support of the
	//basis and the valid argument range of Compute.
	Cutoff float64
}

//maxRadialCap bounds MaxRadial so that evaluators can keep their per-call
//scratch on the stack (Compute must not allocate).
const maxRadialCap = 64

func (p Parameters) validate() error {
	if p.MaxRadial < 1 || p.MaxRadial > maxRadialCap {
		return errorf("Parameters", "MaxRadial must be in [1, %d], got %d", maxRadialCap, p.MaxRadial)
	}
	if p.MaxAngular < 0 {
		return errorf("Parameters", "MaxAngular must be non-negative, got %d", p.MaxAngular)
	}
	if !(p.Cutoff > 0) || math.IsInf(p.Cutoff, 0) {
		return errorf("Parameters", "Cutoff must be positive and finite, got %v", p.Cutoff)
	}
	if p.AtomicGaussianWidth < 0 || math.IsInf(p.AtomicGaussianWidth, 0) || math.IsNaN(p.AtomicGaussianWidth) {
		return errorf("Parameters", "AtomicGaussianWidth must be zero or positive, got %v", p.AtomicGaussianWidth)
	}
	return nil
}

//shape returns the dimensions of the value and gradient tables.
func (p Parameters) shape() (rows, cols int) {
	return p.MaxAngular + 1, p.MaxRadial
}

//Basis is the closed choice of radial basis. The two implementations are
//GtoBasis and TabulatedBasis; the interface is sealed.
type Basis interface {
	sealedBasis()
}

//GtoBasis selects the analytic Gaussian-type-orbital basis, optionally
//approximated by a cubic spline built to SplineAccuracy (the maximal
//absolute error allowed in any table cell).
type GtoBasis struct {
	Splined        bool
	SplineAccuracy float64
}

func (GtoBasis) sealedBasis() {}

//TabulatedBasis selects a spline through user-supplied points. No adaptive
//refinement happens: the accuracy is whatever the caller's sampling
//provides.
type TabulatedBasis struct {
	Points []TabulatedPoint
}

func (TabulatedBasis) sealedBasis() {}

//TabulatedPoint is one user-supplied spline node: the full value and
//gradient tables at one distance. Rows are angular orders l, columns radial
//channels n.
type TabulatedPoint struct {
	Distance  float64     `json:"distance"`
	Values    [][]float64 `json:"values"`
	Gradients [][]float64 `json:"gradients"`
}

//Integral is the capability contract of a radial-integral evaluator: write,
//for every angular order l in [0, MaxAngular] and radial channel n in
//[0, MaxRadial), the value I_nl(distance) into values, and the derivative
//dI_nl/dr into gradients when gradients is non-nil. Both matrices must be
//shaped (MaxAngular+1) x MaxRadial.
//
//Implementations are immutable after construction, never allocate in
//Compute, and are safe to call concurrently from several goroutines as long
//as each call gets its own output matrices (a Cache provides that).
type Integral interface {
	Compute(distance float64, values, gradients *mat.Dense)
}

//Errors

//Error is the error type of the radial package, implementing the gosoap
//Decorate convention.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate adds dec to the call trail of the error and returns the resulting
//trail.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func errorf(origin, format string, args ...interface{}) Error {
	return Error{message: fmt.Sprintf(format, args...), deco: []string{origin}}
}

//decorable is what every error of this library implements; see the root
//package.
type decorable interface {
	error
	Decorate(string) []string
}

//errDecorate decorates err with the caller's name. Calling it with a
//foreign error is a bug and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(decorable)
	err2.Decorate(caller)
	return err2
}
