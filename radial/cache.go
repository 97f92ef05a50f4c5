/*
 * cache.go, part of gosoap.
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
	"gonum.org/v1/gonum/mat"
)

//Cache owns one radial-integral evaluator together with preallocated output
//buffers, and is the unit actually invoked once per atom pair in the hot
//loop. The buffers are overwritten by every Compute call, so a Cache must
//not be shared between goroutines: the evaluator inside is immutable and
//shared freely, the Cache is per worker.
type Cache struct {
	code      Integral
	values    *mat.Dense
	gradients *mat.Dense
}

//NewCache picks the concrete evaluator for the given basis and parameters:
//the analytic GTO directly, the GTO behind an adaptively built spline, or a
//spline through user-tabulated points. Configuration problems (bad
//parameters, malformed points, unreachable spline accuracy) are reported
//here, at construction; Compute cannot fail afterwards.
func NewCache(basis Basis, params Parameters) (*Cache, error) {
	var code Integral
	switch b := basis.(type) {
	case GtoBasis:
		gto, err := NewGto(params)
		if err != nil {
			return nil, errDecorate(err, "NewCache")
		}
		if b.Splined {
			spline, err := NewSplineFromEvaluator(gto, params, b.SplineAccuracy)
			if err != nil {
				return nil, errDecorate(err, "NewCache")
			}
			code = spline
		} else {
			code = gto
		}
	case TabulatedBasis:
		spline, err := NewSplineFromTabulated(b.Points, params)
		if err != nil {
			return nil, errDecorate(err, "NewCache")
		}
		code = spline
	default:
		return nil, errorf("NewCache", "unknown radial basis variant %T", basis)
	}
	rows, cols := params.shape()
	return &Cache{
		code:      code,
		values:    mat.NewDense(rows, cols, nil),
		gradients: mat.NewDense(rows, cols, nil),
	}, nil
}

//Compute evaluates the radial integral at distance into the owned buffers.
//Gradients are skipped entirely unless wantGradients is set; they roughly
//double the per-call cost.
func (C *Cache) Compute(distance float64, wantGradients bool) {
	if wantGradients {
		C.code.Compute(distance, C.values, C.gradients)
	} else {
		C.code.Compute(distance, C.values, nil)
	}
}

//Values returns the value table written by the last Compute call: rows are
//angular orders l, columns radial channels n. The matrix is owned by the
//Cache and overwritten by the next Compute; treat it as read-only.
func (C *Cache) Values() *mat.Dense { return C.values }

//Gradients returns the gradient table written by the last Compute call with
//wantGradients set. Same ownership rules as Values.
func (C *Cache) Gradients() *mat.Dense { return C.gradients }

//Evaluator returns the immutable evaluator inside the cache. Unlike the
//Cache itself it can be shared across goroutines, and it is what
//SampleEvaluator and CompareEvaluators want.
func (C *Cache) Evaluator() Integral { return C.code }
