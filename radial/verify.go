/*
 * verify.go, part of gosoap.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//ErrorStats summarizes the absolute value-cell differences between two
//evaluators over a sampled distance range.
type ErrorStats struct {
	Max    float64
	Mean   float64
	StdDev float64
	//distance and (l, n) cell where Max happened
	WorstDistance float64
	WorstL        int
	WorstN        int
}

//CompareEvaluators samples a and b at npoints uniformly spaced distances
//over [0, cutoff] and returns statistics of |a - b| over every value cell
//and distance. It is the tool used to verify a spline against its
//reference; it allocates and is not meant for hot loops.
func CompareEvaluators(a, b Integral, params Parameters, npoints int) (ErrorStats, error) {
	if err := params.validate(); err != nil {
		return ErrorStats{}, errDecorate(err, "CompareEvaluators")
	}
	if npoints < 2 {
		return ErrorStats{}, errorf("CompareEvaluators", "need at least 2 sample points, got %d", npoints)
	}
	rows, cols := params.shape()
	va := mat.NewDense(rows, cols, nil)
	vb := mat.NewDense(rows, cols, nil)
	diffs := make([]float64, 0, npoints*rows*cols)
	var st ErrorStats
	for i := 0; i < npoints; i++ {
		x := params.Cutoff * float64(i) / float64(npoints-1)
		a.Compute(x, va, nil)
		b.Compute(x, vb, nil)
		for l := 0; l < rows; l++ {
			for n := 0; n < cols; n++ {
				d := va.At(l, n) - vb.At(l, n)
				if d < 0 {
					d = -d
				}
				if d > st.Max {
					st.Max = d
					st.WorstDistance = x
					st.WorstL = l
					st.WorstN = n
				}
				diffs = append(diffs, d)
			}
		}
	}
	st.Max = floats.Max(diffs)
	st.Mean = stat.Mean(diffs, nil)
	st.StdDev = stat.StdDev(diffs, nil)
	return st, nil
}
