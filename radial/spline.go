/*
 * spline.go, part of gosoap.
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
	"math"
	"sync"

	soap "github.com/rmera/gosoap"
	"gonum.org/v1/gonum/mat"
)

//number of nodes the adaptive construction starts from, and the deepest
//interval halving it attempts before giving up on the accuracy target.
const (
	splineInitialNodes = 11
	splineMaxDepth     = 18
)

//splineNode is one interpolation anchor: a distance plus the full value and
//gradient tables there. Storing whole tables per node lets one spline
//approximate every (l, n) cell simultaneously as a function of distance.
type splineNode struct {
	x                 float64
	values, gradients *mat.Dense
}

//Spline approximates a reference radial integral by piecewise cubic Hermite
//interpolation between stored nodes, trading a small controlled error for
//removing the closed-form recurrence from the per-pair cost. Immutable
//after construction and safe to share across goroutines.
type Spline struct {
	params Parameters
	nodes  []splineNode
	//uniform-spacing estimate used to guess the bracketing interval before
	//falling back to binary search
	dx float64
	//out-of-range distances are clamped; say so once, not once per pair
	clampWarning sync.Once
}

//NewSplineFromEvaluator builds a spline over [0, cutoff] reproducing the
//reference evaluator within accuracy (maximum absolute error in any value
//cell, checked at interval midpoints). Node spacing starts uniform and each
//failing interval is halved until it passes; if an interval still fails
//after being halved splineMaxDepth times, the accuracy target is treated as
//unreachable and an error is returned rather than a looser spline.
func NewSplineFromEvaluator(reference Integral, params Parameters, accuracy float64) (*Spline, error) {
	if err := params.validate(); err != nil {
		return nil, errDecorate(err, "NewSplineFromEvaluator")
	}
	if !(accuracy > 0) {
		return nil, errorf("NewSplineFromEvaluator", "spline accuracy must be positive, got %v", accuracy)
	}
	sp := &Spline{params: params}
	nodes := make([]splineNode, splineInitialNodes)
	for i := range nodes {
		x := params.Cutoff * float64(i) / float64(splineInitialNodes-1)
		nodes[i] = evalNode(reference, params, x)
	}
	refined := make([]splineNode, 0, len(nodes))
	for i := 0; i < len(nodes)-1; i++ {
		refined = append(refined, nodes[i])
		inner, err := refineInterval(reference, params, nodes[i], nodes[i+1], accuracy, 0)
		if err != nil {
			return nil, errDecorate(err, "NewSplineFromEvaluator")
		}
		refined = append(refined, inner...)
	}
	refined = append(refined, nodes[len(nodes)-1])
	sp.nodes = refined
	sp.dx = params.Cutoff / float64(len(refined)-1)
	soap.Log(soap.LogLevelDebug, "radial spline over [0, %v] built with %d nodes for accuracy %v", params.Cutoff, len(refined), accuracy)
	return sp, nil
}

//refineInterval returns the extra nodes (exclusive of the endpoints, in
//order) needed inside [lo.x, hi.x] for the Hermite interpolant to match the
//reference at midpoints within accuracy.
func refineInterval(reference Integral, params Parameters, lo, hi splineNode, accuracy float64, depth int) ([]splineNode, error) {
	mid := evalNode(reference, params, (lo.x+hi.x)/2)
	if hermiteMidpointError(lo, hi, mid) <= accuracy {
		return nil, nil
	}
	if depth >= splineMaxDepth {
		return nil, errorf("refineInterval",
			"could not meet spline accuracy %v: interval [%v, %v] still fails after %d subdivisions",
			accuracy, lo.x, hi.x, depth)
	}
	left, err := refineInterval(reference, params, lo, mid, accuracy, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := refineInterval(reference, params, mid, hi, accuracy, depth+1)
	if err != nil {
		return nil, err
	}
	out := append(left, mid)
	return append(out, right...), nil
}

//hermiteMidpointError is the largest absolute difference, over all value
//cells, between the reference table at the interval midpoint and the cubic
//Hermite interpolant of the endpoints evaluated there.
func hermiteMidpointError(lo, hi, mid splineNode) float64 {
	h := hi.x - lo.x
	//t = 1/2: h00 = h01 = 1/2, h10 = -h11 = 1/8
	worst := 0.0
	rows, cols := mid.values.Dims()
	for l := 0; l < rows; l++ {
		for n := 0; n < cols; n++ {
			interp := 0.5*(lo.values.At(l, n)+hi.values.At(l, n)) +
				0.125*h*(lo.gradients.At(l, n)-hi.gradients.At(l, n))
			if e := math.Abs(interp - mid.values.At(l, n)); e > worst {
				worst = e
			}
		}
	}
	return worst
}

func evalNode(reference Integral, params Parameters, x float64) splineNode {
	rows, cols := params.shape()
	node := splineNode{
		x:         x,
		values:    mat.NewDense(rows, cols, nil),
		gradients: mat.NewDense(rows, cols, nil),
	}
	reference.Compute(x, node.values, node.gradients)
	return node
}

//NewSplineFromTabulated builds a spline whose nodes are exactly the
//supplied points: no refinement happens, and the accuracy is whatever the
//caller's sampling provides. The points must be at least two, sorted by
//strictly increasing distance, and every value/gradient table must be
//shaped (MaxAngular+1) x MaxRadial.
func NewSplineFromTabulated(points []TabulatedPoint, params Parameters) (*Spline, error) {
	if err := params.validate(); err != nil {
		return nil, errDecorate(err, "NewSplineFromTabulated")
	}
	if len(points) < 2 {
		return nil, errorf("NewSplineFromTabulated", "need at least 2 tabulated points, got %d", len(points))
	}
	rows, cols := params.shape()
	sp := &Spline{params: params, nodes: make([]splineNode, len(points))}
	for i, pt := range points {
		if i > 0 && pt.Distance <= points[i-1].Distance {
			return nil, errorf("NewSplineFromTabulated", "tabulated distances must be strictly increasing: point %d has %v after %v", i, pt.Distance, points[i-1].Distance)
		}
		if pt.Distance < 0 || math.IsNaN(pt.Distance) {
			return nil, errorf("NewSplineFromTabulated", "tabulated distance %v at point %d is not a non-negative number", pt.Distance, i)
		}
		values, err := denseFromRows(pt.Values, rows, cols, i, "values")
		if err != nil {
			return nil, errDecorate(err, "NewSplineFromTabulated")
		}
		gradients, err := denseFromRows(pt.Gradients, rows, cols, i, "gradients")
		if err != nil {
			return nil, errDecorate(err, "NewSplineFromTabulated")
		}
		sp.nodes[i] = splineNode{x: pt.Distance, values: values, gradients: gradients}
	}
	sp.dx = (sp.nodes[len(sp.nodes)-1].x - sp.nodes[0].x) / float64(len(sp.nodes)-1)
	return sp, nil
}

func denseFromRows(table [][]float64, rows, cols, point int, what string) (*mat.Dense, error) {
	if len(table) != rows {
		return nil, errorf("denseFromRows", "tabulated point %d has %d %s rows, want %d", point, len(table), what, rows)
	}
	out := mat.NewDense(rows, cols, nil)
	for l, row := range table {
		if len(row) != cols {
			return nil, errorf("denseFromRows", "tabulated point %d, %s row %d has %d columns, want %d", point, what, l, len(row), cols)
		}
		for n, v := range row {
			out.Set(l, n, v)
		}
	}
	return out, nil
}

//Nodes returns the number of interpolation nodes.
func (S *Spline) Nodes() int { return len(S.nodes) }

//Compute writes the interpolated radial integral at distance into values,
//and the derivative of the interpolant into gradients if non-nil. Distances
//outside the node range are clamped to the nearest node (with a one-time
//warning through the diagnostic channel); the spline never extrapolates.
//Implements Integral.
func (S *Spline) Compute(distance float64, values, gradients *mat.Dense) {
	checkComputeArgs(S.params, distance, values, gradients)
	first, last := S.nodes[0].x, S.nodes[len(S.nodes)-1].x
	if distance < first || distance > last {
		S.clampWarning.Do(func() {
			soap.Log(soap.LogLevelWarn, "radial spline evaluated at %v, outside its range [%v, %v]; clamping to the boundary node", distance, first, last)
		})
		if distance < first {
			distance = first
		} else {
			distance = last
		}
	}
	lo := S.bsearch(distance)
	n0, n1 := &S.nodes[lo], &S.nodes[lo+1]
	h := n1.x - n0.x
	t := (distance - n0.x) / h
	//cubic Hermite basis and its derivative
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	d00 := (6*t2 - 6*t) / h
	d10 := (3*t2 - 4*t + 1)
	d01 := (6*t - 6*t2) / h
	d11 := (3*t2 - 2*t)
	rows, cols := S.params.shape()
	for l := 0; l < rows; l++ {
		for n := 0; n < cols; n++ {
			y0, y1 := n0.values.At(l, n), n1.values.At(l, n)
			g0, g1 := n0.gradients.At(l, n), n1.gradients.At(l, n)
			values.Set(l, n, h00*y0+h10*h*g0+h01*y1+h11*h*g1)
			if gradients != nil {
				gradients.Set(l, n, d00*y0+d10*g0+d01*y1+d11*g1)
			}
		}
	}
}

//bsearch returns the index of the interval [nodes[i].x, nodes[i+1].x]
//bracketing x, guessing from uniform spacing first (most splines are close
//to uniform) and falling back to binary search.
func (S *Spline) bsearch(x float64) int {
	if S.dx > 0 {
		guess := int((x - S.nodes[0].x) / S.dx)
		if guess >= 0 && guess < len(S.nodes)-1 &&
			S.nodes[guess].x <= x && x <= S.nodes[guess+1].x {
			return guess
		}
	}
	lo, hi := 0, len(S.nodes)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= S.nodes[mid].x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
