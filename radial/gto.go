/*
 * gto.go, part of gosoap.
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

	"gonum.org/v1/gonum/mat"
)

//Gto evaluates the radial integral against the Gaussian-type-orbital basis
//R_n(r) = N_n r^n exp(-r^2 / 2 sigma_n^2), with per-channel widths
//sigma_n = cutoff * max(sqrt(n), 1) / max_radial, orthonormalized with the
//symmetric (Loewdin) S^-1/2 of the analytic overlap matrix.
//
//With a zero atomic Gaussian width the integral is the basis function
//itself, identical for every angular order. With a positive width sigma the
//integral against the smeared density has the closed form (per raw channel
//n, with c = 1/2sigma^2, d_n = 1/2sigma_n^2, p_n = c + d_n,
//a_nl = (n+l+3)/2 and b_l = l + 3/2):
//
//  I_nl(r) = pi^{3/2}/(pi sigma^2)^{3/4} N_n Gamma(a_nl)/Gamma(b_l)
//            p_n^{-a_nl} exp(-c r^2) (c r)^l M(a_nl, b_l, (c r)^2 / p_n)
//
//where M is Kummer's confluent hypergeometric function; the gradient is the
//r-derivative of the same expression. All r-independent factors are folded
//into a prefactor table at construction, so Compute is allocation-free.
//
//A Gto is immutable after construction and safe to share across goroutines.
type Gto struct {
	params Parameters
	//c = 1/(2 sigma^2); 0 in delta-density mode
	atomicConstant float64
	//d_n per radial channel
	gtoConstants []float64
	//N_n per radial channel
	gtoNorms []float64
	//S^-1/2, MaxRadial x MaxRadial
	ortho *mat.Dense
	//prefactor A_nl above, (MaxAngular+1) x MaxRadial; nil in delta mode
	prefactors *mat.Dense
}

//NewGto builds the analytic GTO evaluator for the given parameters.
func NewGto(params Parameters) (*Gto, error) {
	if err := params.validate(); err != nil {
		return nil, errDecorate(err, "NewGto")
	}
	n := params.MaxRadial
	g := &Gto{
		params:       params,
		gtoConstants: make([]float64, n),
		gtoNorms:     make([]float64, n),
	}
	for i := 0; i < n; i++ {
		sigma := params.Cutoff * math.Max(math.Sqrt(float64(i)), 1.0) / float64(n)
		d := 1 / (2 * sigma * sigma)
		g.gtoConstants[i] = d
		//N_n^2 = 2 (2 d_n)^(n+3/2) / Gamma(n+3/2)
		fn := float64(i)
		g.gtoNorms[i] = math.Sqrt(2 * math.Pow(2*d, fn+1.5) / math.Gamma(fn+1.5))
	}
	ortho, err := gtoOrthonormalization(g.gtoConstants)
	if err != nil {
		return nil, errDecorate(err, "NewGto")
	}
	g.ortho = ortho

	if params.AtomicGaussianWidth > 0 {
		sigma := params.AtomicGaussianWidth
		c := 1 / (2 * sigma * sigma)
		g.atomicConstant = c
		lnGlobal := 1.5*math.Log(math.Pi) - 0.75*math.Log(math.Pi*sigma*sigma)
		g.prefactors = mat.NewDense(params.MaxAngular+1, n, nil)
		for l := 0; l <= params.MaxAngular; l++ {
			b := float64(l) + 1.5
			lgb, _ := math.Lgamma(b)
			for m := 0; m < n; m++ {
				a := 0.5 * float64(m+l+3)
				p := c + g.gtoConstants[m]
				lga, _ := math.Lgamma(a)
				lnA := lnGlobal + math.Log(g.gtoNorms[m]) + lga - lgb - a*math.Log(p)
				g.prefactors.Set(l, m, math.Exp(lnA))
			}
		}
	}
	return g, nil
}

//gtoOrthonormalization returns S^-1/2 for the analytic overlap of the
//normalized GTO basis,
//S_mn = N_m N_n Gamma((m+n+3)/2) / (2 (d_m+d_n)^((m+n+3)/2)), which is 1 on
//the diagonal. Computed in log space so that wide parameter ranges stay
//finite.
func gtoOrthonormalization(ds []float64) (*mat.Dense, error) {
	n := len(ds)
	lnNorm := func(i int) float64 {
		fi := float64(i)
		lg, _ := math.Lgamma(fi + 1.5)
		return 0.5 * (math.Ln2 + (fi+1.5)*math.Log(2*ds[i]) - lg)
	}
	overlap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			a := 0.5 * float64(i+j+3)
			lga, _ := math.Lgamma(a)
			ln := lnNorm(i) + lnNorm(j) + lga - math.Ln2 - a*math.Log(ds[i]+ds[j])
			overlap.SetSym(i, j, math.Exp(ln))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(overlap, true); !ok {
		return nil, errorf("gtoOrthonormalization", "eigendecomposition of the GTO overlap matrix failed")
	}
	vals := eig.Values(nil)
	for _, v := range vals {
		if v <= 0 {
			return nil, errorf("gtoOrthonormalization", "GTO overlap matrix is numerically singular (eigenvalue %v); too many radial channels for this cutoff", v)
		}
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	//S^-1/2 = V diag(1/sqrt(lambda)) V^T
	invSqrt := mat.NewDense(n, n, nil)
	for i := range vals {
		invSqrt.Set(i, i, 1/math.Sqrt(vals[i]))
	}
	result := mat.NewDense(n, n, nil)
	result.Product(&vecs, invSqrt, vecs.T())
	return result, nil
}

//Compute writes the radial integral for one pair distance into values, and
//its distance-gradient into gradients if non-nil. Both must be shaped
//(MaxAngular+1) x MaxRadial; a mismatched shape or a negative distance is a
//caller bug and panics. Implements Integral.
func (G *Gto) Compute(distance float64, values, gradients *mat.Dense) {
	checkComputeArgs(G.params, distance, values, gradients)
	if G.atomicConstant == 0 {
		G.computeDelta(distance, values, gradients)
	} else {
		G.computeSmeared(distance, values, gradients)
	}
}

//computeDelta fills every angular row with the orthonormalized basis
//function evaluated at r: the radial integral of a delta density has no
//angular dependence.
func (G *Gto) computeDelta(r float64, values, gradients *mat.Dense) {
	n := G.params.MaxRadial
	var raw, rawGrad [maxRadialCap]float64
	powm1 := 0.0 //r^(m-1); only read for m >= 1
	pow := 1.0   //r^m, accumulated so that m=0 at r=0 gives 1 and not 0^0
	for m := 0; m < n; m++ {
		d := G.gtoConstants[m]
		e := math.Exp(-d * r * r)
		raw[m] = G.gtoNorms[m] * pow * e
		//d/dr [N r^m e^(-d r^2)] = N e^(-d r^2) (m r^(m-1) - 2 d r^(m+1))
		if m == 0 {
			rawGrad[m] = G.gtoNorms[m] * e * (-2 * d * r)
		} else {
			rawGrad[m] = G.gtoNorms[m] * e * (float64(m)*powm1 - 2*d*pow*r)
		}
		powm1 = pow
		pow *= r
	}
	var vals, grads [maxRadialCap]float64
	for i := 0; i < n; i++ {
		var sv, sg float64
		for m := 0; m < n; m++ {
			o := G.ortho.At(i, m)
			sv += o * raw[m]
			sg += o * rawGrad[m]
		}
		vals[i], grads[i] = sv, sg
	}
	for l := 0; l <= G.params.MaxAngular; l++ {
		for i := 0; i < n; i++ {
			values.Set(l, i, vals[i])
			if gradients != nil {
				gradients.Set(l, i, grads[i])
			}
		}
	}
}

func (G *Gto) computeSmeared(r float64, values, gradients *mat.Dense) {
	n := G.params.MaxRadial
	c := G.atomicConstant
	cr := c * r
	shift := -cr * r //-c r^2, folded into the hypergeometric evaluation
	var raw, rawGrad [maxRadialCap]float64
	powl := 1.0 //(c r)^l
	for l := 0; l <= G.params.MaxAngular; l++ {
		b := float64(l) + 1.5
		for m := 0; m < n; m++ {
			a := 0.5 * float64(m+l+3)
			p := c + G.gtoConstants[m]
			z := cr * cr / p
			A := G.prefactors.At(l, m)
			raw[m] = A * powl * scaledHyp1f1(a, b, z, shift)
			if gradients != nil {
				if r == 0 {
					//only the (c r)^1 factor contributes a slope at zero
					if l == 1 {
						rawGrad[m] = A * c
					} else {
						rawGrad[m] = 0
					}
				} else {
					mder := scaledHyp1f1Deriv(a, b, z, shift)
					rawGrad[m] = raw[m]*(float64(l)/r-2*cr) + A*powl*(2*c*cr/p)*mder
				}
			}
		}
		for i := 0; i < n; i++ {
			var sv, sg float64
			for m := 0; m < n; m++ {
				o := G.ortho.At(i, m)
				sv += o * raw[m]
				sg += o * rawGrad[m]
			}
			values.Set(l, i, sv)
			if gradients != nil {
				gradients.Set(l, i, sg)
			}
		}
		powl *= cr
	}
}

//checkComputeArgs enforces the Compute contract shared by all evaluators.
//Violations are caller bugs: failing loudly here beats writing a table of
//garbage that surfaces three layers up in a descriptor.
func checkComputeArgs(params Parameters, distance float64, values, gradients *mat.Dense) {
	rows, cols := params.shape()
	if r, c := values.Dims(); r != rows || c != cols {
		panic("radial: values buffer has the wrong shape")
	}
	if gradients != nil {
		if r, c := gradients.Dims(); r != rows || c != cols {
			panic("radial: gradients buffer has the wrong shape")
		}
	}
	if distance < 0 || math.IsNaN(distance) {
		panic("radial: distance must be a non-negative number")
	}
}
