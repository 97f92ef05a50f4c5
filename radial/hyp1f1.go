/*
 * hyp1f1.go, part of gosoap.
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

import "math"

//The confluent hypergeometric function M(a,b,z) = 1F1(a;b;z) appears in the
//closed form of the Gaussian-smeared radial integral, always with a > 0,
//b > 0 and z >= 0, and always multiplied by a decaying exponential
//exp(shift) with shift <= -z + epsilon. M grows like exp(z), so the two
//factors must be combined before exponentiating or the product degenerates
//to 0*Inf for narrow atomic densities. Everything here therefore computes
//the scaled value exp(shift)*M(a,b,z) directly.

const hyp1f1Tolerance = 1e-15
const hyp1f1MaxTerms = 5000

//scaledHyp1f1 returns exp(shift) * M(a,b,z) for a,b > 0 and z >= 0.
//It does not allocate.
func scaledHyp1f1(a, b, z, shift float64) float64 {
	//The asymptotic expansion is cheap but only valid once z dominates the
	//a-dependent term growth; the series handles everything else. Both keep
	//the exponential folded in.
	if z > 4*a*a+b+50 {
		return asymptoticHyp1f1(a, b, z, shift)
	}
	return seriesHyp1f1(a, b, z, shift)
}

//seriesHyp1f1 sums the Kummer series term by term. All terms are positive,
//so there is no cancellation; the running sum is rescaled on the fly so
//that neither the terms (which peak near exp(z)) nor the final product can
//overflow.
func seriesHyp1f1(a, b, z, shift float64) float64 {
	sum := 1.0 //scaled running sum
	lam := 0.0 //log of the current term
	off := 0.0 //sum of the true series is sum * exp(off)
	for k := 0; k < hyp1f1MaxTerms; k++ {
		fk := float64(k)
		ratio := (a + fk) * z / ((b + fk) * (fk + 1))
		if ratio == 0 {
			return sum * math.Exp(off+shift)
		}
		lam += math.Log(ratio)
		if lam > off+200 {
			//rescale before the terms outgrow the float range
			sum *= math.Exp(off - lam)
			off = lam
		}
		term := math.Exp(lam - off)
		sum += term
		//past the peak (ratio < 1) and negligible: done
		if ratio < 1 && term < hyp1f1Tolerance*sum {
			return sum * math.Exp(off+shift)
		}
	}
	//The term peak sits near k = z, so running out of terms means z is in
	//the thousands while a was too large for the cheap switch in
	//scaledHyp1f1. A partial sum still mid-growth is not an answer; at such
	//z the asymptotic expansion converges, so hand over to it.
	return asymptoticHyp1f1(a, b, z, shift)
}

//asymptoticHyp1f1 uses M(a,b,z) ~ Gamma(b)/Gamma(a) e^z z^(a-b)
//sum_k (b-a)_k (1-a)_k / (k! z^k) for large z. The series is divergent;
//summation stops at the smallest term.
func asymptoticHyp1f1(a, b, z, shift float64) float64 {
	lgb, _ := math.Lgamma(b)
	lga, _ := math.Lgamma(a)
	prefactor := math.Exp(lgb - lga + shift + z + (a-b)*math.Log(z))
	sum := 1.0
	term := 1.0
	for k := 0; k < 30; k++ {
		fk := float64(k)
		next := term * (b - a + fk) * (1 - a + fk) / ((fk + 1) * z)
		if math.Abs(next) >= math.Abs(term) {
			break //divergence onset, stop at the smallest term
		}
		term = next
		sum += term
		if math.Abs(term) < hyp1f1Tolerance*math.Abs(sum) {
			break
		}
	}
	return prefactor * sum
}

//scaledHyp1f1Deriv returns exp(shift) * dM/dz (a,b,z), using
//M'(a,b,z) = (a/b) M(a+1,b+1,z).
func scaledHyp1f1Deriv(a, b, z, shift float64) float64 {
	return a / b * scaledHyp1f1(a+1, b+1, z, shift)
}
