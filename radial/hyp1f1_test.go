/*
 * hyp1f1_test.go, part of gosoap.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHyp1f1SmallArguments(t *testing.T) {
	//M(a,b,0) = 1 for any a,b
	assert.Equal(t, 1.0, scaledHyp1f1(2.5, 3.5, 0, 0))
	//M(1,1,z) = e^z, so the scaled value with shift=-z is exactly 1
	for _, z := range []float64{0.1, 1, 10, 100} {
		assert.InEpsilon(t, 1.0, scaledHyp1f1(1, 1, z, -z), 1e-12, "z=%v", z)
	}
}

func TestHyp1f1BranchesAgree(t *testing.T) {
	//where both the series and the asymptotic expansion converge they must
	//give the same answer; this straddles the regime where the series needs
	//thousands of terms
	for _, c := range []struct{ a, b, z float64 }{
		{5.5, 3.5, 300},
		{10.0, 5.5, 1000},
		{35.5, 5.5, 3000},
	} {
		s := seriesHyp1f1(c.a, c.b, c.z, -c.z)
		as := asymptoticHyp1f1(c.a, c.b, c.z, -c.z)
		assert.InEpsilon(t, as, s, 1e-7, "a=%v b=%v z=%v", c.a, c.b, c.z)
	}
}

func TestHyp1f1SeriesTermCap(t *testing.T) {
	//the series peaks near k = z, so at z comparable to the term cap it
	//cannot converge and must defer to the asymptotic expansion rather than
	//return a mid-growth partial sum
	a, b, z := 35.5, 5.5, 5000.0
	got := scaledHyp1f1(a, b, z, -z)
	want := asymptoticHyp1f1(a, b, z, -z)
	assert.Equal(t, want, got)
	//reference value from a converged 20000-term summation
	assert.InEpsilon(t, 3.4407e73, got, 1e-3)
}

func TestGtoNarrowDensityHighAngular(t *testing.T) {
	//a narrow atomic density pushes z = (cr)^2/p into the thousands near
	//the cutoff while a high angular order keeps the series branch
	//selected; the table must stay accurate there
	params := Parameters{MaxRadial: 8, MaxAngular: 70, AtomicGaussianWidth: 0.01, Cutoff: 1.0}
	gto, err := NewGto(params)
	require.NoError(t, err)
	values, gradients := newTables(params)
	gto.Compute(0.99, values, gradients)
	requireAllFinite(t, values, "narrow-density values")
	requireAllFinite(t, gradients, "narrow-density gradients")
	assert.InDelta(t, 5.65e-4, values.At(61, 4), 5e-5)
}
