/*
 * tabulated_test.go, part of gosoap.
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
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePoints(t *testing.T) ([]TabulatedPoint, Parameters) {
	params := Parameters{MaxRadial: 2, MaxAngular: 1, AtomicGaussianWidth: 0.3, Cutoff: 2.0}
	gto, err := NewGto(params)
	require.NoError(t, err)
	points, err := SampleEvaluator(gto, params, 25)
	require.NoError(t, err)
	return points, params
}

func TestSampleEvaluator(t *testing.T) {
	points, params := samplePoints(t)
	require.Len(t, points, 25)
	assert.Equal(t, 0.0, points[0].Distance)
	assert.Equal(t, params.Cutoff, points[len(points)-1].Distance)
	for _, pt := range points {
		require.Len(t, pt.Values, params.MaxAngular+1)
		require.Len(t, pt.Gradients, params.MaxAngular+1)
		for l := range pt.Values {
			require.Len(t, pt.Values[l], params.MaxRadial)
			require.Len(t, pt.Gradients[l], params.MaxRadial)
		}
	}
}

func TestTabulatedStreamRoundTrip(t *testing.T) {
	points, _ := samplePoints(t)
	var buf bytes.Buffer
	require.NoError(t, WriteTabulated(&buf, points))
	back, err := ReadTabulated(&buf)
	require.NoError(t, err)
	assert.Equal(t, points, back)
}

func TestTabulatedFileRoundTrip(t *testing.T) {
	points, params := samplePoints(t)
	for _, name := range []string{"table.json", "table.json.zst"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, WriteTabulatedFile(path, points))
		back, err := ReadTabulatedFile(path)
		require.NoError(t, err, name)
		require.Equal(t, points, back, name)
		//and the round-tripped table still splines
		_, err = NewSplineFromTabulated(back, params)
		assert.NoError(t, err, name)
	}
}

func TestTabulatedReadGarbage(t *testing.T) {
	_, err := ReadTabulated(bytes.NewBufferString("this is not json"))
	assert.Error(t, err)
	_, err = ReadTabulatedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
