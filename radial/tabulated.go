/*
 * tabulated.go, part of gosoap.
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

//Tabulated radial tables are serialized as JSON, optionally behind zstd
//when the file name says so. They let one process sample an expensive
//reference once and every other process spline through the stored points
//(see TabulatedBasis).

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//SampleEvaluator evaluates code at npoints uniformly spaced distances over
//[0, cutoff], both endpoints included, returning them as tabulated points.
//The implied accuracy of a spline through the result is whatever this
//sampling resolution provides.
func SampleEvaluator(code Integral, params Parameters, npoints int) ([]TabulatedPoint, error) {
	if err := params.validate(); err != nil {
		return nil, errDecorate(err, "SampleEvaluator")
	}
	if npoints < 2 {
		return nil, errorf("SampleEvaluator", "need at least 2 sample points, got %d", npoints)
	}
	rows, cols := params.shape()
	points := make([]TabulatedPoint, npoints)
	values := mat.NewDense(rows, cols, nil)
	gradients := mat.NewDense(rows, cols, nil)
	for i := range points {
		x := params.Cutoff * float64(i) / float64(npoints-1)
		code.Compute(x, values, gradients)
		points[i] = TabulatedPoint{
			Distance:  x,
			Values:    tableRows(values),
			Gradients: tableRows(gradients),
		}
	}
	return points, nil
}

func tableRows(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for l := 0; l < rows; l++ {
		out[l] = make([]float64, cols)
		copy(out[l], m.RawRowView(l))
	}
	return out
}

//WriteTabulated serializes points as JSON to out.
func WriteTabulated(out io.Writer, points []TabulatedPoint) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(points); err != nil {
		return errorf("WriteTabulated", "can't serialize tabulated points: %s", err.Error())
	}
	return nil
}

//ReadTabulated deserializes points written by WriteTabulated. The result is
//not validated here; NewSplineFromTabulated does that against concrete
//parameters.
func ReadTabulated(in io.Reader) ([]TabulatedPoint, error) {
	var points []TabulatedPoint
	dec := json.NewDecoder(in)
	if err := dec.Decode(&points); err != nil {
		return nil, errorf("ReadTabulated", "can't parse tabulated points: %s", err.Error())
	}
	return points, nil
}

//WriteTabulatedFile writes points to the named file, zstd-compressed when
//the name ends in ".zst" and plain JSON otherwise.
func WriteTabulatedFile(name string, points []TabulatedPoint) error {
	f, err := os.Create(name)
	if err != nil {
		return errorf("WriteTabulatedFile", "can't create %s: %s", name, err.Error())
	}
	defer f.Close()
	if !strings.HasSuffix(name, ".zst") {
		return WriteTabulated(f, points)
	}
	z, err := zstd.NewWriter(f)
	if err != nil {
		return errorf("WriteTabulatedFile", "can't start zstd stream for %s: %s", name, err.Error())
	}
	if err := WriteTabulated(z, points); err != nil {
		z.Close()
		return errDecorate(err, "WriteTabulatedFile")
	}
	if err := z.Close(); err != nil {
		return errorf("WriteTabulatedFile", "can't finish zstd stream for %s: %s", name, err.Error())
	}
	return nil
}

//ReadTabulatedFile reads points from the named file, expecting zstd
//compression when the name ends in ".zst".
func ReadTabulatedFile(name string) ([]TabulatedPoint, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errorf("ReadTabulatedFile", "can't open %s: %s", name, err.Error())
	}
	defer f.Close()
	if !strings.HasSuffix(name, ".zst") {
		return ReadTabulated(f)
	}
	z, err := zstd.NewReader(f)
	if err != nil {
		return nil, errorf("ReadTabulatedFile", "can't read zstd stream from %s: %s", name, err.Error())
	}
	defer z.Close()
	return ReadTabulated(z)
}
