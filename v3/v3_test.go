package v3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestVectorOps(Te *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, 5, 6)
	if d := a.Sub(b); d != (Vector{-3, -3, -3}) {
		Te.Errorf("Sub: got %v", d)
	}
	if n2 := a.Norm2(); n2 != 14 {
		Te.Errorf("Norm2: got %v", n2)
	}
	if n := NewVector(3, 4, 0).Norm(); n != 5 {
		Te.Errorf("Norm: got %v", n)
	}
	if d := a.Dot(b); d != 32 {
		Te.Errorf("Dot: got %v", d)
	}
	if s := a.Scale(2); s != (Vector{2, 4, 6}) {
		Te.Errorf("Scale: got %v", s)
	}
	if n := a.Neg(); n != (Vector{-1, -2, -3}) {
		Te.Errorf("Neg: got %v", n)
	}
}

func TestInfiniteCellImage(Te *testing.T) {
	cell := InfiniteCell()
	if cell.Periodic() {
		Te.Error("infinite cell reports periodic")
	}
	v := NewVector(100, -300, 4.5)
	w := v
	cell.VectorImage(&v)
	if v != w {
		Te.Errorf("VectorImage on infinite cell moved %v to %v", w, v)
	}
	if !math.IsInf(cell.MaxImageCutoff(), 1) {
		Te.Error("infinite cell image cutoff not +Inf")
	}
}

func TestCubicCellImage(Te *testing.T) {
	cell, err := CubicCell(10)
	if err != nil {
		Te.Fatal(err)
	}
	v := NewVector(9.8, 0, 0)
	cell.VectorImage(&v)
	if math.Abs(v[0]+0.2) > 1e-12 || v[1] != 0 || v[2] != 0 {
		Te.Errorf("wrapped vector: got %v, want (-0.2,0,0)", v)
	}
	//wrapping never increases the norm
	for _, raw := range []Vector{{5.1, 5.1, 5.1}, {-7, 13, 2}, {0.3, 0, 0}} {
		w := raw
		cell.VectorImage(&w)
		if w.Norm() > raw.Norm()+1e-12 {
			Te.Errorf("image of %v has larger norm: %v", raw, w)
		}
		if w.Norm() > math.Sqrt(3)*5+1e-12 {
			Te.Errorf("image of %v outside half-diagonal bound: %v", raw, w)
		}
	}
	if c := cell.MaxImageCutoff(); c != 5 {
		Te.Errorf("image cutoff: got %v, want 5", c)
	}
}

func TestOrthorhombicCellErrors(Te *testing.T) {
	if _, err := OrthorhombicCell(10, -1, 10); err == nil {
		Te.Error("negative edge accepted")
	}
	if _, err := CubicCell(0); err == nil {
		Te.Error("zero edge accepted")
	}
}

func TestTriclinicCellImage(Te *testing.T) {
	//an orthorhombic cell written as a triclinic matrix must behave the same
	m := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 12, 0, 0, 0, 14})
	tri, err := TriclinicCell(m)
	if err != nil {
		Te.Fatal(err)
	}
	ortho, _ := OrthorhombicCell(10, 12, 14)
	for _, raw := range []Vector{{9.9, 0.5, -13.5}, {4, 6.5, 7.5}, {1, 1, 1}} {
		a, b := raw, raw
		tri.VectorImage(&a)
		ortho.VectorImage(&b)
		if a.Sub(b).Norm() > 1e-10 {
			Te.Errorf("triclinic image %v != orthorhombic image %v for %v", a, b, raw)
		}
	}
	if c := tri.MaxImageCutoff(); math.Abs(c-5) > 1e-10 {
		Te.Errorf("triclinic image cutoff: got %v, want 5", c)
	}
	if v := tri.Volume(); math.Abs(v-10*12*14) > 1e-8 {
		Te.Errorf("volume: got %v", v)
	}
}

func TestTriclinicCellErrors(Te *testing.T) {
	if _, err := TriclinicCell(mat.NewDense(2, 2, nil)); err == nil {
		Te.Error("2x2 matrix accepted")
	}
	singular := mat.NewDense(3, 3, []float64{1, 0, 0, 2, 0, 0, 0, 0, 1})
	if _, err := TriclinicCell(singular); err == nil {
		Te.Error("singular matrix accepted")
	}
}

func TestSkewedTriclinicImage(Te *testing.T) {
	//a moderately skewed cell; the image of a displacement close to a lattice
	//vector must come back near zero
	m := mat.NewDense(3, 3, []float64{10, 0, 0, 3, 10, 0, 1, 2, 10})
	cell, err := TriclinicCell(m)
	if err != nil {
		Te.Fatal(err)
	}
	v := NewVector(3+0.1, 10-0.1, 0) //second cell vector plus a small offset
	cell.VectorImage(&v)
	if v.Norm() > 1 {
		Te.Errorf("image of near-lattice vector too long: %v (norm %v)", v, v.Norm())
	}
}
