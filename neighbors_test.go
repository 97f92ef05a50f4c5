/*
 * neighbors_test.go, part of gosoap.
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

package soap

import (
	"math"
	"strings"
	"testing"

	v3 "github.com/rmera/gosoap/v3"
)

func TestTwoAtomsNoPBC(Te *testing.T) {
	sys := NewSimpleSystem(nil)
	sys.AddAtom(1, v3.NewVector(0, 0, 0))
	sys.AddAtom(8, v3.NewVector(1.5, 0, 0))
	err := sys.ComputeNeighbors(2.0)
	if err != nil {
		Te.Fatal(err)
	}
	pairs, err := sys.Pairs()
	if err != nil {
		Te.Fatal(err)
	}
	if len(pairs) != 1 {
		Te.Fatalf("expected exactly 1 pair, got %d", len(pairs))
	}
	p := pairs[0]
	if p.First != 0 || p.Second != 1 {
		Te.Errorf("wrong atom indices: got (%d, %d)", p.First, p.Second)
	}
	if p.Distance != 1.5 {
		Te.Errorf("wrong distance: got %v", p.Distance)
	}
	want := v3.NewVector(1.5, 0, 0)
	if p.Vector != want {
		Te.Errorf("wrong pair vector: got %v", p.Vector)
	}
}

func TestCubicCellWrap(Te *testing.T) {
	cell, err := v3.CubicCell(10.0)
	if err != nil {
		Te.Fatal(err)
	}
	sys := NewSimpleSystem(cell)
	sys.AddAtom(6, v3.NewVector(0.1, 0, 0))
	sys.AddAtom(6, v3.NewVector(9.9, 0, 0))
	err = sys.ComputeNeighbors(1.0)
	if err != nil {
		Te.Fatal(err)
	}
	pairs, err := sys.Pairs()
	if err != nil {
		Te.Fatal(err)
	}
	if len(pairs) != 1 {
		Te.Fatalf("expected 1 wrapped pair, got %d", len(pairs))
	}
	if d := pairs[0].Distance; math.Abs(d-0.2) > 1e-12 {
		Te.Errorf("wrapped distance should be 0.2, got %v", d)
	}
	//the image vector crosses the boundary, so it points in -x
	if v := pairs[0].Vector; math.Abs(v.X()+0.2) > 1e-12 || v.Y() != 0 || v.Z() != 0 {
		Te.Errorf("wrong wrapped vector: got %v", v)
	}
}

func TestPairInvariants(Te *testing.T) {
	cell, err := v3.CubicCell(8.0)
	if err != nil {
		Te.Fatal(err)
	}
	sys := NewSimpleSystem(cell)
	//a small crowded set so several pairs show up
	coords := [][3]float64{
		{0.0, 0.0, 0.0},
		{1.1, 0.2, 0.1},
		{7.8, 0.1, 0.0},
		{0.5, 1.3, 2.2},
		{4.0, 4.0, 4.0},
	}
	for _, c := range coords {
		sys.AddAtom(1, v3.NewVector(c[0], c[1], c[2]))
	}
	if err := sys.ComputeNeighbors(3.0); err != nil {
		Te.Fatal(err)
	}
	pairs, err := sys.Pairs()
	if err != nil {
		Te.Fatal(err)
	}
	if len(pairs) == 0 {
		Te.Fatal("expected at least one pair")
	}
	for _, p := range pairs {
		if p.First >= p.Second {
			Te.Errorf("pair (%d, %d) is not in canonical order", p.First, p.Second)
		}
		if math.Abs(p.Vector.Norm()-p.Distance) > 1e-12 {
			Te.Errorf("pair (%d, %d): |vector| %v disagrees with distance %v", p.First, p.Second, p.Vector.Norm(), p.Distance)
		}
		if p.Distance >= 3.0 {
			Te.Errorf("pair (%d, %d) beyond the cutoff: %v", p.First, p.Second, p.Distance)
		}
	}
	//every pair must show up in the per-atom view of both its endpoints
	for _, p := range pairs {
		for _, i := range []int{p.First, p.Second} {
			mine, err := sys.PairsContaining(i)
			if err != nil {
				Te.Fatal(err)
			}
			found := false
			for _, q := range mine {
				if q == p {
					found = true
					break
				}
			}
			if !found {
				Te.Errorf("pair (%d, %d) missing from PairsContaining(%d)", p.First, p.Second, i)
			}
		}
	}
}

func TestNeighborCaching(Te *testing.T) {
	sys := NewSimpleSystem(nil)
	sys.AddAtom(1, v3.NewVector(0, 0, 0))
	sys.AddAtom(1, v3.NewVector(1, 0, 0))
	if err := sys.ComputeNeighbors(2.0); err != nil {
		Te.Fatal(err)
	}
	if sys.nlBuilds != 1 {
		Te.Fatalf("expected 1 build, got %d", sys.nlBuilds)
	}
	//same cutoff: no rebuild
	if err := sys.ComputeNeighbors(2.0); err != nil {
		Te.Fatal(err)
	}
	if sys.nlBuilds != 1 {
		Te.Errorf("repeated cutoff should not rebuild, builds: %d", sys.nlBuilds)
	}
	//different cutoff: rebuild
	if err := sys.ComputeNeighbors(3.0); err != nil {
		Te.Fatal(err)
	}
	if sys.nlBuilds != 2 {
		Te.Errorf("new cutoff should rebuild, builds: %d", sys.nlBuilds)
	}
	//mutation invalidates, so the same cutoff rebuilds once more
	sys.SetPosition(1, v3.NewVector(0.5, 0, 0))
	if err := sys.ComputeNeighbors(3.0); err != nil {
		Te.Fatal(err)
	}
	if sys.nlBuilds != 3 {
		Te.Errorf("mutation should invalidate the cache, builds: %d", sys.nlBuilds)
	}
	pairs, err := sys.Pairs()
	if err != nil {
		Te.Fatal(err)
	}
	if len(pairs) != 1 || pairs[0].Distance != 0.5 {
		Te.Errorf("stale neighbor list after mutation: %v", pairs)
	}
	//AddAtom invalidates too
	sys.AddAtom(1, v3.NewVector(0.2, 0, 0))
	if _, err := sys.Pairs(); err == nil {
		Te.Error("Pairs should fail after AddAtom until ComputeNeighbors runs again")
	}
}

func TestPairsBeforeCompute(Te *testing.T) {
	sys := NewSimpleSystem(nil)
	sys.AddAtom(1, v3.NewVector(0, 0, 0))
	if _, err := sys.Pairs(); err == nil {
		Te.Error("Pairs before ComputeNeighbors should fail")
	}
	if _, err := sys.PairsContaining(0); err == nil {
		Te.Error("PairsContaining before ComputeNeighbors should fail")
	}
	if err := sys.ComputeNeighbors(1.0); err != nil {
		Te.Fatal(err)
	}
	if _, err := sys.PairsContaining(5); err == nil {
		Te.Error("PairsContaining with an out-of-range index should fail")
	}
}

func TestNeighborCutoffWarning(Te *testing.T) {
	defer SetLogCallback(nil)
	var warns []string
	SetLogCallback(func(level int, message string) {
		if level == LogLevelWarn {
			warns = append(warns, message)
		}
	})
	cell, err := v3.CubicCell(10.0)
	if err != nil {
		Te.Fatal(err)
	}
	sys := NewSimpleSystem(cell)
	sys.AddAtom(1, v3.NewVector(0, 0, 0))
	sys.AddAtom(1, v3.NewVector(2, 0, 0))
	//below the single-image ceiling (edge/2 = 5): quiet
	if err := sys.ComputeNeighbors(4.0); err != nil {
		Te.Fatal(err)
	}
	if len(warns) != 0 {
		Te.Fatalf("no warning expected below the image ceiling, got %v", warns)
	}
	//above it: one WARN through the diagnostic channel
	if err := sys.ComputeNeighbors(6.0); err != nil {
		Te.Fatal(err)
	}
	if len(warns) != 1 {
		Te.Fatalf("expected 1 warning above the image ceiling, got %d", len(warns))
	}
	if !strings.Contains(warns[0], "exceeds the single-image ceiling") {
		Te.Errorf("unexpected warning text: %q", warns[0])
	}
}

func TestZeroCutoff(Te *testing.T) {
	sys := NewSimpleSystem(nil)
	sys.AddAtom(1, v3.NewVector(0, 0, 0))
	sys.AddAtom(1, v3.NewVector(0.1, 0, 0))
	if err := sys.ComputeNeighbors(0); err != nil {
		Te.Fatal(err)
	}
	pairs, err := sys.Pairs()
	if err != nil {
		Te.Fatal(err)
	}
	if len(pairs) != 0 {
		Te.Errorf("non-positive cutoff should give no pairs, got %d", len(pairs))
	}
}
