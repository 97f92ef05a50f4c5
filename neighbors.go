/*
 * neighbors.go, part of gosoap.
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

	v3 "github.com/rmera/gosoap/v3"
)

//Pair is one atom pair within the cutoff of a neighbor search. First < Second
//always holds; Vector points from First to Second after minimum-image
//wrapping and Distance is its norm. A consumer iterating the pairs of the
//Second atom must negate Vector to get the displacement from its own
//perspective: the pair is stored once, in the canonical direction.
type Pair struct {
	First    int
	Second   int
	Distance float64
	Vector   v3.Vector
}

//NeighborList holds every atom pair within a cutoff, plus a per-atom index.
//It is built by newNeighborList and owned by the System it was computed for.
type NeighborList struct {
	cutoff float64
	pairs  []Pair
	byAtom [][]Pair
}

//Cutoff returns the cutoff this list was built for.
func (N *NeighborList) Cutoff() float64 { return N.cutoff }

//Pairs returns all pairs, ordered by (First, Second).
func (N *NeighborList) Pairs() []Pair { return N.pairs }

//PairsContaining returns the pairs touching atom i, in canonical direction.
//Panics if i is out of range.
func (N *NeighborList) PairsContaining(i int) []Pair { return N.byAtom[i] }

//newNeighborList enumerates every unordered pair of atoms closer than cutoff
//under the minimum-image convention of cell. This is intentionally the
//simple quadratic algorithm: it is the correctness reference that any future
//accelerated search has to reproduce. Zero atoms or a non-positive cutoff
//give an empty list. Pairs separated by more than one periodic replica are
//not found; see Cell.MaxImageCutoff.
func newNeighborList(positions []v3.Vector, cell *v3.Cell, cutoff float64) *NeighborList {
	if max := cell.MaxImageCutoff(); cutoff > max {
		Log(LogLevelWarn, "neighbor cutoff %v exceeds the single-image ceiling %v of the cell; pairs beyond the nearest replica will be missed", cutoff, max)
	}
	nl := &NeighborList{cutoff: cutoff}
	natoms := len(positions)
	nl.byAtom = make([][]Pair, natoms)
	if cutoff <= 0 {
		return nl
	}
	cutoff2 := cutoff * cutoff
	for i := 0; i < natoms; i++ {
		for j := i + 1; j < natoms; j++ {
			d := positions[j].Sub(positions[i])
			cell.VectorImage(&d)
			d2 := d.Norm2()
			if d2 < cutoff2 {
				nl.pairs = append(nl.pairs, Pair{
					First:    i,
					Second:   j,
					Distance: math.Sqrt(d2),
					Vector:   d,
				})
			}
		}
	}
	for _, p := range nl.pairs {
		nl.byAtom[p.First] = append(nl.byAtom[p.First], p)
		nl.byAtom[p.Second] = append(nl.byAtom[p.Second], p)
	}
	return nl
}
