/*
 * system.go, part of gosoap.
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
	v3 "github.com/rmera/gosoap/v3"
)

//System is the data source consumed by the neighbor enumeration and, through
//it, by the radial-integral machinery. Implementations expose a fixed number
//of atoms with positions and per-atom species identifiers, one unit cell,
//and a lazily computed neighbor list. Positions and Species return slices of
//the same length; callers must not mutate them.
type System interface {
	//Size returns the number of atoms.
	Size() int

	//Positions returns the atom positions.
	Positions() []v3.Vector

	//Species returns the per-atom species identifiers.
	Species() []int

	//Cell returns the unit cell of the system.
	Cell() *v3.Cell

	//ComputeNeighbors ensures the cached neighbor list corresponds to the
	//given cutoff, recomputing it if needed.
	ComputeNeighbors(cutoff float64) error

	//Pairs returns all pairs from the last ComputeNeighbors call. It is an
	//error to call it before ComputeNeighbors.
	Pairs() ([]Pair, error)

	//PairsContaining returns the pairs touching atom i from the last
	//ComputeNeighbors call.
	PairsContaining(i int) ([]Pair, error)
}

//SimpleSystem is the reference System implementation: a plain list of atoms
//in a cell, with the neighbor list cached by cutoff. It is not safe for
//concurrent use; give each goroutine its own copy, or compute the neighbors
//once before sharing it read-only.
type SimpleSystem struct {
	cell      *v3.Cell
	species   []int
	positions []v3.Vector
	neighbors *NeighborList
	//how many times the list was actually rebuilt, for the caching tests
	nlBuilds int
}

//NewSimpleSystem returns an empty system with the given cell. A nil cell
//means no periodic boundary conditions.
func NewSimpleSystem(cell *v3.Cell) *SimpleSystem {
	if cell == nil {
		cell = v3.InfiniteCell()
	}
	return &SimpleSystem{cell: cell}
}

//AddAtom appends an atom with the given species identifier and position.
//The cached neighbor list, if any, is invalidated.
func (S *SimpleSystem) AddAtom(species int, position v3.Vector) {
	S.species = append(S.species, species)
	S.positions = append(S.positions, position)
	S.neighbors = nil
}

//SetPosition moves atom i to position and invalidates the cached neighbor
//list. Panics if i is out of range.
func (S *SimpleSystem) SetPosition(i int, position v3.Vector) {
	if i < 0 || i >= len(S.positions) {
		panic("SimpleSystem: SetPosition index out of range")
	}
	S.positions[i] = position
	S.neighbors = nil
}

func (S *SimpleSystem) Size() int              { return len(S.species) }
func (S *SimpleSystem) Positions() []v3.Vector { return S.positions }
func (S *SimpleSystem) Species() []int         { return S.species }
func (S *SimpleSystem) Cell() *v3.Cell         { return S.cell }

//ComputeNeighbors builds the neighbor list for the given cutoff, unless a
//list for exactly that cutoff is already cached, in which case it is a
//no-op. Any mutation of the atoms drops the cache first.
func (S *SimpleSystem) ComputeNeighbors(cutoff float64) error {
	if S.neighbors != nil && S.neighbors.cutoff == cutoff {
		return nil
	}
	S.neighbors = newNeighborList(S.positions, S.cell, cutoff)
	S.nlBuilds++
	return nil
}

//Pairs returns all pairs within the cutoff of the last ComputeNeighbors
//call.
func (S *SimpleSystem) Pairs() ([]Pair, error) {
	if S.neighbors == nil {
		return nil, NewError("Pairs", "neighbor list is not initialized: call ComputeNeighbors first")
	}
	return S.neighbors.Pairs(), nil
}

//PairsContaining returns the pairs touching atom i from the last
//ComputeNeighbors call. The pair vectors are stored in the canonical
//First->Second direction regardless of i.
func (S *SimpleSystem) PairsContaining(i int) ([]Pair, error) {
	if S.neighbors == nil {
		return nil, NewError("PairsContaining", "neighbor list is not initialized: call ComputeNeighbors first")
	}
	if i < 0 || i >= len(S.species) {
		return nil, NewError("PairsContaining", "atom index %d out of range (%d atoms)", i, len(S.species))
	}
	return S.neighbors.PairsContaining(i), nil
}
