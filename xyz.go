/*
 * xyz.go, part of gosoap.
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
	"bufio"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/gosoap/v3"
)

//A map from chemical symbols to atomic numbers, used as species identifiers.
//Only the common elements are present; extend as needed.
var symbolZ = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Ti": 22, "Cr": 24,
	"Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30, "Se": 34,
	"Br": 35, "Ag": 47, "I": 53, "Pt": 78, "Au": 79,
}

//XYZRead reads the first frame of an XYZ file into a SimpleSystem with the
//given cell (nil for no periodic boundary conditions). Species identifiers
//are the atomic numbers of the element symbols in the file.
func XYZRead(xyzname string, cell *v3.Cell) (*SimpleSystem, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, NewError("XYZRead", "can't open %s: %s", xyzname, err.Error())
	}
	defer xyzfile.Close()
	xyz := bufio.NewReader(xyzfile)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, NewError("XYZRead", "ill formatted XYZ file %s: missing atom count", xyzname)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, NewError("XYZRead", "ill formatted XYZ file %s: bad atom count %q", xyzname, strings.TrimSpace(line))
	}
	_, _ = xyz.ReadString('\n') //comment line, ignored
	system := NewSimpleSystem(cell)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && line == "" {
			return nil, NewError("XYZRead", "file %s ends at atom %d of %d", xyzname, i, natoms)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, NewError("XYZRead", "line %d of %s ill formed", i+3, xyzname)
		}
		z, ok := symbolZ[fields[0]]
		if !ok {
			return nil, NewError("XYZRead", "unknown element symbol %q in %s", fields[0], xyzname)
		}
		var pos v3.Vector
		for j := 0; j < 3; j++ {
			pos[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, NewError("XYZRead", "bad coordinate %q on line %d of %s", fields[j+1], i+3, xyzname)
			}
		}
		system.AddAtom(z, pos)
	}
	return system, nil
}
