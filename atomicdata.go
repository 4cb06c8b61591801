/*
 * atomicdata.go, part of gosasa.
 *
 * Copyright 2025 The gosasa developers
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

package sasa

//A map for assigning van der Waals radii to elements.
//Values from 10.1021/j100785a001 and 10.1021/jp8111556,
//metal radii from 10.1023/A:1011625728803.
//Note that just common "bio-elements" are present.
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 1.40,
	"Zn": 1.39,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"F":  1.47,
	"Br": 1.85,
	"I":  1.98,
}

//defVdwRadius is used for elements missing from the table.
const defVdwRadius = 1.8

//SymbolFromName tries to guess a chemical element symbol from a PDB atom
//name. Mostly based on AMBER names; it only deals with some common
//bio-elements.
func SymbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || (len(name) > 0 && name[0] == 'H') {
		symbol = "H" //only Hs can have 4-character names in AMBER
	} else if len(name) == 0 {
		return "", newError("empty atom name", "SymbolFromName")
	} else {
		switch name[0] {
		case 'C':
			switch name {
			case "CU":
				symbol = "Cu"
			case "CO":
				symbol = "Co"
			case "CL":
				symbol = "Cl"
			default:
				symbol = "C"
			}
		case 'N':
			if name == "NA" {
				symbol = "Na"
			} else {
				symbol = "N"
			}
		case 'O':
			symbol = "O"
		case 'P':
			symbol = "P"
		case 'S':
			if name == "SE" {
				symbol = "Se"
			} else {
				symbol = "S"
			}
		case 'Z':
			if name == "ZN" {
				symbol = "Zn"
			}
		case 'F':
			if name == "FE" {
				symbol = "Fe"
			} else {
				symbol = "F"
			}
		}
	}
	if symbol == "" {
		return symbol, newError("couldn't guess symbol from PDB name "+name, "SymbolFromName")
	}
	return symbol, nil
}

//VdwRadii returns the van der Waals radius of every atom in mol,
//index-aligned with the structure. Atoms whose element is missing from
//the radius table get defVdwRadius and a Warn; the returned Status is then
//Warn instead of Success.
func VdwRadii(mol Atomer) ([]float64, Status) {
	radii := make([]float64, mol.Len())
	st := Success
	for i := range radii {
		at := mol.Atom(i)
		symbol := at.Symbol
		if symbol == "" {
			symbol, _ = SymbolFromName(at.Name)
		}
		r, ok := symbolVdwrad[symbol]
		if !ok {
			st = Warnf("no van der Waals radius for atom %d (%s), using %.2f A", i, at.Name, defVdwRadius)
			r = defVdwRadius
		}
		radii[i] = r
	}
	return radii, st
}
