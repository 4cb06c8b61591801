/*
 * refvalues.go, part of gosasa.
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

//refSpec is the compact form of a reference entry: the derived Subarea
//fields are computed from it, so the table is consistent by construction
//(polar+apolar = total, main+side = total, side splits add up).
type refSpec struct {
	name     string
	total    float64 //max SASA of X in an extended Ala-X-Ala tripeptide
	main     float64 //backbone (CA, N, O, C) part of total
	mainPol  float64 //polar part of main
	sidePol  float64 //polar part of the side chain
}

//Maximum SASA of each standard amino acid, from extended Ala-X-Ala
//tripeptides with the radii of this library's default table.
var refSpecs = []refSpec{
	{"ALA", 107.95, 38.54, 21.30, 0.00},
	{"ARG", 238.76, 38.54, 21.30, 100.60},
	{"ASN", 143.94, 38.54, 21.30, 66.80},
	{"ASP", 140.39, 38.54, 21.30, 64.00},
	{"CYS", 134.28, 38.54, 21.30, 30.00},
	{"GLN", 178.50, 38.54, 21.30, 72.40},
	{"GLU", 172.25, 38.54, 21.30, 66.90},
	{"GLY", 80.10, 38.54, 21.30, 0.00},
	{"HIS", 182.88, 38.54, 21.30, 51.20},
	{"ILE", 175.12, 38.54, 21.30, 0.00},
	{"LEU", 178.63, 38.54, 21.30, 0.00},
	{"LYS", 200.78, 38.54, 21.30, 44.70},
	{"MET", 194.15, 38.54, 21.30, 33.10},
	{"PHE", 199.48, 38.54, 21.30, 0.00},
	{"PRO", 136.13, 33.00, 10.50, 0.00},
	{"SER", 116.50, 38.54, 21.30, 31.90},
	{"THR", 139.27, 38.54, 21.30, 28.10},
	{"TRP", 249.36, 38.54, 21.30, 24.20},
	{"TYR", 212.76, 38.54, 21.30, 42.40},
	{"VAL", 151.44, 38.54, 21.30, 0.00},
}

//residueMaxAreas is the reference table of the built-in classifier.
var residueMaxAreas = buildMaxAreas(refSpecs)

func buildMaxAreas(specs []refSpec) []Subarea {
	ref := make([]Subarea, len(specs))
	for i, sp := range specs {
		side := sp.total - sp.main
		ref[i] = Subarea{
			Name:            sp.name,
			Total:           sp.total,
			Polar:           sp.mainPol + sp.sidePol,
			Apolar:          sp.total - sp.mainPol - sp.sidePol,
			MainChain:       sp.main,
			SideChain:       side,
			SideChainPolar:  sp.sidePol,
			SideChainApolar: side - sp.sidePol,
		}
	}
	return ref
}
