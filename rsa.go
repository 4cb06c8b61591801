/*
 * rsa.go, part of gosasa.
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

//RelativeSubarea divides the fields of an absolute residue Subarea by the
//reference maxima of the classifier, producing relative exposures. Fields
//whose reference maximum is zero are set to zero. If the classifier has no
//reference for the residue, the returned record has an empty Name, all
//fields zero, and the Status is Warn; the caller can keep using the
//absolute values.
func RelativeSubarea(abs *Subarea, c Classifier) (Subarea, Status) {
	max := c.ResidueMaxArea(abs.Name)
	if max == nil {
		return Subarea{}, Warnf("no reference area for residue '%s' in classifier '%s'", abs.Name, c.Name())
	}
	rel := Subarea{Name: abs.Name}
	rel.Total = relDiv(abs.Total, max.Total)
	rel.Polar = relDiv(abs.Polar, max.Polar)
	rel.Apolar = relDiv(abs.Apolar, max.Apolar)
	rel.MainChain = relDiv(abs.MainChain, max.MainChain)
	rel.SideChain = relDiv(abs.SideChain, max.SideChain)
	rel.SideChainPolar = relDiv(abs.SideChainPolar, max.SideChainPolar)
	rel.SideChainApolar = relDiv(abs.SideChainApolar, max.SideChainApolar)
	return rel, Success
}

func relDiv(abs, max float64) float64 {
	if max > 0 {
		return abs / max
	}
	return 0
}

//ResidueAreas returns the absolute and relative classified SASA of the
//rith residue. The relative record degrades to the empty sentinel, with a
//Warn, where the classifier lacks a reference; Fail means the structure
//and the SASA array are inconsistent and both records must be discarded.
func ResidueAreas(ri int, s *Structure, sasa []float64, c Classifier) (abs, rel Subarea, st Status) {
	if s.Len() != len(sasa) {
		return abs, rel, Failf("inconsistent input: %d atoms but %d SASA values", s.Len(), len(sasa))
	}
	if ri < 0 || ri >= s.NResidues() {
		return abs, rel, Failf("residue index %d out of range (%d residues)", ri, s.NResidues())
	}
	first, last := s.Residue(ri)
	for i := first; i <= last; i++ {
		a := AtomSubarea(s, sasa, c, i)
		abs.Add(&a)
	}
	abs.Name = s.Atom(first).MolName //Add does not touch the name
	rel, st = RelativeSubarea(&abs, c)
	return abs, rel, st
}
