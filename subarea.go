/*
 * subarea.go, part of gosasa.
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

import "gonum.org/v1/gonum/floats"

//Subarea is an additive breakdown of a SASA value by chemical category
//(polar/apolar) and structural scope (main-chain/side-chain). An empty
//Name is a valid sentinel meaning "no classification or reference
//available"; such records carry all-zero fields.
type Subarea struct {
	Name            string
	Total           float64
	Polar           float64
	Apolar          float64
	MainChain       float64
	SideChain       float64
	SideChainPolar  float64
	SideChainApolar float64
}

//Add adds every field of term to the corresponding field of the receiver.
//Field-wise addition is commutative and associative, so subareas can be
//accumulated in any order and grouping.
func (s *Subarea) Add(term *Subarea) {
	s.Total += term.Total
	s.Polar += term.Polar
	s.Apolar += term.Apolar
	s.MainChain += term.MainChain
	s.SideChain += term.SideChain
	s.SideChainPolar += term.SideChainPolar
	s.SideChainApolar += term.SideChainApolar
}

//Areas is the classified aggregation of a per-atom SASA array: one record
//for the whole structure, one per chain (aligned with Structure.Chains)
//and one per residue.
type Areas struct {
	Total    Subarea
	Chains   []Subarea
	Residues []Subarea
}

//AtomSubarea classifies the SASA of atom i into a single-atom Subarea:
//polar or apolar according to c, main-chain or side-chain according to the
//backbone predicate. The record is named after the atom's residue. Atoms
//of unknown class count towards the total and the chain scopes but
//towards neither polar nor apolar.
func AtomSubarea(s *Structure, sasa []float64, c Classifier, i int) Subarea {
	at := s.Atom(i)
	a := Subarea{Name: at.MolName, Total: sasa[i]}
	bb := IsBackbone(at.Name)
	if bb {
		a.MainChain = sasa[i]
	} else {
		a.SideChain = sasa[i]
	}
	switch c.Class(at) {
	case Polar:
		a.Polar = sasa[i]
		if !bb {
			a.SideChainPolar = sasa[i]
		}
	case Apolar:
		a.Apolar = sasa[i]
		if !bb {
			a.SideChainApolar = sasa[i]
		}
	}
	return a
}

//Classify visits every atom of the structure once and accumulates its
//classified SASA into the residue, chain and whole-structure records. The
//per-atom array must be index-aligned with the structure. The residue
//records equal, field by field, the sum of their atoms' AtomSubarea
//records.
func Classify(s *Structure, sasa []float64, c Classifier) (*Areas, Status) {
	if s.Len() != len(sasa) {
		return nil, Failf("inconsistent input: %d atoms but %d SASA values", s.Len(), len(sasa))
	}
	areas := &Areas{
		Chains:   make([]Subarea, len(s.Chains())),
		Residues: make([]Subarea, s.NResidues()),
	}
	for k := range areas.Chains {
		areas.Chains[k].Name = s.Chains()[k]
	}
	for ri := range areas.Residues {
		first, last := s.Residue(ri)
		areas.Residues[ri].Name = s.Atom(first).MolName
		ci := s.ResidueChainIndex(ri)
		for i := first; i <= last; i++ {
			a := AtomSubarea(s, sasa, c, i)
			areas.Residues[ri].Add(&a)
			areas.Chains[ci].Add(&a)
			areas.Total.Add(&a)
		}
	}
	//The grand total must match the plain sum of the input array.
	areas.Total.Name = ""
	areas.Total.Total = floats.Sum(sasa)
	return areas, Success
}
