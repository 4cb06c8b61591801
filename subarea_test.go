/*
 * subarea_test.go, part of gosasa.
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

import (
	"math"
	"testing"
)

func subareaEqual(a, b *Subarea, tol float64) bool {
	return math.Abs(a.Total-b.Total) <= tol &&
		math.Abs(a.Polar-b.Polar) <= tol &&
		math.Abs(a.Apolar-b.Apolar) <= tol &&
		math.Abs(a.MainChain-b.MainChain) <= tol &&
		math.Abs(a.SideChain-b.SideChain) <= tol &&
		math.Abs(a.SideChainPolar-b.SideChainPolar) <= tol &&
		math.Abs(a.SideChainApolar-b.SideChainApolar) <= tol
}

func TestSubareaAdd(Te *testing.T) {
	a := Subarea{Total: 1, Polar: 0.5, Apolar: 0.5, MainChain: 1}
	b := Subarea{Total: 2, Polar: 2, SideChain: 2, SideChainPolar: 2}
	c := Subarea{Total: 4, Apolar: 4, SideChain: 4, SideChainApolar: 4}

	ab := a
	ab.Add(&b)
	ba := b
	ba.Add(&a)
	if !subareaEqual(&ab, &ba, 0) {
		Te.Errorf("Add is not commutative: %+v vs %+v", ab, ba)
	}

	abc := ab
	abc.Add(&c)
	bc := b
	bc.Add(&c)
	abc2 := a
	abc2.Add(&bc)
	if !subareaEqual(&abc, &abc2, 0) {
		Te.Errorf("Add is not associative: %+v vs %+v", abc, abc2)
	}
	if abc.Total != 7 || abc.Polar != 2.5 || abc.Apolar != 4.5 {
		Te.Errorf("wrong sums: %+v", abc)
	}
}

func TestClassify(Te *testing.T) {
	s := testStructure()
	sasa := []float64{1, 2, 3, 4, 5, 10, 20, 30, 40, 7}
	c := NewResidueClassifier()
	areas, st := Classify(s, sasa, c)
	if st != Success {
		Te.Fatalf("Classify returned %v", st)
	}
	if len(areas.Residues) != 3 || len(areas.Chains) != 2 {
		Te.Fatalf("wrong record counts: %d residues, %d chains", len(areas.Residues), len(areas.Chains))
	}
	//each residue record must equal the field-wise sum of its atoms
	for ri := range areas.Residues {
		var sum Subarea
		first, last := s.Residue(ri)
		for i := first; i <= last; i++ {
			a := AtomSubarea(s, sasa, c, i)
			sum.Add(&a)
		}
		if !subareaEqual(&areas.Residues[ri], &sum, 1e-12) {
			Te.Errorf("residue %d: record %+v differs from atom sum %+v", ri, areas.Residues[ri], sum)
		}
		if areas.Residues[ri].Total != ResidueSASA(s, sasa, ri) {
			Te.Errorf("residue %d: subarea total differs from plain residue SASA", ri)
		}
	}
	//chains must sum to the whole-structure record
	var chainsum Subarea
	for k := range areas.Chains {
		chainsum.Add(&areas.Chains[k])
	}
	if !subareaEqual(&chainsum, &areas.Total, 1e-9) {
		Te.Errorf("chain records %+v do not sum to the total %+v", chainsum, areas.Total)
	}
	if areas.Total.Total != 122 {
		Te.Errorf("grand total: got %f, want 122", areas.Total.Total)
	}
	//the ALA record, by hand: N and O polar, N main-chain etc.
	ala := areas.Residues[0]
	if ala.Name != "ALA" || ala.Total != 15 || ala.Polar != 5 || ala.Apolar != 10 ||
		ala.MainChain != 10 || ala.SideChain != 5 || ala.SideChainApolar != 5 || ala.SideChainPolar != 0 {
		Te.Errorf("wrong ALA record: %+v", ala)
	}

	if _, st := Classify(s, sasa[:5], c); st != Fail {
		Te.Errorf("inconsistent SASA array accepted")
	}
}

func TestRelativeSubarea(Te *testing.T) {
	c := NewResidueClassifier()
	max := c.ResidueMaxArea("ALA")
	if max == nil {
		Te.Fatalf("no reference for ALA")
	}
	abs := Subarea{
		Name:      "ALA",
		Total:     max.Total / 2,
		Polar:     max.Polar / 4,
		MainChain: max.MainChain,
	}
	rel, st := RelativeSubarea(&abs, c)
	if st != Success {
		Te.Fatalf("RelativeSubarea returned %v", st)
	}
	if math.Abs(rel.Total-0.5) > 1e-12 || math.Abs(rel.Polar-0.25) > 1e-12 || math.Abs(rel.MainChain-1.0) > 1e-12 {
		Te.Errorf("wrong relative record: %+v", rel)
	}
	//ALA has no polar side chain, so the reference maximum is zero and the
	//relative value must be zero too, not a division by zero
	if rel.SideChainPolar != 0 {
		Te.Errorf("zero-reference field should stay zero, got %f", rel.SideChainPolar)
	}

	rel, st = RelativeSubarea(&Subarea{Name: "HOH", Total: 10}, c)
	if st != Warn {
		Te.Errorf("missing reference should Warn, got %v", st)
	}
	if rel.Name != "" || rel.Total != 0 {
		Te.Errorf("missing reference should yield the empty sentinel, got %+v", rel)
	}
}

func TestResidueAreas(Te *testing.T) {
	s := testStructure()
	sasa := []float64{1, 2, 3, 4, 5, 10, 20, 30, 40, 7}
	c := NewResidueClassifier()
	abs, rel, st := ResidueAreas(0, s, sasa, c)
	if st != Success {
		Te.Fatalf("ResidueAreas returned %v", st)
	}
	if abs.Name != "ALA" || abs.Total != 15 {
		Te.Errorf("wrong absolute record: %+v", abs)
	}
	max := c.ResidueMaxArea("ALA")
	if math.Abs(rel.Total-abs.Total/max.Total) > 1e-12 {
		Te.Errorf("wrong relative total: %f", rel.Total)
	}
	//water has no reference
	if _, rel, st := ResidueAreas(2, s, sasa, c); st != Warn || rel.Name != "" {
		Te.Errorf("water should give Warn and the sentinel, got %v, %+v", st, rel)
	}
	if _, _, st := ResidueAreas(5, s, sasa, c); st != Fail {
		Te.Errorf("out-of-range residue accepted")
	}
	if _, _, st := ResidueAreas(0, s, sasa[:3], c); st != Fail {
		Te.Errorf("inconsistent SASA array accepted")
	}
}
