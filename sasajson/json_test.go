/*
 * json_test.go, part of gosasa.
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

package sasajson

import (
	"bytes"
	"encoding/json"
	"testing"

	sasa "github.com/rmera/gosasa"
)

func testMol() (*sasa.Structure, []float64) {
	ats := []*sasa.Atom{
		{Name: "N", MolName: "ALA", MolID: 1, Chain: "A", Symbol: "N"},
		{Name: "CA", MolName: "ALA", MolID: 1, Chain: "A", Symbol: "C"},
		{Name: "CB", MolName: "ALA", MolID: 1, Chain: "A", Symbol: "C"},
		{Name: "O", MolName: "HOH", MolID: 2, Chain: "A", Symbol: "O", Het: true},
	}
	mol, err := sasa.NewStructure(ats)
	if err != nil {
		panic(err.Error())
	}
	return mol, []float64{5, 10, 15, 20}
}

func TestNewReport(Te *testing.T) {
	mol, areas := testMol()
	c := sasa.NewResidueClassifier()
	rep, st := NewReport(mol, areas, nil, c)
	//water has no reference, so the report carries a warning
	if st != sasa.Warn {
		Te.Fatalf("NewReport returned %v, want WARN", st)
	}
	if rep.RunID == "" {
		Te.Errorf("empty run ID")
	}
	if rep.Algorithm != "Lee & Richards" {
		Te.Errorf("wrong default algorithm: %s", rep.Algorithm)
	}
	if rep.ProbeRadius != 1.4 || rep.Classifier != "default" || rep.Atoms != 4 {
		Te.Errorf("wrong header fields: %+v", rep)
	}
	if rep.Total.Total != 50 {
		Te.Errorf("wrong total: %f", rep.Total.Total)
	}
	if len(rep.Residues) != 2 {
		Te.Fatalf("expected 2 residues, got %d", len(rep.Residues))
	}
	if rep.Residues[0].Descriptor != "A    1 ALA" {
		Te.Errorf("wrong descriptor: %q", rep.Residues[0].Descriptor)
	}
	if rep.Residues[0].Rel == nil {
		Te.Errorf("ALA should have a relative record")
	}
	if rep.Residues[1].Rel != nil {
		Te.Errorf("water should have no relative record")
	}
	if _, st := NewReport(mol, areas[:2], nil, c); st != sasa.Fail {
		Te.Errorf("inconsistent areas accepted")
	}
}

func TestSend(Te *testing.T) {
	mol, areas := testMol()
	rep, st := NewReport(mol, areas, sasa.DefaultParameters(), sasa.NewResidueClassifier())
	if st == sasa.Fail {
		Te.Fatalf("NewReport failed")
	}
	var buf bytes.Buffer
	if err := rep.Send(&buf); err != nil {
		Te.Fatalf("Send: %v", err)
	}
	var back Report
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		Te.Fatalf("report is not valid JSON: %v", err)
	}
	if back.RunID != rep.RunID || back.Total.Total != rep.Total.Total || len(back.Residues) != len(rep.Residues) {
		Te.Errorf("report did not survive the round trip")
	}
	//the water residue record must serialize without a Rel key
	if bytes.Count(buf.Bytes(), []byte(`"Rel"`)) != 1 {
		Te.Errorf("expected exactly one relative record in %s", buf.String())
	}
}
