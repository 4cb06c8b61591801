/*
 * json.go, part of gosasa.
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

//Package sasajson serializes SASA results for consumption by external
//programs. Each report is tagged with a unique run id so results from
//repeated calculations can be told apart downstream.
package sasajson

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"
	sasa "github.com/rmera/gosasa"
)

//Residue is a ready-to-serialize container for the classified areas of
//one residue. Relative values are only present where the classifier had a
//reference for the residue.
type Residue struct {
	Descriptor string
	Abs        sasa.Subarea
	Rel        *sasa.Subarea `json:",omitempty"`
}

//Report is a ready-to-serialize container for one calculation.
type Report struct {
	RunID       string
	Algorithm   string
	ProbeRadius float64
	Classifier  string
	Atoms       int
	Total       sasa.Subarea
	Chains      []sasa.Subarea
	Residues    []Residue
}

//NewReport classifies and aggregates the per-atom areas into a Report.
//The returned Status is Warn when some residue lacked reference areas
//(its relative record is then omitted), Fail on inconsistent input.
func NewReport(mol *sasa.Structure, areas []float64, params *sasa.Parameters, c sasa.Classifier) (*Report, sasa.Status) {
	if params == nil {
		params = sasa.DefaultParameters()
	}
	agg, st := sasa.Classify(mol, areas, c)
	if st == sasa.Fail {
		return nil, st
	}
	rep := &Report{
		RunID:       uuid.NewString(),
		Algorithm:   params.Alg.String(),
		ProbeRadius: params.ProbeRadius,
		Classifier:  c.Name(),
		Atoms:       mol.Len(),
		Total:       agg.Total,
		Chains:      agg.Chains,
		Residues:    make([]Residue, mol.NResidues()),
	}
	for ri := range rep.Residues {
		rep.Residues[ri].Descriptor = mol.ResidueDescriptor(ri)
		rep.Residues[ri].Abs = agg.Residues[ri]
		rel, rst := sasa.RelativeSubarea(&agg.Residues[ri], c)
		if rst == sasa.Success {
			rep.Residues[ri].Rel = &rel
		} else {
			st = sasa.Warn
		}
	}
	return rep, st
}

//Send writes the report to out as a single JSON document.
func (r *Report) Send(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
