/*
 * plot.go, part of gosasa.
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

//Package sasaplot draws per-residue exposure profiles from SASA results.
package sasaplot

import (
	"fmt"
	"image/color"

	sasa "github.com/rmera/gosasa"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ResidueProfile plots the total SASA of each residue against its position
//in the structure and saves the plot to filename (the extension selects
//the format, e.g. .png or .svg).
func ResidueProfile(mol *sasa.Structure, areas []float64, filename string) error {
	if mol.Len() != len(areas) {
		return fmt.Errorf("sasaplot: %d atoms but %d SASA values", mol.Len(), len(areas))
	}
	pts := make(plotter.XYs, mol.NResidues())
	for ri := range pts {
		pts[ri].X = float64(ri + 1)
		pts[ri].Y = sasa.ResidueSASA(mol, areas, ri)
	}
	p := plot.New()
	p.Title.Text = "Per-residue SASA"
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "SASA (A^2)"
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, filename)
}

//ExposureProfile plots the relative total exposure of each residue (0-1)
//obtained with the given classifier. Residues without reference areas are
//skipped.
func ExposureProfile(mol *sasa.Structure, areas []float64, c sasa.Classifier, filename string) error {
	if mol.Len() != len(areas) {
		return fmt.Errorf("sasaplot: %d atoms but %d SASA values", mol.Len(), len(areas))
	}
	pts := make(plotter.XYs, 0, mol.NResidues())
	for ri := 0; ri < mol.NResidues(); ri++ {
		_, rel, st := sasa.ResidueAreas(ri, mol, areas, c)
		if st != sasa.Success {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(ri + 1), Y: rel.Total})
	}
	p := plot.New()
	p.Title.Text = "Relative exposure"
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "RSA"
	p.Y.Max = 1.0
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, filename)
}
