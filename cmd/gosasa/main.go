/*
 * main.go, part of gosasa.
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

//gosasa computes the solvent-accessible surface area of a PDB structure
//and prints per-chain totals and an RSA-style per-residue table.
package main

import (
	"flag"
	"fmt"
	"os"

	sasa "github.com/rmera/gosasa"
	"github.com/rmera/gosasa/pdb"
	"github.com/rmera/gosasa/sasajson"
	"github.com/rmera/gosasa/sasaplot"
)

func main() {
	shrake := flag.Bool("S", false, "use the Shrake & Rupley algorithm instead of Lee & Richards")
	probe := flag.Float64("probe", sasa.DefProbeRadius, "probe radius, in A")
	points := flag.Int("points", sasa.DefTestPoints, "test points per atom (Shrake & Rupley)")
	slices := flag.Int("slices", sasa.DefSlices, "slices per atom (Lee & Richards)")
	threads := flag.Int("threads", sasa.DefThreads, "number of worker goroutines")
	het := flag.Bool("het", false, "include HETATM records")
	jsonOut := flag.String("json", "", "write a JSON report to the given file")
	plotOut := flag.String("plot", "", "write a per-residue SASA profile to the given image file")
	rsa := flag.Bool("rsa", false, "print the per-residue RSA table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gosasa [flags] structure.pdb[.gz]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opt := pdb.DefaultOptions()
	opt.Hetatm = *het
	mol, coords, err := pdb.Read(flag.Arg(0), opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gosasa:", err)
		os.Exit(1)
	}
	radii, _ := sasa.VdwRadii(mol)

	params := sasa.DefaultParameters()
	if *shrake {
		params.Alg = sasa.ShrakeRupleyAlg
	}
	params.ProbeRadius = *probe
	params.TestPoints = *points
	params.Slices = *slices
	params.Threads = *threads

	areas := make([]float64, mol.Len())
	if st := sasa.Calc(areas, coords, radii, params); st == sasa.Fail {
		os.Exit(1) //the reason is already on stderr
	}

	classifier := sasa.NewResidueClassifier()
	agg, st := sasa.Classify(mol, areas, classifier)
	if st == sasa.Fail {
		os.Exit(1)
	}

	fmt.Printf("# gosasa, %s, probe %.2f A, %d atoms\n", params.Alg, params.ProbeRadius, mol.Len())
	fmt.Printf("Total: %9.2f A^2 (polar %.2f, apolar %.2f)\n", agg.Total.Total, agg.Total.Polar, agg.Total.Apolar)
	for i, c := range agg.Chains {
		fmt.Printf("Chain %s: %9.2f A^2\n", mol.Chains()[i], c.Total)
	}
	if *rsa {
		printRSA(mol, areas, classifier)
	}

	if *jsonOut != "" {
		rep, st := sasajson.NewReport(mol, areas, params, classifier)
		if st == sasa.Fail {
			os.Exit(1)
		}
		f, err := os.Create(*jsonOut)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gosasa:", err)
			os.Exit(1)
		}
		if err = rep.Send(f); err != nil {
			fmt.Fprintln(os.Stderr, "gosasa:", err)
			os.Exit(1)
		}
		f.Close()
	}
	if *plotOut != "" {
		if err := sasaplot.ResidueProfile(mol, areas, *plotOut); err != nil {
			fmt.Fprintln(os.Stderr, "gosasa:", err)
			os.Exit(1)
		}
	}
}

//printRSA prints one line per residue: descriptor, absolute areas and,
//where reference values exist, relative exposures.
func printRSA(mol *sasa.Structure, areas []float64, c sasa.Classifier) {
	fmt.Println("RES        ALL-ATOMS       SIDE-CHAIN      MAIN-CHAIN")
	fmt.Println("            ABS   REL       ABS   REL       ABS   REL")
	for ri := 0; ri < mol.NResidues(); ri++ {
		abs, rel, st := sasa.ResidueAreas(ri, mol, areas, c)
		if st == sasa.Fail {
			return
		}
		if st == sasa.Warn {
			fmt.Printf("%s %8.2f   N/A  %8.2f   N/A  %8.2f   N/A\n",
				mol.ResidueDescriptor(ri), abs.Total, abs.SideChain, abs.MainChain)
			continue
		}
		fmt.Printf("%s %8.2f %5.1f  %8.2f %5.1f  %8.2f %5.1f\n",
			mol.ResidueDescriptor(ri),
			abs.Total, 100*rel.Total,
			abs.SideChain, 100*rel.SideChain,
			abs.MainChain, 100*rel.MainChain)
	}
}
