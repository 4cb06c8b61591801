/*
 * pdb.go, part of gosasa.
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

//Package pdb reads molecular structures from PDB files, including
//gzip-compressed ones, producing the structure and coordinate objects
//consumed by the SASA calculation. Only the fields this library needs are
//read; this is not a general-purpose PDB parser.
package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	sasa "github.com/rmera/gosasa"
	v3 "github.com/rmera/gosasa/v3"
)

//Options controls what is kept while reading.
type Options struct {
	Hetatm    bool //keep HETATM records
	Hydrogens bool //keep hydrogens
}

//DefaultOptions returns the default reading options: no HETATM records,
//hydrogens kept when present.
func DefaultOptions() *Options {
	return &Options{Hetatm: false, Hydrogens: true}
}

//Read reads the first model of the PDB file in path. Files ending in .gz
//are decompressed on the fly.
func Read(path string, options ...*Options) (*sasa.Structure, *v3.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, nil, err
		}
		defer gz.Close()
		r = gz
	}
	return ReadFrom(r, options...)
}

//ReadFrom reads the first model of a PDB from r.
func ReadFrom(r io.Reader, options ...*Options) (*sasa.Structure, *v3.Matrix, error) {
	o := DefaultOptions()
	if len(options) > 0 {
		o = options[0]
	}
	var atoms []*sasa.Atom
	var coords []float64
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") || strings.HasPrefix(line, "END ") || line == "END" {
			break //only the first model is read
		}
		het := strings.HasPrefix(line, "HETATM")
		if !het && !strings.HasPrefix(line, "ATOM") {
			continue
		}
		if het && !o.Hetatm {
			continue
		}
		at, xyz, err := readAtomLine(line)
		if err != nil {
			return nil, nil, fmt.Errorf("pdb: line %d: %w", lineno, err)
		}
		if at == nil {
			continue //alternate location we don't keep
		}
		if !o.Hydrogens && at.Symbol == "H" {
			continue
		}
		at.Het = het
		atoms = append(atoms, at)
		coords = append(coords, xyz...)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(atoms) == 0 {
		return nil, nil, fmt.Errorf("pdb: no atoms read")
	}
	mol, err := sasa.NewStructure(atoms)
	if err != nil {
		return nil, nil, err
	}
	xyz, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, nil, err
	}
	return mol, xyz, nil
}

//readAtomLine parses a valid ATOM or HETATM line, returning the atom and
//its coordinates. Atoms with an alternate-location indicator other than
//' ' or 'A' come back as nil.
func readAtomLine(line string) (*sasa.Atom, []float64, error) {
	if len(line) < 54 {
		return nil, nil, fmt.Errorf("truncated record")
	}
	if line[16] != ' ' && line[16] != 'A' {
		return nil, nil, nil
	}
	err := make([]error, 4) //checked at the end of the read
	at := new(sasa.Atom)
	at.Name = strings.TrimSpace(line[12:16])
	at.MolName = strings.TrimSpace(line[17:20])
	at.Chain = strings.TrimSpace(line[21:22])
	at.MolID, err[0] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	at.ICode = strings.TrimSpace(line[26:27])
	coords := make([]float64, 3)
	coords[0], err[1] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[2] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[3] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	//the element field is optional, we guess from the name when missing
	if len(line) >= 78 {
		at.Symbol = strings.TrimSpace(line[76:78])
		if len(at.Symbol) == 2 {
			at.Symbol = at.Symbol[:1] + strings.ToLower(at.Symbol[1:])
		}
	}
	if at.Symbol == "" {
		at.Symbol, _ = sasa.SymbolFromName(at.Name) //empty on failure, radii fall back later
	}
	for _, e := range err {
		if e != nil {
			return nil, nil, e
		}
	}
	return at, coords, nil
}
