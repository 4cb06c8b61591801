/*
 * structure.go, part of gosasa.
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
	"fmt"
	"strconv"
	"strings"
)

//Atom contains the information about one atom that the classification and
//aggregation layers need. Coordinates are kept separately, in a v3.Matrix.
type Atom struct {
	Name    string //atom name, e.g. "CA"
	MolName string //residue name, e.g. "ALA"
	MolID   int    //residue number
	ICode   string //PDB insertion code, usually empty
	Chain   string //chain label, one character
	Symbol  string //chemical element
	Het     bool   //HETATM in the PDB file?
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	at := *A
	return &at
}

//Atomer is the basic interface for a molecular structure: anything that
//can hand out atoms by index.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//Structure is a read-only molecular structure with residue and chain
//indexing on top of the flat atom sequence. Atom order defines residue
//order: a residue is a maximal run of consecutive atoms sharing chain,
//residue number, insertion code and residue name.
type Structure struct {
	atoms    []*Atom
	resFirst []int    //index of the first atom of each residue
	resChain []int    //chain index of each residue
	chains   []string //chain labels, in order of first appearance
}

//NewStructure builds a Structure from the given atoms. The slice is kept,
//not copied; it must not be modified afterwards.
func NewStructure(atoms []*Atom) (*Structure, error) {
	if len(atoms) == 0 {
		return nil, newError("empty structure", "NewStructure")
	}
	s := &Structure{atoms: atoms}
	for i, at := range atoms {
		if at == nil {
			return nil, newError(fmt.Sprintf("nil atom at index %d", i), "NewStructure")
		}
		ci := -1
		for k, c := range s.chains {
			if c == at.Chain {
				ci = k
				break
			}
		}
		if ci < 0 {
			s.chains = append(s.chains, at.Chain)
			ci = len(s.chains) - 1
		}
		if i == 0 || !sameResidue(atoms[i-1], at) {
			s.resFirst = append(s.resFirst, i)
			s.resChain = append(s.resChain, ci)
		}
	}
	return s, nil
}

func sameResidue(a, b *Atom) bool {
	return a.Chain == b.Chain && a.MolID == b.MolID && a.ICode == b.ICode && a.MolName == b.MolName
}

//Atom returns the Atom corresponding to the index i. Panics if out of
//range, as this is a fundamental accessor.
func (s *Structure) Atom(i int) *Atom {
	if i >= len(s.atoms) {
		panic("Structure: requested Atom out of bounds")
	}
	return s.atoms[i]
}

//Len returns the number of atoms in the structure.
func (s *Structure) Len() int {
	return len(s.atoms)
}

//NResidues returns the number of residues in the structure.
func (s *Structure) NResidues() int {
	return len(s.resFirst)
}

//Residue returns the atom index range [first,last] of the rith residue.
func (s *Structure) Residue(ri int) (first, last int) {
	first = s.resFirst[ri]
	if ri == len(s.resFirst)-1 {
		return first, len(s.atoms) - 1
	}
	return first, s.resFirst[ri+1] - 1
}

//ResidueChainIndex returns the chain index of the rith residue.
func (s *Structure) ResidueChainIndex(ri int) int {
	return s.resChain[ri]
}

//Chains returns the chain labels in order of first appearance.
func (s *Structure) Chains() []string {
	return s.chains
}

//ChainIndex returns the index of the chain with the given label, or Fail
//if the label is not present in the structure.
func (s *Structure) ChainIndex(label string) (int, Status) {
	for i, c := range s.chains {
		if c == label {
			return i, Success
		}
	}
	return -1, Failf("chain '%s' not found in structure", label)
}

//chainLabel gives the single character used in descriptors.
func chainLabel(c string) string {
	if c == "" {
		return " "
	}
	return c[:1]
}

//pdbAtomName pads an atom name to the conventional 4-character PDB field:
//names shorter than 4 characters get one leading space, e.g. "CA" -> " CA ".
func pdbAtomName(name string) string {
	if len(name) >= 4 {
		return name[:4]
	}
	return fmt.Sprintf(" %-3s", name)
}

//AtomDescriptor returns a fixed-layout string describing atom i:
//chain label, residue number, residue name and atom name, e.g.
//"A    1 ALA  CA ".
func (s *Structure) AtomDescriptor(i int) string {
	at := s.Atom(i)
	num := strconv.Itoa(at.MolID) + at.ICode
	return fmt.Sprintf("%s %4s %-3s %s", chainLabel(at.Chain), num, at.MolName, pdbAtomName(at.Name))
}

//ResidueDescriptor returns a fixed-layout string describing the rith
//residue: chain label, residue number and residue name, e.g. "A    1 ALA".
func (s *Structure) ResidueDescriptor(ri int) string {
	at := s.Atom(s.resFirst[ri])
	num := strconv.Itoa(at.MolID) + at.ICode
	return fmt.Sprintf("%s %4s %-3s", chainLabel(at.Chain), num, at.MolName)
}

//backboneNames are the atom names of the protein main chain.
var backboneNames = [...]string{"CA", "N", "O", "C"}

//IsBackbone returns whether name, after trimming surrounding whitespace,
//is exactly one of the protein backbone atom names CA, N, O or C. It does
//not check that the atom actually exists.
func IsBackbone(name string) bool {
	name = strings.TrimSpace(name)
	for _, b := range backboneNames {
		if name == b {
			return true
		}
	}
	return false
}

//ResidueSASA sums the SASA of all atoms of the rith residue.
func ResidueSASA(s *Structure, sasa []float64, ri int) float64 {
	first, last := s.Residue(ri)
	total := 0.0
	for i := first; i <= last; i++ {
		total += sasa[i]
	}
	return total
}
