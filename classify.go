/*
 * classify.go, part of gosasa.
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

import "strings"

//Class is the category a Classifier assigns to an atom.
type Class int

const (
	Apolar Class = iota
	Polar
	MainChain
	SideChain
	ClassUnknown
)

func (c Class) String() string {
	switch c {
	case Apolar:
		return "apolar"
	case Polar:
		return "polar"
	case MainChain:
		return "main-chain"
	case SideChain:
		return "side-chain"
	}
	return "unknown"
}

//Classifier assigns a category to each atom and knows the reference
//maximum areas of residues, for relative-exposure calculations. The
//variants are interchangeable; classifiers are long-lived, read-only and
//safe to share between concurrent calculations.
type Classifier interface {

	//Class returns the category of the atom a.
	Class(a *Atom) Class

	//ResidueMaxArea returns the maximum areas of the named residue, or
	//nil if the classifier has no reference for it. A nil return is not
	//unusual: a classifier may have maxima for amino acids but not for
	//nucleic acids, for example.
	ResidueMaxArea(resName string) *Subarea

	//Name identifies the classifier in reports.
	Name() string
}

//ResidueClassifier is the built-in classifier: atoms are polar or apolar
//according to their element, and the reference maxima are the standard
//amino-acid table compiled into the library.
type ResidueClassifier struct {
	name string
	ref  []Subarea
}

//NewResidueClassifier returns the built-in residue classifier.
func NewResidueClassifier() *ResidueClassifier {
	return &ResidueClassifier{name: "default", ref: residueMaxAreas}
}

func (c *ResidueClassifier) Name() string {
	return c.name
}

//Class returns Apolar for carbon and hydrogen, Polar for the
//heteroelements and ClassUnknown for anything it cannot identify.
func (c *ResidueClassifier) Class(a *Atom) Class {
	symbol := a.Symbol
	if symbol == "" {
		symbol, _ = SymbolFromName(a.Name)
	}
	switch symbol {
	case "C", "H":
		return Apolar
	case "N", "O", "S", "P", "Se":
		return Polar
	}
	return ClassUnknown
}

func (c *ResidueClassifier) ResidueMaxArea(resName string) *Subarea {
	return lookupMaxArea(c.ref, resName)
}

//BackboneClassifier only distinguishes main-chain from side-chain atoms.
//It carries no reference areas.
type BackboneClassifier struct{}

func (BackboneClassifier) Name() string {
	return "backbone"
}

func (BackboneClassifier) Class(a *Atom) Class {
	if IsBackbone(a.Name) {
		return MainChain
	}
	return SideChain
}

func (BackboneClassifier) ResidueMaxArea(resName string) *Subarea {
	return nil
}

//UserClassifier carries a caller-supplied classification: a residue-name
//to atom-name to Class mapping and, optionally, reference maximum areas.
//Parsing classifier configuration files is up to the caller.
type UserClassifier struct {
	ClassifierName string
	Classes        map[string]map[string]Class
	Ref            []Subarea
}

func (c *UserClassifier) Name() string {
	return c.ClassifierName
}

func (c *UserClassifier) Class(a *Atom) Class {
	res, ok := c.Classes[strings.TrimSpace(a.MolName)]
	if !ok {
		return ClassUnknown
	}
	cl, ok := res[strings.TrimSpace(a.Name)]
	if !ok {
		return ClassUnknown
	}
	return cl
}

func (c *UserClassifier) ResidueMaxArea(resName string) *Subarea {
	return lookupMaxArea(c.Ref, resName)
}

//lookupMaxArea scans a reference table for a residue name. The table is an
//explicit, length-known sequence; no sentinel termination is involved.
func lookupMaxArea(ref []Subarea, resName string) *Subarea {
	resName = strings.ToUpper(strings.TrimSpace(resName))
	for i := range ref {
		if ref[i].Name == resName {
			return &ref[i]
		}
	}
	return nil
}
