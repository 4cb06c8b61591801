/*
 * params.go, part of gosasa.
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

//Algorithm selects the surface-area engine.
type Algorithm int

const (
	//LeeRichardsAlg is the slicing method of Lee and Richards (1971).
	LeeRichardsAlg Algorithm = iota
	//ShrakeRupleyAlg is the test-point method of Shrake and Rupley (1973).
	ShrakeRupleyAlg
)

func (a Algorithm) String() string {
	switch a {
	case LeeRichardsAlg:
		return "Lee & Richards"
	case ShrakeRupleyAlg:
		return "Shrake & Rupley"
	}
	return "unknown"
}

//Default values for Parameters.
const (
	DefProbeRadius float64 = 1.4 //water
	DefTestPoints  int     = 100
	DefSlices      int     = 20
	DefThreads     int     = 1
)

//Parameters holds the configuration of one calculation. It is read-only
//for the duration of the calculation.
type Parameters struct {
	Alg         Algorithm
	ProbeRadius float64 //A
	TestPoints  int     //test points per atom (Shrake & Rupley)
	Slices      int     //slices per atom (Lee & Richards)
	Threads     int
}

//DefaultParameters returns a Parameters with the default options: the
//Lee & Richards algorithm, a 1.4 A probe, 100 test points, 20 slices per
//atom and sequential execution.
func DefaultParameters() *Parameters {
	return &Parameters{
		Alg:         LeeRichardsAlg,
		ProbeRadius: DefProbeRadius,
		TestPoints:  DefTestPoints,
		Slices:      DefSlices,
		Threads:     DefThreads,
	}
}

//validate checks p at calculation entry, short-circuiting with Fail before
//any work begins. alg is the engine about to run, so only its own sampling
//density is checked.
func (p *Parameters) validate(alg Algorithm) Status {
	if p.ProbeRadius < 0 {
		return Failf("negative probe radius (%g A)", p.ProbeRadius)
	}
	if p.Threads < 1 {
		return Failf("thread count must be at least 1, got %d", p.Threads)
	}
	switch alg {
	case ShrakeRupleyAlg:
		if p.TestPoints < 1 {
			return Failf("zero resolution for %s: %d test points", alg, p.TestPoints)
		}
	case LeeRichardsAlg:
		if p.Slices < 1 {
			return Failf("zero resolution for %s: %d slices", alg, p.Slices)
		}
	}
	return Success
}
