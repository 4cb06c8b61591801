/*
 * shrakerupley.go, part of gosasa.
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

	v3 "github.com/rmera/gosasa/v3"
)

//ShrakeRupley estimates the SASA of every atom with the test-point method
//of Shrake and Rupley, writing the result, in A^2, to the caller-allocated
//slice sasa, index-aligned with coord. radii holds the un-expanded radius
//of each atom; the probe radius from params is added to every one of them.
//A nil params means DefaultParameters. Returns Success, Warn if
//multithreading was requested but is unavailable (the result is then
//identical to a single-threaded run), or Fail on invalid input, in which
//case sasa must be discarded.
func ShrakeRupley(sasa []float64, coord *v3.Matrix, radii []float64, params *Parameters) Status {
	if params == nil {
		params = DefaultParameters()
	}
	s, st := newSphereSet(coord, radii, params.ProbeRadius)
	if st == Fail {
		return Fail
	}
	workers, st := engineSetup(sasa, s, params, ShrakeRupleyAlg)
	if st == Fail {
		return Fail
	}
	pts := testPoints(params.TestPoints)
	nl := newNeighborList(s)
	err := dispatch(s.n(), workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			sasa[i] = srAtom(s, nl.nb[i], i, pts)
		}
	})
	if err != nil {
		return Failf("Shrake & Rupley aborted: %v", err)
	}
	return st
}

//testPoints places n quasi-uniform points on the unit sphere with a golden
//section spiral, returned as a flat x,y,z slice. The construction is
//deterministic: the same n always yields the same point set, so results
//are reproducible across runs and thread counts.
func testPoints(n int) []float64 {
	pts := make([]float64, 3*n)
	golden := math.Pi * (3.0 - math.Sqrt(5.0))
	for i := 0; i < n; i++ {
		z := 1.0 - (2.0*float64(i)+1.0)/float64(n)
		rho := math.Sqrt(1.0 - z*z)
		theta := golden * float64(i)
		pts[3*i] = rho * math.Cos(theta)
		pts[3*i+1] = rho * math.Sin(theta)
		pts[3*i+2] = z
	}
	return pts
}

//srAtom counts the test points of atom i that are not strictly inside any
//neighboring sphere and scales the exposed fraction by the full sphere
//area. With no neighbors in range every point is exposed and the atom gets
//exactly 4*pi*r^2.
func srAtom(s *sphereSet, nb []int, i int, pts []float64) float64 {
	ri := s.r[i]
	n := len(pts) / 3
	exposed := 0
	for k := 0; k < n; k++ {
		px := s.x[i] + ri*pts[3*k]
		py := s.y[i] + ri*pts[3*k+1]
		pz := s.z[i] + ri*pts[3*k+2]
		buried := false
		for _, j := range nb {
			dx := px - s.x[j]
			dy := py - s.y[j]
			dz := pz - s.z[j]
			if dx*dx+dy*dy+dz*dz < s.r[j]*s.r[j] {
				buried = true
				break
			}
		}
		if !buried {
			exposed++
		}
	}
	return 4 * math.Pi * ri * ri * float64(exposed) / float64(n)
}
