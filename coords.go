/*
 * coords.go, part of gosasa.
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
	v3 "github.com/rmera/gosasa/v3"
)

//sphereSet is the internal, flat form of the input: one probe-expanded
//sphere per atom. It is built once per calculation and read-only for all
//workers afterwards.
type sphereSet struct {
	x, y, z []float64
	r       []float64 //radius + probe
	maxr    float64
}

//newSphereSet copies the coordinates and the probe-expanded radii out of
//the caller's containers. Returns nil and Fail on inconsistent input.
func newSphereSet(coord *v3.Matrix, radii []float64, probe float64) (*sphereSet, Status) {
	if coord == nil {
		return nil, Failf("nil coordinates")
	}
	n := coord.NVecs()
	if n != len(radii) {
		return nil, Failf("inconsistent input: %d coordinates but %d radii", n, len(radii))
	}
	s := &sphereSet{
		x: make([]float64, n),
		y: make([]float64, n),
		z: make([]float64, n),
		r: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		if radii[i] < 0 {
			return nil, Failf("negative radius for atom %d: %g A", i, radii[i])
		}
		s.x[i] = coord.At(i, 0)
		s.y[i] = coord.At(i, 1)
		s.z[i] = coord.At(i, 2)
		s.r[i] = radii[i] + probe
		if s.r[i] > s.maxr {
			s.maxr = s.r[i]
		}
	}
	return s, Success
}

func (s *sphereSet) n() int {
	return len(s.r)
}
