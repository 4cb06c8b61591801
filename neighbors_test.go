/*
 * neighbors_test.go, part of gosasa.
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
	"sort"
	"testing"
)

//TestNeighborList compares the cell-list search against the quadratic
//brute force on the random cluster: the sets must be identical, i.e. no
//false negatives and no spurious pairs.
func TestNeighborList(Te *testing.T) {
	coord, radii := randomCluster(80)
	s, st := newSphereSet(coord, radii, 1.4)
	if st != Success {
		Te.Fatalf("newSphereSet returned %v", st)
	}
	nl := newNeighborList(s)
	n := s.n()
	for i := 0; i < n; i++ {
		brute := []int{}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			dx := s.x[i] - s.x[j]
			dy := s.y[i] - s.y[j]
			dz := s.z[i] - s.z[j]
			if math.Sqrt(dx*dx+dy*dy+dz*dz) < s.r[i]+s.r[j] {
				brute = append(brute, j)
			}
		}
		got := append([]int{}, nl.nb[i]...)
		sort.Ints(got)
		if len(got) != len(brute) {
			Te.Fatalf("atom %d: %d neighbors, brute force finds %d", i, len(got), len(brute))
		}
		for k := range got {
			if got[k] != brute[k] {
				Te.Errorf("atom %d: neighbor sets differ: %v vs %v", i, got, brute)
				break
			}
		}
	}
}

//TestSphereSetErrors checks the input validation of the sphere set.
func TestSphereSetErrors(Te *testing.T) {
	if _, st := newSphereSet(nil, []float64{1}, 1.4); st != Fail {
		Te.Errorf("nil coordinates accepted")
	}
	coord, _ := randomCluster(3)
	if _, st := newSphereSet(coord, []float64{1, 2}, 1.4); st != Fail {
		Te.Errorf("length mismatch accepted")
	}
	if _, st := newSphereSet(coord, []float64{1, -2, 3}, 1.4); st != Fail {
		Te.Errorf("negative radius accepted")
	}
	s, st := newSphereSet(coord, []float64{1, 2, 3}, 1.4)
	if st != Success || s.n() != 3 {
		Te.Errorf("valid input rejected: %v", st)
	}
	if s.r[1] != 3.4 {
		Te.Errorf("probe not added to radii: %f", s.r[1])
	}
}
