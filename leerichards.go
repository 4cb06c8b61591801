/*
 * leerichards.go, part of gosasa.
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

	v3 "github.com/rmera/gosasa/v3"
)

//LeeRichards estimates the SASA of every atom with the slicing method of
//Lee and Richards, writing the result, in A^2, to the caller-allocated
//slice sasa, index-aligned with coord. radii holds the un-expanded radius
//of each atom; the probe radius from params is added to every one of them.
//A nil params means DefaultParameters. Returns Success, Warn if
//multithreading was requested but is unavailable (the result is then
//identical to a single-threaded run), or Fail on invalid input, in which
//case sasa must be discarded.
//
//The sphere of each atom is cut by a common grid of constant-z planes,
//spaced by 2*rmax/slices where rmax is the largest expanded radius. The
//exposed arc of each circle of intersection, weighted by the band of the
//sphere assigned to its plane, adds up the atom's area. The outermost
//cutting planes of each sphere take the residue of the polar caps, so the
//bands of one sphere always sum to its full height and an isolated atom
//gets exactly 4*pi*r^2 regardless of the slice count.
func LeeRichards(sasa []float64, coord *v3.Matrix, radii []float64, params *Parameters) Status {
	if params == nil {
		params = DefaultParameters()
	}
	s, st := newSphereSet(coord, radii, params.ProbeRadius)
	if st == Fail {
		return Fail
	}
	workers, st := engineSetup(sasa, s, params, LeeRichardsAlg)
	if st == Fail {
		return Fail
	}
	if s.maxr <= 0 {
		//all spheres are points; nothing to slice
		for i := range sasa {
			sasa[i] = 0
		}
		return st
	}
	grid := newSliceGrid(s, params.Slices)
	nl := newNeighborList(s)
	err := dispatch(s.n(), workers, func(lo, hi int) {
		arcs := make([]arc, 0, 32) //scratch, reused across atoms of the chunk
		for i := lo; i < hi; i++ {
			sasa[i] = lrAtom(s, nl.nb[i], i, grid, arcs)
		}
	})
	if err != nil {
		return Failf("Lee & Richards aborted: %v", err)
	}
	return st
}

//sliceGrid is the common set of constant-z cutting planes, at
//zmin + delta/2 + m*delta.
type sliceGrid struct {
	zmin  float64
	delta float64
	nz    int
}

func newSliceGrid(s *sphereSet, slices int) *sliceGrid {
	g := new(sliceGrid)
	g.delta = 2 * s.maxr / float64(slices)
	zmax := math.Inf(-1)
	g.zmin = math.Inf(1)
	for i := 0; i < s.n(); i++ {
		g.zmin = math.Min(g.zmin, s.z[i]-s.r[i])
		zmax = math.Max(zmax, s.z[i]+s.r[i])
	}
	g.nz = int((zmax-g.zmin)/g.delta) + 1
	return g
}

func (g *sliceGrid) z(m int) float64 {
	return g.zmin + g.delta/2 + float64(m)*g.delta
}

//arc is a closed angular interval of a circle buried under a neighboring
//circle, in radians, with 0 <= theta0 < 2*pi and theta1 > theta0.
//Intervals crossing zero are split before the union is taken.
type arc struct {
	theta0, theta1 float64
}

//lrAtom integrates the exposed arcs of atom i over the grid planes cutting
//its sphere.
func lrAtom(s *sphereSet, nb []int, i int, g *sliceGrid, arcs []arc) float64 {
	R := s.r[i]
	if R <= 0 {
		return 0
	}
	cz := s.z[i]
	//the grid planes strictly inside (cz-R, cz+R)
	mlo := int(math.Ceil((cz - R - g.zmin - g.delta/2) / g.delta))
	if g.z(mlo) <= cz-R {
		mlo++
	}
	mhi := int(math.Floor((cz + R - g.zmin - g.delta/2) / g.delta))
	if g.z(mhi) >= cz+R {
		mhi--
	}
	if mlo < 0 {
		mlo = 0
	}
	if mhi >= g.nz {
		mhi = g.nz - 1
	}
	if mlo > mhi {
		//sphere too small for the grid spacing; a single equatorial
		//slice carries the whole 2R band
		return R * exposedAngle(s, nb, i, cz, R*R, arcs) * 2 * R
	}
	area := 0.0
	for m := mlo; m <= mhi; m++ {
		zs := g.z(m)
		r2 := R*R - (zs-cz)*(zs-cz)
		if r2 <= 0 {
			continue
		}
		zlow := zs - g.delta/2
		zhigh := zs + g.delta/2
		//the outermost cutting planes absorb the polar caps
		if m == mlo {
			zlow = cz - R
		}
		if m == mhi {
			zhigh = cz + R
		}
		area += R * exposedAngle(s, nb, i, zs, r2, arcs) * (zhigh - zlow)
	}
	return area
}

//exposedAngle returns the angle, in radians, of the circumference of atom
//i's circle at the plane z=zs that is not covered by any neighboring
//circle. r2 is the squared radius of atom i's circle at that plane.
func exposedAngle(s *sphereSet, nb []int, i int, zs, r2 float64, arcs []arc) float64 {
	ri := math.Sqrt(r2)
	arcs = arcs[:0]
	for _, j := range nb {
		dz := zs - s.z[j]
		rj2 := s.r[j]*s.r[j] - dz*dz
		if rj2 <= 0 {
			continue //neighbor's sphere does not reach this plane
		}
		rj := math.Sqrt(rj2)
		dx := s.x[j] - s.x[i]
		dy := s.y[j] - s.y[i]
		d := math.Hypot(dx, dy)
		if d >= ri+rj {
			continue //circles don't overlap
		}
		if d+ri <= rj {
			return 0 //circle fully covered
		}
		if d+rj <= ri {
			continue //neighbor circle inside ours, circumference untouched
		}
		cosg := (d*d + r2 - rj2) / (2 * d * ri)
		if cosg > 1 {
			cosg = 1
		} else if cosg < -1 {
			cosg = -1
		}
		gamma := math.Acos(cosg)
		alpha := math.Atan2(dy, dx)
		arcs = addArc(arcs, alpha-gamma, alpha+gamma)
	}
	return 2*math.Pi - buriedAngle(arcs)
}

//addArc normalizes the interval [t0,t1] to start in [0,2*pi) and appends
//it, split in two if it crosses zero.
func addArc(arcs []arc, t0, t1 float64) []arc {
	const twopi = 2 * math.Pi
	for t0 < 0 {
		t0 += twopi
		t1 += twopi
	}
	for t0 >= twopi {
		t0 -= twopi
		t1 -= twopi
	}
	if t1 > twopi {
		arcs = append(arcs, arc{0, t1 - twopi})
		t1 = twopi
	}
	return append(arcs, arc{t0, t1})
}

//buriedAngle returns the total measure of the union of the intervals.
func buriedAngle(arcs []arc) float64 {
	if len(arcs) == 0 {
		return 0
	}
	sort.Slice(arcs, func(a, b int) bool { return arcs[a].theta0 < arcs[b].theta0 })
	total := 0.0
	start := arcs[0].theta0
	end := arcs[0].theta1
	for _, a := range arcs[1:] {
		if a.theta0 > end {
			total += end - start
			start = a.theta0
			end = a.theta1
			continue
		}
		if a.theta1 > end {
			end = a.theta1
		}
	}
	total += end - start
	if total > 2*math.Pi {
		total = 2 * math.Pi
	}
	return total
}
