/*
 * neighbors.go, part of gosasa.
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

import "math"

//neighborList holds, for each atom, the indexes of the atoms whose
//probe-expanded spheres can intersect its own. It is built with a cell
//list: atoms are binned into cubic cells with an edge of twice the largest
//expanded radius, so any intersecting pair is guaranteed to sit in the
//same or adjacent cells. False positives only cost work in the engines'
//inner loops; false negatives would corrupt the result and cannot happen
//with this cell size.
type neighborList struct {
	nb [][]int
}

type cellGrid struct {
	edge             float64
	xmin, ymin, zmin float64
	nx, ny, nz       int
	cells            [][]int
}

func newCellGrid(s *sphereSet) *cellGrid {
	g := new(cellGrid)
	g.edge = 2 * s.maxr
	if g.edge <= 0 {
		g.edge = 1 //all radii zero; any positive edge works
	}
	g.xmin, g.ymin, g.zmin = math.Inf(1), math.Inf(1), math.Inf(1)
	xmax, ymax, zmax := math.Inf(-1), math.Inf(-1), math.Inf(-1)
	for i := 0; i < s.n(); i++ {
		g.xmin = math.Min(g.xmin, s.x[i])
		g.ymin = math.Min(g.ymin, s.y[i])
		g.zmin = math.Min(g.zmin, s.z[i])
		xmax = math.Max(xmax, s.x[i])
		ymax = math.Max(ymax, s.y[i])
		zmax = math.Max(zmax, s.z[i])
	}
	g.nx = int((xmax-g.xmin)/g.edge) + 1
	g.ny = int((ymax-g.ymin)/g.edge) + 1
	g.nz = int((zmax-g.zmin)/g.edge) + 1
	g.cells = make([][]int, g.nx*g.ny*g.nz)
	for i := 0; i < s.n(); i++ {
		c := g.cellIndex(s.x[i], s.y[i], s.z[i])
		g.cells[c] = append(g.cells[c], i)
	}
	return g
}

func (g *cellGrid) cellIndex(x, y, z float64) int {
	ix := int((x - g.xmin) / g.edge)
	iy := int((y - g.ymin) / g.edge)
	iz := int((z - g.zmin) / g.edge)
	return (iz*g.ny+iy)*g.nx + ix
}

//newNeighborList builds the adjacency lists for every atom in s. The lists
//are symmetric: j appears in nb[i] iff i appears in nb[j].
func newNeighborList(s *sphereSet) *neighborList {
	n := s.n()
	l := &neighborList{nb: make([][]int, n)}
	g := newCellGrid(s)
	for i := 0; i < n; i++ {
		ix := int((s.x[i] - g.xmin) / g.edge)
		iy := int((s.y[i] - g.ymin) / g.edge)
		iz := int((s.z[i] - g.zmin) / g.edge)
		for dz := -1; dz <= 1; dz++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					cx, cy, cz := ix+dx, iy+dy, iz+dz
					if cx < 0 || cy < 0 || cz < 0 || cx >= g.nx || cy >= g.ny || cz >= g.nz {
						continue
					}
					for _, j := range g.cells[(cz*g.ny+cy)*g.nx+cx] {
						if j == i {
							continue
						}
						cut := s.r[i] + s.r[j]
						if dist2(s, i, j) < cut*cut {
							l.nb[i] = append(l.nb[i], j)
						}
					}
				}
			}
		}
	}
	return l
}

func dist2(s *sphereSet, i, j int) float64 {
	dx := s.x[i] - s.x[j]
	dy := s.y[i] - s.y[j]
	dz := s.z[i] - s.z[j]
	return dx*dx + dy*dy + dz*dz
}
