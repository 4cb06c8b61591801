/*
 * doc.go, part of gosasa.
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

/*Package sasa computes the solvent-accessible surface area (SASA) of a
molecular model, given the coordinates of the atom centers and a radius for
each atom.

Two algorithms are provided: the test-point method of Shrake and Rupley and
the slicing method of Lee and Richards. Both take the same arguments, write
per-atom areas to a caller-allocated slice, and can distribute the work over
several goroutines:

	st := sasa.LeeRichards(areas, coords, radii, sasa.DefaultParameters())

On top of the per-atom values, the package classifies areas into polar/apolar
and main-chain/side-chain subareas, aggregates them per residue, per chain
and for the whole structure, and normalizes residue areas against reference
maxima to obtain relative exposures (RSA).

The subpackages provide supporting layers: v3 holds the coordinate
container, pdb reads structures from (optionally gzipped) PDB files,
sasajson serializes results, and sasaplot draws per-residue exposure
profiles.

Areas are reported in A^2; coordinates and radii are expected in A.
*/
package sasa
