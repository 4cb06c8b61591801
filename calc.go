/*
 * calc.go, part of gosasa.
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

//Calc runs the engine selected by params.Alg. It is a convenience wrapper
//around ShrakeRupley and LeeRichards with the same contract: per-atom
//areas are written to the caller-allocated slice sasa, and the content of
//sasa is only defined when the returned Status is Success or Warn.
func Calc(sasa []float64, coord *v3.Matrix, radii []float64, params *Parameters) Status {
	if params == nil {
		params = DefaultParameters()
	}
	switch params.Alg {
	case ShrakeRupleyAlg:
		return ShrakeRupley(sasa, coord, radii, params)
	case LeeRichardsAlg:
		return LeeRichards(sasa, coord, radii, params)
	}
	return Failf("unknown algorithm (%d)", params.Alg)
}
