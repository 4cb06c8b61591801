/*
 * sasa_test.go, part of gosasa.
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
	"math"
	"math/rand"
	"testing"

	v3 "github.com/rmera/gosasa/v3"
)

func sphereArea(r float64) float64 {
	return 4 * math.Pi * r * r
}

//TestIsolatedSphere checks that an atom with no neighbors in range gets
//the full area of its expanded sphere, with both engines.
func TestIsolatedSphere(Te *testing.T) {
	coord, _ := v3.NewMatrix([]float64{1, -2, 3})
	radii := []float64{2.0}
	p := DefaultParameters()
	want := sphereArea(2.0 + p.ProbeRadius)
	out := make([]float64, 1)
	if st := ShrakeRupley(out, coord, radii, p); st != Success {
		Te.Errorf("ShrakeRupley returned %v", st)
	}
	if math.Abs(out[0]-want) > 1e-9 {
		Te.Errorf("S&R isolated sphere: got %f, want %f", out[0], want)
	}
	if st := LeeRichards(out, coord, radii, p); st != Success {
		Te.Errorf("LeeRichards returned %v", st)
	}
	if math.Abs(out[0]-want) > 1e-9 {
		Te.Errorf("L&R isolated sphere: got %f, want %f", out[0], want)
	}
}

//TestDistantPair checks that two atoms whose expanded spheres do not
//intersect each report their isolated-sphere area.
func TestDistantPair(Te *testing.T) {
	coord, _ := v3.NewMatrix([]float64{0, 0, 0, 20, 0, 0})
	radii := []float64{1.5, 2.5}
	p := DefaultParameters()
	out := make([]float64, 2)
	for _, alg := range []Algorithm{ShrakeRupleyAlg, LeeRichardsAlg} {
		p.Alg = alg
		if st := Calc(out, coord, radii, p); st != Success {
			Te.Errorf("%v returned %v", alg, st)
		}
		for i, r := range radii {
			want := sphereArea(r + p.ProbeRadius)
			if math.Abs(out[i]-want) > 1e-9 {
				Te.Errorf("%v distant pair, atom %d: got %f, want %f", alg, i, out[i], want)
			}
		}
	}
}

//TestEngulfedAtom checks that an atom entirely inside a much larger
//sphere reports zero area.
func TestEngulfedAtom(Te *testing.T) {
	coord, _ := v3.NewMatrix([]float64{0, 0, 0, 0.1, 0, 0})
	radii := []float64{0.5, 5.0}
	p := DefaultParameters()
	out := make([]float64, 2)
	for _, alg := range []Algorithm{ShrakeRupleyAlg, LeeRichardsAlg} {
		p.Alg = alg
		if st := Calc(out, coord, radii, p); st != Success {
			Te.Errorf("%v returned %v", alg, st)
		}
		if out[0] > 1e-9 {
			Te.Errorf("%v engulfed atom: got %f, want 0", alg, out[0])
		}
	}
}

//twoSphereExposed is the closed-form exposed area of the first of two
//overlapping spheres: the full sphere minus the spherical cap cut off by
//the radical plane of the intersection.
func twoSphereExposed(r1, r2, d float64) float64 {
	h := r1 - (d*d+r1*r1-r2*r2)/(2*d)
	return sphereArea(r1) - 2*math.Pi*r1*h
}

//TestOverlappingPair compares both engines against the analytic exposed
//area of two partially overlapping spheres, at low and high sampling
//density. The error must be within the coarse/fine tolerances, i.e.
//shrink as the density grows.
func TestOverlappingPair(Te *testing.T) {
	coord, _ := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 2})
	radii := []float64{2, 2}
	want := twoSphereExposed(2, 2, 2)
	out := make([]float64, 2)

	p := DefaultParameters()
	p.ProbeRadius = 0 //so the expanded radii are the plain radii
	p.Alg = ShrakeRupleyAlg
	for _, res := range []struct {
		points int
		tol    float64
	}{{60, 0.05}, {5000, 0.005}} {
		p.TestPoints = res.points
		if st := ShrakeRupley(out, coord, radii, p); st != Success {
			Te.Errorf("ShrakeRupley returned %v", st)
		}
		if relerr := math.Abs(out[0]-want) / want; relerr > res.tol {
			Te.Errorf("S&R with %d points: got %f, want %f (rel. error %f)", res.points, out[0], want, relerr)
		}
	}

	p.Alg = LeeRichardsAlg
	for _, res := range []struct {
		slices int
		tol    float64
	}{{20, 0.05}, {500, 0.005}} {
		p.Slices = res.slices
		if st := LeeRichards(out, coord, radii, p); st != Success {
			Te.Errorf("LeeRichards returned %v", st)
		}
		if relerr := math.Abs(out[0]-want) / want; relerr > res.tol {
			Te.Errorf("L&R with %d slices: got %f, want %f (rel. error %f)", res.slices, out[0], want, relerr)
		}
	}
}

//randomCluster builds a reproducible, compact set of n overlapping atoms.
func randomCluster(n int) (*v3.Matrix, []float64) {
	rnd := rand.New(rand.NewSource(42))
	data := make([]float64, 3*n)
	radii := make([]float64, n)
	for i := 0; i < n; i++ {
		data[3*i] = rnd.Float64() * 12
		data[3*i+1] = rnd.Float64() * 12
		data[3*i+2] = rnd.Float64() * 12
		radii[i] = 1.2 + rnd.Float64()
	}
	coord, err := v3.NewMatrix(data)
	if err != nil {
		panic(err.Error())
	}
	return coord, radii
}

//TestEnginesAgree checks that the two algorithms converge to the same
//total area on a random cluster.
func TestEnginesAgree(Te *testing.T) {
	coord, radii := randomCluster(60)
	p := DefaultParameters()
	p.TestPoints = 2000
	p.Slices = 200
	sr := make([]float64, 60)
	lr := make([]float64, 60)
	p.Alg = ShrakeRupleyAlg
	if st := Calc(sr, coord, radii, p); st != Success {
		Te.Errorf("ShrakeRupley returned %v", st)
	}
	p.Alg = LeeRichardsAlg
	if st := Calc(lr, coord, radii, p); st != Success {
		Te.Errorf("LeeRichards returned %v", st)
	}
	var totSR, totLR float64
	for i := range sr {
		totSR += sr[i]
		totLR += lr[i]
	}
	fmt.Printf("S&R total: %.2f, L&R total: %.2f\n", totSR, totLR)
	if relerr := math.Abs(totSR-totLR) / totLR; relerr > 0.02 {
		Te.Errorf("engines disagree: S&R %f vs L&R %f (rel. error %f)", totSR, totLR, relerr)
	}
}

//TestThreadedEquality checks that the result with several workers is
//identical to the sequential one: with per-atom partitioning no
//accumulation order changes, so the equality is exact.
func TestThreadedEquality(Te *testing.T) {
	coord, radii := randomCluster(50)
	seq := make([]float64, 50)
	par := make([]float64, 50)
	for _, alg := range []Algorithm{ShrakeRupleyAlg, LeeRichardsAlg} {
		p := DefaultParameters()
		p.Alg = alg
		p.Threads = 1
		if st := Calc(seq, coord, radii, p); st == Fail {
			Te.Errorf("%v sequential returned FAIL", alg)
		}
		p.Threads = 4
		//Warn is acceptable here: it means the runtime has a single
		//processor and the engine fell back to sequential execution.
		if st := Calc(par, coord, radii, p); st == Fail {
			Te.Errorf("%v threaded returned FAIL", alg)
		}
		for i := range seq {
			if seq[i] != par[i] {
				Te.Errorf("%v: atom %d differs between 1 and 4 threads: %g vs %g", alg, i, seq[i], par[i])
			}
		}
	}
}

//TestParameterValidation checks that invalid parameters short-circuit
//with Fail before any work is done.
func TestParameterValidation(Te *testing.T) {
	coord, _ := v3.NewMatrix([]float64{0, 0, 0})
	radii := []float64{1.5}
	out := make([]float64, 1)

	p := DefaultParameters()
	p.TestPoints = 0
	if st := ShrakeRupley(out, coord, radii, p); st != Fail {
		Te.Errorf("zero test points accepted: %v", st)
	}
	p = DefaultParameters()
	p.Slices = 0
	if st := LeeRichards(out, coord, radii, p); st != Fail {
		Te.Errorf("zero slices accepted: %v", st)
	}
	p = DefaultParameters()
	p.Threads = 0
	if st := LeeRichards(out, coord, radii, p); st != Fail {
		Te.Errorf("zero threads accepted: %v", st)
	}
	p = DefaultParameters()
	p.ProbeRadius = -1
	if st := ShrakeRupley(out, coord, radii, p); st != Fail {
		Te.Errorf("negative probe accepted: %v", st)
	}
	if st := ShrakeRupley(make([]float64, 2), coord, radii, nil); st != Fail {
		Te.Errorf("wrong output size accepted: %v", st)
	}
	if st := ShrakeRupley(out, coord, []float64{1, 2}, nil); st != Fail {
		Te.Errorf("inconsistent radii accepted: %v", st)
	}
	if st := ShrakeRupley(out, coord, []float64{-1}, nil); st != Fail {
		Te.Errorf("negative radius accepted: %v", st)
	}
}

//TestTangentPair puts two spheres exactly at tangency distance; the
//contact is a single point, so both atoms must keep their full area.
func TestTangentPair(Te *testing.T) {
	coord, _ := v3.NewMatrix([]float64{0, 0, 0, 4, 0, 0})
	radii := []float64{2, 2}
	p := DefaultParameters()
	p.ProbeRadius = 0
	out := make([]float64, 2)
	for _, alg := range []Algorithm{ShrakeRupleyAlg, LeeRichardsAlg} {
		p.Alg = alg
		if st := Calc(out, coord, radii, p); st != Success {
			Te.Errorf("%v returned %v", alg, st)
		}
		want := sphereArea(2)
		if math.Abs(out[0]-want) > 1e-9 || math.Abs(out[1]-want) > 1e-9 {
			Te.Errorf("%v tangent pair: got %f and %f, want %f", alg, out[0], out[1], want)
		}
	}
}
