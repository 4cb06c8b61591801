/*
 * dispatch.go, part of gosasa.
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
	"runtime"
)

//threadsAvailable is the capability flag for parallel execution, checked
//once at calculation start. With GOMAXPROCS at 1 the workers could not run
//in parallel anyway, so we fall back to sequential execution and Warn.
func threadsAvailable() bool {
	return runtime.GOMAXPROCS(0) > 1
}

//dispatch partitions the atom indexes 0..n-1 into contiguous chunks, one
//per worker, and runs task(lo,hi) on each chunk in its own goroutine. Each
//worker writes only to the output slots of its own chunk, so the output
//needs no locking; all other data is read-only during the calculation.
//dispatch joins every worker before returning. A worker panic (e.g. an
//allocation failure) is recovered and returned as an error; the output is
//then in an unspecified state.
func dispatch(n, workers int, task func(lo, hi int)) error {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	errs := make(chan error, workers)
	chunk := n / workers
	rem := n % workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + chunk
		if w < rem {
			hi++
		}
		go func(lo, hi int) {
			defer func() {
				if r := recover(); r != nil {
					errs <- fmt.Errorf("worker failed: %v", r)
				} else {
					errs <- nil
				}
			}()
			task(lo, hi)
		}(lo, hi)
		lo = hi
	}
	var err error
	for w := 0; w < workers; w++ {
		if e := <-errs; e != nil && err == nil {
			err = e
		}
	}
	return err
}

//engineSetup does the work common to both engines: parameter resolution
//and validation, output-size check, sphere-set and neighbor-list
//construction, and the single thread-capability check. The returned Status
//is Success, or Warn if multithreading was requested but is unavailable
//(the returned worker count is then 1), or Fail.
func engineSetup(sasa []float64, s *sphereSet, p *Parameters, alg Algorithm) (workers int, st Status) {
	if st = p.validate(alg); st == Fail {
		return 0, Fail
	}
	if len(sasa) != s.n() {
		return 0, Failf("output slice has %d slots for %d atoms", len(sasa), s.n())
	}
	workers = p.Threads
	st = Success
	if workers > 1 && !threadsAvailable() {
		st = Warnf("multithreading unavailable (GOMAXPROCS=1), running %s sequentially", alg)
		workers = 1
	}
	return workers, st
}
