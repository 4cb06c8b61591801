/*
 * status.go, part of gosasa.
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
	"io"
	"log"
	"os"
)

//Status is the return code of the calculation entry points and of several
//of the aggregation functions. User-input problems never abort the process;
//they come back as a Status plus a message on the diagnostics sink.
type Status int

const (
	//Success means the operation completed with no caveats.
	Success Status = 0
	//Fail means the operation could not complete. Any output array is
	//left in an unspecified state and must be discarded.
	Fail Status = -1
	//Warn means the operation completed but with a caveat the caller
	//should inspect, e.g. a residue missing from a reference table.
	Warn Status = -2
)

func (s Status) String() string {
	switch s {
	case Success:
		return "SUCCESS"
	case Fail:
		return "FAIL"
	case Warn:
		return "WARN"
	}
	return "UNKNOWN"
}

//The diagnostics sink. Bound once at process start (or left at the
//default, standard error) rather than mutated during calculations.
var diag = log.New(os.Stderr, "gosasa: ", 0)

//SetDiagnosticOutput redirects the diagnostics messages produced by Failf
//and Warnf to w. It is meant to be called once, before any calculation.
func SetDiagnosticOutput(w io.Writer) {
	diag.SetOutput(w)
}

//Failf writes a formatted failure message to the diagnostics sink and
//returns Fail.
func Failf(format string, a ...interface{}) Status {
	diag.Printf("error: "+format, a...)
	return Fail
}

//Warnf writes a formatted warning message to the diagnostics sink and
//returns Warn.
func Warnf(format string, a ...interface{}) Status {
	diag.Printf("warning: "+format, a...)
	return Warn
}
