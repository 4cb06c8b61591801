/*
 * errors.go, part of gosasa.
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

//Error is the interface for errors that the packages in this library
//implement. The Decorate method allows adding information to the error as
//it is passed up the call stack, without changing its type. Each call
//returns the resulting decoration slice; an empty string just returns the
//current value without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete Error used by this library.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string {
	return err.msg
}

//Decorate adds deco to the error's decoration and returns the result.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//newError builds a CError with the message msg, decorated with the name of
//the function where it originated.
func newError(msg, function string) *CError {
	return &CError{msg: msg, deco: []string{function}}
}
