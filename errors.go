/*
 * errors.go, part of gosoap.
 *
 * Copyright 2023 The gosoap developers
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

package soap

import "fmt"

//Error is the interface implemented by the errors of this library and its
//subpackages. Decorate adds information (normally the name of the function
//passing the error up, plus anything relevant) without changing the error's
//type, and returns the resulting "call trail". Passing an empty string just
//returns the current trail.
type Error interface {
	error
	Decorate(string) []string
}

//CError is the concrete error type of the root package ("C" is for
//"calculation"). Configuration and construction failures are reported with
//this type; caller contract violations in fundamental accessors panic
//instead, as they are programming errors.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds dec to the call trail of the error and returns the
//resulting trail.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NewError builds a CError from a format string, with the originating
//function already in the trail.
func NewError(origin, format string, args ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, args...), deco: []string{origin}}
}
