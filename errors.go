/*
 * errors.go, part of charmminglib.
 *
 * Copyright 2026 The charmminglib Authors
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

package chm

import (
	"errors"
	"fmt"
	"strings"
)

//Kinds of errors. Every *Error carries one of these, so errors.Is can be used
//to tell them apart.
var (
	//A correl output file for a contact is not there. Not fatal, the row is zero-filled.
	ErrMissingResult = errors.New("missing correl output")

	//A correl output file is there but it can't be read into a series of the expected length.
	ErrMalformedResult = errors.New("malformed correl output")

	//Bad parameters or paths. Always fatal.
	ErrInvalidConfig = errors.New("invalid configuration")

	//A generated CHARMM input is not where it should be. Fatal.
	ErrMissingScript = errors.New("missing CHARMM input")

	//CHARMM could not be started, exited abnormally or was killed.
	ErrExternalProgram = errors.New("external program failure")

	//The stored contact matrix can't be decoded. Recovered by rebuilding.
	ErrCacheCorrupt = errors.New("corrupted cache")
)

//Error is the error type for the whole library.
type Error struct {
	message  string
	filename string //the file with problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
	cause    error
}

//NewError returns a new *Error of the given kind. cause can be nil. The
//caller is the first decoration.
func NewError(kind error, filename, message string, critical bool, cause error, caller string) *Error {
	E := &Error{message: message, filename: filename, critical: critical, kind: kind, cause: cause}
	if caller != "" {
		E.deco = []string{caller}
	}
	return E
}

func (E *Error) Error() string {
	var b strings.Builder
	b.WriteString(E.kind.Error())
	if E.filename != "" {
		fmt.Fprintf(&b, " (%s)", E.filename)
	}
	if E.message != "" {
		b.WriteString(": " + E.message)
	}
	if E.cause != nil {
		b.WriteString(": " + E.cause.Error())
	}
	return b.String()
}

//Decorate adds deco to the decoration slice, unless deco is empty, and returns the slice.
func (E *Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Unwrap gives the kind of the error and, if any, its cause.
func (E *Error) Unwrap() []error {
	if E.cause == nil {
		return []error{E.kind}
	}
	return []error{E.kind, E.cause}
}

//Critical returns true if the error is critical, false otherwise
func (E *Error) Critical() bool { return E.critical }

//FileName returns the file to which the error is associated, if any.
func (E *Error) FileName() string { return E.filename }

//Kind returns one of the Err* values of this package.
func (E *Error) Kind() error { return E.kind }

//ErrDecorate adds caller to err's decorations if err is (or wraps) a Decorator, and
//returns err in any case.
func ErrDecorate(err error, caller string) error {
	var d Decorator
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}

//InvalidConfig is a shortcut for the most common error of the library.
func InvalidConfig(message, caller string) *Error {
	return NewError(ErrInvalidConfig, "", message, true, nil, caller)
}
