/*
 * interfaces.go, part of charmminglib.
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

//Site is one site (CG atom) of a coarse-grained model.
type Site interface {
	//Index is the atom number of the site in the CG model. This is the number
	//CHARMM knows the site by (bynum selections), so it is 1-based.
	Index() int

	//Addr is a human readable unique address for the site, i.e. "A.12.S"
	Addr() string

	//Prm returns a description of the site's parameters. It is only used in
	//comments.
	Prm() string
}

//Decorator is implemented by the errors of this library. Decorate adds the name of
//a caller (plus any relevant information, as "Caller: info") to the error as it
//goes up the stack, and returns the whole decoration slice. With an empty string it
//just returns the current decoration.
type Decorator interface {
	error
	Decorate(string) []string
}

//Criticaler errors can tell whether they should stop the program or not.
type Criticaler interface {
	error
	Critical() bool
}
