/*
 * doc.go, part of charmminglib.
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

/*
Package chm holds the types shared by the charmminglib packages: the sites and
native contacts of a coarse-grained (KTGo) model, the ordered contact list that
fixes the row order of every native-contact analysis, and the error type used
across the library.

The analysis itself lives in the subpackages:

	ktgo      reads a PDB and derives the CG sites and their native SC-SC contacts
	correl    writes CHARMM correl inputs, runs CHARMM and reads the correl outputs
	natq      builds and caches the native contact matrix, computes Q(t)
	chemplot  plots Q(t)
	histo     histograms Q(t) and gives the free energy profile F(Q)
	v3        Nx3 coordinate matrices on top of gonum

The order of a ContactList is the one invariant that ties everything together:
the scripts are written in that order, CHARMM writes one output file per
contact following it, and the rows of the contact matrix are read back in the
same order. A ContactList can only grow by Append, it can't be reordered.
*/
package chm
