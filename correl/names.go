/*
 * names.go, part of charmminglib.
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

package correl

import (
	"fmt"
	"path/filepath"

	chm "github.com/joshuasmock/charmminglib"
)

//ScriptName returns the name of the CHARMM input for batch b.
func ScriptName(dir string, b int) string {
	return filepath.Join(dir, fmt.Sprintf("natq%02d.inp", b))
}

//LogName returns the name of the CHARMM output (the log) for batch b.
func LogName(dir string, b int) string {
	return filepath.Join(dir, fmt.Sprintf("natq%02d.out", b))
}

//ResultName returns the name of the correl output for the contact j of batch b.
func ResultName(dir string, b, j int) string {
	return filepath.Join(dir, fmt.Sprintf("natq%02d%02d.anl", b, j))
}

//ContactResultName returns the name of the correl output for the kth contact of a list.
func ContactResultName(dir string, k int) string {
	return ResultName(dir, k/chm.BatchSize, k%chm.BatchSize)
}
