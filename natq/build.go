/*
 * build.go, part of charmminglib.
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

package natq

import (
	"errors"
	"log"

	chm "github.com/joshuasmock/charmminglib"
	"github.com/joshuasmock/charmminglib/correl"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//Report tells which rows of a contact matrix are zero-filled because there was no
//usable correl output for them.
type Report struct {
	Missing   []int //no output file
	Malformed []int //an output file that couldn't be read into a series of the right length
}

//OK returns true if every row of the matrix comes from a correl output.
func (R Report) OK() bool {
	return len(R.Missing) == 0 && len(R.Malformed) == 0
}

//ZeroFilled returns the indexes of all the zero-filled rows, in order.
func (R Report) ZeroFilled() []int {
	ret := make([]int, 0, len(R.Missing)+len(R.Malformed))
	i, j := 0, 0
	for i < len(R.Missing) || j < len(R.Malformed) {
		if j >= len(R.Malformed) || (i < len(R.Missing) && R.Missing[i] < R.Malformed[j]) {
			ret = append(ret, R.Missing[i])
			i++
		} else {
			ret = append(ret, R.Malformed[j])
			j++
		}
	}
	return ret
}

//BuildMatrix builds the native contact matrix from the correl outputs in anlDir. Row k
//holds the series, rowLength long, for the kth contact of L. The rows for which
//the output is missing or malformed are filled with zeros, and their indexes are
//in the returned Report. Up to workers files are read at the same time.
//Other errors reading the files stop the building, and are returned.
func BuildMatrix(L *chm.ContactList, anlDir string, rowLength, workers int) (*mat.Dense, Report, error) {
	var rep Report
	n := L.Len()
	if n == 0 {
		return nil, rep, chm.InvalidConfig("no contacts", "BuildMatrix")
	}
	if rowLength < 1 {
		return nil, rep, chm.InvalidConfig("rows must have at least one element", "BuildMatrix")
	}
	log.Printf("natq: building native contact matrix (%d contacts, %d frames)", n, rowLength)
	M := mat.NewDense(n, rowLength, nil)
	status := make([]error, n)
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			row, err := correl.LoadOutput(correl.ContactResultName(anlDir, k), rowLength)
			if errors.Is(err, chm.ErrMissingResult) || errors.Is(err, chm.ErrMalformedResult) {
				status[k] = err
				return nil //the row stays zero-filled.
			}
			if err != nil {
				return err
			}
			M.SetRow(k, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, rep, chm.ErrDecorate(err, "BuildMatrix")
	}
	for k, err := range status {
		switch {
		case err == nil:
		case errors.Is(err, chm.ErrMissingResult):
			log.Printf("natq: can't find correl output for contact %04d, using zeros", k)
			rep.Missing = append(rep.Missing, k)
		default:
			log.Printf("natq: bad correl output for contact %04d, using zeros: %v", k, err)
			rep.Malformed = append(rep.Malformed, k)
		}
	}
	return M, rep, nil
}
