/*
 * q.go, part of charmminglib.
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
	"fmt"

	chm "github.com/joshuasmock/charmminglib"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//QofT returns the fraction of native contacts formed in each frame of the contact
//matrix m. A contact is formed in a frame when its distance is not larger than
//nativeRad, which must be larger than 1.
func QofT(m mat.Matrix, nativeRad float64) ([]float64, error) {
	q, err := QofTMasked(m, nativeRad, nil)
	return q, chm.ErrDecorate(err, "QofT")
}

//QofTMasked is like QofT, but the contacts (rows of m) in skip are left out of the
//fraction. Indexes in skip out of range are ignored.
func QofTMasked(m mat.Matrix, nativeRad float64, skip []int) ([]float64, error) {
	if err := CheckNativeRad(nativeRad); err != nil {
		return nil, chm.ErrDecorate(err, "QofTMasked")
	}
	r, c := m.Dims()
	skipped := make([]bool, r)
	left := r
	for _, v := range skip {
		if v >= 0 && v < r && !skipped[v] {
			skipped[v] = true
			left--
		}
	}
	if left == 0 {
		return nil, chm.InvalidConfig(fmt.Sprintf("no contacts left out of %d", r), "QofTMasked")
	}
	q := make([]float64, c)
	formed := make([]float64, 0, left)
	for j := 0; j < c; j++ {
		formed = formed[:0]
		for i := 0; i < r; i++ {
			if skipped[i] {
				continue
			}
			if m.At(i, j) <= nativeRad {
				formed = append(formed, 1)
			} else {
				formed = append(formed, 0)
			}
		}
		q[j] = stat.Mean(formed, nil)
	}
	return q, nil
}

//ZeroRows returns the indexes of the rows of m that are all zeros, which, in a contact
//matrix, are the contacts without usable correl outputs.
func ZeroRows(m mat.Matrix) []int {
	r, c := m.Dims()
	var ret []int
rows:
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				continue rows
			}
		}
		ret = append(ret, i)
	}
	return ret
}
