/*
 * gonum.go, part of charmminglib.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood that
//a "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data, which is used
//as backing store.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, fmt.Errorf("v3.NewMatrix: input slice length %d not divisible by %d", l, cols)
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of F. Changes in the view
//are seen in F.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//SomeVecs puts in a new matrix copies of the vectors of A with the indexes in clist,
//in that order.
func SomeVecs(A *Matrix, clist []int) *Matrix {
	F := Zeros(len(clist))
	for i, v := range clist {
		F.SetRow(i, A.RawRowView(v))
	}
	return F
}

//Centroid returns the geometric center of the vectors of A with the indexes in clist,
//or of all the vectors of A if clist is empty.
func Centroid(A *Matrix, clist ...int) (*Matrix, error) {
	if len(clist) == 0 {
		clist = make([]int, A.NVecs())
		for i := range clist {
			clist[i] = i
		}
	}
	if len(clist) == 0 {
		return nil, fmt.Errorf("v3.Centroid: no vectors given")
	}
	ret := Zeros(1)
	c := ret.RawRowView(0)
	for _, v := range clist {
		floats.Add(c, A.RawRowView(v))
	}
	floats.Scale(1/float64(len(clist)), c)
	return ret, nil
}

//Dist returns the euclidean distance between the ith vector of A and the
//jth vector of B.
func Dist(A *Matrix, i int, B *Matrix, j int) float64 {
	return floats.Distance(A.RawRowView(i), B.RawRowView(j), 2)
}

//MinDist returns the shortest distance between any vector of A with an index in ai
//and any vector of B with an index in bi, and the two indexes. It returns +Inf and
//-1,-1 if either list is empty.
func MinDist(A *Matrix, ai []int, B *Matrix, bi []int) (float64, int, int) {
	best := math.Inf(1)
	mi, mj := -1, -1
	for _, i := range ai {
		for _, j := range bi {
			if d := Dist(A, i, B, j); d < best {
				best, mi, mj = d, i, j
			}
		}
	}
	return best, mi, mj
}

//String returns a neat string representation of F
func (F *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(F.Dense, mat.Squeeze()))
}
