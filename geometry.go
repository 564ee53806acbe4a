/*
 * geometry.go, part of gocrys.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * goCrys is developed at Universidad de Tarapaca (UTA)
 *
 */

package crys

import (
	"math"

	v3 "github.com/rmera/gocrys/v3"
	"gonum.org/v1/gonum/mat"
)

// FracToCart transforms fractional coordinates to cartesian ones by
// right-multiplying with the cell matrix (whose rows are the basis vectors).
// It returns a new matrix.
func FracToCart(frac, cell *v3.Matrix) *v3.Matrix {
	if r, c := cell.Dims(); r != 3 || c != 3 {
		panic(ErrCellNot3x3)
	}
	ret := v3.Zeros(frac.NVecs())
	ret.Mul(frac, cell)
	return ret
}

// CartToFrac transforms cartesian coordinates to fractional ones by
// right-multiplying with the inverse of the cell matrix. It returns an error
// if the cell is singular.
func CartToFrac(cart, cell *v3.Matrix) (*v3.Matrix, error) {
	if r, c := cell.Dims(); r != 3 || c != 3 {
		panic(ErrCellNot3x3)
	}
	inv := new(mat.Dense)
	if err := inv.Inverse(cell.Dense); err != nil {
		return nil, CError{"Singular unit cell: " + err.Error(), []string{"CartToFrac"}}
	}
	ret := v3.Zeros(cart.NVecs())
	ret.Mul(cart, inv)
	return ret, nil
}

// MinImage applies, in place, the minimum image convention to differences of
// fractional coordinates: each component ends up in [-0.5, 0.5). It handles
// coordinates separated by an arbitrary number of periodic images.
func MinImage(sij *v3.Matrix) {
	n := sij.NVecs()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			v := sij.At(i, k)
			for v >= 0.5 {
				v -= 1.0
			}
			for v < -0.5 {
				v += 1.0
			}
			sij.Set(i, k, v)
		}
	}
}

// PBCWrap wraps, in place, fractional coordinates into [0,1).
func PBCWrap(frac *v3.Matrix) {
	n := frac.NVecs()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			v := frac.At(i, k) - math.Floor(frac.At(i, k))
			if v == 1.0 { // -1e-17 floors to -1 and wraps to exactly 1
				v = 0.0
			}
			frac.Set(i, k, v)
		}
	}
}

// Distances returns the matrix of pair distances between the sites of st, in
// cell units. If pbc is true, the minimum image convention is applied to the
// fractional differences before measuring.
func Distances(st *Structure, pbc bool) *mat.Dense {
	n := st.Len()
	frac := st.CoordsFrac()
	cell := st.Cell()
	ret := mat.NewDense(n, n, nil)
	sij := v3.Zeros(1)
	for i := 0; i < n; i++ {
		vi := frac.VecView(i)
		for j := i + 1; j < n; j++ {
			sij.Sub(vi, frac.VecView(j))
			if pbc {
				MinImage(sij)
			}
			rij := FracToCart(sij, cell)
			d := rij.Norm(2)
			ret.Set(i, j, d)
			ret.Set(j, i, d)
		}
	}
	return ret
}
