/*
 * supercell.go, part of gocrys.
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
	"fmt"

	v3 "github.com/rmera/gocrys/v3"
)

// scellMask returns the dim1*dim2*dim3 integer translations [n1,n2,n3],
// ni = 0, ..., dimi-1, used to replicate a unit cell into a supercell.
func scellMask(dim1, dim2, dim3 int) [][3]int {
	ret := make([][3]int, 0, dim1*dim2*dim3)
	for n1 := 0; n1 < dim1; n1++ {
		for n2 := 0; n2 < dim2; n2++ {
			for n3 := 0; n3 < dim3; n3++ {
				ret = append(ret, [3]int{n1, n2, n3})
			}
		}
	}
	return ret
}

// Supercell builds an nx x ny x nz supercell of st: each site is replicated
// once per cell image, the fractional coordinates are rescaled to the new,
// bigger cell (so all values land in [0,1) again if they were in [0,1)), and
// the cell basis vectors are scaled by the corresponding dimension. Site
// order is preserved: all images of site 0 come first, then all images of
// site 1, and so on. The space group of the result is P 1, whatever the
// input was, since the supercell relation breaks the original symmetry.
func Supercell(st *Structure, nx, ny, nz int) (*Structure, error) {
	if st == nil {
		return nil, CError{string(ErrNilData), []string{"Supercell"}}
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, CError{fmt.Sprintf("Supercell dimensions must be positive: %d %d %d", nx, ny, nz), []string{"Supercell"}}
	}
	mask := scellMask(nx, ny, nz)
	nmask := len(mask)
	natoms := st.Len()
	dims := [3]float64{float64(nx), float64(ny), float64(nz)}
	atoms := make([]*Atom, 0, natoms*nmask)
	frac := v3.Zeros(natoms * nmask)
	oldfrac := st.CoordsFrac()
	k := 0
	for i := 0; i < natoms; i++ {
		for _, m := range mask {
			atoms = append(atoms, st.Atom(i).Copy())
			for c := 0; c < 3; c++ {
				frac.Set(k, c, (oldfrac.At(i, c)+float64(m[c]))/dims[c])
			}
			k++
		}
	}
	cell := v3.Zeros(3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cell.Set(r, c, st.Cell().At(r, c)*dims[r])
		}
	}
	ret, err := NewStructure(atoms, frac, cell, SpaceGroup{Name: "P 1", Number: 1}, []*SymOp{IdentityOp()})
	if err != nil {
		return nil, errDecorate(err, "Supercell")
	}
	return ret, nil
}
