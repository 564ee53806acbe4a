/*
 * crys.go, part of gocrys.
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

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. I considered that if something goes wrong here, the program is way-most likely wrong and
 * should crash. Most panics are related to using the function on a nil object or trying to access
 * out-of-bounds fields**/

// A map for assigning mass to elements (u). Only elements common in the
// crystal structures goCrys has been used with are present.
var symbolMass = map[string]float64{
	"H":  1.0,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  19.00,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.09,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Ti": 47.87,
	"Fe": 55.84,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ga": 69.72,
	"Ge": 72.63,
	"As": 74.92,
	"Se": 78.96,
	"Zr": 91.22,
	"In": 114.82,
	"Sn": 118.71,
	"W":  183.84,
}

// Atom contains the per-site data read from an atom-site loop, except for the
// fractional coordinates, which are kept in a matrix.
type Atom struct {
	Label  string // site label from the file. May repeat, may encode a sub-index.
	Symbol string // canonical chemical element
	Mass   float64
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Label = A.Label
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	return Newat
}

// SpaceGroup identifies the symmetry group of a structure by its
// Hermann-Mauguin symbol and its International Tables number (1-230).
type SpaceGroup struct {
	Name   string
	Number int
}

// Structure aggregates everything goCrys knows about a crystal: the unit
// cell, the space group, the symmetry operations and the sites with their
// fractional coordinates. It is constructed atomically and meant to be
// treated as immutable afterwards: the accessors returning matrices return
// the internal data, which callers must not modify (use Copy if you need a
// structure you can alter).
type Structure struct {
	atoms  []*Atom
	frac   *v3.Matrix // one row per atom, fractional coordinates
	cell   *v3.Matrix // 3x3, rows are the basis vectors
	group  SpaceGroup
	symops []*SymOp
}

// NewStructure builds a Structure from sites, fractional coordinates, a unit
// cell, a space group and symmetry operations. The number of coordinate rows
// must match the number of atoms and the cell must be 3x3. If ops is nil, the
// identity operation is assumed. It returns an error on nil or inconsistent
// data.
func NewStructure(atoms []*Atom, frac *v3.Matrix, cell *v3.Matrix, group SpaceGroup, ops []*SymOp) (*Structure, error) {
	if atoms == nil || frac == nil || cell == nil {
		return nil, CError{string(ErrNilData), []string{"NewStructure"}}
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, CError{string(ErrCellNot3x3), []string{"NewStructure"}}
	}
	if frac.NVecs() != len(atoms) {
		return nil, CError{fmt.Sprintf("%d atoms but %d coordinate rows", len(atoms), frac.NVecs()), []string{"NewStructure"}}
	}
	if group.Number < 1 || group.Number > 230 {
		return nil, CError{fmt.Sprintf("Space group number %d outside the International Tables range", group.Number), []string{"NewStructure"}}
	}
	if ops == nil {
		ops = []*SymOp{IdentityOp()}
	}
	st := new(Structure)
	st.atoms = atoms
	st.frac = frac
	st.cell = cell
	st.group = group
	st.symops = ops
	return st, nil
}

// Len returns the number of sites in the structure.
func (S *Structure) Len() int {
	return len(S.atoms)
}

// Atom returns the Atom corresponding to the index i. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic(ErrAtomOutOfRange)
	}
	return S.atoms[i]
}

// CoordsFrac returns the fractional coordinates of the structure, one row per
// site, in file order.
func (S *Structure) CoordsFrac() *v3.Matrix {
	return S.frac
}

// Cell returns the unit cell of the structure, rows being the basis vectors.
func (S *Structure) Cell() *v3.Matrix {
	return S.cell
}

// SpaceGroup returns the space group of the structure.
func (S *Structure) SpaceGroup() SpaceGroup {
	return S.group
}

// SymOps returns the symmetry operations of the structure, in the order they
// were read.
func (S *Structure) SymOps() []*SymOp {
	return S.symops
}

// Symbols returns the chemical element of each site, in order.
func (S *Structure) Symbols() []string {
	ret := make([]string, S.Len())
	for i, at := range S.atoms {
		ret[i] = at.Symbol
	}
	return ret
}

// Masses returns a slice with the mass of each site, and an error if any mass
// is missing.
func (S *Structure) Masses() ([]float64, error) {
	masses := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		if at.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, at), []string{"Masses"}}
		}
		masses[i] = at.Mass
	}
	return masses, nil
}

// CoordsCart returns the cartesian coordinates of the sites, in the same
// units as the cell (Angstrom, for structures read from CIF).
func (S *Structure) CoordsCart() *v3.Matrix {
	return FracToCart(S.frac, S.cell)
}

// Params returns the six crystallographic constants of the unit cell.
func (S *Structure) Params() CellParams {
	return ParamsFromCell(S.cell)
}

// Volume returns the volume of the unit cell, in cell units cubed.
func (S *Structure) Volume() float64 {
	return VolumeCell(S.cell)
}

// Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	atoms := make([]*Atom, S.Len())
	for i, at := range S.atoms {
		atoms[i] = at.Copy()
	}
	frac := v3.Zeros(S.Len())
	frac.Copy(S.frac.Dense)
	cell := v3.Zeros(3)
	cell.Copy(S.cell.Dense)
	ops := make([]*SymOp, len(S.symops))
	copy(ops, S.symops) // SymOps are immutable, sharing them is fine
	ret, err := NewStructure(atoms, frac, cell, S.group, ops)
	if err != nil {
		panic(err.Error()) // copying a valid structure can't produce an invalid one
	}
	return ret
}

// SomeAtoms returns the indexes of the sites whose element is symbol.
func (S *Structure) SomeAtoms(symbol string) []int {
	ret := make([]int, 0, S.Len())
	for i, at := range S.atoms {
		if at.Symbol == symbol {
			ret = append(ret, i)
		}
	}
	return ret
}
