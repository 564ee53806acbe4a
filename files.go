/*
 * files.go, part of gocrys.
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

	"github.com/rmera/gocrys/cif"
	"github.com/rmera/gocrys/v3"
)

// FromCIF turns the plain records of a parsed CIF block into a Structure
// with geometry attached: cell constants become a basis-vector matrix,
// symmetry operations are compiled, element symbols get their masses looked
// up (zero if unknown). The block must have at least one atom site.
func FromCIF(cs *cif.Structure) (*Structure, error) {
	if cs == nil {
		return nil, CError{"nil cif structure", []string{"FromCIF"}}
	}
	if len(cs.Sites) == 0 {
		return nil, CError{"cif structure has no atom sites", []string{"FromCIF"}}
	}
	params := CellParams{A: cs.Cell.A, B: cs.Cell.B, C: cs.Cell.C,
		Alpha: cs.Cell.Alpha, Beta: cs.Cell.Beta, Gamma: cs.Cell.Gamma}
	cell, err := params.Cell()
	if err != nil {
		return nil, errDecorate(err, "FromCIF")
	}
	atoms := make([]*Atom, len(cs.Sites))
	frac := v3.Zeros(len(cs.Sites))
	for i, s := range cs.Sites {
		atoms[i] = &Atom{Label: s.Label, Symbol: s.Symbol, Mass: symbolMass[s.Symbol]}
		frac.Set(i, 0, s.FracX)
		frac.Set(i, 1, s.FracY)
		frac.Set(i, 2, s.FracZ)
	}
	ops := make([]*SymOp, len(cs.SymOps))
	for i, o := range cs.SymOps {
		ops[i], err = NewSymOp(o.X, o.Y, o.Z)
		if err != nil {
			return nil, errDecorate(err, "FromCIF")
		}
	}
	group := SpaceGroup{Name: cs.Group.HMName, Number: cs.Group.Number}
	st, err := NewStructure(atoms, frac, cell, group, ops)
	if err != nil {
		return nil, errDecorate(err, "FromCIF")
	}
	return st, nil
}

// ToCIF is the inverse of FromCIF: it flattens a Structure back to plain CIF
// records under the given block name.
func ToCIF(st *Structure, name string) *cif.Structure {
	p := st.Params()
	cs := &cif.Structure{
		Name: name,
		Cell: cif.CellParameters{A: p.A, B: p.B, C: p.C,
			Alpha: p.Alpha, Beta: p.Beta, Gamma: p.Gamma},
		Group: cif.SpaceGroup{HMName: st.SpaceGroup().Name, Number: st.SpaceGroup().Number},
	}
	for _, op := range st.SymOps() {
		x, y, z := op.Components()
		cs.SymOps = append(cs.SymOps, cif.SymmetryOp{X: x, Y: y, Z: z})
	}
	frac := st.CoordsFrac()
	for i := 0; i < st.Len(); i++ {
		at := st.Atom(i)
		cs.Sites = append(cs.Sites, cif.Site{
			Label:  at.Label,
			FracX:  frac.At(i, 0),
			FracY:  frac.At(i, 1),
			FracZ:  frac.At(i, 2),
			Symbol: at.Symbol,
		})
	}
	return cs
}

// ReadCIFFile reads one structure from a CIF file, decompressing it by
// extension first if needed.
func ReadCIFFile(name string) (*Structure, error) {
	cs, err := cif.OpenFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	st, err := FromCIF(cs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return st, nil
}

// WriteCIFFile writes the structure to a CIF file under the given block
// name.
func WriteCIFFile(st *Structure, name, blockName string) error {
	return ToCIF(st, blockName).WriteFile(name)
}
