/*
 * crys_test.go, part of gocrys.
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
	"testing"

	v3 "github.com/rmera/gocrys/v3"
)

const tol = 1e-8

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

// bodyCentered returns a 2-atom motif in a cubic cell of the given edge:
// Na at the origin, Cl at the body center (a CsCl-type arrangement).
func bodyCentered(Te *testing.T, a float64) *Structure {
	Te.Helper()
	cell, err := CellParams{A: a, B: a, C: a, Alpha: 90, Beta: 90, Gamma: 90}.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	frac, err := v3.NewMatrix([]float64{0, 0, 0, 0.5, 0.5, 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	atoms := []*Atom{
		{Label: "Na1", Symbol: "Na", Mass: 22.99},
		{Label: "Cl1", Symbol: "Cl", Mass: 35.45},
	}
	st, err := NewStructure(atoms, frac, cell, SpaceGroup{Name: "P 1", Number: 1}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return st
}

func TestCellRoundTrip(Te *testing.T) {
	p := CellParams{A: 14.1421356237, B: 14.1421356237, C: 14.1421356237,
		Alpha: 60, Beta: 60, Gamma: 60}
	cell, err := p.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	back := ParamsFromCell(cell)
	for _, pair := range [][2]float64{
		{p.A, back.A}, {p.B, back.B}, {p.C, back.C},
		{p.Alpha, back.Alpha}, {p.Beta, back.Beta}, {p.Gamma, back.Gamma},
	} {
		if !closeTo(pair[0], pair[1]) {
			Te.Errorf("cell constants not recovered: %v vs %v", pair[0], pair[1])
		}
	}
	if !closeTo(p.Volume(), math.Abs(v3.Det(cell))) {
		Te.Errorf("closed-form volume %v, determinant %v", p.Volume(), math.Abs(v3.Det(cell)))
	}
}

func TestCellConvention(Te *testing.T) {
	// a along x, b in the xy plane
	cell, err := CellParams{A: 3, B: 4, C: 5, Alpha: 80, Beta: 85, Gamma: 95}.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	if cell.At(0, 1) != 0 || cell.At(0, 2) != 0 {
		Te.Errorf("first cell vector not along x: %v %v", cell.At(0, 1), cell.At(0, 2))
	}
	if cell.At(1, 2) != 0 {
		Te.Errorf("second cell vector outside the xy plane: %v", cell.At(1, 2))
	}
	if !closeTo(cell.VecView(0).Norm(2), 3) || !closeTo(cell.VecView(1).Norm(2), 4) || !closeTo(cell.VecView(2).Norm(2), 5) {
		Te.Error("cell vector norms do not match the cell lengths")
	}
}

func TestRecipCellAndRMax(Te *testing.T) {
	cell, err := CellParams{A: 4, B: 4, C: 4, Alpha: 90, Beta: 90, Gamma: 90}.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	recip := RecipCell(cell)
	want := 2 * math.Pi / 4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expect := 0.0
			if i == j {
				expect = want
			}
			if !closeTo(recip.At(i, j), expect) {
				Te.Errorf("recip[%d][%d] = %v, want %v", i, j, recip.At(i, j), expect)
			}
		}
	}
	if !closeTo(RMaxSmith(cell), 2) {
		Te.Errorf("Smith radius %v for a cubic cell of edge 4, want 2", RMaxSmith(cell))
	}
}

func TestFracCart(Te *testing.T) {
	st := bodyCentered(Te, 4)
	cart := st.CoordsCart()
	for c := 0; c < 3; c++ {
		if !closeTo(cart.At(1, c), 2) {
			Te.Errorf("cartesian coordinate %v, want 2", cart.At(1, c))
		}
	}
	back, err := CartToFrac(cart, st.Cell())
	if err != nil {
		Te.Fatal(err)
	}
	for c := 0; c < 3; c++ {
		if !closeTo(back.At(1, c), 0.5) {
			Te.Errorf("fractional coordinate %v not recovered", back.At(1, c))
		}
	}
}

func TestMinImageAndWrap(Te *testing.T) {
	m, err := v3.NewMatrix([]float64{0.75, -0.75, 0.5, 1.25, -1.0, 0.0})
	if err != nil {
		Te.Fatal(err)
	}
	MinImage(m)
	want := []float64{-0.25, 0.25, -0.5, 0.25, 0.0, 0.0}
	for i, w := range want {
		if !closeTo(m.At(i/3, i%3), w) {
			Te.Errorf("min image [%d] = %v, want %v", i, m.At(i/3, i%3), w)
		}
	}
	w, err := v3.NewMatrix([]float64{1.25, -0.25, 1.0})
	if err != nil {
		Te.Fatal(err)
	}
	PBCWrap(w)
	wrapped := []float64{0.25, 0.75, 0.0}
	for i, ww := range wrapped {
		if !closeTo(w.At(0, i), ww) {
			Te.Errorf("wrap [%d] = %v, want %v", i, w.At(0, i), ww)
		}
	}
}

func TestDistances(Te *testing.T) {
	st := bodyCentered(Te, 4)
	free := Distances(st, false)
	if !closeTo(free.At(0, 1), 2*math.Sqrt(3)) {
		Te.Errorf("free distance %v, want %v", free.At(0, 1), 2*math.Sqrt(3))
	}
	pbc := Distances(st, true)
	if !closeTo(pbc.At(0, 1), 2*math.Sqrt(3)) {
		Te.Errorf("pbc distance %v, want %v", pbc.At(0, 1), 2*math.Sqrt(3))
	}
	if pbc.At(0, 0) != 0 || !closeTo(pbc.At(0, 1), pbc.At(1, 0)) {
		Te.Error("distance matrix not symmetric with a zero diagonal")
	}
}

func TestSymOpApply(Te *testing.T) {
	op, err := ParseSymOp("x, -y, z+1/2")
	if err != nil {
		Te.Fatal(err)
	}
	x, y, z := op.Apply(0.1, 0.2, 0.3)
	if !closeTo(x, 0.1) || !closeTo(y, -0.2) || !closeTo(z, 0.8) {
		Te.Errorf("op gave (%v, %v, %v), want (0.1, -0.2, 0.8)", x, y, z)
	}
	if !IdentityOp().IsIdentity() {
		Te.Error("identity op does not act as identity")
	}
	if op.IsIdentity() {
		Te.Error("x,-y,z+1/2 reported as identity")
	}
	if op.String() != "x,-y,z+1/2" {
		Te.Errorf("components not kept verbatim: %q", op.String())
	}
	for _, bad := range []string{"x,y", "x,y,z,w", "x*y, y, z", "sin(x), y, z"} {
		if _, err := ParseSymOp(bad); err == nil {
			Te.Errorf("%q accepted, want an error", bad)
		}
	}
}

func TestSupercell(Te *testing.T) {
	st := bodyCentered(Te, 4)
	sc, err := Supercell(st, 2, 2, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if sc.Len() != 16 {
		Te.Fatalf("supercell has %d atoms, want 16", sc.Len())
	}
	for i := 0; i < 8; i++ {
		if sc.Atom(i).Symbol != "Na" || sc.Atom(i+8).Symbol != "Cl" {
			Te.Fatal("supercell does not keep site-major order")
		}
	}
	frac := sc.CoordsFrac()
	for i := 0; i < sc.Len(); i++ {
		for c := 0; c < 3; c++ {
			if v := frac.At(i, c); v < 0 || v >= 1 {
				Te.Errorf("fractional coordinate %v outside [0,1)", v)
			}
		}
	}
	p := sc.Params()
	if !closeTo(p.A, 8) || !closeTo(p.B, 8) || !closeTo(p.C, 8) {
		Te.Errorf("supercell edges %v %v %v, want 8", p.A, p.B, p.C)
	}
	if !closeTo(sc.Volume(), 8*st.Volume()) {
		Te.Errorf("supercell volume %v, want %v", sc.Volume(), 8*st.Volume())
	}
	if _, err := Supercell(st, 0, 1, 1); err == nil {
		Te.Error("zero supercell dimension accepted")
	}
}

// TestRPDFSimpleCubic checks g(r) against the exact neighbor shells of a
// simple cubic lattice: 6 neighbors at a, 12 at a*sqrt(2).
func TestRPDFSimpleCubic(Te *testing.T) {
	cell, err := CellParams{A: 4, B: 4, C: 4, Alpha: 90, Beta: 90, Gamma: 90}.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	frac := v3.Zeros(1)
	atoms := []*Atom{{Label: "Po1", Symbol: "Po", Mass: 209}}
	unit, err := NewStructure(atoms, frac, cell, SpaceGroup{Name: "P 1", Number: 1}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	st, err := Supercell(unit, 4, 4, 4)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultRPDFOptions()
	opts.Dr = 0.3
	rpdf, err := CalcRPDF(st, opts)
	if err != nil {
		Te.Fatal(err)
	}
	shell := firstNonzero(rpdf.G)
	if shell < 0 {
		Te.Fatal("g(r) is identically zero")
	}
	if rpdf.Rad[shell] < 4-opts.Dr || rpdf.Rad[shell] > 4+opts.Dr {
		Te.Errorf("first shell at r=%v, want near 4", rpdf.Rad[shell])
	}
	if !closeTo(rpdf.NInt[shell], 6) {
		Te.Errorf("number integral %v at the first shell, want 6 neighbors", rpdf.NInt[shell])
	}
}

func firstNonzero(g []float64) int {
	for i, v := range g {
		if v > 0 {
			return i
		}
	}
	return -1
}

func TestRPDFSelections(Te *testing.T) {
	st, err := Supercell(bodyCentered(Te, 4), 3, 3, 3)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultRPDFOptions()
	opts.Dr = 0.3
	opts.Sel1 = "Na"
	opts.Sel2 = "Cl"
	rpdf, err := CalcRPDF(st, opts)
	if err != nil {
		Te.Fatal(err)
	}
	shell := firstNonzero(rpdf.G)
	if shell < 0 {
		Te.Fatal("g(r) is identically zero")
	}
	// nearest Na-Cl contact in this motif is a*sqrt(3)/2, with 8 such
	// neighbors around each Na
	want := 4 * math.Sqrt(3) / 2
	if rpdf.Rad[shell] < want-opts.Dr || rpdf.Rad[shell] > want+opts.Dr {
		Te.Errorf("Na-Cl shell at r=%v, want near %v", rpdf.Rad[shell], want)
	}
	if !closeTo(rpdf.NInt[shell], 8) {
		Te.Errorf("number integral %v at the first shell, want 8 neighbors", rpdf.NInt[shell])
	}
	opts.Sel1 = "Xx"
	if _, err := CalcRPDF(st, opts); err == nil {
		Te.Error("selection with no matching atoms accepted")
	}
}

// TestRPDFFractionalRMax uses a cutoff that is not a multiple of the bin
// width, with a pair distance falling in the last, short bin.
func TestRPDFFractionalRMax(Te *testing.T) {
	cell, err := CellParams{A: 4, B: 4, C: 4, Alpha: 90, Beta: 90, Gamma: 90}.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	frac, err := v3.NewMatrix([]float64{0, 0, 0, 0.2375, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	atoms := []*Atom{
		{Label: "Na1", Symbol: "Na", Mass: 22.99},
		{Label: "Na2", Symbol: "Na", Mass: 22.99},
	}
	st, err := NewStructure(atoms, frac, cell, SpaceGroup{Name: "P 1", Number: 1}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	opts := DefaultRPDFOptions()
	opts.RMax = 1.0 // pair distance 0.95 lands in the 0.9-1.0 remainder bin
	opts.Dr = 0.3
	rpdf, err := CalcRPDF(st, opts)
	if err != nil {
		Te.Fatal(err)
	}
	if len(rpdf.G) != 4 {
		Te.Fatalf("%d bins for rmax=1.0 dr=0.3, want 4", len(rpdf.G))
	}
	if rpdf.G[3] == 0 {
		Te.Error("pair at r=0.95 not counted in the last bin")
	}
	if !closeTo(rpdf.NInt[3], 1) {
		Te.Errorf("number integral %v at the cutoff, want 1", rpdf.NInt[3])
	}
}

// TestRecipCellTriclinic checks the defining relation of the reciprocal
// vectors, recip_i . cell_j = 2*pi*delta_ij, on a cell with no right angles.
func TestRecipCellTriclinic(Te *testing.T) {
	cell, err := CellParams{A: 3, B: 4, C: 5, Alpha: 80, Beta: 85, Gamma: 95}.Cell()
	if err != nil {
		Te.Fatal(err)
	}
	recip := RecipCell(cell)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			expect := 0.0
			if i == j {
				expect = 2 * math.Pi
			}
			if got := recip.VecView(i).Dot(cell.VecView(j)); !closeTo(got, expect) {
				Te.Errorf("recip[%d] . cell[%d] = %v, want %v", i, j, got, expect)
			}
		}
	}
}

func TestStructureBasics(Te *testing.T) {
	st := bodyCentered(Te, 4)
	if st.Len() != 2 {
		Te.Fatalf("Len %d, want 2", st.Len())
	}
	if got := st.Symbols(); got[0] != "Na" || got[1] != "Cl" {
		Te.Errorf("symbols %v", got)
	}
	masses, err := st.Masses()
	if err != nil {
		Te.Fatal(err)
	}
	if !closeTo(masses[0], 22.99) {
		Te.Errorf("Na mass %v", masses[0])
	}
	if idx := st.SomeAtoms("Cl"); len(idx) != 1 || idx[0] != 1 {
		Te.Errorf("SomeAtoms(Cl) = %v", idx)
	}
	cp := st.Copy()
	cp.Atom(0).Label = "changed"
	if st.Atom(0).Label == "changed" {
		Te.Error("Copy shares atoms with the original")
	}
	defer func() {
		if recover() == nil {
			Te.Error("out-of-range Atom access did not panic")
		}
	}()
	st.Atom(5)
}
