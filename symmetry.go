/*
 * symmetry.go, part of gocrys.
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
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SymOp is a symmetry operation on fractional coordinates, in the "x,y,z"
// notation of CIF files: one arithmetic expression per axis, built from the
// coordinates x, y, z, rational or decimal constants, and + or -
// (e.g. "-x+1/2, y, z-1"). A SymOp keeps the component strings verbatim, as
// read, and is immutable once built.
type SymOp struct {
	comps [3]string
	exprs [3]*symExpr
}

// symExpr is the participle grammar for one axis component: an optionally
// negated term followed by any number of +/- terms.
type symExpr struct {
	Neg   bool       `parser:"@Minus?"`
	First *symTerm   `parser:"@@"`
	Rest  []*symTail `parser:"@@*"`
}

type symTail struct {
	Op   string   `parser:"@(Plus | Minus)"`
	Term *symTerm `parser:"@@"`
}

// symTerm is either a coordinate or a constant, the latter possibly a
// fraction like 1/2.
type symTerm struct {
	Axis *string `parser:"@Axis"`
	Num  *string `parser:"| @Number"`
	Den  *string `parser:"(Slash @Number)?"`
}

var symLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+(?:\.[0-9]+)?`},
	{Name: "Axis", Pattern: `[xyzXYZ]`},
	{Name: "Plus", Pattern: `\+`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var symParser = participle.MustBuild[symExpr](
	participle.Lexer(symLexer),
	participle.Elide("Whitespace"),
)

// NewSymOp builds a symmetry operation from its three axis components, given
// verbatim. It returns an error if any component is not a valid expression.
func NewSymOp(x, y, z string) (*SymOp, error) {
	op := new(SymOp)
	op.comps = [3]string{x, y, z}
	for i, c := range op.comps {
		expr, err := symParser.ParseString("", c)
		if err != nil {
			return nil, CError{fmt.Sprintf("Invalid symmetry expression %q: %v", c, err), []string{"NewSymOp"}}
		}
		op.exprs[i] = expr
	}
	return op, nil
}

// ParseSymOp builds a symmetry operation from a full "x,y,z"-style string,
// which must have exactly 3 comma-separated components.
func ParseSymOp(s string) (*SymOp, error) {
	comps := strings.Split(s, ",")
	if len(comps) != 3 {
		return nil, CError{fmt.Sprintf("Symmetry operation %q must have 3 comma-separated components, has %d", s, len(comps)), []string{"ParseSymOp"}}
	}
	op, err := NewSymOp(strings.TrimSpace(comps[0]), strings.TrimSpace(comps[1]), strings.TrimSpace(comps[2]))
	if err != nil {
		return nil, errDecorate(err, "ParseSymOp")
	}
	return op, nil
}

// IdentityOp returns the identity operation, "x,y,z".
func IdentityOp() *SymOp {
	op, err := NewSymOp("x", "y", "z")
	if err != nil {
		panic(err.Error()) // the identity always parses
	}
	return op
}

// Components returns the three verbatim component strings of the operation.
func (O *SymOp) Components() (string, string, string) {
	return O.comps[0], O.comps[1], O.comps[2]
}

func (O *SymOp) String() string {
	return strings.Join(O.comps[:], ",")
}

// IsIdentity returns whether the operation leaves every point unchanged.
func (O *SymOp) IsIdentity() bool {
	x, y, z := O.Apply(0.1, 0.2, 0.3)
	return x == 0.1 && y == 0.2 && z == 0.3
}

// Apply evaluates the operation on a fractional coordinate triple.
func (O *SymOp) Apply(fx, fy, fz float64) (float64, float64, float64) {
	coords := [3]float64{fx, fy, fz}
	var out [3]float64
	for i, e := range O.exprs {
		out[i] = e.eval(coords)
	}
	return out[0], out[1], out[2]
}

func (e *symExpr) eval(coords [3]float64) float64 {
	sign := 1.0
	if e.Neg {
		sign = -1.0
	}
	total := sign * e.First.eval(coords)
	for _, t := range e.Rest {
		sign = 1.0
		if t.Op == "-" {
			sign = -1.0
		}
		total += sign * t.Term.eval(coords)
	}
	return total
}

func (t *symTerm) eval(coords [3]float64) float64 {
	if t.Axis != nil {
		switch strings.ToLower(*t.Axis) {
		case "x":
			return coords[0]
		case "y":
			return coords[1]
		default:
			return coords[2]
		}
	}
	// the grammar guarantees Num is a valid number literal
	num, _ := strconv.ParseFloat(*t.Num, 64)
	if t.Den != nil {
		den, _ := strconv.ParseFloat(*t.Den, 64)
		return num / den
	}
	return num
}
