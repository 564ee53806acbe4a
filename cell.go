/*
 * cell.go, part of gocrys.
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
	"math"

	v3 "github.com/rmera/gocrys/v3"
)

// CellParams holds the six crystallographic constants of a unit cell: the
// lengths of the three basis vectors (in Angstrom for structures read from
// CIF) and the three angles between them, in degrees. Alpha is the angle
// between b and c, Beta between a and c, and Gamma between a and b.
type CellParams struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// Valid returns an error unless the lengths are positive and the angles are
// all in the open interval (0,180), i.e. unless the constants define a
// non-degenerate parallelepiped.
func (p CellParams) Valid() error {
	if p.A <= 0 || p.B <= 0 || p.C <= 0 {
		return CError{fmt.Sprintf("Cell lengths must be positive: %v", p), []string{"CellParams.Valid"}}
	}
	for _, ang := range []float64{p.Alpha, p.Beta, p.Gamma} {
		if ang <= 0 || ang >= 180 {
			return CError{fmt.Sprintf("Cell angles must be in (0,180): %v", p), []string{"CellParams.Valid"}}
		}
	}
	return nil
}

// Cell builds the unit cell basis vectors from the constants. The mapping
// from constants to vectors is not unique; we stick to the common convention
// that a lies along the x axis and b lies in the x-y plane, which fixes c.
func (p CellParams) Cell() (*v3.Matrix, error) {
	if err := p.Valid(); err != nil {
		return nil, errDecorate(err, "Cell")
	}
	alpha := deg2rad(p.Alpha)
	beta := deg2rad(p.Beta)
	gamma := deg2rad(p.Gamma)
	va := []float64{p.A, 0, 0}
	vb := []float64{p.B * math.Cos(gamma), p.B * math.Sin(gamma), 0}
	// cx is the projection of c onto a. cy and cz follow the PWscf/sgroup
	// formulas, which are equivalent to, but shorter than, solving with the
	// cell volume.
	cx := p.C * math.Cos(beta)
	cy := p.C * (math.Cos(alpha) - math.Cos(beta)*math.Cos(gamma)) / math.Sin(gamma)
	czsq := p.C*p.C - cy*cy - cx*cx
	if czsq <= 0 {
		return nil, CError{fmt.Sprintf("Cell constants don't define a parallelepiped: %v", p), []string{"Cell"}}
	}
	vc := []float64{cx, cy, math.Sqrt(czsq)}
	data := make([]float64, 0, 9)
	data = append(data, va...)
	data = append(data, vb...)
	data = append(data, vc...)
	data = floorEps(data)
	cell, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "Cell")
	}
	return cell, nil
}

// Volume returns the volume of the cell defined by the constants, using the
// closed form for the volume of a parallelepiped.
func (p CellParams) Volume() float64 {
	ca := math.Cos(deg2rad(p.Alpha))
	cb := math.Cos(deg2rad(p.Beta))
	cg := math.Cos(deg2rad(p.Gamma))
	return p.A * p.B * p.C * math.Sqrt(1+2*ca*cb*cg-ca*ca-cb*cb-cg*cg)
}

// ParamsFromCell obtains the six crystallographic constants from cell basis
// vectors. Unlike CellParams.Cell, this mapping is unique: it does not depend
// on the spatial orientation of the cell.
func ParamsFromCell(cell *v3.Matrix) CellParams {
	if r, c := cell.Dims(); r != 3 || c != 3 {
		panic(ErrCellNot3x3)
	}
	va := cell.VecView(0)
	vb := cell.VecView(1)
	vc := cell.VecView(2)
	return CellParams{
		A:     va.Norm(2),
		B:     vb.Norm(2),
		C:     vc.Norm(2),
		Alpha: vecAngle(vb, vc),
		Beta:  vecAngle(va, vc),
		Gamma: vecAngle(va, vb),
	}
}

// VolumeCell returns the volume of the unit cell from its basis vectors, as
// the absolute value of the triple product a x b . c.
func VolumeCell(cell *v3.Matrix) float64 {
	if r, c := cell.Dims(); r != 3 || c != 3 {
		panic(ErrCellNot3x3)
	}
	return math.Abs(v3.Det(cell))
}

// RecipCell returns the reciprocal lattice vectors
// {a,b,c}* = 2*pi/V * {b,c,a} x {c,a,b}, as the rows of a 3x3 matrix.
func RecipCell(cell *v3.Matrix) *v3.Matrix {
	if r, c := cell.Dims(); r != 3 || c != 3 {
		panic(ErrCellNot3x3)
	}
	vol := VolumeCell(cell)
	a := cell.VecView(0)
	b := cell.VecView(1)
	c := cell.VecView(2)
	ret := v3.Zeros(3)
	cross := v3.Zeros(1)
	fac := 2 * math.Pi / vol
	// Scale goes through the embedded Dense on both sides: handing it the
	// wrapper as the argument trips gonum's overlap check, like Mul.
	cross.Cross(b, c)
	cross.Dense.Scale(fac, cross.Dense)
	ret.SetMatrix(0, 0, cross)
	cross.Cross(c, a)
	cross.Dense.Scale(fac, cross.Dense)
	ret.SetMatrix(1, 0, cross)
	cross.Cross(a, b)
	cross.Dense.Scale(fac, cross.Dense)
	ret.SetMatrix(2, 0, cross)
	return ret
}

// RMaxSmith calculates the maximal distance up to which minimum-image nearest
// neighbor distances are correct for the given cell (Smith, "The Minimum
// Image Convention in Non-Cubic MD Cells", 1989). It is the radius of the
// biggest sphere that fits entirely into the cell; L/2 for a cubic box of
// side L.
func RMaxSmith(cell *v3.Matrix) float64 {
	a := cell.VecView(0)
	b := cell.VecView(1)
	c := cell.VecView(2)
	cross := v3.Zeros(1)
	cross.Cross(b, c)
	wa := math.Abs(a.Dot(cross)) / cross.Norm(2)
	cross.Cross(c, a)
	wb := math.Abs(b.Dot(cross)) / cross.Norm(2)
	cross.Cross(a, b)
	wc := math.Abs(c.Dot(cross)) / cross.Norm(2)
	return 0.5 * math.Min(wa, math.Min(wb, wc))
}

// vecAngle returns the angle between two 1x3 matrices, in degrees.
func vecAngle(x, y *v3.Matrix) float64 {
	return math.Acos(x.Dot(y)/(x.Norm(2)*y.Norm(2))) * 180.0 / math.Pi
}

func deg2rad(x float64) float64 {
	return x * math.Pi / 180.0
}

// floorEps zeroes the entries of data that are smaller than the float64
// epsilon. sin(180*pi/180) is 1e-17 or so; we want an exact 0.0 in the cell.
func floorEps(data []float64) []float64 {
	eps := math.Nextafter(1, 2) - 1
	for i, v := range data {
		if math.Abs(v) < eps {
			data[i] = 0.0
		}
	}
	return data
}
