/*
 * cif.go, part of gocrys.
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

package cif

// Tag names of the subset this package understands.
const (
	TagCellLengthA    = "_cell_length_a"
	TagCellLengthB    = "_cell_length_b"
	TagCellLengthC    = "_cell_length_c"
	TagCellAngleAlpha = "_cell_angle_alpha"
	TagCellAngleBeta  = "_cell_angle_beta"
	TagCellAngleGamma = "_cell_angle_gamma"
	TagSpaceGroupHM   = "_symmetry_space_group_name_H-M"
	TagSpaceGroupITN  = "_symmetry_Int_Tables_number"
	TagSymEquivPos    = "_symmetry_equiv_pos_as_xyz"
	TagSiteLabel      = "_atom_site_label"
	TagSiteFractX     = "_atom_site_fract_x"
	TagSiteFractY     = "_atom_site_fract_y"
	TagSiteFractZ     = "_atom_site_fract_z"
	TagSiteTypeSymbol = "_atom_site_type_symbol"
)

// CellParameters are the six cell constants of a structure: lengths in
// Angstrom, angles in degrees.
type CellParameters struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// SpaceGroup identifies the space group of a structure by its
// Hermann-Mauguin symbol and its International Tables number (1 to 230).
type SpaceGroup struct {
	HMName string
	Number int
}

// SymmetryOp holds the three components of one symmetry operation in
// "x,y,z" notation, verbatim as read. The components are not evaluated or
// normalized here.
type SymmetryOp struct {
	X, Y, Z string
}

// Site is one atom site: its label, its fractional coordinates and its
// element symbol.
type Site struct {
	Label               string
	FracX, FracY, FracZ float64
	Symbol              string
}

// Structure is the content of one CIF data_ block, in file order. Every
// Structure returned by this package's readers is complete: all six cell
// constants, a space group, at least one symmetry operation.
type Structure struct {
	// Name is the data_ block name, without the data_ prefix.
	Name   string
	Cell   CellParameters
	Group  SpaceGroup
	SymOps []SymmetryOp
	Sites  []Site
}
