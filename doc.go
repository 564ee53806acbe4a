/*
 * doc.go, part of gocrys.
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

/*
Package crys is the main package of the goCrys library. It provides structures
for periodic crystal structures read from CIF files (see the cif subpackage)
and functions for the geometric analysis of such structures. goCrys:

  - Builds unit cell basis vectors from the six crystallographic constants
    (a, b, c, alpha, beta, gamma) and back, with a deterministic orientation
    convention (a along x, b in the x-y plane).

  - Calculates cell volumes, reciprocal cells and the Smith radius (the
    maximal distance up to which minimum-image nearest-neighbor distances are
    correct).

  - Converts between fractional and cartesian coordinates.

  - Builds supercells from a unit cell, preserving site order.

  - Applies the minimum image convention and periodic wrapping to fractional
    coordinates, and calculates pair-distance matrices with or without
    periodic boundary conditions.

  - Parses and evaluates symmetry operations in the "x,y,z" notation used by
    CIF files (e.g. "-x+1/2, y, z").

  - Calculates the radial pair distribution function g(r) and its number
    integral for a structure, optionally restricted to pairs of chemical
    elements. The crysplot subpackage plots the result.

goCrys uses the v3 subpackage, a matrix-of-coordinates type based on
gonum.org/v1/gonum/mat, for fractional and cartesian coordinates as well as
for unit cells (as 3x3 matrices whose rows are the basis vectors).
*/
package crys
