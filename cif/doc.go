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

// Package cif reads and writes a restricted subset of the Crystallographic
// Information File format: one data_ block holding the six cell constants,
// the Hermann-Mauguin space group name and International Tables number, a
// symmetry-operation loop and an atom-site loop. Files produced by
// crystallography codes for bulk structures (as opposed to full mmCIF
// macromolecular entries) normally fit this subset.
//
// The package parses into plain records; use the parent package to turn a
// cif.Structure into a crys.Structure with geometry attached.
package cif
