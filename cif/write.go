/*
 * write.go, part of gocrys.
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

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write serializes the structure as a CIF data_ block. Floats are written
// with the shortest representation that parses back exactly, so
// Parse(Write(Parse(text))) equals Parse(text) field for field.
func (S *Structure) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	name := S.Name
	if name == "" {
		name = "structure"
	}
	fmt.Fprintf(bw, "data_%s\n", name)
	for _, sc := range []struct {
		tag string
		val float64
	}{
		{TagCellLengthA, S.Cell.A},
		{TagCellLengthB, S.Cell.B},
		{TagCellLengthC, S.Cell.C},
		{TagCellAngleAlpha, S.Cell.Alpha},
		{TagCellAngleBeta, S.Cell.Beta},
		{TagCellAngleGamma, S.Cell.Gamma},
	} {
		fmt.Fprintf(bw, "%s %s\n", sc.tag, ffmt(sc.val))
	}
	fmt.Fprintf(bw, "%s '%s'\n", TagSpaceGroupHM, S.Group.HMName)
	fmt.Fprintf(bw, "%s %d\n", TagSpaceGroupITN, S.Group.Number)
	fmt.Fprintf(bw, "loop_\n%s\n", TagSymEquivPos)
	for _, op := range S.SymOps {
		fmt.Fprintf(bw, "'%s, %s, %s'\n", op.X, op.Y, op.Z)
	}
	bw.WriteString("loop_\n")
	for _, tag := range []string{TagSiteLabel, TagSiteFractX, TagSiteFractY, TagSiteFractZ, TagSiteTypeSymbol} {
		fmt.Fprintf(bw, "%s\n", tag)
	}
	for _, s := range S.Sites {
		fmt.Fprintf(bw, "%s %s %s %s %s\n", s.Label, ffmt(s.FracX), ffmt(s.FracY), ffmt(s.FracZ), s.Symbol)
	}
	return bw.Flush()
}

// WriteFile serializes the structure to the named file, creating or
// truncating it.
func (S *Structure) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := S.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ffmt(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
