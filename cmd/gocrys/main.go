/*
 * main.go, part of gocrys.
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

// Command gocrys inspects and transforms crystal structures in CIF files.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	crys "github.com/rmera/gocrys"
	"github.com/rmera/gocrys/crysplot"
)

// CLI defines the command-line interface for gocrys.
var CLI struct {
	Info      InfoCmd      `cmd:"" help:"Print cell constants, volume, space group and composition"`
	Supercell SupercellCmd `cmd:"" help:"Replicate the structure into a supercell and write it out"`
	RPDF      RPDFCmd      `cmd:"" name:"rpdf" help:"Compute the radial pair distribution function"`
}

type InfoCmd struct {
	File string `arg:"" help:"CIF file, possibly compressed (.gz, .zst, .xz)" type:"existingfile"`
}

func (cmd *InfoCmd) Run() error {
	st, err := crys.ReadCIFFile(cmd.File)
	if err != nil {
		return err
	}
	p := st.Params()
	fmt.Printf("cell     a=%.6f b=%.6f c=%.6f\n", p.A, p.B, p.C)
	fmt.Printf("angles   alpha=%.4f beta=%.4f gamma=%.4f\n", p.Alpha, p.Beta, p.Gamma)
	fmt.Printf("volume   %.6f\n", st.Volume())
	g := st.SpaceGroup()
	fmt.Printf("group    %s (%d), %d symmetry operations\n", g.Name, g.Number, len(st.SymOps()))
	fmt.Printf("atoms    %d\n", st.Len())
	counts := make(map[string]int)
	var order []string
	for _, s := range st.Symbols() {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	for _, s := range order {
		fmt.Printf("         %-3s %d\n", s, counts[s])
	}
	return nil
}

type SupercellCmd struct {
	File string `arg:"" help:"CIF file to replicate" type:"existingfile"`
	Dims string `help:"Supercell dimensions, as NxNxN" default:"2x2x2"`
	Out  string `help:"Output CIF file" default:"supercell.cif"`
}

func (cmd *SupercellCmd) Run() error {
	st, err := crys.ReadCIFFile(cmd.File)
	if err != nil {
		return err
	}
	nx, ny, nz, err := parseDims(cmd.Dims)
	if err != nil {
		return err
	}
	sc, err := crys.Supercell(st, nx, ny, nz)
	if err != nil {
		return err
	}
	if err := crys.WriteCIFFile(sc, cmd.Out, "supercell"); err != nil {
		return err
	}
	fmt.Printf("%dx%dx%d supercell with %d atoms written to %s\n", nx, ny, nz, sc.Len(), cmd.Out)
	return nil
}

type RPDFCmd struct {
	File string  `arg:"" help:"CIF file to analyze" type:"existingfile"`
	Dr   float64 `help:"Histogram bin width" default:"0.05"`
	RMax float64 `name:"rmax" help:"Distance cutoff; 0 means the Smith radius of the cell"`
	Sel1 string  `help:"Element symbol for the first atom of each pair; empty means all"`
	Sel2 string  `help:"Element symbol for the second atom of each pair; empty means all"`
	Dims string  `help:"Replicate into a supercell first, as NxNxN"`
	Plot string  `help:"Also write a plot to this name plus .png"`
}

func (cmd *RPDFCmd) Run() error {
	st, err := crys.ReadCIFFile(cmd.File)
	if err != nil {
		return err
	}
	if cmd.Dims != "" {
		nx, ny, nz, err := parseDims(cmd.Dims)
		if err != nil {
			return err
		}
		st, err = crys.Supercell(st, nx, ny, nz)
		if err != nil {
			return err
		}
	}
	opts := crys.DefaultRPDFOptions()
	opts.Dr = cmd.Dr
	opts.RMax = cmd.RMax
	opts.Sel1 = cmd.Sel1
	opts.Sel2 = cmd.Sel2
	rpdf, err := crys.CalcRPDF(st, opts)
	if err != nil {
		return err
	}
	fmt.Println("#       r         g(r)      nint")
	for i := range rpdf.Rad {
		fmt.Printf("%10.4f %10.4f %10.4f\n", rpdf.Rad[i], rpdf.G[i], rpdf.NInt[i])
	}
	if cmd.Plot != "" {
		return crysplot.RPDFPlot(rpdf, "g(r) "+cmd.File, cmd.Plot)
	}
	return nil
}

// parseDims reads supercell dimensions given as "2x2x2".
func parseDims(s string) (int, int, int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("dimensions must be given as NxNxN, got %q", s)
	}
	var dims [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return 0, 0, 0, fmt.Errorf("bad supercell dimension %q in %q", p, s)
		}
		dims[i] = n
	}
	return dims[0], dims[1], dims[2], nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gocrys"),
		kong.Description("Crystal structure toolbox: CIF reading, supercells, pair distribution functions"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
