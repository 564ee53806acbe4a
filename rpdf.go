/*
 * rpdf.go, part of gocrys.
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

	"github.com/rmera/gocrys/v3"
)

// RPDFOptions controls the calculation of a radial pair distribution
// function. The zero value is not useful, use DefaultRPDFOptions and adjust.
type RPDFOptions struct {
	// RMax is the largest distance considered. If <=0, the Smith radius of
	// the cell is used, which is the largest radius for which the minimum
	// image convention gives correct distances.
	RMax float64
	// Dr is the histogram bin width, in the same unit as the cell.
	Dr float64
	// Sel1 and Sel2 are element symbols restricting the first and second
	// atom of each pair, respectively. An empty string selects all atoms.
	Sel1, Sel2 string
	// PBC applies the minimum image convention to interatomic distances.
	PBC bool
}

// DefaultRPDFOptions returns options for a periodic RPDF over all atom pairs
// with a 0.05 bin width and the Smith radius as cutoff.
func DefaultRPDFOptions() *RPDFOptions {
	return &RPDFOptions{Dr: 0.05, PBC: true}
}

// RPDF is a radial pair distribution function g(r) together with its
// number integral.
type RPDF struct {
	// Rad contains the bin centers.
	Rad []float64
	// G contains g(r) per bin, normalized by the ideal-gas shell count.
	G []float64
	// NInt contains the number integral, the average number of selection-2
	// atoms within Rad[i]+Dr/2 of a selection-1 atom.
	NInt []float64
}

// CalcRPDF computes the radial pair distribution function of a structure,
// following Smith's scheme: fractional pair differences are wrapped with the
// minimum image convention (if o.PBC), taken to cartesian space and
// histogrammed up to RMax, then each bin is normalized by the count an ideal
// gas of the same density would put in its spherical shell. If o is nil, the
// defaults from DefaultRPDFOptions are used.
func CalcRPDF(st *Structure, o *RPDFOptions) (*RPDF, error) {
	if o == nil {
		o = DefaultRPDFOptions()
	}
	cell := st.Cell()
	rmax := o.RMax
	if rmax <= 0 {
		rmax = RMaxSmith(cell)
	}
	if o.Dr <= 0 {
		return nil, CError{fmt.Sprintf("RPDF bin width must be positive, got %v", o.Dr), []string{"CalcRPDF"}}
	}
	sel1, err := rpdfSel(st, o.Sel1)
	if err != nil {
		return nil, errDecorate(err, "CalcRPDF")
	}
	sel2, err := rpdfSel(st, o.Sel2)
	if err != nil {
		return nil, errDecorate(err, "CalcRPDF")
	}
	// the last bin covers rmax when it is not a multiple of Dr
	nbins := int(math.Ceil(rmax / o.Dr))
	if nbins < 1 {
		return nil, CError{fmt.Sprintf("RPDF needs at least one bin, have rmax=%v dr=%v", rmax, o.Dr), []string{"CalcRPDF"}}
	}
	hist := make([]float64, nbins)
	frac := st.CoordsFrac()
	diff := v3.Zeros(1)
	cart := v3.Zeros(1)
	for _, i := range sel1 {
		for _, j := range sel2 {
			if i == j {
				continue
			}
			diff.SubVec(frac.VecView(i), frac.VecView(j))
			if o.PBC {
				MinImage(diff)
			}
			cart.Mul(diff, cell)
			d := cart.Norm(2)
			if d >= rmax {
				continue
			}
			bin := int(d / o.Dr)
			if bin >= nbins { // d just under rmax can round up
				bin = nbins - 1
			}
			hist[bin]++
		}
	}
	// the zero bin only ever counts coincident sites, which say nothing
	// about pair structure
	hist[0] = 0
	vol := math.Abs(v3.Det(cell))
	n1 := float64(len(sel1))
	n2 := float64(len(sel2))
	ret := &RPDF{
		Rad:  make([]float64, nbins),
		G:    make([]float64, nbins),
		NInt: make([]float64, nbins),
	}
	cum := 0.0
	for k := range hist {
		lo := float64(k) * o.Dr
		hi := lo + o.Dr
		ret.Rad[k] = lo + 0.5*o.Dr
		vshell := 4.0 / 3.0 * math.Pi * (hi*hi*hi - lo*lo*lo)
		ret.G[k] = hist[k] * vol / (vshell * n1 * n2)
		cum += hist[k]
		ret.NInt[k] = cum / n1
	}
	return ret, nil
}

// rpdfSel resolves an element selection to atom indices. The empty symbol
// selects every atom.
func rpdfSel(st *Structure, symbol string) ([]int, error) {
	if symbol == "" {
		all := make([]int, st.Len())
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	sel := st.SomeAtoms(symbol)
	if len(sel) == 0 {
		return nil, CError{fmt.Sprintf("No atoms with symbol %q in structure", symbol), []string{"rpdfSel"}}
	}
	return sel, nil
}
