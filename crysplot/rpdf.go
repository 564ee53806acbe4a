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

// Package crysplot plots the results of crystal-structure analyses.
package crysplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/gocrys"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// RPDFPlot writes a plot of g(r), and optionally its number integral, to
// plotname.png. The number integral is skipped if r.NInt is nil.
func RPDFPlot(r *crys.RPDF, title, plotname string) error {
	if r == nil {
		panic("Given nil data")
	}
	p := basicPlot(title, "r (A)", "g(r)")
	g, err := plotter.NewLine(xys(r.Rad, r.G))
	if err != nil {
		return err
	}
	g.Color = color.RGBA{B: 255, A: 255}
	p.Add(g)
	p.Legend.Add("g(r)", g)
	if r.NInt != nil {
		n, err := plotter.NewLine(xys(r.Rad, r.NInt))
		if err != nil {
			return err
		}
		n.Color = color.RGBA{R: 255, A: 255}
		n.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(n)
		p.Legend.Add("number integral", n)
	}
	p.Legend.Top = true
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
