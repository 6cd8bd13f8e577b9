/*
 * qplot.go, part of charmminglib.
 *
 * Copyright 2026 The charmminglib Authors
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
 */

//Package chemplot produces plots of the native contact analysis.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the plots
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
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

//QPlot plots the fraction of native contacts q against time, and saves it to
//filename. The format is taken from the extension (png, svg, pdf, eps...). dt is the
//time between frames; if it is 0, the frame number is used instead.
func QPlot(q []float64, dt float64, title, filename string) error {
	if len(q) == 0 {
		return fmt.Errorf("QPlot: Given no data")
	}
	xlabel := "Time"
	if dt == 0 {
		dt = 1
		xlabel = "Frame"
	}
	p := basicPlot(title, xlabel, "Q")
	p.Y.Min = 0
	p.Y.Max = 1
	pts := make(plotter.XYs, len(q))
	for i, v := range q {
		pts[i].X = float64(i) * dt
		pts[i].Y = v
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("QPlot: %w", err)
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(l)
	return p.Save(Width, Height, filename)
}

//FreeEnergyPlot plots the free energy profile F(Q), in kcal/mol, and saves it to filename.
//Points with infinite free energy (empty bins) are left out.
func FreeEnergyPlot(q, F []float64, title, filename string) error {
	if len(q) != len(F) {
		return fmt.Errorf("FreeEnergyPlot: %d Q values and %d energies", len(q), len(F))
	}
	pts := make(plotter.XYs, 0, len(q))
	for i, v := range F {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: q[i], Y: v})
	}
	if len(pts) == 0 {
		return fmt.Errorf("FreeEnergyPlot: No finite values to plot")
	}
	p := basicPlot(title, "Q", "F (kcal/mol)")
	p.X.Min = 0
	p.X.Max = 1
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("FreeEnergyPlot: %w", err)
	}
	l.LineStyle.Color = color.RGBA{R: 255, A: 255}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(l, s)
	return p.Save(Width, Height, filename)
}
