// seehuhn.de/go/ezel - fast raster charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DrawBaseline draws the same chart as [DrawNormal] using gonum/plot and
// writes it to w in PNG format.  It is used for speed comparisons.
func DrawBaseline(w io.Writer, width, height, n int, seed uint64) error {
	xs, ys := NormalData(n, seed)
	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	p := plot.New()
	p.Title.Text = "Title Chart1"
	p.X.Min, p.X.Max = -10, 10
	p.Y.Min, p.Y.Max = -10, 10
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line, plotter.NewGrid())

	// gonum renders PNG images at 96 dpi
	px := vg.Inch / 96
	wt, err := p.WriterTo(vg.Length(width)*px, vg.Length(height)*px, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
