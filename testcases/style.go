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
	"image/color"
	"math"

	"seehuhn.de/go/ezel"
	"seehuhn.de/go/ezel/axis"
	"seehuhn.de/go/pdf/graphics"
)

var styleCases = []TestCase{
	{
		Name:   "widths",
		Width:  600,
		Height: 400,
		Draw:   drawWidths,
	},
	{
		Name:   "joins",
		Width:  600,
		Height: 300,
		Draw:   drawJoins,
	},
	{
		Name:   "markers",
		Width:  400,
		Height: 400,
		Draw:   drawMarkers,
	},
	{
		Name:   "off_range",
		Width:  400,
		Height: 300,
		Draw:   drawOffRange,
	},
}

// drawWidths draws series with palette colours and increasing width.
func drawWidths(c *ezel.Canvas) error {
	ch, err := ezel.NewChart(c,
		axis.Must(axis.FloatRange(0, 2*math.Pi)),
		axis.Must(axis.FloatRange(-1, 8)),
		ezel.WithCaption("stroke widths"))
	if err != nil {
		return err
	}
	xs, ys := Sine(300)
	for k, w := range []float64{0.5, 1, 2, 3, 5} {
		shifted := make(axis.Floats, len(ys))
		for i, y := range ys {
			shifted[i] = y + 1.5*float64(k)
		}
		opts := []ezel.SeriesOption{ezel.StrokeWidth(w)}
		if k == 1 {
			opts = append(opts, ezel.Antialias(true))
		}
		if err := ch.Line(xs, shifted, opts...); err != nil {
			return err
		}
	}
	return nil
}

// drawJoins draws a zigzag with every combination of cap and join style,
// and a dashed line.
func drawJoins(c *ezel.Canvas) error {
	ch, err := ezel.NewChart(c,
		axis.Must(axis.FloatRange(0, 10)),
		axis.Must(axis.FloatRange(0, 10)),
		ezel.WithMesh(false, false),
		ezel.WithAxes(false, false))
	if err != nil {
		return err
	}
	styles := []struct {
		cap  graphics.LineCapStyle
		join graphics.LineJoinStyle
	}{
		{graphics.LineCapButt, graphics.LineJoinMiter},
		{graphics.LineCapRound, graphics.LineJoinRound},
		{graphics.LineCapSquare, graphics.LineJoinBevel},
	}
	for k, s := range styles {
		x0 := 0.5 + 3*float64(k)
		xs := axis.Floats{x0, x0 + 0.7, x0 + 1.4, x0 + 2.1}
		ys := axis.Floats{2, 7, 2, 7}
		err := ch.Line(xs, ys,
			ezel.StrokeWidth(10),
			ezel.Cap(s.cap),
			ezel.Join(s.join),
			ezel.Color(color.NRGBA{R: 0x20, G: 0x40, B: 0xa0, A: 0xc0}))
		if err != nil {
			return err
		}
	}
	return ch.Line(axis.Floats{0.5, 9.5}, axis.Floats{9, 9},
		ezel.StrokeWidth(3),
		ezel.Dash([]float64{12, 6, 2, 6}, 0),
		ezel.Cap(graphics.LineCapButt))
}

// drawMarkers draws filled and outlined markers of different sizes.
func drawMarkers(c *ezel.Canvas) error {
	ch, err := ezel.NewChart(c,
		axis.Must(axis.FloatRange(0, 10)),
		axis.Must(axis.FloatRange(0, 4)),
		ezel.WithCaption("markers"))
	if err != nil {
		return err
	}
	xs := axis.Int64s{1, 3, 5, 7, 9}
	for k, size := range []float64{2, 5, 8} {
		ys := make(axis.Float32s, len(xs))
		for i := range ys {
			ys[i] = float32(k + 1)
		}
		err := ch.Scatter(xs, ys, ezel.MarkerSize(size), ezel.Filled(k != 1), ezel.StrokeWidth(2))
		if err != nil {
			return err
		}
	}
	return nil
}

// drawOffRange draws a line which leaves the plot area.  The left half is
// clipped to the region, the right half to the plot area.
func drawOffRange(c *ezel.Canvas) error {
	left, right, err := c.SplitHorizontally()
	if err != nil {
		return err
	}
	xs := axis.Floats{-1, 0, 0.5, 1, 2}
	ys := axis.Floats{0.5, -0.5, 1.5, 0.5, 1e9}
	for _, clip := range []struct {
		r    ezel.Region
		clip bool
	}{{left, false}, {right, true}} {
		ch, err := ezel.NewChart(clip.r,
			axis.Must(axis.FloatRange(0, 1)),
			axis.Must(axis.FloatRange(0, 1)),
			ezel.WithClipToPlot(clip.clip))
		if err != nil {
			return err
		}
		if err := ch.Line(xs, ys, ezel.StrokeWidth(2)); err != nil {
			return err
		}
	}
	return nil
}
