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
	"fmt"
	"math"

	"seehuhn.de/go/ezel"
	"seehuhn.de/go/ezel/axis"
)

var layoutCases = []TestCase{
	{
		Name:   "grid",
		Width:  800,
		Height: 800,
		Draw:   drawGrid,
	},
	{
		Name:   "uneven",
		Width:  900,
		Height: 500,
		Draw:   drawUneven,
	},
	{
		Name:   "bare",
		Width:  300,
		Height: 200,
		Draw:   drawBare,
	},
}

// drawGrid splits the canvas into 2×2 charts with different frequencies.
func drawGrid(c *ezel.Canvas) error {
	top, bottom, err := c.SplitVertically()
	if err != nil {
		return err
	}
	var regions []ezel.Region
	for _, r := range []ezel.Region{top, bottom} {
		left, right, err := r.SplitHorizontally()
		if err != nil {
			return err
		}
		regions = append(regions, left, right)
	}

	xr := axis.Must(axis.FloatRange(0, 2*math.Pi))
	yr := axis.Must(axis.FloatRange(-1.2, 1.2))
	for k, r := range regions {
		ch, err := ezel.NewChart(r, xr, yr,
			ezel.WithCaption(fmt.Sprintf("sin(%dx)", k+1)),
			ezel.WithCaptionSize(14),
			ezel.WithLabelArea(30, 20))
		if err != nil {
			return err
		}
		xs, ys := Sine(1000)
		for i, x := range xs {
			ys[i] = math.Sin(float64(k+1) * x)
		}
		if err := ch.Line(xs, ys, ezel.StrokeWidth(1.5)); err != nil {
			return err
		}
	}
	return nil
}

// drawUneven uses explicit split positions and per-side margins.
func drawUneven(c *ezel.Canvas) error {
	left, right, err := c.SplitHorizontallyAt(2.0 / 3)
	if err != nil {
		return err
	}
	upper, lower, err := right.SplitVerticallyAt(0.25)
	if err != nil {
		return err
	}

	xs, ys := Sine(200)
	xr := axis.Must(axis.FloatRange(0, 2*math.Pi))
	yr := axis.Must(axis.FloatRange(-1, 1))

	ch, err := ezel.NewChart(left, xr, yr,
		ezel.WithCaption("wide"),
		ezel.WithMargins(10, 40, 10, 10),
		ezel.WithLabelArea(40, 30))
	if err != nil {
		return err
	}
	if err := ch.Line(xs, ys); err != nil {
		return err
	}

	ch, err = ezel.NewChart(upper, xr, yr, ezel.WithMargin(5), ezel.WithAxes(false, false))
	if err != nil {
		return err
	}
	if err := ch.Line(xs, ys); err != nil {
		return err
	}

	ch, err = ezel.NewChart(lower, xr, yr,
		ezel.WithCaption("monospace"),
		ezel.WithCaptionFont("monospace"),
		ezel.WithMesh(false, true),
		ezel.WithMaxLabels(4, 3))
	if err != nil {
		return err
	}
	var sx, sy axis.Floats
	for i := 0; i < len(xs); i += 10 {
		sx = append(sx, xs[i])
		sy = append(sy, ys[i])
	}
	return ch.Scatter(sx, sy, ezel.MarkerSize(3))
}

// drawBare draws a line without any decorations.
func drawBare(c *ezel.Canvas) error {
	ch, err := ezel.NewChart(c,
		axis.Must(axis.FloatRange(0, 1)),
		axis.Must(axis.FloatRange(0, 1)),
		ezel.WithMargin(0),
		ezel.WithAxes(false, false),
		ezel.WithMesh(false, false))
	if err != nil {
		return err
	}
	return ch.Line(axis.Floats{0, 0.5, 1}, axis.Floats{0, 1, 0})
}
