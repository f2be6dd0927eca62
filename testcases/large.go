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
	"seehuhn.de/go/ezel"
	"seehuhn.de/go/ezel/axis"
)

var largeCases = []TestCase{
	{
		Name: "normal",
		Draw: func(c *ezel.Canvas) error {
			return DrawNormal(c, 100_000, 1)
		},
	},
}

// DrawNormal draws n random points with standard normal coordinates as
// one line over the whole canvas.
func DrawNormal(c *ezel.Canvas, n int, seed uint64) error {
	xs, ys := NormalData(n, seed)
	r := axis.Must(axis.FloatRange(-10, 10))
	ch, err := ezel.NewChart(c, r, r,
		ezel.WithCaption("Title Chart1"),
		ezel.WithMargin(10))
	if err != nil {
		return err
	}
	return ch.Line(xs, ys, ezel.StrokeWidth(1))
}
