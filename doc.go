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

// Package ezel draws charts with very many data points into raster images.
//
// A [Canvas] holds an RGBA pixel buffer.  It can be split recursively into
// disjoint [Region]s, and a [Chart] is bound to one region (or to the whole
// canvas) together with an x and a y [axis.Range].  Series are drawn
// directly into the shared buffer, and [Canvas.Save] writes the result as
// a PNG file:
//
//	c, err := ezel.New(ezel.WithSize(800, 600))
//	...
//	ch, err := ezel.NewChart(c, axis.Must(axis.FloatRange(0, 10)),
//		axis.Must(axis.FloatRange(-1, 1)), ezel.WithCaption("sine"))
//	...
//	err = ch.Line(xs, ys)
//	...
//	err = c.Save("sine.png")
//
// Lines of width one are drawn with Bresenham's algorithm, all other
// shapes with an anti-aliasing coverage rasteriser (package raster).  The
// cost of drawing a series is linear in the number of points plus the
// number of painted pixels.
//
// Charts on different regions of one canvas can be drawn concurrently
// using [Canvas.Draw].
package ezel
