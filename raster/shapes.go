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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// bezierCircle is the control point distance for a quarter circle.
const bezierCircle = 0.5522847498

// Circle returns a closed, counter-clockwise path approximating a circle.
func Circle(center vec.Vec2, radius float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		cx, cy := center.X, center.Y
		r := radius
		k := bezierCircle * r

		var buf [3]vec.Vec2
		buf[0] = vec.Vec2{X: cx + r, Y: cy}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		quarters := [4][3]vec.Vec2{
			{{X: cx + r, Y: cy + k}, {X: cx + k, Y: cy + r}, {X: cx, Y: cy + r}},
			{{X: cx - k, Y: cy + r}, {X: cx - r, Y: cy + k}, {X: cx - r, Y: cy}},
			{{X: cx - r, Y: cy - k}, {X: cx - k, Y: cy - r}, {X: cx, Y: cy - r}},
			{{X: cx + k, Y: cy - r}, {X: cx + r, Y: cy - k}, {X: cx + r, Y: cy}},
		}
		for _, q := range quarters {
			buf = q
			if !yield(path.CmdCubeTo, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Rectangle returns a closed path around r.
func Rectangle(r rect.Rect) path.Path {
	return Polygon(
		vec.Vec2{X: r.LLx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.LLy},
		vec.Vec2{X: r.URx, Y: r.URy},
		vec.Vec2{X: r.LLx, Y: r.URy},
	)
}

// Polygon returns a closed path through the given points.
func Polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Polyline returns an open path through the given points.
func Polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
	}
}
