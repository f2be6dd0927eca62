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
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// LineDrawer draws one pixel wide, aliased line segments.
// The cost of a segment is proportional to its length in pixels.
type LineDrawer struct {
	P *Painter

	// Snap is the plot area.  A coordinate which lies exactly on the
	// right or bottom edge of Snap is moved to the last pixel inside.
	Snap image.Rectangle

	box rect.Rect

	// end pixel of the previous segment, if it was drawn
	last   image.Point
	joined bool
}

// NewLineDrawer returns a LineDrawer which paints through p.
func NewLineDrawer(p *Painter, snap image.Rectangle) *LineDrawer {
	c := p.Clip
	return &LineDrawer{
		P:    p,
		Snap: snap,
		// one pixel of slack, so that segments ending on the clip
		// boundary are not shortened
		box: rect.Rect{
			LLx: float64(c.Min.X - 1),
			LLy: float64(c.Min.Y - 1),
			URx: float64(c.Max.X + 1),
			URy: float64(c.Max.Y + 1),
		},
	}
}

// Segment draws the line from a to b, given in device coordinates.
// If the segment starts in the pixel where the previous segment ended,
// that pixel is not painted again, so that translucent polylines are
// blended once per pixel at the vertices.
func (l *LineDrawer) Segment(a, b vec.Vec2) {
	a, b, ok := ClipSegment(a, b, l.box)
	if !ok {
		l.joined = false
		return
	}
	x0, y0 := l.pixel(a)
	x1, y1 := l.pixel(b)
	skip := l.joined && l.last == image.Pt(x0, y0)
	l.bresenham(x0, y0, x1, y1, skip)
	l.last = image.Pt(x1, y1)
	l.joined = true
}

// Break starts a new polyline: the next segment paints its first pixel
// even if it coincides with the end of the previous one.
func (l *LineDrawer) Break() {
	l.joined = false
}

// Point paints the pixel containing p.
func (l *LineDrawer) Point(p vec.Vec2) {
	if !(p.X >= l.box.LLx && p.X <= l.box.URx && p.Y >= l.box.LLy && p.Y <= l.box.URy) {
		return
	}
	x, y := l.pixel(p)
	l.P.Set(x, y)
}

func (l *LineDrawer) pixel(p vec.Vec2) (int, int) {
	x := int(math.Floor(p.X))
	y := int(math.Floor(p.Y))
	if p.X == float64(l.Snap.Max.X) {
		x--
	}
	if p.Y == float64(l.Snap.Max.Y) {
		y--
	}
	return x, y
}

func (l *LineDrawer) bresenham(x0, y0, x1, y1 int, skipFirst bool) {
	dx := x1 - x0
	sx := 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy := y1 - y0
	sy := 1
	if dy < 0 {
		dy, sy = -dy, -1
	}
	dy = -dy

	e := dx + dy
	for {
		if !skipFirst {
			l.P.Set(x0, y0)
		}
		skipFirst = false
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// ClipSegment clips the segment a-b to box, using the Liang-Barsky
// algorithm.  If no part of the segment is inside box, ok is false.
func ClipSegment(a, b vec.Vec2, box rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	for _, c := range [4][2]float64{
		{-d.X, a.X - box.LLx},
		{d.X, box.URx - a.X},
		{-d.Y, a.Y - box.LLy},
		{d.Y, box.URy - a.Y},
	} {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = min(t1, t)
		}
	}
	if !(t0 <= t1) {
		return a, b, false
	}
	ca, cb := a, b
	if t0 > 0 {
		ca = a.Add(d.Mul(t0))
	}
	if t1 < 1 {
		cb = a.Add(d.Mul(t1))
	}
	return ca, cb, true
}
