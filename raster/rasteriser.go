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

// Package raster converts vector geometry into pixel coverage.
//
// The [Rasteriser] computes anti-aliased coverage for filled and stroked
// paths and hands it to the caller one scanline at a time.  A [Painter]
// composites such scanlines onto an RGBA image.  For the common case of
// thin, aliased polylines, [LineDrawer] draws segments directly with
// Bresenham's algorithm.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  Coverage values are in
// [0, 1] and coverage[i] belongs to pixel (xMin+i, y).  The slice is only
// valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the original segment pointed down, -1 otherwise
}

// Rasteriser converts paths to pixel coverage values.
// A Rasteriser can be reused for many paths; its internal buffers grow
// as needed and are kept between calls.
type Rasteriser struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user space units.
	Width float64

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash is the dash pattern in user space units.  Nil means solid.
	Dash      []float64
	DashPhase float64

	cover  []float32
	area   []float32
	edges  []edge
	active []int

	// touched columns of the current scanline, relative to xMin
	touchLo, touchHi int
	pastRight        bool // an edge piece fell right of the clip region

	// scanline geometry
	xMin, width int

	bbox      rect.Rect
	bboxEmpty bool

	// stroke state
	segs     []segment
	runs     []int  // start of each subpath in segs
	closed   []bool // whether each run is closed
	dots     []vec.Vec2
	dashSegs []segment
	dashRuns []int
	poly     []vec.Vec2
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0

	r.edges = r.edges[:0]
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.closed = r.closed[:0]
	r.dots = r.dots[:0]
	r.dashSegs = r.dashSegs[:0]
	r.dashRuns = r.dashRuns[:0]
	r.poly = r.poly[:0]
}

// FillNonZero fills p using the nonzero winding rule.
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p path.Path, emit EmitFunc) {
	r.beginEdges()
	r.pathEdges(p)
	r.scan(false, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p path.Path, emit EmitFunc) {
	r.beginEdges()
	r.pathEdges(p)
	r.scan(true, emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// pathEdges flattens p into the edge list.
func (r *Rasteriser) pathEdges(p path.Path) {
	var cur, start vec.Vec2
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				r.addEdge(cur, start)
			}
			cur, start = pts[0], pts[0]
			open = true
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuad(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCube(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if open && cur != start {
		r.addEdge(cur, start)
	}
}

// toDevice applies the CTM.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := &r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of the user space vector v in device
// space, ignoring the translation part of the CTM.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := &r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// addEdge adds the user space segment a-b to the edge list.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p, q := r.toDevice(a), r.toDevice(b)
	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold || !finite(p) || !finite(q) {
		return
	}
	e := edge{dir: 1}
	if dy < 0 {
		p, q = q, p
		e.dir = -1
	}
	e.x0, e.y0, e.x1, e.y1 = p.X, p.Y, q.X, q.Y
	e.dxdy = (q.X - p.X) / (q.Y - p.Y)
	r.edges = append(r.edges, e)

	box := rect.Rect{LLx: min(p.X, q.X), LLy: p.Y, URx: max(p.X, q.X), URy: q.Y}
	if r.bboxEmpty {
		r.bbox = box
		r.bboxEmpty = false
	} else {
		r.bbox.LLx = min(r.bbox.LLx, box.LLx)
		r.bbox.LLy = min(r.bbox.LLy, box.LLy)
		r.bbox.URx = max(r.bbox.URx, box.URx)
		r.bbox.URy = max(r.bbox.URy, box.URy)
	}
}

func finite(p vec.Vec2) bool {
	return p.X-p.X == 0 && p.Y-p.Y == 0
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCube approximates a cubic Bézier curve by line segments.
// The number of segments follows Wang's formula.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}

// scan converts the edge list to coverage, using an active edge list.
//
// For every pixel two values are accumulated: cover, the signed height of
// all edge pieces inside the pixel, and area, the part of cover which lies
// to the right of the edge.  The coverage of pixel i is then the sum of
// cover over all pixels left of i, plus area[i].
func (r *Rasteriser) scan(evenOdd bool, emit EmitFunc) {
	if len(r.edges) == 0 || r.bboxEmpty {
		return
	}
	// intersect in floating point, the bounding box may be huge
	llx, urx := max(r.bbox.LLx, r.Clip.LLx), min(r.bbox.URx+1, r.Clip.URx)
	lly, ury := max(r.bbox.LLy, r.Clip.LLy), min(r.bbox.URy+1, r.Clip.URy)
	if !(llx < urx && lly < ury) {
		return
	}
	xMin, xMax := int(math.Floor(llx)), int(math.Floor(urx))
	yMin, yMax := int(math.Floor(lly)), int(math.Floor(ury))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.xMin, r.width = xMin, xMax-xMin
	r.cover = slices.Grow(r.cover[:0], r.width)[:r.width]
	r.area = slices.Grow(r.area[:0], r.width)[:r.width]
	clear(r.cover)
	clear(r.area)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0
	for next < len(r.edges) && r.edges[next].y1 <= float64(yMin) {
		next++
	}

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bot {
			if r.edges[next].y1 > top {
				r.active = append(r.active, next)
			}
			next++
		}
		if len(r.active) == 0 {
			if next == len(r.edges) {
				return
			}
			continue
		}

		r.touchLo, r.touchHi = r.width, -1
		r.pastRight = false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			r.accumulate(e, top, bot)
			i++
		}
		if r.touchHi < 0 {
			continue
		}

		lo, hi := r.touchLo, r.touchHi+1
		if r.pastRight {
			hi = r.width
		}
		cov := r.cover[lo:hi]
		integrate(cov, r.area[lo:hi], evenOdd)
		if trimmed, off := trimZeros(cov); trimmed != nil {
			emit(y, xMin+lo+off, trimmed)
		}
		clear(cov)
		clear(r.area[lo:hi])
	}
}

// accumulate adds the part of e between the scanlines top and bot.
// Only the columns of the clip region are visited.
func (r *Rasteriser) accumulate(e *edge, top, bot float64) {
	ya := max(top, e.y0)
	yb := min(bot, e.y1)
	if yb <= ya {
		return
	}
	lo := e.x0 + e.dxdy*(ya-e.y0)
	hi := e.x0 + e.dxdy*(yb-e.y0)
	if lo > hi {
		lo, hi = hi, lo
	}
	dy := yb - ya
	c := e.dir * float32(dy)
	xl := float64(r.xMin)
	xr := float64(r.xMin + r.width)

	switch {
	case hi <= xl:
		r.addCell(r.xMin-1, xl, c)
		return
	case lo >= xr:
		r.pastRight = true
		return
	case lo == hi:
		r.addCell(int(math.Floor(lo)), lo, c)
		return
	}

	slope := dy / (hi - lo)
	if lo < xl {
		r.addCell(r.xMin-1, xl, e.dir*float32((xl-lo)*slope))
		lo = xl
	}
	if hi > xr {
		r.pastRight = true
		hi = xr
	}

	// the order of the pieces does not matter, walk left to right
	ca := int(math.Floor(lo))
	cb := min(int(math.Floor(hi)), r.xMin+r.width-1)
	x := lo
	for col := ca; ; col++ {
		nx := hi
		if col < cb {
			nx = float64(col + 1)
		}
		r.addCell(col, (x+nx)/2, e.dir*float32((nx-x)*slope))
		if col >= cb {
			break
		}
		x = nx
	}
}

func (r *Rasteriser) addCell(col int, xMid float64, c float32) {
	i := col - r.xMin
	if i >= r.width {
		r.pastRight = true
		return
	}
	if i < 0 {
		// left of the clip region: the whole piece counts as cover
		r.cover[0] += c
		r.area[0] += c
		i = 0
	} else {
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(col)))
	}
	r.touchLo = min(r.touchLo, i)
	r.touchHi = max(r.touchHi, i)
}

// integrate turns accumulated cover and area into coverage values,
// in place.
func integrate(cover, area []float32, evenOdd bool) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if evenOdd {
			raw -= 2 * float32(int(raw/2))
			if raw > 1 {
				raw = 2 - raw
			}
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entry, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
