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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a non-degenerate line segment in user space.
type segment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90 degrees
}

func newSegment(a, b vec.Vec2) (segment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if !(l > zeroLengthThreshold) || math.IsInf(l, 0) {
		return segment{}, false
	}
	t := d.Mul(1 / l)
	return segment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// Stroke renders the outline of p using Width, Cap, Join, MiterLimit,
// Dash and DashPhase.
//
// The stroke is assembled from one polygon per segment, join and cap.
// All polygons have the same orientation, so that filling them together
// with the nonzero rule paints their union exactly once.
func (r *Rasteriser) Stroke(p path.Path, emit EmitFunc) {
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.closed = r.closed[:0]
	r.dots = r.dots[:0]

	var cur, start vec.Vec2
	runStart := -1
	drew := false
	endRun := func(closed bool) {
		switch {
		case runStart < 0:
		case len(r.segs) > runStart:
			r.runs = append(r.runs, runStart)
			r.closed = append(r.closed, closed)
		case drew:
			r.dots = append(r.dots, start)
		}
		runStart = -1
		drew = false
	}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			endRun(false)
			cur, start = pts[0], pts[0]
			runStart = len(r.segs)
		case path.CmdLineTo:
			drew = true
			r.addSegment(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			drew = true
			r.flattenQuad(cur, pts[0], pts[1], r.addSegment)
			cur = pts[1]
		case path.CmdCubeTo:
			drew = true
			r.flattenCube(cur, pts[0], pts[1], pts[2], r.addSegment)
			cur = pts[2]
		case path.CmdClose:
			if runStart >= 0 {
				drew = true
				r.addSegment(cur, start)
			}
			endRun(true)
			cur = start
		}
	}
	endRun(false)

	r.strokeRuns(emit)
}

// StrokePolyline strokes the open polyline through pts.
// It is equivalent to calling Stroke with a path made of one MoveTo
// followed by LineTo commands, but avoids constructing the path.
func (r *Rasteriser) StrokePolyline(pts []vec.Vec2, emit EmitFunc) {
	r.segs = r.segs[:0]
	r.runs = r.runs[:0]
	r.closed = r.closed[:0]
	r.dots = r.dots[:0]
	if len(pts) == 0 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.addSegment(pts[i-1], pts[i])
	}
	if len(r.segs) > 0 {
		r.runs = append(r.runs, 0)
		r.closed = append(r.closed, false)
	} else if len(pts) > 1 {
		r.dots = append(r.dots, pts[0])
	}
	r.strokeRuns(emit)
}

func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	if s, ok := newSegment(a, b); ok {
		r.segs = append(r.segs, s)
	}
}

// run returns the segments of run i.
func run(segs []segment, runs []int, i int) []segment {
	end := len(segs)
	if i+1 < len(runs) {
		end = runs[i+1]
	}
	return segs[runs[i]:end]
}

// strokeRuns builds the stroke polygons for all collected runs and fills
// them.
func (r *Rasteriser) strokeRuns(emit EmitFunc) {
	r.beginEdges()
	d := r.Width / 2
	if !(d > 0) {
		return
	}

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.addCircle(pt, d)
		}
	}

	if len(r.Dash) > 0 && r.dashPattern() {
		for i := range r.dashRuns {
			segs := run(r.dashSegs, r.dashRuns, i)
			r.strokeRun(segs, false, d)
		}
	} else {
		for i := range r.runs {
			r.strokeRun(run(r.segs, r.runs, i), r.closed[i], d)
		}
	}

	r.scan(false, emit)
}

// strokeRun adds the polygons for one connected sequence of segments.
func (r *Rasteriser) strokeRun(segs []segment, closed bool, d float64) {
	if len(segs) == 0 {
		return
	}
	for i, s := range segs {
		r.addPolygon(
			s.A.Add(s.N.Mul(d)),
			s.A.Sub(s.N.Mul(d)),
			s.B.Sub(s.N.Mul(d)),
			s.B.Add(s.N.Mul(d)),
		)
		if i > 0 {
			r.addJoin(segs[i-1], s, d)
		}
	}
	if closed {
		r.addJoin(segs[len(segs)-1], segs[0], d)
		return
	}
	first, last := segs[0], segs[len(segs)-1]
	r.addCap(first.A, first.T.Mul(-1), d)
	r.addCap(last.B, last.T, d)
}

// addJoin adds the join between s1 and s2 at s1.B.
func (r *Rasteriser) addJoin(s1, s2 segment, d float64) {
	P := s1.B
	cross := s1.T.X*s2.T.Y - s1.T.Y*s2.T.X
	dot := s1.T.Dot(s2.T)
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(P, d)
		return
	}

	// the outer side of a left turn is on the -N side
	side := 1.0
	if cross > 0 {
		side = -1
	}
	o1 := P.Add(s1.N.Mul(side * d))
	o2 := P.Add(s2.N.Mul(side * d))

	if r.Join == graphics.LineJoinMiter {
		bisector := s1.N.Add(s2.N)
		bl := bisector.Length()
		// the miter length relative to the line width is 2/|N1+N2|
		if bl > 0 && 2/bl <= r.MiterLimit {
			M := P.Add(bisector.Mul(side * 2 * d / (bl * bl)))
			r.addPolygon(P, o1, M, o2)
			return
		}
	}
	r.addPolygon(P, o1, o2)
}

// addCap adds a line cap at P, where T points away from the line.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(P, d)
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		E := P.Add(T.Mul(d))
		r.addPolygon(
			P.Add(N.Mul(d)),
			P.Sub(N.Mul(d)),
			E.Sub(N.Mul(d)),
			E.Add(N.Mul(d)),
		)
	}
}

// addCircle adds a polygon approximating the circle with the given
// center and radius.
func (r *Rasteriser) addCircle(center vec.Vec2, radius float64) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}),
	)

	// A chord for angle θ deviates by radius*(1-cos(θ/2)) from the arc.
	n := 4
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
		n = min(n, 1<<14)
	}

	// enlarge the polygon so that its area equals the area of the circle
	alpha := 2 * math.Pi / float64(n)
	radius *= math.Sqrt(alpha / math.Sin(alpha))

	r.poly = r.poly[:0]
	for i := range n {
		phi := alpha * float64(i)
		r.poly = append(r.poly, vec.Vec2{
			X: center.X + radius*math.Cos(phi),
			Y: center.Y + radius*math.Sin(phi),
		})
	}
	r.closePolygon(r.poly)
}

// addPolygon adds the closed polygon through pts to the edge list,
// oriented counter-clockwise in user space.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	r.poly = append(r.poly[:0], pts...)
	r.closePolygon(r.poly)
}

func (r *Rasteriser) closePolygon(pts []vec.Vec2) {
	var area float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	if area == 0 {
		return
	}
	if area > 0 {
		for i, p := range pts {
			r.addEdge(p, pts[(i+1)%len(pts)])
		}
	} else {
		for i := len(pts) - 1; i >= 0; i-- {
			r.addEdge(pts[i], pts[(i+len(pts)-1)%len(pts)])
		}
	}
}

// dashPattern splits the collected runs according to Dash and DashPhase.
// It returns false if the pattern does not describe any dashes.
func (r *Rasteriser) dashPattern() bool {
	r.dashSegs = r.dashSegs[:0]
	r.dashRuns = r.dashRuns[:0]

	total := 0.0
	for _, x := range r.Dash {
		if x < 0 {
			return false
		}
		total += x
	}
	n := len(r.Dash)
	if n%2 == 1 {
		total *= 2
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return false
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	for i := range r.runs {
		segs := run(r.segs, r.runs, i)
		length := 0.0
		for _, s := range segs {
			length += s.B.Sub(s.A).Length()
		}
		if length/total > maxDashPeriods {
			r.dashRuns = append(r.dashRuns, len(r.dashSegs))
			r.dashSegs = append(r.dashSegs, segs...)
			continue
		}

		// find the dash element at the start of the run
		idx := 0
		left := r.Dash[0] - phase
		for left <= 0 {
			idx++
			left += r.Dash[idx%n]
		}
		on := idx%2 == 0
		open := false

		for _, s := range segs {
			l := s.B.Sub(s.A).Length()
			pos := 0.0
			for pos < l {
				end := min(l, pos+left)
				if on {
					a := s.A.Add(s.T.Mul(pos))
					b := s.A.Add(s.T.Mul(end))
					if piece, ok := newSegment(a, b); ok {
						if !open {
							r.dashRuns = append(r.dashRuns, len(r.dashSegs))
							open = true
						}
						r.dashSegs = append(r.dashSegs, piece)
					}
				}
				left -= end - pos
				if end == pos {
					// the dash is too short to advance at this position
					left = 0
				}
				pos = end
				if left <= 0 {
					idx++
					left = r.Dash[idx%n]
					on = idx%2 == 0
					open = false
				}
			}
		}
	}
	return true
}

// maxDashPeriods bounds the work for dash patterns which are very short
// compared to the path.  Longer runs are drawn solid.
const maxDashPeriods = 1e6
