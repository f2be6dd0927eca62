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

package ezel

import (
	"fmt"
	"image"
	"math"
	"time"

	"seehuhn.de/go/ezel/axis"
	"seehuhn.de/go/ezel/raster"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Line draws the polyline through the points (xs[i], ys[i]).
//
// The columns must have the same length and belong to the domains of the
// chart's x and y range.  All values are checked before anything is drawn:
// on error the canvas is unchanged.  Fewer than two points draw nothing.
//
// Points outside the ranges are drawn, clipped to the chart's region (or
// to the plot area, see [WithClipToPlot]).
func (ch *Chart) Line(xs, ys axis.Column, opts ...SeriesOption) error {
	n, err := ch.check(xs, ys)
	if err != nil {
		return err
	}
	st, err := ch.style(opts, false)
	if err != nil {
		return err
	}
	if n < 2 {
		return nil
	}

	start := time.Now()
	p := raster.NewPainter(ch.canvas.img, ch.clip(), st.color)
	p.Aliased = !st.antialias
	if st.width <= 1 && !st.antialias && st.dash == nil {
		ch.lineThin(p, xs, ys, n)
	} else {
		ch.lineStroked(p, xs, ys, n, &st)
	}
	Logger().Debug("line drawn",
		"points", n,
		"width", st.width,
		"antialias", st.antialias,
		"elapsed", time.Since(start))
	return nil
}

// lineThin draws one pixel wide segments.  The cost is linear in the
// number of points plus the number of pixels painted.
func (ch *Chart) lineThin(p *raster.Painter, xs, ys axis.Column, n int) {
	l := raster.NewLineDrawer(p, ch.plot)

	// avoid the interface calls for the common column type
	if fx, ok := xs.(axis.Floats); ok {
		if fy, ok := ys.(axis.Floats); ok {
			prev := ch.device(ch.x.NormalizePos(fx[0]), ch.y.NormalizePos(fy[0]))
			for i := 1; i < n; i++ {
				cur := ch.device(ch.x.NormalizePos(fx[i]), ch.y.NormalizePos(fy[i]))
				l.Segment(prev, cur)
				prev = cur
			}
			return
		}
	}

	point := ch.points(xs, ys)
	prev := point(0)
	for i := 1; i < n; i++ {
		cur := point(i)
		l.Segment(prev, cur)
		prev = cur
	}
}

// chunkPoints is the number of points the anti-aliased renderer strokes
// at once.
const chunkPoints = 1 << 14

// lineStroked draws a line of arbitrary width with the coverage
// rasteriser, in chunks of at most chunkPoints points.
func (ch *Chart) lineStroked(p *raster.Painter, xs, ys axis.Column, n int, st *seriesStyle) {
	if ch.ras == nil {
		ch.ras = raster.NewRasteriser(rect.Rect{})
	}
	r := ch.ras
	c := p.Clip
	clip := rect.Rect{
		LLx: float64(c.Min.X), LLy: float64(c.Min.Y),
		URx: float64(c.Max.X), URy: float64(c.Max.Y),
	}
	pad := st.width + 2
	box := rect.Rect{
		LLx: clip.LLx - pad, LLy: clip.LLy - pad,
		URx: clip.URx + pad, URy: clip.URy + pad,
	}

	var buf polyBuffer
	phase := st.phase
	flush := func() {
		if len(buf.pts) < 2 {
			return
		}
		r.Reset(clip)
		r.Width = st.width
		r.Cap = st.cap
		r.Join = st.join
		r.Dash = st.dash
		r.DashPhase = phase
		r.Stroke(buf.path(), p.Emit)
		phase += buf.length
	}

	point := ch.points(xs, ys)
	prev := point(0)
	for i := 1; i < n; i++ {
		cur := point(i)
		if st.dash != nil {
			// clipping would shift the dash pattern
			buf.add(prev, cur)
		} else if a, b, ok := raster.ClipSegment(prev, cur, box); ok {
			buf.add(a, b)
		} else {
			buf.open = false
		}
		prev = cur

		if len(buf.pts) >= chunkPoints {
			flush()
			buf.restart()
		}
	}
	flush()
}

// polyBuffer collects polylines for the rasteriser.
type polyBuffer struct {
	pts    []vec.Vec2
	starts []int // index of the first point of every polyline
	open   bool  // the last polyline can be extended
	length float64
}

// add appends the segment a-b, extending the last polyline if it ends
// at a.
func (b *polyBuffer) add(a, c vec.Vec2) {
	if !b.open || b.pts[len(b.pts)-1] != a {
		b.starts = append(b.starts, len(b.pts))
		b.pts = append(b.pts, a)
	}
	b.pts = append(b.pts, c)
	b.open = true
	b.length += c.Sub(a).Length()
}

// restart empties the buffer, keeping the last point so that the next
// segment continues the current polyline.
func (b *polyBuffer) restart() {
	if !b.open {
		b.pts = b.pts[:0]
		b.starts = b.starts[:0]
	} else {
		last := b.pts[len(b.pts)-1]
		b.pts = append(b.pts[:0], last)
		b.starts = append(b.starts[:0], 0)
	}
	b.length = 0
}

func (b *polyBuffer) path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for k, start := range b.starts {
			end := len(b.pts)
			if k+1 < len(b.starts) {
				end = b.starts[k+1]
			}
			for i := start; i < end; i++ {
				cmd := path.CmdLineTo
				if i == start {
					cmd = path.CmdMoveTo
				}
				if !yield(cmd, b.pts[i:i+1]) {
					return
				}
			}
		}
	}
}

// Scatter draws a circular marker at each point (xs[i], ys[i]).
// The markers are filled by default, see [Filled] and [MarkerSize].
//
// The same validation rules as for [Chart.Line] apply.
func (ch *Chart) Scatter(xs, ys axis.Column, opts ...SeriesOption) error {
	n, err := ch.check(xs, ys)
	if err != nil {
		return err
	}
	st, err := ch.style(opts, true)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	start := time.Now()
	p := raster.NewPainter(ch.canvas.img, ch.clip(), st.color)
	p.Aliased = !st.antialias
	m := markerMask(&st)
	point := ch.points(xs, ys)
	for i := range n {
		q := point(i)
		x, y := int(math.Floor(q.X)), int(math.Floor(q.Y))
		if q.X == float64(ch.plot.Max.X) {
			x--
		}
		if q.Y == float64(ch.plot.Max.Y) {
			y--
		}
		p.Stamp(m, x, y)
	}
	Logger().Debug("scatter drawn", "points", n, "size", st.marker, "elapsed", time.Since(start))
	return nil
}

// markerMask renders the marker shape once, centred on pixel (0, 0).
func markerMask(st *seriesStyle) *raster.Mask {
	e := int(math.Ceil(st.marker+st.width/2)) + 1
	bounds := image.Rect(-e, -e, e+1, e+1)
	m := raster.NewMask(bounds)
	r := raster.NewRasteriser(rect.Rect{
		LLx: float64(bounds.Min.X), LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X), URy: float64(bounds.Max.Y),
	})
	circle := raster.Circle(vec.Vec2{X: 0.5, Y: 0.5}, st.marker)
	if st.filled {
		r.FillNonZero(circle, m.Emit)
	} else {
		r.Width = st.width
		r.Stroke(circle, m.Emit)
	}
	return m
}

// check validates the data of a series and returns the number of points.
func (ch *Chart) check(xs, ys axis.Column) (int, error) {
	nx, ny := columnLen(xs), columnLen(ys)
	if nx != ny {
		return 0, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, nx, ny)
	}
	if nx == 0 {
		return 0, nil
	}
	if err := axis.Check(xs, ch.x.Domain()); err != nil {
		return 0, fmt.Errorf("x values: %w", err)
	}
	if err := axis.Check(ys, ch.y.Domain()); err != nil {
		return 0, fmt.Errorf("y values: %w", err)
	}
	return nx, nil
}

func columnLen(c axis.Column) int {
	if c == nil {
		return 0
	}
	return c.Len()
}

// style applies the series options on top of the chart defaults.
func (ch *Chart) style(opts []SeriesOption, scatter bool) (seriesStyle, error) {
	st := seriesStyle{
		width:  ch.opt.StrokeWidth,
		cap:    graphics.LineCapRound,
		join:   graphics.LineJoinRound,
		marker: 5,
		filled: true,
	}
	if scatter {
		st.width = 1
	}
	for _, opt := range opts {
		opt(&st)
	}

	if !(st.width > 0) || math.IsInf(st.width, 0) {
		return st, fmt.Errorf("%w: stroke width %g", ErrInvalidValue, st.width)
	}
	if scatter && (!(st.marker > 0) || math.IsInf(st.marker, 0)) {
		return st, fmt.Errorf("%w: marker size %g", ErrInvalidValue, st.marker)
	}
	if st.dash != nil {
		var total float64
		for _, d := range st.dash {
			if !(d >= 0) || math.IsInf(d, 0) {
				return st, fmt.Errorf("%w: dash length %g", ErrInvalidValue, d)
			}
			total += d
		}
		if !(total > 0) || math.IsNaN(st.phase) || math.IsInf(st.phase, 0) {
			return st, fmt.Errorf("%w: dash pattern %v, phase %g", ErrInvalidValue, st.dash, st.phase)
		}
	}
	if !st.aaSet {
		st.antialias = st.width > 1 || scatter
	}
	if st.color == nil {
		st.color = ch.nextColor()
	}
	return st, nil
}
