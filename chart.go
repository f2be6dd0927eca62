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
	"image/color"
	"math"

	"seehuhn.de/go/ezel/axis"
	"seehuhn.de/go/ezel/raster"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Chart draws data series into a region of a canvas.
//
// The x and y axis each have a [axis.Range], which may belong to different
// domains.  Data values are mapped linearly onto the plot area, the
// region minus margins, label areas and caption.
//
// A Chart must not be used by more than one goroutine at a time.
// Different charts on the same canvas are independent.
type Chart struct {
	canvas *Canvas
	region image.Rectangle
	plot   image.Rectangle
	x, y   axis.Range
	opt    Options

	// toDevice maps normalized coordinates, with (0, 0) at the lower left
	// and (1, 1) at the upper right corner of the plot area, to pixels.
	toDevice matrix.Matrix

	series int // number of automatically coloured series so far
	ras    *raster.Rasteriser
}

// NewChart binds a chart to t, a region or a whole canvas.  Afterwards, t
// can no longer be split or used for a different chart.
//
// The background, mesh, axes and caption are drawn immediately.
func NewChart(t Target, x, y axis.Range, opts ...ChartOption) (*Chart, error) {
	if t == nil {
		return nil, &RegionError{Op: "bind", Reason: "no target"}
	}
	if x.IsZero() || y.IsZero() {
		return nil, fmt.Errorf("%w: zero Range", ErrInvalidRange)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Palette == nil {
		o.Palette = DefaultPalette
	}

	r := t.region()
	if r.c == nil {
		return nil, &RegionError{Op: "bind", Reason: "zero region"}
	}
	bounds := r.Bounds()
	if err := o.check(bounds); err != nil {
		return nil, err
	}
	plot := o.plotArea(bounds)
	if plot.Empty() {
		return nil, &RegionError{Op: "bind", Bounds: bounds, Reason: "no room for the plot area"}
	}
	deco, err := newDecoration(&o)
	if err != nil {
		return nil, err
	}
	defer deco.close()
	if err := r.c.bind(r.id); err != nil {
		return nil, err
	}

	ch := &Chart{
		canvas: r.c,
		region: bounds,
		plot:   plot,
		x:      x,
		y:      y,
		opt:    o,
		toDevice: matrix.Matrix{
			float64(plot.Dx()), 0,
			0, -float64(plot.Dy()),
			float64(plot.Min.X), float64(plot.Max.Y),
		},
	}
	ch.decorate(deco)
	Logger().Debug("chart created",
		"region", bounds, "plot", plot, "x", x.String(), "y", y.String())
	return ch, nil
}

func (o *Options) check(bounds image.Rectangle) error {
	m := o.Margin
	if m.Top < 0 || m.Right < 0 || m.Bottom < 0 || m.Left < 0 ||
		o.LabelLeft < 0 || o.LabelBottom < 0 {
		return &RegionError{Op: "bind", Bounds: bounds, Reason: "negative margin"}
	}
	if !(o.StrokeWidth > 0) || math.IsInf(o.StrokeWidth, 0) {
		return fmt.Errorf("%w: stroke width %g", ErrInvalidValue, o.StrokeWidth)
	}
	if o.Caption != "" && (!(o.CaptionSize > 0) || math.IsInf(o.CaptionSize, 0)) {
		return fmt.Errorf("%w: caption size %g", ErrInvalidValue, o.CaptionSize)
	}
	return nil
}

// plotArea returns the part of r which is left for the data.
func (o *Options) plotArea(r image.Rectangle) image.Rectangle {
	p := image.Rectangle{
		Min: image.Pt(r.Min.X+o.Margin.Left, r.Min.Y+o.Margin.Top),
		Max: image.Pt(r.Max.X-o.Margin.Right, r.Max.Y-o.Margin.Bottom),
	}
	if o.Caption != "" {
		p.Min.Y += captionHeight(o.CaptionSize)
	}
	if o.AxisY {
		p.Min.X += o.LabelLeft
	}
	if o.AxisX {
		p.Max.Y -= o.LabelBottom
	}
	return p
}

func captionHeight(size float64) int {
	return int(math.Ceil(1.2 * size))
}

// Bounds returns the region of the chart.
func (ch *Chart) Bounds() image.Rectangle {
	return ch.region
}

// PlotArea returns the rectangle the data ranges are mapped onto.
func (ch *Chart) PlotArea() image.Rectangle {
	return ch.plot
}

// X returns the range of the horizontal axis.
func (ch *Chart) X() axis.Range {
	return ch.x
}

// Y returns the range of the vertical axis.
func (ch *Chart) Y() axis.Range {
	return ch.y
}

// Options returns the options of the chart.
func (ch *Chart) Options() Options {
	return ch.opt
}

// Map returns the pixel coordinates of the data point (x, y).
// Points outside the ranges map to positions outside the plot area.
func (ch *Chart) Map(x, y axis.Value) (vec.Vec2, error) {
	nx, err := ch.x.Normalize(x)
	if err != nil {
		return vec.Vec2{}, err
	}
	ny, err := ch.y.Normalize(y)
	if err != nil {
		return vec.Vec2{}, err
	}
	return ch.device(nx, ny), nil
}

// deviceLimit bounds pixel coordinates.  It lies far outside every
// canvas and keeps the arithmetic of clipped segments finite.
const deviceLimit = 1 << 24

func (ch *Chart) device(nx, ny float64) vec.Vec2 {
	m := &ch.toDevice
	x := m[0]*nx + m[2]*ny + m[4]
	y := m[1]*nx + m[3]*ny + m[5]
	return vec.Vec2{
		X: min(max(x, -deviceLimit), deviceLimit),
		Y: min(max(y, -deviceLimit), deviceLimit),
	}
}

// points returns a function which maps the i-th data point of a series
// to device coordinates.
func (ch *Chart) points(xs, ys axis.Column) func(i int) vec.Vec2 {
	nx, ny := ch.x.Normalizer(xs), ch.y.Normalizer(ys)
	return func(i int) vec.Vec2 {
		return ch.device(nx(i), ny(i))
	}
}

// clip returns the rectangle series may paint in.
func (ch *Chart) clip() image.Rectangle {
	if ch.opt.ClipToPlot {
		return ch.plot
	}
	return ch.region
}

// goldenStep spaces successive palette positions evenly.
const goldenStep = 0.3819660112501051

// nextColor returns the next colour from the palette, skipping colours
// which are hard to see on the background.
func (ch *Chart) nextColor() color.Color {
	bg := ch.canvas.background
	var c color.Color
	for range 16 {
		t := math.Mod(float64(ch.series)*goldenStep, 1)
		ch.series++
		c = ch.opt.Palette.Map(t)
		if contrast(c, bg) >= minContrast {
			return c
		}
	}
	if contrast(color.Black, bg) >= minContrast {
		return color.Black
	}
	return color.White
}

// minContrast is the minimal RGB distance between a series colour and
// the background.
const minContrast = 64

func contrast(a, b color.Color) float64 {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	dr := (float64(ar) - float64(br)) / 257
	dg := (float64(ag) - float64(bg)) / 257
	db := (float64(ab) - float64(bb)) / 257
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
