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
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
	"time"

	"seehuhn.de/go/ezel/axis"
)

func axisRange(t *testing.T, lo, hi float64) axis.Range {
	t.Helper()
	r, err := axis.FloatRange(lo, hi)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func floats(x ...float64) axis.Floats {
	return axis.Floats(x)
}

func snapshot(c *Canvas) []byte {
	return bytes.Clone(c.Image().Pix)
}

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{255, 255, 255, 255}
)

// bareChart returns a chart without decorations, covering the whole of a
// w×h canvas with a margin of m pixels.
func bareChart(t *testing.T, w, h, m int, x, y axis.Range, opts ...ChartOption) (*Canvas, *Chart) {
	t.Helper()
	c, err := New(WithSize(w, h))
	if err != nil {
		t.Fatal(err)
	}
	opts = append([]ChartOption{WithMargin(m), WithMesh(false, false), WithAxes(false, false)}, opts...)
	ch, err := NewChart(c, x, y, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c, ch
}

// TestThreeRegions splits a canvas into three regions and draws the same
// series into each.  The line must pass through the pixels corresponding
// to the data values, and stay inside the plot areas.
func TestThreeRegions(t *testing.T) {
	c, err := New(WithSize(400, 300))
	if err != nil {
		t.Fatal(err)
	}
	top, bottom, err := c.SplitVertically()
	if err != nil {
		t.Fatal(err)
	}
	left, right, err := bottom.SplitHorizontally()
	if err != nil {
		t.Fatal(err)
	}

	area := 0
	for _, r := range []Region{top, left, right} {
		b := r.Bounds()
		area += b.Dx() * b.Dy()
	}
	if area != 400*300 {
		t.Errorf("regions cover %d pixels", area)
	}

	xs := floats(0, 1, 2)
	ys := floats(100, 200, 150)
	var plots []image.Rectangle
	for _, r := range []Region{top, left, right} {
		ch, err := NewChart(r, axisRange(t, 0, 2), axisRange(t, 0, 200),
			WithMesh(false, false), WithAxes(false, false))
		if err != nil {
			t.Fatal(err)
		}
		if err := ch.Line(xs, ys, Color(color.Black)); err != nil {
			t.Fatal(err)
		}

		p := ch.PlotArea()
		plots = append(plots, p)
		wantPlot := r.Bounds().Inset(20)
		if p != wantPlot {
			t.Errorf("plot area %v, want %v", p, wantPlot)
		}

		W, H := float64(p.Dx()), float64(p.Dy())
		want := []image.Point{
			{p.Min.X, int(math.Floor(float64(p.Max.Y) - 0.5*H))},
			{int(math.Floor(float64(p.Min.X) + 0.5*W)), p.Min.Y},
			{p.Max.X - 1, int(math.Floor(float64(p.Max.Y) - 0.75*H))},
		}
		for i, q := range want {
			if got := c.Image().RGBAAt(q.X, q.Y); got != black {
				t.Errorf("region %v, point %d: pixel %v is %v", r.Bounds(), i, q, got)
			}
		}
	}

	img := c.Image()
	for y := range 300 {
		for x := range 400 {
			if img.RGBAAt(x, y) == white {
				continue
			}
			q := image.Pt(x, y)
			if !q.In(plots[0]) && !q.In(plots[1]) && !q.In(plots[2]) {
				t.Fatalf("pixel %v painted outside the plot areas", q)
			}
		}
	}
}

func TestMapBoundaries(t *testing.T) {
	_, ch := bareChart(t, 100, 80, 10, axisRange(t, -1, 1), axisRange(t, 0, 5))
	p := ch.PlotArea()
	cases := []struct {
		x, y float64
		want [2]float64
	}{
		{-1, 0, [2]float64{float64(p.Min.X), float64(p.Max.Y)}},
		{1, 5, [2]float64{float64(p.Max.X), float64(p.Min.Y)}},
		{0, 2.5, [2]float64{50, 40}},
		{3, -5, [2]float64{10 + 2*80, 70 + 60}},
	}
	for _, c := range cases {
		got, err := ch.Map(axis.FloatValue(c.x), axis.FloatValue(c.y))
		if err != nil {
			t.Fatal(err)
		}
		if got.X != c.want[0] || got.Y != c.want[1] {
			t.Errorf("Map(%g, %g) = %v, want %v", c.x, c.y, got, c.want)
		}
	}

	_, err := ch.Map(axis.CivilDate(2020, 1, 1), axis.FloatValue(0))
	if !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("date on float axis: %v", err)
	}
}

func TestLineFewPoints(t *testing.T) {
	for _, n := range []int{0, 1} {
		c, ch := bareChart(t, 50, 50, 5, axisRange(t, 0, 1), axisRange(t, 0, 1))
		before := snapshot(c)
		xs := make(axis.Floats, n)
		ys := make(axis.Floats, n)
		if err := ch.Line(xs, ys, StrokeWidth(5)); err != nil {
			t.Errorf("%d points: %v", n, err)
		}
		if !bytes.Equal(before, c.Image().Pix) {
			t.Errorf("%d points changed the canvas", n)
		}
	}

	c, ch := bareChart(t, 50, 50, 5, axisRange(t, 0, 1), axisRange(t, 0, 1))
	before := snapshot(c)
	if err := ch.Line(nil, nil); err != nil {
		t.Errorf("nil columns: %v", err)
	}
	if !bytes.Equal(before, c.Image().Pix) {
		t.Error("nil columns changed the canvas")
	}
}

func TestLineErrorsLeaveCanvas(t *testing.T) {
	dates := axis.Dates{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	cases := []struct {
		name   string
		xs, ys axis.Column
		opts   []SeriesOption
		want   error
	}{
		{"length", floats(0, 1, 2), floats(0, 1), nil, ErrLengthMismatch},
		{"nil", nil, floats(0, 1), nil, ErrLengthMismatch},
		{"nan", floats(0, 0.5, 1), floats(0, math.NaN(), 1), nil, ErrInvalidValue},
		{"inf", floats(0, math.Inf(1), 1), floats(0, 0.5, 1), nil, ErrInvalidValue},
		{"float32", floats(0, 1), axis.Float32s{0, float32(math.Inf(-1))}, nil, ErrInvalidValue},
		{"domain", dates, floats(1), nil, ErrDomainMismatch},
		{"width", floats(0, 1), floats(0, 1), []SeriesOption{StrokeWidth(-1)}, ErrInvalidValue},
		{"dash", floats(0, 1), floats(0, 1), []SeriesOption{Dash([]float64{0, 0}, 0)}, ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, ch := bareChart(t, 50, 50, 5, axisRange(t, 0, 1), axisRange(t, 0, 1))
			before := snapshot(c)
			err := ch.Line(tc.xs, tc.ys, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if !bytes.Equal(before, c.Image().Pix) {
				t.Error("canvas changed")
			}
		})
	}
}

func TestInvalidValueIndex(t *testing.T) {
	_, ch := bareChart(t, 50, 50, 5, axisRange(t, 0, 10), axisRange(t, 0, 10))
	xs := floats(0, 1, 2, 3, 4, 5, 6)
	ys := floats(0, 1, 2, 3, 4, math.NaN(), 6)
	err := ch.Line(xs, ys)
	var ve *axis.ValueError
	if !errors.As(err, &ve) || ve.Index != 5 {
		t.Errorf("got %v, want a ValueError at index 5", err)
	}
}

func TestNewChartErrors(t *testing.T) {
	c, err := New(WithSize(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	r := axisRange(t, 0, 1)

	if _, err := NewChart(c, axis.Range{}, r); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("zero range: %v", err)
	}
	if _, err := NewChart(c, r, r, WithMargin(60)); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("huge margin: %v", err)
	}
	if _, err := NewChart(c, r, r, WithMargins(1, -1, 1, 1)); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("negative margin: %v", err)
	}
	if _, err := NewChart(c, r, r, WithStrokeWidth(math.NaN())); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("NaN stroke width: %v", err)
	}
	if _, err := NewChart(nil, r, r); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("nil target: %v", err)
	}

	// failed attempts do not use up the region
	if _, err := NewChart(c, r, r); err != nil {
		t.Errorf("valid chart: %v", err)
	}
}

func TestRangeDomainMismatch(t *testing.T) {
	_, err := axis.NewRange(axis.CivilDate(2020, 1, 1), axis.DurationValue(time.Hour))
	if !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("got %v, want ErrDomainMismatch", err)
	}
}

func TestCaptionReservesSpace(t *testing.T) {
	c, err := New(WithSize(200, 200))
	if err != nil {
		t.Fatal(err)
	}
	a, b, err := c.SplitHorizontally()
	if err != nil {
		t.Fatal(err)
	}
	r := axisRange(t, 0, 1)
	plain, err := NewChart(a, r, r, WithMargin(10))
	if err != nil {
		t.Fatal(err)
	}
	titled, err := NewChart(b, r, r, WithMargin(10), WithCaption("Title"), WithCaptionSize(20))
	if err != nil {
		t.Fatal(err)
	}
	if d := titled.PlotArea().Min.Y - plain.PlotArea().Min.Y; d != 24 {
		t.Errorf("caption takes %d pixels, want 24", d)
	}

	// some caption pixels are dark
	dark := 0
	img := c.Image()
	for y := 10; y < 34; y++ {
		for x := b.Bounds().Min.X; x < b.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("caption not drawn")
	}
}

func TestDecorationsStayInRegion(t *testing.T) {
	c, err := New(WithSize(300, 200))
	if err != nil {
		t.Fatal(err)
	}
	a, b, err := c.SplitHorizontallyAt(0.5)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewChart(a, axisRange(t, -1e6, 1e6), axisRange(t, 0, 1),
		WithCaption("a caption which is much too long for this region"),
		WithMargin(0))
	if err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	rb := b.Bounds()
	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			if got := img.RGBAAt(x, y); got != white {
				t.Fatalf("pixel (%d,%d) of the neighbour changed to %v", x, y, got)
			}
		}
	}
}

func TestClipping(t *testing.T) {
	xs := floats(0, 0.5, 2, 1e6, 0.5)
	ys := floats(0.5, 0.5, -3, 1e9, 1)
	for _, clipToPlot := range []bool{false, true} {
		c, err := New(WithSize(200, 100))
		if err != nil {
			t.Fatal(err)
		}
		left, _, err := c.SplitHorizontally()
		if err != nil {
			t.Fatal(err)
		}
		ch, err := NewChart(left, axisRange(t, 0, 1), axisRange(t, 0, 1),
			WithMesh(false, false), WithAxes(false, false), WithClipToPlot(clipToPlot))
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range []float64{1, 4} {
			if err := ch.Line(xs, ys, StrokeWidth(w), Color(color.Black)); err != nil {
				t.Fatal(err)
			}
		}

		allowed := left.Bounds()
		if clipToPlot {
			allowed = ch.PlotArea()
		}
		img := c.Image()
		painted := 0
		for y := range 100 {
			for x := range 200 {
				if img.RGBAAt(x, y) == white {
					continue
				}
				painted++
				if !image.Pt(x, y).In(allowed) {
					t.Fatalf("clip=%t: pixel (%d,%d) outside %v", clipToPlot, x, y, allowed)
				}
			}
		}
		if painted == 0 {
			t.Errorf("clip=%t: nothing painted", clipToPlot)
		}
	}
}

func TestAutomaticColors(t *testing.T) {
	_, ch := bareChart(t, 50, 50, 5, axisRange(t, 0, 1), axisRange(t, 0, 1))
	first := ch.nextColor()
	second := ch.nextColor()
	if first == second {
		t.Error("successive series have the same colour")
	}

	// a palette which only has the background colour
	_, ch = bareChart(t, 50, 50, 5, axisRange(t, 0, 1), axisRange(t, 0, 1),
		WithPalette(constPalette{color.White}))
	if got := ch.nextColor(); got != color.Black {
		t.Errorf("got %v, want black", got)
	}
}

type constPalette struct {
	c color.Color
}

func (p constPalette) Map(float64) color.Color {
	return p.c
}

func TestAntialiasDefault(t *testing.T) {
	_, ch := bareChart(t, 50, 50, 5, axisRange(t, 0, 1), axisRange(t, 0, 1))
	cases := []struct {
		opts []SeriesOption
		want bool
	}{
		{nil, false},
		{[]SeriesOption{StrokeWidth(2)}, true},
		{[]SeriesOption{StrokeWidth(2), Antialias(false)}, false},
		{[]SeriesOption{Antialias(true)}, true},
	}
	for i, c := range cases {
		st, err := ch.style(c.opts, false)
		if err != nil {
			t.Fatal(err)
		}
		if st.antialias != c.want {
			t.Errorf("%d: antialias %t, want %t", i, st.antialias, c.want)
		}
	}
}

func TestScatter(t *testing.T) {
	c, ch := bareChart(t, 60, 60, 10, axisRange(t, 0, 4), axisRange(t, 0, 4))
	red := color.RGBA{R: 255, A: 255}
	if err := ch.Scatter(floats(2), floats(2), Color(red), MarkerSize(4)); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	if got := img.RGBAAt(30, 29); got != red {
		t.Errorf("marker centre: %v", got)
	}
	if got := img.RGBAAt(30, 40); got != white {
		t.Errorf("outside marker: %v", got)
	}

	// outlined markers leave the centre empty
	c, ch = bareChart(t, 60, 60, 10, axisRange(t, 0, 4), axisRange(t, 0, 4))
	err := ch.Scatter(floats(2), floats(2), Color(red), MarkerSize(8), Filled(false))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(30, 29); got != white {
		t.Errorf("centre of outline: %v", got)
	}
	if got := c.Image().RGBAAt(38, 29); got.G == 255 {
		t.Errorf("outline not drawn: %v", got)
	}
}

func TestDashedLine(t *testing.T) {
	c, ch := bareChart(t, 100, 20, 0, axisRange(t, 0, 100), axisRange(t, 0, 20))
	err := ch.Line(floats(0, 100), floats(10, 10),
		StrokeWidth(2), Dash([]float64{10, 10}, 0), Color(color.Black))
	if err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	for _, x := range []int{2, 5, 25, 45} {
		if got := img.RGBAAt(x, 10); got != black {
			t.Errorf("dash at %d: %v", x, got)
		}
	}
	for _, x := range []int{15, 35, 55} {
		if got := img.RGBAAt(x, 10); got != white {
			t.Errorf("gap at %d: %v", x, got)
		}
	}
}

// TestLongLine draws a series which needs several rasteriser chunks.
func TestLongLine(t *testing.T) {
	const n = 3*chunkPoints + 17
	xs := make(axis.Floats, n)
	ys := make(axis.Floats, n)
	for i := range n {
		xs[i] = float64(i) / (n - 1)
		ys[i] = 0.5
	}
	c, ch := bareChart(t, 200, 50, 0, axisRange(t, 0, 1), axisRange(t, 0, 1))
	if err := ch.Line(xs, ys, StrokeWidth(2), Color(color.Black)); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	for x := 1; x < 199; x++ {
		if got := img.RGBAAt(x, 24); got != black {
			t.Fatalf("pixel (%d,24): %v", x, got)
		}
	}
}

func TestHugeSeries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	const n = 10_000_000
	xs := make(axis.Floats, n)
	ys := make(axis.Floats, n)
	for i := range n {
		// a deterministic pseudo-random pattern in [-10, 10]
		xs[i] = 10 * math.Sin(float64(i)*0.7)
		ys[i] = 10 * math.Cos(float64(i)*1.3)
	}
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	r := axisRange(t, -10, 10)
	ch, err := NewChart(c, r, r, WithCaption("Title Chart1"), WithMargin(10))
	if err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	if err := ch.Line(xs, ys); err != nil {
		t.Fatal(err)
	}
	t.Logf("%d points in %v", n, time.Since(start))

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty PNG")
	}
}

// TestMicrosecondAxis draws a series on a time axis which spans only a
// few microseconds, far from 1970.
func TestMicrosecondAxis(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	x, err := axis.DateTimeRange(t0, t0.Add(10*time.Microsecond))
	if err != nil {
		t.Fatal(err)
	}
	c, ch := bareChart(t, 120, 120, 10, x, axisRange(t, 0, 1))
	if ch.PlotArea() != image.Rect(10, 10, 110, 110) {
		t.Fatalf("plot area %v", ch.PlotArea())
	}

	p, err := ch.Map(axis.DateTimeValue(t0.Add(3*time.Microsecond)), axis.FloatValue(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p.X-40) > 1e-9 || math.Abs(p.Y-60) > 1e-9 {
		t.Errorf("mapped to %v, want (40, 60)", p)
	}

	// zigzag through the centres of every tenth pixel column
	var xs axis.DateTimes
	var ys axis.Floats
	for k := range 10 {
		xs = append(xs, t0.Add(time.Duration(k)*time.Microsecond+500*time.Nanosecond))
		ys = append(ys, float64(k%2))
	}
	if err := ch.Line(xs, ys, Color(black)); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	for k := range 10 {
		px, py := 15+10*k, 109
		if k%2 == 1 {
			py = 10
		}
		if got := img.RGBAAt(px, py); got != black {
			t.Errorf("point %d: pixel (%d,%d) is %v", k, px, py, got)
		}
	}
}
