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
	"image/color"
	"image/png"

	"github.com/aclements/go-gg/palette"
	"seehuhn.de/go/pdf/graphics"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// CanvasOption configures a [Canvas].
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	width, height int
	background    color.Color
	compression   png.CompressionLevel
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		width:       DefaultWidth,
		height:      DefaultHeight,
		background:  color.White,
		compression: png.DefaultCompression,
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) CanvasOption {
	return func(o *canvasOptions) {
		o.width, o.height = width, height
	}
}

// WithBackground sets the colour the canvas is initially filled with.
func WithBackground(c color.Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithCompression sets the compression level used by [Canvas.Encode] and
// [Canvas.Save].
func WithCompression(level png.CompressionLevel) CanvasOption {
	return func(o *canvasOptions) {
		o.compression = level
	}
}

// Margins are insets, in pixels, on the four sides of a region.
type Margins struct {
	Top, Right, Bottom, Left int
}

// Options controls the layout and decoration of a [Chart].
type Options struct {
	// Caption is drawn centred above the plot area.  If Caption is empty,
	// no space is reserved.
	Caption     string
	CaptionFont string  // "sans-serif", "serif" or "monospace"
	CaptionSize float64 // in pixels

	Margin Margins

	// LabelLeft and LabelBottom are the widths of the areas holding the
	// tick labels of the y and x axis.  They are only reserved if the
	// corresponding axis is drawn.
	LabelLeft, LabelBottom int

	MeshX, MeshY bool // grid lines at the x and y ticks
	AxisX, AxisY bool // axis lines with tick labels

	// MaxLabelsX and MaxLabelsY bound the number of ticks per axis.
	MaxLabelsX, MaxLabelsY int

	// StrokeWidth is the default line width of series, in pixels.
	StrokeWidth float64

	// Palette supplies the colours of series without an explicit colour.
	Palette palette.Continuous

	// ClipToPlot restricts series to the plot area.  By default, series
	// may extend over the margins, up to the edges of the region.
	ClipToPlot bool
}

// DefaultPalette is the default series palette, a gradient through the
// viridis colour map.
var DefaultPalette palette.Continuous = palette.RGBGradient{
	Colors: []color.RGBA{
		{0x44, 0x01, 0x54, 0xff},
		{0x48, 0x28, 0x78, 0xff},
		{0x3e, 0x4a, 0x89, 0xff},
		{0x31, 0x68, 0x8e, 0xff},
		{0x26, 0x82, 0x8e, 0xff},
		{0x1f, 0x9e, 0x89, 0xff},
		{0x35, 0xb7, 0x79, 0xff},
		{0x6d, 0xcd, 0x59, 0xff},
		{0xb4, 0xde, 0x2c, 0xff},
		{0xfd, 0xe7, 0x25, 0xff},
	},
}

// DefaultOptions returns the options used by [NewChart] before any
// [ChartOption] is applied.
func DefaultOptions() Options {
	return Options{
		CaptionFont: "sans-serif",
		CaptionSize: 20,
		Margin:      Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		LabelLeft:   20,
		LabelBottom: 20,
		MeshX:       true,
		MeshY:       true,
		AxisX:       true,
		AxisY:       true,
		MaxLabelsX:  10,
		MaxLabelsY:  10,
		StrokeWidth: 1,
		Palette:     DefaultPalette,
	}
}

// ChartOption modifies the [Options] of a chart.
type ChartOption func(*Options)

// WithOptions replaces all options by o.
func WithOptions(o Options) ChartOption {
	return func(opt *Options) {
		*opt = o
	}
}

// WithCaption sets the chart caption.
func WithCaption(caption string) ChartOption {
	return func(o *Options) {
		o.Caption = caption
	}
}

// WithCaptionFont sets the font family of the caption.
func WithCaptionFont(family string) ChartOption {
	return func(o *Options) {
		o.CaptionFont = family
	}
}

// WithCaptionSize sets the caption font size in pixels.
func WithCaptionSize(px float64) ChartOption {
	return func(o *Options) {
		o.CaptionSize = px
	}
}

// WithMargin sets the same margin on all four sides.
func WithMargin(px int) ChartOption {
	return func(o *Options) {
		o.Margin = Margins{Top: px, Right: px, Bottom: px, Left: px}
	}
}

// WithMargins sets the four margins individually.
func WithMargins(top, right, bottom, left int) ChartOption {
	return func(o *Options) {
		o.Margin = Margins{Top: top, Right: right, Bottom: bottom, Left: left}
	}
}

// WithLabelArea sets the space reserved for tick labels.
func WithLabelArea(left, bottom int) ChartOption {
	return func(o *Options) {
		o.LabelLeft, o.LabelBottom = left, bottom
	}
}

// WithMesh switches the grid lines of the two axes on or off.
func WithMesh(x, y bool) ChartOption {
	return func(o *Options) {
		o.MeshX, o.MeshY = x, y
	}
}

// WithAxes switches the axis lines and tick labels on or off.
func WithAxes(x, y bool) ChartOption {
	return func(o *Options) {
		o.AxisX, o.AxisY = x, y
	}
}

// WithMaxLabels sets the maximal number of ticks per axis.
func WithMaxLabels(x, y int) ChartOption {
	return func(o *Options) {
		o.MaxLabelsX, o.MaxLabelsY = x, y
	}
}

// WithStrokeWidth sets the default line width of series.
func WithStrokeWidth(w float64) ChartOption {
	return func(o *Options) {
		o.StrokeWidth = w
	}
}

// WithPalette sets the palette for automatic series colours.
func WithPalette(p palette.Continuous) ChartOption {
	return func(o *Options) {
		o.Palette = p
	}
}

// WithClipToPlot restricts series to the plot area.
func WithClipToPlot(clip bool) ChartOption {
	return func(o *Options) {
		o.ClipToPlot = clip
	}
}

// SeriesOption sets the style of a single series.
type SeriesOption func(*seriesStyle)

type seriesStyle struct {
	width     float64
	color     color.Color
	dash      []float64
	phase     float64
	cap       graphics.LineCapStyle
	join      graphics.LineJoinStyle
	antialias bool
	aaSet     bool
	marker    float64
	filled    bool
}

// StrokeWidth sets the line width in pixels.  For scatter plots this is
// the width of the marker outline.
func StrokeWidth(w float64) SeriesOption {
	return func(s *seriesStyle) {
		s.width = w
	}
}

// Color sets the colour of the series.  Without this option, the colour
// is taken from the chart palette.
func Color(c color.Color) SeriesOption {
	return func(s *seriesStyle) {
		s.color = c
	}
}

// Dash sets a dash pattern, alternating lengths of drawn and skipped
// parts in pixels.
func Dash(pattern []float64, phase float64) SeriesOption {
	return func(s *seriesStyle) {
		s.dash = pattern
		s.phase = phase
	}
}

// Cap sets the line cap style.  The default is round.
func Cap(c graphics.LineCapStyle) SeriesOption {
	return func(s *seriesStyle) {
		s.cap = c
	}
}

// Join sets the line join style.  The default is round.
func Join(j graphics.LineJoinStyle) SeriesOption {
	return func(s *seriesStyle) {
		s.join = j
	}
}

// Antialias switches anti-aliasing on or off.  Lines of width at most one
// pixel are drawn without anti-aliasing by default, which is much faster
// for very long series.
func Antialias(on bool) SeriesOption {
	return func(s *seriesStyle) {
		s.antialias = on
		s.aaSet = true
	}
}

// MarkerSize sets the marker radius of scatter plots, in pixels.
func MarkerSize(px float64) SeriesOption {
	return func(s *seriesStyle) {
		s.marker = px
	}
}

// Filled sets whether scatter markers are filled or outlined.
func Filled(on bool) SeriesOption {
	return func(s *seriesStyle) {
		s.filled = on
	}
}
