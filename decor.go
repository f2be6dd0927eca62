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
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/ezel/axis"
	"seehuhn.de/go/ezel/raster"
	"seehuhn.de/go/geom/vec"
)

var (
	sansFont = sync.OnceValues(func() (*opentype.Font, error) {
		return opentype.Parse(goregular.TTF)
	})
	monoFont = sync.OnceValues(func() (*opentype.Font, error) {
		return opentype.Parse(gomono.TTF)
	})
)

// loadFont returns the font for a family name.  The Go font family has
// no serif face, so every family other than "monospace" uses Go Regular.
func loadFont(family string) (*opentype.Font, error) {
	if family == "monospace" {
		return monoFont()
	}
	return sansFont()
}

func newFace(family string, size float64) (font.Face, error) {
	f, err := loadFont(family)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// labelSize is the font size of tick labels, in pixels.
const labelSize = 12

var (
	axisColor = color.Black
	textColor = color.Black
	meshColor = color.NRGBA{A: 0x30}
)

// decoration holds the font faces needed to decorate a chart.
type decoration struct {
	caption, label font.Face
}

func newDecoration(o *Options) (*decoration, error) {
	d := &decoration{}
	if o.Caption != "" {
		face, err := newFace(o.CaptionFont, o.CaptionSize)
		if err != nil {
			return nil, err
		}
		d.caption = face
	}
	if o.AxisX || o.AxisY {
		face, err := newFace("sans-serif", labelSize)
		if err != nil {
			d.close()
			return nil, err
		}
		d.label = face
	}
	return d, nil
}

func (d *decoration) close() {
	if d.caption != nil {
		d.caption.Close()
	}
	if d.label != nil {
		d.label.Close()
	}
}

// decorate fills the plot area and draws mesh, axes, tick labels and
// caption.  All drawing is confined to the chart's region.
func (ch *Chart) decorate(d *decoration) {
	img := ch.canvas.img
	dst := img.SubImage(ch.region).(*image.RGBA)
	o := &ch.opt

	draw.Draw(dst, ch.plot, image.NewUniform(ch.canvas.background), image.Point{}, draw.Src)

	var xTicks, yTicks []axis.Tick
	if o.MeshX || o.AxisX {
		xTicks = ch.x.Ticks(o.MaxLabelsX)
	}
	if o.MeshY || o.AxisY {
		yTicks = ch.y.Ticks(o.MaxLabelsY)
	}

	mesh := raster.NewLineDrawer(raster.NewPainter(img, ch.plot, meshColor), ch.plot)
	if o.MeshX {
		for _, t := range xTicks {
			mesh.Segment(ch.device(t.Pos, 0), ch.device(t.Pos, 1))
		}
	}
	if o.MeshY {
		for _, t := range yTicks {
			mesh.Segment(ch.device(0, t.Pos), ch.device(1, t.Pos))
		}
	}

	lines := raster.NewLineDrawer(raster.NewPainter(img, ch.region, axisColor), ch.plot)
	const tickLen = 4
	if o.AxisX {
		lines.Segment(ch.device(0, 0), ch.device(1, 0))
		for _, t := range xTicks {
			p := ch.device(t.Pos, 0)
			lines.Segment(p, p.Add(vec.Vec2{Y: tickLen}))
			x := int(p.X)
			if x == ch.plot.Max.X {
				x--
			}
			drawText(dst, d.label, t.Label, x, ch.plot.Max.Y+tickLen+1, alignCenter, alignTop)
		}
	}
	if o.AxisY {
		lines.Segment(ch.device(0, 0), ch.device(0, 1))
		for _, t := range yTicks {
			p := ch.device(0, t.Pos)
			lines.Segment(p, p.Sub(vec.Vec2{X: tickLen}))
			y := int(p.Y)
			if y == ch.plot.Max.Y {
				y--
			}
			drawText(dst, d.label, t.Label, ch.plot.Min.X-tickLen-2, y, alignRight, alignMiddle)
		}
	}

	if o.Caption != "" {
		x := (ch.region.Min.X + ch.region.Max.X) / 2
		y := ch.region.Min.Y + o.Margin.Top
		drawText(dst, d.caption, o.Caption, x, y, alignCenter, alignTop)
	}
}

type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

const (
	alignTop    = alignLeft
	alignMiddle = alignCenter
	alignBottom = alignRight
)

// drawText draws s with the reference point (x, y).  The horizontal and
// vertical alignment select which point of the text box is placed there.
func drawText(dst draw.Image, face font.Face, s string, x, y int, h, v alignment) {
	if face == nil || s == "" {
		return
	}
	s = norm.NFC.String(s)

	adv := font.MeasureString(face, s)
	dot := fixed.P(x, y)
	switch h {
	case alignCenter:
		dot.X -= adv / 2
	case alignRight:
		dot.X -= adv
	}
	m := face.Metrics()
	switch v {
	case alignTop:
		dot.Y += m.Ascent
	case alignMiddle:
		dot.Y += (m.Ascent - m.Descent) / 2
	case alignBottom:
		dot.Y -= m.Descent
	}

	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  dot,
	}
	dr.DrawString(s)
}
