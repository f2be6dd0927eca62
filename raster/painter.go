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
	"image/color"
)

// Painter composites coverage values onto an RGBA image, using the
// Porter-Duff "source over" operator.
type Painter struct {
	Dst *image.RGBA

	// Clip limits the pixels which may be changed.  Coverage outside of
	// Clip is ignored.
	Clip image.Rectangle

	// Color is the (alpha-premultiplied) paint color.
	Color color.RGBA

	// Aliased rounds coverage values to 0 or 1.
	Aliased bool
}

// NewPainter returns a Painter which paints into the part of dst
// inside clip.
func NewPainter(dst *image.RGBA, clip image.Rectangle, c color.Color) *Painter {
	return &Painter{
		Dst:   dst,
		Clip:  clip.Intersect(dst.Rect),
		Color: color.RGBAModel.Convert(c).(color.RGBA),
	}
}

// Emit blends one scanline of coverage.  It has the signature of an
// [EmitFunc].
func (p *Painter) Emit(y, xMin int, coverage []float32) {
	if y < p.Clip.Min.Y || y >= p.Clip.Max.Y {
		return
	}
	if xMin < p.Clip.Min.X {
		skip := p.Clip.Min.X - xMin
		if skip >= len(coverage) {
			return
		}
		coverage = coverage[skip:]
		xMin = p.Clip.Min.X
	}
	if n := p.Clip.Max.X - xMin; n < len(coverage) {
		if n <= 0 {
			return
		}
		coverage = coverage[:n]
	}

	off := p.Dst.PixOffset(xMin, y)
	row := p.Dst.Pix[off : off+4*len(coverage) : off+4*len(coverage)]
	for i, cov := range coverage {
		p.blend(row[4*i:4*i+4:4*i+4], cov)
	}
}

// Set paints a single pixel with full coverage.
func (p *Painter) Set(x, y int) {
	if !(image.Point{X: x, Y: y}).In(p.Clip) {
		return
	}
	off := p.Dst.PixOffset(x, y)
	p.blend(p.Dst.Pix[off:off+4:off+4], 1)
}

func (p *Painter) blend(px []uint8, cov float32) {
	if p.Aliased {
		if cov < 0.5 {
			return
		}
		cov = 1
	}
	c := p.Color
	if cov >= 1 && c.A == 0xff {
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
		return
	}
	if cov <= 0 {
		return
	}
	keep := 1 - cov*float32(c.A)/0xff
	px[0] = uint8(float32(c.R)*cov + float32(px[0])*keep + 0.5)
	px[1] = uint8(float32(c.G)*cov + float32(px[1])*keep + 0.5)
	px[2] = uint8(float32(c.B)*cov + float32(px[2])*keep + 0.5)
	px[3] = uint8(float32(c.A)*cov + float32(px[3])*keep + 0.5)
}

// Mask is a small rectangle of coverage values, used to stamp the same
// shape at many positions.
type Mask struct {
	Rect image.Rectangle // relative to the stamp position
	Cov  []float32
}

// NewMask returns an empty mask covering rect.
func NewMask(rect image.Rectangle) *Mask {
	return &Mask{
		Rect: rect,
		Cov:  make([]float32, rect.Dx()*rect.Dy()),
	}
}

// Emit records one scanline of coverage.  It has the signature of an
// [EmitFunc].
func (m *Mask) Emit(y, xMin int, coverage []float32) {
	if y < m.Rect.Min.Y || y >= m.Rect.Max.Y {
		return
	}
	w := m.Rect.Dx()
	row := m.Cov[(y-m.Rect.Min.Y)*w : (y-m.Rect.Min.Y+1)*w]
	for i, c := range coverage {
		if x := xMin + i - m.Rect.Min.X; x >= 0 && x < w {
			row[x] = c
		}
	}
}

// Stamp blends m, shifted to position (x, y).
func (p *Painter) Stamp(m *Mask, x, y int) {
	r := m.Rect.Add(image.Point{X: x, Y: y}).Intersect(p.Clip)
	if r.Empty() {
		return
	}
	w := m.Rect.Dx()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		my := py - y - m.Rect.Min.Y
		mx := r.Min.X - x - m.Rect.Min.X
		p.Emit(py, r.Min.X, m.Cov[my*w+mx:my*w+mx+r.Dx()])
	}
}
