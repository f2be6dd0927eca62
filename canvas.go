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
	"bufio"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/image/draw"
)

// Canvas is an RGBA pixel buffer, together with its subdivision into
// regions.
//
// Charts drawing into different regions of the same canvas may run
// concurrently, see [Canvas.Draw].  Encoding must not overlap with drawing.
type Canvas struct {
	img         *image.RGBA
	background  color.RGBA
	compression png.CompressionLevel

	mu      sync.Mutex
	regions []regionInfo // region 0 is the whole canvas
}

// New allocates a canvas, filled with the background colour.
func New(opts ...CanvasOption) (*Canvas, error) {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	bounds := image.Rect(0, 0, o.width, o.height)
	if o.width <= 0 || o.height <= 0 {
		return nil, &RegionError{Op: "create", Bounds: bounds, Reason: "empty canvas"}
	}

	bg := color.RGBAModel.Convert(o.background).(color.RGBA)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(bg), image.Point{}, draw.Src)

	c := &Canvas{
		img:         img,
		background:  bg,
		compression: o.compression,
		regions:     []regionInfo{{rect: bounds}},
	}
	Logger().Debug("canvas created", "width", o.width, "height", o.height)
	return c, nil
}

// Bounds returns the pixel rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Image returns the pixel buffer.  The buffer is shared with the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Background returns the colour the canvas was filled with.
func (c *Canvas) Background() color.RGBA {
	return c.background
}

// Root returns the region covering the whole canvas.
func (c *Canvas) Root() Region {
	return Region{c: c, id: 0}
}

// SplitVertically splits the whole canvas into a top and a bottom half.
func (c *Canvas) SplitVertically() (top, bottom Region, err error) {
	return c.Root().SplitVertically()
}

// SplitHorizontally splits the whole canvas into a left and a right half.
func (c *Canvas) SplitHorizontally() (left, right Region, err error) {
	return c.Root().SplitHorizontally()
}

// SplitVerticallyAt is like [Canvas.SplitVertically], but the top region
// gets the fraction frac of the height.
func (c *Canvas) SplitVerticallyAt(frac float64) (top, bottom Region, err error) {
	return c.Root().SplitVerticallyAt(frac)
}

// SplitHorizontallyAt is like [Canvas.SplitHorizontally], but the left
// region gets the fraction frac of the width.
func (c *Canvas) SplitHorizontallyAt(frac float64) (left, right Region, err error) {
	return c.Root().SplitHorizontallyAt(frac)
}

// SplitVerticallyAtPixel is like [Canvas.SplitVertically], but the top
// region gets the given number of rows.
func (c *Canvas) SplitVerticallyAtPixel(height int) (top, bottom Region, err error) {
	return c.Root().SplitVerticallyAtPixel(height)
}

// SplitHorizontallyAtPixel is like [Canvas.SplitHorizontally], but the
// left region gets the given number of columns.
func (c *Canvas) SplitHorizontallyAtPixel(width int) (left, right Region, err error) {
	return c.Root().SplitHorizontallyAtPixel(width)
}

// Encode writes the current contents of the canvas to w in PNG format.
// Encode may be called more than once.
func (c *Canvas) Encode(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: c.compression}
	if err := enc.Encode(w, c.img); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// Save writes the canvas to the named file in PNG format.
func (c *Canvas) Save(path string) error {
	start := time.Now()
	f, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	w := bufio.NewWriter(f)
	enc := png.Encoder{CompressionLevel: c.compression}
	err = enc.Encode(w, c.img)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	Logger().Debug("canvas saved", "path", path, "elapsed", time.Since(start))
	return nil
}
