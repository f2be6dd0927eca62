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
	"image/png"
	"io/fs"
	"math"
	"math/rand/v2"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Bounds(); got != image.Rect(0, 0, DefaultWidth, DefaultHeight) {
		t.Errorf("bounds %v", got)
	}
	white := color.RGBA{255, 255, 255, 255}
	for _, p := range []image.Point{{0, 0}, {799, 599}, {400, 300}} {
		if got := c.Image().RGBAAt(p.X, p.Y); got != white {
			t.Errorf("pixel %v: %v", p, got)
		}
	}

	c, err = New(WithSize(20, 10), WithBackground(color.Black))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(19, 9); got != (color.RGBA{A: 255}) {
		t.Errorf("background %v", got)
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-5, 5}} {
		_, err := New(WithSize(size[0], size[1]))
		if !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("%v: got %v", size, err)
		}
	}
}

// TestSplitTiling splits random regions and checks that the leaves
// always tile the canvas.
func TestSplitTiling(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := range 20 {
		w, h := 1+rng.IntN(300), 1+rng.IntN(300)
		c, err := New(WithSize(w, h))
		if err != nil {
			t.Fatal(err)
		}
		leaves := []Region{c.Root()}
		for range 50 {
			k := rng.IntN(len(leaves))
			r := leaves[k]
			parent := r.Bounds()
			vertical := rng.IntN(2) == 0
			frac := 0.05 + 0.9*rng.Float64()

			var a, b Region
			if vertical {
				a, b, err = r.SplitVerticallyAt(frac)
			} else {
				a, b, err = r.SplitHorizontallyAt(frac)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidRegion) {
					t.Fatalf("unexpected error %v", err)
				}
				size := parent.Dx()
				if vertical {
					size = parent.Dy()
				}
				if size >= 2 {
					t.Fatalf("split of %v failed: %v", parent, err)
				}
				continue
			}

			ra, rb := a.Bounds(), b.Bounds()
			if ra.Empty() || rb.Empty() || ra.Overlaps(rb) || ra.Union(rb) != parent {
				t.Fatalf("round %d: %v does not tile into %v and %v", round, parent, ra, rb)
			}
			if ra.Dx()*ra.Dy()+rb.Dx()*rb.Dy() != parent.Dx()*parent.Dy() {
				t.Fatalf("round %d: areas of %v and %v do not add up", round, ra, rb)
			}
			leaves[k] = a
			leaves = append(leaves, b)
		}

		area := 0
		for i, a := range leaves {
			ra := a.Bounds()
			area += ra.Dx() * ra.Dy()
			for _, b := range leaves[:i] {
				if ra.Overlaps(b.Bounds()) {
					t.Fatalf("round %d: leaves %v and %v overlap", round, ra, b.Bounds())
				}
			}
		}
		if area != w*h {
			t.Errorf("round %d: leaves cover %d pixels, want %d", round, area, w*h)
		}
	}
}

func TestSplitConsumesParent(t *testing.T) {
	c, err := New(WithSize(400, 400))
	if err != nil {
		t.Fatal(err)
	}
	top, bottom, err := c.SplitVertically()
	if err != nil {
		t.Fatal(err)
	}
	if top.Bounds() != image.Rect(0, 0, 400, 200) || bottom.Bounds() != image.Rect(0, 200, 400, 400) {
		t.Errorf("got %v and %v", top.Bounds(), bottom.Bounds())
	}
	if c.Root().Usable() {
		t.Error("root still usable after split")
	}

	_, _, err = c.SplitHorizontally()
	if !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("second split of root: %v", err)
	}
	r := axisRange(t, 0, 1)
	if _, err := NewChart(c, r, r); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("chart on split canvas: %v", err)
	}

	// a bound region can neither be split nor bound again
	if _, err := NewChart(top, r, r); err != nil {
		t.Fatal(err)
	}
	if _, _, err := top.SplitHorizontally(); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("split of bound region: %v", err)
	}
	if _, err := NewChart(top, r, r); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("second chart on region: %v", err)
	}
	var re *RegionError
	if _, err := NewChart(top, r, r); !errors.As(err, &re) || re.Bounds != top.Bounds() {
		t.Errorf("error %v does not describe the region", err)
	}

	if !bottom.Usable() {
		t.Error("sibling not usable")
	}
	if _, _, err := (Region{}).SplitVertically(); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("zero region: %v", err)
	}
}

func TestSplitTooSmall(t *testing.T) {
	c, err := New(WithSize(10, 1))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.SplitVertically(); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("vertical split of 1 pixel: %v", err)
	}
	// the failed split does not consume the region
	left, right, err := c.SplitHorizontally()
	if err != nil {
		t.Fatal(err)
	}
	if left.Bounds().Dx() != 5 || right.Bounds().Dx() != 5 {
		t.Errorf("got %v and %v", left.Bounds(), right.Bounds())
	}
}

func TestSplitFraction(t *testing.T) {
	for _, frac := range []float64{0, 1, -0.5, 2, math.NaN()} {
		c, err := New(WithSize(90, 90))
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err := c.SplitVerticallyAt(frac); !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("fraction %g: %v", frac, err)
		}
	}

	c, err := New(WithSize(90, 90))
	if err != nil {
		t.Fatal(err)
	}
	left, right, err := c.SplitHorizontallyAt(1.0 / 3)
	if err != nil {
		t.Fatal(err)
	}
	if left.Bounds() != image.Rect(0, 0, 30, 90) || right.Bounds() != image.Rect(30, 0, 90, 90) {
		t.Errorf("got %v and %v", left.Bounds(), right.Bounds())
	}

	// tiny fractions still leave one pixel on each side
	a, b, err := left.SplitVerticallyAt(1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if a.Bounds().Dy() != 1 || b.Bounds().Dy() != 89 {
		t.Errorf("got %v and %v", a.Bounds(), b.Bounds())
	}
}

func TestSplitAtPixel(t *testing.T) {
	c, err := New(WithSize(101, 77))
	if err != nil {
		t.Fatal(err)
	}
	top, bottom, err := c.SplitVerticallyAtPixel(33)
	if err != nil {
		t.Fatal(err)
	}
	if top.Bounds() != image.Rect(0, 0, 101, 33) || bottom.Bounds() != image.Rect(0, 33, 101, 77) {
		t.Errorf("got %v and %v", top.Bounds(), bottom.Bounds())
	}

	// every offset inside the region is reachable
	for k := 1; k < 101; k++ {
		c, err := New(WithSize(101, 10))
		if err != nil {
			t.Fatal(err)
		}
		left, right, err := c.SplitHorizontallyAtPixel(k)
		if err != nil {
			t.Fatal(err)
		}
		if left.Bounds().Dx() != k || right.Bounds().Min.X != k {
			t.Fatalf("offset %d: got %v and %v", k, left.Bounds(), right.Bounds())
		}
	}

	for _, k := range []int{-1, 0, 44, 100} {
		if _, _, err := bottom.SplitVerticallyAtPixel(k); !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("offset %d: got %v", k, err)
		}
	}
	if !bottom.Usable() {
		t.Error("failed split consumed the region")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	c, err := New(WithSize(64, 48))
	if err != nil {
		t.Fatal(err)
	}
	ch, err := NewChart(c, axisRange(t, 0, 1), axisRange(t, 0, 1), WithMargin(4))
	if err != nil {
		t.Fatal(err)
	}
	xs := floats(0, 0.3, 0.6, 1)
	ys := floats(0, 1, 0.2, 0.7)
	if err := ch.Line(xs, ys, StrokeWidth(2.5)); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	first := bytes.Clone(buf.Bytes())

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != c.Bounds() {
		t.Fatalf("decoded bounds %v, want %v", img.Bounds(), c.Bounds())
	}
	for y := range 48 {
		for x := range 64 {
			want := c.Image().RGBAAt(x, y)
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if got != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}

	// encoding again gives the same result
	buf.Reset()
	if err := c.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), first) {
		t.Error("second encoding differs")
	}
}

func TestSave(t *testing.T) {
	c, err := New(WithSize(10, 10), WithCompression(png.BestSpeed))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	name := filepath.Join(dir, "out.png")
	if err := c.Save(name); err != nil {
		t.Fatal(err)
	}

	err = c.Save(filepath.Join(dir, "missing", "out.png"))
	if !errors.Is(err, ErrEncode) {
		t.Errorf("got %v, want ErrEncode", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want cause fs.ErrNotExist", err)
	}
	var ee *EncodeError
	if !errors.As(err, &ee) || ee.Path == "" {
		t.Errorf("got %v, want *EncodeError with path", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEncodeWriteError(t *testing.T) {
	c, err := New(WithSize(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Encode(failingWriter{}); !errors.Is(err, ErrEncode) {
		t.Errorf("got %v, want ErrEncode", err)
	}
}
