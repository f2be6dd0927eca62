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
)

type regionState uint8

const (
	regionLive  regionState = iota // may be split or bound
	regionSplit                    // replaced by its two children
	regionBound                    // owned by a chart
)

type regionInfo struct {
	rect  image.Rectangle
	state regionState
}

// Region is a rectangular part of a canvas.  Regions are obtained from
// [Canvas.Root] and by splitting other regions.
//
// Splitting consumes a region: afterwards only the two children can be
// used.  A region can be used for at most one chart.  Together these
// rules ensure that charts never share pixels.
//
// Region values are small descriptors and can be copied freely.
type Region struct {
	c  *Canvas
	id int
}

// Target is something a chart can be drawn on: a [Region] or a [*Canvas].
// A canvas stands for its root region.
type Target interface {
	region() Region
}

func (r Region) region() Region  { return r }
func (c *Canvas) region() Region { return c.Root() }

// Canvas returns the canvas r belongs to.
func (r Region) Canvas() *Canvas {
	return r.c
}

// Bounds returns the pixel rectangle of r.
func (r Region) Bounds() image.Rectangle {
	if r.c == nil {
		return image.Rectangle{}
	}
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.regions[r.id].rect
}

// Usable reports whether r can still be split or bound to a chart.
func (r Region) Usable() bool {
	if r.c == nil {
		return false
	}
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.regions[r.id].state == regionLive
}

// SplitVertically splits r into a top and a bottom half.
func (r Region) SplitVertically() (top, bottom Region, err error) {
	return r.split(true, atFraction(0.5))
}

// SplitHorizontally splits r into a left and a right half.
func (r Region) SplitHorizontally() (left, right Region, err error) {
	return r.split(false, atFraction(0.5))
}

// SplitVerticallyAt splits r into a top and a bottom part, where the top
// part gets the fraction frac of the height, rounded to whole pixels.
// frac must lie strictly between 0 and 1.
func (r Region) SplitVerticallyAt(frac float64) (top, bottom Region, err error) {
	return r.split(true, atFraction(frac))
}

// SplitHorizontallyAt splits r into a left and a right part, where the
// left part gets the fraction frac of the width, rounded to whole pixels.
// frac must lie strictly between 0 and 1.
func (r Region) SplitHorizontallyAt(frac float64) (left, right Region, err error) {
	return r.split(false, atFraction(frac))
}

// SplitVerticallyAtPixel splits r into a top part of the given height
// and a bottom part with the remaining rows.  Both parts must be at
// least one pixel high.
func (r Region) SplitVerticallyAtPixel(height int) (top, bottom Region, err error) {
	return r.split(true, atPixel(height))
}

// SplitHorizontallyAtPixel splits r into a left part of the given width
// and a right part with the remaining columns.  Both parts must be at
// least one pixel wide.
func (r Region) SplitHorizontallyAtPixel(width int) (left, right Region, err error) {
	return r.split(false, atPixel(width))
}

// A splitPos finds the size of the first part of a split, given the size
// of the region.  It returns a reason if the split is impossible.
type splitPos func(size int) (int, string)

func atFraction(frac float64) splitPos {
	return func(size int) (int, string) {
		if !(frac > 0 && frac < 1) {
			return 0, fmt.Sprintf("split position %g outside (0, 1)", frac)
		}
		if size < 2 {
			return 0, "region too small"
		}
		k := int(math.Round(frac * float64(size)))
		return min(max(k, 1), size-1), ""
	}
}

func atPixel(k int) splitPos {
	return func(size int) (int, string) {
		if size < 2 {
			return 0, "region too small"
		}
		if k < 1 || k >= size {
			return 0, fmt.Sprintf("split offset %d outside [1, %d]", k, size-1)
		}
		return k, ""
	}
}

func (r Region) split(vertical bool, pos splitPos) (Region, Region, error) {
	if r.c == nil {
		return Region{}, Region{}, &RegionError{Op: "split", Reason: "zero region"}
	}
	c := r.c
	c.mu.Lock()
	defer c.mu.Unlock()

	rect := c.regions[r.id].rect
	if err := c.checkUsable(r.id, "split"); err != nil {
		return Region{}, Region{}, err
	}
	size := rect.Dx()
	if vertical {
		size = rect.Dy()
	}
	k, reason := pos(size)
	if reason != "" {
		return Region{}, Region{}, &RegionError{Op: "split", Bounds: rect, Reason: reason}
	}

	a, b := rect, rect
	if vertical {
		a.Max.Y = rect.Min.Y + k
		b.Min.Y = a.Max.Y
	} else {
		a.Max.X = rect.Min.X + k
		b.Min.X = a.Max.X
	}

	c.regions[r.id].state = regionSplit
	id := len(c.regions)
	c.regions = append(c.regions, regionInfo{rect: a}, regionInfo{rect: b})
	Logger().Debug("region split", "parent", rect, "first", a, "second", b)
	return Region{c: c, id: id}, Region{c: c, id: id + 1}, nil
}

// checkUsable returns an error unless region id is live.
// The caller must hold c.mu.
func (c *Canvas) checkUsable(id int, op string) error {
	info := c.regions[id]
	switch info.state {
	case regionSplit:
		return &RegionError{Op: op, Bounds: info.rect, Reason: "region has been split"}
	case regionBound:
		return &RegionError{Op: op, Bounds: info.rect, Reason: "region is used by a chart"}
	}
	return nil
}

// bind hands region id to a chart.
func (c *Canvas) bind(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.checkUsable(id, "bind"); err != nil {
		return err
	}
	c.regions[id].state = regionBound
	return nil
}
