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

// Package testcases contains named chart scenarios.  They are rendered by
// the tests of package ezel and by the "ezel example" command.
package testcases

import (
	"math"
	"math/rand/v2"

	"seehuhn.de/go/ezel"
	"seehuhn.de/go/ezel/axis"
)

// TestCase is a scenario which draws onto a fresh canvas.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // canvas width in pixels, 0 for the default
	Height int    // canvas height in pixels, 0 for the default
	Draw   func(c *ezel.Canvas) error
}

// NewCanvas allocates the canvas for tc.
func (tc TestCase) NewCanvas() (*ezel.Canvas, error) {
	var opts []ezel.CanvasOption
	if tc.Width > 0 && tc.Height > 0 {
		opts = append(opts, ezel.WithSize(tc.Width, tc.Height))
	}
	return ezel.New(opts...)
}

// Render allocates a canvas and draws tc onto it.
func (tc TestCase) Render() (*ezel.Canvas, error) {
	c, err := tc.NewCanvas()
	if err != nil {
		return nil, err
	}
	if err := tc.Draw(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NormalData returns n points with independent, standard normal
// coordinates, clipped to [-10, 10].
func NormalData(n int, seed uint64) (xs, ys axis.Floats) {
	rng := rand.New(rand.NewPCG(seed, 0))
	xs = make(axis.Floats, n)
	ys = make(axis.Floats, n)
	for i := range n {
		xs[i] = min(max(rng.NormFloat64(), -10), 10)
		ys[i] = min(max(rng.NormFloat64(), -10), 10)
	}
	return xs, ys
}

// Sine returns n points of sin(x) for x in [0, 2π].
func Sine(n int) (xs, ys axis.Floats) {
	xs = make(axis.Floats, n)
	ys = make(axis.Floats, n)
	for i := range n {
		x := 2 * math.Pi * float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = math.Sin(x)
	}
	return xs, ys
}
