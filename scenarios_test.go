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

package ezel_test

import (
	"bytes"
	"image/png"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/ezel/testcases"
)

func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				c, err := tc.Render()
				if err != nil {
					t.Fatal(err)
				}

				var buf bytes.Buffer
				if err := c.Encode(&buf); err != nil {
					t.Fatal(err)
				}
				img, err := png.Decode(&buf)
				if err != nil {
					t.Fatal(err)
				}
				if img.Bounds() != c.Bounds() {
					t.Errorf("decoded bounds %v, want %v", img.Bounds(), c.Bounds())
				}

				// something has been drawn
				bg := c.Background()
				pix := c.Image().Pix
				changed := false
				for i := 0; i < len(pix); i += 4 {
					if pix[i] != bg.R || pix[i+1] != bg.G || pix[i+2] != bg.B {
						changed = true
						break
					}
				}
				if !changed {
					t.Error("canvas is blank")
				}
			})
		}
	}
}

func TestNormalDataRange(t *testing.T) {
	xs, ys := testcases.NormalData(10_000, 7)
	for i := range xs {
		if xs[i] < -10 || xs[i] > 10 || ys[i] < -10 || ys[i] > 10 {
			t.Fatalf("point %d = (%g, %g) outside [-10, 10]", i, xs[i], ys[i])
		}
	}
	again, _ := testcases.NormalData(10_000, 7)
	if !slices.Equal(xs, again) {
		t.Error("NormalData is not deterministic")
	}
}
