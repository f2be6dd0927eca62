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
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Job draws into one chart.
type Job struct {
	Chart *Chart
	Draw  func(ctx context.Context, ch *Chart) error
}

// Draw runs the jobs concurrently, using at most GOMAXPROCS goroutines,
// and returns the first error.
//
// Every job must use a different chart of c.  Since the regions of
// different charts are disjoint, the jobs never write the same pixels.
// After the first error, jobs which have not started yet are skipped.
func (c *Canvas) Draw(ctx context.Context, jobs ...Job) error {
	seen := make(map[*Chart]bool, len(jobs))
	for i, j := range jobs {
		if j.Chart == nil || j.Draw == nil {
			return &RegionError{Op: "draw", Reason: "incomplete job"}
		}
		if j.Chart.canvas != c {
			return &RegionError{Op: "draw", Bounds: j.Chart.region, Reason: "chart belongs to a different canvas"}
		}
		if seen[j.Chart] {
			return &RegionError{Op: "draw", Bounds: j.Chart.region, Reason: "chart used by more than one job"}
		}
		seen[j.Chart] = true
		for _, k := range jobs[:i] {
			if j.Chart.region.Overlaps(k.Chart.region) {
				return &RegionError{Op: "draw", Bounds: j.Chart.region, Reason: "overlapping regions"}
			}
		}
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return j.Draw(ctx, j.Chart)
		})
	}
	err := g.Wait()
	Logger().Debug("parallel draw", "jobs", len(jobs), "elapsed", time.Since(start), "error", err)
	return err
}
