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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"seehuhn.de/go/ezel"
	"seehuhn.de/go/ezel/testcases"
)

type benchConfig struct {
	points        int
	width, height int
	seed          uint64
	outDir        string
}

func benchCmd() *cobra.Command {
	var cfg benchConfig
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the drawing speed of ezel and gonum/plot",
		Long: `bench draws a line through normally distributed random points,
once with ezel and once with gonum/plot, and reports the time taken
including PNG encoding.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, cfg)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&cfg.points, "points", "n", 10_000_000, "Number of data points")
	f.IntVar(&cfg.width, "width", ezel.DefaultWidth, "Image width in pixels")
	f.IntVar(&cfg.height, "height", ezel.DefaultHeight, "Image height in pixels")
	f.Uint64Var(&cfg.seed, "seed", 1, "Random seed")
	f.StringVarP(&cfg.outDir, "out", "o", ".", "Output directory")
	return cmd
}

func runBench(cmd *cobra.Command, cfg benchConfig) error {
	if cfg.points < 2 {
		return fmt.Errorf("need at least 2 points, got %d", cfg.points)
	}
	if err := os.MkdirAll(cfg.outDir, 0755); err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	start := time.Now()
	c, err := ezel.New(ezel.WithSize(cfg.width, cfg.height))
	if err != nil {
		return err
	}
	if err := testcases.DrawNormal(c, cfg.points, cfg.seed); err != nil {
		return err
	}
	if err := c.Save(filepath.Join(cfg.outDir, "bench_ezel.png")); err != nil {
		return err
	}
	fast := time.Since(start)
	fmt.Fprintf(out, "ezel:  %d points in %v\n", cfg.points, fast.Round(time.Millisecond))

	start = time.Now()
	fname := filepath.Join(cfg.outDir, "bench_gonum.png")
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = testcases.DrawBaseline(fd, cfg.width, cfg.height, cfg.points, cfg.seed)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("gonum/plot: %w", err)
	}
	slow := time.Since(start)
	fmt.Fprintf(out, "gonum: %d points in %v\n", cfg.points, slow.Round(time.Millisecond))

	if fast > 0 {
		fmt.Fprintf(out, "speedup: %.1fx\n", slow.Seconds()/fast.Seconds())
	}
	return nil
}
