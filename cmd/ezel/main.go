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

// Command ezel renders the built-in example charts and compares the
// drawing speed against gonum/plot.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"seehuhn.de/go/ezel"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "ezel",
		Short: "Fast raster charts",
		Long: `ezel draws line and scatter charts directly into PNG images.
Use the sub-commands to render the example charts or to run the speed
comparison against gonum/plot.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
				ezel.SetLogger(slog.New(h))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log drawing operations to stderr")

	rootCmd.AddCommand(exampleCmd(), benchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
