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
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"seehuhn.de/go/ezel/testcases"
)

func exampleCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "example [category...]",
		Short: "Render the example charts to PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeExamples(cmd, outDir, args)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func writeExamples(cmd *cobra.Command, dir string, only []string) error {
	categories := slices.Sorted(maps.Keys(testcases.All))
	for _, name := range only {
		if _, ok := testcases.All[name]; !ok {
			return fmt.Errorf("unknown category %q (have %v)", name, categories)
		}
	}
	if len(only) > 0 {
		categories = only
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, category := range categories {
		for _, tc := range testcases.All[category] {
			c, err := tc.Render()
			if err != nil {
				return fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			fname := filepath.Join(dir, category+"_"+tc.Name+".png")
			if err := c.Save(fname); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), fname)
		}
	}
	return nil
}
