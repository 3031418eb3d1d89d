// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/plot"
	"github.com/spf13/cobra"
)

func newLayoutCmd(cfg *config) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "layout <data file>",
		Short: "Print a summary of the geometry of a chart frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, _, err := cfg.loadChart(args[0])
			if err != nil {
				return err
			}
			n := run(ch, frames)
			rec := &plot.Recorder{}
			ch.Draw(rec)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "frames: %d\n", n)
			fmt.Fprintf(w, "bars: %d\n", len(rec.Bars))
			fmt.Fprintf(w, "lines: %d\n", len(rec.Lines))
			fmt.Fprintf(w, "circles: %d\n", len(rec.Circles))
			fmt.Fprintf(w, "triangles: %d\n", len(rec.Triangles))
			fmt.Fprintf(w, "arcs: %d\n", len(rec.Arcs))
			for _, it := range ch.LegendItems() {
				fmt.Fprintf(w, "legend: %s %s\n", it.Label, colors.AsHex(it.Color))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 0, "stop after this many frames (0 runs the animation to the end)")
	return cmd
}
