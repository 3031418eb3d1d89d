// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"log/slog"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/paint/rasterizer"
	"cogentcore.org/charts/plot"
	"github.com/spf13/cobra"
)

func newRenderCmd(cfg *config) *cobra.Command {
	var (
		output     string
		samples    int
		frames     int
		background string
	)
	cmd := &cobra.Command{
		Use:   "render <data file>",
		Short: "Render a chart frame to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := colors.FromString(background)
			if err != nil {
				return err
			}
			ch, o, err := cfg.loadChart(args[0])
			if err != nil {
				return err
			}
			run(ch, frames)
			rs := rasterizer.New(image.Pt(cfg.Width, cfg.Height), samples, bg)
			ch.Draw(rs)
			if o.Legend.Display {
				items := ch.LegendItems()
				plot.DrawLegend(rs, items, plot.LayoutLegend(items, cfg.area(), &o.Legend))
			}
			if err := rs.Save(output); err != nil {
				return err
			}
			slog.Info("rendered", "file", output, "size", rs.Size)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "chart.png", "output image file (.png, .jpg, .gif, .tif, .bmp)")
	f.IntVar(&samples, "samples", 2, "supersampling factor")
	f.IntVar(&frames, "frames", 0, "stop after this many frames (0 runs the animation to the end)")
	f.StringVar(&background, "background", "white", "background color")
	return cmd
}
