// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/charts/base/logx"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"cogentcore.org/charts/plot/plots"
	"github.com/spf13/cobra"
)

// config has the flags shared by all commands.
type config struct {

	// Kind overrides the chart kind of the data file.
	Kind string

	// Options are options files applied in order.
	Options []string

	// Width and Height are the chart area size, in pixels.
	Width, Height int

	VeryVerbose, Verbose, Quiet bool
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:          "charts",
		Short:        "Lay out and render animated charts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.Setup(cmd.ErrOrStderr(), logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&cfg.Kind, "kind", "k", "", "chart kind, overriding the kind in the data file")
	pf.StringSliceVar(&cfg.Options, "options", nil, "options files (.toml, .yaml), applied in order")
	pf.IntVar(&cfg.Width, "width", 800, "chart width in pixels")
	pf.IntVar(&cfg.Height, "height", 400, "chart height in pixels")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log info messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only log errors")
	root.AddCommand(newLayoutCmd(cfg), newRenderCmd(cfg), newEasingCmd())
	return root
}

// area returns the chart area.
func (cfg *config) area() math32.Box2 {
	return math32.B2(0, 0, float32(cfg.Width), float32(cfg.Height))
}

// loadChart returns the chart for the data file with the data and
// options applied in the chart area, and its animation started at 0.
func (cfg *config) loadChart(filename string) (plot.Chart, *plot.Options, error) {
	df, err := plot.OpenData(filename)
	if err != nil {
		return nil, nil, err
	}
	kind := df.Kind
	if cfg.Kind != "" {
		if err := kind.SetString(cfg.Kind); err != nil {
			return nil, nil, err
		}
	}
	o, err := plot.OpenOptions(cfg.Options...)
	if err != nil {
		return nil, nil, err
	}
	ch, err := plots.New(kind)
	if err != nil {
		return nil, nil, err
	}
	if c, ok := ch.(*plots.Chord); ok {
		c.SetChordData(df.ToChordData())
		slog.Debug("loaded chord data", "file", filename, "groups", c.ChordData.Len())
		return plot.Apply(c, nil, o, cfg.area(), 0), o, nil
	}
	dt, err := df.ToData()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := dt.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}
	slog.Debug("loaded data", "file", filename, "kind", kind, "datasets", len(dt.Datasets))
	return plot.Apply(ch, dt, o, cfg.area(), 0), o, nil
}

// run runs the chart animation with a frame clock for at most the
// given number of frames, 0 meaning until it completes.
func run(ch plot.Chart, frames int) int {
	n := plot.Run(ch, plot.NewFrameClock(0), nil, frames)
	slog.Info("animation run", "frames", n, "animating", ch.IsAnimating())
	return n
}
