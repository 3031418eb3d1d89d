// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// DatasetTypes are the ways a dataset of a [Combo] chart is drawn.
type DatasetTypes int32 //enums:enum -trim-prefix Dataset

const (
	DatasetBar DatasetTypes = iota
	DatasetLine
)

// Combo is a chart mixing grouped vertical bars and lines
// on the same axes, each dataset drawn according to its type.
type Combo struct {
	Bar

	// Types are the dataset types by dataset index; datasets past
	// the end are bars.
	Types []DatasetTypes

	// PointRadius is the radius of the line points.
	PointRadius float32

	// Series are the lines of the last Build.
	Series []LineSeries
}

// NewCombo returns a new combo chart.
func NewCombo() *Combo {
	cb := &Combo{PointRadius: 4}
	cb.BarPercent = 0.6
	cb.Radius = 4
	cb.init()
	cb.isBar = func(d int) bool { return cb.DatasetType(d) == DatasetBar }
	return cb
}

// SetTypes sets the dataset types.
func (cb *Combo) SetTypes(types ...DatasetTypes) *Combo {
	cb.Types = types
	return cb
}

// DatasetType returns the type of the given dataset.
func (cb *Combo) DatasetType(d int) DatasetTypes {
	if d < 0 || d >= len(cb.Types) {
		return DatasetBar
	}
	return cb.Types[d]
}

// Layout sets up the scales for the data in the given area.
// Combo bars are always grouped, so the value axis follows the
// data extent even if the y scale is stacked.
func (cb *Combo) Layout(area math32.Box2) {
	cb.layout(area, false)
}

// ReplayAnimation restarts the animation, shared by bars and lines.
func (cb *Combo) ReplayAnimation(now float64) {
	cb.stagger = nil
	cb.chart.ReplayAnimation(now)
}

// Build lays out the bars and lines at the current animation
// progress and registers their hit regions.
func (cb *Combo) Build() {
	cb.Bars = cb.Bars[:0]
	cb.Series = cb.Series[:0]
	cb.Hits.Clear()
	if cb.band() == nil || cb.band().Len() == 0 {
		return
	}
	cb.buildGrouped()
	for _, br := range cb.Bars {
		cb.Hits.Register(br.Rect, plot.HitData{Kind: plot.HitBar, Dataset: br.Dataset, Index: br.Index})
	}
	prog := cb.Progress()
	for d, ds := range cb.Data.Datasets {
		if ds.Hidden || cb.DatasetType(d) != DatasetLine || len(ds.Data) == 0 {
			continue
		}
		ls := cb.lineSeries(ds, d, prog)
		ls.Width = 3
		if ls.PointRadius > 0 {
			ls.PointRadius = cb.PointRadius
		}
		cb.Series = append(cb.Series, ls)
		cb.registerPoints(&cb.Series[len(cb.Series)-1])
	}
}

func (cb *Combo) Draw(pt plot.Painter) {
	cb.Build()
	cb.drawGrid(pt, &cb.Options.Scales.Y, false)
	cb.drawAxes(pt, false, false)
	for _, br := range cb.Bars {
		pt.Bar(br.Rect, br.Radius, br.Fill)
	}
	for i := range cb.Series {
		ls := &cb.Series[i]
		cb.drawSeries(pt, ls, cb.Data.Datasets[ls.Dataset])
	}
}

// hit returns the line point nearest to pos, or else the bar under it.
func (cb *Combo) hit(pos math32.Vector2) *plot.HitRegion {
	if hr := cb.nearestPoint(pos); hr != nil && hr.Data.Kind == plot.HitPoint {
		return hr
	}
	return cb.Hits.HitTest(pos)
}

func (cb *Combo) MouseMove(pos math32.Vector2) bool {
	cb.Build()
	return cb.setHovered(hitData(cb.hit(pos)))
}

func (cb *Combo) MouseDown(pos math32.Vector2) *plot.HitData {
	cb.Build()
	return cb.click(hitData(cb.hit(pos)))
}
