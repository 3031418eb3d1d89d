// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plots has the chart types: each lays out its data in a
// coordinate system, animates the layout, hit tests it, and draws
// it with a [plot.Painter].
package plots

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"cogentcore.org/charts/anim"
	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/coord"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/math32/minmax"
	"cogentcore.org/charts/plot"
	"cogentcore.org/charts/scale"
)

// Axis line style.
var (
	axisColor = colors.FromRGB(178, 178, 178)
	axisWidth = float32(0.5)
)

// chart has the state shared by every chart type.
type chart struct {

	// Data is the chart data.
	Data *plot.Data

	// Options is the chart's own copy of the options.
	Options *plot.Options

	// Area is the rectangle given to the last Layout.
	Area math32.Box2

	// Hits are the hit regions of the last Build.
	Hits plot.HitTester

	animator *anim.Animator
	hovered  *plot.HitData
}

func (ch *chart) init() {
	ch.Data = plot.NewData()
	ch.Options = plot.NewOptions()
}

// SetData sets the data; nil is empty data.
func (ch *chart) SetData(dt *plot.Data) {
	if dt == nil {
		dt = plot.NewData()
	}
	ch.Data = dt
	ch.hovered = nil
}

// SetOptions sets a deep copy of the options.
func (ch *chart) SetOptions(o *plot.Options) {
	ch.Options = o.Clone()
}

// Layout sets the area the chart is drawn in.
func (ch *chart) Layout(area math32.Box2) {
	ch.Area = area
}

// ReplayAnimation replaces the animator with a new one
// started at the given time.
func (ch *chart) ReplayAnimation(now float64) {
	ch.animator = ch.Options.Animation.Animator()
	ch.animator.Start(now)
}

func (ch *chart) Update(now float64) bool {
	if ch.animator == nil {
		return false
	}
	return ch.animator.Update(now)
}

func (ch *chart) IsAnimating() bool {
	return ch.animator != nil && ch.animator.IsRunning()
}

// Progress returns the eased animation progress,
// which is 1 if no animation was started.
func (ch *chart) Progress() float64 {
	if ch.animator == nil {
		return 1
	}
	return ch.animator.Progress()
}

// SkipAnimation completes the animation.
func (ch *chart) SkipAnimation() {
	if ch.animator != nil {
		ch.animator.SkipToEnd()
	}
}

func (ch *chart) Hovered() *plot.HitData {
	return ch.hovered
}

// isHovered returns whether the given element is hovered.
func (ch *chart) isHovered(kind plot.HitKinds, dataset, index int) bool {
	h := ch.hovered
	return h != nil && h.Kind == kind && h.Dataset == dataset && h.Index == index
}

// hitData returns the data of the region, or nil.
func hitData(hr *plot.HitRegion) *plot.HitData {
	if hr == nil {
		return nil
	}
	d := hr.Data
	return &d
}

// setHovered sets the hovered element, returning whether it changed.
func (ch *chart) setHovered(hd *plot.HitData) bool {
	old := ch.hovered
	ch.hovered = hd
	switch {
	case old == nil && hd == nil:
		return false
	case old == nil || hd == nil:
		return true
	}
	return *old != *hd
}

// click logs the element and returns it.
func (ch *chart) click(hd *plot.HitData) *plot.HitData {
	if hd == nil {
		return nil
	}
	slog.Info("chart element clicked", "element", hd.String(), "kind", hd.Kind, "dataset", hd.Dataset, "index", hd.Index)
	return hd
}

// color returns the fill color of the given dataset,
// falling back on the options palette.
func (ch *chart) color(ds *plot.Dataset, idx int) color.RGBA {
	if !colors.IsNil(ds.Background) {
		return ds.Background
	}
	return ch.Options.Style.Palette.At(idx)
}

// lineColor returns the stroke color of the given dataset,
// falling back on its fill color.
func (ch *chart) lineColor(ds *plot.Dataset, idx int) color.RGBA {
	if !colors.IsNil(ds.Border) {
		return ds.Border
	}
	return ch.color(ds, idx)
}

// LegendItems returns one legend item per dataset.
func (ch *chart) LegendItems() []plot.LegendItem {
	return plot.LegendFromDatasets(ch.Data, ch.Options.Style.Palette)
}

// cartesian is the base of the charts drawn on x/y axes.
type cartesian struct {
	chart

	// Coord is the coordinate system, set up by Layout.
	Coord *coord.Cartesian
}

func (c *cartesian) init() {
	c.chart.init()
	c.Coord = coord.NewCartesian()
}

// drawGrid draws the grid lines of an axis at its ticks: vertical
// lines at the x ticks, or horizontal lines at the y ticks.
func (c *cartesian) drawGrid(pt plot.Painter, ao *plot.AxisOptions, vertical bool) {
	if !ao.Grid.Display || !ao.Grid.DrawOnChartArea {
		return
	}
	w := float32(ao.Grid.Width) * 0.5
	if vertical {
		for _, t := range c.Coord.XTicks(&ao.Ticks) {
			l := c.Coord.VerticalGridLine(t.Value)
			pt.Line(l.Start, l.End, w, ao.Grid.Color)
		}
		return
	}
	for _, t := range c.Coord.YTicks(&ao.Ticks) {
		l := c.Coord.HorizontalGridLine(t.Value)
		pt.Line(l.Start, l.End, w, ao.Grid.Color)
	}
}

// drawAxes draws the x and y axis lines, at the bottom and left of
// the chart area, or through data value 0 for the axes flagged to be
// drawn at zero when 0 is in their range.
func (c *cartesian) drawAxes(pt plot.Painter, xAtZero, yAtZero bool) {
	a := c.Coord.Area
	if c.Options.Scales.X.Display {
		y := a.Max.Y
		if xAtZero {
			if yb := c.Coord.Y.DataBounds(); yb.Min <= 0 && yb.Max >= 0 {
				y = c.Coord.YPixel(0)
			}
		}
		pt.Line(math32.Vec2(a.Min.X, y), math32.Vec2(a.Max.X, y), axisWidth, axisColor)
	}
	if c.Options.Scales.Y.Display {
		x := a.Min.X
		if yAtZero {
			if xb := c.Coord.X.DataBounds(); xb.Min <= 0 && xb.Max >= 0 {
				x = c.Coord.XPixel(0)
			}
		}
		pt.Line(math32.Vec2(x, a.Max.Y), math32.Vec2(x, a.Min.Y), axisWidth, axisColor)
	}
}

// New returns a new chart of the given kind.
func New(kind plot.Kinds) (plot.Chart, error) {
	switch kind {
	case plot.Bar:
		return NewBar(), nil
	case plot.HorizontalBar:
		return NewHorizontalBar(), nil
	case plot.Line:
		return NewLine(), nil
	case plot.Scatter:
		return NewScatter(), nil
	case plot.Bubble:
		return NewBubble(), nil
	case plot.Pie:
		return NewPie(), nil
	case plot.Doughnut:
		return NewDoughnut(), nil
	case plot.PolarArea:
		return NewPolarArea(), nil
	case plot.Radar:
		return NewRadar(), nil
	case plot.Chord:
		return NewChord(), nil
	case plot.Combo:
		return NewCombo(), nil
	}
	return nil, fmt.Errorf("plots.New %v: %w", kind, plot.ErrUnknownChart)
}

// categoryLabels returns the data labels, extended with index
// numbers up to the length of the longest dataset.
func categoryLabels(dt *plot.Data) []string {
	n := max(len(dt.Labels), maxLen(dt))
	labels := make([]string, n)
	for i := range labels {
		if i < len(dt.Labels) {
			labels[i] = dt.Labels[i]
		} else {
			labels[i] = strconv.Itoa(i)
		}
	}
	return labels
}

// linearScale returns a linear scale configured by the axis options,
// with the given data range, or 0..1 if ok is false.
func linearScale(ao *plot.AxisOptions, r minmax.F64, ok bool) scale.Scale {
	ls := scale.NewLinear().SetBeginAtZero(ao.BeginAtZero).SetReverse(ao.Reverse)
	if !ok {
		r = minmax.F64{Min: 0, Max: 1}
	}
	ls.SetDataRange(ao.Bounds(r.Min, r.Max))
	return scale.FromLinear(ls)
}

// maxLen returns the length of the longest dataset.
func maxLen(dt *plot.Data) int {
	n := 0
	for _, ds := range dt.Datasets {
		n = max(n, len(ds.Data))
	}
	return n
}
