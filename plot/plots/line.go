// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"cogentcore.org/charts/scale"
)

// LineSeries is the laid out geometry of one dataset of a line chart.
type LineSeries struct {
	Dataset int

	// Points are the pixel positions of the visible data points.
	Points []math32.Vector2

	// Path is the polyline drawn through the points.
	Path []math32.Vector2

	// Base is the pixel y of value 0, the baseline of the fill.
	Base float32

	Color color.RGBA
	Width float32

	// Fill fills the area between Path and Base.
	Fill bool

	// PointRadius is the radius of the point markers, 0 for none.
	PointRadius float32
}

// Line is a line chart, with the points of each dataset at the
// category positions of the x axis, joined by straight lines, cubic
// curves or steps.
type Line struct {
	cartesian

	// Width is the line width.
	Width float32

	// Series are the lines of the last Build.
	Series []LineSeries
}

// NewLine returns a new line chart.
func NewLine() *Line {
	ln := &Line{Width: 3}
	ln.init()
	return ln
}

// Layout sets up the scales for the data in the given area.
// Points are on the category boundaries rather than band centers.
func (ln *Line) Layout(area math32.Box2) {
	ln.chart.Layout(area)
	cat := scale.NewCategory(categoryLabels(ln.Data)...).SetOffset(false)
	r, ok := ln.Data.YExtent()
	ln.Coord.SetXScale(scale.FromCategory(cat)).SetYScale(linearScale(&ln.Options.Scales.Y, r, ok))
	ln.Coord.Update(area)
}

// tension returns the tension of the dataset, defaulting to the style tension.
func tension(ds *plot.Dataset, st *plot.Style) float32 {
	if ds.Tension > 0 {
		return float32(ds.Tension)
	}
	return float32(st.Tension)
}

// lineSeries lays out one dataset as a line at the given progress.
// In progressive mode the points are revealed left to right at their
// full value, else the values grow from zero. Non-finite values are
// drawn at zero.
func (c *cartesian) lineSeries(ds *plot.Dataset, d int, prog float64) LineSeries {
	st := &c.Options.Style
	n := len(ds.Data)
	vis := n
	if st.Progressive {
		vis = scale.Clamp(int(math32.Ceil(float32(float64(n)*prog))), 1, n)
	}
	ls := LineSeries{Dataset: d, Color: c.lineColor(ds, d), Base: c.Coord.YPixel(0), Fill: ds.Fill || st.Fill}
	ls.Points = make([]math32.Vector2, vis)
	for i := 0; i < vis; i++ {
		y := ds.Data[i].Y
		if !plot.IsFinite(y) {
			y = 0
		}
		if !st.Progressive {
			y *= prog
		}
		ls.Points[i] = c.Coord.DataToPixel(float64(i), y)
	}
	ls.Path = LinePath(ls.Points, tension(ds, st), st.Monotone, st.Stepped)
	if st.ShowPoints {
		ls.PointRadius = float32(ds.PointRadius)
	}
	return ls
}

// drawSeries draws the fill, line and points of a series.
func (c *cartesian) drawSeries(pt plot.Painter, ls *LineSeries, ds *plot.Dataset) {
	if ls.Fill && len(ls.Path) > 1 {
		fill := plot.Solid(colors.WithAlpha(ls.Color, 0.3))
		if c.Options.Style.Gradient {
			top := ls.Base
			for _, p := range ls.Path {
				top = min(top, p.Y)
			}
			x := ls.Path[0].X
			fill = plot.LinearGradient(math32.Vec2(x, top), math32.Vec2(x, ls.Base),
				colors.WithAlpha(ls.Color, 0.6), colors.WithAlpha(ls.Color, 0.05))
		}
		for i, end := 0, len(ls.Path)-1; i < end; i++ {
			p1, p2 := ls.Path[i], ls.Path[i+1]
			b1, b2 := math32.Vec2(p1.X, ls.Base), math32.Vec2(p2.X, ls.Base)
			pt.Triangle(p1, p2, b1, fill)
			pt.Triangle(p2, b2, b1, fill)
		}
	}
	for i, end := 0, len(ls.Path)-1; i < end; i++ {
		pt.Line(ls.Path[i], ls.Path[i+1], ls.Width, ls.Color)
	}
	if ls.PointRadius <= 0 {
		return
	}
	pc := c.color(ds, ls.Dataset)
	if !colors.IsNil(ds.PointBackground) {
		pc = ds.PointBackground
	}
	fill := plot.Solid(pc)
	for i, p := range ls.Points {
		r := ls.PointRadius
		if c.isHovered(plot.HitPoint, ls.Dataset, i) {
			r *= 1.5
		}
		plot.DrawShape(pt, p, r, ds.PointStyle, fill, float32(ds.PointBorderWidth))
	}
}

// registerPoints registers a hit region around each point of the series.
func (c *cartesian) registerPoints(ls *LineSeries) {
	r := max(ls.PointRadius, 3)
	for i, p := range ls.Points {
		c.Hits.Register(math32.B2(p.X-r, p.Y-r, p.X+r, p.Y+r), plot.HitData{Kind: plot.HitPoint, Dataset: ls.Dataset, Index: i})
	}
}

// nearestPoint returns the hit region of the point nearest to pos
// within 20 pixels, if pos is in the chart area.
func (c *cartesian) nearestPoint(pos math32.Vector2) *plot.HitRegion {
	if !c.Coord.ContainsPixel(pos) {
		return nil
	}
	return c.Hits.FindNearest(pos, 20)
}

// Build lays out the lines at the current animation progress and
// registers the hit regions of their points.
func (ln *Line) Build() {
	ln.Series = ln.Series[:0]
	ln.Hits.Clear()
	prog := ln.Progress()
	for d, ds := range ln.Data.Datasets {
		if ds.Hidden || len(ds.Data) == 0 {
			continue
		}
		ls := ln.lineSeries(ds, d, prog)
		ls.Width = ln.Width
		ln.Series = append(ln.Series, ls)
		ln.registerPoints(&ln.Series[len(ln.Series)-1])
	}
}

func (ln *Line) Draw(pt plot.Painter) {
	ln.Build()
	ln.drawGrid(pt, &ln.Options.Scales.Y, false)
	ln.drawAxes(pt, false, false)
	for i := range ln.Series {
		ls := &ln.Series[i]
		ln.drawSeries(pt, ls, ln.Data.Datasets[ls.Dataset])
	}
}

func (ln *Line) MouseMove(pos math32.Vector2) bool {
	ln.Build()
	return ln.setHovered(hitData(ln.nearestPoint(pos)))
}

func (ln *Line) MouseDown(pos math32.Vector2) *plot.HitData {
	ln.Build()
	return ln.click(hitData(ln.nearestPoint(pos)))
}
