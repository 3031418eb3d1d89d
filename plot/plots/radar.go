// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/coord"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// radarGridColor is the color of the radar grid.
var radarGridColor = colors.FromRGB(204, 204, 204)

// RadarSeries is the laid out polygon of one dataset of a radar chart.
type RadarSeries struct {
	Dataset int

	// Polygon has one vertex per axis.
	Polygon math32.Polygon

	Color color.RGBA
}

// Radar is a radar chart: one axis per label, evenly spaced around
// the circle from 12 o'clock, with a closed polygon per dataset.
// All datasets share the radius scale of the largest value.
type Radar struct {
	chart

	// Polar is the coordinate system, set up by Layout.
	Polar *coord.Polar

	// Padding is the space around the chart, in pixels.
	Padding float32

	// GridLevels is the number of concentric grid polygons.
	GridLevels int

	// ShowGrid draws the grid polygons and spokes.
	ShowGrid bool

	// Fill fills the polygons.
	Fill bool

	// PointRadius is the vertex point radius.
	PointRadius float32

	// FillOpacity is the alpha of the polygon fill.
	FillOpacity float32

	// Max is the largest value over the visible datasets,
	// computed by Layout.
	Max float64

	// Series are the polygons of the last Build.
	Series []RadarSeries
}

// NewRadar returns a new radar chart.
func NewRadar() *Radar {
	r := &Radar{Padding: 20, GridLevels: 5, ShowGrid: true, Fill: true, PointRadius: 4, FillOpacity: 0.3}
	r.init()
	r.Polar = coord.NewPolar()
	return r
}

// NumAxes returns the number of axes: the number of labels,
// or the length of the first dataset if that is longer.
func (r *Radar) NumAxes() int {
	n := len(r.Data.Labels)
	if ds := r.Data.Dataset(0); ds != nil {
		n = max(n, len(ds.Data))
	}
	return n
}

// AxisAngle returns the angle of axis i.
func (r *Radar) AxisAngle(i int) float32 {
	return r.Polar.ValueToAngle(float32(i) / float32(r.NumAxes()))
}

// Point returns the pixel of value v on axis i.
func (r *Radar) Point(i int, v float64) math32.Vector2 {
	if r.Max <= 0 {
		return r.Polar.Center
	}
	return r.Polar.PolarToPixel(r.AxisAngle(i), float32(v/r.Max)*r.Polar.OuterRadius)
}

func (r *Radar) Layout(area math32.Box2) {
	r.chart.Layout(area)
	r.Polar.Update(area, r.Padding)
	if r.GridLevels <= 0 {
		r.GridLevels = 5
	}
	r.Max = 0
	for _, ds := range r.Data.Datasets {
		if ds.Hidden {
			continue
		}
		for i := range ds.Data {
			r.Max = max(r.Max, plot.Positive(ds.Data[i].Y))
		}
	}
}

// Build lays out the polygons at the current animation progress,
// which scales the values, and registers the hit regions of the vertices.
// There is nothing to lay out with fewer than 3 axes.
func (r *Radar) Build() {
	r.Series = r.Series[:0]
	r.Hits.Clear()
	n := r.NumAxes()
	if n < 3 {
		return
	}
	prog := r.Progress()
	for d, ds := range r.Data.Datasets {
		if ds.Hidden {
			continue
		}
		rs := RadarSeries{Dataset: d, Color: r.lineColor(ds, d), Polygon: make(math32.Polygon, n)}
		for i := 0; i < n; i++ {
			v := 0.0
			if i < len(ds.Data) && plot.IsFinite(ds.Data[i].Y) {
				v = ds.Data[i].Y
			}
			p := r.Point(i, v*prog)
			rs.Polygon[i] = p
			hr := max(r.PointRadius, 3)
			r.Hits.Register(math32.B2(p.X-hr, p.Y-hr, p.X+hr, p.Y+hr), plot.HitData{Kind: plot.HitPoint, Dataset: d, Index: i})
		}
		r.Series = append(r.Series, rs)
	}
}

func (r *Radar) drawGrid(pt plot.Painter) {
	n := r.NumAxes()
	for lv := 1; lv <= r.GridLevels; lv++ {
		rad := r.Polar.OuterRadius * float32(lv) / float32(r.GridLevels)
		for i := 0; i < n; i++ {
			p1 := r.Polar.PolarToPixel(r.AxisAngle(i), rad)
			p2 := r.Polar.PolarToPixel(r.AxisAngle((i+1)%n), rad)
			pt.Line(p1, p2, 1, radarGridColor)
		}
	}
	for i := 0; i < n; i++ {
		pt.Line(r.Polar.Center, r.Polar.OuterPoint(r.AxisAngle(i)), 1, radarGridColor)
	}
}

// fill returns the polygon fill for the given color.
func (r *Radar) fill(c color.RGBA) plot.Fill {
	if !r.Options.Style.Gradient {
		return plot.Solid(colors.WithAlpha(c, r.FillOpacity))
	}
	return plot.RadialGradient(r.Polar.Center, r.Polar.OuterRadius,
		colors.WithAlpha(colors.Lighten(c, 0.5), r.FillOpacity),
		colors.WithAlpha(colors.Darken(c, 0.2), r.FillOpacity*0.6))
}

func (r *Radar) Draw(pt plot.Painter) {
	r.Build()
	if r.NumAxes() < 3 {
		return
	}
	if r.ShowGrid {
		r.drawGrid(pt)
	}
	for _, rs := range r.Series {
		if r.Fill {
			f := r.fill(rs.Color)
			for _, t := range rs.Polygon.Fan(r.Polar.Center) {
				pt.Triangle(t.A, t.B, t.C, f)
			}
		}
		n := len(rs.Polygon)
		for i := 0; i < n; i++ {
			pt.Line(rs.Polygon[i], rs.Polygon[(i+1)%n], 2, rs.Color)
		}
		if !r.Options.Style.ShowPoints {
			continue
		}
		f := plot.Solid(rs.Color)
		for i, p := range rs.Polygon {
			pr := r.PointRadius
			if r.isHovered(plot.HitPoint, rs.Dataset, i) {
				pr *= 1.5
			}
			pt.Circle(p, pr, f)
		}
	}
}

func (r *Radar) MouseMove(pos math32.Vector2) bool {
	r.Build()
	return r.setHovered(hitData(r.Hits.FindNearest(pos, 10)))
}

func (r *Radar) MouseDown(pos math32.Vector2) *plot.HitData {
	r.Build()
	return r.click(hitData(r.Hits.FindNearest(pos, 10)))
}
