// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// PointShape is the laid out geometry of one scatter point or bubble.
type PointShape struct {
	Dataset int
	Index   int

	// Pos is the center, in pixels.
	Pos math32.Vector2

	// Radius is the animated radius.
	Radius float32

	Style plot.PointStyles
	Fill  plot.Fill
}

// Scatter is a scatter chart, drawing a marker at the (x, y) of each
// point on two linear axes, or a bubble chart if Bubble is set, with
// the marker radius following the r value of each point.
type Scatter struct {
	cartesian

	// Bubble sizes the markers by the r values.
	Bubble bool

	// PointRadius is the marker radius of scatter points.
	PointRadius float32

	// MinRadius and MaxRadius are the range bubble radii are mapped to.
	MinRadius, MaxRadius float32

	// Points are the markers of the last Build.
	Points []PointShape
}

// NewScatter returns a new scatter chart.
func NewScatter() *Scatter {
	s := &Scatter{PointRadius: 6, MinRadius: 5, MaxRadius: 40}
	s.init()
	return s
}

// NewBubble returns a new bubble chart.
func NewBubble() *Scatter {
	s := NewScatter()
	s.Bubble = true
	return s
}

// SetRadiusRange sets the range of bubble radii.
func (s *Scatter) SetRadiusRange(mn, mx float32) *Scatter {
	s.MinRadius, s.MaxRadius = mn, mx
	return s
}

// Layout sets up linear scales for the x and y data in the given area.
func (s *Scatter) Layout(area math32.Box2) {
	s.chart.Layout(area)
	xr, xok := s.Data.XExtent()
	yr, yok := s.Data.YExtent()
	s.Coord.SetXScale(linearScale(&s.Options.Scales.X, xr, xok)).SetYScale(linearScale(&s.Options.Scales.Y, yr, yok))
	s.Coord.Update(area)
}

// maxR returns the largest r value, r defaulting to 1.
func (s *Scatter) maxR() float64 {
	mx := 0.0
	for _, ds := range s.Data.Datasets {
		for i := range ds.Data {
			mx = max(mx, plot.Positive(ds.Data[i].RadiusOr(1)))
		}
	}
	return mx
}

// BubbleRadius returns the radius for r value r, mapped linearly
// from 0..maxR to MinRadius..MaxRadius.
func (s *Scatter) BubbleRadius(r, maxR float64) float32 {
	if maxR <= 0 {
		return s.MinRadius
	}
	return s.MinRadius + float32(r/maxR)*(s.MaxRadius-s.MinRadius)
}

// Build lays out the markers at the current animation progress,
// which scales their radii, and registers their hit regions.
func (s *Scatter) Build() {
	s.Points = s.Points[:0]
	s.Hits.Clear()
	prog := float32(s.Progress())
	maxR := s.maxR()
	grad := s.Options.Style.Gradient
	for d, ds := range s.Data.Datasets {
		if ds.Hidden {
			continue
		}
		clr := s.color(ds, d)
		if s.Bubble && colors.IsNil(ds.Background) {
			clr = colors.WithAlpha(clr, 0.6)
		}
		for i := range ds.Data {
			p := &ds.Data[i]
			if !plot.IsFinite(p.XOr(i)) || !plot.IsFinite(p.Y) {
				continue
			}
			pos := s.Coord.DataToPixel(p.XOr(i), p.Y)
			r := s.PointRadius
			hitR := 2*r + 5
			if s.Bubble {
				r = s.BubbleRadius(plot.Positive(p.RadiusOr(1)), maxR)
				hitR = r
			}
			c := clr
			ar := r * prog
			if s.isHovered(plot.HitPoint, d, i) {
				if s.Bubble {
					ar *= 1.1
					c = colors.Lighten(c, 0.1)
				} else {
					ar *= 1.5
					c = colors.Lighten(c, 0.15)
				}
			}
			fill := plot.Solid(c)
			if grad {
				fill = plot.RadialGradient(pos, ar, colors.Lighten(c, 0.4), c)
			}
			s.Points = append(s.Points, PointShape{Dataset: d, Index: i, Pos: pos, Radius: ar, Style: ds.PointStyle, Fill: fill})
			s.Hits.Register(math32.B2(pos.X-hitR, pos.Y-hitR, pos.X+hitR, pos.Y+hitR), plot.HitData{Kind: plot.HitPoint, Dataset: d, Index: i})
		}
	}
}

// hit returns the region of the point nearest to pos
// within its hit radius, if pos is in the chart area.
func (s *Scatter) hit(pos math32.Vector2) *plot.HitRegion {
	if !s.Coord.ContainsPixel(pos) {
		return nil
	}
	var best *plot.HitRegion
	bd := float32(math.MaxFloat32)
	for i := range s.Hits.Regions {
		hr := &s.Hits.Regions[i]
		d := hr.Rect.Center().DistanceTo(pos)
		if d < hr.Rect.Size().X/2 && d < bd {
			best, bd = hr, d
		}
	}
	return best
}

func (s *Scatter) Draw(pt plot.Painter) {
	s.Build()
	s.drawGrid(pt, &s.Options.Scales.Y, false)
	s.drawGrid(pt, &s.Options.Scales.X, true)
	s.drawAxes(pt, true, true)
	for _, p := range s.Points {
		if p.Radius <= 0 {
			continue
		}
		if s.Bubble {
			pt.Circle(p.Pos, p.Radius, p.Fill)
			continue
		}
		plot.DrawShape(pt, p.Pos, p.Radius, p.Style, p.Fill, 1)
	}
}

func (s *Scatter) MouseMove(pos math32.Vector2) bool {
	s.Build()
	return s.setHovered(hitData(s.hit(pos)))
}

func (s *Scatter) MouseDown(pos math32.Vector2) *plot.HitData {
	s.Build()
	return s.click(hitData(s.hit(pos)))
}
