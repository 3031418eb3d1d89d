// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/coord"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// Slice is one slice of a pie chart. Start and End are normalized
// values in [0, 1] of the full turn.
type Slice struct {
	Index int
	Label string
	Value float64

	// Percentage is Value as a fraction of the total.
	Percentage float64

	Start, End float64
	Color      color.RGBA
}

// PieSlices returns the slices of the given values, which partition
// [0, 1] in order, in proportion to the values. Values that are not
// positive get empty slices. There are no slices if the total is 0.
func PieSlices(labels []string, values []float64, pal colors.Palettes) []Slice {
	total := 0.0
	for _, v := range values {
		total += plot.Positive(v)
	}
	if total <= 0 {
		return nil
	}
	slices := make([]Slice, len(values))
	cum := 0.0
	for i, v := range values {
		v = plot.Positive(v)
		s := &slices[i]
		s.Index = i
		s.Value = v
		s.Percentage = v / total
		s.Start = cum
		cum += s.Percentage
		s.End = cum
		s.Color = pal.At(i)
		if i < len(labels) {
			s.Label = labels[i]
		} else {
			s.Label = fmt.Sprintf("Slice %d", i+1)
		}
	}
	slices[len(slices)-1].End = 1
	return slices
}

// ArcShape is the laid out geometry of one annulus wedge.
// Angles are in radians.
type ArcShape struct {
	Index        int
	Center       math32.Vector2
	Start, End   float32
	Inner, Outer float32
	Fill         plot.Fill
}

// Pie is a pie chart of the first dataset, or a doughnut chart
// if Doughnut is set.
type Pie struct {
	chart

	// Polar is the coordinate system, set up by Layout.
	Polar *coord.Polar

	// Doughnut cuts out the center.
	Doughnut bool

	// InnerRatio is the doughnut cutout radius as a fraction
	// of the outer radius.
	InnerRatio float32

	// Padding is the space around the pie, in pixels.
	Padding float32

	// Rotation is the angle the first slice starts at, in radians.
	Rotation float32

	// Circumference is the angle covered by all the slices,
	// in radians. A half doughnut has Pi.
	Circumference float32

	// Slices are computed by Layout.
	Slices []Slice

	// Arcs are the wedges of the last Build.
	Arcs []ArcShape
}

// NewPie returns a new pie chart.
func NewPie() *Pie {
	p := &Pie{InnerRatio: 0.5, Padding: 20, Rotation: -math32.HalfPi, Circumference: math32.TwoPi}
	p.init()
	p.Polar = coord.NewPolar()
	return p
}

// NewDoughnut returns a new doughnut chart.
func NewDoughnut() *Pie {
	p := NewPie()
	p.Doughnut = true
	return p
}

// SetRotation sets the start angle of the first slice, in radians.
func (p *Pie) SetRotation(a float32) *Pie {
	p.Rotation = a
	return p
}

// SetCircumference sets the angle covered by all the slices,
// clamped to (0, 2*Pi].
func (p *Pie) SetCircumference(a float32) *Pie {
	p.Circumference = math32.Clamp(a, 0.01, math32.TwoPi)
	return p
}

func (p *Pie) Layout(area math32.Box2) {
	p.chart.Layout(area)
	p.Polar.Update(area, p.Padding)
	p.Polar.SetStartAngle(p.Rotation).SetTotalAngle(p.Circumference)
	if p.Doughnut {
		p.Polar.SetInnerRadiusRatio(p.InnerRatio)
	} else {
		p.Polar.SetInnerRadiusRatio(0)
	}
	p.Slices = nil
	if ds := p.Data.Dataset(0); ds != nil {
		p.Slices = PieSlices(p.Data.Labels, ds.Values(), p.Options.Style.Palette)
		for i := range p.Slices {
			s := &p.Slices[i]
			if i < len(ds.Data) && ds.Data[i].Label != "" && i >= len(p.Data.Labels) {
				s.Label = ds.Data[i].Label
			}
		}
	}
}

// hoverOffset returns the offset of a hovered slice.
func (p *Pie) hoverOffset() float32 {
	if ds := p.Data.Dataset(0); ds != nil {
		return float32(ds.HoverOffset)
	}
	return 10
}

// Build lays out the wedges at the current animation progress, each
// slice sweeping out from its start. A hovered slice is moved out
// along its middle angle and lightened.
func (p *Pie) Build() {
	p.Arcs = p.Arcs[:0]
	p.Hits.Clear()
	prog := p.Progress()
	st := &p.Options.Style
	for i, s := range p.Slices {
		end := s.Start + (s.End-s.Start)*prog
		if end-s.Start < 0.001 {
			continue
		}
		a := p.Polar.ArcSegment(float32(s.Start), float32(end))
		center := p.Polar.Center
		c := s.Color
		if p.isHovered(plot.HitSlice, 0, i) {
			center = math32.Vector2Polar(center, a.MidAngle(), p.hoverOffset())
			c = colors.Lighten(c, 0.1)
		}
		fill := plot.Solid(c)
		if st.Gradient {
			inner, outer := colors.Lighten(c, 0.3), colors.Darken(c, 0.1)
			if st.GradientKind == plot.GradientAngular {
				fill = plot.AngularGradient(center, a.StartAngle, a.EndAngle, inner, outer)
			} else {
				fill = plot.RadialGradient(center, a.OuterRadius, inner, outer)
			}
		}
		p.Arcs = append(p.Arcs, ArcShape{Index: i, Center: center, Start: a.StartAngle, End: a.EndAngle,
			Inner: a.InnerRadius, Outer: a.OuterRadius, Fill: fill})
	}
}

// SliceAt returns the index of the slice under pos, or -1.
func (p *Pie) SliceAt(pos math32.Vector2) int {
	if !p.Polar.Contains(pos) {
		return -1
	}
	a, _ := p.Polar.PixelToPolar(pos)
	v := float64(p.Polar.AngleToValue(a))
	for i, s := range p.Slices {
		if v >= s.Start && v < s.End {
			return i
		}
	}
	return -1
}

func (p *Pie) hit(pos math32.Vector2) *plot.HitData {
	i := p.SliceAt(pos)
	if i < 0 {
		return nil
	}
	return &plot.HitData{Kind: plot.HitSlice, Dataset: 0, Index: i}
}

func (p *Pie) Draw(pt plot.Painter) {
	p.Build()
	for _, a := range p.Arcs {
		pt.Arc(a.Center, a.Start, a.End, a.Inner, a.Outer, a.Fill)
	}
}

func (p *Pie) MouseMove(pos math32.Vector2) bool {
	return p.setHovered(p.hit(pos))
}

func (p *Pie) MouseDown(pos math32.Vector2) *plot.HitData {
	hd := p.click(p.hit(pos))
	if hd != nil {
		s := p.Slices[hd.Index]
		slog.Info("slice clicked", "label", s.Label, "percent", math32.Round(float32(s.Percentage*100)))
	}
	return hd
}

// LegendItems returns one legend item per slice.
func (p *Pie) LegendItems() []plot.LegendItem {
	labels := make([]string, len(p.Slices))
	for i, s := range p.Slices {
		labels[i] = s.Label
	}
	return plot.LegendFromLabels(labels, p.Options.Style.Palette)
}
