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

// Segment is one segment of a polar area chart. All segments have
// the same angle; the radius follows the value.
type Segment struct {
	Index      int
	Start, End float32

	// Ratio is the value as a fraction of the largest value.
	Ratio float64

	Color color.RGBA
}

// PolarSegments returns the segments of the given values, with
// equal angles in the given polar system and radii relative to the
// largest positive value. There are no segments if no value is positive.
func PolarSegments(pc *coord.Polar, values []float64, pal colors.Palettes) []Segment {
	n := len(values)
	mx := 0.0
	for _, v := range values {
		mx = max(mx, plot.Positive(v))
	}
	if n == 0 || mx <= 0 {
		return nil
	}
	segs := make([]Segment, n)
	for i, v := range values {
		segs[i] = Segment{
			Index: i,
			Start: pc.ValueToAngle(float32(i) / float32(n)),
			End:   pc.ValueToAngle(float32(i+1) / float32(n)),
			Ratio: plot.Positive(v) / mx,
			Color: pal.At(i),
		}
	}
	return segs
}

// SegmentProgress returns the progress of segment i of n at the
// overall progress, with the segments animating one after the other,
// each starting before the previous one ends by the overlap fraction
// of its duration.
func SegmentProgress(progress float64, i, n int, overlap float64) float64 {
	if n <= 0 {
		return progress
	}
	dur := 1 / (float64(n)*(1-overlap) + overlap)
	start := float64(i) * dur * (1 - overlap)
	end := start + dur
	switch {
	case progress <= start:
		return 0
	case progress >= end || progress >= 1:
		return 1
	}
	return (progress - start) / (end - start)
}

// PolarArea is a polar area chart of the first dataset.
type PolarArea struct {
	chart

	// Polar is the coordinate system, set up by Layout.
	Polar *coord.Polar

	// Padding is the space around the chart, in pixels.
	Padding float32

	// Overlap is the fraction of a segment's animation that
	// overlaps the one before it.
	Overlap float64

	// Segments are computed by Layout.
	Segments []Segment

	// Arcs are the wedges of the last Build.
	Arcs []ArcShape
}

// NewPolarArea returns a new polar area chart.
func NewPolarArea() *PolarArea {
	pa := &PolarArea{Overlap: 0.3}
	pa.init()
	pa.Polar = coord.NewPolar()
	return pa
}

func (pa *PolarArea) Layout(area math32.Box2) {
	pa.chart.Layout(area)
	pa.Polar.Update(area, pa.Padding)
	pa.Segments = nil
	if ds := pa.Data.Dataset(0); ds != nil {
		pa.Segments = PolarSegments(pa.Polar, ds.Values(), pa.Options.Style.Palette)
	}
}

// Build lays out the wedges at the current animation progress.
func (pa *PolarArea) Build() {
	pa.Arcs = pa.Arcs[:0]
	prog := pa.Progress()
	n := len(pa.Segments)
	for i, s := range pa.Segments {
		lp := SegmentProgress(prog, i, n, pa.Overlap)
		if lp <= 0 {
			continue
		}
		r := float32(s.Ratio*lp) * pa.Polar.OuterRadius
		if r < 1 {
			continue
		}
		c := s.Color
		if pa.isHovered(plot.HitSlice, 0, i) {
			r += 5
			c = colors.Lighten(c, 0.1)
		}
		fill := plot.Solid(c)
		if pa.Options.Style.Gradient {
			fill = plot.RadialGradient(pa.Polar.Center, r, colors.Lighten(c, 0.4), c)
		}
		pa.Arcs = append(pa.Arcs, ArcShape{Index: i, Center: pa.Polar.Center, Start: s.Start, End: s.End, Outer: r, Fill: fill})
	}
}

// SegmentAt returns the index of the segment under pos, within its
// full radius, or -1.
func (pa *PolarArea) SegmentAt(pos math32.Vector2) int {
	a, dist := pa.Polar.PixelToPolar(pos)
	if dist > pa.Polar.OuterRadius {
		return -1
	}
	for i, s := range pa.Segments {
		if coord.AngleInSpan(a, s.Start, s.End) && dist <= float32(s.Ratio)*pa.Polar.OuterRadius {
			return i
		}
	}
	return -1
}

func (pa *PolarArea) hit(pos math32.Vector2) *plot.HitData {
	i := pa.SegmentAt(pos)
	if i < 0 {
		return nil
	}
	return &plot.HitData{Kind: plot.HitSlice, Index: i}
}

func (pa *PolarArea) Draw(pt plot.Painter) {
	pa.Build()
	for _, a := range pa.Arcs {
		pt.Arc(a.Center, a.Start, a.End, a.Inner, a.Outer, a.Fill)
	}
}

func (pa *PolarArea) MouseMove(pos math32.Vector2) bool {
	return pa.setHovered(pa.hit(pos))
}

func (pa *PolarArea) MouseDown(pos math32.Vector2) *plot.HitData {
	return pa.click(pa.hit(pos))
}

// LegendItems returns one legend item per segment.
func (pa *PolarArea) LegendItems() []plot.LegendItem {
	return plot.LegendFromLabels(categoryLabels(pa.Data), pa.Options.Style.Palette)
}
