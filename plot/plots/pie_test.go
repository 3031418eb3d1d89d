// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"
	"testing"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pieData() *plot.Data {
	return plot.NewData("Red", "Blue", "Yellow", "Green", "Purple").
		AddDataset(plot.NewDataset("Votes").SetValues(300, 50, 100, 80, 120))
}

func TestPieSlicesPartition(t *testing.T) {
	sl := PieSlices([]string{"a", "b"}, []float64{300, 50, 100, 80, 120}, colors.PaletteChart)
	require.Len(t, sl, 5)
	sum := 0.0
	for i, s := range sl {
		sum += s.Percentage
		if i+1 < len(sl) {
			assert.Equal(t, s.End, sl[i+1].Start)
		}
	}
	assert.InDelta(t, 1, sum, 1e-12)
	assert.Equal(t, 0.0, sl[0].Start)
	assert.Equal(t, 1.0, sl[4].End)
	assert.InDelta(t, 300.0/650, sl[0].Percentage, 1e-12)
	assert.Equal(t, "b", sl[1].Label)
	assert.Equal(t, "Slice 3", sl[2].Label)
	assert.Equal(t, colors.PaletteChart.At(2), sl[2].Color)
}

func TestPieSlicesDegenerate(t *testing.T) {
	assert.Nil(t, PieSlices(nil, nil, colors.PaletteChart))
	assert.Nil(t, PieSlices(nil, []float64{0, -3}, colors.PaletteChart))

	sl := PieSlices(nil, []float64{10, -5, 10}, colors.PaletteChart)
	require.Len(t, sl, 3)
	assert.Equal(t, 0.0, sl[1].Percentage)
	assert.Equal(t, sl[1].Start, sl[1].End)
	assert.InDelta(t, 0.5, sl[2].Start, 1e-12)
}

func TestPieHitTest(t *testing.T) {
	p := NewPie()
	applyStill(p, pieData(), nil)
	require.Len(t, p.Slices, 5)
	assert.Equal(t, float32(130), p.Polar.OuterRadius)

	for i, s := range p.Slices {
		pos := p.Polar.PolarToPixel(p.Polar.SliceMidAngle(float32(s.Start), float32(s.End)), 60)
		assert.Equal(t, i, p.SliceAt(pos), "slice %d", i)
	}
	assert.Equal(t, -1, p.SliceAt(math32.Vec2(1, 1)))
	assert.Equal(t, 0, p.SliceAt(p.Polar.Center))

	d := NewDoughnut()
	applyStill(d, pieData(), nil)
	assert.Equal(t, float32(65), d.Polar.InnerRadius)
	assert.Equal(t, -1, d.SliceAt(d.Polar.Center))
}

func TestPieHover(t *testing.T) {
	p := NewPie()
	applyStill(p, pieData(), nil)
	s := p.Slices[1]
	mid := p.Polar.SliceMidAngle(float32(s.Start), float32(s.End))
	pos := p.Polar.PolarToPixel(mid, 100)

	assert.True(t, p.MouseMove(pos))
	assert.Equal(t, &plot.HitData{Kind: plot.HitSlice, Index: 1}, p.Hovered())
	p.Build()
	require.Len(t, p.Arcs, 5)
	assert.Equal(t, p.Polar.Center, p.Arcs[0].Center)
	assert.InDelta(t, 10, p.Arcs[1].Center.DistanceTo(p.Polar.Center), 1e-3)

	hd := p.MouseDown(pos)
	require.NotNil(t, hd)
	assert.Equal(t, 1, hd.Index)

	items := p.LegendItems()
	require.Len(t, items, 5)
	assert.Equal(t, "Blue", items[1].Label)
}

func TestHalfDoughnut(t *testing.T) {
	d := NewDoughnut().SetRotation(-math32.Pi).SetCircumference(math32.Pi)
	applyStill(d, pieData(), nil)
	d.Build()
	require.Len(t, d.Arcs, 5)
	assert.InDelta(t, -math32.Pi, d.Arcs[0].Start, 1e-5)
	assert.InDelta(t, 0, d.Arcs[4].End, 1e-5)

	s := d.Slices[0]
	mid := d.Polar.SliceMidAngle(float32(s.Start), float32(s.End))
	assert.Equal(t, 0, d.SliceAt(d.Polar.MidPoint(mid)))
	// the lower half is empty
	assert.Equal(t, -1, d.SliceAt(d.Polar.MidPoint(math32.HalfPi)))
}

func TestPieAnimation(t *testing.T) {
	p := NewPie()
	o := plot.NewOptions()
	o.Animation.Easing = 0
	plot.Apply(p, pieData(), o, chartArea, 0)
	p.Build()
	assert.Empty(t, p.Arcs)

	p.Update(0.2)
	p.Build()
	require.Len(t, p.Arcs, 5)
	for i, a := range p.Arcs {
		s := p.Slices[i]
		full := float32(s.End-s.Start) * math32.TwoPi
		assert.InDelta(t, p.Polar.ValueToAngle(float32(s.Start)), a.Start, 1e-5)
		assert.InDelta(t, full/2, a.End-a.Start, 1e-4)
	}

	rec := &plot.Recorder{}
	p.Draw(rec)
	assert.Len(t, rec.Arcs, 5)
}

func TestPolarAreaSegments(t *testing.T) {
	pa := NewPolarArea()
	applyStill(pa, pieData(), nil)
	require.Len(t, pa.Segments, 5)
	for i, s := range pa.Segments {
		assert.InDelta(t, math32.TwoPi/5, s.End-s.Start, 1e-5)
		assert.InDelta(t, -math32.HalfPi+float32(i)*math32.TwoPi/5, s.Start, 1e-5)
	}
	assert.Equal(t, 1.0, pa.Segments[0].Ratio)
	assert.InDelta(t, 50.0/300, pa.Segments[1].Ratio, 1e-12)

	pa.Build()
	require.Len(t, pa.Arcs, 5)
	assert.Equal(t, pa.Polar.OuterRadius, pa.Arcs[0].Outer)
	assert.Equal(t, float32(0), pa.Arcs[0].Inner)

	s := pa.Segments[2]
	mid := (s.Start + s.End) / 2
	assert.Equal(t, 2, pa.SegmentAt(pa.Polar.PolarToPixel(mid, 10)))
	assert.Equal(t, -1, pa.SegmentAt(pa.Polar.PolarToPixel(mid, pa.Polar.OuterRadius-1)))

	assert.Nil(t, PolarSegments(pa.Polar, []float64{0, -1}, colors.PaletteChart))
}

func TestSegmentProgress(t *testing.T) {
	n := 5
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, SegmentProgress(0, i, n, 0.3))
		assert.Equal(t, 1.0, SegmentProgress(1, i, n, 0.3))
	}
	// segments cascade: earlier ones are always ahead
	for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		for i := 1; i < n; i++ {
			assert.GreaterOrEqual(t, SegmentProgress(p, i-1, n, 0.3), SegmentProgress(p, i, n, 0.3))
		}
	}
	// with overlap, the next segment starts before the previous one ends
	dur := 1 / (float64(n)*0.7 + 0.3)
	p := dur * 0.9
	assert.Greater(t, SegmentProgress(p, 1, n, 0.3), 0.0)
	assert.Less(t, SegmentProgress(p, 0, n, 0.3), 1.0)
	assert.Less(t, SegmentProgress(0.99, n-1, n, 0.3), 1.0)
}

func TestRadar(t *testing.T) {
	dt := plot.NewData("a", "b", "c", "d", "e").
		AddDataset(plot.NewDataset("x").SetValues(10, 20, 30, 40, 50)).
		AddDataset(plot.NewDataset("y").SetValues(50, 40, 30, 20, 100))
	r := NewRadar()
	applyStill(r, dt, nil)
	assert.Equal(t, 5, r.NumAxes())
	assert.Equal(t, 100.0, r.Max)
	assert.InDelta(t, -math32.HalfPi, r.AxisAngle(0), 1e-6)

	r.Build()
	require.Len(t, r.Series, 2)
	tip := r.Series[1].Polygon[4]
	assert.InDelta(t, r.Polar.OuterRadius, tip.DistanceTo(r.Polar.Center), 1e-3)
	half := r.Series[1].Polygon[0]
	assert.InDelta(t, r.Polar.OuterRadius/2, half.DistanceTo(r.Polar.Center), 1e-3)

	rec := &plot.Recorder{}
	r.Draw(rec)
	// grid: 5 levels of 5 edges, plus 5 spokes; then 5 edges per dataset
	assert.Len(t, rec.Lines, 5*5+5+2*5)
	assert.Len(t, rec.Triangles, 2*5)
	assert.Len(t, rec.Circles, 2*5)

	assert.True(t, r.MouseMove(tip))
	assert.Equal(t, &plot.HitData{Kind: plot.HitPoint, Dataset: 1, Index: 4}, r.Hovered())

	two := NewRadar()
	applyStill(two, plot.NewData("a", "b").AddDataset(plot.NewDataset("x").SetValues(1, 2)), nil)
	two.Build()
	assert.Empty(t, two.Series)
}

func TestPolarNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	sl := PieSlices(nil, []float64{1, nan, 3, inf}, colors.PaletteChart)
	require.Len(t, sl, 4)
	assert.Equal(t, 0.25, sl[0].Percentage)
	assert.Equal(t, 0.0, sl[1].Percentage)
	assert.Equal(t, 0.75, sl[2].Percentage)
	assert.Equal(t, 0.0, sl[3].Percentage)
	assert.Equal(t, 1.0, sl[3].End)

	pa := NewPolarArea()
	applyStill(pa, pieData(), nil)
	segs := PolarSegments(pa.Polar, []float64{1, nan, 3}, colors.PaletteChart)
	require.Len(t, segs, 3)
	assert.InDelta(t, 1.0/3, segs[0].Ratio, 1e-12)
	assert.Equal(t, 0.0, segs[1].Ratio)
	assert.Equal(t, 1.0, segs[2].Ratio)
	assert.Nil(t, PolarSegments(pa.Polar, []float64{nan, inf}, colors.PaletteChart))

	r := NewRadar()
	applyStill(r, plot.NewData("a", "b", "c", "d").
		AddDataset(plot.NewDataset("x").SetValues(10, nan, 30, inf)), nil)
	assert.Equal(t, 30.0, r.Max)
	r.Build()
	require.Len(t, r.Series, 1)
	for _, p := range r.Series[0].Polygon {
		assert.True(t, plot.IsFinite(float64(p.X)) && plot.IsFinite(float64(p.Y)))
	}
	assert.InDelta(t, 0, r.Series[0].Polygon[1].DistanceTo(r.Polar.Center), 1e-4)
	assert.InDelta(t, r.Polar.OuterRadius, r.Series[0].Polygon[2].DistanceTo(r.Polar.Center), 1e-3)
}
