// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"testing"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flows = plot.NewChordData([]string{"A", "B", "C", "D"}, [][]float64{
	{0, 5, 3, 2},
	{4, 0, 6, 1},
	{1, 7, 0, 3},
	{2, 2, 8, 0},
})

func TestChordConservation(t *testing.T) {
	for _, sorted := range []bool{false, true} {
		groups, ribbons := ChordLayout(flows, -math32.HalfPi, 0.04, sorted, colors.PaletteChart)
		require.Len(t, groups, 4)
		require.Len(t, ribbons, 12)

		span := float32(0)
		for i := range groups {
			g := &groups[i]
			span += g.Span()
			src := float32(0)
			for _, r := range ribbons {
				if r.Source != i {
					continue
				}
				src += r.SourceEnd - r.SourceStart
				assert.GreaterOrEqual(t, r.SourceStart, g.Start-1e-5)
				assert.LessOrEqual(t, r.SourceEnd, g.End+1e-5)
			}
			assert.InDelta(t, g.Span(), src, 1e-4, "group %d sorted %v", i, sorted)
		}
		assert.InDelta(t, math32.TwoPi-4*0.04, span, 1e-4)
		assert.InDelta(t, -math32.HalfPi, groups[0].Start, 1e-6)
		assert.InDelta(t, groups[0].End+0.04, groups[1].Start, 1e-5)
	}
}

func TestChordPacking(t *testing.T) {
	_, ribbons := ChordLayout(flows, 0, 0.04, false, colors.PaletteChart)
	// matrix order: B, C, D from group A, each after the previous
	assert.Equal(t, 1, ribbons[0].Target)
	assert.InDelta(t, ribbons[0].SourceEnd, ribbons[1].SourceStart, 1e-5)
	assert.InDelta(t, ribbons[1].SourceEnd, ribbons[2].SourceStart, 1e-5)

	_, sorted := ChordLayout(flows, 0, 0.04, true, colors.PaletteChart)
	// largest flow from A (to B) still first, then C, then D: values 5, 3, 2
	assert.Less(t, sorted[0].SourceStart, sorted[1].SourceStart)
	// group B: flows 4 (A), 6 (C), 1 (D); C is packed first
	var toA, toC Ribbon
	for _, r := range sorted {
		if r.Source == 1 && r.Target == 0 {
			toA = r
		}
		if r.Source == 1 && r.Target == 2 {
			toC = r
		}
	}
	assert.Less(t, toC.SourceStart, toA.SourceStart)
	assert.InDelta(t, toC.SourceEnd, toA.SourceStart, 1e-5)
}

func TestChordDegenerate(t *testing.T) {
	g, r := ChordLayout(&plot.ChordData{}, 0, 0.04, false, colors.PaletteChart)
	assert.Nil(t, g)
	assert.Nil(t, r)
	g, _ = ChordLayout(plot.NewChordData(nil, [][]float64{{0, 0}, {0, -1}}), 0, 0.04, false, colors.PaletteChart)
	assert.Nil(t, g)
}

func TestRibbonPolygon(t *testing.T) {
	r := &Ribbon{SourceStart: 0, SourceEnd: 0.5, TargetStart: 2, TargetEnd: 2.5}
	c := math32.Vec2(100, 100)
	pg := RibbonPolygon(c, 50, r, false)
	assert.Len(t, pg, 4*RibbonSegments)
	assert.InDelta(t, 50, pg[0].DistanceTo(c), 1e-3)

	dpg := RibbonPolygon(c, 50, r, true)
	assert.Len(t, dpg, 3*RibbonSegments+RibbonSegments/2)
	// the directed target end is 30% of the width
	tgt := dpg[2*RibbonSegments]
	tend := dpg[2*RibbonSegments+RibbonSegments/2]
	assert.InDelta(t, 2*50*math32.Sin(0.15/2), tgt.DistanceTo(tend), 1e-3)
}

func TestChordChart(t *testing.T) {
	ch := NewChord()
	ch.SetChordData(plot.NewChordData(nil, [][]float64{
		{0, 10, 0},
		{0, 0, 0},
		{0, 0, 10},
	}))
	plot.Apply(ch, nil, nil, chartArea, 0)
	ch.SkipAnimation()
	ch.Build()
	require.Len(t, ch.Groups, 3)
	require.Len(t, ch.Ribbons, 2)
	assert.Len(t, ch.Arcs, 2)
	assert.Len(t, ch.Shapes, 2)
	assert.InDelta(t, ch.Polar.OuterRadius*0.92, ch.Polar.InnerRadius, 1e-3)

	g := ch.Groups[0]
	mid := (g.Start + g.End) / 2
	assert.Equal(t, 0, ch.GroupAt(ch.Polar.MidPoint(mid)))
	assert.True(t, ch.MouseMove(ch.Polar.MidPoint(mid)))
	assert.Equal(t, &plot.HitData{Kind: plot.HitSlice, Index: 0}, ch.Hovered())

	base := ch.Shapes[0].Fill.Color.A
	inRibbon := ch.Polar.PolarToPixel(mid, ch.Polar.InnerRadius*0.9)
	assert.True(t, ch.MouseMove(inRibbon))
	assert.Equal(t, &plot.HitData{Kind: plot.HitRibbon, Dataset: 0, Index: 1}, ch.Hovered())
	ch.Build()
	assert.Greater(t, ch.Shapes[0].Fill.Color.A, base)

	assert.Equal(t, "Group 2", ch.LegendItems()[1].Label)

	rec := &plot.Recorder{}
	ch.Draw(rec)
	assert.Len(t, rec.Arcs, 2)
	assert.NotEmpty(t, rec.Triangles)
}

func TestChordFromData(t *testing.T) {
	dt := plot.NewData("x", "y").
		AddDataset(plot.NewDataset("x").SetValues(0, 3)).
		AddDataset(plot.NewDataset("y").SetValues(1, 0))
	ch := NewChord()
	applyStill(ch, dt, nil)
	require.Len(t, ch.Groups, 2)
	assert.Equal(t, "x", ch.Groups[0].Label)
	assert.Equal(t, 3.0, ch.Groups[0].Value)
	assert.InDelta(t, 3*ch.Groups[1].Span(), ch.Groups[0].Span(), 1e-4)
}
