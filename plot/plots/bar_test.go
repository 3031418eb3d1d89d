// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"math"
	"testing"

	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chartArea = math32.B2(0, 0, 400, 300)

func salesData() *plot.Data {
	return plot.NewData("Jan", "Feb", "Mar", "Apr", "May", "Jun").
		AddDataset(plot.NewDataset("Sales").SetValues(65, 59, 80, 81, 56, 72))
}

// applyStill applies the data and options and completes the animation.
func applyStill(ch plot.Chart, dt *plot.Data, o *plot.Options) {
	plot.Apply(ch, dt, o, chartArea, 0)
	ch.Update(1000)
}

func TestBarEndToEnd(t *testing.T) {
	b := NewBar()
	applyStill(b, salesData(), plot.NewOptions().SetBeginAtZero(true))
	b.Build()

	assert.Equal(t, 0.0, b.Coord.Y.DataBounds().Min)
	require.Len(t, b.Bars, 6)
	h81 := b.Bars[3].Rect.Size().Y
	h56 := b.Bars[4].Rect.Size().Y
	assert.Greater(t, h81, h56)
	for _, br := range b.Bars {
		assert.InDelta(t, b.Coord.YPixel(0), br.Rect.Max.Y, 0.01)
		assert.True(t, b.Coord.Area.ContainsPoint(br.Rect.Center()))
	}
	assert.Len(t, b.Hits.Regions, 6)

	rec := &plot.Recorder{}
	b.Draw(rec)
	assert.Len(t, rec.Bars, 6)
	assert.NotEmpty(t, rec.Lines)
}

func TestStackedMax(t *testing.T) {
	dt := plot.NewData("a", "b", "c").
		AddDataset(plot.NewDataset("x").SetValues(10, 20, -5)).
		AddDataset(plot.NewDataset("y").SetValues(5, 5, 5)).
		AddDataset(plot.NewDataset("z").SetValues(100, 100, 100).SetHidden(true))
	assert.Equal(t, 25.0, StackedMax(dt))
	assert.Equal(t, 0.0, StackedMax(plot.NewData()))
}

func TestBarStacked(t *testing.T) {
	dt := plot.NewData("a", "b").
		AddDataset(plot.NewDataset("x").SetValues(10, 20)).
		AddDataset(plot.NewDataset("y").SetValues(30, 40))
	b := NewBar()
	applyStill(b, dt, plot.NewOptions().SetStacked(true))
	b.Build()
	require.Len(t, b.Bars, 4)
	// for each category, the second dataset sits on the first
	for i := 0; i < 4; i += 2 {
		lo, hi := b.Bars[i], b.Bars[i+1]
		assert.Equal(t, lo.Index, hi.Index)
		assert.InDelta(t, lo.Rect.Min.Y, hi.Rect.Max.Y, 1e-3)
		assert.Equal(t, lo.Rect.Min.X, hi.Rect.Min.X)
	}
	assert.LessOrEqual(t, b.Coord.Y.DataBounds().Max, 70.0+20)
	assert.GreaterOrEqual(t, b.Coord.Y.DataBounds().Max, 60.0)
}

func TestBarGrouped(t *testing.T) {
	dt := plot.NewData("a", "b", "c").
		AddDataset(plot.NewDataset("x").SetValues(10, 20, 30)).
		AddDataset(plot.NewDataset("y").SetValues(30, 20, 10))
	b := NewBar()
	applyStill(b, dt, nil)
	b.Build()
	require.Len(t, b.Bars, 6)
	for i := 0; i < 3; i++ {
		l, r := b.Bars[i], b.Bars[3+i]
		assert.Equal(t, 0, l.Dataset)
		assert.Equal(t, 1, r.Dataset)
		assert.LessOrEqual(t, l.Rect.Max.X, r.Rect.Min.X+1e-3)
	}

	// hidden datasets give their slot to the others
	w2 := b.Bars[0].Rect.Size().X
	dt.ToggleDataset(1)
	b.Layout(chartArea)
	b.Build()
	require.Len(t, b.Bars, 3)
	assert.InDelta(t, 2*w2, b.Bars[0].Rect.Size().X, 1e-3)
}

func TestHorizontalBar(t *testing.T) {
	b := NewHorizontalBar()
	applyStill(b, salesData(), plot.NewOptions().SetBeginAtZero(true))
	b.Build()
	require.Len(t, b.Bars, 6)
	assert.Less(t, b.Bars[0].Rect.Center().Y, b.Bars[1].Rect.Center().Y)
	assert.Greater(t, b.Bars[3].Rect.Size().X, b.Bars[4].Rect.Size().X)
	for _, br := range b.Bars {
		assert.InDelta(t, b.Coord.XPixel(0), br.Rect.Min.X, 0.01)
		assert.Equal(t, float32(0), br.Radius)
	}
}

func TestBarAnimation(t *testing.T) {
	b := NewBar()
	o := plot.NewOptions().SetBeginAtZero(true)
	o.Animation.Easing = 0
	plot.Apply(b, salesData(), o, chartArea, 0)
	assert.True(t, b.IsAnimating())

	b.Update(0)
	b.Build()
	assert.Empty(t, b.Bars)

	b.Update(0.2)
	b.Build()
	require.Len(t, b.Bars, 6)
	half := b.Bars[3].Rect.Size().Y

	assert.False(t, b.Update(0.4))
	assert.False(t, b.IsAnimating())
	b.Build()
	assert.InDelta(t, 2*half, b.Bars[3].Rect.Size().Y, 0.5)
}

func TestBarStagger(t *testing.T) {
	b := NewBar()
	o := plot.NewOptions().SetStyle(func(s *plot.Style) { s.Stagger = true })
	plot.Apply(b, salesData(), o, chartArea, 0)
	require.NotNil(t, b.stagger)
	assert.Equal(t, 6, b.stagger.Len())

	assert.True(t, b.Update(0.05))
	assert.Greater(t, b.barProgress(0, 0), 0.0)
	assert.Equal(t, 0.0, b.barProgress(0, 5))

	b.SkipAnimation()
	assert.False(t, b.IsAnimating())
	assert.Equal(t, 1.0, b.barProgress(0, 5))
}

func TestBarRun(t *testing.T) {
	b := NewBar()
	clock := plot.NewFrameClock(0)
	plot.Apply(b, salesData(), nil, chartArea, clock.Now())
	rec := &plot.Recorder{}
	frames := plot.Run(b, clock, rec, 0)
	assert.Greater(t, frames, 10)
	assert.Equal(t, frames-1, clock.Frames)
	assert.False(t, b.IsAnimating())
	assert.NotEmpty(t, rec.Bars)
}

func TestBarHover(t *testing.T) {
	b := NewBar()
	applyStill(b, salesData(), nil)
	b.Build()
	c := b.Bars[3].Rect.Center()
	base := b.Bars[3].Fill.Color

	assert.True(t, b.MouseMove(c))
	assert.False(t, b.MouseMove(c))
	assert.Equal(t, &plot.HitData{Kind: plot.HitBar, Dataset: 0, Index: 3}, b.Hovered())
	b.Build()
	assert.NotEqual(t, base, b.Bars[3].Fill.Color)

	hd := b.MouseDown(c)
	require.NotNil(t, hd)
	assert.Equal(t, 3, hd.Index)

	assert.True(t, b.MouseMove(math32.Vec2(1, 1)))
	assert.Nil(t, b.Hovered())
	assert.Nil(t, b.MouseDown(math32.Vec2(1, 1)))
}

func TestBarFloating(t *testing.T) {
	dt := plot.NewData("a", "b").
		AddDataset(plot.NewDataset("range").SetFloating([2]float64{10, 40}, [2]float64{20, 30}))
	b := NewBar()
	applyStill(b, dt, nil)
	b.Build()
	require.Len(t, b.Bars, 2)
	assert.InDelta(t, b.Coord.YPixel(10), b.Bars[0].Rect.Max.Y, 0.01)
	assert.InDelta(t, b.Coord.YPixel(40), b.Bars[0].Rect.Min.Y, 0.01)
	assert.InDelta(t, b.Coord.YPixel(20), b.Bars[1].Rect.Max.Y, 0.01)
	assert.InDelta(t, b.Coord.YPixel(30), b.Bars[1].Rect.Min.Y, 0.01)
}

func TestHorizontalBarNegative(t *testing.T) {
	dt := plot.NewData("a", "b").AddDataset(plot.NewDataset("x").SetValues(-20, 30))
	b := NewHorizontalBar()
	applyStill(b, dt, nil)
	b.Build()
	require.Len(t, b.Bars, 2)
	zero := b.Coord.XPixel(0)
	assert.InDelta(t, zero, b.Bars[0].Rect.Max.X, 0.01)
	assert.InDelta(t, b.Coord.XPixel(-20), b.Bars[0].Rect.Min.X, 0.01)
	assert.Less(t, b.Bars[0].Rect.Min.X, zero)
	assert.InDelta(t, zero, b.Bars[1].Rect.Min.X, 0.01)
	assert.Greater(t, b.Bars[1].Rect.Max.X, zero)
}

func TestBarStackedStyle(t *testing.T) {
	dt := plot.NewData("a", "b").
		AddDataset(plot.NewDataset("x").SetValues(10, 20).SetBarThickness(10).SetBarBorderRadius(3)).
		AddDataset(plot.NewDataset("y").SetValues(30, 40))
	b := NewBar()
	applyStill(b, dt, plot.NewOptions().SetStacked(true))
	b.Build()
	require.Len(t, b.Bars, 4)
	for i := 0; i < 4; i += 2 {
		x, y := b.Bars[i], b.Bars[i+1]
		assert.InDelta(t, 10, x.Rect.Size().X, 1e-3)
		assert.Equal(t, float32(3), x.Radius)
		assert.Greater(t, y.Rect.Size().X, float32(10))
		assert.Equal(t, float32(0), y.Radius)
		assert.InDelta(t, x.Rect.Center().X, y.Rect.Center().X, 1e-3)
	}
}

// assertFinite asserts that all the coordinates of r are finite.
func assertFinite(t *testing.T, r math32.Box2) {
	t.Helper()
	for _, v := range []float32{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		assert.True(t, plot.IsFinite(float64(v)), "box %v", r)
	}
}

func TestBarNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	dt := plot.NewData("a", "b", "c").
		AddDataset(plot.NewDataset("x").SetValues(10, nan, 30)).
		AddDataset(plot.NewDataset("y").SetValues(5, inf, 5))
	assert.Equal(t, 35.0, StackedMax(dt))

	b := NewBar()
	applyStill(b, dt, plot.NewOptions().SetStacked(true))
	b.Build()
	assert.GreaterOrEqual(t, b.Coord.Y.DataBounds().Max, 35.0)
	assert.True(t, plot.IsFinite(b.Coord.Y.DataBounds().Max))
	require.Len(t, b.Bars, 4)
	for _, br := range b.Bars {
		assert.NotEqual(t, 1, br.Index)
		assertFinite(t, br.Rect)
	}

	g := NewBar()
	applyStill(g, dt, plot.NewOptions().SetBeginAtZero(true))
	g.Build()
	require.Len(t, g.Bars, 4)
	for _, br := range g.Bars {
		assert.NotEqual(t, 1, br.Index)
		assertFinite(t, br.Rect)
	}

	f := NewBar()
	applyStill(f, plot.NewData("a", "b").AddDataset(plot.NewDataset("r").
		SetPoints(plot.FloatingPoint(nan, 5), plot.PointY(8))), nil)
	f.Build()
	require.Len(t, f.Bars, 1)
	assert.Equal(t, 1, f.Bars[0].Index)
}
