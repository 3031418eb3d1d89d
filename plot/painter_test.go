// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = colors.FromRGB(0, 0, 0)
	white = colors.FromRGB(255, 255, 255)
)

func TestFillAt(t *testing.T) {
	s := Solid(black)
	assert.False(t, s.IsGradient())
	assert.Equal(t, black, s.At(math32.Vec2(100, 100)))

	lg := LinearGradient(math32.Vec2(0, 0), math32.Vec2(10, 0), black, white)
	assert.True(t, lg.IsGradient())
	assert.Equal(t, black, lg.At(math32.Vec2(-5, 3)))
	assert.Equal(t, white, lg.At(math32.Vec2(10, 3)))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, lg.At(math32.Vec2(5, 7)))

	rg := RadialGradient(math32.Vec2(0, 0), 10, black, white)
	assert.Equal(t, black, rg.At(math32.Vec2(0, 0)))
	assert.Equal(t, white, rg.At(math32.Vec2(0, 20)))

	ag := AngularGradient(math32.Vec2(0, 0), 0, math32.Pi, black, white)
	assert.Equal(t, black, ag.At(math32.Vec2(10, 0)))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, ag.At(math32.Vec2(0, 10)))
}

func TestDrawShape(t *testing.T) {
	rec := &Recorder{}
	p := math32.Vec2(10, 10)
	for _, st := range PointStylesValues() {
		DrawShape(rec, p, 4, st, Solid(black), 1)
	}
	assert.Len(t, rec.Circles, 1)
	assert.Len(t, rec.Bars, 1)
	assert.Len(t, rec.Triangles, 3)
	assert.Len(t, rec.Lines, 2)
	assert.Equal(t, 7, rec.Count())
	rec.Reset()
	assert.Equal(t, 0, rec.Count())
}

func TestLegend(t *testing.T) {
	dt := NewData().
		AddDataset(NewDataset("ab")).
		AddDataset(NewDataset("cd").SetColor(white).SetHidden(true))
	items := LegendFromDatasets(dt, colors.PaletteChart)
	require.Len(t, items, 2)
	assert.Equal(t, colors.PaletteChart.At(0), items[0].Color)
	assert.Equal(t, white, items[1].Color)
	assert.True(t, items[1].Hidden)
	assert.Equal(t, float32(48), items[0].Width())

	opts := &NewOptions().Legend
	area := math32.B2(0, 0, 400, 300)
	boxes := LayoutLegend(items, area, opts)
	require.Len(t, boxes, 2)
	assert.Equal(t, math32.B2(152, 10, 164, 22), boxes[0].Box)
	assert.Equal(t, float32(200), boxes[1].Box.Min.X)
	assert.Equal(t, 0, LegendItemAt(boxes, math32.Vec2(153, 15)))
	assert.Equal(t, 1, LegendItemAt(boxes, math32.Vec2(205, 15)))
	assert.Equal(t, -1, LegendItemAt(boxes, math32.Vec2(5, 200)))

	opts.Position = LegendRight
	opts.Reverse = true
	boxes = LayoutLegend(items, area, opts)
	assert.Equal(t, 1, boxes[0].Index)
	assert.Equal(t, float32(400-10-48), boxes[0].Box.Min.X)
	assert.Less(t, boxes[0].Box.Min.Y, boxes[1].Box.Min.Y)

	rec := &Recorder{}
	DrawLegend(rec, items, boxes)
	require.Len(t, rec.Bars, 2)
	assert.Less(t, rec.Bars[0].Fill.Color.A, uint8(255))

	assert.Nil(t, LayoutLegend(nil, area, opts))
	assert.Len(t, LegendFromLabels([]string{"x", "y", "z"}, colors.PaletteChart), 3)
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(0)
	assert.Equal(t, time.Second/60, c.Interval)
	assert.Equal(t, 0.0, c.Now())
	c.RequestFrame()
	c.RequestFrame()
	assert.Equal(t, 2, c.Frames)
	assert.InDelta(t, 2.0/60, c.Now(), 1e-6)

	assert.Equal(t, 10*time.Millisecond, NewFrameClock(10*time.Millisecond).Interval)
}
