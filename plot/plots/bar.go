// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"image/color"

	"cogentcore.org/charts/anim"
	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/math32/minmax"
	"cogentcore.org/charts/plot"
	"cogentcore.org/charts/scale"
)

// BarRect is the laid out geometry of one bar.
type BarRect struct {
	Dataset int
	Index   int

	// Rect is the bar rectangle, in pixels.
	Rect math32.Box2

	// Value is the animated value the bar reaches.
	Value float64

	// Radius is the top corner radius.
	Radius float32

	Fill plot.Fill
}

// Bar is a bar chart. Each category of the x axis has one bar per
// dataset, grouped side by side or stacked on top of each other.
// Horizontal bar charts have the categories on the y axis instead,
// with the first category at the top.
//
// The value axis is configured by the y scale options in either
// orientation.
type Bar struct {
	cartesian

	// Horizontal draws the bars horizontally.
	Horizontal bool

	// BarPercent is the fraction of the category band the bars fill.
	BarPercent float64

	// Radius is the top corner radius of grouped vertical bars.
	Radius float32

	// Bars are the bars of the last Build.
	Bars []BarRect

	// stagger has one animator per dataset and index,
	// if the stagger style is on.
	stagger *anim.Manager

	// isBar returns whether a dataset is drawn as bars; nil is all.
	isBar func(d int) bool
}

// NewBar returns a new vertical bar chart.
func NewBar() *Bar {
	b := &Bar{BarPercent: 0.8, Radius: 4}
	b.init()
	return b
}

// NewHorizontalBar returns a new horizontal bar chart.
func NewHorizontalBar() *Bar {
	b := NewBar()
	b.Horizontal = true
	return b
}

// SetBarPercent sets the fraction of the category band the bars fill,
// clamped to [0.1, 1].
func (b *Bar) SetBarPercent(v float64) *Bar {
	b.BarPercent = scale.Clamp(v, 0.1, 1)
	return b
}

// Stacked returns whether the bars are stacked.
func (b *Bar) Stacked() bool {
	return b.Options.Scales.Y.Stacked
}

// StackedMax returns the largest sum over the categories of the
// non-negative values of the visible datasets.
func StackedMax(dt *plot.Data) float64 {
	mx := 0.0
	for i, end := 0, maxLen(dt); i < end; i++ {
		sum := 0.0
		for _, ds := range dt.Datasets {
			if ds.Hidden || i >= len(ds.Data) {
				continue
			}
			sum += plot.Positive(ds.Data[i].Y)
		}
		mx = max(mx, sum)
	}
	return mx
}

// Layout sets up the scales for the data in the given area.
func (b *Bar) Layout(area math32.Box2) {
	b.layout(area, b.Stacked())
}

// layout sets up the scales, with the value axis spanning the
// stacked sums if stacked, else the data extent.
func (b *Bar) layout(area math32.Box2, stacked bool) {
	b.chart.Layout(area)
	cat := scale.FromCategory(scale.NewCategory(categoryLabels(b.Data)...))
	var val scale.Scale
	if stacked {
		val = linearScale(&b.Options.Scales.Y, minmax.F64{Min: 0, Max: StackedMax(b.Data)}, true)
	} else {
		r, ok := b.Data.YExtent()
		val = linearScale(&b.Options.Scales.Y, r, ok)
	}
	if b.Horizontal {
		b.Coord.SetXScale(val).SetYScale(cat)
	} else {
		b.Coord.SetXScale(cat).SetYScale(val)
	}
	b.Coord.Update(area)
	if b.Horizontal {
		b.Coord.Y.SetPixelRange(float64(b.Coord.Area.Min.Y), float64(b.Coord.Area.Max.Y))
	}
}

// ReplayAnimation restarts the animation, with one animator per
// bar delayed by its position if the stagger style is on.
func (b *Bar) ReplayAnimation(now float64) {
	if !b.Options.Style.Stagger {
		b.stagger = nil
		b.chart.ReplayAnimation(now)
		return
	}
	b.animator = nil
	b.stagger = staggerManager(b.Data, b.Options)
	b.stagger.StartAll(now)
}

// staggerManager returns a manager with one animator per dataset
// and index, at index dataset*n + index.
func staggerManager(dt *plot.Data, o *plot.Options) *anim.Manager {
	m := anim.NewManager()
	n := maxLen(dt)
	for d := range dt.Datasets {
		for i := 0; i < n; i++ {
			a := o.Animation.Animator()
			a.SetDelay(a.Delay + anim.Millis(o.Style.StaggerDelay(d, i)))
			m.Add(a)
		}
	}
	return m
}

func (b *Bar) Update(now float64) bool {
	if b.stagger != nil {
		return b.stagger.UpdateAll(now)
	}
	return b.chart.Update(now)
}

func (b *Bar) IsAnimating() bool {
	if b.stagger != nil {
		return b.stagger.IsRunning()
	}
	return b.chart.IsAnimating()
}

func (b *Bar) SkipAnimation() {
	if b.stagger != nil {
		b.stagger.SkipToEnd()
	}
	b.chart.SkipAnimation()
}

// barProgress returns the animation progress of one bar.
func (b *Bar) barProgress(dataset, index int) float64 {
	if b.stagger != nil {
		return b.stagger.Progress(dataset*maxLen(b.Data) + index)
	}
	return b.Progress()
}

// band returns the category scale.
func (b *Bar) band() *scale.Category {
	if b.Horizontal {
		return b.Coord.Y.Category
	}
	return b.Coord.X.Category
}

// valuePixel returns the pixel of a value on the value axis.
func (b *Bar) valuePixel(v float64) float32 {
	if b.Horizontal {
		return b.Coord.XPixel(v)
	}
	return b.Coord.YPixel(v)
}

// barBox returns the rectangle of a bar centered at the band
// position c with the given thickness, between two value pixels.
func (b *Bar) barBox(c, thick, v0, v1 float32) math32.Box2 {
	lo, hi := min(v0, v1), max(v0, v1)
	if b.Horizontal {
		return math32.B2(lo, c-thick/2, hi, c+thick/2)
	}
	return math32.B2(c-thick/2, lo, c+thick/2, hi)
}

// fill returns the fill of a bar, lightened if hovered, with a
// gradient from the base toward a lighter end if the gradient style is on.
func (b *Bar) fill(c color.RGBA, r math32.Box2, hovered bool) plot.Fill {
	if hovered {
		c = colors.Lighten(c, 0.15)
	}
	if !b.Options.Style.Gradient {
		return plot.Solid(c)
	}
	if b.Horizontal {
		return plot.LinearGradient(math32.Vec2(r.Min.X, r.Min.Y), math32.Vec2(r.Max.X, r.Min.Y), c, colors.Lighten(c, 0.3))
	}
	return plot.LinearGradient(math32.Vec2(r.Min.X, r.Max.Y), math32.Vec2(r.Min.X, r.Min.Y), c, colors.Lighten(c, 0.3))
}

// Build lays out the bars at the current animation progress and
// registers their hit regions. Animation scales the values, so
// the bars grow from their base.
func (b *Bar) Build() {
	b.Bars = b.Bars[:0]
	b.Hits.Clear()
	if b.band() == nil || b.band().Len() == 0 {
		return
	}
	if b.Stacked() {
		b.buildStacked()
	} else {
		b.buildGrouped()
	}
	for _, br := range b.Bars {
		b.Hits.Register(br.Rect, plot.HitData{Kind: plot.HitBar, Dataset: br.Dataset, Index: br.Index})
	}
}

// barDatasets returns the indexes of the visible bar datasets.
func (b *Bar) barDatasets() []int {
	var idx []int
	for d, ds := range b.Data.Datasets {
		if !ds.Hidden && (b.isBar == nil || b.isBar(d)) {
			idx = append(idx, d)
		}
	}
	return idx
}

func (b *Bar) buildGrouped() {
	cat := b.band()
	bw := float32(cat.BarWidth(b.BarPercent))
	bars := b.barDatasets()
	nvis := len(bars)
	gw := bw / float32(max(nvis, 1))
	for slot, d := range bars {
		ds := b.Data.Datasets[d]
		th := thickness(ds, gw)
		off := float32(0)
		if nvis > 1 {
			off = -bw/2 + gw/2 + float32(slot)*gw
		}
		radius := b.Radius
		if ds.BarBorderRadius > 0 {
			radius = float32(ds.BarBorderRadius)
		}
		if b.Horizontal {
			radius = 0
		}
		clr := b.color(ds, d)
		for i := range ds.Data {
			p := &ds.Data[i]
			if !plot.IsFinite(p.Y) || !plot.IsFinite(p.Base()) {
				continue
			}
			prog := b.barProgress(d, i)
			v := p.Y * prog
			base := p.Base() * prog
			r := b.barBox(float32(cat.PixelForIndex(i))+off, th, b.valuePixel(base), b.valuePixel(v))
			if b.extent(r) <= 0.5 {
				continue
			}
			b.Bars = append(b.Bars, BarRect{Dataset: d, Index: i, Rect: r, Value: v, Radius: radius,
				Fill: b.fill(clr, r, b.isHovered(plot.HitBar, d, i))})
		}
	}
}

// thickness returns the bar thickness of the dataset, at most avail.
func thickness(ds *plot.Dataset, avail float32) float32 {
	if ds.BarThickness > 0 {
		return min(float32(ds.BarThickness), avail)
	}
	return avail
}

// buildStacked stacks the positive values of each category. Stacked
// segments are square unless the dataset sets a border radius.
func (b *Bar) buildStacked() {
	cat := b.band()
	bw := float32(cat.BarWidth(b.BarPercent))
	for i, end := 0, cat.Len(); i < end; i++ {
		c := float32(cat.PixelForIndex(i))
		cum := 0.0
		for d, ds := range b.Data.Datasets {
			if ds.Hidden || i >= len(ds.Data) {
				continue
			}
			v := plot.Positive(ds.Data[i].Y) * b.barProgress(d, i)
			if v <= 0 {
				continue
			}
			r := b.barBox(c, thickness(ds, bw), b.valuePixel(cum), b.valuePixel(cum+v))
			cum += v
			if b.extent(r) <= 0.5 {
				continue
			}
			radius := float32(0)
			if !b.Horizontal {
				radius = float32(ds.BarBorderRadius)
			}
			b.Bars = append(b.Bars, BarRect{Dataset: d, Index: i, Rect: r, Value: v, Radius: radius,
				Fill: b.fill(b.color(ds, d), r, b.isHovered(plot.HitBar, d, i))})
		}
	}
}

// extent returns the length of the bar along the value axis.
func (b *Bar) extent(r math32.Box2) float32 {
	sz := r.Size()
	if b.Horizontal {
		return sz.X
	}
	return sz.Y
}

func (b *Bar) Draw(pt plot.Painter) {
	b.Build()
	b.drawGrid(pt, &b.Options.Scales.Y, b.Horizontal)
	b.drawAxes(pt, false, b.Horizontal)
	for _, br := range b.Bars {
		pt.Bar(br.Rect, br.Radius, br.Fill)
	}
}

func (b *Bar) MouseMove(pos math32.Vector2) bool {
	b.Build()
	return b.setHovered(hitData(b.Hits.HitTest(pos)))
}

func (b *Bar) MouseDown(pos math32.Vector2) *plot.HitData {
	b.Build()
	return b.click(hitData(b.Hits.HitTest(pos)))
}
