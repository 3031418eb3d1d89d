// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
)

// Legend item geometry, in pixels. Label widths are estimated
// from the number of characters.
const (
	LegendBoxSize   = 12
	LegendSpacing   = 6
	LegendCharWidth = 7
	LegendItemGap   = 16
)

// LegendItem is one entry of a chart legend.
type LegendItem struct {
	Label  string
	Color  color.RGBA
	Hidden bool
}

// Width returns the estimated width of the item: its color box,
// the spacing, the label and the gap to the next item.
func (li *LegendItem) Width() float32 {
	return LegendBoxSize + LegendSpacing + float32(len(li.Label))*LegendCharWidth + LegendItemGap
}

// LegendFromDatasets returns one item per dataset.
func LegendFromDatasets(dt *Data, pal colors.Palettes) []LegendItem {
	items := make([]LegendItem, len(dt.Datasets))
	for i, ds := range dt.Datasets {
		c := ds.Background
		if colors.IsNil(c) {
			c = pal.At(i)
		}
		items[i] = LegendItem{Label: ds.Label, Color: c, Hidden: ds.Hidden}
	}
	return items
}

// LegendFromLabels returns one item per label, colored by index,
// as used by radial charts.
func LegendFromLabels(labels []string, pal colors.Palettes) []LegendItem {
	items := make([]LegendItem, len(labels))
	for i, l := range labels {
		items[i] = LegendItem{Label: l, Color: pal.At(i)}
	}
	return items
}

// LegendBox is the laid out geometry of a [LegendItem].
type LegendBox struct {

	// Index of the item.
	Index int

	// Box is the color box.
	Box math32.Box2

	// Label is the position of the start of the label text,
	// vertically centered on the box.
	Label math32.Vector2

	// Bounds contains the box and the label.
	Bounds math32.Box2
}

// LayoutLegend lays out the items in a row within the given area,
// aligned according to the options, at the top or bottom of the area,
// or in a column on the left or right.
func LayoutLegend(items []LegendItem, area math32.Box2, opts *LegendOptions) []LegendBox {
	if len(items) == 0 {
		return nil
	}
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
		if opts.Reverse {
			order[i] = len(items) - 1 - i
		}
	}
	pad := float32(opts.Labels.Padding)
	boxes := make([]LegendBox, len(items))
	vertical := opts.Position == LegendLeft || opts.Position == LegendRight
	if vertical {
		rowH := float32(LegendBoxSize) + pad
		total := rowH * float32(len(items))
		y := alignOffset(opts.Align, area.Min.Y, area.Max.Y, total)
		for k, i := range order {
			w := items[i].Width()
			x := area.Min.X + pad
			if opts.Position == LegendRight {
				x = area.Max.X - pad - w
			}
			boxes[k] = legendBox(i, x, y+float32(k)*rowH, w)
		}
		return boxes
	}
	total := float32(0)
	for _, it := range items {
		total += it.Width()
	}
	x := alignOffset(opts.Align, area.Min.X, area.Max.X, total)
	y := area.Min.Y + pad
	if opts.Position == LegendBottom {
		y = area.Max.Y - pad - LegendBoxSize
	}
	for k, i := range order {
		w := items[i].Width()
		boxes[k] = legendBox(i, x, y, w)
		x += w
	}
	return boxes
}

func legendBox(i int, x, y, w float32) LegendBox {
	return LegendBox{
		Index:  i,
		Box:    math32.B2(x, y, x+LegendBoxSize, y+LegendBoxSize),
		Label:  math32.Vec2(x+LegendBoxSize+LegendSpacing, y+LegendBoxSize/2),
		Bounds: math32.B2(x, y, x+w-LegendItemGap, y+LegendBoxSize),
	}
}

func alignOffset(a Aligns, lo, hi, size float32) float32 {
	switch a {
	case Start:
		return lo
	case End:
		return hi - size
	}
	return lo + (hi-lo-size)/2
}

// DrawLegend draws the color boxes of the laid out legend; hidden
// items are drawn faded.
func DrawLegend(pt Painter, items []LegendItem, boxes []LegendBox) {
	for _, b := range boxes {
		it := items[b.Index]
		c := it.Color
		if it.Hidden {
			c = colors.WithAlpha(c, 0.3)
		}
		pt.Bar(b.Box, 2, Solid(c))
	}
}

// LegendItemAt returns the index of the item at the given point, or -1.
func LegendItemAt(boxes []LegendBox, pt math32.Vector2) int {
	for _, b := range boxes {
		if b.Bounds.ContainsPoint(pt) {
			return b.Index
		}
	}
	return -1
}
