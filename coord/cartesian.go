// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord provides the coordinate systems charts are laid out in:
// [Cartesian] for x/y axis charts and [Polar] for radial charts.
package coord

import (
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/scale"
)

// Sides holds a value for each side of a rectangle.
type Sides struct {
	Left, Top, Right, Bottom float32
}

// NewSides returns [Sides] with the same value on every side.
func NewSides(v float32) Sides {
	return Sides{v, v, v, v}
}

// AxisPositions are the sides of the chart area an axis can be drawn on.
type AxisPositions int32 //enums:enum -trim-prefix Axis

const (
	AxisLeft AxisPositions = iota
	AxisRight
	AxisTop
	AxisBottom
)

// AxisInfo describes one axis ready for drawing.
type AxisInfo struct {
	Position AxisPositions
	Ticks    []scale.Tick
	Line     math32.Line2
}

// Cartesian is an x/y coordinate system made of two scales
// and the chart area they map onto.
type Cartesian struct {

	// Total is the full rectangle given to the chart.
	Total math32.Box2

	// Area is the plotting area, which is Total inset by Padding.
	Area math32.Box2

	// X is the horizontal scale.
	X scale.Scale

	// Y is the vertical scale. Its pixel range runs from the
	// bottom of Area to the top, so larger values are higher.
	Y scale.Scale

	// Padding is the space reserved around Area for axis labels.
	Padding Sides
}

// NewCartesian returns a coordinate system with a category x scale,
// a begin-at-zero linear y scale, and the default axis padding.
func NewCartesian() *Cartesian {
	return &Cartesian{
		X:       scale.FromCategory(scale.NewCategory()),
		Y:       scale.FromLinear(scale.NewLinear().SetBeginAtZero(true)),
		Padding: Sides{Left: 50, Top: 20, Right: 20, Bottom: 30},
	}
}

// SetXScale sets the x scale.
func (c *Cartesian) SetXScale(s scale.Scale) *Cartesian {
	c.X = s
	return c
}

// SetYScale sets the y scale.
func (c *Cartesian) SetYScale(s scale.Scale) *Cartesian {
	c.Y = s
	return c
}

// SetPadding sets the padding on each side of the chart area.
func (c *Cartesian) SetPadding(left, top, right, bottom float32) *Cartesian {
	c.Padding = Sides{left, top, right, bottom}
	return c
}

// Update recomputes the chart area for the given total rectangle
// and pushes the new pixel ranges into both scales.
func (c *Cartesian) Update(total math32.Box2) {
	c.Total = total
	c.Area = math32.B2(
		total.Min.X+c.Padding.Left, total.Min.Y+c.Padding.Top,
		total.Max.X-c.Padding.Right, total.Max.Y-c.Padding.Bottom)
	c.X.SetPixelRange(float64(c.Area.Min.X), float64(c.Area.Max.X))
	c.Y.SetPixelRange(float64(c.Area.Max.Y), float64(c.Area.Min.Y))
}

// SetDataRanges sets the data ranges of both scales.
func (c *Cartesian) SetDataRanges(xmin, xmax, ymin, ymax float64) {
	c.X.SetDataRange(xmin, xmax)
	c.Y.SetDataRange(ymin, ymax)
}

// SetXDataRange sets the x data range.
func (c *Cartesian) SetXDataRange(mn, mx float64) { c.X.SetDataRange(mn, mx) }

// SetYDataRange sets the y data range.
func (c *Cartesian) SetYDataRange(mn, mx float64) { c.Y.SetDataRange(mn, mx) }

// DataToPixel returns the pixel position of data point (x, y).
func (c *Cartesian) DataToPixel(x, y float64) math32.Vector2 {
	return math32.Vec2(float32(c.X.PixelForValue(x)), float32(c.Y.PixelForValue(y)))
}

// PixelToData returns the data values at pixel position p.
func (c *Cartesian) PixelToData(p math32.Vector2) (x, y float64) {
	return c.X.ValueForPixel(float64(p.X)), c.Y.ValueForPixel(float64(p.Y))
}

// XPixel returns the x pixel for data value v.
func (c *Cartesian) XPixel(v float64) float32 { return float32(c.X.PixelForValue(v)) }

// YPixel returns the y pixel for data value v.
func (c *Cartesian) YPixel(v float64) float32 { return float32(c.Y.PixelForValue(v)) }

// ContainsPixel returns whether p is inside the chart area, edges included.
func (c *Cartesian) ContainsPixel(p math32.Vector2) bool {
	return c.Area.ContainsPoint(p)
}

// XTicks returns the ticks of the x scale.
func (c *Cartesian) XTicks(opts *scale.TickOptions) []scale.Tick { return c.X.Ticks(opts) }

// YTicks returns the ticks of the y scale.
func (c *Cartesian) YTicks(opts *scale.TickOptions) []scale.Tick { return c.Y.Ticks(opts) }

// AxisLine returns the line along the given side of the chart area.
// Horizontal lines run left to right, vertical ones bottom to top.
func (c *Cartesian) AxisLine(pos AxisPositions) math32.Line2 {
	a := c.Area
	switch pos {
	case AxisRight:
		return math32.NewLine2(math32.Vec2(a.Max.X, a.Max.Y), math32.Vec2(a.Max.X, a.Min.Y))
	case AxisTop:
		return math32.NewLine2(math32.Vec2(a.Min.X, a.Min.Y), math32.Vec2(a.Max.X, a.Min.Y))
	case AxisBottom:
		return math32.NewLine2(math32.Vec2(a.Min.X, a.Max.Y), math32.Vec2(a.Max.X, a.Max.Y))
	default:
		return math32.NewLine2(math32.Vec2(a.Min.X, a.Max.Y), math32.Vec2(a.Min.X, a.Min.Y))
	}
}

// Axis returns the axis drawn on the given side, with ticks from
// the y scale for the left and right sides, else the x scale.
func (c *Cartesian) Axis(pos AxisPositions, opts *scale.TickOptions) AxisInfo {
	ai := AxisInfo{Position: pos, Line: c.AxisLine(pos)}
	switch pos {
	case AxisLeft, AxisRight:
		ai.Ticks = c.YTicks(opts)
	default:
		ai.Ticks = c.XTicks(opts)
	}
	return ai
}

// HorizontalGridLine returns the grid line across the chart area at data value y.
func (c *Cartesian) HorizontalGridLine(y float64) math32.Line2 {
	py := c.YPixel(y)
	return math32.NewLine2(math32.Vec2(c.Area.Min.X, py), math32.Vec2(c.Area.Max.X, py))
}

// VerticalGridLine returns the grid line down the chart area at data value x.
func (c *Cartesian) VerticalGridLine(x float64) math32.Line2 {
	px := c.XPixel(x)
	return math32.NewLine2(math32.Vec2(px, c.Area.Min.Y), math32.Vec2(px, c.Area.Max.Y))
}

// BarWidth returns the width of a bar taking pct of its band. For
// linear x scales the band is the area width over the data span.
func (c *Cartesian) BarWidth(pct float64) float32 {
	if c.X.Kind == scale.KindCategory && c.X.Category != nil {
		return float32(c.X.Category.BarWidth(pct))
	}
	db := c.X.DataBounds()
	n := max(db.Max-db.Min, 1)
	band := float64(c.Area.Size().X) / n
	return float32(band * scale.Clamp(pct, 0.1, 1))
}
