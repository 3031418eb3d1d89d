// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
)

// Painter is the set of drawing primitives a chart draws with.
// It is implemented by the host rendering layer; all geometry
// is in pixels, with Y growing downward and angles in radians
// measured clockwise from the positive X axis.
type Painter interface {

	// Bar fills the given rectangle, rounding its top corners
	// by the given radius.
	Bar(rect math32.Box2, radius float32, fill Fill)

	// Line strokes a line segment with the given width.
	Line(from, to math32.Vector2, width float32, clr color.RGBA)

	// Circle fills a circle.
	Circle(center math32.Vector2, radius float32, fill Fill)

	// Triangle fills a triangle.
	Triangle(a, b, c math32.Vector2, fill Fill)

	// Arc fills the annulus wedge between the inner and outer radius,
	// from the start angle sweeping to the end angle.
	Arc(center math32.Vector2, start, end, inner, outer float32, fill Fill)
}

// GradientKinds are the kinds of gradient a [Fill] can have.
type GradientKinds int32 //enums:enum -trim-prefix Gradient

const (
	// GradientNone is a solid color fill.
	GradientNone GradientKinds = iota

	// GradientLinear blends from Color at P0 to Color2 at P1.
	GradientLinear

	// GradientRadial blends from Color at center P0 to Color2 at radius R1.
	GradientRadial

	// GradientAngular blends from Color at angle R0 to Color2 at angle R1
	// around center P0.
	GradientAngular
)

// Fill is a solid color or a two color gradient.
type Fill struct {
	Color    color.RGBA
	Color2   color.RGBA
	Gradient GradientKinds
	P0, P1   math32.Vector2
	R0, R1   float32
}

// Solid returns a solid color [Fill].
func Solid(c color.RGBA) Fill {
	return Fill{Color: c}
}

// LinearGradient returns a [Fill] blending from c0 at p0 to c1 at p1.
func LinearGradient(p0, p1 math32.Vector2, c0, c1 color.RGBA) Fill {
	return Fill{Color: c0, Color2: c1, Gradient: GradientLinear, P0: p0, P1: p1}
}

// RadialGradient returns a [Fill] blending from c0 at the center
// to c1 at the radius.
func RadialGradient(center math32.Vector2, radius float32, c0, c1 color.RGBA) Fill {
	return Fill{Color: c0, Color2: c1, Gradient: GradientRadial, P0: center, R1: radius}
}

// AngularGradient returns a [Fill] blending from c0 at the start angle
// to c1 at the end angle around the center.
func AngularGradient(center math32.Vector2, start, end float32, c0, c1 color.RGBA) Fill {
	return Fill{Color: c0, Color2: c1, Gradient: GradientAngular, P0: center, R0: start, R1: end}
}

// IsGradient returns whether the fill is a gradient.
func (f *Fill) IsGradient() bool {
	return f.Gradient != GradientNone
}

// At returns the color of the fill at the given point.
func (f *Fill) At(p math32.Vector2) color.RGBA {
	switch f.Gradient {
	case GradientLinear:
		d := f.P1.Sub(f.P0)
		l2 := d.LengthSquared()
		if l2 == 0 {
			return f.Color
		}
		return colors.Lerp(f.Color, f.Color2, p.Sub(f.P0).Dot(d)/l2)
	case GradientRadial:
		if f.R1 <= 0 {
			return f.Color2
		}
		return colors.Lerp(f.Color, f.Color2, p.DistanceTo(f.P0)/f.R1)
	case GradientAngular:
		span := f.R1 - f.R0
		if span == 0 {
			return f.Color
		}
		a := math32.NormalizeAngle(p.Sub(f.P0).Angle() - f.R0)
		return colors.Lerp(f.Color, f.Color2, a/span)
	}
	return f.Color
}

// Recorder is a [Painter] that records the primitives drawn,
// for inspecting chart geometry without rendering it.
type Recorder struct {
	Bars      []RecordedBar
	Lines     []RecordedLine
	Circles   []RecordedCircle
	Triangles []RecordedTriangle
	Arcs      []RecordedArc
}

// RecordedBar is a [Painter.Bar] call.
type RecordedBar struct {
	Rect   math32.Box2
	Radius float32
	Fill   Fill
}

// RecordedLine is a [Painter.Line] call.
type RecordedLine struct {
	From, To math32.Vector2
	Width    float32
	Color    color.RGBA
}

// RecordedCircle is a [Painter.Circle] call.
type RecordedCircle struct {
	Center math32.Vector2
	Radius float32
	Fill   Fill
}

// RecordedTriangle is a [Painter.Triangle] call.
type RecordedTriangle struct {
	A, B, C math32.Vector2
	Fill    Fill
}

// RecordedArc is a [Painter.Arc] call.
type RecordedArc struct {
	Center       math32.Vector2
	Start, End   float32
	Inner, Outer float32
	Fill         Fill
}

func (r *Recorder) Bar(rect math32.Box2, radius float32, fill Fill) {
	r.Bars = append(r.Bars, RecordedBar{rect, radius, fill})
}

func (r *Recorder) Line(from, to math32.Vector2, width float32, clr color.RGBA) {
	r.Lines = append(r.Lines, RecordedLine{from, to, width, clr})
}

func (r *Recorder) Circle(center math32.Vector2, radius float32, fill Fill) {
	r.Circles = append(r.Circles, RecordedCircle{center, radius, fill})
}

func (r *Recorder) Triangle(a, b, c math32.Vector2, fill Fill) {
	r.Triangles = append(r.Triangles, RecordedTriangle{a, b, c, fill})
}

func (r *Recorder) Arc(center math32.Vector2, start, end, inner, outer float32, fill Fill) {
	r.Arcs = append(r.Arcs, RecordedArc{center, start, end, inner, outer, fill})
}

// Reset clears all recorded primitives.
func (r *Recorder) Reset() {
	*r = Recorder{}
}

// Count returns the total number of recorded primitives.
func (r *Recorder) Count() int {
	return len(r.Bars) + len(r.Lines) + len(r.Circles) + len(r.Triangles) + len(r.Arcs)
}
