// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"cogentcore.org/charts/math32"
)

// Polar is a radial coordinate system. Angles are in radians,
// measured clockwise on screen from the positive x axis.
type Polar struct {

	// Center is the pixel center.
	Center math32.Vector2

	// OuterRadius is the radius of the outer edge.
	OuterRadius float32

	// InnerRadius is the radius of the doughnut cutout, 0 for none.
	InnerRadius float32

	// InnerRatio is InnerRadius as a fraction of OuterRadius,
	// kept across [Polar.Update].
	InnerRatio float32

	// StartAngle is the angle of normalized value 0.
	// The default of -π/2 is 12 o'clock.
	StartAngle float32

	// TotalAngle is the angle covered by normalized values 0..1.
	TotalAngle float32
}

// NewPolar returns a full-circle polar system starting at 12 o'clock.
func NewPolar() *Polar {
	return &Polar{
		OuterRadius: 100,
		StartAngle:  -math32.HalfPi,
		TotalAngle:  math32.TwoPi,
	}
}

func (pc *Polar) SetCenter(c math32.Vector2) *Polar { pc.Center = c; return pc }

func (pc *Polar) SetRadii(inner, outer float32) *Polar {
	pc.InnerRadius, pc.OuterRadius = inner, outer
	if outer > 0 {
		pc.InnerRatio = inner / outer
	}
	return pc
}

func (pc *Polar) SetStartAngle(a float32) *Polar { pc.StartAngle = a; return pc }

func (pc *Polar) SetTotalAngle(a float32) *Polar { pc.TotalAngle = a; return pc }

// Update centers the system in rect, with the outer radius
// filling the smaller dimension less padding on each side.
func (pc *Polar) Update(rect math32.Box2, padding float32) {
	pc.Center = rect.Center()
	sz := rect.Size()
	pc.OuterRadius = max((min(sz.X, sz.Y)-2*padding)/2, 0)
	pc.InnerRadius = pc.OuterRadius * pc.InnerRatio
}

// SetInnerRadiusRatio sets the inner radius as a fraction of the
// outer radius, clamped to [0, 0.99].
func (pc *Polar) SetInnerRadiusRatio(ratio float32) {
	pc.InnerRatio = math32.Clamp(ratio, 0, 0.99)
	pc.InnerRadius = pc.OuterRadius * pc.InnerRatio
}

// ValueToAngle returns the angle of a normalized value.
func (pc *Polar) ValueToAngle(v float32) float32 {
	return pc.StartAngle + v*pc.TotalAngle
}

// AngleToValue is the inverse of [Polar.ValueToAngle], wrapping
// the angle into one turn past StartAngle.
func (pc *Polar) AngleToValue(a float32) float32 {
	if pc.TotalAngle == 0 {
		return 0
	}
	return math32.NormalizeAngle(a-pc.StartAngle) / pc.TotalAngle
}

// PolarToPixel returns the pixel at the given angle and radius.
func (pc *Polar) PolarToPixel(angle, radius float32) math32.Vector2 {
	return math32.Vector2Polar(pc.Center, angle, radius)
}

// PixelToPolar returns the angle in (-π, π] and radius of pixel p.
func (pc *Polar) PixelToPolar(p math32.Vector2) (angle, radius float32) {
	d := p.Sub(pc.Center)
	return math32.Atan2(d.Y, d.X), d.Length()
}

func (pc *Polar) OuterPoint(angle float32) math32.Vector2 {
	return pc.PolarToPixel(angle, pc.OuterRadius)
}

// MidPoint returns the point halfway between the inner and outer edges.
func (pc *Polar) MidPoint(angle float32) math32.Vector2 {
	return pc.PolarToPixel(angle, (pc.InnerRadius+pc.OuterRadius)/2)
}

// Contains returns whether p lies in the annulus.
func (pc *Polar) Contains(p math32.Vector2) bool {
	_, r := pc.PixelToPolar(p)
	return r >= pc.InnerRadius && r <= pc.OuterRadius
}

// ArcSegment returns the wedge between two normalized values.
func (pc *Polar) ArcSegment(start, end float32) ArcSegment {
	return ArcSegment{
		Center:      pc.Center,
		InnerRadius: pc.InnerRadius,
		OuterRadius: pc.OuterRadius,
		StartAngle:  pc.ValueToAngle(start),
		EndAngle:    pc.ValueToAngle(end),
	}
}

// SliceMidAngle returns the angle halfway between two normalized values.
func (pc *Polar) SliceMidAngle(start, end float32) float32 {
	return (pc.ValueToAngle(start) + pc.ValueToAngle(end)) / 2
}

// LabelPoint returns the label position for the slice between two
// normalized values, at ratio of the way from inner to outer radius.
func (pc *Polar) LabelPoint(start, end, ratio float32) math32.Vector2 {
	r := pc.InnerRadius + (pc.OuterRadius-pc.InnerRadius)*ratio
	return pc.PolarToPixel(pc.SliceMidAngle(start, end), r)
}

// ArcSegment is an annulus wedge.
type ArcSegment struct {
	Center      math32.Vector2
	InnerRadius float32
	OuterRadius float32
	StartAngle  float32
	EndAngle    float32
}

func (a ArcSegment) AngleSpan() float32 { return a.EndAngle - a.StartAngle }

func (a ArcSegment) MidAngle() float32 { return (a.StartAngle + a.EndAngle) / 2 }

// Contains returns whether p lies inside the wedge. Angles are
// compared after wrapping, so wedges may cross the ±π seam.
func (a ArcSegment) Contains(p math32.Vector2) bool {
	d := p.Sub(a.Center)
	r := d.Length()
	if r < a.InnerRadius || r > a.OuterRadius {
		return false
	}
	return AngleInSpan(math32.Atan2(d.Y, d.X), a.StartAngle, a.EndAngle)
}

// AngleInSpan returns whether angle lies in the sweep between start
// and end, in either direction, with all angles wrapped.
// Sweeps of a full turn or more contain every angle.
func AngleInSpan(angle, start, end float32) bool {
	span := end - start
	if span < 0 {
		start, span = end, -span
	}
	if span >= math32.TwoPi {
		return true
	}
	return math32.NormalizeAngle(angle-start) <= span
}
