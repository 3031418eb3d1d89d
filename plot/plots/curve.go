// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// CurveSegments is the number of line segments each cubic
// Bezier segment is flattened into.
const CurveSegments = 20

// ControlPoint is the pair of Bezier control points of the curve
// segment between two consecutive points.
type ControlPoint struct {
	C1, C2 math32.Vector2
}

// ControlPoints returns the control points of the cubic curve through
// the given points, scaled by tension. The default curve uses
// Catmull-Rom tangents, repeating the end points at the ends of the
// sequence; it may overshoot the points. The monotone curve uses
// Fritsch-Carlson slopes, which never overshoot.
func ControlPoints(pts []math32.Vector2, tension float32, monotone bool) []ControlPoint {
	n := len(pts)
	if n < 2 {
		return nil
	}
	if monotone {
		return monotoneControlPoints(pts, tension)
	}
	cps := make([]ControlPoint, n-1)
	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]
		t1 := p2.Sub(p0).MulScalar(tension)
		t2 := p3.Sub(p1).MulScalar(tension)
		cps[i] = ControlPoint{C1: p1.Add(t1.DivScalar(3)), C2: p2.Sub(t2.DivScalar(3))}
	}
	return cps
}

// secant returns the slope between two points, with the x distance
// floored at one pixel.
func secant(a, b math32.Vector2) float32 {
	return (b.Y - a.Y) / max(b.X-a.X, 1)
}

func monotoneControlPoints(pts []math32.Vector2, tension float32) []ControlPoint {
	n := len(pts)
	slopes := make([]float32, n)
	for i := 0; i < n; i++ {
		switch i {
		case 0:
			slopes[i] = secant(pts[0], pts[1])
		case n - 1:
			slopes[i] = secant(pts[n-2], pts[n-1])
		default:
			d0 := secant(pts[i-1], pts[i])
			d1 := secant(pts[i], pts[i+1])
			if d0*d1 <= 0 {
				slopes[i] = 0 // local extremum
			} else {
				slopes[i] = 2 * d0 * d1 / (d0 + d1)
			}
		}
	}
	for i := 0; i < n-1; i++ {
		dy := pts[i+1].Y - pts[i].Y
		if math32.Abs(dy) < 1e-10 {
			slopes[i] = 0
			slopes[i+1] = 0
			continue
		}
		delta := secant(pts[i], pts[i+1])
		alpha := slopes[i] / delta
		beta := slopes[i+1] / delta
		tau := alpha*alpha + beta*beta
		if tau > 9 {
			s := 3 / math32.Sqrt(tau)
			slopes[i] = s * alpha * delta
			slopes[i+1] = s * beta * delta
		}
	}
	cps := make([]ControlPoint, n-1)
	for i := 0; i < n-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		dx := (p2.X - p1.X) / 3
		cps[i] = ControlPoint{
			C1: math32.Vec2(p1.X+dx, p1.Y+slopes[i]*dx*tension),
			C2: math32.Vec2(p2.X-dx, p2.Y-slopes[i+1]*dx*tension),
		}
	}
	return cps
}

// CubicBezier returns the point at t of the cubic Bezier curve
// from p0 to p3 with control points p1 and p2.
func CubicBezier(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return math32.Vec2(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y)
}

// QuadraticBezier returns the point at t of the quadratic Bezier
// curve from p0 to p2 with control point p1.
func QuadraticBezier(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	return p0.MulScalar(mt * mt).Add(p1.MulScalar(2 * mt * t)).Add(p2.MulScalar(t * t))
}

// FlattenCurve returns the polyline of the cubic curve through the
// points with the given control points, each segment flattened into
// [CurveSegments] lines.
func FlattenCurve(pts []math32.Vector2, cps []ControlPoint) []math32.Vector2 {
	if len(pts) == 0 {
		return nil
	}
	path := make([]math32.Vector2, 0, len(cps)*CurveSegments+1)
	path = append(path, pts[0])
	for i, cp := range cps {
		for s := 1; s <= CurveSegments; s++ {
			t := float32(s) / CurveSegments
			path = append(path, CubicBezier(pts[i], cp.C1, cp.C2, pts[i+1], t))
		}
	}
	return path
}

// StepPath returns the polyline connecting the points by steps:
// vertical then horizontal for [plot.PreStep], horizontal then vertical
// for [plot.PostStep], and horizontal, vertical, horizontal with the
// vertical in the middle for [plot.MidStep].
func StepPath(pts []math32.Vector2, step plot.StepKind) []math32.Vector2 {
	if len(pts) == 0 || step == plot.NoStep {
		return pts
	}
	path := []math32.Vector2{pts[0]}
	for i := 1; i < len(pts); i++ {
		prev, pt := pts[i-1], pts[i]
		switch step {
		case plot.PreStep:
			path = append(path, math32.Vec2(prev.X, pt.Y))
		case plot.MidStep:
			mx := 0.5 * (prev.X + pt.X)
			path = append(path, math32.Vec2(mx, prev.Y), math32.Vec2(mx, pt.Y))
		case plot.PostStep:
			path = append(path, math32.Vec2(pt.X, prev.Y))
		}
		path = append(path, pt)
	}
	return path
}

// LinePath returns the polyline through the points: stepped if step
// is set, else a flattened cubic curve if tension > 0, else the
// points themselves.
func LinePath(pts []math32.Vector2, tension float32, monotone bool, step plot.StepKind) []math32.Vector2 {
	switch {
	case step != plot.NoStep:
		return StepPath(pts, step)
	case tension > 0 && len(pts) > 1:
		return FlattenCurve(pts, ControlPoints(pts, tension, monotone))
	}
	return pts
}
