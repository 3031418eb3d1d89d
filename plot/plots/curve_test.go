// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"testing"

	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step data: flat, a jump, flat again.
var stepPoints = []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 100}, {X: 30, Y: 100}}

func yRange(path []math32.Vector2) (mn, mx float32) {
	mn, mx = path[0].Y, path[0].Y
	for _, p := range path {
		mn = min(mn, p.Y)
		mx = max(mx, p.Y)
	}
	return
}

func TestCatmullRomOvershoots(t *testing.T) {
	path := LinePath(stepPoints, 0.5, false, plot.NoStep)
	mn, mx := yRange(path)
	assert.Less(t, mn, float32(-1))
	assert.Greater(t, mx, float32(101))
}

func TestMonotoneNoOvershoot(t *testing.T) {
	for _, tension := range []float32{0.2, 0.5, 1} {
		path := LinePath(stepPoints, tension, true, plot.NoStep)
		mn, mx := yRange(path)
		assert.GreaterOrEqual(t, mn, float32(-1e-3), "tension %v", tension)
		assert.LessOrEqual(t, mx, float32(100+1e-3), "tension %v", tension)
	}
}

func TestMonotoneNonDecreasing(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 3, Y: 10}, {X: 40, Y: 15}, {X: 45, Y: 80}, {X: 120, Y: 90}, {X: 121, Y: 200}, {X: 200, Y: 200}, {X: 260, Y: 201}}
	for _, tension := range []float32{0.2, 0.5, 1} {
		path := LinePath(pts, tension, true, plot.NoStep)
		require.Len(t, path, (len(pts)-1)*CurveSegments+1)
		for i := 1; i < len(path); i++ {
			assert.GreaterOrEqual(t, path[i].Y, path[i-1].Y-1e-3, "tension %v sample %d", tension, i)
			assert.GreaterOrEqual(t, path[i].X, path[i-1].X, "tension %v sample %d", tension, i)
		}
	}
}

func TestMonotoneExtremumFlat(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 50}, {X: 10, Y: 0}, {X: 20, Y: 50}}
	cps := ControlPoints(pts, 1, true)
	require.Len(t, cps, 2)
	// zero slope at the local extremum
	assert.Equal(t, float32(0), cps[0].C2.Y)
	assert.Equal(t, float32(0), cps[1].C1.Y)
}

func TestFlattenCurve(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}}
	path := FlattenCurve(pts, ControlPoints(pts, 0.4, false))
	require.Len(t, path, 2*CurveSegments+1)
	assert.Equal(t, pts[0], path[0])
	assert.InDelta(t, pts[1].X, path[CurveSegments].X, 1e-4)
	assert.InDelta(t, pts[1].Y, path[CurveSegments].Y, 1e-4)
	assert.InDelta(t, pts[2].X, path[len(path)-1].X, 1e-4)

	assert.Nil(t, ControlPoints(pts[:1], 0.4, false))
	assert.Equal(t, pts, LinePath(pts, 0, false, plot.NoStep))
}

func TestStepPath(t *testing.T) {
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 5}}

	pre := StepPath(pts, plot.PreStep)
	require.Len(t, pre, 5)
	assert.Equal(t, math32.Vec2(0, 10), pre[1])

	post := StepPath(pts, plot.PostStep)
	require.Len(t, post, 5)
	assert.Equal(t, math32.Vec2(10, 0), post[1])

	mid := StepPath(pts, plot.MidStep)
	require.Len(t, mid, 7)
	assert.Equal(t, math32.Vec2(5, 0), mid[1])
	assert.Equal(t, math32.Vec2(5, 10), mid[2])

	// steps take precedence over tension
	assert.Equal(t, pre, LinePath(pts, 0.5, false, plot.PreStep))
}

func TestBezier(t *testing.T) {
	a, b, c, d := math32.Vec2(0, 0), math32.Vec2(0, 10), math32.Vec2(10, 10), math32.Vec2(10, 0)
	assert.Equal(t, a, CubicBezier(a, b, c, d, 0))
	assert.Equal(t, d, CubicBezier(a, b, c, d, 1))
	m := CubicBezier(a, b, c, d, 0.5)
	assert.InDelta(t, 5, m.X, 1e-5)
	assert.InDelta(t, 7.5, m.Y, 1e-5)

	q := QuadraticBezier(a, b, d, 0.5)
	assert.InDelta(t, 2.5, q.X, 1e-5)
	assert.InDelta(t, 5, q.Y, 1e-5)
}
