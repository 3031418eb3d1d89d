// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/charts/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLine2(t *testing.T) {
	l := NewLine2(Vec2(6, 12), Vec2(12, 24))
	tolAssertEqualVector(t, Vec2(9, 18), l.Center())
	tolassert.EqualTol(t, Sqrt(180), l.Length(), standardTol)
	assert.Equal(t, float32(0), NewLine2(Vec2(1, 1), Vec2(1, 1)).Length())
}

func TestBox2(t *testing.T) {
	b := B2(10, 20, 110, 70)
	assert.Equal(t, Vec2(100, 50), b.Size())
	assert.Equal(t, Vec2(60, 45), b.Center())
	assert.True(t, b.ContainsPoint(Vec2(10, 20)))
	assert.True(t, b.ContainsPoint(Vec2(110, 70)))
	assert.False(t, b.ContainsPoint(Vec2(111, 70)))

	e := B2Empty()
	assert.True(t, e.IsEmpty())
	e.SetFromPoints([]Vector2{{3, 4}, {-1, 8}})
	assert.Equal(t, B2(-1, 4, 3, 8), e)
}

func TestTriangle2(t *testing.T) {
	tri := NewTriangle2(Vec2(0, 0), Vec2(10, 0), Vec2(0, 10))
	assert.Equal(t, float32(50), tri.Area())
	assert.True(t, tri.ContainsPoint(Vec2(2, 2)))
	assert.True(t, tri.ContainsPoint(Vec2(0, 0)))
	assert.False(t, tri.ContainsPoint(Vec2(8, 8)))
	flat := NewTriangle2(Vec2(0, 0), Vec2(1, 1), Vec2(2, 2))
	assert.False(t, flat.ContainsPoint(Vec2(1, 1)))
}

func TestPolygon(t *testing.T) {
	sq := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.True(t, sq.ContainsPoint(Vec2(5, 5)))
	assert.False(t, sq.ContainsPoint(Vec2(15, 5)))
	assert.Equal(t, B2(0, 0, 10, 10), sq.Bounds())
	fan := sq.Fan(Vec2(5, 5))
	assert.Len(t, fan, 4)
	var area float32
	for _, tr := range fan {
		area += tr.Area()
	}
	assert.Equal(t, float32(100), area)
	assert.False(t, Polygon{{0, 0}, {1, 1}}.ContainsPoint(Vec2(0, 0)))
}
