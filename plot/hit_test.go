// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"cogentcore.org/charts/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHitTester(t *testing.T) {
	var ht HitTester
	ht.Register(math32.B2(0, 0, 10, 10), HitData{Kind: HitBar, Index: 0})
	ht.Register(math32.B2(5, 5, 20, 20), HitData{Kind: HitBar, Index: 1})
	ht.RegisterPolygon(math32.Polygon{math32.Vec2(30, 0), math32.Vec2(40, 10), math32.Vec2(30, 10)}, HitData{Kind: HitCustom, Custom: "tri"})
	require.Len(t, ht.Regions, 3)
	assert.Equal(t, 2, ht.Regions[2].ID)
	assert.Equal(t, math32.B2(30, 0, 40, 10), ht.Regions[2].Rect)

	hr := ht.HitTest(math32.Vec2(7, 7))
	require.NotNil(t, hr)
	assert.Equal(t, 0, hr.Data.Index)
	assert.Len(t, ht.HitTestAll(math32.Vec2(7, 7)), 2)
	assert.Nil(t, ht.HitTest(math32.Vec2(25, 25)))

	// inside the bounds but outside the triangle
	assert.Nil(t, ht.HitTest(math32.Vec2(39, 1)))
	hr = ht.HitTest(math32.Vec2(32, 8))
	require.NotNil(t, hr)
	assert.Equal(t, "tri", hr.Data.String())

	hr = ht.FindNearest(math32.Vec2(14, 14), 10)
	require.NotNil(t, hr)
	assert.Equal(t, 1, hr.Data.Index)
	assert.Nil(t, ht.FindNearest(math32.Vec2(100, 100), 10))

	ht.Clear()
	assert.Empty(t, ht.Regions)
	assert.Nil(t, ht.HitTest(math32.Vec2(7, 7)))
}

func TestHitDataString(t *testing.T) {
	assert.Equal(t, "Bar 1:2", HitData{Kind: HitBar, Dataset: 1, Index: 2}.String())
	assert.Equal(t, "Slice 3", HitData{Kind: HitSlice, Index: 3}.String())
	assert.Equal(t, "Ribbon 0:1", HitData{Kind: HitRibbon, Index: 1}.String())
}
