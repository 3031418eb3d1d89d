// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPoint(t *testing.T) {
	p := PointY(4)
	assert.Equal(t, 3.0, p.XOr(3))
	assert.Equal(t, 0.0, p.Base())
	assert.Equal(t, 1.0, p.RadiusOr(1))
	assert.False(t, p.IsFloating())
	assert.False(t, p.IsBubble())

	f := FloatingPoint(-2, 5)
	assert.True(t, f.IsFloating())
	assert.Equal(t, -2.0, f.Base())
	assert.Equal(t, 5.0, f.Y)

	b := BubblePoint(1, 2, 7).SetLabel("b").SetMeta("m")
	assert.Equal(t, 1.0, b.XOr(9))
	assert.Equal(t, 7.0, b.RadiusOr(1))
	assert.True(t, b.IsBubble())
	assert.Equal(t, "b", b.Label)
	assert.Equal(t, "m", b.Meta)
}

func TestDatasetDefaults(t *testing.T) {
	ds := NewDataset("x")
	assert.Equal(t, 1.0, ds.BorderWidth)
	assert.Equal(t, 3.0, ds.PointRadius)
	assert.Equal(t, Circle, ds.PointStyle)
	assert.Equal(t, 0.9, ds.BarPercentage)
	assert.Equal(t, 0.8, ds.CategoryPercentage)
	assert.Equal(t, 10.0, ds.HoverOffset)

	ds.SetTension(3)
	assert.Equal(t, 1.0, ds.Tension)
	ds.SetTension(-1)
	assert.Equal(t, 0.0, ds.Tension)

	ds.SetValues(1, 2, 3)
	assert.Equal(t, []float64{1, 2, 3}, ds.Values())
	assert.Equal(t, 3, ds.Len())
}

func TestDataExtents(t *testing.T) {
	dt := NewData("a", "b", "c").
		AddDataset(NewDataset("x").SetValues(10, 20, 30)).
		AddDataset(NewDataset("y").SetFloating([2]float64{-5, 8}, [2]float64{2, 40})).
		AddDataset(NewDataset("z").SetValues(1000).SetHidden(true))

	r, ok := dt.YExtent()
	require.True(t, ok)
	assert.Equal(t, -5.0, r.Min)
	assert.Equal(t, 40.0, r.Max)

	xr, ok := dt.XExtent()
	require.True(t, ok)
	assert.Equal(t, 0.0, xr.Min)
	assert.Equal(t, 2.0, xr.Max)

	flat := NewData().AddDataset(NewDataset("f").SetValues(5, 5))
	r, ok = flat.YExtent()
	require.True(t, ok)
	assert.Equal(t, 4.0, r.Min)
	assert.Equal(t, 6.0, r.Max)

	_, ok = NewData().YExtent()
	assert.False(t, ok)
}

func TestDataVisibility(t *testing.T) {
	dt := NewData().
		AddDataset(NewDataset("x").SetValues(1, -2, 3)).
		AddDataset(NewDataset("y").SetValues(4))
	assert.Equal(t, 2, dt.VisibleDatasetCount())
	assert.Equal(t, 4.0, dt.Total())
	assert.Equal(t, 3, dt.Len())
	assert.False(t, dt.IsEmpty())
	assert.True(t, NewData("a").IsEmpty())

	dt.ToggleDataset(1)
	assert.Equal(t, 1, dt.VisibleDatasetCount())
	dt.SetDatasetVisible(1, true)
	assert.False(t, dt.Datasets[1].Hidden)
	dt.ToggleDataset(5)
	assert.Nil(t, dt.Dataset(5))
	assert.Nil(t, dt.Dataset(-1))
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, NewData().Validate(), ErrNoData)
	inf := NewData().AddDataset(NewDataset("x").SetValues(1, math.Inf(1)))
	assert.ErrorIs(t, inf.Validate(), ErrInfinity)
	nan := NewData().AddDataset(NewDataset("x").SetValues(math.NaN()))
	assert.ErrorIs(t, nan.Validate(), ErrNoData)
	assert.NoError(t, NewData().AddDataset(NewDataset("x").SetValues(1, math.NaN())).Validate())
	assert.True(t, CheckNaNs(1, math.NaN()))
	assert.False(t, CheckNaNs(1, 2))
}

func TestChordData(t *testing.T) {
	cd := NewChordData([]string{"a"}, [][]float64{
		{0, 3, -2},
		{1, 0, 4},
		{0, 0, 0},
	})
	assert.Equal(t, 3, cd.Len())
	assert.Equal(t, 0.0, cd.Value(0, 2))
	assert.Equal(t, 0.0, cd.Value(3, 0))
	assert.Equal(t, 0.0, cd.Value(0, 7))
	assert.Equal(t, 3.0, cd.GroupTotal(0))
	assert.Equal(t, 5.0, cd.GroupTotal(1))
	assert.Equal(t, 0.0, cd.GroupTotal(-1))
	assert.Equal(t, 8.0, cd.Total())
	assert.Equal(t, "a", cd.Label(0))
	assert.Equal(t, "Group 3", cd.Label(2))

	dt := NewData("p", "q").
		AddDataset(NewDataset("p").SetValues(0, 2)).
		AddDataset(NewDataset("q").SetValues(5, 0))
	fd := ChordFromData(dt)
	assert.Equal(t, [][]float64{{0, 2}, {5, 0}}, fd.Matrix)
	assert.Equal(t, "q", fd.Label(1))
}

func TestDataNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	assert.True(t, IsFinite(-3))
	assert.False(t, IsFinite(nan))
	assert.False(t, IsFinite(-inf))
	assert.Equal(t, 2.0, Positive(2))
	assert.Equal(t, 0.0, Positive(-2))
	assert.Equal(t, 0.0, Positive(nan))
	assert.Equal(t, 0.0, Positive(inf))

	dt := NewData().AddDataset(NewDataset("x").SetPoints(
		FloatingPoint(nan, 5), PointY(nan), PointY(2), PointY(inf), NewPoint(nan, 3)))
	r, ok := dt.YExtent()
	require.True(t, ok)
	assert.Equal(t, 2.0, r.Min)
	assert.Equal(t, 5.0, r.Max)
	xr, ok := dt.XExtent()
	require.True(t, ok)
	assert.Equal(t, 0.0, xr.Min)
	assert.Equal(t, 3.0, xr.Max)
	assert.Equal(t, 10.0, dt.Total())

	_, ok = NewData().AddDataset(NewDataset("n").SetValues(nan, inf)).YExtent()
	assert.False(t, ok)

	cd := NewChordData(nil, [][]float64{{0, nan}, {inf, 0}, {1, 0}})
	assert.Equal(t, 0.0, cd.Value(0, 1))
	assert.Equal(t, 0.0, cd.GroupTotal(1))
	assert.Equal(t, 1.0, cd.Total())
}
