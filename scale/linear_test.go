// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearDefaults(t *testing.T) {
	ls := NewLinear()
	assert.Equal(t, 0.0, ls.Data.Min)
	assert.Equal(t, 1.0, ls.Data.Max)
	assert.Equal(t, 100.0, ls.Pixel.Max)
	assert.True(t, ls.Nice)
	assert.Equal(t, 50.0, ls.PixelForValue(0.5))
}

func TestLinearMapping(t *testing.T) {
	ls := NewLinear()
	ls.SetDataRange(3.2, 97.8)
	assert.Equal(t, 0.0, ls.Data.Min)
	assert.Equal(t, 100.0, ls.Data.Max)

	ls.SetPixelRange(0, 500)
	assert.Equal(t, 0.0, ls.PixelForValue(0))
	assert.Equal(t, 250.0, ls.PixelForValue(50))
	assert.Equal(t, 500.0, ls.PixelForValue(100))
	assert.Equal(t, 50.0, ls.ValueForPixel(250))

	for _, v := range []float64{-20, 0, 13.7, 42, 99.9, 180} {
		assert.InDelta(t, v, ls.ValueForPixel(ls.PixelForValue(v)), 1e-9)
	}

	ls.SetPixelRange(400, 0)
	assert.Equal(t, 400.0, ls.PixelForValue(0))
	assert.Equal(t, 0.0, ls.PixelForValue(100))
	assert.InDelta(t, 25.0, ls.ValueForPixel(300), 1e-9)
}

func TestLinearBeginAtZero(t *testing.T) {
	ls := NewLinear().SetBeginAtZero(true)
	ls.SetDataRange(20, 80)
	assert.Equal(t, 0.0, ls.Data.Min)
	assert.Equal(t, 80.0, ls.Data.Max)

	ls.SetDataRange(-35, -5)
	assert.Equal(t, -40.0, ls.Data.Min)
	assert.Equal(t, 0.0, ls.Data.Max)
}

func TestLinearDegenerate(t *testing.T) {
	ls := NewLinear().SetNice(false)
	ls.SetDataRange(5, 5)
	assert.Equal(t, 4.0, ls.Data.Min)
	assert.Equal(t, 6.0, ls.Data.Max)

	ls.Data.Set(5, 5)
	assert.Equal(t, 50.0, ls.PixelForValue(123))

	ls.SetPixelRange(10, 10)
	assert.Equal(t, 5.0, ls.ValueForPixel(77))
}

func TestLinearClamp(t *testing.T) {
	ls := NewLinear().SetClamp(true)
	ls.SetDataRange(0, 100)
	assert.Equal(t, 1.0, ls.Ratio(150))
	assert.Equal(t, 0.0, ls.Ratio(-10))
	ls.SetClamp(false)
	assert.Equal(t, 1.5, ls.Ratio(150))
}

func TestLinearTicks(t *testing.T) {
	ls := NewLinear()
	ls.SetDataRange(0, 100)
	ticks := ls.Ticks(nil)
	assert.Len(t, ticks, 11)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "50", ticks[5].Label)
	assert.Equal(t, "100", ticks[10].Label)
	for _, tk := range ticks {
		assert.True(t, tk.Major)
	}

	ls.SetNice(false).SetDataRange(3, 97)
	ticks = ls.Ticks(nil)
	assert.Len(t, ticks, 11)
	assert.Equal(t, 3.0, ticks[0].Value)
	assert.Equal(t, 10.0, ticks[1].Value)
	assert.Equal(t, 97.0, ticks[10].Value)

	opts := NewTickOptions().SetIncludeBounds(false)
	ticks = ls.Ticks(opts)
	assert.Len(t, ticks, 9)
	assert.Equal(t, 10.0, ticks[0].Value)
	assert.Equal(t, 90.0, ticks[8].Value)

	opts.SetStepSize(25)
	ticks = ls.Ticks(opts)
	assert.Len(t, ticks, 3)
	assert.Equal(t, 25.0, ticks[0].Value)
}

func TestLinearTicksTinyStep(t *testing.T) {
	ls := NewLinear()
	ls.SetDataRange(0, 1e6)
	opts := NewTickOptions().SetStepSize(1e-6)
	ticks := ls.Ticks(opts)
	assert.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), opts.MaxTicksLimit*100+2)

	ticks = ls.Ticks(opts.SetMaxTicksLimit(0).SetIncludeBounds(false))
	assert.Len(t, ticks, 100)
}

func TestLinearTicksIncreasing(t *testing.T) {
	ranges := [][2]float64{{0, 1}, {-3.7, 12.2}, {1000, 1e6}, {0.001, 0.0042}, {-5, -1}}
	for _, r := range ranges {
		for _, alg := range TickAlgorithmsValues() {
			ls := NewLinear()
			ls.SetDataRange(r[0], r[1])
			ticks := ls.Ticks(NewTickOptions().SetAlgorithm(alg))
			assert.GreaterOrEqual(t, len(ticks), 2, "range %v %v", r, alg)
			for i := 1; i < len(ticks); i++ {
				assert.Greater(t, ticks[i].Value, ticks[i-1].Value, "range %v %v", r, alg)
			}
		}
	}
}

func TestLinearExtendedTicks(t *testing.T) {
	ls := NewLinear()
	ls.SetDataRange(0, 100)
	ticks := ls.Ticks(NewTickOptions().SetAlgorithm(TickExtended))
	if assert.NotEmpty(t, ticks) {
		assert.LessOrEqual(t, ticks[0].Value, 0.0)
		assert.GreaterOrEqual(t, ticks[len(ticks)-1].Value, 100.0)
	}
}
