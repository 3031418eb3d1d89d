// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func abcd() *Category {
	cs := NewCategory("A", "B", "C", "D")
	cs.SetPixelRange(0, 400)
	return cs
}

func TestCategoryBands(t *testing.T) {
	cs := abcd()
	assert.Equal(t, 4, cs.Len())
	assert.Equal(t, 100.0, cs.BandWidth())
	for i := 0; i < 4; i++ {
		assert.Equal(t, 50+100*float64(i), cs.PixelForIndex(i))
		assert.Equal(t, i, cs.IndexForPixel(cs.PixelForIndex(i)))
	}
	cs.SetOffset(false)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 100*float64(i), cs.PixelForIndex(i))
	}
}

func TestCategoryIndexForPixel(t *testing.T) {
	cs := abcd()
	assert.Equal(t, 0, cs.IndexForPixel(50))
	assert.Equal(t, 1, cs.IndexForPixel(150))
	assert.Equal(t, 3, cs.IndexForPixel(350))
	assert.Equal(t, 0, cs.IndexForPixel(-500))
	assert.Equal(t, 3, cs.IndexForPixel(5000))
	assert.Equal(t, 2.0, cs.ValueForPixel(260))
}

func TestCategoryBarWidth(t *testing.T) {
	cs := abcd()
	assert.Equal(t, 80.0, cs.BarWidth(0.8))
	assert.Equal(t, 50.0, cs.BarWidth(0.5))
	assert.Equal(t, 10.0, cs.BarWidth(0.01))
	assert.Equal(t, 100.0, cs.BarWidth(3))
}

func TestCategoryInverted(t *testing.T) {
	cs := NewCategory("A", "B", "C", "D")
	cs.SetPixelRange(400, 0)
	assert.Equal(t, 100.0, cs.BandWidth())
	assert.Equal(t, 350.0, cs.PixelForIndex(0))
	assert.Equal(t, 50.0, cs.PixelForIndex(3))
	assert.Equal(t, 0, cs.IndexForPixel(350))
	assert.Equal(t, 3, cs.IndexForPixel(40))
}

func TestCategoryEmpty(t *testing.T) {
	cs := NewCategory()
	cs.SetPixelRange(20, 300)
	assert.Equal(t, 0.0, cs.BandWidth())
	assert.Equal(t, 20.0, cs.PixelForIndex(3))
	assert.Equal(t, 0, cs.IndexForPixel(100))
	assert.Equal(t, 0.0, cs.DataBounds().Max)
	assert.Empty(t, cs.Ticks(nil))
}

func TestCategoryValues(t *testing.T) {
	cs := abcd()
	assert.Equal(t, 150.0, cs.PixelForValue(1.2))
	assert.Equal(t, 250.0, cs.PixelForValue(1.6))
	assert.Equal(t, 50.0, cs.PixelForValue(-2))
	lb, ok := cs.Label(2)
	assert.True(t, ok)
	assert.Equal(t, "C", lb)
	_, ok = cs.Label(4)
	assert.False(t, ok)
	assert.Equal(t, 3.0, cs.DataBounds().Max)
}

func TestCategoryTicks(t *testing.T) {
	cs := NewCategory("Jan", "Feb", "Mar", "Apr")
	ticks := cs.Ticks(NewTickOptions())
	assert.Len(t, ticks, 4)
	assert.Equal(t, "Jan", ticks[0].Label)
	assert.Equal(t, "Apr", ticks[3].Label)

	cs.SetLabels("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	ticks = cs.Ticks(NewTickOptions().SetMaxTicksLimit(4))
	assert.Len(t, ticks, 4)
	assert.Equal(t, []string{"a", "d", "g", "j"}, []string{ticks[0].Label, ticks[1].Label, ticks[2].Label, ticks[3].Label})
}
