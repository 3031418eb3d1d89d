// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/charts/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	assert.NotEqual(t, Palette(0), Palette(1))
	assert.Equal(t, Palette(0), Palette(10))
	assert.Equal(t, Palette(9), Palette(-1))
	assert.Equal(t, color.RGBA{0x4a, 0xc0, 0xc0, 0xff}, Palette(0))
	assert.Equal(t, "#ff6362", AsHex(Palette(1)))
	assert.Equal(t, Pastel(2), PalettePastel.At(12))
	assert.Equal(t, Spaced(5), PaletteSpaced.At(5))

	c := PaletteAlpha(0, 0.5)
	assert.Equal(t, uint8(128), c.A)
	assert.Equal(t, "#4ac0c0", AsHex(Palette(0)))
}

func TestFromHex(t *testing.T) {
	c, err := FromHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	c, err = FromHex("4ac0c0")
	require.NoError(t, err)
	assert.Equal(t, Palette(0), c)

	c, err = FromHex("#00000000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{}, c)

	_, err = FromHex("#12345")
	assert.Error(t, err)
	_, err = FromHex("#zzzzzz")
	assert.Error(t, err)
}

func TestFromString(t *testing.T) {
	c, err := FromString("Red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c)

	c, err = FromString("#3498db")
	require.NoError(t, err)
	assert.Equal(t, Palette(4), c)

	c, err = FromString("none")
	require.NoError(t, err)
	assert.True(t, IsNil(c))

	_, err = FromString("not-a-color")
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{}, LogFromString("not-a-color"))
}

func TestLightenDarken(t *testing.T) {
	gray := FromRGB(128, 128, 128)
	l := Lighten(gray, 0.5)
	assert.Greater(t, l.R, gray.R)
	assert.InDelta(t, 192, l.R, 1)
	d := Darken(gray, 0.5)
	assert.Less(t, d.R, gray.R)
	assert.InDelta(t, 64, d.R, 1)

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(gray, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Darken(gray, 1))

	semi := FromRGBA(200, 100, 0, 0.5)
	assert.Equal(t, uint8(128), Lighten(semi, 0.2).A)
	assert.InDelta(t, 0.5, Alpha(Darken(semi, 0.2)), 0.01)
}

func TestLerp(t *testing.T) {
	r, b := FromRGB(255, 0, 0), FromRGB(0, 0, 255)
	assert.Equal(t, r, Lerp(r, b, -1))
	assert.Equal(t, b, Lerp(r, b, 2))
	m := Lerp(r, b, 0.5)
	assert.Equal(t, uint8(128), m.R)
	assert.Equal(t, uint8(128), m.B)
}

func TestBlend(t *testing.T) {
	r, b := FromRGB(255, 0, 0), FromRGB(0, 0, 255)
	for _, bt := range BlendTypesValues() {
		assert.True(t, imagex.CompareColors(r, Blend(bt, 0, r, b), 1), bt.String())
		assert.True(t, imagex.CompareColors(b, Blend(bt, 1, r, b), 1), bt.String())
	}
	assert.NotEqual(t, Blend(BlendRGB, 0.5, r, b), Blend(BlendLab, 0.5, r, b))
	assert.Equal(t, uint8(128), Blend(BlendHCL, 0.5, WithAlpha(r, 1), WithAlpha(b, 0)).A)
}

func TestGradient(t *testing.T) {
	g := NewGradient(FromRGB(255, 0, 0), FromRGB(0, 255, 0), FromRGB(0, 0, 255))
	assert.Equal(t, FromRGB(255, 0, 0), g.At(0))
	assert.Equal(t, FromRGB(0, 255, 0), g.At(0.5))
	assert.Equal(t, FromRGB(0, 0, 255), g.At(1))
	assert.Equal(t, FromRGB(0, 0, 255), g.At(3))

	cs := g.Generate(5)
	assert.Len(t, cs, 5)
	assert.Equal(t, g.At(0.25), cs[1])
	assert.Equal(t, []color.RGBA{g.At(0.5)}, g.Generate(1))
	assert.Nil(t, g.Generate(0))

	assert.Equal(t, color.RGBA{128, 128, 128, 255}, NewGradient().At(0.3))
	assert.Equal(t, Palette(3), NewGradient(Palette(3)).At(0.9))
	assert.Len(t, PaletteGradient().SetBlend(BlendLab).Generate(20), 20)
}

func TestPattern(t *testing.T) {
	r, b := FromRGB(255, 0, 0), FromRGB(0, 0, 255)
	p := Pattern(func(x, y int) color.Color {
		if x < 0 {
			return r
		}
		return b
	})
	assert.Equal(t, r, AsRGBA(p.At(-5, 3)))
	assert.Equal(t, b, AsRGBA(p.At(5, 3)))
	assert.True(t, image.Pt(1000, 1000).In(p.Bounds()))
	assert.Equal(t, r, AsRGBA(Uniform(r).At(7, 7)))
}
