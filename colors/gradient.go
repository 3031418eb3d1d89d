// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/charts/math32"
)

// Gradient is a sequence of evenly spaced colors that can be
// sampled at any position between 0 and 1.
type Gradient struct {

	// Colors are the stops, evenly spaced from 0 to 1.
	Colors []color.RGBA

	// Blend is the color space neighboring stops are blended in.
	Blend BlendTypes
}

// NewGradient returns an RGB-blended gradient through the given colors.
func NewGradient(colors ...color.RGBA) *Gradient {
	return &Gradient{Colors: colors}
}

// PaletteGradient returns a gradient through [ChartColors].
func PaletteGradient() *Gradient {
	return NewGradient(ChartColors...)
}

// SetBlend sets [Gradient.Blend].
func (g *Gradient) SetBlend(bt BlendTypes) *Gradient {
	g.Blend = bt
	return g
}

// At returns the color at position t, clamped to [0, 1].
// An empty gradient is mid gray and a single stop is constant.
func (g *Gradient) At(t float32) color.RGBA {
	switch len(g.Colors) {
	case 0:
		return color.RGBA{128, 128, 128, 255}
	case 1:
		return g.Colors[0]
	}
	t = math32.Clamp(t, 0, 1)
	n := len(g.Colors) - 1
	seg := min(int(math32.Floor(t*float32(n))), n-1)
	local := t*float32(n) - float32(seg)
	return Blend(g.Blend, local, g.Colors[seg], g.Colors[seg+1])
}

// Generate returns n colors sampled evenly from the gradient,
// or its middle color if n is 1.
func (g *Gradient) Generate(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []color.RGBA{g.At(0.5)}
	}
	cs := make([]color.RGBA, n)
	for i := range cs {
		cs[i] = g.At(float32(i) / float32(n-1))
	}
	return cs
}
