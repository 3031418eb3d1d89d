// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rasterizer

import (
	"image"
	"image/color"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// source returns the source image for drawing with the fill.
// Gradients are sampled at pixel centers in chart coordinates.
func (rs *Renderer) source(f plot.Fill) image.Image {
	if !f.IsGradient() {
		return colors.Uniform(f.Color)
	}
	scale := rs.scale()
	return colors.Pattern(func(x, y int) color.Color {
		return f.At(math32.Vec2(float32(x)+0.5, float32(y)+0.5).DivScalar(scale))
	})
}
