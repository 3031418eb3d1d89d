// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/charts/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendTypes are the color spaces colors can be blended in.
type BlendTypes int32 //enums:enum -trim-prefix Blend

const (
	// BlendRGB blends the non-premultiplied RGB channels directly.
	BlendRGB BlendTypes = iota

	// BlendLab blends in the perceptually uniform CIE L*a*b* space.
	BlendLab

	// BlendHCL blends in the polar form of L*a*b*,
	// taking the short way around the hue circle.
	BlendHCL
)

// Blend returns the color t of the way from x to y in the given
// color space, with t clamped to [0, 1]. Alpha is blended linearly.
func Blend(bt BlendTypes, t float32, x, y color.Color) color.RGBA {
	if bt == BlendRGB {
		return Lerp(x, y, t)
	}
	t = math32.Clamp(t, 0, 1)
	nx, ny := AsNRGBA(x), AsNRGBA(y)
	cx := colorful.Color{R: float64(nx.R) / 255, G: float64(nx.G) / 255, B: float64(nx.B) / 255}
	cy := colorful.Color{R: float64(ny.R) / 255, G: float64(ny.G) / 255, B: float64(ny.B) / 255}
	var c colorful.Color
	switch bt {
	case BlendHCL:
		c = cx.BlendHcl(cy, float64(t))
	default:
		c = cx.BlendLab(cy, float64(t))
	}
	r, g, b := c.Clamped().RGB255()
	a := unit8(math32.Lerp(float32(nx.A)/255, float32(ny.A)/255, t))
	return AsRGBA(color.NRGBA{r, g, b, a})
}
