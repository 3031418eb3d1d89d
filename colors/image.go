// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
)

// Uniform returns an infinite image of the single color c.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}

// Pattern returns an infinite image whose pixel colors are given
// by the function f.
func Pattern(f func(x, y int) color.Color) image.Image {
	return patternFunc(f)
}

type patternFunc func(x, y int) color.Color

func (p patternFunc) ColorModel() color.Model { return color.RGBAModel }

func (p patternFunc) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (p patternFunc) At(x, y int) color.Color { return p(x, y) }
