// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"cogentcore.org/charts/math32"
)

// DrawShape draws a point marker of the given style, centered on pos,
// with size as its radius. Cross markers are stroked with the
// fill color and the given line width.
func DrawShape(pt Painter, pos math32.Vector2, size float32, style PointStyles, fill Fill, width float32) {
	switch style {
	case Square:
		DrawSquare(pt, pos, size, fill)
	case Triangle:
		DrawTriangle(pt, pos, size, fill)
	case Cross:
		DrawCross(pt, pos, size, fill.Color, width)
	case Diamond:
		DrawDiamond(pt, pos, size, fill)
	default:
		pt.Circle(pos, size, fill)
	}
}

func DrawSquare(pt Painter, pos math32.Vector2, size float32, fill Fill) {
	x := size * 0.9
	pt.Bar(math32.B2(pos.X-x, pos.Y-x, pos.X+x, pos.Y+x), 0, fill)
}

func DrawTriangle(pt Painter, pos math32.Vector2, size float32, fill Fill) {
	x := size * 0.9
	pt.Triangle(math32.Vec2(pos.X, pos.Y-x), math32.Vec2(pos.X-x, pos.Y+x), math32.Vec2(pos.X+x, pos.Y+x), fill)
}

func DrawCross(pt Painter, pos math32.Vector2, size float32, clr color.RGBA, width float32) {
	x := size * 0.75
	pt.Line(math32.Vec2(pos.X-x, pos.Y-x), math32.Vec2(pos.X+x, pos.Y+x), width, clr)
	pt.Line(math32.Vec2(pos.X+x, pos.Y-x), math32.Vec2(pos.X-x, pos.Y+x), width, clr)
}

func DrawDiamond(pt Painter, pos math32.Vector2, size float32, fill Fill) {
	top := math32.Vec2(pos.X, pos.Y-size)
	bottom := math32.Vec2(pos.X, pos.Y+size)
	pt.Triangle(top, math32.Vec2(pos.X-size, pos.Y), bottom, fill)
	pt.Triangle(top, math32.Vec2(pos.X+size, pos.Y), bottom, fill)
}
