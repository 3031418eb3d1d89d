// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterizer is a software [plot.Painter] that fills chart
// primitives into an RGBA image.
package rasterizer

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/charts/base/iox/imagex"
	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"
)

// ArcStep is the largest angle covered by one segment of a
// flattened arc or circle, in radians.
const ArcStep = math32.Pi / 64

// Renderer is a [plot.Painter] drawing into an [image.RGBA] through
// a [vector.Rasterizer]. With Samples > 1 it draws at that multiple of
// the image size, and [Renderer.Image] scales the result down.
type Renderer struct {

	// Size is the size of the output image.
	Size image.Point

	// Samples is the supersampling factor.
	Samples int

	image *image.RGBA
	ras   *vector.Rasterizer
}

var _ plot.Painter = (*Renderer)(nil)

// New returns a new renderer of the given size and supersampling
// factor, cleared to the background color.
func New(size image.Point, samples int, background color.Color) *Renderer {
	samples = max(samples, 1)
	rs := &Renderer{Size: size, Samples: samples}
	rs.image = image.NewRGBA(image.Rectangle{Max: size.Mul(samples)})
	rs.ras = &vector.Rasterizer{}
	rs.Clear(background)
	return rs
}

// Clear fills the image with the given color.
func (rs *Renderer) Clear(c color.Color) {
	draw.Draw(rs.image, rs.image.Bounds(), colors.Uniform(c), image.Point{}, draw.Src)
}

// Raw returns the image drawn into, at the supersampled size.
func (rs *Renderer) Raw() *image.RGBA { return rs.image }

// Image returns the rendered image at [Renderer.Size].
func (rs *Renderer) Image() *image.RGBA {
	if rs.Samples == 1 {
		return rs.image
	}
	return transform.Resize(rs.image, rs.Size.X, rs.Size.Y, transform.Linear)
}

// Save saves the rendered image, in the format of the file extension.
func (rs *Renderer) Save(filename string) error {
	return imagex.Save(rs.Image(), filename)
}

func (rs *Renderer) scale() float32 { return float32(rs.Samples) }

func (rs *Renderer) begin() {
	b := rs.image.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
}

func (rs *Renderer) moveTo(p math32.Vector2) {
	p = p.MulScalar(rs.scale())
	rs.ras.MoveTo(p.X, p.Y)
}

func (rs *Renderer) lineTo(p math32.Vector2) {
	p = p.MulScalar(rs.scale())
	rs.ras.LineTo(p.X, p.Y)
}

func (rs *Renderer) quadTo(c, p math32.Vector2) {
	s := rs.scale()
	rs.ras.QuadTo(c.X*s, c.Y*s, p.X*s, p.Y*s)
}

// arcTo adds the arc from start to end to the path, starting a new
// subpath at its first point if move is set.
func (rs *Renderer) arcTo(center math32.Vector2, radius, start, end float32, move bool) {
	n := max(int(math32.Ceil(math32.Abs(end-start)/ArcStep)), 1)
	for i := 0; i <= n; i++ {
		p := math32.Vector2Polar(center, start+(end-start)*float32(i)/float32(n), radius)
		if i == 0 && move {
			rs.moveTo(p)
		} else {
			rs.lineTo(p)
		}
	}
}

// fill closes the path and draws it with the fill.
func (rs *Renderer) fill(f plot.Fill) {
	rs.ras.ClosePath()
	rs.ras.Draw(rs.image, rs.image.Bounds(), rs.source(f), image.Point{})
}

func (rs *Renderer) Bar(rect math32.Box2, radius float32, fill plot.Fill) {
	sz := rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	r := min(radius, sz.X/2, sz.Y/2)
	mn, mx := rect.Min, rect.Max
	rs.begin()
	rs.moveTo(math32.Vec2(mn.X, mx.Y))
	if r > 0 {
		rs.lineTo(math32.Vec2(mn.X, mn.Y+r))
		rs.quadTo(mn, math32.Vec2(mn.X+r, mn.Y))
		rs.lineTo(math32.Vec2(mx.X-r, mn.Y))
		rs.quadTo(math32.Vec2(mx.X, mn.Y), math32.Vec2(mx.X, mn.Y+r))
	} else {
		rs.lineTo(mn)
		rs.lineTo(math32.Vec2(mx.X, mn.Y))
	}
	rs.lineTo(mx)
	rs.fill(fill)
}

func (rs *Renderer) Line(from, to math32.Vector2, width float32, clr color.RGBA) {
	d := to.Sub(from)
	if width <= 0 || d.LengthSquared() == 0 {
		return
	}
	d = d.Normal().MulScalar(width / 2)
	n := math32.Vec2(-d.Y, d.X)
	rs.begin()
	rs.moveTo(from.Add(n))
	rs.lineTo(to.Add(n))
	rs.lineTo(to.Sub(n))
	rs.lineTo(from.Sub(n))
	rs.fill(plot.Solid(clr))
}

func (rs *Renderer) Circle(center math32.Vector2, radius float32, fill plot.Fill) {
	if radius <= 0 {
		return
	}
	rs.begin()
	rs.arcTo(center, radius, 0, math32.TwoPi, true)
	rs.fill(fill)
}

func (rs *Renderer) Triangle(a, b, c math32.Vector2, fill plot.Fill) {
	rs.begin()
	rs.moveTo(a)
	rs.lineTo(b)
	rs.lineTo(c)
	rs.fill(fill)
}

func (rs *Renderer) Arc(center math32.Vector2, start, end, inner, outer float32, fill plot.Fill) {
	if outer <= 0 || end == start {
		return
	}
	rs.begin()
	rs.arcTo(center, outer, start, end, true)
	if inner > 0 {
		rs.arcTo(center, inner, end, start, false)
	} else {
		rs.lineTo(center)
	}
	rs.fill(fill)
}
