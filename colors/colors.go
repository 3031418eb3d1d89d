// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the chart color palettes and color
// manipulation: parsing, lightening, darkening, alpha and blending.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/charts/base/errors"
	"cogentcore.org/charts/math32"
	"golang.org/x/image/colornames"
)

// IsNil returns whether the color is the nil initial default color
func IsNil(c color.Color) bool {
	return c == nil || c == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as a non alpha-premultiplied color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromRGB returns an opaque color from 8-bit components.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromRGBA returns a color from 8-bit components and
// a 0-1 alpha applied to them.
func FromRGBA(r, g, b uint8, a float32) color.RGBA {
	return WithAlpha(FromRGB(r, g, b), a)
}

// FromName returns the color value specified by the given
// CSS standard color name, case-insensitively.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string,
// which can be a hex value, a standard color name, or
// "none" or "transparent".
func FromString(str string) (color.RGBA, error) {
	if len(str) == 0 {
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case lstr == "none", lstr == "off", lstr == "transparent":
		return color.RGBA{}, nil
	}
	return FromName(lstr)
}

// LogFromString returns [FromString], logging any error.
func LogFromString(str string) color.RGBA {
	return errors.Log1(FromString(str))
}

// FromHex parses the given hex color string, in the #rgb,
// #rrggbb or #rrggbbaa forms, with or without the #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a uint8
	a = 255
	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil || n < 3 {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return AsRGBA(color.NRGBA{r, g, b, a}), nil
}

// AsHex returns the color as a standard #rrggbb string,
// with a trailing alpha pair if it is not opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := AsNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// WithAlpha returns the given color with its alpha set to the
// given value between 0 and 1.
func WithAlpha(c color.Color, a float32) color.RGBA {
	n := AsNRGBA(c)
	n.A = unit8(a)
	return AsRGBA(n)
}

// Alpha returns the alpha of the color between 0 and 1.
func Alpha(c color.Color) float32 {
	return float32(AsRGBA(c).A) / 255
}

// Lighten moves each color channel the given fraction
// of the way toward white, keeping alpha.
func Lighten(c color.Color, amount float32) color.RGBA {
	n := AsNRGBA(c)
	f := func(v uint8) uint8 {
		x := float32(v) / 255
		return unit8(x + (1-x)*amount)
	}
	n.R, n.G, n.B = f(n.R), f(n.G), f(n.B)
	return AsRGBA(n)
}

// Darken scales each color channel down by the given fraction,
// keeping alpha.
func Darken(c color.Color, amount float32) color.RGBA {
	n := AsNRGBA(c)
	f := func(v uint8) uint8 {
		return unit8(float32(v) / 255 * (1 - amount))
	}
	n.R, n.G, n.B = f(n.R), f(n.G), f(n.B)
	return AsRGBA(n)
}

// Lerp linearly interpolates every channel, alpha included,
// from one color to another, with t clamped to [0, 1].
func Lerp(from, to color.Color, t float32) color.RGBA {
	t = math32.Clamp(t, 0, 1)
	a, b := AsNRGBA(from), AsNRGBA(to)
	f := func(x, y uint8) uint8 {
		return unit8(math32.Lerp(float32(x)/255, float32(y)/255, t))
	}
	return AsRGBA(color.NRGBA{f(a.R, b.R), f(a.G, b.G), f(a.B, b.B), f(a.A, b.A)})
}

// unit8 converts a 0-1 value to a clamped, rounded 8-bit channel.
func unit8(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}
