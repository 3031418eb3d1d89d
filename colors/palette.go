// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// ChartColors is the default dataset palette.
var ChartColors = []color.RGBA{
	{0x4a, 0xc0, 0xc0, 0xff}, // teal
	{0xff, 0x63, 0x62, 0xff}, // coral
	{0xff, 0xce, 0x4c, 0xff}, // gold
	{0x9b, 0x59, 0xb6, 0xff}, // purple
	{0x34, 0x98, 0xdb, 0xff}, // blue
	{0x2e, 0xcc, 0x71, 0xff}, // green
	{0xe6, 0x7e, 0x22, 0xff}, // orange
	{0xe0, 0x6a, 0x9a, 0xff}, // pink
	{0x72, 0x88, 0x99, 0xff}, // slate
	{0x9b, 0xad, 0x48, 0xff}, // olive
}

// PastelColors is a light version of [ChartColors].
var PastelColors = []color.RGBA{
	{0xa5, 0xe0, 0xe0, 0xff},
	{0xff, 0xb1, 0xb0, 0xff},
	{0xff, 0xe7, 0xa5, 0xff},
	{0xcd, 0xab, 0xdb, 0xff},
	{0x99, 0xcb, 0xed, 0xff},
	{0x96, 0xe6, 0xb8, 0xff},
	{0xf2, 0xbf, 0x91, 0xff},
	{0xef, 0xb4, 0xcc, 0xff},
	{0xb8, 0xc4, 0xcc, 0xff},
	{0xcd, 0xd6, 0xa3, 0xff},
}

// Palette returns the [ChartColors] color for the given index,
// wrapping around.
func Palette(idx int) color.RGBA {
	return wrap(ChartColors, idx)
}

// PaletteAlpha returns [Palette] with the given 0-1 alpha.
func PaletteAlpha(idx int, a float32) color.RGBA {
	return WithAlpha(Palette(idx), a)
}

// Pastel returns the [PastelColors] color for the given index,
// wrapping around.
func Pastel(idx int) color.RGBA {
	return wrap(PastelColors, idx)
}

// PastelAlpha returns [Pastel] with the given 0-1 alpha.
func PastelAlpha(idx int, a float32) color.RGBA {
	return WithAlpha(Pastel(idx), a)
}

func wrap(p []color.RGBA, idx int) color.RGBA {
	n := len(p)
	return p[((idx%n)+n)%n]
}

// Palettes are the ways of assigning a color to a dataset index.
type Palettes int32 //enums:enum -trim-prefix Palette

const (
	// PaletteChart uses [ChartColors].
	PaletteChart Palettes = iota

	// PalettePastel uses [PastelColors].
	PalettePastel

	// PaletteSpaced uses [Spaced] colors, which do not repeat
	// for the first 40 indexes.
	PaletteSpaced
)

// At returns the color of the palette for the given index.
func (p Palettes) At(idx int) color.RGBA {
	switch p {
	case PalettePastel:
		return Pastel(idx)
	case PaletteSpaced:
		return Spaced(idx)
	default:
		return Palette(idx)
	}
}
