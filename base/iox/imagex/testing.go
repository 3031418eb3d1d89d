// Copyright 2023 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// CompareColors returns true if no channel of the two colors
// differs by more than tol.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return absDiff(cc.R, ic.R) <= tol && absDiff(cc.G, ic.G) <= tol &&
		absDiff(cc.B, ic.B) <= tol && absDiff(cc.A, ic.A) <= tol
}

// DiffImage returns the difference between two images,
// with pixels having the abs of the difference between pixels.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{uint8(absDiff(cc.R, ic.R)), uint8(absDiff(cc.G, ic.G)), uint8(absDiff(cc.B, ic.B)), 255})
		}
	}
	return di
}

// AssertColorAt checks that the pixel at (x, y) of img is within tol
// of the expected color, reporting an error through t if it is not.
func AssertColorAt(t TestingT, img image.Image, x, y int, expected color.RGBA, tol int) bool {
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	if !CompareColors(got, expected, tol) {
		t.Errorf("imagex: expected color %v at (%d, %d), but got %v", expected, x, y, got)
		return false
	}
	return true
}
