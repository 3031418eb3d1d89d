// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/charts/math32/minmax"
)

// Category is a discrete scale that divides its pixel range into
// equal bands, one per label. Data values are label indexes.
type Category struct {

	// Labels are the category labels, in order.
	Labels []string

	// Pixel is the pixel range; it may be inverted.
	Pixel minmax.F64

	// Offset centers items in their bands instead of
	// placing them on band edges (grid lines).
	Offset bool
}

// NewCategory returns a category scale with the given labels,
// offset enabled and pixel range 0..100.
func NewCategory(labels ...string) *Category {
	return &Category{
		Labels: labels,
		Pixel:  minmax.F64{Min: 0, Max: 100},
		Offset: true,
	}
}

// SetLabels sets [Category.Labels].
func (cs *Category) SetLabels(labels ...string) *Category { cs.Labels = labels; return cs }

// AddLabel appends one label.
func (cs *Category) AddLabel(label string) *Category {
	cs.Labels = append(cs.Labels, label)
	return cs
}

// SetOffset sets [Category.Offset].
func (cs *Category) SetOffset(v bool) *Category { cs.Offset = v; return cs }

// Len returns the number of categories.
func (cs *Category) Len() int { return len(cs.Labels) }

// Label returns the label at index i, and false if out of range.
func (cs *Category) Label(i int) (string, bool) {
	if i < 0 || i >= len(cs.Labels) {
		return "", false
	}
	return cs.Labels[i], true
}

// SetPixelRange sets the pixel range.
func (cs *Category) SetPixelRange(start, end float64) {
	cs.Pixel.Set(start, end)
}

// step is the signed band width, following the pixel range direction.
func (cs *Category) step() float64 {
	if len(cs.Labels) == 0 {
		return 0
	}
	return (cs.Pixel.Max - cs.Pixel.Min) / float64(len(cs.Labels))
}

// BandWidth returns the pixel extent of each category band.
func (cs *Category) BandWidth() float64 {
	return math.Abs(cs.step())
}

// BarWidth returns the band width scaled by pct, clamped to [0.1, 1].
func (cs *Category) BarWidth(pct float64) float64 {
	return cs.BandWidth() * Clamp(pct, 0.1, 1)
}

// PixelForIndex returns the pixel position of category i:
// the band center when Offset is set, else the band start.
func (cs *Category) PixelForIndex(i int) float64 {
	if len(cs.Labels) == 0 {
		return cs.Pixel.Min
	}
	st := cs.step()
	p := cs.Pixel.Min + float64(i)*st
	if cs.Offset {
		p += st / 2
	}
	return p
}

// IndexForPixel returns the nearest category index to pixel p,
// clamped to the valid index range.
func (cs *Category) IndexForPixel(p float64) int {
	st := cs.step()
	if len(cs.Labels) == 0 || st == 0 {
		return 0
	}
	if cs.Offset {
		p -= st / 2
	}
	idx := math.Round((p - cs.Pixel.Min) / st)
	return int(Clamp(idx, 0, float64(len(cs.Labels)-1)))
}

// PixelForValue returns the pixel position of the category index
// nearest to v. Negative values map to index 0.
func (cs *Category) PixelForValue(v float64) float64 {
	return cs.PixelForIndex(int(max(math.Round(v), 0)))
}

// ValueForPixel returns the category index at pixel p.
func (cs *Category) ValueForPixel(p float64) float64 {
	return float64(cs.IndexForPixel(p))
}

// Ticks returns one tick per label, striding through the labels
// when there are more than opts.MaxTicksLimit.
func (cs *Category) Ticks(opts *TickOptions) []Tick {
	limit := 0
	if opts != nil {
		limit = opts.MaxTicksLimit
	}
	n := len(cs.Labels)
	stride := 1
	if limit > 0 && n > limit {
		stride = int(math.Ceil(float64(n) / float64(limit)))
	}
	ticks := make([]Tick, 0, n/stride+1)
	for i := 0; i < n; i += stride {
		ticks = append(ticks, NewTick(float64(i), cs.Labels[i]))
	}
	return ticks
}

// DataBounds returns the index range 0..Len()-1.
func (cs *Category) DataBounds() minmax.F64 {
	return minmax.F64{Min: 0, Max: float64(max(len(cs.Labels)-1, 0))}
}
