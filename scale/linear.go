// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"cogentcore.org/charts/math32/minmax"
)

// epsilon is the data span below which a range is considered degenerate.
const epsilon = 2.220446049250313e-16

// Linear is a continuous scale mapping a numeric data range
// linearly onto a pixel range.
type Linear struct {

	// Data is the data range, after nice rounding.
	Data minmax.F64

	// Pixel is the pixel range; Min maps to Data.Min.
	// It may be inverted (Min > Max), as for y axes.
	Pixel minmax.F64

	// Nice rounds the data range outward to round numbers.
	Nice bool

	// BeginAtZero forces the data range to include zero.
	BeginAtZero bool

	// Clamp limits [Linear.Ratio] to [0, 1].
	Clamp bool

	// StepSize is a fixed tick step; 0 means automatic.
	StepSize float64

	// Reverse flips the direction of the pixel range.
	Reverse bool
}

// NewLinear returns a linear scale with data range 0..1,
// pixel range 0..100 and nice rounding enabled.
func NewLinear() *Linear {
	return &Linear{
		Data:  minmax.F64{Min: 0, Max: 1},
		Pixel: minmax.F64{Min: 0, Max: 100},
		Nice:  true,
	}
}

// SetNice sets [Linear.Nice].
func (ls *Linear) SetNice(v bool) *Linear { ls.Nice = v; return ls }

// SetBeginAtZero sets [Linear.BeginAtZero].
func (ls *Linear) SetBeginAtZero(v bool) *Linear { ls.BeginAtZero = v; return ls }

// SetClamp sets [Linear.Clamp].
func (ls *Linear) SetClamp(v bool) *Linear { ls.Clamp = v; return ls }

// SetStepSize sets [Linear.StepSize].
func (ls *Linear) SetStepSize(v float64) *Linear { ls.StepSize = v; return ls }

// SetReverse sets [Linear.Reverse].
func (ls *Linear) SetReverse(v bool) *Linear { ls.Reverse = v; return ls }

// SetDataRange sets the data range from the raw data bounds,
// applying BeginAtZero, then nice rounding, and widening a
// degenerate range by 1 on each side.
func (ls *Linear) SetDataRange(mn, mx float64) {
	if ls.BeginAtZero {
		mn = min(mn, 0)
		mx = max(mx, 0)
	}
	if ls.Nice {
		nmn, nmx := NiceBounds(mn, mx)
		if !(ls.BeginAtZero && mn == 0) {
			mn = nmn
		}
		mx = nmx
	}
	if math.Abs(mx-mn) < epsilon {
		mn -= 1
		mx += 1
	}
	ls.Data.Set(mn, mx)
}

// SetPixelRange sets the pixel range that Data.Min and Data.Max map to.
func (ls *Linear) SetPixelRange(start, end float64) {
	if ls.Reverse {
		start, end = end, start
	}
	ls.Pixel.Set(start, end)
}

// Ratio returns the normalized position of v in the data range,
// 0.5 for a zero-width range, clamped to [0, 1] when Clamp is set.
func (ls *Linear) Ratio(v float64) float64 {
	span := ls.Data.Max - ls.Data.Min
	if span == 0 {
		return 0.5
	}
	r := (v - ls.Data.Min) / span
	if ls.Clamp {
		r = Clamp(r, 0, 1)
	}
	return r
}

// PixelForValue returns the pixel position of data value v.
func (ls *Linear) PixelForValue(v float64) float64 {
	return ls.Pixel.Min + ls.Ratio(v)*(ls.Pixel.Max-ls.Pixel.Min)
}

// ValueForPixel returns the data value at pixel position p.
// It returns Data.Min for a zero-width pixel range.
func (ls *Linear) ValueForPixel(p float64) float64 {
	pspan := ls.Pixel.Max - ls.Pixel.Min
	if math.Abs(pspan) < epsilon {
		return ls.Data.Min
	}
	return ls.Data.Min + (p-ls.Pixel.Min)/pspan*(ls.Data.Max-ls.Data.Min)
}

// Step returns the tick step for the given tick options.
func (ls *Linear) Step(opts *TickOptions) float64 {
	switch {
	case opts != nil && opts.StepSize > 0:
		return opts.StepSize
	case ls.StepSize > 0:
		return ls.StepSize
	}
	limit := 11
	if opts != nil {
		limit = opts.MaxTicksLimit
	}
	return NiceStep(ls.Data.Max-ls.Data.Min, limit)
}

// Ticks returns the ticks for the current data range. A nil opts
// uses the default [TickOptions]. At most 100 times MaxTicksLimit
// ticks are generated for an explicit step.
func (ls *Linear) Ticks(opts *TickOptions) []Tick {
	if opts == nil {
		opts = NewTickOptions()
	}
	if opts.Algorithm == TickExtended && opts.StepSize <= 0 && ls.StepSize <= 0 {
		if ticks := ls.extendedTicks(opts); len(ticks) > 0 {
			return ticks
		}
	}
	mn, mx := ls.Data.Min, ls.Data.Max
	step := ls.Step(opts)
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil
	}
	eps := step * 1e-4
	start := math.Ceil(mn/step) * step
	var ticks []Tick
	add := func(v float64) {
		if n := len(ticks); n > 0 && math.Abs(ticks[n-1].Value-v) < eps {
			return
		}
		ticks = append(ticks, NewTick(v, FormatNumber(v)))
	}
	if opts.IncludeBounds && start > mn+eps {
		add(mn)
	}
	limit := max(opts.MaxTicksLimit, 1) * 100
	for i := 0; i < limit; i++ {
		v := start + float64(i)*step
		if v > mx+eps {
			break
		}
		add(v)
	}
	if opts.IncludeBounds && len(ticks) > 0 && math.Abs(mx-ticks[len(ticks)-1].Value) > eps {
		add(mx)
	}
	return ticks
}

func (ls *Linear) extendedTicks(opts *TickOptions) []Tick {
	want := max(opts.MaxTicksLimit/2, 2)
	vals, step := extendedLabels(ls.Data.Min, ls.Data.Max, want, opts.IncludeBounds)
	if len(vals) == 0 {
		return nil
	}
	dec := DecimalPlacesForStep(step)
	ticks := make([]Tick, 0, len(vals))
	for _, v := range vals {
		if math.Abs(v) < step*1e-6 {
			v = 0
		}
		label := FormatNumber(v)
		if dec > 0 && math.Abs(v) < 1e3 {
			label = FormatNumberPrecision(v, dec)
		}
		ticks = append(ticks, NewTick(v, label))
	}
	return ticks
}
