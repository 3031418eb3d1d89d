// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a range of float64 values.
package minmax

import "math"

// F64 is a Min to Max range of float64 values.
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values.
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets an inverted infinite range, ready for
// accumulating values with [F64.FitValInRange].
func (mr *F64) SetInfinity() {
	mr.Min = math.Inf(1)
	mr.Max = math.Inf(-1)
}

// IsValid returns whether Min <= Max.
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// Range returns Max - Min.
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// FitValInRange extends the range to include the value,
// returning whether it had to.
func (mr *F64) FitValInRange(val float64) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// Widen pads a range narrower than eps by pad on both sides,
// returning whether it did.
func (mr *F64) Widen(eps, pad float64) bool {
	if math.Abs(mr.Range()) >= eps {
		return false
	}
	mr.Min -= pad
	mr.Max += pad
	return true
}
