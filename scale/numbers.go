// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// NiceStep returns a human-friendly tick step for the given data span
// and maximum number of ticks: the smallest of {1, 2, 5, 10}×10^k that
// is at least span/maxTicks. It returns 1 for a zero span or zero maxTicks.
func NiceStep(span float64, maxTicks int) float64 {
	if span == 0 || maxTicks <= 0 {
		return 1
	}
	raw := math.Abs(span) / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	residual := raw / mag
	var nice float64
	switch {
	case residual <= 1:
		nice = 1
	case residual <= 2:
		nice = 2
	case residual <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * mag
}

// NiceBounds expands [min, max] outward to round numbers at the order of
// magnitude of the span. A zero span is widened by 1 on both sides.
func NiceBounds(min, max float64) (float64, float64) {
	span := max - min
	if span == 0 {
		return min - 1, max + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(math.Abs(span))))
	return math.Floor(min/mag) * mag, math.Ceil(max/mag) * mag
}

// FormatNumber formats a tick value for display: K/M/B suffixes for
// large magnitudes, no decimals for integers, and more decimals for
// small magnitudes.
func FormatNumber(v float64) string {
	av := math.Abs(v)
	switch {
	case av < 1e-10:
		return "0"
	case av >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case av >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case av >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	}
	if _, frac := math.Modf(v); math.Abs(frac) < 1e-10 {
		return fmt.Sprintf("%.0f", v)
	}
	switch {
	case av < 0.01:
		return fmt.Sprintf("%.4f", v)
	case av < 1:
		return fmt.Sprintf("%.2f", v)
	}
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatNumberPrecision formats v with the given number of decimals.
func FormatNumberPrecision(v float64, decimals int) string {
	return fmt.Sprintf("%.*f", decimals, v)
}

// FormatPercent formats a fraction as a percentage with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// FormatPercentPrecision formats a fraction as a percentage
// with the given number of decimals.
func FormatPercentPrecision(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v*100)
}

// DecimalPlacesForStep returns the number of decimals needed
// to distinguish ticks the given step apart, at most 10.
func DecimalPlacesForStep(step float64) int {
	if step >= 1 || step <= 0 {
		return 0
	}
	return min(int(-math.Floor(math.Log10(step))), 10)
}

// Lerp returns the value at t between a and b.
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

// InverseLerp returns the position of v between a and b,
// or 0 if a and b are equal.
func InverseLerp[F constraints.Float](a, b, v F) F {
	if math.Abs(float64(b-a)) < 2.220446049250313e-16 {
		return 0
	}
	return (v - a) / (b - a)
}

// Clamp returns v limited to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// MapRange maps v from [fromMin, fromMax] onto [toMin, toMax].
func MapRange[F constraints.Float](v, fromMin, fromMax, toMin, toMax F) F {
	return Lerp(toMin, toMax, InverseLerp(fromMin, fromMax, v))
}
