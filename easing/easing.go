// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package easing provides the standard family of easing functions
// that map normalized animation progress in [0, 1] onto eased progress.
package easing

//go:generate core generate

import "math"

// Functions are the available easing functions.
type Functions int32 //enums:enum

const (
	// Linear is no easing: progress is returned unchanged.
	Linear Functions = iota

	InQuad
	OutQuad
	InOutQuad

	InCubic
	OutCubic
	InOutCubic

	InQuart

	// OutQuart is the default easing for chart animations.
	OutQuart
	InOutQuart

	InQuint
	OutQuint
	InOutQuint

	InSine
	OutSine
	InOutSine

	InExpo
	OutExpo
	InOutExpo

	InCirc
	OutCirc
	InOutCirc

	// InBack overshoots below 0 before accelerating to the end.
	InBack

	// OutBack overshoots above 1 before settling.
	OutBack
	InOutBack

	// InElastic oscillates with growing amplitude.
	InElastic

	// OutElastic oscillates around 1 with decaying amplitude.
	OutElastic
	InOutElastic

	InBounce

	// OutBounce bounces off the end value like a dropped ball.
	OutBounce
	InOutBounce
)

// Default is the easing used when none is specified.
const Default = OutQuart

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5

	bounceN1 = 7.5625
	bounceD1 = 2.75
)

// Monotonic returns whether the function never decreases over [0, 1].
// Back, elastic and bounce functions overshoot or oscillate.
func (f Functions) Monotonic() bool {
	return f < InBack
}

// Apply returns the eased progress for t, which is clamped to [0, 1]
// first. The result is exactly 0 at t == 0 and exactly 1 at t == 1
// for every function.
func Apply(t float64, f Functions) float64 {
	t = min(max(t, 0), 1)
	if t == 0 || t == 1 {
		return t
	}
	switch f {
	case InQuad:
		return t * t
	case OutQuad:
		return 1 - (1-t)*(1-t)
	case InOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case InCubic:
		return t * t * t
	case OutCubic:
		return 1 - math.Pow(1-t, 3)
	case InOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	case InQuart:
		return t * t * t * t
	case OutQuart:
		return 1 - math.Pow(1-t, 4)
	case InOutQuart:
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 4)/2
	case InQuint:
		return t * t * t * t * t
	case OutQuint:
		return 1 - math.Pow(1-t, 5)
	case InOutQuint:
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 5)/2
	case InSine:
		return 1 - math.Cos(t*math.Pi/2)
	case OutSine:
		return math.Sin(t * math.Pi / 2)
	case InOutSine:
		return -(math.Cos(math.Pi*t) - 1) / 2
	case InExpo:
		return math.Pow(2, 10*t-10)
	case OutExpo:
		return 1 - math.Pow(2, -10*t)
	case InOutExpo:
		if t < 0.5 {
			return math.Pow(2, 20*t-10) / 2
		}
		return (2 - math.Pow(2, -20*t+10)) / 2
	case InCirc:
		return 1 - math.Sqrt(1-t*t)
	case OutCirc:
		return math.Sqrt(1 - math.Pow(t-1, 2))
	case InOutCirc:
		if t < 0.5 {
			return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
		}
		return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
	case InBack:
		return backC3*t*t*t - backC1*t*t
	case OutBack:
		return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
	case InOutBack:
		if t < 0.5 {
			return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
		}
		return (math.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2
	case InElastic:
		return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
	case OutElastic:
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
	case InOutElastic:
		if t < 0.5 {
			return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
		}
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
	case InBounce:
		return 1 - outBounce(1-t)
	case OutBounce:
		return outBounce(t)
	case InOutBounce:
		if t < 0.5 {
			return (1 - outBounce(1-2*t)) / 2
		}
		return (1 + outBounce(2*t-1)) / 2
	}
	return t
}

// outBounce is the four-piece parabola shared by the bounce functions.
func outBounce(t float64) float64 {
	switch {
	case t < 1/bounceD1:
		return bounceN1 * t * t
	case t < 2/bounceD1:
		t -= 1.5 / bounceD1
		return bounceN1*t*t + 0.75
	case t < 2.5/bounceD1:
		t -= 2.25 / bounceD1
		return bounceN1*t*t + 0.9375
	default:
		t -= 2.625 / bounceD1
		return bounceN1*t*t + 0.984375
	}
}

// Interpolate returns the value between from and to at the eased
// progress of t.
func Interpolate(from, to, t float64, f Functions) float64 {
	return from + (to-from)*Apply(t, f)
}
