// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "time"

// Clock is the source of the current time for animations,
// in seconds from an arbitrary origin.
type Clock interface {
	Now() float64
}

// WallClock is a [Clock] measuring wall-clock time since its creation.
type WallClock struct {
	origin time.Time
}

// NewWallClock returns a new [WallClock] starting at zero.
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.origin).Seconds()
}

// ManualClock is a [Clock] that only moves when advanced,
// for deterministic frame stepping.
type ManualClock struct {
	T float64
}

func (c *ManualClock) Now() float64 {
	return c.T
}

// Advance moves the clock forward by the given duration.
func (c *ManualClock) Advance(d time.Duration) {
	c.T += d.Seconds()
}
