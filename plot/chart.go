// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot has the data model, options, drawing interface and
// frame driving shared by all chart types. The chart layouts
// themselves are in package plots.
package plot

//go:generate core generate

import (
	"time"

	"cogentcore.org/charts/anim"
	"cogentcore.org/charts/math32"
)

// Kinds are the chart types.
type Kinds int32 //enums:enum

const (
	Bar Kinds = iota
	HorizontalBar
	Line
	Scatter
	Bubble
	Pie
	Doughnut
	PolarArea
	Radar
	Chord
	Combo
)

// Chart is a chart layout driven one frame at a time by a host:
// the host calls Update with the current time, then Draw if it
// returned true or the chart otherwise needs redrawing, and requests
// another frame for as long as Update returns true.
type Chart interface {

	// SetData replaces the data.
	SetData(dt *Data)

	// SetOptions sets a deep copy of the options.
	SetOptions(o *Options)

	// Layout sets the pixel area the chart draws into.
	Layout(area math32.Box2)

	// Update advances the animation to the given time in seconds,
	// returning whether another frame is needed.
	Update(now float64) bool

	// Draw draws the current state of the chart.
	Draw(pt Painter)

	// ReplayAnimation restarts the entry animation at the given time.
	ReplayAnimation(now float64)

	// IsAnimating returns whether an animation is in progress.
	IsAnimating() bool

	// MouseMove updates the hovered element for the pointer position,
	// returning whether it changed.
	MouseMove(pos math32.Vector2) bool

	// MouseDown returns the element under the pointer, logging it,
	// or nil.
	MouseDown(pos math32.Vector2) *HitData

	// Hovered returns the hovered element, or nil.
	Hovered() *HitData

	// LegendItems returns the legend entries.
	LegendItems() []LegendItem
}

// Apply sets the data and options on the chart, lays it out in the
// given area and starts its animation at the given time.
func Apply(ch Chart, dt *Data, o *Options, area math32.Box2, now float64) Chart {
	ch.SetData(dt)
	if o != nil {
		ch.SetOptions(o)
	}
	ch.Layout(area)
	ch.ReplayAnimation(now)
	return ch
}

// Clock is the host time collaborator: the current time in seconds,
// and a request for another animation frame.
type Clock interface {
	anim.Clock
	RequestFrame()
}

// FrameClock is a [Clock] for offline rendering and tests, where
// each requested frame advances time by a fixed interval.
type FrameClock struct {
	anim.ManualClock

	// Interval is the time between frames.
	Interval time.Duration

	// Frames is the number of frames requested so far.
	Frames int
}

// NewFrameClock returns a [FrameClock] at time zero with the given
// frame interval; 0 means 60 frames per second.
func NewFrameClock(interval time.Duration) *FrameClock {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &FrameClock{Interval: interval}
}

func (c *FrameClock) RequestFrame() {
	c.Frames++
	c.Advance(c.Interval)
}

// TickerClock is a wall-clock [Clock] whose frame requests block
// until the next frame interval.
type TickerClock struct {
	*anim.WallClock
	Interval time.Duration
}

// NewTickerClock returns a new [TickerClock]; an interval of 0
// means 60 frames per second.
func NewTickerClock(interval time.Duration) *TickerClock {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerClock{WallClock: anim.NewWallClock(), Interval: interval}
}

func (c *TickerClock) RequestFrame() {
	time.Sleep(c.Interval)
}

// Run drives the chart until its animation completes or maxFrames
// frames have been requested (0 for no limit), drawing each frame
// with the painter if it is non-nil. It returns the number of frames.
func Run(ch Chart, clock Clock, pt Painter, maxFrames int) int {
	frames := 0
	for {
		more := ch.Update(clock.Now())
		if pt != nil {
			ch.Draw(pt)
		}
		frames++
		if !more || (maxFrames > 0 && frames >= maxFrames) {
			return frames
		}
		clock.RequestFrame()
	}
}
