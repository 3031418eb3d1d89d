// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides wall-clock driven animation progress state
// machines for chart transitions. Times passed to Start and Update
// are in seconds, as returned by a [Clock].
package anim

//go:generate core generate

import (
	"time"

	"cogentcore.org/charts/easing"
)

// DefaultDuration is the duration of a chart animation
// when none is specified.
const DefaultDuration = 400 * time.Millisecond

// States are the states of an [Animator].
type States int32 //enums:enum

const (
	// Idle is the state before Start, and after Reset.
	Idle States = iota

	// Delayed is the state after Start while the delay has not yet elapsed.
	Delayed

	// Running is the state while progress advances from 0 to 1.
	Running

	// Completed is the terminal state, with progress 1.
	Completed
)

// Animator is a single animation progress state machine.
// It is driven by calling Update once per frame with the current time,
// and is never shared between goroutines.
type Animator struct {

	// Duration is the time from the end of the delay to completion.
	Duration time.Duration

	// Delay is the time after Start before progress begins.
	Delay time.Duration

	// Easing is applied to the raw progress in [Animator.Progress].
	Easing easing.Functions

	state    States
	start    float64
	progress float64
}

// New returns a new idle [Animator] with the given duration,
// the default easing and no delay.
func New(duration time.Duration) *Animator {
	return &Animator{Duration: duration, Easing: easing.Default}
}

// NewMs returns a new idle [Animator] with the given duration
// in milliseconds.
func NewMs(durationMs float64) *Animator {
	return New(Millis(durationMs))
}

// Millis converts a duration in (fractional) milliseconds to a [time.Duration].
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// SetEasing sets the [Animator.Easing]:
// Easing is applied to the raw progress in [Animator.Progress].
func (a *Animator) SetEasing(v easing.Functions) *Animator {
	a.Easing = v
	return a
}

// SetDelay sets the [Animator.Delay]:
// Delay is the time after Start before progress begins.
func (a *Animator) SetDelay(v time.Duration) *Animator {
	a.Delay = v
	return a
}

// State returns the current state.
func (a *Animator) State() States {
	return a.state
}

// Start starts (or restarts) the animation at the given time,
// resetting progress.
func (a *Animator) Start(now float64) {
	a.start = now
	a.progress = 0
	a.state = Running
	if a.Delay > 0 {
		a.state = Delayed
	}
}

// Update advances the animation to the given time, returning whether
// it still has work to do, in which case the host should request
// another frame. An animator that was never started returns false.
func (a *Animator) Update(now float64) bool {
	switch a.state {
	case Idle, Completed:
		return false
	}
	elapsed := now - a.start - a.Delay.Seconds()
	if elapsed < 0 {
		a.progress = 0
		a.state = Delayed
		return true
	}
	dur := a.Duration.Seconds()
	if dur <= 0 {
		a.finish()
		return false
	}
	raw := elapsed / dur
	if raw >= 1 {
		a.finish()
		return false
	}
	a.progress = raw
	a.state = Running
	return true
}

func (a *Animator) finish() {
	a.progress = 1
	a.state = Completed
}

// Progress returns the eased progress, which is what visual
// interpolation should use.
func (a *Animator) Progress() float64 {
	return easing.Apply(a.progress, a.Easing)
}

// RawProgress returns the linear progress in [0, 1] without easing.
func (a *Animator) RawProgress() float64 {
	return a.progress
}

// IsComplete returns whether the animation has completed.
func (a *Animator) IsComplete() bool {
	return a.state == Completed
}

// IsRunning returns whether the animation has been started and
// has not yet completed, including during its delay.
func (a *Animator) IsRunning() bool {
	return a.state == Delayed || a.state == Running
}

// Interpolate returns the value between from and to
// at the current eased progress.
func (a *Animator) Interpolate(from, to float64) float64 {
	return from + (to-from)*a.Progress()
}

// Reset returns the animator to [Idle], keeping its configuration.
func (a *Animator) Reset() {
	a.state = Idle
	a.start = 0
	a.progress = 0
}

// SkipToEnd forces the animation to completion.
func (a *Animator) SkipToEnd() {
	a.finish()
}

// Replay returns a new animator with the same configuration,
// started at the given time. The receiver is left untouched.
func (a *Animator) Replay(now float64) *Animator {
	na := New(a.Duration).SetEasing(a.Easing).SetDelay(a.Delay)
	na.Start(now)
	return na
}
