// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"
	"time"

	"cogentcore.org/charts/easing"
	"github.com/stretchr/testify/assert"
)

func TestAnimatorBasic(t *testing.T) {
	a := New(time.Second)
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, easing.OutQuart, a.Easing)
	a.Start(0)
	assert.True(t, a.IsRunning())
	assert.False(t, a.IsComplete())

	assert.True(t, a.Update(0.5))
	assert.Greater(t, a.RawProgress(), 0.0)
	assert.Less(t, a.RawProgress(), 1.0)
	assert.Equal(t, Running, a.State())

	assert.False(t, a.Update(1.5))
	assert.True(t, a.IsComplete())
	assert.Equal(t, 1.0, a.Progress())
	assert.False(t, a.Update(2))
}

func TestAnimatorDelay(t *testing.T) {
	a := NewMs(1000).SetDelay(500 * time.Millisecond)
	a.Start(0)
	assert.Equal(t, Delayed, a.State())
	assert.True(t, a.Update(0.3))
	assert.Equal(t, 0.0, a.RawProgress())
	assert.Equal(t, Delayed, a.State())
	assert.True(t, a.Update(1.0))
	assert.Greater(t, a.RawProgress(), 0.0)
	assert.InDelta(t, 0.5, a.RawProgress(), 1e-9)
}

func TestAnimatorNotStarted(t *testing.T) {
	a := New(time.Second)
	assert.False(t, a.Update(10))
	assert.Equal(t, 0.0, a.RawProgress())
	assert.False(t, a.IsRunning())
}

func TestAnimatorZeroDuration(t *testing.T) {
	a := New(0)
	a.Start(3)
	assert.False(t, a.Update(3))
	assert.True(t, a.IsComplete())
	assert.Equal(t, 1.0, a.Progress())
}

func TestAnimatorInterpolate(t *testing.T) {
	a := New(time.Second).SetEasing(easing.Linear)
	a.Start(0)
	a.Update(0.5)
	assert.InDelta(t, 50.0, a.Interpolate(0, 100), 0.1)
}

func TestAnimatorResetSkip(t *testing.T) {
	a := New(time.Second)
	a.Start(0)
	a.Update(0.5)
	a.Reset()
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 0.0, a.RawProgress())
	assert.Equal(t, time.Second, a.Duration)

	a.Start(0)
	a.SkipToEnd()
	assert.True(t, a.IsComplete())
	assert.Equal(t, 1.0, a.Progress())
	assert.False(t, a.Update(0.1))
}

func TestAnimatorReplay(t *testing.T) {
	a := New(time.Second).SetEasing(easing.InQuad).SetDelay(time.Millisecond)
	a.Start(0)
	a.SkipToEnd()
	b := a.Replay(5)
	assert.NotSame(t, a, b)
	assert.True(t, a.IsComplete())
	assert.True(t, b.IsRunning())
	assert.Equal(t, easing.InQuad, b.Easing)
	assert.Equal(t, time.Millisecond, b.Delay)
	b.Update(5.501)
	assert.InDelta(t, 0.5, b.RawProgress(), 1e-9)
}

func TestManager(t *testing.T) {
	m := NewManager().SetStagger(100 * time.Millisecond)
	m.Create(3, 500*time.Millisecond, easing.OutQuart)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 200*time.Millisecond, m.Get(2).Delay)
	m.StartAll(0)
	assert.False(t, m.IsComplete())
	assert.True(t, m.IsRunning())

	assert.True(t, m.UpdateAll(0.55))
	assert.True(t, m.Get(0).IsComplete())
	assert.False(t, m.Get(2).IsComplete())

	assert.False(t, m.UpdateAll(2.0))
	assert.True(t, m.IsComplete())
	assert.Equal(t, 1.0, m.Progress(99))
	assert.Nil(t, m.Get(-1))

	r := m.Replay(3)
	assert.False(t, r.IsComplete())
	assert.True(t, m.IsComplete())
	r.SkipToEnd()
	assert.True(t, r.IsComplete())
	r.Reset()
	assert.False(t, r.IsRunning())
}

func TestClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 0.25, c.Now())
	w := NewWallClock()
	assert.GreaterOrEqual(t, w.Now(), 0.0)
	var _ Clock = w
}
