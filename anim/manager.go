// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"time"

	"cogentcore.org/charts/easing"
)

// Manager holds one [Animator] per rendered element, with each
// successive animator delayed by a uniform stagger.
type Manager struct {

	// Stagger is the additional delay of each animator
	// relative to the previous one.
	Stagger time.Duration

	// Animators are the managed animators, in element order.
	Animators []*Animator
}

// NewManager returns a new empty [Manager].
func NewManager() *Manager {
	return &Manager{}
}

// SetStagger sets the [Manager.Stagger]:
// Stagger is the additional delay of each animator
// relative to the previous one.
func (m *Manager) SetStagger(v time.Duration) *Manager {
	m.Stagger = v
	return m
}

// Create replaces the animators with count new ones of the given
// duration and easing, animator i having a delay of i*Stagger.
func (m *Manager) Create(count int, duration time.Duration, ease easing.Functions) {
	m.Animators = make([]*Animator, count)
	for i := 0; i < count; i++ {
		m.Animators[i] = New(duration).SetEasing(ease).SetDelay(time.Duration(i) * m.Stagger)
	}
}

// Add adds the given animator, which keeps its own delay.
func (m *Manager) Add(a *Animator) {
	m.Animators = append(m.Animators, a)
}

// Len returns the number of animators.
func (m *Manager) Len() int {
	return len(m.Animators)
}

// StartAll starts all animators at the given time; their
// delays produce the stagger.
func (m *Manager) StartAll(now float64) {
	for _, a := range m.Animators {
		a.Start(now)
	}
}

// UpdateAll updates every animator and returns true if any
// of them is still active.
func (m *Manager) UpdateAll(now float64) bool {
	active := false
	for _, a := range m.Animators {
		if a.Update(now) {
			active = true
		}
	}
	return active
}

// Get returns the animator at the given index, or nil if out of range.
func (m *Manager) Get(i int) *Animator {
	if i < 0 || i >= len(m.Animators) {
		return nil
	}
	return m.Animators[i]
}

// Progress returns the eased progress of the animator at the given
// index, or 1 if there is no such animator, so that elements without
// an animator are drawn in their final state.
func (m *Manager) Progress(i int) float64 {
	if a := m.Get(i); a != nil {
		return a.Progress()
	}
	return 1
}

// IsComplete returns whether every animator has completed.
func (m *Manager) IsComplete() bool {
	for _, a := range m.Animators {
		if !a.IsComplete() {
			return false
		}
	}
	return true
}

// IsRunning returns whether any animator is running.
func (m *Manager) IsRunning() bool {
	for _, a := range m.Animators {
		if a.IsRunning() {
			return true
		}
	}
	return false
}

// Reset resets every animator to [Idle].
func (m *Manager) Reset() {
	for _, a := range m.Animators {
		a.Reset()
	}
}

// SkipToEnd forces every animator to completion.
func (m *Manager) SkipToEnd() {
	for _, a := range m.Animators {
		a.SkipToEnd()
	}
}

// Replay returns a new manager with fresh copies of every animator,
// all started at the given time.
func (m *Manager) Replay(now float64) *Manager {
	nm := &Manager{Stagger: m.Stagger, Animators: make([]*Animator, len(m.Animators))}
	for i, a := range m.Animators {
		nm.Animators[i] = a.Replay(now)
	}
	return nm
}
