// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 is a line segment from Start to End.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 returns the line segment from start to end.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Center returns the midpoint of the segment.
func (l Line2) Center() Vector2 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Length returns the length of the segment.
func (l Line2) Length() float32 {
	return l.Start.DistanceTo(l.End)
}
