// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "cogentcore.org/charts/colors"

// StepKind specifies a form of a connection of two consecutive points.
type StepKind int32 //enums:enum

const (
	// NoStep connects two points by simple line
	NoStep StepKind = iota

	// PreStep connects two points by following lines: vertical, horizontal.
	PreStep

	// MidStep connects two points by following lines: horizontal, vertical, horizontal.
	// Vertical line is placed in the middle of the interval.
	MidStep

	// PostStep connects two points by following lines: horizontal, vertical.
	PostStep
)

// Style contains the chart type specific toggles. Each chart
// reads the ones relevant to it and ignores the rest.
type Style struct {

	// Palette assigns colors to datasets without an explicit color.
	Palette colors.Palettes

	// Gradient enables gradient fills: vertical for bars and line
	// areas, radial for points, pie slices, radar areas and chord ribbons.
	Gradient bool

	// GradientKind selects between radial and angular gradients for
	// pie and doughnut slices.
	GradientKind GradientKinds

	// Tension is the default line tension for datasets that have none,
	// in [0, 1].
	Tension float64

	// Stepped draws lines as steps, disabling cubic interpolation.
	Stepped StepKind

	// Monotone uses monotone cubic interpolation, which does
	// not overshoot the data, instead of Catmull-Rom tangents.
	Monotone bool

	// ShowPoints draws the points of line and radar charts.
	ShowPoints bool

	// Fill fills the area under lines and inside radar polygons.
	Fill bool

	// Progressive reveals line points left to right at full height,
	// instead of growing their values.
	Progressive bool

	// Stagger gives each bar its own animation, delayed by
	// DelayPerIndex and DelayPerDataset.
	Stagger bool

	// DelayPerIndex is the stagger delay per data index, in milliseconds.
	DelayPerIndex float64

	// DelayPerDataset is the stagger delay per dataset, in milliseconds.
	DelayPerDataset float64

	// Directed narrows the target end of chord ribbons.
	Directed bool

	// SortFlows packs chord ribbons by descending value within
	// each group, instead of matrix order.
	SortFlows bool
}

// NewStyle returns a new Style object with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.GradientKind = GradientRadial
	st.ShowPoints = true
	st.DelayPerIndex = 100
	st.DelayPerDataset = 50
}

// StaggerDelay returns the stagger delay in milliseconds for the
// element at the given dataset and data index.
func (st *Style) StaggerDelay(dataset, index int) float64 {
	return float64(index)*st.DelayPerIndex + float64(dataset)*st.DelayPerDataset
}
