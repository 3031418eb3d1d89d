// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Tick is one axis tick mark with its label.
type Tick struct {

	// Value is the data value of the tick.
	Value float64

	// Label is the formatted text for the tick.
	Label string

	// Major is false for minor ticks, which are drawn without labels.
	Major bool
}

// NewTick returns a major tick.
func NewTick(value float64, label string) Tick {
	return Tick{Value: value, Label: label, Major: true}
}

// MinorTick returns a minor tick.
func MinorTick(value float64, label string) Tick {
	return Tick{Value: value, Label: label}
}

// TickAlgorithms are the ways a linear scale can choose its ticks.
type TickAlgorithms int32 //enums:enum -trim-prefix Tick

const (
	// TickNice steps by a nice 1, 2 or 5 power-of-ten step from
	// the first step multiple at or above the minimum.
	TickNice TickAlgorithms = iota

	// TickExtended uses the Talbot, Lin and Hanrahan extended
	// labelling optimization.
	TickExtended
)

// TickOptions are the options for generating and drawing axis ticks.
type TickOptions struct {

	// Display is whether ticks are drawn.
	Display bool `default:"true"`

	// FontSize is the label font size.
	FontSize float64 `default:"11"`

	// Padding is the space between the tick and its label.
	Padding float64 `default:"3"`

	// MaxTicksLimit is the maximum number of ticks to generate.
	MaxTicksLimit int `default:"11"`

	// StepSize is a fixed step between ticks; 0 means automatic.
	StepSize float64

	// IncludeBounds forces ticks at the exact data bounds.
	IncludeBounds bool `default:"true"`

	// MaxRotation is the maximum label rotation in degrees.
	MaxRotation float64 `default:"50"`

	// MinRotation is the minimum label rotation in degrees.
	MinRotation float64

	// Algorithm chooses how linear ticks are placed.
	Algorithm TickAlgorithms
}

// Defaults sets the default tick options.
func (to *TickOptions) Defaults() {
	to.Display = true
	to.FontSize = 11
	to.Padding = 3
	to.MaxTicksLimit = 11
	to.IncludeBounds = true
	to.MaxRotation = 50
}

// NewTickOptions returns new [TickOptions] with defaults applied.
func NewTickOptions() *TickOptions {
	to := &TickOptions{}
	to.Defaults()
	return to
}

// SetMaxTicksLimit sets the [TickOptions.MaxTicksLimit]:
// MaxTicksLimit is the maximum number of ticks to generate.
func (to *TickOptions) SetMaxTicksLimit(v int) *TickOptions {
	to.MaxTicksLimit = v
	return to
}

// SetStepSize sets the [TickOptions.StepSize]:
// StepSize is a fixed step between ticks; 0 means automatic.
func (to *TickOptions) SetStepSize(v float64) *TickOptions {
	to.StepSize = v
	return to
}

// SetIncludeBounds sets the [TickOptions.IncludeBounds]:
// IncludeBounds forces ticks at the exact data bounds.
func (to *TickOptions) SetIncludeBounds(v bool) *TickOptions {
	to.IncludeBounds = v
	return to
}

// SetAlgorithm sets the [TickOptions.Algorithm]:
// Algorithm chooses how linear ticks are placed.
func (to *TickOptions) SetAlgorithm(v TickAlgorithms) *TickOptions {
	to.Algorithm = v
	return to
}
