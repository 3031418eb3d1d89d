// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"

	"cogentcore.org/charts/anim"
	"cogentcore.org/charts/base/errors"
	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/easing"
	"cogentcore.org/charts/scale"
	"github.com/jinzhu/copier"
)

// Options is the configuration of a chart. Charts take a deep copy
// of the options they are given, so the caller may keep modifying
// its own value.
type Options struct {

	// Responsive makes the chart follow the size of its host area.
	Responsive bool

	// MaintainAspectRatio keeps AspectRatio when resizing.
	MaintainAspectRatio bool

	// AspectRatio is the width / height ratio.
	AspectRatio float64

	// Padding is the space around the whole chart.
	Padding Padding

	Title       TitleOptions
	Subtitle    TitleOptions
	Legend      LegendOptions
	Tooltip     TooltipOptions
	Animation   AnimationOptions
	Interaction InteractionOptions
	Scales      ScalesOptions

	// Style has the chart type specific toggles.
	Style Style
}

// NewOptions returns new [Options] with defaults applied.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

func (o *Options) Defaults() {
	o.Responsive = true
	o.MaintainAspectRatio = true
	o.AspectRatio = 2
	o.Padding = PaddingAll(10)
	o.Title.Defaults()
	o.Subtitle.Defaults()
	o.Subtitle.FontSize = 12
	o.Legend.Defaults()
	o.Tooltip.Defaults()
	o.Animation.Defaults()
	o.Interaction.Defaults()
	o.Scales.X.Defaults()
	o.Scales.Y.Defaults()
	o.Style.Defaults()
}

// Clone returns a deep copy of the options.
func (o *Options) Clone() *Options {
	c := &Options{}
	errors.Log(copier.CopyWithOption(c, o, copier.Option{DeepCopy: true}))
	return c
}

// SetTitle sets and displays the title.
func (o *Options) SetTitle(text string) *Options {
	o.Title.Display = true
	o.Title.Text = text
	return o
}

// SetSubtitle sets and displays the subtitle.
func (o *Options) SetSubtitle(text string) *Options {
	o.Subtitle.Display = true
	o.Subtitle.Text = text
	return o
}

// SetLegend sets the legend display and position.
func (o *Options) SetLegend(display bool, pos LegendPositions) *Options {
	o.Legend.Display = display
	o.Legend.Position = pos
	return o
}

// SetTooltip enables or disables the tooltip.
func (o *Options) SetTooltip(enabled bool) *Options {
	o.Tooltip.Enabled = enabled
	return o
}

// SetAnimationDuration sets the animation duration in milliseconds.
func (o *Options) SetAnimationDuration(ms float64) *Options {
	o.Animation.Duration = ms
	return o
}

// SetEasing sets the animation easing.
func (o *Options) SetEasing(e easing.Functions) *Options {
	o.Animation.Easing = e
	return o
}

// WithoutAnimation disables animation, so charts draw their
// final state on the first frame.
func (o *Options) WithoutAnimation() *Options {
	o.Animation.Duration = 0
	return o
}

// SetBeginAtZero sets [AxisOptions.BeginAtZero] of the Y axis.
func (o *Options) SetBeginAtZero(v bool) *Options {
	o.Scales.Y.BeginAtZero = v
	return o
}

// SetStacked sets [AxisOptions.Stacked] of both axes.
func (o *Options) SetStacked(v bool) *Options {
	o.Scales.X.Stacked = v
	o.Scales.Y.Stacked = v
	return o
}

// SetStyle calls the given function on the [Options.Style].
func (o *Options) SetStyle(f func(s *Style)) *Options {
	f(&o.Style)
	return o
}

// Padding is the space around each side of an area, in pixels.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// PaddingAll returns the same padding on all sides.
func PaddingAll(v float64) Padding {
	return Padding{v, v, v, v}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// Aligns are alignments along an axis.
type Aligns int32 //enums:enum

const (
	Start Aligns = iota
	Center
	End
)

// LegendPositions are the places the legend can be drawn.
type LegendPositions int32 //enums:enum -trim-prefix Legend

const (
	LegendTop LegendPositions = iota
	LegendBottom
	LegendLeft
	LegendRight
)

// InteractionModes are the ways elements are selected by the pointer.
type InteractionModes int32 //enums:enum -trim-prefix Mode

const (
	// ModePoint selects the single point under the pointer.
	ModePoint InteractionModes = iota

	// ModeNearest selects the nearest element of any kind.
	ModeNearest

	// ModeIndex selects all elements at the same data index.
	ModeIndex

	// ModeDataset selects all elements of the same dataset.
	ModeDataset

	// ModeX selects elements by X position only.
	ModeX

	// ModeY selects elements by Y position only.
	ModeY
)

// InteractionAxes are the axes used for distance in interactions.
type InteractionAxes int32 //enums:enum -trim-prefix Axis

const (
	AxisX InteractionAxes = iota
	AxisY
	AxisXY
)

// TitleOptions are the options for the title and subtitle.
type TitleOptions struct {
	Display  bool
	Text     string
	Color    color.RGBA `toml:"-" yaml:"-" json:"-"`
	FontSize float64
	Padding  float64
	Align    Aligns
}

func (t *TitleOptions) Defaults() {
	t.Color = colors.FromRGB(0x33, 0x33, 0x33)
	t.FontSize = 16
	t.Padding = 10
	t.Align = Center
}

// LegendOptions are the options for the legend.
type LegendOptions struct {
	Display  bool
	Position LegendPositions
	Align    Aligns

	// Reverse lists the items in reverse order.
	Reverse bool

	Labels LegendLabelOptions
}

func (l *LegendOptions) Defaults() {
	l.Display = true
	l.Position = LegendTop
	l.Align = Center
	l.Labels.Defaults()
}

// LegendLabelOptions are the options for legend items.
type LegendLabelOptions struct {
	BoxWidth      float64
	BoxHeight     float64
	Color         color.RGBA `toml:"-" yaml:"-" json:"-"`
	FontSize      float64
	Padding       float64
	UsePointStyle bool
}

func (l *LegendLabelOptions) Defaults() {
	l.BoxWidth = 40
	l.BoxHeight = 12
	l.Color = colors.FromRGB(0x66, 0x66, 0x66)
	l.FontSize = 12
	l.Padding = 10
}

// TooltipOptions are the options for the hover tooltip.
type TooltipOptions struct {
	Enabled       bool
	Mode          InteractionModes
	Intersect     bool
	Background    color.RGBA `toml:"-" yaml:"-" json:"-"`
	TitleColor    color.RGBA `toml:"-" yaml:"-" json:"-"`
	BodyColor     color.RGBA `toml:"-" yaml:"-" json:"-"`
	BorderColor   color.RGBA `toml:"-" yaml:"-" json:"-"`
	BorderWidth   float64
	CornerRadius  float64
	Padding       float64
	TitleFontSize float64
	BodyFontSize  float64
}

func (t *TooltipOptions) Defaults() {
	t.Enabled = true
	t.Mode = ModeNearest
	t.Intersect = true
	t.Background = colors.FromRGBA(0, 0, 0, 0.8)
	t.TitleColor = colors.FromRGB(255, 255, 255)
	t.BodyColor = colors.FromRGBA(255, 255, 255, 0.9)
	t.CornerRadius = 6
	t.Padding = 10
	t.TitleFontSize = 13
	t.BodyFontSize = 12
}

// AnimationOptions are the options for the entry animation.
type AnimationOptions struct {

	// Duration is in milliseconds; 0 disables animation.
	Duration float64

	Easing easing.Functions

	// Delay is in milliseconds.
	Delay float64

	Loop bool
}

func (a *AnimationOptions) Defaults() {
	a.Duration = 400
	a.Easing = easing.OutQuart
}

// AnimationNone returns animation options with animation disabled.
func AnimationNone() AnimationOptions {
	return AnimationOptions{Easing: easing.OutQuart}
}

// AnimationFast returns 200ms animation options.
func AnimationFast() AnimationOptions {
	return AnimationOptions{Duration: 200, Easing: easing.OutQuart}
}

// AnimationSlow returns 800ms animation options.
func AnimationSlow() AnimationOptions {
	return AnimationOptions{Duration: 800, Easing: easing.OutQuart}
}

// Animator returns a new idle animator configured by the options.
func (a *AnimationOptions) Animator() *anim.Animator {
	return anim.NewMs(a.Duration).SetEasing(a.Easing).SetDelay(anim.Millis(a.Delay))
}

// InteractionOptions are the options for pointer interaction.
type InteractionOptions struct {
	Mode      InteractionModes
	Intersect bool
	Axis      InteractionAxes
}

func (i *InteractionOptions) Defaults() {
	i.Mode = ModeNearest
	i.Intersect = true
	i.Axis = AxisXY
}

// ScalesOptions are the options of both cartesian axes.
type ScalesOptions struct {
	X AxisOptions
	Y AxisOptions
}

// AxisOptions are the options of one cartesian axis.
type AxisOptions struct {
	Display bool
	Title   AxisTitleOptions
	Grid    GridOptions
	Ticks   scale.TickOptions

	// Min and Max fix the data bounds of the axis.
	Min, Max *float64 `toml:",omitempty" yaml:",omitempty"`

	// SuggestedMin and SuggestedMax extend the data bounds of the
	// axis if the data does not already reach them.
	SuggestedMin, SuggestedMax *float64 `toml:",omitempty" yaml:",omitempty"`

	BeginAtZero bool
	Reverse     bool
	Stacked     bool
}

func (a *AxisOptions) Defaults() {
	a.Display = true
	a.Title.Defaults()
	a.Grid.Defaults()
	a.Ticks.Defaults()
}

// Bounds applies Min, Max, SuggestedMin and SuggestedMax
// to the given data range.
func (a *AxisOptions) Bounds(mn, mx float64) (float64, float64) {
	if a.SuggestedMin != nil {
		mn = min(mn, *a.SuggestedMin)
	}
	if a.SuggestedMax != nil {
		mx = max(mx, *a.SuggestedMax)
	}
	if a.Min != nil {
		mn = *a.Min
	}
	if a.Max != nil {
		mx = *a.Max
	}
	return mn, mx
}

// AxisTitleOptions are the options of an axis title.
type AxisTitleOptions struct {
	Display  bool
	Text     string
	Color    color.RGBA `toml:"-" yaml:"-" json:"-"`
	FontSize float64
	Padding  float64
}

func (a *AxisTitleOptions) Defaults() {
	a.Color = colors.FromRGB(0x66, 0x66, 0x66)
	a.FontSize = 12
	a.Padding = 4
}

// GridOptions are the options of axis grid lines.
type GridOptions struct {
	Display         bool
	Color           color.RGBA `toml:"-" yaml:"-" json:"-"`
	Width           float64
	DrawBorder      bool
	DrawOnChartArea bool
	DrawTicks       bool
	TickLength      float64
}

func (g *GridOptions) Defaults() {
	g.Display = true
	g.Color = colors.FromRGB(230, 230, 230)
	g.Width = 1
	g.DrawBorder = true
	g.DrawOnChartArea = true
	g.DrawTicks = true
	g.TickLength = 6
}

// Stylers is a list of styling functions that set Options properties.
// These are called in the order added.
type Stylers []func(o *Options)

// Add adds a styling function to the list.
func (st *Stylers) Add(f func(o *Options)) {
	*st = append(*st, f)
}

// Run runs the list of styling functions on the given [Options].
func (st *Stylers) Run(o *Options) {
	for _, f := range *st {
		f(o)
	}
}

// NewOptions returns new [Options] with the styling functions
// applied on top of the defaults.
func (st *Stylers) NewOptions() *Options {
	o := NewOptions()
	st.Run(o)
	return o
}
