// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/charts/base/errors"
	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/math32/minmax"
)

var (
	ErrInfinity     = errors.New("plot: infinite data point")
	ErrNoData       = errors.New("plot: no data points")
	ErrUnknownChart = errors.New("plot: unknown chart type")
)

// Float returns a pointer to the given value, for the optional
// fields of [DataPoint].
func Float(v float64) *float64 {
	return &v
}

// DataPoint is one observation. X, YMin and R are optional:
// a nil X means the positional index is used, a nil YMin
// means a base of 0, and a non-nil R makes it bubble data.
type DataPoint struct {

	// X is the x value, or nil to use the index of the point.
	X *float64 `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`

	// Y is the primary value; for a floating bar it is the top.
	Y float64 `json:"y" yaml:"y" toml:"y"`

	// YMin is the base of a floating bar.
	YMin *float64 `json:"yMin,omitempty" yaml:"yMin,omitempty" toml:"yMin,omitempty"`

	// R is the bubble radius, in data units.
	R *float64 `json:"r,omitempty" yaml:"r,omitempty" toml:"r,omitempty"`

	// Label is an optional label for the point.
	Label string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`

	// Meta is optional free-form data carried with the point.
	Meta string `json:"meta,omitempty" yaml:"meta,omitempty" toml:"meta,omitempty"`
}

// NewPoint returns a point with the given x and y values.
func NewPoint(x, y float64) DataPoint {
	return DataPoint{X: Float(x), Y: y}
}

// PointY returns a point with the given y value, positioned by index.
func PointY(y float64) DataPoint {
	return DataPoint{Y: y}
}

// FloatingPoint returns a floating bar point spanning min to max.
func FloatingPoint(min, max float64) DataPoint {
	return DataPoint{Y: max, YMin: Float(min)}
}

// BubblePoint returns a bubble point with radius r.
func BubblePoint(x, y, r float64) DataPoint {
	return DataPoint{X: Float(x), Y: y, R: Float(r)}
}

// SetLabel sets the [DataPoint.Label].
func (dp DataPoint) SetLabel(v string) DataPoint {
	dp.Label = v
	return dp
}

// SetMeta sets the [DataPoint.Meta].
func (dp DataPoint) SetMeta(v string) DataPoint {
	dp.Meta = v
	return dp
}

// XOr returns the x value, or the given index if X is nil.
func (dp *DataPoint) XOr(idx int) float64 {
	if dp.X == nil {
		return float64(idx)
	}
	return *dp.X
}

// Base returns the floating bar base, 0 if YMin is nil.
func (dp *DataPoint) Base() float64 {
	if dp.YMin == nil {
		return 0
	}
	return *dp.YMin
}

// RadiusOr returns the bubble radius value, or def if R is nil.
func (dp *DataPoint) RadiusOr(def float64) float64 {
	if dp.R == nil {
		return def
	}
	return *dp.R
}

// IsFloating returns whether the point is floating bar data.
func (dp *DataPoint) IsFloating() bool {
	return dp.YMin != nil
}

// IsBubble returns whether the point is bubble data.
func (dp *DataPoint) IsBubble() bool {
	return dp.R != nil
}

// PointStyles are the marker shapes for line and scatter points.
type PointStyles int32 //enums:enum

const (
	Circle PointStyles = iota
	Square
	Triangle
	Cross
	Diamond
)

// Dataset is a named, ordered sequence of points with
// its per-series styling. A zero color means the palette
// color for the dataset index is used.
type Dataset struct {

	// Label is the name of the series, shown in the legend.
	Label string

	// Data are the points of the series.
	Data []DataPoint

	// Background is the fill color.
	Background color.RGBA `toml:"-" yaml:"-" json:"-"`

	// Border is the stroke color. If unset, the background is darkened.
	Border color.RGBA `toml:"-" yaml:"-" json:"-"`

	// BorderWidth is the stroke width in pixels.
	BorderWidth float64

	// Hidden excludes the series from extents and drawing.
	Hidden bool

	// Fill fills the area under a line.
	Fill bool

	// Tension is the cubic curve tension in [0, 1], 0 being straight lines.
	Tension float64

	// PointRadius is the radius of line points, in pixels.
	PointRadius float64

	// PointStyle is the shape of line points.
	PointStyle PointStyles

	// PointBackground is the point fill color; unset uses Background.
	PointBackground color.RGBA `toml:"-" yaml:"-" json:"-"`

	// PointBorder is the point stroke color; unset uses Border.
	PointBorder color.RGBA `toml:"-" yaml:"-" json:"-"`

	// PointBorderWidth is the point stroke width in pixels.
	PointBorderWidth float64

	// HoverRadius is the point radius when hovered.
	HoverRadius float64

	// BarThickness is a fixed bar thickness in pixels, if > 0.
	BarThickness float64

	// BarPercentage is the fraction of the available width used by a bar.
	BarPercentage float64

	// CategoryPercentage is the fraction of the category band used by
	// the bars of all datasets.
	CategoryPercentage float64

	// BarBorderRadius is the corner radius of bars.
	BarBorderRadius float64

	// HoverOffset is the outward offset of a hovered pie slice, in pixels.
	HoverOffset float64
}

// NewDataset returns a new [Dataset] with the given label and defaults.
func NewDataset(label string) *Dataset {
	ds := &Dataset{Label: label}
	ds.Defaults()
	return ds
}

func (ds *Dataset) Defaults() {
	ds.BorderWidth = 1
	ds.PointRadius = 3
	ds.PointStyle = Circle
	ds.PointBorderWidth = 1
	ds.HoverRadius = 5
	ds.BarPercentage = 0.9
	ds.CategoryPercentage = 0.8
	ds.HoverOffset = 10
}

// SetValues sets the data to the given y values, positioned by index.
func (ds *Dataset) SetValues(ys ...float64) *Dataset {
	ds.Data = make([]DataPoint, len(ys))
	for i, y := range ys {
		ds.Data[i] = PointY(y)
	}
	return ds
}

// SetXY sets the data to the given (x, y) pairs.
func (ds *Dataset) SetXY(xy ...[2]float64) *Dataset {
	ds.Data = make([]DataPoint, len(xy))
	for i, p := range xy {
		ds.Data[i] = NewPoint(p[0], p[1])
	}
	return ds
}

// SetFloating sets the data to the given (min, max) floating bar pairs.
func (ds *Dataset) SetFloating(mm ...[2]float64) *Dataset {
	ds.Data = make([]DataPoint, len(mm))
	for i, p := range mm {
		ds.Data[i] = FloatingPoint(p[0], p[1])
	}
	return ds
}

// SetBubbles sets the data to the given (x, y, r) triples.
func (ds *Dataset) SetBubbles(xyr ...[3]float64) *Dataset {
	ds.Data = make([]DataPoint, len(xyr))
	for i, p := range xyr {
		ds.Data[i] = BubblePoint(p[0], p[1], p[2])
	}
	return ds
}

// SetPoints sets the data to the given points.
func (ds *Dataset) SetPoints(pts ...DataPoint) *Dataset {
	ds.Data = pts
	return ds
}

// SetColor sets the [Dataset.Background] color.
func (ds *Dataset) SetColor(c color.Color) *Dataset {
	ds.Background = colors.AsRGBA(c)
	return ds
}

// SetHexColor sets the [Dataset.Background] color from a hex string,
// logging an error if it is invalid.
func (ds *Dataset) SetHexColor(hex string) *Dataset {
	c, err := colors.FromHex(hex)
	if errors.Log(err) == nil {
		ds.Background = c
	}
	return ds
}

// SetBorderColor sets the [Dataset.Border] color.
func (ds *Dataset) SetBorderColor(c color.Color) *Dataset {
	ds.Border = colors.AsRGBA(c)
	return ds
}

// SetBorderWidth sets the [Dataset.BorderWidth].
func (ds *Dataset) SetBorderWidth(v float64) *Dataset {
	ds.BorderWidth = v
	return ds
}

// SetFill sets the [Dataset.Fill].
func (ds *Dataset) SetFill(v bool) *Dataset {
	ds.Fill = v
	return ds
}

// SetTension sets the [Dataset.Tension], clamped to [0, 1].
func (ds *Dataset) SetTension(v float64) *Dataset {
	ds.Tension = min(max(v, 0), 1)
	return ds
}

// SetPointRadius sets the [Dataset.PointRadius].
func (ds *Dataset) SetPointRadius(v float64) *Dataset {
	ds.PointRadius = v
	return ds
}

// SetPointStyle sets the [Dataset.PointStyle].
func (ds *Dataset) SetPointStyle(v PointStyles) *Dataset {
	ds.PointStyle = v
	return ds
}

// SetBarThickness sets the [Dataset.BarThickness].
func (ds *Dataset) SetBarThickness(v float64) *Dataset {
	ds.BarThickness = v
	return ds
}

// SetBarBorderRadius sets the [Dataset.BarBorderRadius].
func (ds *Dataset) SetBarBorderRadius(v float64) *Dataset {
	ds.BarBorderRadius = v
	return ds
}

// SetHidden sets the [Dataset.Hidden].
func (ds *Dataset) SetHidden(v bool) *Dataset {
	ds.Hidden = v
	return ds
}

// BackgroundColor returns the fill color, falling back on the
// palette color for the given dataset index.
func (ds *Dataset) BackgroundColor(idx int) color.RGBA {
	if !colors.IsNil(ds.Background) {
		return ds.Background
	}
	return colors.Palette(idx)
}

// BorderColor returns the stroke color, falling back on the
// background color darkened by 20%.
func (ds *Dataset) BorderColor(idx int) color.RGBA {
	if !colors.IsNil(ds.Border) {
		return ds.Border
	}
	return colors.Darken(ds.BackgroundColor(idx), 0.2)
}

// PointColor returns the point fill color.
func (ds *Dataset) PointColor(idx int) color.RGBA {
	if !colors.IsNil(ds.PointBackground) {
		return ds.PointBackground
	}
	return ds.BackgroundColor(idx)
}

// PointBorderColor returns the point stroke color.
func (ds *Dataset) PointBorderColor(idx int) color.RGBA {
	if !colors.IsNil(ds.PointBorder) {
		return ds.PointBorder
	}
	return ds.BorderColor(idx)
}

// Values returns the y values of the points.
func (ds *Dataset) Values() []float64 {
	vs := make([]float64, len(ds.Data))
	for i := range ds.Data {
		vs[i] = ds.Data[i].Y
	}
	return vs
}

// Len returns the number of points.
func (ds *Dataset) Len() int {
	return len(ds.Data)
}

// Data is the complete input of a chart: category labels and the
// datasets. It is replaced wholesale on every update; the only
// in-place mutation is visibility toggling.
type Data struct {

	// Labels are the category names: the X axis ticks of categorical
	// charts, or the legend text of radial charts.
	Labels []string

	// Datasets are the series to draw.
	Datasets []*Dataset
}

// NewData returns new [Data] with the given labels.
func NewData(labels ...string) *Data {
	return &Data{Labels: labels}
}

// SetLabels sets the [Data.Labels].
func (dt *Data) SetLabels(labels ...string) *Data {
	dt.Labels = labels
	return dt
}

// AddDataset adds the given dataset.
func (dt *Data) AddDataset(ds *Dataset) *Data {
	dt.Datasets = append(dt.Datasets, ds)
	return dt
}

// Dataset returns the dataset at the given index, or nil.
func (dt *Data) Dataset(idx int) *Dataset {
	if idx < 0 || idx >= len(dt.Datasets) {
		return nil
	}
	return dt.Datasets[idx]
}

// YExtent returns the y range over all visible datasets, including
// floating bar bases. It returns false if there are no points.
// A degenerate range is widened by ±1.
func (dt *Data) YExtent() (minmax.F64, bool) {
	var r minmax.F64
	r.SetInfinity()
	for _, ds := range dt.Datasets {
		if ds.Hidden {
			continue
		}
		for i := range ds.Data {
			p := &ds.Data[i]
			if p.YMin != nil && IsFinite(*p.YMin) {
				r.Min = min(r.Min, *p.YMin)
			}
			if IsFinite(p.Y) {
				r.FitValInRange(p.Y)
			}
		}
	}
	if !r.IsValid() {
		return r, false
	}
	r.Widen(2.220446049250313e-16, 1)
	return r, true
}

// XExtent returns the x range over all visible datasets, using
// the index for points without an x value.
func (dt *Data) XExtent() (minmax.F64, bool) {
	var r minmax.F64
	r.SetInfinity()
	for _, ds := range dt.Datasets {
		if ds.Hidden {
			continue
		}
		for i := range ds.Data {
			if x := ds.Data[i].XOr(i); IsFinite(x) {
				r.FitValInRange(x)
			}
		}
	}
	if !r.IsValid() {
		return r, false
	}
	r.Widen(2.220446049250313e-16, 1)
	return r, true
}

// Total returns the sum of the positive values of the first dataset.
func (dt *Data) Total() float64 {
	if len(dt.Datasets) == 0 {
		return 0
	}
	t := 0.0
	for _, p := range dt.Datasets[0].Data {
		t += Positive(p.Y)
	}
	return t
}

// Len returns the number of points in the first dataset.
func (dt *Data) Len() int {
	if len(dt.Datasets) == 0 {
		return 0
	}
	return len(dt.Datasets[0].Data)
}

// IsEmpty returns whether there are no points at all.
func (dt *Data) IsEmpty() bool {
	for _, ds := range dt.Datasets {
		if len(ds.Data) > 0 {
			return false
		}
	}
	return true
}

// VisibleDatasetCount returns the number of datasets that are not hidden.
func (dt *Data) VisibleDatasetCount() int {
	n := 0
	for _, ds := range dt.Datasets {
		if !ds.Hidden {
			n++
		}
	}
	return n
}

// ToggleDataset toggles the visibility of the dataset at the given index.
func (dt *Data) ToggleDataset(idx int) {
	if ds := dt.Dataset(idx); ds != nil {
		ds.Hidden = !ds.Hidden
	}
}

// SetDatasetVisible sets the visibility of the dataset at the given index.
func (dt *Data) SetDatasetVisible(idx int, visible bool) {
	if ds := dt.Dataset(idx); ds != nil {
		ds.Hidden = !visible
	}
}

// Validate returns an error if any value is infinite, or
// [ErrNoData] if there are no non-NaN values.
func (dt *Data) Validate() error {
	var fs []float64
	for _, ds := range dt.Datasets {
		for _, p := range ds.Data {
			fs = append(fs, p.Y)
			if p.X != nil {
				fs = append(fs, *p.X)
			}
			if p.YMin != nil {
				fs = append(fs, *p.YMin)
			}
			if p.R != nil {
				fs = append(fs, *p.R)
			}
		}
	}
	return CheckFloats(fs...)
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// IsFinite returns whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Positive returns v if it is finite and positive, else 0.
func Positive(v float64) float64 {
	if IsFinite(v) && v > 0 {
		return v
	}
	return 0
}

// CheckNaNs returns true if any of the floats are NaN
func CheckNaNs(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

// ChordData is the input of a chord diagram: group labels and
// a square matrix where Matrix[i][j] is the flow from group i to j.
type ChordData struct {
	Labels []string
	Matrix [][]float64
}

// NewChordData returns new [ChordData].
func NewChordData(labels []string, matrix [][]float64) *ChordData {
	return &ChordData{Labels: labels, Matrix: matrix}
}

// Len returns the number of groups.
func (cd *ChordData) Len() int {
	return len(cd.Matrix)
}

// Value returns the flow from i to j, 0 if out of range or negative.
func (cd *ChordData) Value(i, j int) float64 {
	if i < 0 || i >= len(cd.Matrix) || j < 0 || j >= len(cd.Matrix[i]) {
		return 0
	}
	return Positive(cd.Matrix[i][j])
}

// GroupTotal returns the sum of the outgoing flows of group i.
func (cd *ChordData) GroupTotal(i int) float64 {
	if i < 0 || i >= len(cd.Matrix) {
		return 0
	}
	t := 0.0
	for j := range cd.Matrix[i] {
		t += cd.Value(i, j)
	}
	return t
}

// Total returns the sum of all flows.
func (cd *ChordData) Total() float64 {
	t := 0.0
	for i := range cd.Matrix {
		t += cd.GroupTotal(i)
	}
	return t
}

// Label returns the label of group i, or a generated one.
func (cd *ChordData) Label(i int) string {
	if i >= 0 && i < len(cd.Labels) {
		return cd.Labels[i]
	}
	return fmt.Sprintf("Group %d", i+1)
}

// ChordFromData returns [ChordData] with the labels of the data and
// the values of dataset i as row i of the matrix.
func ChordFromData(dt *Data) *ChordData {
	cd := &ChordData{Labels: dt.Labels}
	for _, ds := range dt.Datasets {
		cd.Matrix = append(cd.Matrix, ds.Values())
	}
	return cd
}
