// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale maps data values to pixel positions along an axis,
// and generates axis ticks with nicely rounded values.
package scale

import (
	"cogentcore.org/charts/math32/minmax"
)

// Kinds are the kinds of [Scale].
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindLinear is a continuous numeric [Linear] scale.
	KindLinear Kinds = iota

	// KindCategory is a discrete [Category] scale.
	KindCategory
)

// Scale is an axis scale of one of the [Kinds]. Only the field
// matching Kind is used. The zero value is a default linear scale.
type Scale struct {

	// Kind is the kind of scale.
	Kind Kinds

	// Linear is the scale for KindLinear.
	Linear *Linear

	// Category is the scale for KindCategory.
	Category *Category
}

// FromLinear returns a [Scale] wrapping the given linear scale.
func FromLinear(ls *Linear) Scale {
	return Scale{Kind: KindLinear, Linear: ls}
}

// FromCategory returns a [Scale] wrapping the given category scale.
func FromCategory(cs *Category) Scale {
	return Scale{Kind: KindCategory, Category: cs}
}

func (s *Scale) lin() *Linear {
	if s.Linear == nil {
		s.Linear = NewLinear()
	}
	return s.Linear
}

func (s *Scale) cat() *Category {
	if s.Category == nil {
		s.Category = NewCategory()
	}
	return s.Category
}

// SetDataRange sets the data range. Category scales ignore it,
// as their range comes from their labels.
func (s *Scale) SetDataRange(mn, mx float64) {
	if s.Kind == KindLinear {
		s.lin().SetDataRange(mn, mx)
	}
}

// SetPixelRange sets the pixel range the data range maps onto.
func (s *Scale) SetPixelRange(start, end float64) {
	switch s.Kind {
	case KindCategory:
		s.cat().SetPixelRange(start, end)
	default:
		s.lin().SetPixelRange(start, end)
	}
}

// PixelForValue returns the pixel position of data value v.
func (s *Scale) PixelForValue(v float64) float64 {
	switch s.Kind {
	case KindCategory:
		return s.cat().PixelForValue(v)
	default:
		return s.lin().PixelForValue(v)
	}
}

// ValueForPixel returns the data value at pixel position p.
func (s *Scale) ValueForPixel(p float64) float64 {
	switch s.Kind {
	case KindCategory:
		return s.cat().ValueForPixel(p)
	default:
		return s.lin().ValueForPixel(p)
	}
}

// Ticks returns the axis ticks.
func (s *Scale) Ticks(opts *TickOptions) []Tick {
	switch s.Kind {
	case KindCategory:
		return s.cat().Ticks(opts)
	default:
		return s.lin().Ticks(opts)
	}
}

// DataBounds returns the data range; for category scales
// this is the index range.
func (s *Scale) DataBounds() minmax.F64 {
	switch s.Kind {
	case KindCategory:
		return s.cat().DataBounds()
	default:
		return s.lin().Data
	}
}

// PixelRange returns the pixel range.
func (s *Scale) PixelRange() minmax.F64 {
	switch s.Kind {
	case KindCategory:
		return s.cat().Pixel
	default:
		return s.lin().Pixel
	}
}

// IsInverted returns whether pixel positions decrease as values increase.
func (s *Scale) IsInverted() bool {
	pb := s.PixelRange()
	return pb.Max < pb.Min
}

// PixelSize returns the absolute extent of the pixel range.
func (s *Scale) PixelSize() float64 {
	pb := s.PixelRange()
	return max(pb.Max-pb.Min, pb.Min-pb.Max)
}

// DataSize returns the extent of the data range.
func (s *Scale) DataSize() float64 {
	db := s.DataBounds()
	return db.Max - db.Min
}

// Normalize returns the position of v in the data range,
// 0 at the minimum and 1 at the maximum, 0.5 for an empty range.
func (s *Scale) Normalize(v float64) float64 {
	db := s.DataBounds()
	if db.Max == db.Min {
		return 0.5
	}
	return (v - db.Min) / (db.Max - db.Min)
}

// Denormalize is the inverse of [Scale.Normalize].
func (s *Scale) Denormalize(t float64) float64 {
	db := s.DataBounds()
	return Lerp(db.Min, db.Max, t)
}
