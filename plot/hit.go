// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"cogentcore.org/charts/math32"
)

// HitKinds are the kinds of chart element a [HitRegion] identifies.
type HitKinds int32 //enums:enum -trim-prefix Hit

const (
	// HitBar is a bar, identified by dataset and data index.
	HitBar HitKinds = iota

	// HitPoint is a line, scatter or bubble point.
	HitPoint

	// HitSlice is a pie, polar area or chord group slice, by index.
	HitSlice

	// HitRibbon is a chord ribbon, from group Dataset to group Index.
	HitRibbon

	// HitCustom is anything else, described by Custom.
	HitCustom
)

// HitData identifies the chart element of a [HitRegion].
type HitData struct {
	Kind    HitKinds
	Dataset int
	Index   int
	Custom  string
}

func (hd HitData) String() string {
	switch hd.Kind {
	case HitSlice:
		return fmt.Sprintf("%s %d", hd.Kind, hd.Index)
	case HitCustom:
		return hd.Custom
	}
	return fmt.Sprintf("%s %d:%d", hd.Kind, hd.Dataset, hd.Index)
}

// HitRegion is a registered hit testing region: a rectangle,
// optionally refined by a polygon within it.
type HitRegion struct {
	ID      int
	Rect    math32.Box2
	Polygon math32.Polygon
	Data    HitData
}

// Contains returns whether the region contains the point.
func (hr *HitRegion) Contains(pt math32.Vector2) bool {
	if !hr.Rect.ContainsPoint(pt) {
		return false
	}
	if len(hr.Polygon) > 0 {
		return hr.Polygon.ContainsPoint(pt)
	}
	return true
}

// HitTester holds the regions drawn in the last frame for
// mapping pointer positions back to chart elements.
type HitTester struct {
	Regions []HitRegion
}

// Clear removes all regions.
func (ht *HitTester) Clear() {
	ht.Regions = ht.Regions[:0]
}

// Register adds a rectangular region.
func (ht *HitTester) Register(rect math32.Box2, data HitData) {
	ht.Regions = append(ht.Regions, HitRegion{ID: len(ht.Regions), Rect: rect, Data: data})
}

// RegisterPolygon adds a polygon region.
func (ht *HitTester) RegisterPolygon(pg math32.Polygon, data HitData) {
	ht.Regions = append(ht.Regions, HitRegion{ID: len(ht.Regions), Rect: pg.Bounds(), Polygon: pg, Data: data})
}

// HitTest returns the first region containing the point, or nil.
func (ht *HitTester) HitTest(pt math32.Vector2) *HitRegion {
	for i := range ht.Regions {
		if ht.Regions[i].Contains(pt) {
			return &ht.Regions[i]
		}
	}
	return nil
}

// HitTestAll returns all regions containing the point.
func (ht *HitTester) HitTestAll(pt math32.Vector2) []*HitRegion {
	var hits []*HitRegion
	for i := range ht.Regions {
		if ht.Regions[i].Contains(pt) {
			hits = append(hits, &ht.Regions[i])
		}
	}
	return hits
}

// FindNearest returns the region whose center is nearest to the
// point and closer than maxDist, or nil.
func (ht *HitTester) FindNearest(pt math32.Vector2, maxDist float32) *HitRegion {
	var nearest *HitRegion
	best := maxDist
	for i := range ht.Regions {
		d := ht.Regions[i].Rect.Center().DistanceTo(pt)
		if d < best {
			best = d
			nearest = &ht.Regions[i]
		}
	}
	return nearest
}
