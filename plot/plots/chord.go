// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plots

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/charts/colors"
	"cogentcore.org/charts/coord"
	"cogentcore.org/charts/math32"
	"cogentcore.org/charts/plot"
)

// RibbonSegments is the number of segments of each arc and curve
// of a ribbon outline.
const RibbonSegments = 8

// Group is the arc of one group of a chord diagram.
// Angles are in radians.
type Group struct {
	Index int
	Label string

	// Value is the total outgoing flow.
	Value float64

	Start, End float32
	Color      color.RGBA
}

// Span returns the angle covered by the group.
func (g *Group) Span() float32 { return g.End - g.Start }

// Ribbon is one flow of a chord diagram, from the source group
// to the target group, with the angle spans it covers on each.
type Ribbon struct {
	Source, Target int
	Value          float64

	SourceStart, SourceEnd float32
	TargetStart, TargetEnd float32
}

// ChordLayout returns the groups and ribbons of the chord data.
// The groups share the circle less a gap after each, in proportion to
// their total outgoing flow, in order from the start angle. Each
// positive flow gets a span in its source group, and one in its target
// group, in proportion to its share of that group's total. The spans
// are packed within each group in (source, target) order, or by
// descending value if sortFlows is set. There are no groups if the
// total flow is 0.
func ChordLayout(cd *plot.ChordData, start, gap float32, sortFlows bool, pal colors.Palettes) ([]Group, []Ribbon) {
	n := cd.Len()
	total := cd.Total()
	if n == 0 || total <= 0 {
		return nil, nil
	}
	avail := math32.TwoPi - float32(n)*gap
	groups := make([]Group, n)
	ang := start
	for i := range groups {
		g := &groups[i]
		g.Index = i
		g.Label = cd.Label(i)
		g.Value = cd.GroupTotal(i)
		g.Color = pal.At(i)
		g.Start = ang
		g.End = ang + float32(g.Value/total)*avail
		ang = g.End + gap
	}
	var ribbons []Ribbon
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := cd.Value(i, j); v > 0 {
				ribbons = append(ribbons, Ribbon{Source: i, Target: j, Value: v})
			}
		}
	}
	order := make([]int, len(ribbons))
	for k := range order {
		order[k] = k
	}
	if sortFlows {
		slices.SortStableFunc(order, func(a, b int) int {
			return cmp.Compare(ribbons[b].Value, ribbons[a].Value)
		})
	}
	srcOff := make([]float32, n)
	tgtOff := make([]float32, n)
	for _, k := range order {
		r := &ribbons[k]
		sg, tg := &groups[r.Source], &groups[r.Target]
		ss := float32(r.Value/sg.Value) * sg.Span()
		r.SourceStart = sg.Start + srcOff[r.Source]
		r.SourceEnd = r.SourceStart + ss
		srcOff[r.Source] += ss
		ts := float32(0)
		if tg.Value > 0 {
			ts = float32(r.Value/tg.Value) * tg.Span()
		}
		r.TargetStart = tg.Start + tgtOff[r.Target]
		r.TargetEnd = r.TargetStart + ts
		tgtOff[r.Target] += ts
	}
	return groups, ribbons
}

// arcPoints returns n+1 points along the arc from start to end.
func arcPoints(center math32.Vector2, radius, start, end float32, n int) []math32.Vector2 {
	pts := make([]math32.Vector2, n+1)
	for i := range pts {
		t := float32(i) / float32(n)
		pts[i] = math32.Vector2Polar(center, start+(end-start)*t, radius)
	}
	return pts
}

// quadCurve returns n+1 points along the quadratic curve from a to b
// with control point c.
func quadCurve(a, c, b math32.Vector2, n int) []math32.Vector2 {
	pts := make([]math32.Vector2, n+1)
	for i := range pts {
		pts[i] = QuadraticBezier(a, c, b, float32(i)/float32(n))
	}
	return pts
}

// RibbonPolygon returns the outline of the ribbon at the given radius:
// the source arc, a curve through the center to the target arc, the
// target arc backward, and a curve back to the start. A directed
// ribbon has its target arc narrowed to 30% of its width around its
// middle.
func RibbonPolygon(center math32.Vector2, radius float32, r *Ribbon, directed bool) math32.Polygon {
	src := arcPoints(center, radius, r.SourceStart, r.SourceEnd, RibbonSegments)
	ts, te := r.TargetStart, r.TargetEnd
	tn := RibbonSegments
	if directed {
		mid := (ts + te) / 2
		w := (te - ts) * 0.3
		ts, te = mid-w/2, mid+w/2
		tn = RibbonSegments / 2
	}
	tgt := arcPoints(center, radius, te, ts, tn)
	c1 := quadCurve(src[len(src)-1], center, tgt[0], RibbonSegments)
	c2 := quadCurve(tgt[len(tgt)-1], center, src[0], RibbonSegments)
	pg := make(math32.Polygon, 0, len(src)+len(tgt)+len(c1)+len(c2))
	pg = append(pg, src...)
	pg = append(pg, c1[1:]...)
	pg = append(pg, tgt[1:]...)
	pg = append(pg, c2[1:len(c2)-1]...)
	return pg
}

// RibbonShape is the laid out outline of one ribbon.
type RibbonShape struct {
	Index   int
	Polygon math32.Polygon
	Fill    plot.Fill
}

// Chord is a chord diagram of the flows between groups: an arc per
// group around the circle, and a ribbon per flow joining the arcs of
// its source and target through the center.
type Chord struct {
	chart

	// ChordData is the flow matrix.
	ChordData *plot.ChordData

	// Polar is the coordinate system, set up by Layout.
	Polar *coord.Polar

	// Padding is the space around the diagram, in pixels.
	Padding float32

	// GapAngle is the gap after each group, in radians.
	GapAngle float32

	// ArcThickness is the thickness of the group arcs as a fraction
	// of the radius.
	ArcThickness float32

	// ArcGradient fills the group arcs with a radial gradient.
	ArcGradient bool

	// Groups and Ribbons are computed by Layout.
	Groups  []Group
	Ribbons []Ribbon

	// Arcs and Shapes are the group arcs and ribbon outlines
	// of the last Build.
	Arcs   []ArcShape
	Shapes []RibbonShape
}

// NewChord returns a new chord diagram.
func NewChord() *Chord {
	ch := &Chord{GapAngle: 0.04, ArcThickness: 0.08}
	ch.init()
	ch.ChordData = &plot.ChordData{}
	ch.Polar = coord.NewPolar()
	return ch
}

// SetChordData sets the flow matrix.
func (ch *Chord) SetChordData(cd *plot.ChordData) *Chord {
	if cd == nil {
		cd = &plot.ChordData{}
	}
	ch.ChordData = cd
	ch.hovered = nil
	return ch
}

// SetData sets the flow matrix from the data, with dataset i as row i.
// Nil data keeps the current flow matrix.
func (ch *Chord) SetData(dt *plot.Data) {
	ch.chart.SetData(dt)
	if dt != nil {
		ch.ChordData = plot.ChordFromData(dt)
	}
}

// SetGapAngle sets the gap after each group, in radians.
func (ch *Chord) SetGapAngle(gap float32) *Chord {
	ch.GapAngle = max(gap, 0)
	return ch
}

// SetArcThickness sets the arc thickness, clamped to [0.01, 0.5].
func (ch *Chord) SetArcThickness(v float32) *Chord {
	ch.ArcThickness = math32.Clamp(v, 0.01, 0.5)
	return ch
}

func (ch *Chord) Layout(area math32.Box2) {
	ch.chart.Layout(area)
	ch.Polar.Update(area, ch.Padding)
	ch.Polar.SetInnerRadiusRatio(1 - ch.ArcThickness)
	st := &ch.Options.Style
	ch.Groups, ch.Ribbons = ChordLayout(ch.ChordData, ch.Polar.StartAngle, ch.GapAngle, st.SortFlows, st.Palette)
}

// Build lays out the arcs and ribbons at the current animation
// progress and registers the hit regions of the ribbons. The arcs
// sweep open from their start, and the ribbons grow out from the
// center to the inner edge of the arcs.
func (ch *Chord) Build() {
	ch.Arcs = ch.Arcs[:0]
	ch.Shapes = ch.Shapes[:0]
	ch.Hits.Clear()
	prog := float32(ch.Progress())
	pc := ch.Polar
	st := &ch.Options.Style
	for i, g := range ch.Groups {
		sweep := g.Span() * prog
		if sweep < 0.001 {
			continue
		}
		c := g.Color
		if ch.isHovered(plot.HitSlice, 0, i) {
			c = colors.Lighten(c, 0.2)
		}
		fill := plot.Solid(c)
		if ch.ArcGradient {
			fill = plot.RadialGradient(pc.Center, pc.OuterRadius, colors.Lighten(c, 0.3), c)
		}
		ch.Arcs = append(ch.Arcs, ArcShape{Index: i, Center: pc.Center, Start: g.Start, End: g.Start + sweep,
			Inner: pc.InnerRadius, Outer: pc.OuterRadius, Fill: fill})
	}
	radius := pc.InnerRadius * prog
	if radius < 1 {
		return
	}
	for k := range ch.Ribbons {
		r := &ch.Ribbons[k]
		base := ch.Groups[r.Source].Color
		alpha := float32(0.5)
		if ch.isHovered(plot.HitRibbon, r.Source, r.Target) {
			alpha = 0.8
		}
		fill := plot.Solid(colors.WithAlpha(base, alpha))
		if st.Gradient {
			fill = plot.RadialGradient(pc.Center, radius,
				colors.WithAlpha(colors.Lighten(base, 0.3), alpha*0.8),
				colors.WithAlpha(colors.Darken(base, 0.3), alpha*0.4))
		}
		pg := RibbonPolygon(pc.Center, radius, r, st.Directed)
		ch.Shapes = append(ch.Shapes, RibbonShape{Index: k, Polygon: pg, Fill: fill})
		ch.Hits.RegisterPolygon(pg, plot.HitData{Kind: plot.HitRibbon, Dataset: r.Source, Index: r.Target})
	}
}

// GroupAt returns the index of the group whose arc is under pos, or -1.
func (ch *Chord) GroupAt(pos math32.Vector2) int {
	if !ch.Polar.Contains(pos) {
		return -1
	}
	a, _ := ch.Polar.PixelToPolar(pos)
	for i, g := range ch.Groups {
		if coord.AngleInSpan(a, g.Start, g.End) {
			return i
		}
	}
	return -1
}

// hit returns the group arc under pos, or else the topmost ribbon.
func (ch *Chord) hit(pos math32.Vector2) *plot.HitData {
	if i := ch.GroupAt(pos); i >= 0 {
		return &plot.HitData{Kind: plot.HitSlice, Index: i}
	}
	all := ch.Hits.HitTestAll(pos)
	if len(all) == 0 {
		return nil
	}
	return hitData(all[len(all)-1])
}

func (ch *Chord) Draw(pt plot.Painter) {
	ch.Build()
	for _, a := range ch.Arcs {
		pt.Arc(a.Center, a.Start, a.End, a.Inner, a.Outer, a.Fill)
	}
	for _, s := range ch.Shapes {
		for _, t := range s.Polygon.Fan(ch.Polar.Center) {
			pt.Triangle(t.A, t.B, t.C, s.Fill)
		}
	}
}

func (ch *Chord) MouseMove(pos math32.Vector2) bool {
	ch.Build()
	return ch.setHovered(ch.hit(pos))
}

func (ch *Chord) MouseDown(pos math32.Vector2) *plot.HitData {
	ch.Build()
	return ch.click(ch.hit(pos))
}

// LegendItems returns one legend item per group.
func (ch *Chord) LegendItems() []plot.LegendItem {
	labels := make([]string, ch.ChordData.Len())
	for i := range labels {
		labels[i] = ch.ChordData.Label(i)
	}
	return plot.LegendFromLabels(labels, ch.Options.Style.Palette)
}
