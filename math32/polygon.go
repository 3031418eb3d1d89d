// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Polygon is a closed outline given by its vertices in order;
// the last vertex connects back to the first.
type Polygon []Vector2

// Bounds returns the bounding box of the polygon.
func (pg Polygon) Bounds() Box2 {
	b := B2Empty()
	b.SetFromPoints(pg)
	return b
}

// ContainsPoint returns whether the given point is inside the polygon,
// using the even-odd rule, so self-intersecting outlines are handled.
func (pg Polygon) ContainsPoint(pt Vector2) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	in := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := pg[i], pg[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				in = !in
			}
		}
		j = i
	}
	return in
}

// Fan returns the triangle fan of the polygon around the given
// center, one triangle per edge.
func (pg Polygon) Fan(center Vector2) []Triangle2 {
	n := len(pg)
	if n < 2 {
		return nil
	}
	tris := make([]Triangle2, 0, n)
	for i := 0; i < n; i++ {
		tris = append(tris, Triangle2{center, pg[i], pg[(i+1)%n]})
	}
	return tris
}
