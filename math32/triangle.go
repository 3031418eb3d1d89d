// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Triangle2 represents a 2D triangle made of three vertices.
type Triangle2 struct {
	A Vector2
	B Vector2
	C Vector2
}

// NewTriangle2 returns a new Triangle2 object.
func NewTriangle2(a, b, c Vector2) Triangle2 {
	return Triangle2{a, b, c}
}

// Area returns the unsigned area of the triangle.
func (t Triangle2) Area() float32 {
	return Abs(t.B.Sub(t.A).Cross(t.C.Sub(t.A))) / 2
}

// Barycoord returns the barycentric coordinates (u, v, w) for the
// specified point, with point = u*A + v*B + w*C. A colinear or
// singular triangle returns (-2, -1, -1), which is outside.
func (t Triangle2) Barycoord(point Vector2) (u, v, w float32) {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := point.Sub(t.A)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return -2, -1, -1
	}
	inv := 1 / denom
	cw := (dot11*dot02 - dot01*dot12) * inv
	bv := (dot00*dot12 - dot01*dot02) * inv
	return 1 - cw - bv, bv, cw
}

// ContainsPoint returns whether the given point lies inside
// the triangle or on its edges.
func (t Triangle2) ContainsPoint(point Vector2) bool {
	u, v, w := t.Barycoord(point)
	return u >= 0 && v >= 0 && w >= 0
}
