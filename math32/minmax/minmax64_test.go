// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64(t *testing.T) {
	var r F64
	r.SetInfinity()
	assert.False(t, r.IsValid())
	for _, v := range []float64{3, -2, 8} {
		r.FitValInRange(v)
	}
	assert.Equal(t, F64{-2, 8}, r)
	assert.Equal(t, 10.0, r.Range())
	assert.False(t, r.FitValInRange(5))
	assert.False(t, r.Widen(1e-10, 1))

	var d F64
	d.Set(5, 5)
	assert.True(t, d.IsValid())
	assert.True(t, d.Widen(1e-10, 1))
	assert.Equal(t, F64{4, 6}, d)
	assert.False(t, d.Widen(1e-10, 1))
}
