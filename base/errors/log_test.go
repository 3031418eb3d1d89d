// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func returnsError(fail bool) (int, error) {
	if fail {
		return 0, fmt.Errorf("wrapped: %w", errTest)
	}
	return 7, nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(errTest)
	assert.Equal(t, errTest, err)
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 7, Log1(returnsError(false)))
	assert.Equal(t, 0, Log1(returnsError(true)))
	assert.Equal(t, 7, Ignore1(returnsError(false)))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Panics(t, func() { Must1(returnsError(true)) })
	assert.Equal(t, 7, Must1(returnsError(false)))
}

func TestIs(t *testing.T) {
	_, err := returnsError(true)
	assert.True(t, Is(err, errTest))
	assert.Equal(t, errTest, Unwrap(err))
	joined := Join(nil, err)
	assert.True(t, Is(joined, errTest))
}
