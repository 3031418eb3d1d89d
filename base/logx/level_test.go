// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestSetup(t *testing.T) {
	def := slog.Default()
	defer slog.SetDefault(def)

	var b bytes.Buffer
	l := Setup(&b, slog.LevelInfo)
	assert.Equal(t, slog.LevelInfo, UserLevel)
	l.Debug("hidden")
	slog.Info("shown", "n", 3)
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "msg=shown n=3")
}
