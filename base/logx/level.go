// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the [slog] logger of command line tools
// from their verbosity flags.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity level the user has selected.
// Messages at or above this level are shown.
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the [slog.Level] for the given verbosity
// flags, evaluated in this order:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup sets [UserLevel] and installs a text handler writing
// to w at that level as the default logger.
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	UserLevel = level
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	return l
}
