// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user log level shared by the scene
// packages, and a helper to install it as the default slog handler.
package logx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [InstallHandler] or [SetLevelString]. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag and
// [slog.LevelWarn] with the release build tag.
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(defaultUserLevel)
}

// InstallHandler sets the default slog logger to a text handler writing to w
// (os.Stderr if nil) that filters at [UserLevel].
func InstallHandler(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})))
}

// SetLevelString sets [UserLevel] from a level name
// ("debug", "info", "warn", "error"), ignoring case.
// Unknown names leave the level unchanged and return false.
func SetLevelString(level string) bool {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return false
	}
	UserLevel.Set(l)
	return true
}
