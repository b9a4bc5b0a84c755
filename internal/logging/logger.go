// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the charmbracelet/log loggers
// used by the mdfmt and md2html commands.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Level returns the log level called name, ignoring case.
// "warning" is accepted for "warn", and an empty or unknown name means info.
func Level(name string) log.Level {
	if strings.EqualFold(name, "warning") {
		return log.WarnLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New returns a logger writing to w at the named level.
// Every line it writes starts with the command name.
func New(w io.Writer, command, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: command,
		Level:  Level(level),
	})
}
