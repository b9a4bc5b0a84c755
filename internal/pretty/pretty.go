// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pretty formats parse diagnostics for terminals.
package pretty

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/lightmark/markdown"
)

// Styles holds the styles for the parts of a diagnostic.
type Styles struct {
	FilePath lipgloss.Style
	Location lipgloss.Style
	Kind     lipgloss.Style
	Message  lipgloss.Style
}

// NewStyles returns colored styles, or plain ones if color is disabled.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{FilePath: plain, Location: plain, Kind: plain, Message: plain}
	}
	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Message:  lipgloss.NewStyle(),
	}
}

// IsColorEnabled reports whether to color output written to w.
// Mode is "always", "never", or "auto" (the default),
// which colors only terminals and honors NO_COLOR.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Diagnostic formats err, found while parsing file, as
//
//	file:line:col: message
//
// Errors that are not parse errors are formatted as file: message.
func (s *Styles) Diagnostic(file string, err error) string {
	if file == "" {
		file = "<stdin>"
	}
	var pe *markdown.ParseError
	if !errors.As(err, &pe) {
		return fmt.Sprintf("%s: %s", s.FilePath.Render(file), s.Message.Render(err.Error()))
	}
	loc := ""
	if pe.Pos.Line > 0 {
		loc = ":" + s.Location.Render(pe.Pos.String())
	}
	return fmt.Sprintf("%s%s: %s", s.FilePath.Render(file), loc, s.Kind.Render(message(pe)))
}

// message returns the detail of pe without its position.
func message(pe *markdown.ParseError) string {
	e := *pe
	e.Pos = markdown.Position{}
	return e.Error()
}
