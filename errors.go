// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"errors"
	"fmt"
)

// An ErrorKind classifies a [ParseError].
type ErrorKind int

const (
	EmptyDocument         ErrorKind = 1 + iota // input has no content
	EmptyContent                               // a delimited span encloses nothing
	UnexpectedChar                             // a character invalid in the current state
	UnexpectedEnd                              // input ended before a construct closed
	UnresolvedReference                        // a reference link has no definition
	IncompleteBuilderData                      // a node is missing a mandatory field
)

var kindText = [...]string{
	EmptyDocument:         "empty document",
	EmptyContent:          "empty content",
	UnexpectedChar:        "unexpected character",
	UnexpectedEnd:         "unexpected end of input",
	UnresolvedReference:   "unresolved reference",
	IncompleteBuilderData: "incomplete node",
}

func (k ErrorKind) String() string {
	if 0 < int(k) && int(k) < len(kindText) {
		return kindText[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// A Position is a 1-based line and byte column in the input.
// The zero Position means the position is unknown.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// A ParseError reports why a document could not be parsed.
type ParseError struct {
	Kind ErrorKind
	Pos  Position
	Char rune   // offending character, for UnexpectedChar
	Name string // missing reference, or missing field for IncompleteBuilderData
	Err  error  // underlying error, usually a *BuildError
}

// Sentinels for use with [errors.Is].
// A ParseError matches the sentinel of its kind.
var (
	ErrEmptyDocument         = &ParseError{Kind: EmptyDocument}
	ErrEmptyContent          = &ParseError{Kind: EmptyContent}
	ErrUnexpectedChar        = &ParseError{Kind: UnexpectedChar}
	ErrUnexpectedEnd         = &ParseError{Kind: UnexpectedEnd}
	ErrUnresolvedReference   = &ParseError{Kind: UnresolvedReference}
	ErrIncompleteBuilderData = &ParseError{Kind: IncompleteBuilderData}
)

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.Kind == UnexpectedChar:
		msg = fmt.Sprintf("unexpected %q", e.Char)
	case e.Kind == UnresolvedReference:
		msg = fmt.Sprintf("unresolved reference %q", e.Name)
	case e.Err != nil:
		msg = e.Err.Error()
	}
	if e.Pos.Line > 0 {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.isSentinel() && t.Kind == e.Kind
}

func (e *ParseError) isSentinel() bool {
	return e.Pos == Position{} && e.Char == 0 && e.Name == "" && e.Err == nil
}

// A BuildError is returned by a builder's Build method
// when a mandatory field has not been set.
// It matches [ErrIncompleteBuilderData] under [errors.Is].
type BuildError struct {
	Node  string // "heading", "link", ...
	Field string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("incomplete %s: missing %s", e.Node, e.Field)
}

func (e *BuildError) Is(target error) bool {
	return target == ErrIncompleteBuilderData
}

// errorf returns a ParseError of the given kind at pos.
func errorf(kind ErrorKind, pos Position) *ParseError {
	return &ParseError{Kind: kind, Pos: pos}
}

// unexpected returns an UnexpectedChar or, for c == eof, UnexpectedEnd error.
func unexpected(c rune, pos Position) *ParseError {
	if c == eof {
		return errorf(UnexpectedEnd, pos)
	}
	return &ParseError{Kind: UnexpectedChar, Pos: pos, Char: c}
}

// incomplete converts a builder failure into a ParseError at pos.
func incomplete(err error, pos Position) error {
	var be *BuildError
	if !errors.As(err, &be) {
		return err
	}
	return &ParseError{Kind: IncompleteBuilderData, Pos: pos, Name: be.Field, Err: be}
}
