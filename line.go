// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
	"unicode/utf8"
)

// A line is a view of one input line.
// text is the part of the line not yet consumed,
// and col is the byte offset of text within the original line,
// so that stripping markers (quote prefixes, list bullets)
// never copies the underlying text.
type line struct {
	text   string
	lineno int
	col    int
}

// splitLines splits text into lines, dropping the line terminators
// (\n, \r\n, or a lone \r), so no line ever holds a \r.
func splitLines(text string) []line {
	var lines []line
	for n := 1; text != ""; n++ {
		i := strings.IndexAny(text, "\r\n")
		var s string
		switch {
		case i < 0:
			s, text = text, ""
		case strings.HasPrefix(text[i:], "\r\n"):
			s, text = text[:i], text[i+2:]
		default:
			s, text = text[:i], text[i+1:]
		}
		lines = append(lines, line{text: s, lineno: n})
	}
	return lines
}

// allBlank reports whether every line is blank.
// Blank means what it means to the segmenter: spaces and tabs only.
func allBlank(lines []line) bool {
	for _, s := range lines {
		if !s.isBlank() {
			return false
		}
	}
	return true
}

func (s line) pos() Position {
	return Position{Line: s.lineno, Col: s.col + 1}
}

// skip advances s past n bytes.
func (s *line) skip(n int) {
	s.text = s.text[n:]
	s.col += n
}

// nonblank returns the index of the first non-space, non-tab byte
// in s.text, or len(s.text) if there is none.
func (s line) nonblank() int {
	i := 0
	for i < len(s.text) && (s.text[i] == ' ' || s.text[i] == '\t') {
		i++
	}
	return i
}

func (s line) isBlank() bool {
	return s.nonblank() == len(s.text)
}

// trimLeft skips leading spaces and tabs.
func (s *line) trimLeft() {
	s.skip(s.nonblank())
}

// trim skips leading spaces and tabs and drops trailing ones.
func (s *line) trim() {
	s.trimLeft()
	s.text = trimRightSpaceTab(s.text)
}

// peek returns the first non-blank byte of s, or 0 if s is blank.
func (s line) peek() byte {
	if i := s.nonblank(); i < len(s.text) {
		return s.text[i]
	}
	return 0
}

func trimLeftSpaceTab(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:]
}

func trimRightSpaceTab(s string) string {
	j := len(s)
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[:j]
}

func trimSpaceTab(s string) string {
	return trimRightSpaceTab(trimLeftSpaceTab(s))
}

// trimSpaceTabNewline trims spaces, tabs, and newlines from both ends of s.
func trimSpaceTabNewline(s string) string {
	return strings.Trim(s, " \t\n")
}

// eof is returned by scanner.peek and scanner.next at end of input.
const eof = -1

// A scanner is a pull-based rune cursor over a sequence of lines.
// It yields '\n' between lines (but not after the last one)
// and tracks the position of the next rune in the original input.
type scanner struct {
	lines []line
	li    int // current line
	i     int // byte offset in lines[li].text
}

func newScanner(lines []line) *scanner {
	return &scanner{lines: lines}
}

func (s *scanner) eof() bool {
	if s.li >= len(s.lines) {
		return true
	}
	return s.li == len(s.lines)-1 && s.i >= len(s.lines[s.li].text)
}

// peek returns the next rune without consuming it.
func (s *scanner) peek() rune {
	if s.eof() {
		return eof
	}
	t := s.lines[s.li].text
	if s.i >= len(t) {
		return '\n'
	}
	if c := t[s.i]; c < utf8.RuneSelf {
		return rune(c)
	}
	r, _ := utf8.DecodeRuneInString(t[s.i:])
	return r
}

// next consumes and returns the next rune.
func (s *scanner) next() rune {
	if s.eof() {
		return eof
	}
	t := s.lines[s.li].text
	if s.i >= len(t) {
		s.li++
		s.i = 0
		return '\n'
	}
	r, size := utf8.DecodeRuneInString(t[s.i:])
	s.i += size
	return r
}

// pos returns the position of the next rune.
func (s *scanner) pos() Position {
	if len(s.lines) == 0 {
		return Position{}
	}
	if s.li >= len(s.lines) {
		l := s.lines[len(s.lines)-1]
		return Position{Line: l.lineno, Col: l.col + len(l.text) + 1}
	}
	l := s.lines[s.li]
	return Position{Line: l.lineno, Col: l.col + s.i + 1}
}

// rest returns the index of the current line and the unconsumed
// remainder of that line.
func (s *scanner) rest() (int, line) {
	if s.li >= len(s.lines) {
		return len(s.lines), line{}
	}
	l := s.lines[s.li]
	l.skip(s.i)
	return s.li, l
}
