// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A ladder is a bounded sequence of states lo..hi.
// Stepping up from hi moves to wrap, and stepping down from lo stays at lo.
// A saturating ladder has wrap == hi.
type ladder struct {
	lo, hi, wrap int
}

func (l ladder) up(v int) int {
	switch {
	case v < l.lo:
		return l.lo
	case v < l.hi:
		return v + 1
	}
	return l.wrap
}

func (l ladder) down(v int) int {
	switch {
	case v > l.hi:
		return l.hi
	case v > l.lo:
		return v - 1
	}
	return l.lo
}

func (l ladder) clamp(v int) int {
	return min(max(v, l.lo), l.hi)
}

// walk steps v up n times.
func (l ladder) walk(v, n int) int {
	// Past hi every further step lands on wrap and then cycles
	// between wrap and hi, so long runs need not be walked in full.
	for ; n > 0 && v < l.hi; n-- {
		v = l.up(v)
	}
	if n == 0 || l.wrap == l.hi {
		return v
	}
	if period := l.hi - l.wrap + 1; period > 1 {
		n %= period
	}
	for ; n > 0; n-- {
		v = l.up(v)
	}
	return v
}

var (
	headingLadder  = ladder{lo: 1, hi: 6, wrap: 6}
	emphasisLadder = ladder{lo: 0, hi: 3, wrap: 2}
)

// A HeadingLevel is a heading level between 1 and 6.
type HeadingLevel int

// HeadingLevelOf returns the heading level for a run of n '#' characters,
// clamped to [1, 6].
func HeadingLevelOf(n int) HeadingLevel {
	return HeadingLevel(headingLadder.clamp(n))
}

// Increment returns the next deeper level, saturating at 6.
func (l HeadingLevel) Increment() HeadingLevel {
	return HeadingLevel(headingLadder.up(int(l)))
}

// Decrement returns the next shallower level, saturating at 1.
func (l HeadingLevel) Decrement() HeadingLevel {
	return HeadingLevel(headingLadder.down(int(l)))
}

// An EmphasisKind is the kind of an [Emphasis] span.
type EmphasisKind int

const (
	Italic EmphasisKind = 1 + iota
	Bold
	BoldItalic
)

// emphasisOf returns the emphasis kind a run of n asterisks denotes:
// one, two and three asterisks give Italic, Bold and BoldItalic,
// and each further asterisk steps along the ladder,
// wrapping from BoldItalic back to Bold.
func emphasisOf(n int) EmphasisKind {
	return EmphasisKind(emphasisLadder.walk(0, n))
}

// Next returns the kind one step along the emphasis ladder.
func (k EmphasisKind) Next() EmphasisKind {
	return EmphasisKind(emphasisLadder.up(int(k)))
}

// delim returns the asterisks that open and close k.
func (k EmphasisKind) delim() string {
	return strings.Repeat("*", int(k))
}

func (k EmphasisKind) String() string {
	switch k {
	case Italic:
		return "Italic"
	case Bold:
		return "Bold"
	case BoldItalic:
		return "BoldItalic"
	}
	return "None"
}
