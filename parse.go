// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"

	"github.com/charmbracelet/log"
)

// A Parser is a Markdown parser.
// The exported fields in the struct can be filled in before calling
// [Parser.Parse] in order to customize the details of the parsing process.
// A Parser is safe for concurrent use by multiple goroutines.
type Parser struct {
	// Name identifies the document being parsed.
	// It is copied into [Document.Name].
	Name string

	// Logger receives debug traces of the parse.
	// A nil Logger disables them.
	Logger *log.Logger
}

// Parse parses text with the default settings.
func Parse(text string) (*Document, error) {
	var p Parser
	return p.Parse(text)
}

// Parse parses text as a Markdown document.
// It fails with the first error found: segmentation errors
// in document order, then unresolved references.
// No partial document is returned.
func (p *Parser) Parse(text string) (*Document, error) {
	lines := splitLines(text)
	if allBlank(lines) {
		return nil, errorf(EmptyDocument, Position{})
	}
	ps := &parser{Parser: p}
	var blocks []Block
	if err := ps.segment(lines, &blocks); err != nil {
		ps.debug("parse failed", "error", err)
		return nil, err
	}
	doc, err := ps.assemble(blocks)
	if err != nil {
		ps.debug("resolve failed", "error", err)
		return nil, err
	}
	ps.debug("parsed", "blocks", len(doc.Blocks), "references", len(doc.Links))
	return doc, nil
}

// A parser holds the state of a single call to Parse.
type parser struct {
	*Parser
	refs []*Reference // definitions in document order
}

func (p *parser) debug(msg string, kv ...any) {
	if p.Logger == nil {
		return
	}
	if p.Name != "" {
		kv = append([]any{"document", p.Name}, kv...)
	}
	p.Logger.Debug(msg, kv...)
}

// A task is a run of lines being segmented into blocks:
// the whole document, or the stripped content of one quote.
type task struct {
	lines []line
	i     int      // next line to segment
	dst   *[]Block // where finished blocks go
}

// segment splits lines into blocks, appending them to *dst.
//
// Quotes are segmented through an explicit stack of tasks
// rather than by recursion, so nesting depth is bounded by memory,
// not by the goroutine stack. A task is suspended while the quote it
// started is segmented, which keeps blocks and errors in document order.
func (p *parser) segment(lines []line, dst *[]Block) error {
	stack := []*task{{lines: lines, dst: dst}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		child, err := p.run(t)
		if err != nil {
			return err
		}
		if child == nil {
			stack = stack[:len(stack)-1]
			continue
		}
		stack = append(stack, child)
	}
	return nil
}

// run segments t until it finishes or starts a quote,
// in which case it returns the quote's content as a new task.
func (p *parser) run(t *task) (*task, error) {
	for t.i < len(t.lines) {
		s := t.lines[t.i]
		var b Block
		var err error
		switch classify(s.text) {
		case kindBlank:
			t.i++
			continue
		case kindQuote:
			q, child := startQuote(t)
			*t.dst = append(*t.dst, q)
			return child, nil
		case kindCode:
			b, err = startCode(t)
		case kindHeading:
			b, err = p.startHeading(t)
		case kindBreak:
			t.i++
			b = &ThematicBreak{}
		case kindList:
			b, err = p.startList(t)
		case kindReference:
			err = p.startReference(t)
		default:
			b, err = p.startParagraph(t)
		}
		if err != nil {
			return nil, err
		}
		if b != nil {
			*t.dst = append(*t.dst, b)
		}
	}
	return nil, nil
}

// logical returns the logical line starting at t.lines[t.i]
// and advances t past it. A line ending in a single backslash
// is joined with a following non-blank line: the backslash is
// dropped and the whitespace around the join becomes one space.
func (t *task) logical() line {
	s := t.lines[t.i]
	t.i++
	if !continues(s.text) || t.i >= len(t.lines) || t.lines[t.i].isBlank() {
		return s
	}
	var b strings.Builder
	cur := s.text
	for continues(cur) && t.i < len(t.lines) && !t.lines[t.i].isBlank() {
		b.WriteString(trimRightSpaceTab(cur[:len(cur)-1]))
		b.WriteByte(' ')
		cur = trimLeftSpaceTab(t.lines[t.i].text)
		t.i++
	}
	b.WriteString(cur)
	s.text = b.String()
	return s
}

// A blockKind is the kind of block a line starts.
type blockKind int

const (
	kindBlank blockKind = iota
	kindParagraph
	kindQuote
	kindCode
	kindHeading
	kindBreak
	kindList
	kindReference
)

// classify reports the kind of block that a line with text s starts,
// judged by its first non-blank character.
func classify(s string) blockKind {
	t := trimLeftSpaceTab(s)
	if t == "" {
		return kindBlank
	}
	switch t[0] {
	case '>':
		return kindQuote
	case '`':
		return kindCode
	case '#':
		return kindHeading
	}
	if isThematicBreak(t) {
		return kindBreak
	}
	if _, ok := parseMarker(t); ok {
		return kindList
	}
	if t[0] == '[' {
		if _, ok := parseReference(t); ok {
			return kindReference
		}
	}
	return kindParagraph
}
