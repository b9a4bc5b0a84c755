// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A CodeBlock is a [Block] representing a code span like ``x := 1``
// or a fenced code block, usually displayed in <code> or <pre><code> tags.
//
// A code span is written with a fence of one or two backticks
// and a fenced block with three or more.
// Text is everything between the opening fence (and tag) and the
// closing fence, newlines included.
type CodeBlock struct {
	Text  string
	Fence int      // number of backticks in the opening and closing runs
	Lang  Language // language of a fenced block, from Tag
	Tag   string   // tag following the opening fence, verbatim
}

func (*CodeBlock) Block() {}

// Fenced reports whether b is a fenced block rather than a span.
func (b *CodeBlock) Fenced() bool {
	return b.Fence >= 3
}

func (b *CodeBlock) printHTML(p *printer) {
	if !b.Fenced() {
		p.html("<p><code>")
		p.text(b.Text)
		p.html("</code></p>\n")
		return
	}
	p.html("<pre><code")
	if b.Tag != "" {
		p.html(` class="language-`)
		p.text(b.Tag)
		p.html(`"`)
	}
	p.html(">")
	text := strings.TrimPrefix(b.Text, "\n")
	p.text(text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		p.html("\n")
	}
	p.html("</code></pre>\n")
}

func (b *CodeBlock) printMarkdown(p *printer) {
	fence := strings.Repeat("`", b.Fence)
	p.WriteString(fence)
	if b.Fenced() {
		p.WriteString(b.Tag)
	}
	p.lines(b.Text, true)
	p.WriteString(fence)
}

// startCode parses the code span or block at t.lines[t.i].
// Any text after the closing fence on its line is left in t
// to be segmented as a new block.
func startCode(t *task) (Block, error) {
	s := t.lines[t.i]
	s.trimLeft()
	t.lines[t.i] = s
	sc := newScanner(t.lines[t.i:])
	b, err := parseCode(sc)
	if err != nil {
		return nil, err
	}
	li, rest := sc.rest()
	t.i += li
	if t.i < len(t.lines) {
		if rest.isBlank() {
			t.i++
		} else {
			t.lines[t.i] = rest
		}
	}
	return b, nil
}

// parseCode parses a code span or block from s,
// which must be positioned at the opening run of backticks.
// The content ends at the first run of exactly as many backticks
// as opened it; shorter and longer runs are content.
func parseCode(s *scanner) (*CodeBlock, error) {
	open := s.pos()
	r := 0
	for s.peek() == '`' {
		s.next()
		r++
	}
	if s.eof() {
		// A lone run: an even one is an empty open/close pair.
		if r%2 == 0 {
			return nil, errorf(EmptyContent, open)
		}
		return nil, errorf(UnexpectedEnd, s.pos())
	}

	b := new(CodeBuilder).Fence(r)
	if r >= 3 {
		var tag strings.Builder
		for c := s.peek(); c != eof && c != '`' && !isSpace(c); c = s.peek() {
			tag.WriteRune(s.next())
		}
		b.Tag(tag.String())
	}

	var text strings.Builder
	for {
		if s.eof() {
			return nil, errorf(UnexpectedEnd, s.pos())
		}
		c := s.next()
		if c != '`' {
			text.WriteRune(c)
			continue
		}
		n := 1
		for s.peek() == '`' {
			s.next()
			n++
		}
		if n == r {
			break
		}
		for range n {
			text.WriteByte('`')
		}
	}
	if text.Len() == 0 {
		return nil, errorf(EmptyContent, open)
	}
	return build(b.Text(text.String()), open)
}
