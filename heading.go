// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "fmt"

// A Heading is a [Block] representing a heading like "## Usage",
// usually displayed with the <h1> through <h6> tags.
type Heading struct {
	// Level is the heading level: 1 through 6.
	Level HeadingLevel

	// Text is the text of the heading.
	Text Inlines
}

func (*Heading) Block() {}

func (b *Heading) printHTML(p *printer) {
	fmt.Fprintf(&p.buf, "<h%d>", b.Level)
	b.Text.printHTML(p)
	fmt.Fprintf(&p.buf, "</h%d>\n", b.Level)
}

func (b *Heading) printMarkdown(p *printer) {
	for i := HeadingLevelOf(int(b.Level)); i > 0; i-- {
		p.WriteByte('#')
	}
	p.WriteByte(' ')
	text := inlineMarkdown(b.Text)
	if text != "" && text[0] == '#' {
		// Keep the text from lengthening the '#' run.
		p.WriteByte('\\')
	}
	p.lines(text, false)
}

// startHeading parses the heading on the next logical line of t.
// The run of '#' gives the level, clamped to 6;
// the rest of the line, trimmed, is the heading text.
func (p *parser) startHeading(t *task) (Block, error) {
	s := t.logical()
	s.trimLeft()
	pos := s.pos()
	n := 0
	for n < len(s.text) && s.text[n] == '#' {
		n++
	}
	s.skip(n)
	s.trim()
	text, err := p.inline([]line{s})
	if err != nil {
		return nil, err
	}
	return build(new(HeadingBuilder).Level(n).Text(text...), pos)
}
