// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// A Paragraph is a [Block] representing a paragraph of text.
type Paragraph struct {
	Text Inlines
}

func (*Paragraph) Block() {}

func (b *Paragraph) printHTML(p *printer) {
	p.html("<p>")
	b.Text.printHTML(p)
	p.html("</p>\n")
}

func (b *Paragraph) printMarkdown(p *printer) {
	for i, ln := range strings.Split(inlineMarkdown(b.Text), "\n") {
		if i > 0 {
			p.nl()
		}
		p.WriteString(escapeLead(ln))
		p.noTrim()
	}
}

// escapeLead returns ln with a backslash inserted
// if ln would otherwise start a block other than a paragraph.
func escapeLead(ln string) string {
	if strings.HasPrefix(ln, "*") {
		// Printed plain text never starts with a bare '*',
		// so this one delimits emphasis and must stay as it is.
		return ln
	}
	switch classify(ln) {
	case kindBlank, kindParagraph:
		return ln
	case kindList:
		// "1. x" becomes "1\. x"; a bullet is escaped directly.
		if m, _ := parseMarker(ln); m.bullet == '.' {
			i := strings.IndexByte(ln, '.')
			return ln[:i] + `\` + ln[i:]
		}
	}
	i := len(ln) - len(trimLeftSpaceTab(ln))
	return ln[:i] + `\` + ln[i:]
}

// startParagraph collects the lines of a paragraph: logical lines
// up to a blank line or a line that starts some other block.
func (p *parser) startParagraph(t *task) (Block, error) {
	var lines []line
	for t.i < len(t.lines) {
		if len(lines) > 0 && classify(t.lines[t.i].text) != kindParagraph {
			break
		}
		s := t.logical()
		s.trim()
		lines = append(lines, s)
	}
	text, err := p.inline(lines)
	if err != nil {
		return nil, err
	}
	return build(new(ParagraphBuilder).Text(text...), lines[0].pos())
}
