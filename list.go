// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strconv"
)

// A List is a [Block] representing a list of single-line items.
type List struct {
	// Bullet is '-' or '*' for a bullet list
	// and '.' for an ordered list.
	Bullet byte

	// Start is the number of the first item of an ordered list.
	Start int

	Items []*Item
}

// An Item is one item of a [List].
type Item struct {
	Text Inlines
}

func (*List) Block() {}

// Ordered reports whether l is an ordered (numbered) list.
func (l *List) Ordered() bool {
	return l.Bullet == '.'
}

// Len returns the number of items in l.
func (l *List) Len() int {
	return len(l.Items)
}

func (b *List) printHTML(p *printer) {
	if b.Ordered() {
		p.html("<ol")
		if b.Start != 1 {
			fmt.Fprintf(&p.buf, ` start="%d"`, b.Start)
		}
		p.html(">\n")
	} else {
		p.html("<ul>\n")
	}
	for _, c := range b.Items {
		p.html("<li>")
		c.Text.printHTML(p)
		p.html("</li>\n")
	}
	if b.Ordered() {
		p.html("</ol>\n")
	} else {
		p.html("</ul>\n")
	}
}

func (b *List) printMarkdown(p *printer) {
	for i, c := range b.Items {
		if i > 0 {
			p.nl()
		}
		marker := "-"
		switch {
		case b.Ordered():
			n := b.Start + i
			if n > maxOrdinal {
				n = b.Start
			}
			marker = strconv.Itoa(n) + "."
		case b.Bullet == '*':
			marker = "*"
		}
		p.WriteString(marker)
		text := inlineMarkdown(c.Text)
		if text == "" {
			continue
		}
		if isThematicBreak(marker + " " + text) {
			// "- --" would be a thematic break.
			text = `\` + text
		}
		p.WriteByte(' ')
		p.lines(text, true)
	}
}

// maxOrdinal is the largest number an ordered list marker can carry.
const maxOrdinal = 999999999

// A marker is a parsed list item marker.
type marker struct {
	bullet byte // '-', '*', or '.' for ordered
	num    int  // ordinal, for ordered lists
	width  int  // bytes up to and including the space after the marker
}

// parseMarker parses a list item marker at the start of s:
// '-' or '*', or up to nine digits and a '.',
// followed by a space, a tab, or the end of the line.
func parseMarker(s string) (marker, bool) {
	if s == "" {
		return marker{}, false
	}
	var m marker
	i := 0
	switch c := s[0]; {
	case c == '-' || c == '*':
		m.bullet = c
		i = 1
	case isDigit(c):
		for i < len(s) && isDigit(s[i]) {
			if i >= 9 {
				return marker{}, false
			}
			m.num = m.num*10 + int(s[i]-'0')
			i++
		}
		if i >= len(s) || s[i] != '.' {
			return marker{}, false
		}
		m.bullet = '.'
		i++
	default:
		return marker{}, false
	}
	if i < len(s) {
		if s[i] != ' ' && s[i] != '\t' {
			return marker{}, false
		}
		i++
	}
	m.width = i
	return m, true
}

// startList collects consecutive item lines with the same kind of marker.
// Each item is one logical line.
func (p *parser) startList(t *task) (Block, error) {
	pos := t.lines[t.i].pos()
	b := new(ListBuilder)
	first := true
	for t.i < len(t.lines) {
		s := t.lines[t.i]
		if classify(s.text) != kindList {
			break
		}
		s.trimLeft()
		m, _ := parseMarker(s.text)
		if first {
			if m.bullet == '.' {
				b.Start(m.num)
			} else {
				b.Bullet(m.bullet)
			}
			first = false
		} else if m.bullet != b.bullet {
			break
		}
		s = t.logical()
		s.trimLeft()
		s.skip(m.width)
		s.trim()
		text, err := p.inline([]line{s})
		if err != nil {
			return nil, err
		}
		b.Item(text...)
	}
	return build(b, pos)
}
