// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A ThematicBreak is a [Block] representing a thematic break,
// usually displayed as a horizontal rule (<hr> tag).
type ThematicBreak struct{}

func (*ThematicBreak) Block() {}

func (b *ThematicBreak) printHTML(p *printer) {
	p.html("<hr />\n")
}

func (b *ThematicBreak) printMarkdown(p *printer) {
	p.WriteString("***")
}

// isThematicBreak reports whether s consists of three or more
// of the same character, one of '-', '_' or '*',
// with optional spaces and tabs around them.
func isThematicBreak(s string) bool {
	s = trimSpaceTab(s)
	if s == "" {
		return false
	}
	c := s[0]
	if c != '-' && c != '_' && c != '*' {
		return false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case c:
			n++
		case ' ', '\t':
		default:
			return false
		}
	}
	return n >= 3
}

// A LineBreak is an [Inline] representing a line break
// within a paragraph.
type LineBreak struct{}

func (*LineBreak) Inline() {}

func (x *LineBreak) printHTML(p *printer) {
	p.html("\n")
}

func (x *LineBreak) printMarkdown(p *printer) {
	p.WriteByte('\n')
}
