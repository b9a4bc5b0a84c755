// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"

	"golang.org/x/text/cases"
)

// A Link is an [Inline] representing a link like [name](url)
// or, if Image is set, an image like ![name](url).
type Link struct {
	Name   string
	Target LinkTarget
	Image  bool
}

// A LinkTarget is where a [Link] points:
// a URL, or the name of a [Reference] still to be resolved.
// Links in a parsed [Document] always have a URL.
type LinkTarget struct {
	URL string
	Ref string
}

func (*Link) Inline() {}

func (x *Link) printHTML(p *printer) {
	if x.Image {
		p.html(`<img src="`)
		p.text(x.Target.URL)
		p.html(`" alt="`)
		p.text(x.Name)
		p.html(`" />`)
		return
	}
	p.html(`<a href="`)
	p.text(x.Target.URL)
	p.html(`">`)
	p.text(x.Name)
	p.html("</a>")
}

func (x *Link) printMarkdown(p *printer) {
	if x.Image {
		p.WriteByte('!')
	}
	p.WriteByte('[')
	labelEscaper.WriteString(&p.buf, x.Name)
	p.WriteByte(']')
	if x.Target.URL == "" && x.Target.Ref != "" {
		p.WriteByte('[')
		labelEscaper.WriteString(&p.buf, x.Target.Ref)
		p.WriteByte(']')
		return
	}
	p.WriteByte('(')
	urlEscaper.WriteString(&p.buf, x.Target.URL)
	p.WriteByte(')')
}

// link parses a link or image whose opening '[' has been consumed.
// The name runs to the next ']', and must be followed immediately
// by a URL in ( ) or a reference name in [ ].
// An empty reference name means the link name is the reference.
func (in *inlineState) link(s *scanner, open Position, image bool) error {
	var name strings.Builder
Name:
	for {
		pos := s.pos()
		c := s.next()
		switch {
		case c == eof || c == '[':
			return unexpected(c, pos)
		case c == '\\' && isPunct(s.peek()):
			name.WriteRune(s.next())
		case c == ']':
			break Name
		default:
			name.WriteRune(c)
		}
	}

	b := new(LinkBuilder).Name(name.String()).Image(image)
	pos := s.pos()
	switch c := s.next(); c {
	case '(':
		url, err := scanDelimited(s, ')')
		if err != nil {
			return err
		}
		b.URL(url)
	case '[':
		ref, err := scanDelimited(s, ']')
		if err != nil {
			return err
		}
		if ref = trimSpaceTab(ref); ref == "" {
			ref = name.String()
		}
		b.Ref(ref)
	default:
		return unexpected(c, pos)
	}
	l, err := build(b, open)
	if err != nil {
		return err
	}
	in.flush()
	in.list = append(in.list, l)
	return nil
}

// scanDelimited returns the unescaped text up to the closing character end,
// consuming it. The text may not span lines.
// Inside [ ], an unescaped '[' is also an error.
func scanDelimited(s *scanner, end rune) (string, error) {
	var b strings.Builder
	for {
		pos := s.pos()
		c := s.next()
		switch {
		case c == end:
			return b.String(), nil
		case c == eof || c == '\n' || c == '[' && end == ']':
			return "", unexpected(c, pos)
		case c == '\\' && isPunct(s.peek()):
			b.WriteRune(s.next())
		default:
			b.WriteRune(c)
		}
	}
}

// A Reference is a reference definition like
//
//	[name]: <https://example.com> "title"
//
// Reference links name it instead of giving a URL.
type Reference struct {
	Name  string
	URL   string
	Title string
}

func (r *Reference) printMarkdown(p *printer) {
	p.WriteByte('[')
	labelEscaper.WriteString(&p.buf, r.Name)
	p.WriteString("]: <")
	destEscaper.WriteString(&p.buf, r.URL)
	p.WriteByte('>')
	if r.Title != "" {
		p.WriteString(` "`)
		titleEscaper.WriteString(&p.buf, r.Title)
		p.WriteByte('"')
	}
}

// startReference parses the reference definition at t.lines[t.i]
// and records it for resolution.
func (p *parser) startReference(t *task) error {
	s := t.lines[t.i]
	t.i++
	s.trim()
	def, _ := parseReference(s.text)
	r, err := build(new(ReferenceBuilder).Name(def.name).URL(def.url).Title(def.title), s.pos())
	if err != nil {
		return err
	}
	p.refs = append(p.refs, r)
	return nil
}

type refdef struct {
	name, url, title string
}

// parseReference parses a reference definition filling all of s:
// a label in [ ], a colon, a destination (either <...> or
// a run of non-space characters), and an optional title
// in "", '' or ( ), separated from the destination by space.
func parseReference(s string) (refdef, bool) {
	var def refdef
	s = trimSpaceTab(s)
	if s == "" || s[0] != '[' {
		return def, false
	}
	label, i, ok := scanLabel(s, 1)
	if !ok || i >= len(s) || s[i] != ':' {
		return def, false
	}
	def.name = label
	i = skipSpace(s, i+1)
	if i >= len(s) {
		return def, false
	}
	if s[i] == '<' {
		j, ok := scanEscaped(s, i+1, '>')
		if !ok {
			return def, false
		}
		def.url = unescape(s[i+1 : j])
		i = j + 1
	} else {
		j := i
		for j < len(s) && s[j] != ' ' && s[j] != '\t' {
			if s[j] == '\\' && j+1 < len(s) {
				j++
			}
			j++
		}
		def.url = unescape(s[i:j])
		i = j
	}
	j := skipSpace(s, i)
	if j == len(s) {
		return def, true
	}
	if j == i {
		return def, false
	}
	end := byte(0)
	switch s[j] {
	case '"', '\'':
		end = s[j]
	case '(':
		end = ')'
	default:
		return def, false
	}
	k, ok := scanEscaped(s, j+1, end)
	if !ok || skipSpace(s, k+1) != len(s) {
		return def, false
	}
	def.title = unescape(s[j+1 : k])
	return def, true
}

// scanLabel scans a reference label whose '[' precedes s[i],
// returning the trimmed, unescaped label and the index after its ']'.
func scanLabel(s string, i int) (string, int, bool) {
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '[':
			return "", 0, false
		case ']':
			label := trimSpaceTab(s[i:j])
			if label == "" {
				return "", 0, false
			}
			return unescape(label), j + 1, true
		}
	}
	return "", 0, false
}

// scanEscaped returns the index of the first unescaped end in s[i:].
func scanEscaped(s string, i int, end byte) (int, bool) {
	for ; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case end:
			return i, true
		}
	}
	return 0, false
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// normalizeLabel returns the normalized label for s, for uniquely identifying that label:
// spaces and tabs trimmed, internal runs collapsed to a single space,
// and case folded.
func normalizeLabel(s string) string {
	s = trimSpaceTabNewline(s)
	var b strings.Builder
	space := false
	hi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case ' ', '\t', '\n':
			space = true
			continue
		default:
			if space {
				b.WriteByte(' ')
				space = false
			}
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c >= 0x80 {
				hi = true
			}
			b.WriteByte(c)
		}
	}
	s = b.String()
	if hi {
		s = cases.Fold().String(s)
	}
	return s
}
