// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"
)

// An Inline is an inline element, one of
// [Plain], [Emphasis], [Link] (including images), and [LineBreak].
type Inline interface {
	Inline()

	printHTML(*printer)
	printMarkdown(*printer)
}

// An Inlines is an [Inline] that represents a concatenation of Inlines.
type Inlines []Inline

func (Inlines) Inline() {}

func (x Inlines) printHTML(p *printer) {
	for _, inl := range x {
		inl.printHTML(p)
	}
}

func (x Inlines) printMarkdown(p *printer) {
	for i, inl := range x {
		if pl, ok := inl.(*Plain); ok && i+1 < len(x) && strings.HasSuffix(pl.Text, "!") {
			if _, ok := x[i+1].(*Link); ok {
				// Keep "!" from turning the link into an image.
				plainEscaper.WriteString(&p.buf, pl.Text[:len(pl.Text)-1])
				p.WriteString(`\!`)
				continue
			}
		}
		inl.printMarkdown(p)
	}
}

// A Plain is an [Inline] that represents plain text.
type Plain struct {
	Text string
}

func (*Plain) Inline() {}

func (x *Plain) printHTML(p *printer) { p.text(x.Text) }

func (x *Plain) printMarkdown(p *printer) {
	plainEscaper.WriteString(&p.buf, x.Text)
}

// An Emphasis is an [Inline] that represents
// italic, bold or bold-italic text.
type Emphasis struct {
	Kind EmphasisKind
	Text string
}

func (*Emphasis) Inline() {}

func (x *Emphasis) printHTML(p *printer) {
	switch x.Kind {
	case Italic:
		p.html("<em>")
		p.text(x.Text)
		p.html("</em>")
	case Bold:
		p.html("<strong>")
		p.text(x.Text)
		p.html("</strong>")
	default:
		p.html("<em><strong>")
		p.text(x.Text)
		p.html("</strong></em>")
	}
}

func (x *Emphasis) printMarkdown(p *printer) {
	k := x.Kind
	if k < Italic || k > BoldItalic {
		k = BoldItalic
	}
	p.WriteString(k.delim())
	emphEscaper.WriteString(&p.buf, x.Text)
	p.WriteString(k.delim())
}

// An inlineState is the state of the inline tokenizer for one block.
type inlineState struct {
	list  Inlines
	plain strings.Builder // pending plain text

	// Open emphasis, if kind != 0.
	kind EmphasisKind
	open Position
	text strings.Builder // content so far
	src  strings.Builder // source text, delimiters included
}

// flush moves pending plain text to the list.
func (in *inlineState) flush() {
	if in.plain.Len() > 0 {
		in.list = append(in.list, &Plain{Text: in.plain.String()})
		in.plain.Reset()
	}
}

// addPlain adds text outside emphasis; a newline becomes a LineBreak.
func (in *inlineState) addPlain(c rune) {
	if c == '\n' {
		in.flush()
		in.list = append(in.list, &LineBreak{})
		return
	}
	in.plain.WriteRune(c)
}

// add adds a literal rune at the current nesting.
func (in *inlineState) add(c rune) {
	if in.kind == 0 {
		in.addPlain(c)
		return
	}
	in.text.WriteRune(c)
	in.src.WriteRune(c)
}

// stars handles a run of n asterisks at pos, followed by next.
// With no emphasis open, the run opens the kind it denotes,
// unless whitespace or the end of the text follows it,
// in which case it is literal.
// A run denoting the open kind closes it.
// Any other run steps the open kind one place along the ladder
// and stays in the text as literal asterisks.
func (in *inlineState) stars(n int, pos Position, next rune) error {
	run := strings.Repeat("*", n)
	k := emphasisOf(n)
	if in.kind == 0 {
		if next == eof || isSpace(next) {
			in.plain.WriteString(run)
			return nil
		}
		in.kind = k
		in.open = pos
		in.src.WriteString(run)
		return nil
	}
	if k != in.kind {
		in.kind = in.kind.Next()
		in.text.WriteString(run)
		in.src.WriteString(run)
		return nil
	}
	e, err := build(new(EmphasisBuilder).Kind(in.kind).Text(in.text.String()), in.open)
	if err != nil {
		return err
	}
	in.flush()
	in.list = append(in.list, e)
	in.kind = 0
	in.text.Reset()
	in.src.Reset()
	return nil
}

// finish ends the block. Emphasis still open is not emphasis at all:
// its source becomes plain text.
func (in *inlineState) finish() Inlines {
	if in.kind != 0 {
		for _, c := range in.src.String() {
			in.addPlain(c)
		}
		in.kind = 0
	}
	in.flush()
	return in.list
}

// inline tokenizes the text of one block,
// given as lines joined by newlines.
// It makes a single pass with constant work per character.
func (p *parser) inline(lines []line) (Inlines, error) {
	var in inlineState
	s := newScanner(lines)
	for !s.eof() {
		pos := s.pos()
		c := s.next()
		switch {
		case c == '\\' && isPunct(s.peek()):
			in.add(s.next())
		case c == '*':
			n := 1
			for s.peek() == '*' {
				s.next()
				n++
			}
			if err := in.stars(n, pos, s.peek()); err != nil {
				return nil, err
			}
		case in.kind != 0:
			in.add(c)
		case c == '!' && s.peek() == '[':
			s.next()
			if err := in.link(s, pos, true); err != nil {
				return nil, err
			}
		case c == '[':
			if err := in.link(s, pos, false); err != nil {
				return nil, err
			}
		case c == ']':
			return nil, unexpected(c, pos)
		default:
			in.addPlain(c)
		}
	}
	return in.finish(), nil
}
