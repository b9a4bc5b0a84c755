// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Quote is a [Block] representing a block quote.
type Quote struct {
	Blocks []Block // content of quote
}

func (*Quote) Block() {}

func (b *Quote) printHTML(p *printer) {
	p.html("<blockquote>\n")
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
	p.html("</blockquote>\n")
}

func (b *Quote) printMarkdown(p *printer) {
	p.WriteString("> ")
	defer p.pop(p.push("> "))
	printMarkdownBlocks(b.Blocks, p)
}

// startQuote collects the run of quote lines starting at t.lines[t.i],
// stripping their markers, and returns an empty quote
// together with the task that segments its content into it.
func startQuote(t *task) (*Quote, *task) {
	var lines []line
	for t.i < len(t.lines) {
		s, ok := trimQuote(t.lines[t.i])
		if !ok {
			break
		}
		lines = append(lines, s)
		t.i++
	}
	q, _ := new(QuoteBuilder).Build()
	return q, &task{lines: lines, dst: &q.Blocks}
}

// trimQuote strips a leading '>' and one optional space from s.
func trimQuote(s line) (line, bool) {
	s.trimLeft()
	if s.text == "" || s.text[0] != '>' {
		return s, false
	}
	s.skip(1)
	if s.text != "" && s.text[0] == ' ' {
		s.skip(1)
	}
	return s, true
}
