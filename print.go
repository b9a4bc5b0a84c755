// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"strings"
)

// A printer accumulates rendered output.
// In Markdown mode every new line starts with the current prefix
// (the stacked "> " markers of enclosing quotes),
// and trailing spaces are trimmed from each finished line
// back to trimLimit.
type printer struct {
	buf       bytes.Buffer
	prefix    []byte
	trimLimit int
}

func (p *printer) WriteString(s string) (int, error) {
	return p.buf.WriteString(s)
}

func (p *printer) WriteByte(c byte) error {
	return p.buf.WriteByte(c)
}

// noTrim protects everything written so far from trailing-space trimming.
func (p *printer) noTrim() {
	p.trimLimit = p.buf.Len()
}

// nl ends the current line and starts a new one with the current prefix.
func (p *printer) nl() {
	text := p.buf.Bytes()
	for len(text) > p.trimLimit && text[len(text)-1] == ' ' {
		text = text[:len(text)-1]
	}
	p.buf.Truncate(len(text))
	p.buf.WriteByte('\n')
	p.buf.Write(p.prefix)
}

// lines writes s, starting a new prefixed line at each newline.
// If keep is set, trailing spaces on the lines are preserved.
func (p *printer) lines(s string, keep bool) {
	for i, ln := range strings.Split(s, "\n") {
		if i > 0 {
			p.nl()
		}
		p.WriteString(ln)
		if keep {
			p.noTrim()
		}
	}
}

func (p *printer) push(s string) int {
	n := len(p.prefix)
	p.prefix = append(p.prefix, s...)
	return n
}

func (p *printer) pop(n int) {
	p.prefix = p.prefix[:n]
}

// ToMarkdown renders doc as canonical text.
// Parsing the result yields a document structurally equal to doc.
func ToMarkdown(doc *Document) string {
	var p printer
	doc.printMarkdown(&p)
	return p.buf.String()
}

// ToHTML renders doc as HTML.
func ToHTML(doc *Document) string {
	var p printer
	doc.printHTML(&p)
	return p.buf.String()
}

// inlineMarkdown renders x on its own, without prefixes.
func inlineMarkdown(x Inlines) string {
	var p printer
	x.printMarkdown(&p)
	return p.buf.String()
}
