// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markdown parses a small, self-consistent Markdown dialect
// into an immutable document tree and prints trees back as text or HTML.
//
// The dialect has headings, paragraphs, italic, bold and bold-italic
// emphasis, code spans and fenced code blocks, links and images
// with optional reference indirection, block quotes, lists,
// thematic breaks, and reference definitions.
// Parsing runs in time linear in the input, and [ToMarkdown]
// prints a canonical form that parses back to an equal tree.
package markdown

import "sort"

// A Document is a parsed document:
// its top-level blocks and the reference table
// the document's reference links were resolved against.
type Document struct {
	Name   string
	Blocks []Block

	// Links maps normalized reference names to their definitions.
	// Reference definitions do not appear in Blocks.
	Links map[string]*Reference
}

// A Block is a block-level element, one of
// [Heading], [Paragraph], [CodeBlock], [Quote], [List], and [ThematicBreak].
type Block interface {
	Block()

	printHTML(*printer)
	printMarkdown(*printer)
}

func (b *Document) printHTML(p *printer) {
	for _, c := range b.Blocks {
		c.printHTML(p)
	}
}

func (b *Document) printMarkdown(p *printer) {
	printMarkdownBlocks(b.Blocks, p)

	// Add reference definitions.
	if len(b.Links) > 0 {
		if p.buf.Len() > 0 {
			p.nl()
			p.nl()
		}
		printLinks(p, b.Links)
	}

	// Terminate with a single newline.
	p.nl()
	text := p.buf.Bytes()
	w := len(text)
	for w > 0 && text[w-1] == '\n' {
		w--
	}
	p.buf.Truncate(w)
	if w > 0 {
		p.buf.WriteByte('\n')
	}
}

// printMarkdownBlocks prints bs separated by blank lines.
func printMarkdownBlocks(bs []Block, p *printer) {
	for bn, b := range bs {
		if bn > 0 {
			p.nl()
			p.nl()
		}
		b.printMarkdown(p)
	}
}

// printLinks prints the reference table sorted by normalized name.
func printLinks(p *printer, links map[string]*Reference) {
	keys := make([]string, 0, len(links))
	for k := range links {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			p.nl()
		}
		links[k].printMarkdown(p)
	}
}
