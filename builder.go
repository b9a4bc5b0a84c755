// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "slices"

// A Builder is a mutable scratch value that produces a node of type T.
// Setters return the builder so calls can be chained.
// Build validates that every mandatory field has been set
// and returns a *[BuildError] otherwise.
// A builder should be discarded after Build.
//
// The zero value of each builder in this package is ready to use:
//
//	h, err := new(markdown.HeadingBuilder).Level(2).Text(&markdown.Plain{Text: "Usage"}).Build()
type Builder[T any] interface {
	Build() (T, error)
}

var (
	_ Builder[*Heading]   = (*HeadingBuilder)(nil)
	_ Builder[*Paragraph] = (*ParagraphBuilder)(nil)
	_ Builder[*CodeBlock] = (*CodeBuilder)(nil)
	_ Builder[*Quote]     = (*QuoteBuilder)(nil)
	_ Builder[*List]      = (*ListBuilder)(nil)
	_ Builder[*Link]      = (*LinkBuilder)(nil)
	_ Builder[*Reference] = (*ReferenceBuilder)(nil)
	_ Builder[*Emphasis]  = (*EmphasisBuilder)(nil)
)

// A fieldSet records which fields of a builder hold usable values.
type fieldSet uint8

const (
	fText fieldSet = 1 << iota
	fName
	fTarget
	fKind
	fFence
	fItems
)

var fieldNames = map[fieldSet]string{
	fText:   "text",
	fName:   "name",
	fTarget: "target",
	fKind:   "kind",
	fFence:  "fence",
	fItems:  "items",
}

// mark records f as set when ok holds and as unset otherwise.
func (s *fieldSet) mark(f fieldSet, ok bool) {
	if ok {
		*s |= f
	} else {
		*s &^= f
	}
}

// check returns a BuildError for the first field of need missing from s.
func (s fieldSet) check(node string, need fieldSet) error {
	for f := fieldSet(1); f != 0 && f <= need; f <<= 1 {
		if need&f != 0 && s&f == 0 {
			return &BuildError{Node: node, Field: fieldNames[f]}
		}
	}
	return nil
}

// build runs b and attributes a failure to pos.
func build[T any](b Builder[T], pos Position) (T, error) {
	x, err := b.Build()
	if err != nil {
		var zero T
		return zero, incomplete(err, pos)
	}
	return x, nil
}

// A HeadingBuilder builds a [Heading].
// The level defaults to 1; the text must be non-empty.
type HeadingBuilder struct {
	set   fieldSet
	level HeadingLevel
	text  Inlines
}

// Level sets the level, clamped to [1, 6].
func (b *HeadingBuilder) Level(n int) *HeadingBuilder {
	b.level = HeadingLevelOf(n)
	return b
}

func (b *HeadingBuilder) Text(x ...Inline) *HeadingBuilder {
	b.text = append(b.text, x...)
	b.set.mark(fText, len(b.text) > 0)
	return b
}

func (b *HeadingBuilder) Build() (*Heading, error) {
	if err := b.set.check("heading", fText); err != nil {
		return nil, err
	}
	return &Heading{Level: HeadingLevelOf(int(b.level)), Text: slices.Clip(b.text)}, nil
}

// A ParagraphBuilder builds a [Paragraph] with non-empty text.
type ParagraphBuilder struct {
	set  fieldSet
	text Inlines
}

func (b *ParagraphBuilder) Text(x ...Inline) *ParagraphBuilder {
	b.text = append(b.text, x...)
	b.set.mark(fText, len(b.text) > 0)
	return b
}

func (b *ParagraphBuilder) Build() (*Paragraph, error) {
	if err := b.set.check("paragraph", fText); err != nil {
		return nil, err
	}
	return &Paragraph{Text: slices.Clip(b.text)}, nil
}

// A CodeBuilder builds a [CodeBlock].
// The fence width and a non-empty text are mandatory.
// A tag is only recorded for fenced blocks (width 3 or more).
type CodeBuilder struct {
	set   fieldSet
	fence int
	text  string
	tag   string
}

func (b *CodeBuilder) Fence(n int) *CodeBuilder {
	b.fence = n
	b.set.mark(fFence, n > 0)
	return b
}

func (b *CodeBuilder) Text(s string) *CodeBuilder {
	b.text = s
	b.set.mark(fText, s != "")
	return b
}

func (b *CodeBuilder) Tag(s string) *CodeBuilder {
	b.tag = s
	return b
}

func (b *CodeBuilder) Build() (*CodeBlock, error) {
	if err := b.set.check("code", fFence|fText); err != nil {
		return nil, err
	}
	c := &CodeBlock{Text: b.text, Fence: b.fence}
	if c.Fenced() && b.tag != "" {
		c.Tag = b.tag
		c.Lang = LookupLanguage(b.tag)
	}
	return c, nil
}

// A QuoteBuilder builds a [Quote]. It has no mandatory fields.
type QuoteBuilder struct {
	blocks []Block
}

func (b *QuoteBuilder) Blocks(x ...Block) *QuoteBuilder {
	b.blocks = append(b.blocks, x...)
	return b
}

func (b *QuoteBuilder) Build() (*Quote, error) {
	return &Quote{Blocks: slices.Clip(b.blocks)}, nil
}

// A ListBuilder builds a [List] with at least one item.
// The bullet is '-' unless set; '.' makes an ordered list.
type ListBuilder struct {
	set    fieldSet
	bullet byte
	start  int
	items  []*Item
}

func (b *ListBuilder) Bullet(c byte) *ListBuilder {
	b.bullet = c
	return b
}

// Start makes the list ordered, numbered from n.
func (b *ListBuilder) Start(n int) *ListBuilder {
	b.bullet = '.'
	b.start = n
	return b
}

func (b *ListBuilder) Item(x ...Inline) *ListBuilder {
	b.items = append(b.items, &Item{Text: slices.Clone(x)})
	b.set.mark(fItems, true)
	return b
}

func (b *ListBuilder) Build() (*List, error) {
	if err := b.set.check("list", fItems); err != nil {
		return nil, err
	}
	l := &List{Bullet: b.bullet, Items: slices.Clip(b.items)}
	switch l.Bullet {
	case '.':
		l.Start = b.start
	case '*':
	default:
		l.Bullet = '-'
	}
	return l, nil
}

// A LinkBuilder builds a [Link] or image.
// The name and one of URL or Ref are mandatory.
type LinkBuilder struct {
	set    fieldSet
	name   string
	target LinkTarget
	image  bool
}

func (b *LinkBuilder) Name(s string) *LinkBuilder {
	b.name = s
	b.set.mark(fName, s != "")
	return b
}

// URL sets a direct target, replacing any reference.
func (b *LinkBuilder) URL(s string) *LinkBuilder {
	b.target = LinkTarget{URL: s}
	b.set.mark(fTarget, s != "")
	return b
}

// Ref sets a reference target, replacing any URL.
func (b *LinkBuilder) Ref(s string) *LinkBuilder {
	b.target = LinkTarget{Ref: s}
	b.set.mark(fTarget, s != "")
	return b
}

func (b *LinkBuilder) Image(img bool) *LinkBuilder {
	b.image = img
	return b
}

func (b *LinkBuilder) Build() (*Link, error) {
	if err := b.set.check("link", fName|fTarget); err != nil {
		return nil, err
	}
	return &Link{Name: b.name, Target: b.target, Image: b.image}, nil
}

// A ReferenceBuilder builds a [Reference].
// The name and URL are mandatory; the title is optional.
type ReferenceBuilder struct {
	set   fieldSet
	name  string
	url   string
	title string
}

func (b *ReferenceBuilder) Name(s string) *ReferenceBuilder {
	b.name = s
	b.set.mark(fName, trimSpaceTab(s) != "")
	return b
}

func (b *ReferenceBuilder) URL(s string) *ReferenceBuilder {
	b.url = s
	b.set.mark(fTarget, s != "")
	return b
}

func (b *ReferenceBuilder) Title(s string) *ReferenceBuilder {
	b.title = s
	return b
}

func (b *ReferenceBuilder) Build() (*Reference, error) {
	if err := b.set.check("reference", fName|fTarget); err != nil {
		return nil, err
	}
	return &Reference{Name: b.name, URL: b.url, Title: b.title}, nil
}

// An EmphasisBuilder builds an [Emphasis].
// The kind and a non-empty text are mandatory.
type EmphasisBuilder struct {
	set  fieldSet
	kind EmphasisKind
	text string
}

func (b *EmphasisBuilder) Kind(k EmphasisKind) *EmphasisBuilder {
	b.kind = k
	b.set.mark(fKind, Italic <= k && k <= BoldItalic)
	return b
}

func (b *EmphasisBuilder) Text(s string) *EmphasisBuilder {
	b.text = s
	b.set.mark(fText, s != "")
	return b
}

func (b *EmphasisBuilder) Build() (*Emphasis, error) {
	if err := b.set.check("emphasis", fKind|fText); err != nil {
		return nil, err
	}
	return &Emphasis{Kind: b.kind, Text: b.text}, nil
}
