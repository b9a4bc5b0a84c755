// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild[T any](t *testing.T, b Builder[T]) T {
	t.Helper()
	x, err := b.Build()
	require.NoError(t, err)
	return x
}

func missing[T any](t *testing.T, b Builder[T], node, field string) {
	t.Helper()
	_, err := b.Build()
	require.ErrorIs(t, err, ErrIncompleteBuilderData)
	assert.Equal(t, &BuildError{Node: node, Field: field}, err)
}

func TestHeadingBuilder(t *testing.T) {
	text := &Plain{Text: "Usage"}
	h := mustBuild[*Heading](t, new(HeadingBuilder).Text(text))
	assert.Equal(t, &Heading{Level: 1, Text: Inlines{text}}, h, "level defaults to 1")

	h = mustBuild[*Heading](t, new(HeadingBuilder).Level(9).Text(text))
	assert.Equal(t, HeadingLevel(6), h.Level)

	missing[*Heading](t, new(HeadingBuilder).Level(2), "heading", "text")
	missing[*Heading](t, new(HeadingBuilder).Text(), "heading", "text")
}

func TestParagraphBuilder(t *testing.T) {
	p := mustBuild[*Paragraph](t, new(ParagraphBuilder).Text(&Plain{Text: "a"}, &LineBreak{}).Text(&Plain{Text: "b"}))
	assert.Len(t, p.Text, 3)
	missing[*Paragraph](t, new(ParagraphBuilder), "paragraph", "text")
}

func TestCodeBuilder(t *testing.T) {
	c := mustBuild[*CodeBlock](t, new(CodeBuilder).Fence(3).Tag("go").Text("\nx\n"))
	assert.Equal(t, &CodeBlock{Text: "\nx\n", Fence: 3, Lang: LangGo, Tag: "go"}, c)
	assert.True(t, c.Fenced())

	c = mustBuild[*CodeBlock](t, new(CodeBuilder).Fence(3).Tag("Go").Text("x"))
	assert.Equal(t, LangUnknown, c.Lang)
	assert.Equal(t, "Go", c.Tag)

	c = mustBuild[*CodeBlock](t, new(CodeBuilder).Fence(2).Tag("go").Text("x"))
	assert.Equal(t, &CodeBlock{Text: "x", Fence: 2}, c, "spans carry no tag")
	assert.False(t, c.Fenced())

	missing[*CodeBlock](t, new(CodeBuilder).Fence(1), "code", "text")
	missing[*CodeBlock](t, new(CodeBuilder).Text("x"), "code", "fence")
	missing[*CodeBlock](t, new(CodeBuilder).Fence(0).Text("x"), "code", "fence")
}

func TestQuoteBuilder(t *testing.T) {
	q := mustBuild[*Quote](t, new(QuoteBuilder))
	assert.Empty(t, q.Blocks)

	para := mustBuild[*Paragraph](t, new(ParagraphBuilder).Text(&Plain{Text: "a"}))
	q = mustBuild[*Quote](t, new(QuoteBuilder).Blocks(para))
	assert.Equal(t, []Block{para}, q.Blocks)
}

func TestListBuilder(t *testing.T) {
	l := mustBuild[*List](t, new(ListBuilder).Item(&Plain{Text: "a"}))
	assert.Equal(t, byte('-'), l.Bullet, "default bullet")
	assert.False(t, l.Ordered())

	l = mustBuild[*List](t, new(ListBuilder).Bullet('+').Item())
	assert.Equal(t, byte('-'), l.Bullet, "unknown bullets become '-'")

	l = mustBuild[*List](t, new(ListBuilder).Bullet('*').Item())
	assert.Equal(t, byte('*'), l.Bullet)

	l = mustBuild[*List](t, new(ListBuilder).Start(3).Item().Item())
	assert.True(t, l.Ordered())
	assert.Equal(t, 3, l.Start)
	assert.Equal(t, 2, l.Len())

	// Items do not alias the caller's slice.
	text := []Inline{&Plain{Text: "a"}}
	l = mustBuild[*List](t, new(ListBuilder).Item(text...))
	text[0] = &Plain{Text: "changed"}
	assert.Equal(t, &Plain{Text: "a"}, l.Items[0].Text[0])

	missing[*List](t, new(ListBuilder).Start(1), "list", "items")
}

func TestLinkBuilder(t *testing.T) {
	l := mustBuild[*Link](t, new(LinkBuilder).Name("go").URL("https://go.dev"))
	assert.Equal(t, &Link{Name: "go", Target: LinkTarget{URL: "https://go.dev"}}, l)

	l = mustBuild[*Link](t, new(LinkBuilder).Name("go").URL("https://go.dev").Ref("Go").Image(true))
	assert.Equal(t, &Link{Name: "go", Target: LinkTarget{Ref: "Go"}, Image: true}, l, "Ref replaces URL")

	missing[*Link](t, new(LinkBuilder).URL("u"), "link", "name")
	missing[*Link](t, new(LinkBuilder).Name("n"), "link", "target")
	missing[*Link](t, new(LinkBuilder).Name("n").URL("u").Ref(""), "link", "target")
}

func TestReferenceBuilder(t *testing.T) {
	r := mustBuild[*Reference](t, new(ReferenceBuilder).Name("x").URL("/u").Title("t"))
	assert.Equal(t, &Reference{Name: "x", URL: "/u", Title: "t"}, r)

	missing[*Reference](t, new(ReferenceBuilder).Name(" \t").URL("/u"), "reference", "name")
	missing[*Reference](t, new(ReferenceBuilder).Name("x"), "reference", "target")
}

func TestEmphasisBuilder(t *testing.T) {
	e := mustBuild[*Emphasis](t, new(EmphasisBuilder).Kind(Bold).Text("b"))
	assert.Equal(t, &Emphasis{Kind: Bold, Text: "b"}, e)

	missing[*Emphasis](t, new(EmphasisBuilder).Text("b"), "emphasis", "kind")
	missing[*Emphasis](t, new(EmphasisBuilder).Kind(4).Text("b"), "emphasis", "kind")
	missing[*Emphasis](t, new(EmphasisBuilder).Kind(Italic).Text(""), "emphasis", "text")
}

func TestBuildPosition(t *testing.T) {
	_, err := build(new(EmphasisBuilder).Kind(Italic), Position{4, 2})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, IncompleteBuilderData, pe.Kind)
	assert.Equal(t, Position{4, 2}, pe.Pos)
	assert.Equal(t, "4:2: incomplete emphasis: missing text", err.Error())
}
