// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// assemble builds the reference table from the definitions
// collected during segmentation, resolves every reference link in blocks
// against it, and returns the finished document.
// Resolution runs after all blocks are segmented,
// so a definition may appear before or after its uses.
func (p *parser) assemble(blocks []Block) (*Document, error) {
	links := make(map[string]*Reference)
	for _, r := range p.refs {
		key := normalizeLabel(r.Name)
		if _, ok := links[key]; ok {
			p.debug("duplicate reference ignored", "name", r.Name)
			continue
		}
		links[key] = r
	}

	err := walkBlocks(blocks, func(b Block) error {
		switch b := b.(type) {
		case *Heading:
			return resolve(b.Text, links)
		case *Paragraph:
			return resolve(b.Text, links)
		case *List:
			for _, it := range b.Items {
				if err := resolve(it.Text, links); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Document{Name: p.Name, Blocks: blocks, Links: links}, nil
}

// resolve replaces each reference link in x with
// the equivalent direct link.
func resolve(x Inlines, links map[string]*Reference) error {
	for i, inl := range x {
		l, ok := inl.(*Link)
		if !ok || l.Target.Ref == "" {
			continue
		}
		r := links[normalizeLabel(l.Target.Ref)]
		if r == nil {
			return &ParseError{Kind: UnresolvedReference, Name: l.Target.Ref}
		}
		nl, err := new(LinkBuilder).Name(l.Name).URL(r.URL).Image(l.Image).Build()
		if err != nil {
			return incomplete(err, Position{})
		}
		x[i] = nl
	}
	return nil
}

// walkBlocks calls f for each block in bs and in the quotes within them,
// in document order, stopping at the first error.
// It keeps its own stack so that deep nesting cannot overflow.
func walkBlocks(bs []Block, f func(Block) error) error {
	type frame struct {
		bs []Block
		i  int
	}
	stack := []frame{{bs: bs}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i >= len(top.bs) {
			stack = stack[:len(stack)-1]
			continue
		}
		b := top.bs[top.i]
		top.i++
		if err := f(b); err != nil {
			return err
		}
		if q, ok := b.(*Quote); ok {
			stack = append(stack, frame{bs: q.Blocks})
		}
	}
	return nil
}
