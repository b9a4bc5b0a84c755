// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// Test runs the golden cases in testdata/*.txt.
// Each case is a file name.md holding the input, followed by
// name.out (the canonical Markdown), name.html (the HTML),
// or name.err (the error), in any combination.
func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			var ncase, npass int
			for i := 0; i < len(a.Files); {
				md := a.Files[i]
				name, ok := strings.CutSuffix(md.Name, ".md")
				if !ok {
					t.Fatalf("unexpected file %s", md.Name)
				}
				i++
				var want []txtar.File
				for i < len(a.Files) && !strings.HasSuffix(a.Files[i].Name, ".md") {
					if !strings.HasPrefix(a.Files[i].Name, name+".") {
						t.Fatalf("file %s does not belong to %s", a.Files[i].Name, md.Name)
					}
					want = append(want, a.Files[i])
					i++
				}
				if len(want) == 0 {
					t.Fatalf("no expected output for %s", md.Name)
				}
				ncase++
				t.Run(name, func(t *testing.T) {
					checkCase(t, decode(string(md.Data)), want)
					npass++
				})
			}
			t.Logf("%d/%d pass", npass, ncase)
		})
	}
}

func checkCase(t *testing.T, in string, want []txtar.File) {
	doc, err := Parse(in)
	for _, f := range want {
		w := string(f.Data)
		switch filepath.Ext(f.Name) {
		case ".err":
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error %q", in, w)
			}
			if have := err.Error() + "\n"; have != w {
				t.Fatalf("Parse(%q):\nhave error %q\nwant error %q", in, have, w)
			}
			continue
		case ".out", ".html":
		default:
			t.Fatalf("unknown file kind %s", f.Name)
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		var have string
		if filepath.Ext(f.Name) == ".out" {
			have = encode(ToMarkdown(doc))
			checkRoundTrip(t, doc)
		} else {
			have = encode(ToHTML(doc))
		}
		if have != w {
			t.Fatalf("input %q\nparse:\n%s\nhave %q\nwant %q", in, dump(doc), have, w)
		}
	}
}

// checkRoundTrip checks that printing doc and parsing the result
// gives back an equal document.
func checkRoundTrip(t *testing.T, doc *Document) {
	t.Helper()
	out := ToMarkdown(doc)
	p := Parser{Name: doc.Name}
	doc2, err := p.Parse(out)
	if err != nil {
		t.Fatalf("reparse %q: %v", out, err)
	}
	if !reflect.DeepEqual(doc, doc2) {
		t.Fatalf("round trip of %q changed document:\nbefore:\n%s\nafter:\n%s", out, dump(doc), dump(doc2))
	}
}

func decode(s string) string {
	s = strings.ReplaceAll(s, "^J\n", "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^D\n", "")
	return s
}

func encode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "^M\n")
	s = strings.ReplaceAll(s, " \n", " ^J\n")
	s = strings.ReplaceAll(s, "\t\n", "\t^J\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "^D\n"
	}
	return s
}

// dump returns a readable description of doc's tree.
func dump(doc *Document) string {
	var b strings.Builder
	var blocks func([]Block, string)
	inlines := func(x Inlines, indent string) {
		for _, inl := range x {
			fmt.Fprintf(&b, "%s%T %+v\n", indent, inl, inl)
		}
	}
	blocks = func(bs []Block, indent string) {
		for _, bl := range bs {
			switch bl := bl.(type) {
			case *Heading:
				fmt.Fprintf(&b, "%sHeading %d\n", indent, bl.Level)
				inlines(bl.Text, indent+"\t")
			case *Paragraph:
				fmt.Fprintf(&b, "%sParagraph\n", indent)
				inlines(bl.Text, indent+"\t")
			case *List:
				fmt.Fprintf(&b, "%sList %q %d\n", indent, bl.Bullet, bl.Start)
				for _, it := range bl.Items {
					fmt.Fprintf(&b, "%s\tItem\n", indent)
					inlines(it.Text, indent+"\t\t")
				}
			case *Quote:
				fmt.Fprintf(&b, "%sQuote\n", indent)
				blocks(bl.Blocks, indent+"\t")
			default:
				fmt.Fprintf(&b, "%s%T %+v\n", indent, bl, bl)
			}
		}
	}
	blocks(doc.Blocks, "")
	for k, r := range doc.Links {
		fmt.Fprintf(&b, "ref %q %+v\n", k, *r)
	}
	return b.String()
}
