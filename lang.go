// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Language identifies the language of a fenced code block.
type Language int

const (
	LangNone Language = iota // no tag
	LangC
	LangCPP
	LangCSharp
	LangGo
	LangHaskell
	LangJava
	LangJavaScript
	LangLua
	LangPython
	LangRuby
	LangRust
	LangUnknown // a tag outside the known set; see CodeBlock.Tag
)

var langTags = [...]string{
	LangC:          "c",
	LangCPP:        "cpp",
	LangCSharp:     "csharp",
	LangGo:         "go",
	LangHaskell:    "haskell",
	LangJava:       "java",
	LangJavaScript: "javascript",
	LangLua:        "lua",
	LangPython:     "python",
	LangRuby:       "ruby",
	LangRust:       "rust",
}

// LookupLanguage returns the language named by tag.
// Matching is exact and case-sensitive.
func LookupLanguage(tag string) Language {
	if tag == "" {
		return LangNone
	}
	for l, t := range langTags {
		if t == tag && t != "" {
			return Language(l)
		}
	}
	return LangUnknown
}

func (l Language) String() string {
	switch {
	case l == LangNone:
		return "none"
	case l == LangUnknown:
		return "unknown"
	case 0 < l && int(l) < len(langTags):
		return langTags[l]
	}
	return "invalid"
}
