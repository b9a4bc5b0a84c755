// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

// isPunct reports whether c is ASCII punctuation,
// which is exactly the set of characters a backslash can escape.
func isPunct(c rune) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isSpace reports whether c is a space, tab, or newline.
func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// Escapers for the contexts the serializer writes text into.
// Each one escapes the backslash itself and the characters that would
// otherwise end or change the construct being printed.
var (
	// plainEscaper escapes plain text, where * starts emphasis
	// and [ ] delimit links.
	plainEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `[`, `\[`, `]`, `\]`)

	// emphEscaper escapes emphasized text, where only * is special.
	emphEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`)

	// labelEscaper escapes link names and reference labels.
	labelEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

	// urlEscaper escapes a direct link target written inside ( ).
	urlEscaper = strings.NewReplacer(`\`, `\\`, `)`, `\)`)

	// destEscaper escapes a reference destination written inside < >.
	destEscaper = strings.NewReplacer(`\`, `\\`, `>`, `\>`)

	// titleEscaper escapes a reference title written inside " ".
	titleEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// unescape returns s with backslash escapes of punctuation removed.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isPunct(rune(s[i+1])) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// continues reports whether s ends in a single backslash,
// which joins it with the following line.
func continues(s string) bool {
	return strings.HasSuffix(s, `\`) && !strings.HasSuffix(s, `\\`)
}
