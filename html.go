// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// html writes raw HTML.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes HTML-escaped text.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}
