// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightmark/markdown"
	"github.com/lightmark/markdown/internal/pretty"
)

func TestNewStylesNoColor(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)
	assert.Equal(t, "x", styles.Kind.Render("x"))
	assert.Equal(t, "x", styles.FilePath.Render("x"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
	assert.False(t, pretty.IsColorEnabled("auto", &buf))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestDiagnostic(t *testing.T) {
	styles := pretty.NewStyles(false)

	_, err := markdown.Parse("```abc")
	require.Error(t, err)
	assert.Equal(t, "doc.md:1:7: unexpected end of input",
		styles.Diagnostic("doc.md", err))

	_, err = markdown.Parse("[text][missing]")
	require.Error(t, err)
	assert.Equal(t, `<stdin>: unresolved reference "missing"`,
		styles.Diagnostic("", err))

	assert.Equal(t, "a.md: boom", styles.Diagnostic("a.md", errors.New("boom")))
}
