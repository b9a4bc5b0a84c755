// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingLevel(t *testing.T) {
	for n, want := range map[int]HeadingLevel{-3: 1, 0: 1, 1: 1, 3: 3, 6: 6, 7: 6, 1000: 6} {
		assert.Equal(t, want, HeadingLevelOf(n), "HeadingLevelOf(%d)", n)
	}

	assert.Equal(t, HeadingLevel(2), HeadingLevel(1).Increment())
	assert.Equal(t, HeadingLevel(6), HeadingLevel(5).Increment())
	assert.Equal(t, HeadingLevel(6), HeadingLevel(6).Increment(), "saturates at 6")
	assert.Equal(t, HeadingLevel(5), HeadingLevel(6).Decrement())
	assert.Equal(t, HeadingLevel(1), HeadingLevel(1).Decrement(), "saturates at 1")
}

func TestEmphasisNext(t *testing.T) {
	assert.Equal(t, Bold, Italic.Next())
	assert.Equal(t, BoldItalic, Bold.Next())
	assert.Equal(t, Bold, BoldItalic.Next(), "wraps to Bold")
}

func TestEmphasisOf(t *testing.T) {
	tests := []struct {
		n    int
		want EmphasisKind
	}{
		{1, Italic},
		{2, Bold},
		{3, BoldItalic},
		{4, Bold},
		{5, BoldItalic},
		{6, Bold},
		{100000, Bold},
		{100001, BoldItalic},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, emphasisOf(tt.n), "emphasisOf(%d)", tt.n)
	}
}

// TestLadderWalk checks the shortcut in walk against stepping one at a time.
func TestLadderWalk(t *testing.T) {
	ladders := map[string]ladder{
		"heading":  headingLadder,
		"emphasis": emphasisLadder,
		"wide":     {lo: 0, hi: 9, wrap: 4},
	}
	for name, l := range ladders {
		t.Run(name, func(t *testing.T) {
			for v := l.lo - 1; v <= l.hi; v++ {
				slow := v
				for n := 0; n < 40; n++ {
					assert.Equal(t, slow, l.walk(v, n), fmt.Sprintf("walk(%d, %d)", v, n))
					slow = l.up(slow)
				}
			}
		})
	}
}

func TestEmphasisKindString(t *testing.T) {
	assert.Equal(t, "Italic", Italic.String())
	assert.Equal(t, "BoldItalic", BoldItalic.String())
	assert.Equal(t, "None", EmphasisKind(0).String())
	assert.Equal(t, "***", BoldItalic.delim())
}
