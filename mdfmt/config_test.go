// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    config
		wantErr string
	}{
		{name: "empty", data: ""},
		{
			name: "all fields",
			data: "write: true\nlist: true\ncolor: never\nlog-level: debug\n",
			want: config{Write: true, List: true, Color: "never", LogLevel: "debug"},
		},
		{name: "unknown field", data: "wirte: true\n", wantErr: "wirte"},
		{name: "bad color", data: "color: sometimes\n", wantErr: `invalid color mode "sometimes"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			err := parseConfig([]byte(tt.data), &cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config{}, cfg)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
