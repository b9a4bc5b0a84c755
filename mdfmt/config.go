// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// A config holds the settings read from a configuration file.
type config struct {
	Write    bool   `yaml:"write"`
	List     bool   `yaml:"list"`
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log-level"`
}

// loadConfig reads the configuration file at path.
// An empty path yields the zero config.
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := parseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// parseConfig decodes data into cfg, rejecting unknown keys.
func parseConfig(data []byte, cfg *config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config: %w", err)
	}
	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q", cfg.Color)
	}
	return nil
}
