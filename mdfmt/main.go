// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mdfmt reformats Markdown data.
//
// Usage:
//
//	mdfmt [-w] [-l] [--config file] [file...]
//
// Mdfmt reads the named files, or else standard input, as Markdown documents
// and then reprints the same Markdown documents to standard output
// in canonical form.
//
// The -w flag specifies to rewrite the files in place.
// The -l flag lists the files whose formatting differs from canonical
// instead of printing them.
//
// Settings can also be read from a YAML file named by --config:
//
//	write: true
//	list: false
//	color: auto
//	log-level: debug
//
// Flags given on the command line override the file.
package main

import (
	"errors"
	"os"

	"github.com/lightmark/markdown/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			logging.New(os.Stderr, "mdfmt", "error").Error("failed", logging.FieldError, err)
		}
		return 1
	}
	return 0
}
