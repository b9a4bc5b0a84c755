// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML.
//
// Usage:
//
//	md2html [file...]
//
// Md2html reads the named files, or else standard input, as Markdown documents
// and then prints the corresponding HTML to standard output.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lightmark/markdown"
	"github.com/lightmark/markdown/internal/logging"
	"github.com/lightmark/markdown/internal/pretty"
)

var errFailed = errors.New("conversion failed")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			logging.New(os.Stderr, "md2html", "error").Error("failed", logging.FieldError, err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool
	var color string
	cmd := &cobra.Command{
		Use:           "md2html [file...]",
		Short:         "Convert Markdown documents to HTML",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if debug {
				level = "debug"
			}
			c := &converter{
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
				styles: pretty.NewStyles(pretty.IsColorEnabled(color, cmd.ErrOrStderr())),
				log:    logging.New(cmd.ErrOrStderr(), "md2html", level),
			}
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				c.convert("", data)
			}
			for _, arg := range args {
				c.file(arg)
			}
			if c.failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&color, "color", "auto", "colorize diagnostics: auto, always, never")
	return cmd
}

// A converter converts files, reporting errors as it goes.
type converter struct {
	out    io.Writer
	errOut io.Writer
	styles *pretty.Styles
	log    *log.Logger
	failed bool
}

func (c *converter) file(name string) {
	data, err := os.ReadFile(name)
	if err != nil {
		c.fail(name, err)
		return
	}
	c.convert(name, data)
}

func (c *converter) fail(name string, err error) {
	fmt.Fprintln(c.errOut, c.styles.Diagnostic(name, err))
	c.failed = true
}

// convert prints the HTML for data read from name ("" for standard input).
func (c *converter) convert(name string, data []byte) {
	p := markdown.Parser{Name: name, Logger: c.log}
	doc, err := p.Parse(string(data))
	if err != nil {
		c.fail(name, err)
		return
	}
	io.WriteString(c.out, markdown.ToHTML(doc))
}
