// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/renameio"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lightmark/markdown"
	"github.com/lightmark/markdown/internal/logging"
	"github.com/lightmark/markdown/internal/pretty"
)

// errFailed reports that some input could not be formatted.
// The details have already been printed.
var errFailed = errors.New("formatting failed")

type options struct {
	config string
	write  bool
	list   bool
	color  string
	debug  bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "mdfmt [flags] [file...]",
		Short: "Reformat Markdown documents",
		Long: `mdfmt reads the named files, or else standard input, as Markdown documents
and prints them back in canonical form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("write") {
				opts.write = cfg.Write
			}
			if !flags.Changed("list") {
				opts.list = cfg.List
			}
			if !flags.Changed("color") && cfg.Color != "" {
				opts.color = cfg.Color
			}

			level := cfg.LogLevel
			if opts.debug {
				level = "debug"
			}
			logger := logging.New(cmd.ErrOrStderr(), "mdfmt", level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			logger.Debug("configured", logging.FieldConfig, opts.config, logging.FieldFiles, len(args))

			f := &formatter{
				opts:   opts,
				out:    cmd.OutOrStdout(),
				errOut: cmd.ErrOrStderr(),
				styles: pretty.NewStyles(pretty.IsColorEnabled(opts.color, cmd.ErrOrStderr())),
				log:    logging.FromContext(cmd.Context()),
			}
			if len(args) == 0 {
				in := cmd.InOrStdin()
				if isTerminal(in) {
					return cmd.Usage()
				}
				data, err := io.ReadAll(in)
				if err != nil {
					return err
				}
				f.convert("", data)
			}
			for _, file := range args {
				f.file(file)
			}
			if f.failed {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "path to YAML config file")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "write result to source file instead of standard output")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "list files whose formatting differs")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colorize diagnostics: auto, always, never")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	return cmd
}

// isTerminal reports whether r is an interactive terminal,
// in which case reading it would wait for typed input.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// A formatter formats files, reporting errors as it goes.
type formatter struct {
	opts   options
	out    io.Writer
	errOut io.Writer
	styles *pretty.Styles
	log    *log.Logger
	failed bool
}

func (f *formatter) file(name string) {
	data, err := os.ReadFile(name)
	if err != nil {
		f.fail(name, err)
		return
	}
	f.convert(name, data)
}

func (f *formatter) fail(name string, err error) {
	fmt.Fprintln(f.errOut, f.styles.Diagnostic(name, err))
	f.failed = true
}

// convert formats data read from name ("" for standard input)
// and writes, lists, or prints the result.
func (f *formatter) convert(name string, data []byte) {
	p := markdown.Parser{Name: name, Logger: f.log}
	doc, err := p.Parse(string(data))
	if err != nil {
		f.fail(name, err)
		return
	}
	out := markdown.ToMarkdown(doc)
	changed := out != string(data)
	f.log.Debug("formatted", logging.FieldPath, name,
		logging.FieldBlocks, len(doc.Blocks),
		logging.FieldReferences, len(doc.Links),
		logging.FieldChanged, changed)

	if f.opts.list {
		if changed {
			if name == "" {
				name = "<standard input>"
			}
			fmt.Fprintln(f.out, name)
		}
		return
	}
	if f.opts.write && name != "" {
		if !changed {
			return
		}
		perm := os.FileMode(0o666)
		if fi, err := os.Stat(name); err == nil {
			perm = fi.Mode().Perm()
		}
		if err := renameio.WriteFile(name, []byte(out), perm); err != nil {
			f.fail(name, err)
		}
		return
	}
	io.WriteString(f.out, out)
}
