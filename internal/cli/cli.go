// SPDX-License-Identifier: Unlicense OR MIT

// Package cli implements the prelayout command-line interface.
//
// The measure command loads a layout-tree description from a TOML
// file, computes it at one or more budget widths on a background
// worker pool, and prints the resulting frame trees. Verbose logging
// goes through charmbracelet/log.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/pipeline"
)

// CLI bundles the command tree with its output and logging sinks.
type CLI struct {
	out    io.Writer
	logger *log.Logger
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		out: out,
		logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel adjusts the log level after flag parsing.
func (c *CLI) SetLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

// RootCommand builds the prelayout command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "prelayout",
		Short:         "Compute declarative layout trees off the rendering thread",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(c.measureCommand())
	return root
}

func (c *CLI) measureCommand() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "measure <config.toml>",
		Short: "Measure and arrange a layout tree, printing its frames",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.measure(cmd.Context(), args[0], workers)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "layout worker pool size (0 = all CPUs)")
	return cmd
}

func (c *CLI) measure(ctx context.Context, path string, workers int) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	root, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build layout tree: %w", err)
	}

	reqs := make([]pipeline.Request, len(cfg.Widths))
	for i, w := range cfg.Widths {
		reqs[i] = pipeline.Request{
			Layout: root,
			Within: f32.Rect(0, 0, w, cfg.Height),
		}
	}
	runner := &pipeline.Runner{Workers: workers, Logger: c.logger}
	arrs, err := runner.Run(ctx, reqs)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	for i, a := range arrs {
		fmt.Fprintf(c.out, "# width %g\n%s", cfg.Widths[i], RenderTree(a, cfg.Metric()))
	}
	return nil
}
