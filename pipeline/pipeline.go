// SPDX-License-Identifier: Unlicense OR MIT

// Package pipeline batch-computes layout off the rendering thread.
//
// A Runner fans a set of root layouts out over a bounded worker
// pool, measuring and arranging each one, and returns the
// arrangements in input order. Measure and Arrange are pure, so the
// only coordination needed is the pool itself; the caller hands the
// finished arrangements to the rendering thread for view binding.
package pipeline

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
)

// Request is one root layout and the rect to compute it in.
type Request struct {
	Layout layout.Layout
	Within f32.Rectangle
}

// Runner executes layout batches. It is stateless apart from its
// configuration; multiple goroutines may share one Runner.
type Runner struct {
	// Workers bounds the pool. Zero or negative uses GOMAXPROCS.
	Workers int

	// Logger receives per-batch timing at debug level. Nil uses the
	// package default logger.
	Logger *log.Logger
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// Run computes every request and returns the arrangements in input
// order. It stops early and returns the context error if ctx is
// canceled.
func (r *Runner) Run(ctx context.Context, reqs []Request) ([]*layout.Arrangement, error) {
	start := time.Now()
	results := make([]*layout.Arrangement, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = layout.Compute(req.Layout, req.Within)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger().Debug("laid out batch",
		"count", len(reqs),
		"workers", r.workers(),
		"duration", time.Since(start))
	return results, nil
}
