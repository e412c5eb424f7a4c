// Package topo defines options, errors, and the result type for
// topological leveling.
package topo

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// Sentinel errors for topological leveling.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("topo: graph view is nil")

	// ErrCycleDetected is returned when nodes remain unresolved because the
	// input contains a dependency cycle.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// Option configures topological leveling via functional arguments.
type Option func(*Options)

// Options holds parameters customizing one leveling invocation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dir selects the dependency orientation: under Forward a node depends
	// on the tails of its in-edges; under Reversed, on the heads of its
	// out-edges.
	Dir core.Direction

	// Log receives per-level trace events; zerolog.Nop by default.
	Log zerolog.Logger
}

// DefaultOptions returns Options with a Background context, Forward
// orientation, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
		Dir: core.Forward,
		Log: zerolog.Nop(),
	}
}

// WithReversed levels the graph as if every edge were flipped.
func WithReversed() Option {
	return func(o *Options) {
		o.Dir = core.Reversed
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a logger for per-level trace events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// Result holds the outcome of a topological leveling traversal.
type Result struct {
	// Frontiers lists the dependency levels in order; together they
	// partition the entire node set.
	Frontiers [][]int64

	buf *frontier.Buffer
}

// Flat returns the node ids of all levels as one flat sequence
// (the wire shape; see frontier.Split for the decoder).
func (r *Result) Flat() []int64 { return r.buf.Flat() }

// Sections returns the level lengths partitioning Flat.
func (r *Result) Sections() []int64 { return r.buf.Sections() }
