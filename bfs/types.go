// Package bfs defines options, errors, and the result type for
// breadth-first frontier traversal.
package bfs

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("bfs: graph view is nil")

	// ErrNoSources is returned when the source set is empty.
	ErrNoSources = errors.New("bfs: no source nodes")

	// ErrInvalidNode is returned when a source id is out of range.
	ErrInvalidNode = errors.New("bfs: source node out of range")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a BFS invocation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dir selects the adjacency to follow; Forward by default.
	Dir core.Direction

	// Log receives per-frontier trace events; zerolog.Nop by default.
	Log zerolog.Logger
}

// DefaultOptions returns Options with a Background context, Forward
// direction, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
		Dir: core.Forward,
		Log: zerolog.Nop(),
	}
}

// WithReversed makes the traversal follow in-edges (head→tail).
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

// WithLogger installs a logger for per-frontier trace events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// Result holds the outcome of a BFS layering traversal.
type Result struct {
	// Frontiers lists the node frontiers in discovery order.
	// The last frontier is always empty and marks termination.
	Frontiers [][]int64

	buf *frontier.Buffer
}

// Flat returns the node ids of all frontiers as one flat sequence
// (the wire shape; see frontier.Split for the decoder).
func (r *Result) Flat() []int64 { return r.buf.Flat() }

// Sections returns the frontier lengths partitioning Flat.
func (r *Result) Sections() []int64 { return r.buf.Sections() }
