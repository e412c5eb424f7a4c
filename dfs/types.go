// Package dfs defines edge labels, options, errors, and the result type
// for depth-first edge traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil view is passed.
	ErrGraphNil = errors.New("dfs: graph view is nil")

	// ErrInvalidNode is returned when a source id is out of range.
	ErrInvalidNode = errors.New("dfs: source node out of range")
)

// Label classifies an edge encountered during depth-first traversal.
type Label int64

const (
	// Forward marks a tree edge: its target was undiscovered.
	Forward Label = iota

	// Reverse marks a back edge: its target is an ancestor still on the
	// active path.
	Reverse

	// NonTree marks a cross or forward-skip edge: its target was already
	// fully explored.
	NonTree
)

// String returns "forward", "reverse", or "nontree".
func (l Label) String() string {
	switch l {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case NonTree:
		return "nontree"
	default:
		return "unknown"
	}
}

// Tri-color visitation state of a node during one traversal invocation.
const (
	white uint8 = iota // not yet visited
	gray               // on the active path
	black              // fully explored
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a DFS invocation.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dir selects the adjacency to follow; Forward by default.
	Dir core.Direction

	// ReverseEdges includes back edges (Label Reverse) in the output.
	ReverseEdges bool

	// NontreeEdges includes cross edges (Label NonTree) in the output.
	NontreeEdges bool

	// ReturnLabels controls whether the parallel label sequence is built.
	ReturnLabels bool

	// Log receives per-branch trace events; zerolog.Nop by default.
	Log zerolog.Logger
}

// DefaultOptions returns Options with a Background context, Forward
// direction, tree edges only, labels returned, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Dir:          core.Forward,
		ReturnLabels: true,
		Log:          zerolog.Nop(),
	}
}

// WithReversed makes the traversal follow in-edges (head→tail).
func WithReversed() Option {
	return func(o *Options) {
		o.Dir = core.Reversed
	}
}

// WithReverseEdges includes back edges in the output.
func WithReverseEdges() Option {
	return func(o *Options) {
		o.ReverseEdges = true
	}
}

// WithNontreeEdges includes cross and forward-skip edges in the output.
func WithNontreeEdges() Option {
	return func(o *Options) {
		o.NontreeEdges = true
	}
}

// WithoutLabels suppresses the parallel label sequence; only edge ids are
// collected.
func WithoutLabels() Option {
	return func(o *Options) {
		o.ReturnLabels = false
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

// WithLogger installs a logger for per-branch trace events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// Result holds the outcome of a depth-first edge traversal.
type Result struct {
	// Edges lists the edge frontiers in traversal order.
	Edges [][]int64

	// Labels carries the classification of each edge in Edges, with the
	// identical section structure. Nil when labels were suppressed.
	Labels [][]Label

	edgeBuf  *frontier.Buffer
	labelBuf *frontier.Buffer
}

// Flat returns the edge ids of all frontiers as one flat sequence
// (the wire shape; see frontier.Split for the decoder).
func (r *Result) Flat() []int64 { return r.edgeBuf.Flat() }

// FlatLabels returns the labels of all frontiers as one flat sequence of
// raw label values, or nil when labels were suppressed.
func (r *Result) FlatLabels() []int64 {
	if r.labelBuf == nil {
		return nil
	}

	return r.labelBuf.Flat()
}

// Sections returns the frontier lengths partitioning Flat (and FlatLabels).
func (r *Result) Sections() []int64 { return r.edgeBuf.Sections() }
