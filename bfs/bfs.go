// Package bfs implements the multi-source breadth-first layering engine.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// walker encapsulates mutable BFS state for one invocation.
type walker struct {
	graph   core.View
	opts    Options
	visited []bool
	buf     *frontier.Buffer
	cur     []int64 // frontier being expanded
	next    []int64 // frontier being discovered
}

// Frontiers runs multi-source BFS on g from sources, applying any number of
// functional Options. Sources form frontier 0 in input order with
// duplicates collapsed (first occurrence wins); the result ends with an
// empty frontier marking termination.
// Returns ErrGraphNil, ErrNoSources, or ErrInvalidNode for invalid input,
// or the context error on cancellation.
func Frontiers(g core.View, sources []int64, opts ...Option) (*Result, error) {
	// 1. Validate the view
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Validate sources eagerly: no partial output on error
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	n := g.NodeCount()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d (nodes: %d)", ErrInvalidNode, s, n)
		}
	}

	// 4. Prepare walker and seed frontier 0
	w := &walker{
		graph:   g,
		opts:    o,
		visited: make([]bool, n),
		buf:     frontier.NewBuffer(n),
		cur:     make([]int64, 0, len(sources)),
	}
	for _, s := range sources {
		if !w.visited[s] {
			w.discover(s, &w.cur)
		}
	}
	w.buf.Seal()

	// 5. Expand frontiers until one comes out empty
	if err := w.loop(); err != nil {
		return nil, err
	}

	return &Result{Frontiers: w.buf.Frontiers(), buf: w.buf}, nil
}

// discover marks id visited and records it in the open frontier.
func (w *walker) discover(id int64, into *[]int64) {
	w.visited[id] = true
	w.buf.Append(id)
	*into = append(*into, id)
}

// loop expands the current frontier until an empty one terminates the
// traversal. The terminating empty frontier is sealed into the output.
func (w *walker) loop() error {
	level := 0
	for len(w.cur) > 0 {
		// cancellation check (once per frontier)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		w.opts.Log.Trace().Int("frontier", level).Int("size", len(w.cur)).Msg("bfs: frontier sealed")

		w.next = w.next[:0]
		if err := w.expand(); err != nil {
			return err
		}
		w.buf.Seal()
		w.cur, w.next = w.next, w.cur
		level++
	}

	return nil
}

// expand discovers the unvisited neighbors of every node in the current
// frontier, in frontier order then neighbor-enumeration order.
func (w *walker) expand() error {
	for _, u := range w.cur {
		nbs, err := w.graph.Neighbors(u, w.opts.Dir)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %d: %w", u, err)
		}
		for _, nb := range nbs {
			if !w.visited[nb.Node] {
				w.discover(nb.Node, &w.next)
			}
		}
	}

	return nil
}
