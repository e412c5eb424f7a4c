// Package topo implements Kahn-style topological leveling.
package topo

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// leveler encapsulates mutable state for one leveling invocation.
type leveler struct {
	graph core.View
	opts  Options
	deg   []int64 // remaining dependency degree per node
	buf   *frontier.Buffer
}

// Frontiers computes the dependency levels of every node in g.
// Level k holds the nodes whose dependencies are all in levels < k, sorted
// ascending by id. Returns ErrGraphNil for a nil view, ErrCycleDetected if
// the graph is not a DAG, or the context error on cancellation.
func Frontiers(g core.View, opts ...Option) (*Result, error) {
	// 1. Validate the view
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Count dependency degrees. An edge u→v (under Dir) makes v depend
	// on u, so walking every adjacency row increments the row's targets.
	n := g.NodeCount()
	l := &leveler{
		graph: g,
		opts:  o,
		deg:   make([]int64, n),
		buf:   frontier.NewBuffer(n),
	}
	var u int64
	for u = 0; u < n; u++ {
		nbs, err := g.Neighbors(u, o.Dir)
		if err != nil {
			return nil, fmt.Errorf("topo: neighbors of %d: %w", u, err)
		}
		for _, nb := range nbs {
			l.deg[nb.Node]++
		}
	}

	// 4. Level 0: all independent nodes, ascending by construction.
	cur := make([]int64, 0, n)
	for u = 0; u < n; u++ {
		if l.deg[u] == 0 {
			cur = append(cur, u)
		}
	}

	// 5. Peel levels until no node remains.
	processed, err := l.peel(cur)
	if err != nil {
		return nil, err
	}
	if processed < n {
		return nil, fmt.Errorf("%w: %d nodes unresolved", ErrCycleDetected, n-processed)
	}

	return &Result{Frontiers: l.buf.Frontiers(), buf: l.buf}, nil
}

// peel seals cur as a level, removes its dependency edges, and repeats with
// the nodes whose degree newly reached zero. Returns the number of nodes
// leveled.
func (l *leveler) peel(cur []int64) (int64, error) {
	var processed int64
	level := 0
	for len(cur) > 0 {
		// cancellation check (once per level)
		select {
		case <-l.opts.Ctx.Done():
			return processed, l.opts.Ctx.Err()
		default:
		}
		l.opts.Log.Trace().Int("level", level).Int("size", len(cur)).Msg("topo: level sealed")

		for _, u := range cur {
			l.buf.Append(u)
		}
		l.buf.Seal()
		processed += int64(len(cur))

		var next []int64
		for _, u := range cur {
			nbs, err := l.graph.Neighbors(u, l.opts.Dir)
			if err != nil {
				return processed, fmt.Errorf("topo: neighbors of %d: %w", u, err)
			}
			for _, nb := range nbs {
				l.deg[nb.Node]--
				if l.deg[nb.Node] == 0 {
					next = append(next, nb.Node)
				}
			}
		}
		// deterministic tie-break inside a level
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		cur = next
		level++
	}

	return processed, nil
}
