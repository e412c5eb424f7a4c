// Package dfs implements the iterative depth-first edge-labeling engine.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// branch is the labeled edge sequence produced by one source.
type branch struct {
	edges  []int64
	labels []Label
}

// frame is one level of the explicit DFS stack: a node and a cursor into
// its adjacency row.
type frame struct {
	node int64
	nbs  []core.Neighbor
	next int
}

// dfsWalker encapsulates state shared by all branches of one invocation.
type dfsWalker struct {
	graph core.View
	opts  Options
	state []uint8 // tri-color, persists across sources
	stack []frame
}

// EdgeFrontiers runs depth-first traversal from sources and returns the
// tree-edge frontiers only, with no label sequence. It accepts the same
// direction, context and logger Options as LabeledEdgeFrontiers; back and
// nontree edges are never emitted.
func EdgeFrontiers(g core.View, sources []int64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.ReverseEdges = false
	o.NontreeEdges = false
	o.ReturnLabels = false

	return run(g, sources, o)
}

// LabeledEdgeFrontiers runs depth-first traversal from sources and returns
// classified edge frontiers. Tree edges are always present; back and
// nontree edges join the output via WithReverseEdges and WithNontreeEdges,
// and the parallel label sequence can be dropped with WithoutLabels.
// Returns ErrGraphNil or ErrInvalidNode for invalid input, or the context
// error on cancellation.
func LabeledEdgeFrontiers(g core.View, sources []int64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return run(g, sources, o)
}

// run validates input, explores one branch per source, and merges the
// branch sequences step-wise into frontiers.
func run(g core.View, sources []int64, o Options) (*Result, error) {
	// 1. Validate the view
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Validate sources eagerly: no partial output on error
	n := g.NodeCount()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d (nodes: %d)", ErrInvalidNode, s, n)
		}
	}

	// 3. Explore each source; state persists so earlier sources take
	// precedence over later ones.
	w := &dfsWalker{graph: g, opts: o, state: make([]uint8, n)}
	branches := make([]branch, 0, len(sources))
	for i, s := range sources {
		if w.state[s] != white {
			branches = append(branches, branch{})
			continue
		}
		br, err := w.explore(s)
		if err != nil {
			return nil, err
		}
		o.Log.Trace().Int("branch", i).Int64("source", s).Int("edges", len(br.edges)).Msg("dfs: branch explored")
		branches = append(branches, br)
	}

	return merge(branches, o), nil
}

// explore runs one iterative depth-first exploration from src, classifying
// every examined edge by the tri-color state of its target.
func (w *dfsWalker) explore(src int64) (branch, error) {
	var br branch
	w.state[src] = gray
	if err := w.push(src); err != nil {
		return br, err
	}

	for len(w.stack) > 0 {
		// cancellation check (once per examined edge or backtrack)
		select {
		case <-w.opts.Ctx.Done():
			return br, w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			// adjacency row exhausted: backtrack
			w.state[top.node] = black
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		nb := top.nbs[top.next]
		top.next++
		switch w.state[nb.Node] {
		case white:
			br.emit(nb.Edge, Forward)
			w.state[nb.Node] = gray
			if err := w.push(nb.Node); err != nil {
				return br, err
			}
		case gray:
			if w.opts.ReverseEdges {
				br.emit(nb.Edge, Reverse)
			}
		default: // black
			if w.opts.NontreeEdges {
				br.emit(nb.Edge, NonTree)
			}
		}
	}

	return br, nil
}

// push fetches the adjacency row of node once and stacks a fresh cursor.
func (w *dfsWalker) push(node int64) error {
	nbs, err := w.graph.Neighbors(node, w.opts.Dir)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", node, err)
	}
	w.stack = append(w.stack, frame{node: node, nbs: nbs})

	return nil
}

// emit appends one classified edge to the branch sequence.
func (b *branch) emit(edge int64, l Label) {
	b.edges = append(b.edges, edge)
	b.labels = append(b.labels, l)
}

// merge interleaves branch sequences step-wise: frontier t holds the t-th
// edge of every branch that got that far, in source order.
func merge(branches []branch, o Options) *Result {
	var total int64
	for _, br := range branches {
		total += int64(len(br.edges))
	}

	edgeBuf := frontier.NewBuffer(total)
	var labelBuf *frontier.Buffer
	if o.ReturnLabels {
		labelBuf = frontier.NewBuffer(total)
	}

	for step := 0; ; step++ {
		emitted := false
		for _, br := range branches {
			if step >= len(br.edges) {
				continue
			}
			edgeBuf.Append(br.edges[step])
			if labelBuf != nil {
				labelBuf.Append(int64(br.labels[step]))
			}
			emitted = true
		}
		if !emitted {
			break
		}
		edgeBuf.Seal()
		if labelBuf != nil {
			labelBuf.Seal()
		}
	}

	res := &Result{Edges: edgeBuf.Frontiers(), edgeBuf: edgeBuf, labelBuf: labelBuf}
	if labelBuf != nil {
		res.Labels = make([][]Label, 0, labelBuf.NumFrontiers())
		for _, f := range labelBuf.Frontiers() {
			labels := make([]Label, len(f))
			for i, v := range f {
				labels[i] = Label(v)
			}
			res.Labels = append(res.Labels, labels)
		}
	}

	return res
}
