// Package build implements the deterministic graph generators.
package build

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlgraph/core"
)

// Sentinel errors for graph generation.
var (
	// ErrBadShape indicates a negative or otherwise impossible dimension.
	ErrBadShape = errors.New("build: invalid shape")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("build: probability outside [0,1]")
)

// Path returns the path 0→1→…→n-1. Edge i connects node i to node i+1.
func Path(n int64) (*core.Digraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d nodes", ErrBadShape, n)
	}
	edges := make([]core.Edge, 0, max64(n-1, 0))
	var i int64
	for i = 0; i+1 < n; i++ {
		edges = append(edges, core.Edge{Tail: i, Head: i + 1})
	}

	return core.NewDigraph(n, edges)
}

// Ring returns the directed cycle 0→1→…→n-1→0. Ring(1) is a self-loop.
func Ring(n int64) (*core.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: ring needs at least 1 node, got %d", ErrBadShape, n)
	}
	edges := make([]core.Edge, 0, n)
	var i int64
	for i = 0; i < n; i++ {
		edges = append(edges, core.Edge{Tail: i, Head: (i + 1) % n})
	}

	return core.NewDigraph(n, edges)
}

// Star returns the out-star with hub 0: edge i-1 connects 0→i.
func Star(n int64) (*core.Digraph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: star needs at least 1 node, got %d", ErrBadShape, n)
	}
	edges := make([]core.Edge, 0, n-1)
	var i int64
	for i = 1; i < n; i++ {
		edges = append(edges, core.Edge{Tail: 0, Head: i})
	}

	return core.NewDigraph(n, edges)
}

// CompleteDAG returns the transitive tournament on n nodes: an edge i→j
// for every i < j, emitted in ascending (i, j) order.
func CompleteDAG(n int64) (*core.Digraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d nodes", ErrBadShape, n)
	}
	edges := make([]core.Edge, 0, n*(n-1)/2)
	var i, j int64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, core.Edge{Tail: i, Head: j})
		}
	}

	return core.NewDigraph(n, edges)
}

// Grid returns the rows×cols lattice DAG. Node (r,c) has id r*cols+c; per
// node, the edge to its right neighbor is emitted before the edge to its
// lower neighbor.
func Grid(rows, cols int64) (*core.Digraph, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d grid", ErrBadShape, rows, cols)
	}
	edges := make([]core.Edge, 0, 2*rows*cols)
	var r, c int64
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				edges = append(edges, core.Edge{Tail: id, Head: id + 1})
			}
			if r+1 < rows {
				edges = append(edges, core.Edge{Tail: id, Head: id + cols})
			}
		}
	}

	return core.NewDigraph(rows*cols, edges)
}

// RandomDAG returns a DAG on n nodes where each pair i < j is connected
// with probability p, drawn from a generator seeded with seed. The same
// arguments always produce the same graph.
func RandomDAG(n int64, p float64, seed int64) (*core.Digraph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d nodes", ErrBadShape, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, p)
	}
	rng := rand.New(rand.NewSource(seed))
	var edges []core.Edge
	var i, j int64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, core.Edge{Tail: i, Head: j})
			}
		}
	}

	return core.NewDigraph(n, edges)
}

// max64 returns the larger of a and b.
func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
