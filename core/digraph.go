// Package core provides the Digraph constructor and its View implementation.
//
// Digraph stores both adjacency directions in compressed sparse rows built
// once at construction, so Neighbors is a slice view with zero allocation,
// and per-node neighbor order is edge-insertion order (ascending edge id).
package core

import "fmt"

// Digraph is a static directed graph with dense integer node and edge ids.
// It is immutable after NewDigraph returns and therefore safe for any
// number of concurrent read-only traversals.
type Digraph struct {
	numNodes int64
	tails    []int64 // edge id → tail node
	heads    []int64 // edge id → head node
	out      csr     // Forward adjacency
	in       csr     // Reversed adjacency
}

// csr is a compressed-sparse-row adjacency: the neighbors of node u occupy
// adj[ptr[u]:ptr[u+1]], ordered by ascending edge id.
type csr struct {
	ptr []int64
	adj []Neighbor
}

// build fills the csr from one endpoint array (keys) toward the other
// (values), visiting edges in id order so each row stays edge-id sorted.
func (c *csr) build(numNodes int64, keys, values []int64) {
	c.ptr = make([]int64, numNodes+1)
	c.adj = make([]Neighbor, len(keys))

	// 1. Count degree per node.
	for _, k := range keys {
		c.ptr[k+1]++
	}
	// 2. Prefix sums turn counts into row offsets.
	var i int64
	for i = 1; i <= numNodes; i++ {
		c.ptr[i] += c.ptr[i-1]
	}
	// 3. Place edges; next tracks the write cursor per row.
	next := make([]int64, numNodes)
	copy(next, c.ptr[:numNodes])
	for eid, k := range keys {
		c.adj[next[k]] = Neighbor{Node: values[eid], Edge: int64(eid)}
		next[k]++
	}
}

// row returns the neighbor slice of node u.
func (c *csr) row(u int64) []Neighbor {
	return c.adj[c.ptr[u]:c.ptr[u+1]]
}

// NewDigraph builds an immutable directed graph over numNodes nodes from the
// given edge list. The id of each edge is its index in edges.
// Returns ErrNegativeNodeCount for numNodes < 0, or ErrEndpointOutOfRange if
// any edge endpoint falls outside [0, numNodes).
//
// Complexity: O(V + E) time and memory.
func NewDigraph(numNodes int64, edges []Edge) (*Digraph, error) {
	// 1. Validate shape before allocating adjacency.
	if numNodes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, numNodes)
	}
	for i, e := range edges {
		if e.Tail < 0 || e.Tail >= numNodes {
			return nil, fmt.Errorf("%w: edge %d tail %d (nodes: %d)", ErrEndpointOutOfRange, i, e.Tail, numNodes)
		}
		if e.Head < 0 || e.Head >= numNodes {
			return nil, fmt.Errorf("%w: edge %d head %d (nodes: %d)", ErrEndpointOutOfRange, i, e.Head, numNodes)
		}
	}

	// 2. Split endpoints into parallel arrays indexed by edge id.
	g := &Digraph{
		numNodes: numNodes,
		tails:    make([]int64, len(edges)),
		heads:    make([]int64, len(edges)),
	}
	for i, e := range edges {
		g.tails[i] = e.Tail
		g.heads[i] = e.Head
	}

	// 3. Materialize both traversal directions up front.
	g.out.build(numNodes, g.tails, g.heads)
	g.in.build(numNodes, g.heads, g.tails)

	return g, nil
}

// NodeCount reports the number of nodes.
func (g *Digraph) NodeCount() int64 { return g.numNodes }

// EdgeCount reports the number of edges.
func (g *Digraph) EdgeCount() int64 { return int64(len(g.tails)) }

// Neighbors returns the ordered (node, edge) pairs adjacent to node under
// dir: heads of out-edges for Forward, tails of in-edges for Reversed.
// The slice is a view into the graph's adjacency and must not be modified.
func (g *Digraph) Neighbors(node int64, dir Direction) ([]Neighbor, error) {
	if node < 0 || node >= g.numNodes {
		return nil, fmt.Errorf("%w: %d (nodes: %d)", ErrNodeOutOfRange, node, g.numNodes)
	}
	if dir == Reversed {
		return g.in.row(node), nil
	}

	return g.out.row(node), nil
}

// EdgeEndpoints returns the tail and head of edge.
func (g *Digraph) EdgeEndpoints(edge int64) (tail, head int64, err error) {
	if edge < 0 || edge >= int64(len(g.tails)) {
		return 0, 0, fmt.Errorf("%w: %d (edges: %d)", ErrEdgeOutOfRange, edge, len(g.tails))
	}

	return g.tails[edge], g.heads[edge], nil
}

// Degree reports the number of neighbors of node under dir
// (out-degree for Forward, in-degree for Reversed).
func (g *Digraph) Degree(node int64, dir Direction) (int64, error) {
	nbs, err := g.Neighbors(node, dir)
	if err != nil {
		return 0, err
	}

	return int64(len(nbs)), nil
}
