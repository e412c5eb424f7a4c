// Package core defines the central Digraph type and the read-only View
// contract consumed by every traversal engine in lvlgraph.
//
// A Digraph is a static, already-built directed graph: nodes are dense
// integer ids in [0, NodeCount()), edges are dense integer ids in
// [0, EdgeCount()), and each edge keeps its tail (source) and head
// (destination). Once constructed, a Digraph is immutable, which is what
// makes it safe for any number of concurrent traversals without locks.
//
// Direction is a traversal-time view, never a mutation: Forward follows
// out-edges (tail→head), Reversed follows in-edges (head→tail) as if every
// edge were flipped. Both adjacency directions are materialized at
// construction, so Neighbors is O(1) and allocation-free either way.
//
// Errors:
//
//	ErrNegativeNodeCount - NewDigraph called with a negative node count.
//	ErrEndpointOutOfRange - an edge endpoint lies outside [0, numNodes).
//	ErrNodeOutOfRange    - a queried node id lies outside [0, NodeCount()).
//	ErrEdgeOutOfRange    - a queried edge id lies outside [0, EdgeCount()).
//
// See bfs, topo and dfs for the traversal engines built on top of View.
package core
