// Package core declares the Direction, Edge and Neighbor value types,
// the sentinel errors shared by graph construction and queries,
// and the read-only View contract.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeCount indicates NewDigraph was given a negative node count.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrEndpointOutOfRange indicates an edge references a node id outside [0, numNodes).
	ErrEndpointOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrNodeOutOfRange indicates a query referenced a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrEdgeOutOfRange indicates a query referenced an edge id outside [0, EdgeCount()).
	ErrEdgeOutOfRange = errors.New("core: edge id out of range")
)

// Direction selects which adjacency a traversal follows.
// It is a view over the same static graph, never a mutation of it.
type Direction uint8

const (
	// Forward follows out-edges: tail→head.
	Forward Direction = iota

	// Reversed follows in-edges, as if every edge were flipped: head→tail.
	Reversed
)

// String returns "forward" or "reversed".
func (d Direction) String() string {
	if d == Reversed {
		return "reversed"
	}

	return "forward"
}

// Edge describes one directed edge by its endpoints.
// The edge's id is its position in the slice passed to NewDigraph.
type Edge struct {
	// Tail is the source node id.
	Tail int64

	// Head is the destination node id.
	Head int64
}

// Neighbor pairs an adjacent node with the id of the edge that reaches it.
// Under Forward the node is the edge's head; under Reversed it is the tail.
type Neighbor struct {
	// Node is the adjacent node id.
	Node int64

	// Edge is the id of the connecting edge.
	Edge int64
}

// View is the read-only graph contract consumed by the traversal engines.
//
// Implementations must be safe for concurrent use by multiple simultaneous
// traversals, must have no side effects, and must enumerate neighbors in a
// stable order: frontier contents are defined by that order.
// Digraph is the canonical implementation.
type View interface {
	// NodeCount reports the number of nodes; valid ids are [0, NodeCount()).
	NodeCount() int64

	// EdgeCount reports the number of edges; valid ids are [0, EdgeCount()).
	EdgeCount() int64

	// Neighbors returns the ordered (node, edge) pairs adjacent to node
	// under dir. The returned slice is shared and must not be modified.
	// Returns ErrNodeOutOfRange for an invalid node id.
	Neighbors(node int64, dir Direction) ([]Neighbor, error)

	// EdgeEndpoints returns the tail and head of edge.
	// Returns ErrEdgeOutOfRange for an invalid edge id.
	EdgeEndpoints(edge int64) (tail, head int64, err error)
}
