// Package dfs computes depth-first edge frontiers over a core.View, with
// every encountered edge classified by the tri-color state of its target.
//
// Each source starts its own depth-first exploration, in input order.
// A node is pushed onto the explicit stack as soon as it is discovered;
// an edge is classified the moment it is first examined:
//
//   - target unvisited  → Forward: a tree edge; always emitted, target pushed.
//   - target discovered → Reverse: a back edge to a node still on the
//     active path; emitted only with WithReverseEdges.
//   - target finished   → NonTree: a cross or forward-skip edge between two
//     fully explored subtrees; emitted only with WithNontreeEdges.
//
// A node turns finished when its full adjacency row has been examined.
//
// Visitation state persists across sources: territory claimed by an
// earlier source is never re-entered, and a source that is already visited
// contributes an empty branch. Overlapping or duplicate sources are
// therefore well-defined, with earlier sources taking precedence. Callers
// wanting cleanly mergeable per-source forests should still start each
// source in its own weakly-connected component.
//
// Output frontiers interleave the branches step-wise: frontier t holds the
// t-th emitted edge of every branch that got that far, in source order, so
// a single-source traversal yields one edge per frontier.
//
// Recursion is replaced by an explicit stack of (node, next-neighbor)
// cursors, so depth is bounded by memory, not by the call stack.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph.
//   - Memory: O(V) for states and stack, O(E) for the buffers.
//
// Options:
//
//   - WithReversed()      follow in-edges instead of out-edges.
//   - WithReverseEdges()  also emit back edges (LabeledEdgeFrontiers only).
//   - WithNontreeEdges()  also emit cross edges (LabeledEdgeFrontiers only).
//   - WithoutLabels()     drop the parallel label sequence.
//   - WithContext(ctx)    allows cancellation via context.Context.
//   - WithLogger(log)     per-branch trace events (default zerolog.Nop).
//
// Errors:
//
//   - ErrGraphNil     if the view is nil.
//   - ErrInvalidNode  if any source id is outside [0, NodeCount()).
//
// Validation happens eagerly: no partial output is produced on error.
package dfs
