// Package bfs computes multi-source breadth-first frontiers over a
// core.View.
//
// All sources form frontier 0 (in input order, duplicates collapsed,
// first occurrence wins); each subsequent frontier holds the not yet
// visited neighbors of the previous frontier, in discovery order. The
// final, empty frontier is part of the result so callers can detect
// completion, mirroring topological leveling.
//
// Frontier k therefore holds exactly the nodes at BFS distance k from the
// nearest source, and the frontiers partition the reachable set.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph.
//   - Memory: O(V) for the visited set and frontier buffer.
//
// Options:
//
//   - WithReversed()     follow in-edges instead of out-edges.
//   - WithContext(ctx)   allows cancellation via context.Context.
//   - WithLogger(log)    per-frontier trace events (default zerolog.Nop).
//
// Errors:
//
//   - ErrGraphNil     if the view is nil.
//   - ErrNoSources    if the source set is empty.
//   - ErrInvalidNode  if any source id is outside [0, NodeCount()).
//
// Validation happens eagerly: no partial output is produced on error.
package bfs
