// Package topo computes topological dependency levels over a core.View
// using Kahn's algorithm generalized to frontiers.
//
// Level 0 holds every node with zero dependency degree (in-degree under
// Forward, out-degree under Reversed); removing a level's outgoing
// dependency edges yields the next level, and so on until the whole node
// set is partitioned. Nodes within a level are ordered ascending by id,
// the deterministic tie-break.
//
// The input must be a DAG. On cyclic input Frontiers returns
// ErrCycleDetected instead of truncating silently, so every [][]int64 it
// ever returns is a genuine partition of the node set.
//
// Complexity:
//
//   - Time:   O(V + E), plus O(K log K) to sort each level of size K.
//   - Memory: O(V) for the degree array and frontier buffer.
//
// Options mirror package bfs: WithReversed, WithContext, WithLogger.
//
// Errors:
//
//   - ErrGraphNil       if the view is nil.
//   - ErrCycleDetected  if unresolved nodes remain when no level can form.
package topo
