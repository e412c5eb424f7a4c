// Package lvlgraph is a frontier-batched graph traversal toolkit: it turns
// a static directed graph into the computation orders a graph-learning
// pipeline feeds on — per-layer message-passing schedules, dependency
// levels, and labeled spanning structure.
//
// 🚀 What is lvlgraph?
//
//	A small, thread-friendly library built around three traversal engines:
//		• bfs  — multi-source breadth-first frontiers over out- or in-edges
//		• topo — Kahn-style dependency levels across the whole node set
//		• dfs  — iterative depth-first edge frontiers with forward /
//		         reverse / nontree classification
//
// ✨ Why choose lvlgraph?
//
//   - Frontier-first – every engine emits ordered batches, not one flat order
//   - Direction as a view – follow in-edges with one option, no graph copies
//   - Immutable core – a built Digraph serves unlimited concurrent traversals
//   - Iterative DFS – explicit stack, so graph depth never blows the call stack
//
// Everything is organized under five subpackages:
//
//	core/     — static Digraph, the read-only View contract, dot export
//	frontier/ — the frontier Buffer and the flat+lengths wire codec
//	bfs/      — breadth-first layering engine
//	topo/     — topological leveling engine
//	dfs/      — depth-first edge-labeling engine
//	build/    — deterministic graph generators for tests and benchmarks
//
// Quick ASCII example:
//
//	    0 ──→ 1
//	    │     │
//	    ↓     ↓
//	    2 ──→ 3
//
//	BFS from 0 layers it [[0],[1,2],[3],[]]; topo levels it
//	[[0],[1,2],[3]]; DFS from 0 labels every edge on the way down.
//
//	go get github.com/katalvlaran/lvlgraph
package lvlgraph
