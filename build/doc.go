// Package build constructs canonical core.Digraph shapes for examples,
// tests, and benchmarks: paths, rings, stars, complete DAGs, grids, and
// seeded random DAGs.
//
// Every generator is deterministic (RandomDAG via its explicit seed), so
// traversal output over a built graph is reproducible byte for byte.
// Edge ids follow the documented emission order of each shape.
package build
