// Package frontier provides the output sink shared by every traversal
// engine in lvlgraph: a Buffer that accumulates node or edge ids together
// with section lengths partitioning the flat sequence into ordered
// frontiers.
//
// The nested Frontiers() view is the primary result shape; the flat
// sequence plus section lengths (Flat(), Sections()) is kept as the wire
// encoding for callers crossing a serialization boundary, and Split is its
// decoder. Concatenating the frontiers in order always reproduces the flat
// sequence exactly.
//
// A Buffer is owned by a single traversal invocation and is not safe for
// concurrent use.
package frontier
