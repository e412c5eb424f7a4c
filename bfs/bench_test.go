package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlgraph/bfs"
	"github.com/katalvlaran/lvlgraph/build"
)

// BenchmarkFrontiers_Chain measures BFS layering on a deep linear chain.
func BenchmarkFrontiers_Chain(b *testing.B) {
	const n = 10000
	g, err := build.Path(n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.Frontiers(g, []int64{0}); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFrontiers_Grid measures BFS layering on a wide, shallow grid.
func BenchmarkFrontiers_Grid(b *testing.B) {
	g, err := build.Grid(100, 100)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bfs.Frontiers(g, []int64{0}); err != nil {
			b.Fatal(err)
		}
	}
}
