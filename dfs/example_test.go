package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/build"
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
)

// ExampleEdgeFrontiers traverses a path graph: each frontier carries the
// single tree edge discovered at that step.
func ExampleEdgeFrontiers() {
	g, err := build.Path(4) // 0→1→2→3, edge ids 0,1,2
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.EdgeFrontiers(g, []int64{0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Edges)
	// Output:
	// [[0] [1] [2]]
}

// ExampleLabeledEdgeFrontiers classifies every edge of a diamond with a
// closing back edge: three tree edges, one nontree join, one back edge.
func ExampleLabeledEdgeFrontiers() {
	g, err := core.NewDigraph(4, []core.Edge{
		{Tail: 0, Head: 1}, // e0, tree
		{Tail: 0, Head: 2}, // e1, tree
		{Tail: 1, Head: 3}, // e2, tree
		{Tail: 2, Head: 3}, // e3, joins a finished node
		{Tail: 3, Head: 0}, // e4, back to the root
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.LabeledEdgeFrontiers(g, []int64{0},
		dfs.WithReverseEdges(), dfs.WithNontreeEdges())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, f := range res.Edges {
		for j, e := range f {
			fmt.Printf("edge %d: %v\n", e, res.Labels[i][j])
		}
	}
	// Output:
	// edge 0: forward
	// edge 2: forward
	// edge 4: reverse
	// edge 1: forward
	// edge 3: nontree
}
