// Package core offers a graphviz export of any View for debugging and
// documentation, built on github.com/emicklei/dot.
package core

import (
	"strconv"

	"github.com/emicklei/dot"
)

// DotGraph renders v into a directed dot graph. Node labels are the node
// ids, edge labels the edge ids, so a rendered graph can be read back
// against traversal output.
func DotGraph(v View) (*dot.Graph, error) {
	g := dot.NewGraph(dot.Directed)

	// mapping between graph node ids and dot nodes
	nodes := make(map[int64]dot.Node, v.NodeCount())
	var u int64
	for u = 0; u < v.NodeCount(); u++ {
		nodes[u] = g.Node(strconv.FormatInt(u, 10))
	}

	// one dot edge per Forward adjacency entry covers every edge exactly once
	for u = 0; u < v.NodeCount(); u++ {
		nbs, err := v.Neighbors(u, Forward)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbs {
			g.Edge(nodes[u], nodes[nb.Node]).Label(strconv.FormatInt(nb.Edge, 10))
		}
	}

	return g, nil
}

// Dump returns the graphviz dot string of v.
func Dump(v View) (string, error) {
	g, err := DotGraph(v)
	if err != nil {
		return "", err
	}

	return g.String(), nil
}
