package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgraph/build"
	"github.com/katalvlaran/lvlgraph/core"
)

// TestPath checks node/edge counts and endpoint wiring.
func TestPath(t *testing.T) {
	g, err := build.Path(4)
	require.NoError(t, err)
	assert.EqualValues(t, 4, g.NodeCount())
	assert.EqualValues(t, 3, g.EdgeCount())

	tail, head, err := g.EdgeEndpoints(1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, tail)
	assert.EqualValues(t, 2, head)

	// degenerate sizes
	g, err = build.Path(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, g.NodeCount())

	_, err = build.Path(-1)
	assert.ErrorIs(t, err, build.ErrBadShape)
}

// TestRing checks the wrap-around edge and the self-loop case.
func TestRing(t *testing.T) {
	g, err := build.Ring(3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, g.EdgeCount())

	tail, head, err := g.EdgeEndpoints(2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, tail)
	assert.EqualValues(t, 0, head)

	loop, err := build.Ring(1)
	require.NoError(t, err)
	tail, head, err = loop.EdgeEndpoints(0)
	require.NoError(t, err)
	assert.Equal(t, tail, head)

	_, err = build.Ring(0)
	assert.ErrorIs(t, err, build.ErrBadShape)
}

// TestStar checks hub fan-out.
func TestStar(t *testing.T) {
	g, err := build.Star(5)
	require.NoError(t, err)

	out, err := g.Neighbors(0, core.Forward)
	require.NoError(t, err)
	assert.Len(t, out, 4)
	for i, nb := range out {
		assert.EqualValues(t, i+1, nb.Node)
		assert.EqualValues(t, i, nb.Edge)
	}
}

// TestCompleteDAG checks the edge count of the transitive tournament.
func TestCompleteDAG(t *testing.T) {
	g, err := build.CompleteDAG(5)
	require.NoError(t, err)
	assert.EqualValues(t, 10, g.EdgeCount())

	// node 0 points at everyone
	out, err := g.Neighbors(0, core.Forward)
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

// TestGrid checks lattice wiring and the per-node right-then-down order.
func TestGrid(t *testing.T) {
	g, err := build.Grid(2, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 6, g.NodeCount())
	assert.EqualValues(t, 7, g.EdgeCount())

	out, err := g.Neighbors(0, core.Forward)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, []int64{out[0].Node, out[1].Node})

	_, err = build.Grid(-1, 2)
	assert.ErrorIs(t, err, build.ErrBadShape)
}

// TestRandomDAG checks determinism, acyclicity by construction, and
// probability validation.
func TestRandomDAG(t *testing.T) {
	a, err := build.RandomDAG(50, 0.2, 7)
	require.NoError(t, err)
	b, err := build.RandomDAG(50, 0.2, 7)
	require.NoError(t, err)
	assert.Equal(t, a.EdgeCount(), b.EdgeCount(), "same seed, same graph")

	// all edges go from lower to higher id
	var e int64
	for e = 0; e < a.EdgeCount(); e++ {
		tail, head, err := a.EdgeEndpoints(e)
		require.NoError(t, err)
		assert.Less(t, tail, head)
	}

	_, err = build.RandomDAG(10, 1.5, 0)
	assert.ErrorIs(t, err, build.ErrBadProbability)
}
