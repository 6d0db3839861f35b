// SPDX-License-Identifier: MIT
// Package abstract_test verifies the arena contracts: dense ids, insertion
// ordered edges, sentinel errors and truncation of temporary nodes.

package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierpath/abstract"
	"github.com/katalvlaran/hierpath/grid"
)

func node(x, y, level int) abstract.NodeInfo {
	return abstract.NodeInfo{Position: grid.Position{X: x, Y: y}, Level: level}
}

func TestGraph_AddNodeAssignsDenseIDs(t *testing.T) {
	g := abstract.NewGraph()
	assert.Equal(t, 0, g.Len())
	for want := 0; want < 3; want++ {
		assert.Equal(t, want, g.AddNode(node(want, 0, 1)))
	}
	assert.Equal(t, 3, g.Len())

	n, err := g.Node(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n.ID)
	assert.Equal(t, grid.Position{X: 2, Y: 0}, n.Info.Position)
}

func TestGraph_AddEdge(t *testing.T) {
	g := abstract.NewGraph()
	a := g.AddNode(node(0, 0, 1))
	b := g.AddNode(node(1, 0, 2))

	require.NoError(t, g.AddEdge(a, b, 100, 1, true))
	require.NoError(t, g.AddEdge(a, b, 300, 2, false))
	// No deduplication.
	require.NoError(t, g.AddEdge(a, b, 100, 1, true))

	edges, err := g.Edges(a)
	require.NoError(t, err)
	assert.Equal(t, []abstract.Edge{
		{Target: b, Cost: 100, Level: 1, Inter: true},
		{Target: b, Cost: 300, Level: 2, Inter: false},
		{Target: b, Cost: 100, Level: 1, Inter: true},
	}, edges)

	edges, err = g.Edges(b)
	require.NoError(t, err)
	assert.Empty(t, edges, "edges are owned by their source only")
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_Errors(t *testing.T) {
	g := abstract.NewGraph()
	a := g.AddNode(node(0, 0, 1))

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"EdgeUnknownSource", g.AddEdge(7, a, 1, 1, false), abstract.ErrNodeOutOfRange},
		{"EdgeUnknownTarget", g.AddEdge(a, -1, 1, 1, false), abstract.ErrNodeOutOfRange},
		{"EdgeLevelZero", g.AddEdge(a, a, 1, 0, false), abstract.ErrBadLevel},
		{"EdgeNegativeCost", g.AddEdge(a, a, -3, 1, false), abstract.ErrNegativeCost},
		{"SetLevelUnknown", g.SetLevel(4, 2), abstract.ErrNodeOutOfRange},
		{"SetLevelZero", g.SetLevel(a, 0), abstract.ErrBadLevel},
		{"TruncateTooFar", g.Truncate(5), abstract.ErrNodeOutOfRange},
		{"TruncateNegative", g.Truncate(-1), abstract.ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.want)
		})
	}

	_, err := g.Node(1)
	assert.ErrorIs(t, err, abstract.ErrNodeOutOfRange)
	_, err = g.NodeInfo(-1)
	assert.ErrorIs(t, err, abstract.ErrNodeOutOfRange)
	_, err = g.Edges(1)
	assert.ErrorIs(t, err, abstract.ErrNodeOutOfRange)
}

func TestGraph_SetLevel(t *testing.T) {
	g := abstract.NewGraph()
	a := g.AddNode(node(3, 4, 1))
	require.NoError(t, g.SetLevel(a, 3))

	info, err := g.NodeInfo(a)
	require.NoError(t, err)
	assert.Equal(t, 3, info.Level)
}

// TestGraph_Truncate removes the tail nodes and every edge pointing at them,
// leaving edges among the surviving nodes untouched.
func TestGraph_Truncate(t *testing.T) {
	g := abstract.NewGraph()
	a := g.AddNode(node(0, 0, 1))
	b := g.AddNode(node(1, 0, 1))
	require.NoError(t, g.AddEdge(a, b, 1, 1, false))
	require.NoError(t, g.AddEdge(b, a, 1, 1, false))

	mark := g.Len()
	s := g.AddNode(node(5, 5, 2))
	require.NoError(t, g.AddEdge(s, a, 7, 1, false))
	require.NoError(t, g.AddEdge(a, s, 7, 1, false))
	require.NoError(t, g.AddEdge(b, s, 9, 2, false))

	require.NoError(t, g.Truncate(mark))
	assert.Equal(t, 2, g.Len())

	ea, _ := g.Edges(a)
	eb, _ := g.Edges(b)
	assert.Equal(t, []abstract.Edge{{Target: b, Cost: 1, Level: 1}}, ea)
	assert.Equal(t, []abstract.Edge{{Target: a, Cost: 1, Level: 1}}, eb)

	// Truncating to the current length is a no-op.
	require.NoError(t, g.Truncate(g.Len()))
	assert.Equal(t, 2, g.EdgeCount())
}
