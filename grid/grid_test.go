package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hierpath/grid"
	"github.com/katalvlaran/hierpath/search"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects malformed inputs.
func TestNewGrid_Errors(t *testing.T) {
	badCost := grid.DefaultOptions()
	badCost.UnitCost = 0
	badTile := grid.DefaultOptions()
	badTile.Tile = grid.TileType(42)

	cases := []struct {
		name string
		grid [][]int
		opts grid.Options
		err  error
	}{
		{"EmptyRows", [][]int{}, grid.DefaultOptions(), grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.DefaultOptions(), grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.DefaultOptions(), grid.ErrNonRectangular},
		{"BadUnitCost", [][]int{{1}}, badCost, grid.ErrBadUnitCost},
		{"BadTile", [][]int{{1}}, badTile, grid.ErrBadTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 1}, {1, 1}}
	g, err := grid.NewGrid(in, grid.DefaultOptions())
	require.NoError(t, err)
	in[0][0] = 0
	assert.True(t, g.Passable(0, 0))
	assert.Equal(t, 1, g.Value(0, 0))
}

// TestInBounds checks InBounds and Passable on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.FromStrings([]string{
		"#..",
		".#.",
	}, grid.DefaultOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	assert.False(t, g.Passable(0, 0))
	assert.True(t, g.Passable(1, 0))
	assert.False(t, g.Passable(1, 1))
	assert.False(t, g.Passable(5, 5))
	assert.Equal(t, grid.Rect{X0: 0, Y0: 0, X1: 2, Y1: 1}, g.Bounds())
}

func TestFromStrings(t *testing.T) {
	g, err := grid.FromStrings([]string{".#5"}, grid.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, []int{1, 0, 5, 0}, []int{g.Value(0, 0), g.Value(1, 0), g.Value(2, 0), g.Value(3, 0)})

	_, err = grid.FromStrings([]string{".x"}, grid.DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrBadRune)

	_, err = grid.FromStrings([]string{"..", "."}, grid.DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestParseTileType(t *testing.T) {
	for _, tt := range []grid.TileType{grid.Tile, grid.Octile, grid.OctileUnicost} {
		got, err := grid.ParseTileType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}
	got, err := grid.ParseTileType(" Octile ")
	require.NoError(t, err)
	assert.Equal(t, grid.Octile, got)

	_, err = grid.ParseTileType("hex")
	assert.ErrorIs(t, err, grid.ErrBadTile)
	assert.Equal(t, "TileType(9)", grid.TileType(9).String())
}

func TestRect_Contains(t *testing.T) {
	r := grid.Rect{X0: 2, Y0: 2, X1: 3, Y1: 4}
	assert.True(t, r.Contains(grid.Position{X: 2, Y: 2}))
	assert.True(t, r.Contains(grid.Position{X: 3, Y: 4}))
	assert.False(t, r.Contains(grid.Position{X: 1, Y: 3}))
	assert.False(t, r.Contains(grid.Position{X: 3, Y: 5}))
}

//----------------------------------------------------------------------------//
// Neighbours Tests
//----------------------------------------------------------------------------//

// TestNeighbours_Tile verifies that only orthogonal, open, in-window cells are returned.
func TestNeighbours_Tile(t *testing.T) {
	g, err := grid.FromStrings([]string{
		"...",
		"..#",
		"...",
	}, grid.DefaultOptions())
	require.NoError(t, err)

	centre := g.ID(grid.Position{X: 1, Y: 1})
	nbs, err := g.Neighbours(g.Bounds(), centre)
	require.NoError(t, err)
	assert.ElementsMatch(t, []search.Neighbour{
		{ID: g.ID(grid.Position{X: 1, Y: 0}), Cost: 100},
		{ID: g.ID(grid.Position{X: 1, Y: 2}), Cost: 100},
		{ID: g.ID(grid.Position{X: 0, Y: 1}), Cost: 100},
	}, nbs)

	// Window restricted to the top row.
	nbs, err = g.Neighbours(grid.Rect{X0: 0, Y0: 0, X1: 2, Y1: 0}, g.ID(grid.Position{X: 1, Y: 0}))
	require.NoError(t, err)
	assert.Len(t, nbs, 2)

	_, err = g.Neighbours(g.Bounds(), 99)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestNeighbours_OctileNoCornerCutting checks diagonal costs and the corner rule.
func TestNeighbours_OctileNoCornerCutting(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Tile = grid.Octile
	g, err := grid.FromStrings([]string{
		".#.",
		"...",
		"...",
	}, opts)
	require.NoError(t, err)

	nbs, err := g.Neighbours(g.Bounds(), g.ID(grid.Position{X: 0, Y: 1}))
	require.NoError(t, err)
	costs := map[grid.Position]int{}
	for _, nb := range nbs {
		costs[g.Coordinate(nb.ID)] = nb.Cost
	}
	assert.Equal(t, map[grid.Position]int{
		{X: 0, Y: 0}: 100,
		{X: 1, Y: 1}: 100,
		{X: 0, Y: 2}: 100,
		{X: 1, Y: 2}: 141,
	}, costs, "(1,0) is blocked so the NE diagonal is cut")
}

func TestDiagonalCost(t *testing.T) {
	for _, tc := range []struct {
		tile grid.TileType
		want int
	}{
		{grid.Octile, 141},
		{grid.OctileUnicost, 100},
	} {
		opts := grid.DefaultOptions()
		opts.Tile = tc.tile
		g, err := grid.NewGrid([][]int{{1}}, opts)
		require.NoError(t, err)
		assert.Equal(t, tc.want, g.DiagonalCost(), tc.tile.String())
	}
}

//----------------------------------------------------------------------------//
// ShortestPath Tests
//----------------------------------------------------------------------------//

func TestShortestPath(t *testing.T) {
	g, err := grid.FromStrings([]string{
		"....",
		"###.",
		"....",
	}, grid.DefaultOptions())
	require.NoError(t, err)

	p, err := g.ShortestPath(g.Bounds(), grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 800, p.Cost)
	assert.Len(t, p.Nodes, 9)

	// The detour leaves the window: no path.
	p, err = g.ShortestPath(grid.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}, grid.Position{X: 0, Y: 0}, grid.Position{X: 0, Y: 2})
	require.NoError(t, err)
	assert.False(t, p.Found())

	// Blocked endpoint.
	p, err = g.ShortestPath(g.Bounds(), grid.Position{X: 0, Y: 1}, grid.Position{X: 0, Y: 2})
	require.NoError(t, err)
	assert.False(t, p.Found())

	_, err = g.ShortestPath(g.Bounds(), grid.Position{X: -1, Y: 0}, grid.Position{X: 0, Y: 2})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
