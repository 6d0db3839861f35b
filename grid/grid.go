// Package grid provides the occupancy/cost oracle the hierarchy is built on.
// It supports:
//
//   - Four-directional (Tile) or eight-directional (Octile, OctileUnicost) movement
//   - Passability by threshold on integer cell values
//   - The search.Graph contract restricted to a rectangular window
//
// Cells with value < PassThreshold are blocked; cells with value ≥ PassThreshold are open.
package grid

import (
	"fmt"

	"github.com/katalvlaran/hierpath/search"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGrid builds a Grid from rows of cell values, indexed values[y][x].
// The values are copied into a row-major store, so later changes to the
// input do not affect the grid.
//
// Returns ErrEmptyGrid, ErrNonRectangular (naming the first bad row),
// ErrBadUnitCost or ErrBadTile.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts Options) (*Grid, error) {
	// 1) Options first: they do not depend on the shape.
	if err := opts.check(); err != nil {
		return nil, err
	}
	// 2) Shape: the first row fixes the width.
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	cells := make([]int, 0, w*len(values))
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}
	// 3) Movement model.
	moves := offsets4
	if opts.Tile.Diagonal() {
		moves = offsets8
	}

	return &Grid{
		Width:         w,
		Height:        len(values),
		Tile:          opts.Tile,
		PassThreshold: opts.PassThreshold,
		UnitCost:      opts.UnitCost,
		cells:         cells,
		offsets:       moves,
	}, nil
}

// check validates the cost model of o.
func (o Options) check() error {
	if o.UnitCost < 1 {
		return fmt.Errorf("%w: %d", ErrBadUnitCost, o.UnitCost)
	}
	if _, ok := tileNames[o.Tile]; !ok {
		return fmt.Errorf("%w: %d", ErrBadTile, int(o.Tile))
	}
	return nil
}

// FromStrings builds a Grid from text rows: '.' is open (value 1), '#' is
// blocked (value 0) and digits '1'-'9' are open cells carrying that value.
func FromStrings(rows []string, opts Options) (*Grid, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for x, r := range row {
			switch {
			case r == '.':
				values[y] = append(values[y], 1)
			case r == '#':
				values[y] = append(values[y], 0)
			case r >= '1' && r <= '9':
				values[y] = append(values[y], int(r-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadRune, r, x, y)
			}
		}
	}
	return NewGrid(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Passable reports whether (x,y) is inside the grid and open.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.Width+x] >= g.PassThreshold
}

// Value returns the input value of cell (x,y), or 0 outside the grid.
func (g *Grid) Value(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.cells[y*g.Width+x]
}

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: g.Width - 1, Y1: g.Height - 1}
}

// DiagonalCost is the cost of one diagonal step under g.Tile.
// For Octile this is the integer approximation unit·34/24 of unit·√2.
func (g *Grid) DiagonalCost() int {
	if g.Tile == OctileUnicost {
		return g.UnitCost
	}
	return g.UnitCost * 34 / 24
}

// ID maps p to a row-major index: y*Width + x.
func (g *Grid) ID(p Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(id int) Position {
	return Position{X: id % g.Width, Y: id / g.Width}
}

// Size implements search.Graph: one id per cell.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Neighbours implements search.Graph for cells restricted to window.
// Diagonal steps require both orthogonal cells to be open (no corner cutting).
func (g *Grid) Neighbours(window Rect, id int) ([]search.Neighbour, error) {
	if id < 0 || id >= g.Size() {
		return nil, fmt.Errorf("%w: cell id %d", ErrOutOfBounds, id)
	}
	p := g.Coordinate(id)
	out := make([]search.Neighbour, 0, len(g.offsets))
	for _, d := range g.offsets {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if !window.Contains(q) || !g.Passable(q.X, q.Y) {
			continue
		}
		cost := g.UnitCost
		if d[0] != 0 && d[1] != 0 {
			if !g.Passable(p.X+d[0], p.Y) || !g.Passable(p.X, p.Y+d[1]) {
				continue
			}
			cost = g.DiagonalCost()
		}
		out = append(out, search.Neighbour{ID: g.ID(q), Cost: cost})
	}

	return out, nil
}

// Heuristic implements search.Graph using the tile's distance estimate.
func (g *Grid) Heuristic(_ Rect, a, b int) int {
	return Heuristic(g.Tile, g.UnitCost, g.Coordinate(a), g.Coordinate(b))
}

// ShortestPath runs A* between two cells without leaving window.
// Blocked or out-of-window endpoints yield a NoPath result.
func (g *Grid) ShortestPath(window Rect, from, to Position) (search.Path, error) {
	if !g.InBounds(from.X, from.Y) || !g.InBounds(to.X, to.Y) {
		return search.Path{Cost: search.NoPath}, fmt.Errorf("%w: %v→%v", ErrOutOfBounds, from, to)
	}
	if !g.Passable(from.X, from.Y) || !g.Passable(to.X, to.Y) ||
		!window.Contains(from) || !window.Contains(to) {
		return search.Path{Cost: search.NoPath}, nil
	}
	return search.AStar[Rect](g, window, g.ID(from), g.ID(to))
}
