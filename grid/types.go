// Package grid defines core types, options, and sentinel errors
// for the grid oracle of github.com/katalvlaran/hierpath.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadUnitCost indicates a unit cost below 1.
	ErrBadUnitCost = errors.New("grid: unit cost must be positive")
	// ErrBadTile indicates an unknown tile type.
	ErrBadTile = errors.New("grid: unknown tile type")
	// ErrBadRune indicates an unrecognized character in a textual map row.
	ErrBadRune = errors.New("grid: unrecognized map character")
)

// TileType selects the movement model and the matching heuristic.
type TileType int

const (
	// Tile uses 4-directional movement and the Manhattan heuristic.
	Tile TileType = iota
	// Octile uses 8-directional movement, diagonal cost ≈ √2·unit, octile heuristic.
	Octile
	// OctileUnicost uses 8-directional movement where diagonals cost one unit.
	// Its heuristic is zero, so searches behave as uniform-cost.
	OctileUnicost
)

var tileNames = map[TileType]string{
	Tile:          "tile",
	Octile:        "octile",
	OctileUnicost: "octile_unicost",
}

// String returns the configuration name of t.
func (t TileType) String() string {
	if s, ok := tileNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TileType(%d)", int(t))
}

// Diagonal reports whether t allows diagonal steps.
func (t TileType) Diagonal() bool { return t != Tile }

// ParseTileType maps a configuration name back to a TileType.
func ParseTileType(s string) (TileType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for t, name := range tileNames {
		if name == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadTile, s)
}

// Position is a cell coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Rect is an inclusive rectangle of cells: X0 ≤ x ≤ X1, Y0 ≤ y ≤ Y1.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Options contains tunable parameters for a Grid.
type Options struct {
	// Tile selects connectivity and costs.
	Tile TileType
	// PassThreshold is the minimum cell value considered passable.
	PassThreshold int
	// UnitCost is the cost of one straight step.
	UnitCost int
}

// DefaultOptions returns Options with Tile movement, PassThreshold=1
// (values ≥1 are open) and UnitCost=100.
func DefaultOptions() Options {
	return Options{
		Tile:          Tile,
		PassThreshold: 1,
		UnitCost:      100,
	}
}

// Grid is a rectangular occupancy map. It is immutable once built.
type Grid struct {
	Width, Height int
	Tile          TileType
	PassThreshold int
	UnitCost      int
	cells         []int // row-major input values, indexed by ID
	offsets       [][2]int
}
