package grid

// Heuristic estimates the movement cost between a and b for the given tile
// type without floating point.
//
//   - Tile:          Manhattan distance × unitCost.
//   - Octile:        unitCost·straight + (unitCost·34/24 − 2·unitCost)·diag,
//     where diag = min(dx,dy) and straight = dx+dy; the integer form of
//     unitCost·(straight + (√2−2)·diag).
//   - OctileUnicost: 0 (uniform-cost search).
func Heuristic(tile TileType, unitCost int, a, b Position) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	switch tile {
	case Tile:
		return (dx + dy) * unitCost
	case Octile:
		diag := min(dx, dy)
		straight := dx + dy
		return unitCost*straight + (unitCost*34/24-2*unitCost)*diag
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
