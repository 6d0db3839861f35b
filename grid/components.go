package grid

// Components labels every passable cell with the id of its connected region
// under g.Tile movement (diagonal links follow the same no-corner-cutting
// rule as Neighbours). Blocked cells are labeled -1. Labels are dense,
// starting at 0, in row-major order of each region's first cell.
//
// Returns the label slice indexed by ID(p) and the number of regions.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) Components() ([]int, int) {
	labels := make([]int, g.Size())
	for i := range labels {
		labels[i] = -1
	}
	window := g.Bounds()
	count := 0

	for id := range labels {
		p := g.Coordinate(id)
		if labels[id] != -1 || !g.Passable(p.X, p.Y) {
			continue
		}
		// BFS flood from id.
		labels[id] = count
		queue := []int{id}
		for qi := 0; qi < len(queue); qi++ {
			nbs, _ := g.Neighbours(window, queue[qi])
			for _, nb := range nbs {
				if labels[nb.ID] == -1 {
					labels[nb.ID] = count
					queue = append(queue, nb.ID)
				}
			}
		}
		count++
	}

	return labels, count
}
