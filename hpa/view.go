package hpa

import (
	"github.com/katalvlaran/hierpath/abstract"
	"github.com/katalvlaran/hierpath/grid"
	"github.com/katalvlaran/hierpath/search"
)

// Size implements search.Graph: the number of abstract nodes.
func (m *Map) Size() int {
	return m.graph.Len()
}

// Neighbours implements search.Graph. It returns the edges of id visible
// under v, in insertion order:
//
//   - an inter edge is visible when its Level ≥ v.Level, so long border
//     crossings synthesized for coarse levels stay usable below them;
//   - an intra edge is visible only when its Level == v.Level;
//   - the target must itself reach v.Level and lie inside v.Box.
//
// This filter lets one graph holding every level's edges be searched as if
// it held only the current level's topology inside the current window.
func (m *Map) Neighbours(v View, id int) ([]search.Neighbour, error) {
	node, err := m.graph.Node(id)
	if err != nil {
		return nil, err
	}
	out := make([]search.Neighbour, 0, len(node.Edges))
	for _, e := range node.Edges {
		if !visible(e, v.Level) {
			continue
		}
		target, err := m.graph.NodeInfo(e.Target)
		if err != nil {
			return nil, err
		}
		if target.Level < v.Level || !v.Box.Contains(target.Position) {
			continue
		}
		out = append(out, search.Neighbour{ID: e.Target, Cost: e.Cost})
	}

	return out, nil
}

// Heuristic implements search.Graph with the grid's tile heuristic on node
// positions. Unknown ids estimate 0.
func (m *Map) Heuristic(_ View, a, b int) int {
	ia, err := m.graph.NodeInfo(a)
	if err != nil {
		return 0
	}
	ib, err := m.graph.NodeInfo(b)
	if err != nil {
		return 0
	}
	return grid.Heuristic(m.grid.Tile, m.grid.UnitCost, ia.Position, ib.Position)
}

// visible applies the level part of the neighbour filter.
func visible(e abstract.Edge, level int) bool {
	if e.Inter {
		return e.Level >= level
	}
	return e.Level == level
}
