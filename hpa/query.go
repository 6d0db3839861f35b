package hpa

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hierpath/abstract"
	"github.com/katalvlaran/hierpath/grid"
	"github.com/katalvlaran/hierpath/search"
)

// InsertNode adds a node for pos at level MaxLevel and connects it to the
// hierarchy: level-1 edges to the entrances of its cluster found by grid A*,
// then edges at every level 2..MaxLevel via AddEdgesToOtherEntrancesInCluster.
//
// The node is not registered as an entrance point of its cluster. Callers
// remove it with Graph().Truncate once done; FindPath and FindAbstractPath
// do so themselves.
func (m *Map) InsertNode(pos grid.Position) (int, error) {
	if !m.grid.InBounds(pos.X, pos.Y) {
		return 0, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, pos)
	}
	if !m.grid.Passable(pos.X, pos.Y) {
		return 0, fmt.Errorf("%w: %v", ErrBlocked, pos)
	}
	c, err := m.FindClusterForPosition(pos)
	if err != nil {
		return 0, err
	}

	id := m.graph.AddNode(abstract.NodeInfo{Position: pos, Level: m.cfg.MaxLevel, ClusterID: c.ID})
	for _, ep := range c.EntrancePoints {
		if _, err := m.connectInCluster(c, id, ep.NodeID); err != nil {
			return 0, err
		}
	}
	for level := 2; level <= m.cfg.MaxLevel; level++ {
		if err := m.AddEdgesToOtherEntrancesInCluster(id, level); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// FindAbstractPath returns the top-level abstract path from start to goal:
// the positions of the abstract nodes visited and the total cost.
//
// Returns grid.ErrOutOfBounds or ErrBlocked for bad endpoints and ErrNoPath
// when the endpoints are not connected.
func (m *Map) FindAbstractPath(start, goal grid.Position) (Path, error) {
	var out Path
	err := m.withEndpoints(start, goal, func(s, g int, p search.Path) error {
		out = Path{Positions: make([]grid.Position, 0, len(p.Nodes)), Cost: p.Cost}
		for _, id := range p.Nodes {
			info, err := m.graph.NodeInfo(id)
			if err != nil {
				return err
			}
			out.Positions = append(out.Positions, info.Position)
		}
		return nil
	})
	return out, err
}

// FindPath returns a cell-by-cell path from start to goal.
//
// The top-level abstract path is refined edge by edge: a level L intra edge
// is replaced by the A* path between its ends at level L-1 inside its
// L-cluster, recursively, and level-1 intra edges by grid A* inside the
// bounds of the level-1 cluster that owns them. Inter edges are single steps.
func (m *Map) FindPath(start, goal grid.Position) (Path, error) {
	var out Path
	err := m.withEndpoints(start, goal, func(s, g int, p search.Path) error {
		info, err := m.graph.NodeInfo(s)
		if err != nil {
			return err
		}
		out = Path{Positions: []grid.Position{info.Position}}
		for i := 1; i < len(p.Nodes); i++ {
			if err := m.refine(&out, p.Nodes[i-1], p.Nodes[i], m.cfg.MaxLevel); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Path{}, err
	}

	m.log.Debug("path found",
		zap.Any("start", start),
		zap.Any("goal", goal),
		zap.Int("cost", out.Cost),
		zap.Int("steps", len(out.Positions)-1))

	return out, nil
}

// withEndpoints inserts temporary nodes for start and goal, runs the
// top-level search and hands the result to fn before removing the
// temporaries again.
func (m *Map) withEndpoints(start, goal grid.Position, fn func(s, g int, p search.Path) error) (err error) {
	mark := m.graph.Len()
	defer func() {
		if terr := m.graph.Truncate(mark); terr != nil && err == nil {
			err = terr
		}
	}()

	s, err := m.InsertNode(start)
	if err != nil {
		return err
	}
	if start == goal {
		return fn(s, s, search.Path{Nodes: []int{s}, Cost: 0})
	}
	g, err := m.InsertNode(goal)
	if err != nil {
		return err
	}
	if !m.connected(start, goal) {
		return fmt.Errorf("%w: %v→%v in different regions", ErrNoPath, start, goal)
	}
	if err := m.connectPair(s, g); err != nil {
		return err
	}

	m.cfg.Metrics.search(searchAbstract)
	p, err := search.AStar[View](m, m.TopView(), s, g)
	if err != nil {
		return err
	}
	if !p.Found() {
		return fmt.Errorf("%w: %v→%v", ErrNoPath, start, goal)
	}
	return fn(s, g, p)
}

// connectPair links two inserted nodes directly at every level whose
// cluster contains both. Without it, endpoints sharing a cluster that has no
// entrance at that level could not see each other.
func (m *Map) connectPair(s, g int) error {
	si, err := m.graph.NodeInfo(s)
	if err != nil {
		return err
	}
	c, err := m.FindClusterForPosition(si.Position)
	if err != nil {
		return err
	}
	gi, err := m.graph.NodeInfo(g)
	if err != nil {
		return err
	}
	if c.Contains(gi.Position) {
		if _, err := m.connectInCluster(c, s, g); err != nil {
			return err
		}
	}
	for level := 2; level <= m.cfg.MaxLevel; level++ {
		same, err := m.BelongToSameCluster(s, g, level)
		if err != nil {
			return err
		}
		if !same {
			continue
		}
		box, err := m.ClusterBox(si.Position, level)
		if err != nil {
			return err
		}
		if _, err := m.AddEdgesBetweenAbstractNodes(NewView(level-1, box), s, g, level); err != nil {
			return err
		}
	}
	return nil
}

// refine appends to out the cells of the abstract step u→v taken at level
// and adds its cost. out must already end at u's position.
func (m *Map) refine(out *Path, u, v, level int) error {
	e, err := m.visibleEdge(u, v, level)
	if err != nil {
		return err
	}
	ui, err := m.graph.NodeInfo(u)
	if err != nil {
		return err
	}
	vi, err := m.graph.NodeInfo(v)
	if err != nil {
		return err
	}

	switch {
	case e.Inter:
		out.Positions = append(out.Positions, vi.Position)
		out.Cost += e.Cost
		return nil

	case e.Level == 1:
		// Level-1 edges come from connectInCluster: search the same window.
		c, err := m.FindClusterForPosition(ui.Position)
		if err != nil {
			return err
		}
		m.cfg.Metrics.search(searchGrid)
		p, err := m.grid.ShortestPath(c.Bounds(), ui.Position, vi.Position)
		if err != nil {
			return err
		}
		if !p.Found() {
			return fmt.Errorf("%w: %v→%v at level 1", ErrNoEdge, ui.Position, vi.Position)
		}
		for _, id := range p.Nodes[1:] {
			out.Positions = append(out.Positions, m.grid.Coordinate(id))
		}
		out.Cost += p.Cost
		return nil
	}

	box, err := m.ClusterBox(ui.Position, e.Level)
	if err != nil {
		return err
	}
	m.cfg.Metrics.search(searchAbstract)
	p, err := search.AStar[View](m, NewView(e.Level-1, box), u, v)
	if err != nil {
		return err
	}
	if !p.Found() {
		return fmt.Errorf("%w: %v→%v at level %d", ErrNoEdge, ui.Position, vi.Position, e.Level)
	}
	for i := 1; i < len(p.Nodes); i++ {
		if err := m.refine(out, p.Nodes[i-1], p.Nodes[i], e.Level-1); err != nil {
			return err
		}
	}
	return nil
}

// visibleEdge returns the cheapest edge u→v visible at level.
func (m *Map) visibleEdge(u, v, level int) (abstract.Edge, error) {
	edges, err := m.graph.Edges(u)
	if err != nil {
		return abstract.Edge{}, err
	}
	best, found := abstract.Edge{}, false
	for _, e := range edges {
		if e.Target != v || !visible(e, level) {
			continue
		}
		if !found || e.Cost < best.Cost {
			best, found = e, true
		}
	}
	if !found {
		return abstract.Edge{}, fmt.Errorf("%w: %d→%d at level %d", ErrNoEdge, u, v, level)
	}
	return best, nil
}
