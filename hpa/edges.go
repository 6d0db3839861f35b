package hpa

import (
	"fmt"

	"github.com/tidwall/btree"
	"go.uber.org/zap"

	"github.com/katalvlaran/hierpath/search"
)

// group collects the entrance nodes of the level-1 clusters that make up one
// cluster at a coarser level.
type group struct {
	gx, gy int
	nodes  []int
}

func groupLess(a, b *group) bool {
	if a.gy != b.gy {
		return a.gy < b.gy
	}
	return a.gx < b.gx
}

// CreateHierarchicalEdges builds the edges of levels 2..MaxLevel from the
// edges of the level below.
//
// For every level L the level-1 clusters are grouped into L-clusters of
// 2^(L-1)×2^(L-1) clusters. Inside each group, every pair of entrance
// nodes visible at L is connected when a path exists between them at
// level L-1 within the group's box. Groups without such entrances are
// logged and skipped, or fail with ErrEmptyGroup under WithStrictGroups.
//
// Complexity: O(Σ_groups k² · A*) where k is the entrance count of a group.
func (m *Map) CreateHierarchicalEdges() error {
	for level := 2; level <= m.cfg.MaxLevel; level++ {
		if err := m.buildLevel(level); err != nil {
			return err
		}
	}
	return nil
}

// buildLevel creates the level edges, one group at a time in (gy, gx) order.
func (m *Map) buildLevel(level int) error {
	n := 1 << (level - 1)
	groups := btree.NewBTreeG[*group](groupLess)

	// 1. Collect the entrance nodes visible at level per group.
	for i := range m.clusters {
		c := &m.clusters[i]
		key := &group{gx: c.ClusterX / n, gy: c.ClusterY / n}
		g, ok := groups.Get(key)
		if !ok {
			g = key
			groups.Set(g)
		}
		for _, ep := range c.EntrancePoints {
			info, err := m.graph.NodeInfo(ep.NodeID)
			if err != nil {
				return err
			}
			if info.Level >= level {
				g.nodes = append(g.nodes, ep.NodeID)
			}
		}
	}

	// 2. Connect each group.
	var err error
	groups.Scan(func(g *group) bool {
		err = m.connectGroup(g, level)
		return err == nil
	})
	if err != nil {
		return err
	}

	m.log.Debug("hierarchical level built",
		zap.Int("level", level),
		zap.Int("groups", groups.Len()),
		zap.Int("edges", m.graph.EdgeCount()))

	return nil
}

// connectGroup links every pair of entrance nodes in g at level.
func (m *Map) connectGroup(g *group, level int) error {
	if len(g.nodes) == 0 {
		if m.cfg.StrictGroups {
			return fmt.Errorf("%w: level %d group (%d,%d)", ErrEmptyGroup, level, g.gx, g.gy)
		}
		m.cfg.Metrics.emptyGroup()
		m.log.Warn("cluster group has no entrances",
			zap.Int("level", level),
			zap.Int("gx", g.gx),
			zap.Int("gy", g.gy))
		return nil
	}

	first, err := m.graph.NodeInfo(g.nodes[0])
	if err != nil {
		return err
	}
	box, err := m.ClusterBox(first.Position, level)
	if err != nil {
		return err
	}
	view := NewView(level-1, box)

	// Both directions are added per pair, so each unordered pair is searched once.
	for i := 0; i < len(g.nodes); i++ {
		for j := i + 1; j < len(g.nodes); j++ {
			if _, err := m.AddEdgesBetweenAbstractNodes(view, g.nodes[i], g.nodes[j], level); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddEdgesBetweenAbstractNodes searches src→dst under view and, when a path
// exists, adds the intra edges src→dst and dst→src at level with the path
// cost. It reports whether edges were added.
//
// Nothing is added when src == dst, when dst is not visible at level, or when
// the search finds no path; none of these is an error.
func (m *Map) AddEdgesBetweenAbstractNodes(view View, src, dst, level int) (bool, error) {
	if src == dst {
		return false, nil
	}
	if _, err := m.graph.NodeInfo(src); err != nil {
		return false, err
	}
	target, err := m.graph.NodeInfo(dst)
	if err != nil {
		return false, err
	}
	if target.Level < level {
		return false, nil
	}

	m.cfg.Metrics.search(searchAbstract)
	p, err := search.AStar[View](m, view, src, dst)
	if err != nil {
		return false, fmt.Errorf("hpa: connecting %d and %d at level %d: %w", src, dst, level, err)
	}
	if !p.Found() {
		return false, nil
	}
	if err := m.addPair(src, dst, p.Cost, level); err != nil {
		return false, err
	}
	return true, nil
}

// AddEdgesToOtherEntrancesInCluster connects node id to every entrance of
// the level-1 clusters inside its level cluster, searching at level-1.
func (m *Map) AddEdgesToOtherEntrancesInCluster(id, level int) error {
	if level < 2 {
		return fmt.Errorf("%w: %d", ErrBadLevel, level)
	}
	info, err := m.graph.NodeInfo(id)
	if err != nil {
		return err
	}
	box, err := m.ClusterBox(info.Position, level)
	if err != nil {
		return err
	}
	view := NewView(level-1, box)

	for i := range m.clusters {
		c := &m.clusters[i]
		if !box.Contains(c.Origin) {
			continue
		}
		for _, ep := range c.EntrancePoints {
			if _, err := m.AddEdgesBetweenAbstractNodes(view, id, ep.NodeID, level); err != nil {
				return err
			}
		}
	}
	return nil
}

// addPair stores the intra edges a→b and b→a.
func (m *Map) addPair(a, b, cost, level int) error {
	if err := m.graph.AddEdge(a, b, cost, level, false); err != nil {
		return err
	}
	if err := m.graph.AddEdge(b, a, cost, level, false); err != nil {
		return err
	}
	m.cfg.Metrics.edges(level, 2)
	return nil
}
