package hpa

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hierpath/abstract"
	"github.com/katalvlaran/hierpath/cluster"
	"github.com/katalvlaran/hierpath/grid"
)

// Build derives the complete hierarchy of g.
//
// Steps:
//  1. Tile g with clusters and detect border entrances (cluster.Decompose).
//  2. Create one abstract node per distinct entrance cell, at the highest
//     border level the cell sits on, and register it with its cluster.
//  3. Link the two cells of every entrance with inter edges of cost
//     g.UnitCost in both directions at the entrance level.
//  4. Link every pair of entrance nodes of a cluster with a level-1 intra
//     edge when grid A* connects them inside the cluster.
//  5. CreateHierarchicalEdges for levels 2..MaxLevel.
//
// Returns ErrNilGrid, ErrBadMaxLevel for a level whose cluster side
// overflows, or any error from the steps above.
func Build(g *grid.Grid, opts ...Option) (*Map, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := CheckLevels(cfg.ClusterSize, cfg.MaxLevel); err != nil {
		return nil, err
	}

	clusters, entrances, err := cluster.Decompose(g, cfg.ClusterSize, cfg.MaxLevel)
	if err != nil {
		return nil, fmt.Errorf("hpa: decompose: %w", err)
	}

	graph := abstract.NewGraph()
	nodeAt := make(map[grid.Position]int, 2*len(entrances))
	place := func(p grid.Position, clusterID, level int) (int, error) {
		if id, ok := nodeAt[p]; ok {
			info, err := graph.NodeInfo(id)
			if err != nil {
				return 0, err
			}
			if level > info.Level {
				if err := graph.SetLevel(id, level); err != nil {
					return 0, err
				}
			}
			return id, nil
		}
		id := graph.AddNode(abstract.NodeInfo{Position: p, Level: level, ClusterID: clusterID})
		nodeAt[p] = id
		clusters[clusterID].AddEntrancePoint(id)
		return id, nil
	}

	for _, e := range entrances {
		a, err := place(e.A, e.ClusterA, e.Level)
		if err != nil {
			return nil, err
		}
		b, err := place(e.B, e.ClusterB, e.Level)
		if err != nil {
			return nil, err
		}
		if err := graph.AddEdge(a, b, g.UnitCost, e.Level, true); err != nil {
			return nil, err
		}
		if err := graph.AddEdge(b, a, g.UnitCost, e.Level, true); err != nil {
			return nil, err
		}
		cfg.Metrics.edges(e.Level, 2)
	}

	m, err := New(g, clusters, graph, opts...)
	if err != nil {
		return nil, err
	}
	for i := range m.clusters {
		if err := m.linkCluster(&m.clusters[i]); err != nil {
			return nil, err
		}
	}
	if err := m.CreateHierarchicalEdges(); err != nil {
		return nil, err
	}

	m.log.Info("hierarchy built",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("clusters", len(m.clusters)),
		zap.Int("entrances", len(entrances)),
		zap.Int("nodes", graph.Len()),
		zap.Int("edges", graph.EdgeCount()),
		zap.Int("max_level", m.cfg.MaxLevel))

	return m, nil
}

// linkCluster adds the level-1 intra edges between the entrances of c.
func (m *Map) linkCluster(c *cluster.Cluster) error {
	eps := c.EntrancePoints
	for i := 0; i < len(eps); i++ {
		for j := i + 1; j < len(eps); j++ {
			if _, err := m.connectInCluster(c, eps[i].NodeID, eps[j].NodeID); err != nil {
				return err
			}
		}
	}
	return nil
}

// connectInCluster runs grid A* between nodes a and b inside c and, on
// success, adds level-1 intra edges both ways.
func (m *Map) connectInCluster(c *cluster.Cluster, a, b int) (bool, error) {
	ia, err := m.graph.NodeInfo(a)
	if err != nil {
		return false, err
	}
	ib, err := m.graph.NodeInfo(b)
	if err != nil {
		return false, err
	}
	m.cfg.Metrics.search(searchGrid)
	p, err := m.grid.ShortestPath(c.Bounds(), ia.Position, ib.Position)
	if err != nil {
		return false, err
	}
	if !p.Found() {
		return false, nil
	}
	if err := m.addPair(a, b, p.Cost, 1); err != nil {
		return false, err
	}
	return true, nil
}
