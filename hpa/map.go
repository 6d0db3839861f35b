package hpa

import (
	"fmt"
	"math"
	"math/bits"

	"go.uber.org/zap"

	"github.com/katalvlaran/hierpath/abstract"
	"github.com/katalvlaran/hierpath/cluster"
	"github.com/katalvlaran/hierpath/grid"
)

// Map is the hierarchical abstraction of one grid.
//
// It is not safe for concurrent use: building and querying both add nodes
// or edges to the underlying graph.
type Map struct {
	grid     *grid.Grid
	graph    *abstract.Graph
	clusters []cluster.Cluster
	byCoord  map[[2]int]int // (ClusterX, ClusterY) → index in clusters
	regions  []int          // grid.Components labels by cell id
	cfg      Options
	log      *zap.Logger
}

// New wraps an existing grid, level-1 clusters and abstract graph.
//
// The clusters are copied; their EntrancePoints must reference nodes of
// graph. Returns ErrBadMaxLevel when the top cluster side overflows an int. No edges are created: call CreateHierarchicalEdges once the level-1
// edges are in place, or use Build to derive everything from the grid.
func New(g *grid.Grid, clusters []cluster.Cluster, graph *abstract.Graph, opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if graph == nil {
		return nil, ErrNilGraph
	}
	if err := CheckLevels(cfg.ClusterSize, cfg.MaxLevel); err != nil {
		return nil, err
	}

	m := &Map{
		grid:     g,
		graph:    graph,
		clusters: make([]cluster.Cluster, len(clusters)),
		byCoord:  make(map[[2]int]int, len(clusters)),
		cfg:      cfg,
		log:      cfg.Logger,
	}
	for i, c := range clusters {
		c.EntrancePoints = append([]cluster.EntrancePoint(nil), c.EntrancePoints...)
		for _, ep := range c.EntrancePoints {
			if _, err := graph.NodeInfo(ep.NodeID); err != nil {
				return nil, fmt.Errorf("hpa: cluster %d entrance: %w", c.ID, err)
			}
		}
		m.clusters[i] = c
		m.byCoord[[2]int{c.ClusterX, c.ClusterY}] = i
	}
	m.regions, _ = g.Components()

	return m, nil
}

// Grid returns the underlying grid.
func (m *Map) Grid() *grid.Grid { return m.grid }

// Graph returns the underlying abstract graph for low-level inspection and
// mutation (AddEdge, Edges).
func (m *Map) Graph() *abstract.Graph { return m.graph }

// Clusters returns the level-1 clusters. The slice is shared with the map.
func (m *Map) Clusters() []cluster.Cluster { return m.clusters }

// ClusterSize returns the side of a level-1 cluster.
func (m *Map) ClusterSize() int { return m.cfg.ClusterSize }

// MaxLevel returns the highest abstraction level.
func (m *Map) MaxLevel() int { return m.cfg.MaxLevel }

// Offset returns the side of a cluster at level: ClusterSize·2^(level-1).
// Levels below 1 are treated as 1; sides beyond math.MaxInt saturate.
func (m *Map) Offset(level int) int {
	if level < 1 {
		level = 1
	}
	if !offsetFits(m.cfg.ClusterSize, level) {
		return math.MaxInt
	}
	return m.cfg.ClusterSize << (level - 1)
}

// CheckLevels returns ErrBadClusterSize or ErrBadMaxLevel unless every
// level up to maxLevel has a cluster side representable as an int.
func CheckLevels(clusterSize, maxLevel int) error {
	if clusterSize < 1 {
		return fmt.Errorf("%w: %d", ErrBadClusterSize, clusterSize)
	}
	if maxLevel < 1 {
		return fmt.Errorf("%w: %d", ErrBadMaxLevel, maxLevel)
	}
	if !offsetFits(clusterSize, maxLevel) {
		return fmt.Errorf("%w: %d overflows cluster size %d", ErrBadMaxLevel, maxLevel, clusterSize)
	}
	return nil
}

func offsetFits(clusterSize, level int) bool {
	return level-1 < bits.UintSize-bits.Len(uint(clusterSize))
}

// TopView returns the view used for top-level queries: MaxLevel over the
// whole map.
func (m *Map) TopView() View {
	return NewView(m.cfg.MaxLevel, m.grid.Bounds())
}

// Box returns the cell box with top-left corner (x, y) and side offset,
// clamped to the grid. Returns grid.ErrOutOfBounds if (x, y) is outside the
// grid and ErrBadOffset if offset < 1.
func (m *Map) Box(x, y, offset int) (grid.Rect, error) {
	if !m.grid.InBounds(x, y) {
		return grid.Rect{}, fmt.Errorf("%w: (%d,%d)", grid.ErrOutOfBounds, x, y)
	}
	if offset < 1 {
		return grid.Rect{}, fmt.Errorf("%w: %d", ErrBadOffset, offset)
	}
	return grid.Rect{
		X0: x,
		Y0: y,
		X1: x + min(m.grid.Width-1-x, offset-1),
		Y1: y + min(m.grid.Height-1-y, offset-1),
	}, nil
}

// ClusterBox returns the box of the level cluster containing pos. The box
// is aligned to multiples of Offset(level) and clamped to the grid; above
// MaxLevel it covers the whole map.
func (m *Map) ClusterBox(pos grid.Position, level int) (grid.Rect, error) {
	if !m.grid.InBounds(pos.X, pos.Y) {
		return grid.Rect{}, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, pos)
	}
	if level < 1 {
		return grid.Rect{}, fmt.Errorf("%w: %d", ErrBadLevel, level)
	}
	if level > m.cfg.MaxLevel {
		return m.grid.Bounds(), nil
	}
	offset := m.Offset(level)
	return m.Box(pos.X/offset*offset, pos.Y/offset*offset, offset)
}

// FindClusterForPosition returns the level-1 cluster containing pos.
func (m *Map) FindClusterForPosition(pos grid.Position) (*cluster.Cluster, error) {
	if !m.grid.InBounds(pos.X, pos.Y) {
		return nil, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, pos)
	}
	key := [2]int{pos.X / m.cfg.ClusterSize, pos.Y / m.cfg.ClusterSize}
	if i, ok := m.byCoord[key]; ok && m.clusters[i].Contains(pos) {
		return &m.clusters[i], nil
	}
	// Clusters supplied through New need not follow the regular tiling.
	for i := range m.clusters {
		if m.clusters[i].Contains(pos) {
			return &m.clusters[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNoCluster, pos)
}

// BelongToSameCluster reports whether nodes a and b fall in the same
// cluster box at level.
func (m *Map) BelongToSameCluster(a, b, level int) (bool, error) {
	ia, err := m.graph.NodeInfo(a)
	if err != nil {
		return false, err
	}
	ib, err := m.graph.NodeInfo(b)
	if err != nil {
		return false, err
	}
	ba, err := m.ClusterBox(ia.Position, level)
	if err != nil {
		return false, err
	}
	bb, err := m.ClusterBox(ib.Position, level)
	if err != nil {
		return false, err
	}
	return ba == bb, nil
}

// connected reports whether a and b lie in the same grid region.
func (m *Map) connected(a, b grid.Position) bool {
	ra := m.regions[m.grid.ID(a)]
	return ra >= 0 && ra == m.regions[m.grid.ID(b)]
}
