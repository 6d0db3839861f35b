package hpa

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/hierpath/grid"
)

// Sentinel errors returned by the hierarchical map.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to New or Build.
	ErrNilGrid = errors.New("hpa: grid is nil")

	// ErrNilGraph indicates that a nil *abstract.Graph was passed to New.
	ErrNilGraph = errors.New("hpa: abstract graph is nil")

	// ErrBadClusterSize indicates a cluster size below 1.
	ErrBadClusterSize = errors.New("hpa: cluster size must be positive")

	// ErrBadMaxLevel indicates a maximum level below 1.
	ErrBadMaxLevel = errors.New("hpa: max level must be positive")

	// ErrBadLevel indicates a level below 1 passed to a view operation.
	ErrBadLevel = errors.New("hpa: level must be at least 1")

	// ErrBadOffset indicates a cluster box offset below 1.
	ErrBadOffset = errors.New("hpa: offset must be positive")

	// ErrEmptyGroup indicates a cluster group without entrances at its level.
	// Returned only with WithStrictGroups; otherwise such groups are skipped.
	ErrEmptyGroup = errors.New("hpa: cluster group has no entrances at this level")

	// ErrNoCluster indicates that no cluster contains the requested position.
	ErrNoCluster = errors.New("hpa: no cluster contains position")

	// ErrBlocked indicates a query endpoint on a blocked cell.
	ErrBlocked = errors.New("hpa: position is blocked")

	// ErrNoPath indicates that start and goal are not connected.
	ErrNoPath = errors.New("hpa: no path between start and goal")

	// ErrNoEdge indicates that refinement met consecutive path nodes without a
	// visible edge between them.
	ErrNoEdge = errors.New("hpa: no visible edge between path nodes")
)

// View is the immutable query context of a neighbour query: the abstraction
// level whose edges are visible and the cell box the targets must lie in.
//
// Every neighbour and heuristic call receives its View explicitly, so a
// search started from inside another search (as the edge builder does) can
// never observe a context it did not set.
type View struct {
	Level int
	Box   grid.Rect
}

// NewView returns a View at level restricted to box.
func NewView(level int, box grid.Rect) View {
	return View{Level: level, Box: box}
}

// AtLevel returns a copy of v at another level, keeping the box.
func (v View) AtLevel(level int) View {
	v.Level = level
	return v
}

// InBox returns a copy of v restricted to box, keeping the level.
func (v View) InBox(box grid.Rect) View {
	v.Box = box
	return v
}

// Path is a query result: cell positions from start to goal and total cost.
type Path struct {
	Positions []grid.Position
	Cost      int
}

// Options configures a Map.
//
// ClusterSize  – side of a level-1 cluster in cells. Default 10.
// MaxLevel     – highest abstraction level. Default 2.
// StrictGroups – fail the build on a cluster group with no entrances.
// Logger       – structured logger. Default zap.NewNop().
// Metrics      – optional Prometheus collectors. Default nil (disabled).
type Options struct {
	ClusterSize  int
	MaxLevel     int
	StrictGroups bool
	Logger       *zap.Logger
	Metrics      *Metrics
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// WithClusterSize sets the level-1 cluster side. Panics if n < 1.
func WithClusterSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadClusterSize.Error())
		}
		o.ClusterSize = n
	}
}

// WithMaxLevel sets the highest abstraction level. Panics if n < 1.
func WithMaxLevel(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadMaxLevel.Error())
		}
		o.MaxLevel = n
	}
}

// WithStrictGroups makes CreateHierarchicalEdges fail with ErrEmptyGroup
// instead of skipping groups that have no entrance at their level.
func WithStrictGroups() Option {
	return func(o *Options) {
		o.StrictGroups = true
	}
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// DefaultOptions returns ClusterSize=10, MaxLevel=2, lenient groups,
// a no-op logger and no metrics.
func DefaultOptions() Options {
	return Options{
		ClusterSize: 10,
		MaxLevel:    2,
		Logger:      zap.NewNop(),
	}
}
