// Package cluster defines the level-1 cluster model consumed by the
// hierarchy builder, together with the entrances detected on cluster borders.
package cluster

import (
	"errors"

	"github.com/katalvlaran/hierpath/grid"
)

// MaxEntranceWidth is the run length from which a border opening yields two
// transitions (one at each end) instead of a single one in the middle.
const MaxEntranceWidth = 6

// Sentinel errors for cluster decomposition.
var (
	// ErrNilGrid indicates that a nil grid was passed to Decompose.
	ErrNilGrid = errors.New("cluster: grid is nil")
	// ErrBadClusterSize indicates a cluster size below 1.
	ErrBadClusterSize = errors.New("cluster: cluster size must be positive")
	// ErrBadMaxLevel indicates a maximum level below 1.
	ErrBadMaxLevel = errors.New("cluster: max level must be positive")
)

// Orientation tells which kind of border an entrance crosses.
type Orientation int

const (
	// Vertical entrances cross a vertical border: A is left of B.
	Vertical Orientation = iota
	// Horizontal entrances cross a horizontal border: A is above B.
	Horizontal
)

// EntrancePoint references the abstract node standing for one entrance cell.
type EntrancePoint struct {
	NodeID int
}

// Cluster is a rectangular block of the grid at level 1.
//
// ClusterX and ClusterY are the cluster's coordinates in units of clusters;
// coarser levels group clusters by dividing them by 2^(level-1).
type Cluster struct {
	ID             int
	Origin         grid.Position
	Width, Height  int
	ClusterX       int
	ClusterY       int
	EntrancePoints []EntrancePoint
}

// Bounds returns the inclusive cell rectangle covered by c.
func (c *Cluster) Bounds() grid.Rect {
	return grid.Rect{
		X0: c.Origin.X,
		Y0: c.Origin.Y,
		X1: c.Origin.X + c.Width - 1,
		Y1: c.Origin.Y + c.Height - 1,
	}
}

// Contains reports whether p lies in c.
func (c *Cluster) Contains(p grid.Position) bool {
	return c.Bounds().Contains(p)
}

// AddEntrancePoint registers nodeID unless it is already present.
func (c *Cluster) AddEntrancePoint(nodeID int) {
	for _, ep := range c.EntrancePoints {
		if ep.NodeID == nodeID {
			return
		}
	}
	c.EntrancePoints = append(c.EntrancePoints, EntrancePoint{NodeID: nodeID})
}

// Entrance is one transition across a shared border: two facing open cells.
type Entrance struct {
	ID          int
	A, B        grid.Position
	ClusterA    int // id of the cluster containing A
	ClusterB    int // id of the cluster containing B
	Orientation Orientation
	// Level is the highest abstraction level whose cluster borders include
	// this border (see DetermineLevel).
	Level int
}
