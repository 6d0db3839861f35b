// SPDX-License-Identifier: MIT
// Package abstract defines the Node and Edge types of the abstract graph,
// its sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeOutOfRange - node id is not in [0, Len()).
//	ErrBadLevel       - edge or node level below 1.
//	ErrNegativeCost   - negative edge cost.
package abstract

import (
	"errors"

	"github.com/katalvlaran/hierpath/grid"
)

// Sentinel errors for abstract graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced a non-existent node id.
	ErrNodeOutOfRange = errors.New("abstract: node id out of range")

	// ErrBadLevel indicates a level below 1.
	ErrBadLevel = errors.New("abstract: level must be at least 1")

	// ErrNegativeCost indicates a negative edge cost.
	ErrNegativeCost = errors.New("abstract: edge cost must be non-negative")
)

// NodeInfo describes where a node sits in the grid and in the hierarchy.
type NodeInfo struct {
	// Position is the grid cell the node stands for.
	Position grid.Position

	// Level is the highest abstraction level at which the node is visible.
	// Entrances on coarse cluster borders are promoted by raising Level; the
	// node itself is never recreated.
	Level int

	// ClusterID is the id of the level-1 cluster containing Position.
	ClusterID int
}

// Edge is a directed edge owned by its source node.
type Edge struct {
	// Target is the destination node id.
	Target int

	// Cost is the traversal cost.
	Cost int

	// Level is the abstraction level at which the edge was synthesized.
	Level int

	// Inter marks edges that cross a cluster border between two facing
	// entrance cells. Edges computed by search inside a cluster are intra.
	Inter bool
}

// Node is an arena slot: a dense id, its descriptive info and its
// outgoing edges in insertion order.
type Node struct {
	ID    int
	Info  NodeInfo
	Edges []Edge
}

// Graph is an index-based arena of abstract nodes. Node ids are dense and
// equal to their slice index, so lookups are O(1) and edges can refer to
// targets by id without pointer cycles.
//
// Graph is not safe for concurrent mutation; synchronize externally.
type Graph struct {
	nodes []Node
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
