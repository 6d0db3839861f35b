// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Node and edge lifecycle on the arena: AddNode/AddEdge/SetLevel/Truncate
//       and the read-side lookups Node/NodeInfo/Edges.
// Determinism:
//   - Node ids are assigned sequentially from 0.
//   - Edges() returns edges in insertion order.

package abstract

import "fmt"

// Len returns the number of nodes. Valid ids are [0, Len()).
func (g *Graph) Len() int {
	return len(g.nodes)
}

// AddNode appends a node described by info and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(info NodeInfo) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Info: info})

	return id
}

// AddEdge appends a directed edge src→dst owned by src.
//
// It does not deduplicate: adding the same conceptual edge twice stores it
// twice. Returns ErrNodeOutOfRange for unknown endpoints, ErrBadLevel for
// level < 1 and ErrNegativeCost for cost < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst, cost, level int, inter bool) error {
	if err := g.check(src); err != nil {
		return err
	}
	if err := g.check(dst); err != nil {
		return err
	}
	if level < 1 {
		return fmt.Errorf("%w: edge %d→%d level=%d", ErrBadLevel, src, dst, level)
	}
	if cost < 0 {
		return fmt.Errorf("%w: edge %d→%d cost=%d", ErrNegativeCost, src, dst, cost)
	}
	g.nodes[src].Edges = append(g.nodes[src].Edges, Edge{
		Target: dst,
		Cost:   cost,
		Level:  level,
		Inter:  inter,
	})

	return nil
}

// Node returns the arena slot for id. The pointer stays valid until the
// next AddNode or Truncate.
func (g *Graph) Node(id int) (*Node, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return &g.nodes[id], nil
}

// NodeInfo returns the descriptive info of id.
func (g *Graph) NodeInfo(id int) (NodeInfo, error) {
	if err := g.check(id); err != nil {
		return NodeInfo{}, err
	}
	return g.nodes[id].Info, nil
}

// Edges returns the outgoing edges of id in insertion order.
// The slice is shared with the graph; callers must not modify it.
func (g *Graph) Edges(id int) ([]Edge, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return g.nodes[id].Edges, nil
}

// SetLevel changes the visibility level of id.
func (g *Graph) SetLevel(id, level int) error {
	if err := g.check(id); err != nil {
		return err
	}
	if level < 1 {
		return fmt.Errorf("%w: node %d level=%d", ErrBadLevel, id, level)
	}
	g.nodes[id].Info.Level = level

	return nil
}

// EdgeCount returns the total number of stored edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	n := 0
	for i := range g.nodes {
		n += len(g.nodes[i].Edges)
	}
	return n
}

// Truncate drops every node with id ≥ n together with all edges that
// target a dropped node. It is how temporary query nodes are removed.
//
// Complexity: O(V + E).
func (g *Graph) Truncate(n int) error {
	if n < 0 || n > len(g.nodes) {
		return fmt.Errorf("%w: truncate to %d of %d", ErrNodeOutOfRange, n, len(g.nodes))
	}
	if n == len(g.nodes) {
		return nil
	}
	g.nodes = g.nodes[:n]
	for i := range g.nodes {
		edges := g.nodes[i].Edges
		kept := edges[:0]
		for _, e := range edges {
			if e.Target < n {
				kept = append(kept, e)
			}
		}
		g.nodes[i].Edges = kept
	}

	return nil
}

func (g *Graph) check(id int) error {
	if id < 0 || id >= len(g.nodes) {
		return fmt.Errorf("%w: id=%d len=%d", ErrNodeOutOfRange, id, len(g.nodes))
	}
	return nil
}
