// Package search provides a generic A* shortest-path routine over any type
// that satisfies the Graph[C] neighbour contract.
//
// Overview:
//
//   - A Graph reports its id space (Size), the neighbours visible from a node
//     under a query context, and an admissible heuristic under that context.
//   - The context type C is chosen by the graph. *grid.Grid uses a grid.Rect
//     window; *hpa.Map uses an hpa.View (abstraction level + cluster box).
//   - The same AStar therefore searches concrete grids and every level of the
//     hierarchical abstraction, including from inside the abstraction builder.
//
// Result:
//
//   - Path.Nodes lists ids from start to goal inclusive.
//   - Path.Cost is the total cost, or NoPath (-1) when the goal is unreachable.
//     An unreachable goal is not an error.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the visible subgraph.
//   - Space: O(V + E) ("lazy decrease-key": duplicates are pushed and stale
//     entries skipped on pop).
//
// Errors (sentinel):
//
//   - ErrNilGraph:        nil graph.
//   - ErrNodeOutOfRange:  start or goal outside [0, Size()).
//   - ErrNegativeCost:    a neighbour was reported with cost < 0.
//   - ErrExpansionLimit:  WithMaxExpansions cap exceeded.
//
// Thread safety:
//
//   - AStar keeps all state in a per-call runner. It is safe to call
//     concurrently as long as the Graph itself tolerates concurrent reads.
package search
