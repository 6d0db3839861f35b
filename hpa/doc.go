// Package hpa builds and queries a multi-level hierarchical abstraction over
// a grid, so long-distance paths are searched on a small abstract graph and
// refined back to cells only where they are used.
//
// Overview:
//
//   - Level 1 tiles the grid with ClusterSize×ClusterSize clusters. Each
//     opening on a shared border becomes one or two entrances; every
//     entrance cell becomes an abstract node.
//   - A level L cluster is a 2^(L-1)×2^(L-1) block of level-1 clusters.
//     A node's Level is the highest level whose cluster borders it lies on.
//   - Edges of all levels live in one abstract.Graph. Inter edges cross a
//     border between facing cells; intra edges summarize a path inside a
//     cluster at the level they were built for.
//
// View:
//
//   - A View (level, box) selects which part of the graph a search sees:
//     intra edges of exactly that level, inter edges of that level or above,
//     and only targets visible at the level inside the box.
//   - *Map implements search.Graph[View]. Views are values passed to every
//     call, so the builder can run a search per node pair without any
//     shared "current level" state.
//
// Building:
//
//   - Build(g, opts...) runs the full pipeline: decomposition, entrance
//     nodes, inter edges, level-1 intra edges by grid A*, then
//     CreateHierarchicalEdges for levels 2..MaxLevel.
//   - New wraps an externally prepared graph; CreateHierarchicalEdges can
//     then be called directly.
//
// Querying:
//
//   - FindAbstractPath and FindPath insert temporary nodes for the
//     endpoints, search the top level over the whole map and truncate the
//     temporaries afterwards. FindPath refines each abstract edge down to
//     grid cells.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilGraph:  missing inputs to Build/New.
//   - ErrBadLevel, ErrBadOffset: invalid box requests.
//   - ErrEmptyGroup:            a group without entrances (WithStrictGroups).
//   - ErrBlocked, ErrNoPath:    query endpoints blocked or disconnected.
//   - ErrNoEdge:                refinement met an abstract step with no edge.
//   - grid.ErrOutOfBounds and abstract.ErrNodeOutOfRange pass through wrapped.
//
// Observability:
//
//   - WithLogger attaches a *zap.Logger (default no-op): Debug per level,
//     Warn per skipped group, Info once per Build.
//   - WithMetrics attaches Prometheus collectors from NewMetrics.
//
// Thread safety:
//
//   - A Map is not safe for concurrent use. Queries add and remove
//     temporary nodes, so even read-looking calls mutate the graph.
package hpa
