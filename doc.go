// Package hierpath is a hierarchical pathfinding toolkit for 2-D navigation
// grids: it abstracts a grid into clusters, entrances and multi-level
// abstract edges so long routes are planned on a small graph and refined to
// cells only where needed.
//
// What is inside?
//
//	grid/     — occupancy grid, tile movement models (tile, octile,
//	            octile_unicost), admissible heuristics, connected regions
//	search/   — generic A* over any Graph[C] with a per-call query context
//	abstract/ — arena graph of abstract nodes and level-tagged edges
//	cluster/  — level-1 cluster tiling and border entrance detection
//	hpa/      — the hierarchical map: View-scoped neighbour queries, the
//	            hierarchical edge builder, Build and path queries
//	config/   — YAML map descriptions turned into grids and maps
//
// Quick example:
//
//	g, _ := grid.FromStrings(rows, grid.DefaultOptions())
//	m, _ := hpa.Build(g, hpa.WithClusterSize(10), hpa.WithMaxLevel(2))
//	p, err := m.FindPath(grid.Position{X: 0, Y: 0}, grid.Position{X: 99, Y: 99})
//
// Observability is opt-in: hpa.WithLogger takes a *zap.Logger and
// hpa.WithMetrics takes collectors registered on a Prometheus registry.
//
// A runnable walkthrough lives in examples/:
//
//	go run ./examples
package hierpath
