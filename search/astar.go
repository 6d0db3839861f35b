package search

import (
	"container/heap"
	"fmt"
)

// AStar finds a least-cost path from start to goal in g under the query
// context ctx.
//
// Returns:
//
//   - Path with Cost == NoPath (and a nil error) when goal is unreachable.
//     Unreachability is an expected outcome, not an error.
//   - err: ErrNilGraph, ErrNodeOutOfRange, ErrNegativeCost, ErrExpansionLimit,
//     or a neighbour-query error wrapped with the failing id.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and goal must lie in [0, g.Size()) (ErrNodeOutOfRange).
//
// The heuristic must be admissible for the result to be optimal; a zero
// heuristic degrades the search to uniform-cost (Dijkstra) order.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the vertices reachable under ctx.
//   - Space: O(V + E) with the lazy decrease-key heap.
func AStar[C any](g Graph[C], ctx C, start, goal int, opts ...Option) (Path, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Path{Cost: NoPath}, ErrNilGraph
	}
	n := g.Size()
	if start < 0 || start >= n {
		return Path{Cost: NoPath}, fmt.Errorf("%w: start=%d size=%d", ErrNodeOutOfRange, start, n)
	}
	if goal < 0 || goal >= n {
		return Path{Cost: NoPath}, fmt.Errorf("%w: goal=%d size=%d", ErrNodeOutOfRange, goal, n)
	}
	if start == goal {
		return Path{Nodes: []int{start}, Cost: 0}, nil
	}

	r := &runner[C]{
		g:       g,
		ctx:     ctx,
		options: cfg,
		goal:    goal,
		dist:    make(map[int]int),
		prev:    make(map[int]int),
		closed:  make(map[int]bool),
	}
	r.init(start)
	found, err := r.process()
	if err != nil {
		return Path{Cost: NoPath, Expanded: r.expanded}, err
	}
	if !found {
		return Path{Cost: NoPath, Expanded: r.expanded}, nil
	}

	return Path{Nodes: r.path(start), Cost: r.dist[goal], Expanded: r.expanded}, nil
}

// runner holds the mutable state for a single A* execution.
type runner[C any] struct {
	g        Graph[C]
	ctx      C
	options  Options
	goal     int
	dist     map[int]int  // best known cost from start
	prev     map[int]int  // predecessor on the best known path
	closed   map[int]bool // finalized nodes
	pq       nodePQ
	expanded int
}

// init seeds the open list with the start node.
func (r *runner[C]) init(start int) {
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{
		id: start,
		g:  0,
		f:  r.g.Heuristic(r.ctx, start, r.goal),
	})
}

// process pops nodes in f order until the goal is closed or the open list
// runs dry.
func (r *runner[C]) process() (bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		// Stale entry left behind by lazy decrease-key.
		if r.closed[u] || item.g > r.dist[u] {
			continue
		}
		r.closed[u] = true
		if u == r.goal {
			return true, nil
		}

		r.expanded++
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return false, fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax pushes every neighbour of u whose cost improves.
func (r *runner[C]) relax(u int) error {
	neighbours, err := r.g.Neighbours(r.ctx, u)
	if err != nil {
		return fmt.Errorf("search: failed to get neighbours of %d: %w", u, err)
	}
	for _, nb := range neighbours {
		if nb.Cost < 0 {
			return fmt.Errorf("%w: %d→%d cost=%d", ErrNegativeCost, u, nb.ID, nb.Cost)
		}
		if r.closed[nb.ID] {
			continue
		}
		cand := r.dist[u] + nb.Cost
		if old, seen := r.dist[nb.ID]; seen && cand >= old {
			continue
		}
		r.dist[nb.ID] = cand
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{
			id: nb.ID,
			g:  cand,
			f:  cand + r.g.Heuristic(r.ctx, nb.ID, r.goal),
		})
	}

	return nil
}

// path walks predecessors back from the goal.
func (r *runner[C]) path(start int) []int {
	var rev []int
	for at := r.goal; ; at = r.prev[at] {
		rev = append(rev, at)
		if at == start {
			break
		}
	}
	out := make([]int, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}

// nodeItem is an open-list entry.
type nodeItem struct {
	id int
	g  int // cost from start
	f  int // g + heuristic
}

// nodePQ is a min-heap ordered by f, then by larger g (deeper first), then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g > pq[j].g
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
