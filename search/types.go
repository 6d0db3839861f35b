// Package search defines the neighbour contract consumed by the A* routine
// and the configuration options accepted by AStar.
package search

import (
	"errors"
)

// NoPath is the Path.Cost reported when the goal is unreachable.
const NoPath = -1

// Sentinel errors returned by AStar.
var (
	// ErrNilGraph indicates that a nil Graph was passed to AStar.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNodeOutOfRange indicates a start or goal id outside [0, Size()).
	ErrNodeOutOfRange = errors.New("search: node id out of range")

	// ErrNegativeCost indicates that a neighbour was reported with a negative cost.
	ErrNegativeCost = errors.New("search: negative neighbour cost")

	// ErrExpansionLimit indicates that MaxExpansions was reached before the goal.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrBadMaxExpansions indicates a negative MaxExpansions value.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")
)

// Neighbour is a (target, cost) pair produced by a neighbour query.
type Neighbour struct {
	ID   int // target node id
	Cost int // non-negative step cost
}

// Graph is the capability A* needs from anything it searches.
//
// C is the query context threaded through every call. A grid uses a
// rectangular window; the hierarchical map uses a level-scoped view. The
// context is passed by value so nested searches never observe each other's
// state.
type Graph[C any] interface {
	// Size returns the number of addressable node ids; valid ids are [0, Size()).
	Size() int
	// Neighbours lists the edges leaving id that are visible under ctx.
	Neighbours(ctx C, id int) ([]Neighbour, error)
	// Heuristic estimates the cost from a to b. It must never overestimate.
	Heuristic(ctx C, a, b int) int
}

// Path is the result of a search.
//
// Nodes runs from start to goal inclusive. Cost is the total step cost or
// NoPath when the goal is unreachable, in which case Nodes is nil.
// Expanded counts the nodes taken off the open list.
type Path struct {
	Nodes    []int
	Cost     int
	Expanded int
}

// Found reports whether the search reached its goal.
func (p Path) Found() bool { return p.Cost != NoPath }

// Options configures AStar.
//
// MaxExpansions – stop with ErrExpansionLimit after this many expansions.
//
//	Zero means unlimited (default).
type Options struct {
	MaxExpansions int
}

// Option represents a functional option for configuring AStar.
type Option func(*Options)

// WithMaxExpansions caps the number of expanded nodes.
// Panics on a negative value, like the other option constructors in this module.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// DefaultOptions returns the defaults: unlimited expansions.
func DefaultOptions() Options {
	return Options{MaxExpansions: 0}
}
