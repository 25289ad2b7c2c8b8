package algorithms

import "errors"

// Sentinel errors for search input validation.
var (
	// ErrGraphNil is returned if a nil graph is passed to a search.
	ErrGraphNil = errors.New("algorithms: graph is nil")

	// ErrHeuristicNil is returned if AStar receives a nil heuristic.
	ErrHeuristicNil = errors.New("algorithms: heuristic is nil")
)

// Graph is the contract shared by BFS, Dijkstra and A*.
// L is the location type; it must be comparable to serve as a map key.
//
// Neighbors must be deterministic for a given board state, and Cost must be
// non-negative for Dijkstra and A* to return optimal paths.
type Graph[L comparable] interface {
	Start() L
	Goal() L
	Neighbors(l L) []L
	Cost(from, to L) float64
}

// Heuristic estimates the remaining cost from a to b. It must be a pure
// function; it should never overestimate if optimal A* paths are wanted.
type Heuristic[L comparable] func(a, b L) float64

// Result holds the outcome of one search run.
//   - CameFrom: predecessor of every reached node; Start maps to itself.
//   - CostSoFar: accumulated cost from Start; nil for BFS.
//   - Order: nodes in the order they were expanded.
type Result[L comparable] struct {
	CameFrom  map[L]L
	CostSoFar map[L]float64
	Order     []L
}

// Reached reports whether l was discovered by the search.
func (r *Result[L]) Reached(l L) bool {
	_, ok := r.CameFrom[l]
	return ok
}

// PathTo reconstructs the start→goal path of g from this result.
func (r *Result[L]) PathTo(g Graph[L]) ([]L, bool) {
	return ReconstructPath(g, r.CameFrom)
}

// Options holds hooks invoked during a search.
type Options[L comparable] struct {
	// OnEnqueue is called each time a node is pushed onto the frontier.
	OnEnqueue func(l L)

	// OnVisit is called when a node is popped and expanded, including the
	// goal right before the search stops.
	OnVisit func(l L)
}

// Option configures a search via functional arguments.
type Option[L comparable] func(*Options[L])

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[L comparable]() Options[L] {
	return Options[L]{
		OnEnqueue: func(L) {},
		OnVisit:   func(L) {},
	}
}

// WithOnEnqueue registers a callback run on every frontier push.
func WithOnEnqueue[L comparable](fn func(l L)) Option[L] {
	return func(o *Options[L]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run on every expanded node.
func WithOnVisit[L comparable](fn func(l L)) Option[L] {
	return func(o *Options[L]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions[L comparable](opts []Option[L]) Options[L] {
	o := DefaultOptions[L]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
