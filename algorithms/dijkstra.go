package algorithms

import "github.com/katalvlaran/pinder/frontier"

// # Dijkstra
//
// Steps:
//  1. Initialize: CostSoFar[start] = 0, CameFrom[start] = start,
//     push (start, 0) onto the frontier.
//  2. Loop until the frontier is empty:
//     2.1 Pop the entry with the smallest priority.
//     2.2 Skip it if a cheaper route to the node was recorded after the
//     entry was pushed (stale entry, lazy decrease-key).
//     2.3 Record the node in Order, invoke OnVisit, stop if it is the goal.
//     2.4 Relax every neighbour: newCost = CostSoFar[current] + Cost(current, next).
//     If next is unseen or newCost is strictly lower, update CostSoFar and
//     CameFrom and push next with priority newCost (+ heuristic for A*).
//
// Time complexity: O((V + E) log V)
// Memory usage:    O(V + E)

// Dijkstra computes cheapest paths from g.Start() using Graph.Cost,
// stopping early when g.Goal() is expanded. Returns ErrGraphNil for a nil graph.
func Dijkstra[L comparable](g Graph[L], opts ...Option[L]) (*Result[L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	r := newRunner(g, nil, buildOptions(opts))
	r.init()
	r.process()

	return r.res, nil
}

// queued is a frontier entry: the node plus the cost it was pushed with.
type queued[L comparable] struct {
	loc  L
	cost float64
}

// runner holds the mutable state for a single Dijkstra or A* execution.
type runner[L comparable] struct {
	graph     Graph[L]
	heuristic Heuristic[L] // nil for Dijkstra
	opts      Options[L]
	goal      L
	pq        *frontier.Queue[queued[L]]
	res       *Result[L]
}

func newRunner[L comparable](g Graph[L], h Heuristic[L], opts Options[L]) *runner[L] {
	return &runner[L]{
		graph:     g,
		heuristic: h,
		opts:      opts,
		goal:      g.Goal(),
		pq:        frontier.New[queued[L]](0),
		res: &Result[L]{
			CameFrom:  make(map[L]L),
			CostSoFar: make(map[L]float64),
		},
	}
}

// init records the start node and pushes it with priority 0.
func (r *runner[L]) init() {
	start := r.graph.Start()
	r.res.CameFrom[start] = start
	r.res.CostSoFar[start] = 0
	r.push(start, 0, 0)
}

// process is the main loop; it returns when the frontier is exhausted or
// the goal has been expanded.
func (r *runner[L]) process() {
	for !r.pq.Empty() {
		item, _ := r.pq.Get()
		current := item.loc

		// A cheaper entry for this node was pushed after this one.
		if item.cost > r.res.CostSoFar[current] {
			continue
		}

		r.res.Order = append(r.res.Order, current)
		r.opts.OnVisit(current)

		// Early exit
		if current == r.goal {
			return
		}
		r.relax(current)
	}
}

// relax tries to improve the recorded cost of every neighbour of current.
func (r *runner[L]) relax(current L) {
	base := r.res.CostSoFar[current]
	for _, next := range r.graph.Neighbors(current) {
		newCost := base + r.graph.Cost(current, next)

		if old, seen := r.res.CostSoFar[next]; seen && newCost >= old {
			continue
		}
		r.res.CostSoFar[next] = newCost
		r.res.CameFrom[next] = current

		priority := newCost
		if r.heuristic != nil {
			priority += r.heuristic(next, r.goal)
		}
		r.push(next, newCost, priority)
	}
}

func (r *runner[L]) push(l L, cost, priority float64) {
	r.pq.Put(queued[L]{loc: l, cost: cost}, priority)
	r.opts.OnEnqueue(l)
}
