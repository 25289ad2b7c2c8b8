package algorithms

// AStar is Dijkstra with the frontier priority of a node set to
// CostSoFar[node] + h(node, goal). With an admissible h (one that never
// overestimates the remaining cost) the returned path is as cheap as
// Dijkstra's; an inadmissible h is accepted but may yield a costlier path.
//
// Returns ErrGraphNil for a nil graph and ErrHeuristicNil for a nil h.
//
// Time complexity: O((V + E) log V), usually far fewer expansions than Dijkstra.
func AStar[L comparable](g Graph[L], h Heuristic[L], opts ...Option[L]) (*Result[L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if h == nil {
		return nil, ErrHeuristicNil
	}
	r := newRunner(g, h, buildOptions(opts))
	r.init()
	r.process()

	return r.res, nil
}
