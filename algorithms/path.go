package algorithms

// ReconstructPath walks cameFrom backwards from g.Goal() to g.Start() and
// returns the path in start→goal order, both ends included.
//
// ok is false, and the path nil, when some node on the way has no recorded
// predecessor (the goal was not reached). Callers must check ok: when start
// equals goal the path is the single node [start].
//
// A predecessor chain that loops without reaching the start is also reported
// as unreachable; the walk stops after len(cameFrom) steps.
func ReconstructPath[L comparable](g Graph[L], cameFrom map[L]L) ([]L, bool) {
	if g == nil {
		return nil, false
	}
	start, current := g.Start(), g.Goal()

	path := make([]L, 0)
	for current != start {
		if len(path) > len(cameFrom) {
			return nil, false
		}
		path = append(path, current)

		prev, ok := cameFrom[current]
		if !ok {
			return nil, false
		}
		current = prev
	}
	path = append(path, start)

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// PathCost sums g.Cost over consecutive steps of path. A path with fewer
// than two nodes costs 0.
func PathCost[L comparable](g Graph[L], path []L) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += g.Cost(path[i-1], path[i])
	}
	return total
}
