package algorithms

import (
	"math"

	"github.com/katalvlaran/pinder/gridgraph"
)

// A Board is searchable as is.
var _ Graph[gridgraph.Location] = (*gridgraph.Board)(nil)

// Manhattan returns |dx| + |dy|. Admissible on 4-connected boards where
// every step costs at least gridgraph.BaseCost.
func Manhattan(a, b gridgraph.Location) float64 {
	return float64(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// DiagonalSqrt returns sqrt(|dx| + |dy|), the estimate used for 8-connected
// boards. It is not strictly admissible: one diagonal step away from the
// goal it returns √2 for a true cost of 1, so A* paths may be slightly
// costlier than Dijkstra's there.
func DiagonalSqrt(a, b gridgraph.Location) float64 {
	return math.Sqrt(Manhattan(a, b))
}

// HeuristicFor picks the reference heuristic for a board's movement model.
func HeuristicFor(c gridgraph.Connectivity) Heuristic[gridgraph.Location] {
	if c == gridgraph.Conn8 {
		return DiagonalSqrt
	}
	return Manhattan
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
