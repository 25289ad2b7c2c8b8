// Package algorithms implements the three search procedures that run on a
// gridgraph.Board, or on any other type satisfying Graph:
//
//   - Traversal
//     – BFS (Breadth-First Search), unit edge cost
//
//   - Shortest paths
//     – Dijkstra, non-negative edge costs
//     – A*, Dijkstra guided by a caller-supplied Heuristic
//
//   - Path reconstruction
//     – ReconstructPath walks a predecessor map from goal back to start
//     – PathCost sums edge costs along a path
//
// Every search returns a Result holding the predecessor map (CameFrom, with
// the start mapped to itself), the cost-so-far map (weighted searches only),
// and the order in which nodes were expanded. All searches stop as soon as
// the goal is popped from the frontier; an unreachable goal is not an error,
// ReconstructPath simply reports ok == false.
//
// Determinism:
//
//	Neighbour order comes from Graph.Neighbors and the frontier breaks
//	priority ties by insertion order, so identical inputs always give
//	identical maps and paths.
//
// Complexity (V = reachable nodes, E = edges among them):
//
//   - BFS:          O(V + E) time, O(V) memory.
//   - Dijkstra, A*: O((V + E) log V) time, O(V + E) memory (lazy decrease-key).
//
// Errors:
//
//   - ErrGraphNil      if the graph is nil.
//   - ErrHeuristicNil  if AStar is given a nil heuristic.
package algorithms
