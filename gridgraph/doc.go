// Package gridgraph treats a rectangular board of cells as a graph that the
// search algorithms in package algorithms can walk.
//
// What:
//
//   - Board holds fixed dimensions, a start and a goal cell, a set of walls
//     (impassable) and a set of weighted cells (traversal cost 5 instead of 1).
//   - Neighbors enumerates the passable, in-bounds cells around a Location in
//     a fixed order (East, West, North, South, then the diagonals when Conn8
//     is enabled). The order is reversed on cells where x+y is even, which
//     makes equal-cost paths zig-zag instead of hugging one axis.
//   - Cost depends only on the destination cell.
//   - Components labels the connected regions of passable cells.
//
// Why:
//
//   - A Board satisfies algorithms.Graph[Location], so BFS, Dijkstra and A*
//     run on it without any adapter.
//   - All mutations validate their input and report failure with a bool; a
//     failed call never changes the board.
//
// Invariants:
//
//   - Start and goal, once set, are in bounds and never walls.
//   - A cell is at most one of wall, weight or empty.
//   - Clear empties walls and weights but keeps start and goal.
//
// Complexity:
//
//   - InBounds, Passable, Cost, ElementTypeAt: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Components: O(W×H×d) time, O(W×H) memory.
//
// Options:
//
//   - WithConnectivity(Conn4 | Conn8): orthogonal or orthogonal+diagonal moves.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns are not positive.
package gridgraph
