// Package pinder is a playground for path-finding on grids.
//
// A board of cells with a start, a goal, walls and weighted cells is searched
// with breadth-first search, Dijkstra or A*, and the result is drawn over the
// board: the path, the direction each cell was reached from or went on to,
// or the accumulated cost as a 0-9 digit.
//
// Layout:
//
//	gridgraph/   Board: dimensions, start/goal, walls, weights, neighbours, costs
//	frontier/    stable min-priority queue used by Dijkstra and A*
//	algorithms/  generic BFS, Dijkstra, A*, path reconstruction, heuristics
//	session/     a Board plus the last search result; edits clear stale data
//	tui/         bubbletea front end with a board pane and a command menu
//	config/      YAML settings and validation
//	logging/     slog logger construction
//	cmd/pinder/  the CLI
//
// Quick example:
//
//	b, _ := gridgraph.NewBoard(3, 3)
//	b.SetStart(gridgraph.Location{X: 0, Y: 0})
//	b.SetGoal(gridgraph.Location{X: 2, Y: 2})
//	res, _ := algorithms.Dijkstra[gridgraph.Location](b)
//	path, ok := res.PathTo(b)
//
//	go install github.com/katalvlaran/pinder/cmd/pinder@latest
package pinder
