package session

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for an
// algorithm outside AStar, BFS, Dijkstra.
var ErrUnknownAlgorithm = errors.New("session: unknown algorithm")

// Algorithm selects the search Run executes.
type Algorithm int

const (
	AStar Algorithm = iota
	BFS
	Dijkstra
)

// Algorithms lists every Algorithm in menu order.
var Algorithms = []Algorithm{AStar, BFS, Dijkstra}

// String returns the lower-case identifier used in flags and config files.
func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case BFS:
		return "bfs"
	case Dijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Title returns the display name ("A*", "BFS", "Dijkstra").
func (a Algorithm) Title() string {
	switch a {
	case AStar:
		return "A*"
	case BFS:
		return "BFS"
	case Dijkstra:
		return "Dijkstra"
	default:
		return a.String()
	}
}

// ParseAlgorithm accepts "astar", "a*", "bfs" or "dijkstra", ignoring case.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "bfs":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// View selects which part of the last search result is drawn over the board.
type View int

const (
	// ViewPath marks the cells of the found path.
	ViewPath View = iota
	// ViewCameFrom draws, on every reached cell, an arrow towards its predecessor.
	ViewCameFrom
	// ViewGoingTo draws the opposite arrow: the direction the search went on.
	ViewGoingTo
	// ViewCost draws the normalized cost digit 0-9.
	ViewCost
)

// String returns a short identifier for the view.
func (v View) String() string {
	switch v {
	case ViewPath:
		return "path"
	case ViewCameFrom:
		return "came-from"
	case ViewGoingTo:
		return "going-to"
	case ViewCost:
		return "cost"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ErrUnknownView is returned by ParseView for an unrecognised name.
var ErrUnknownView = errors.New("session: unknown view")

// ParseView accepts the names View.String returns, ignoring case.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "path", "":
		return ViewPath, nil
	case "came-from", "camefrom":
		return ViewCameFrom, nil
	case "going-to", "goingto":
		return ViewGoingTo, nil
	case "cost":
		return ViewCost, nil
	}
	return ViewPath, fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// Overlay glyphs.
const (
	GlyphPath  = '@'
	ArrowLeft  = '<'
	ArrowUp    = '^'
	ArrowRight = '>'
	ArrowDown  = 'v'
)

// MaxCostDigit is the highest bucket NormalizedCost returns.
const MaxCostDigit = 9
