// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/pinder.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidDimensions indicates rows or columns are not positive.
	ErrInvalidDimensions = errors.New("gridgraph: board must have at least one row and one column")
)

// Traversal costs returned by Board.Cost.
const (
	// BaseCost is the cost of stepping onto an empty, start or goal cell.
	BaseCost = 1.0
	// WeightCost is the cost of stepping onto a weighted cell.
	WeightCost = 5.0
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, N, S.
	Conn4 Connectivity = iota
	// Conn8 adds the diagonals: NE, NW, SE, SW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Location is a cell coordinate. X grows to the east (columns), Y grows to
// the south (rows). Location is comparable and is used directly as a map key.
type Location struct {
	X, Y int
}

// Unset is the sentinel held by start and goal until they are placed.
var Unset = Location{X: -1, Y: -1}

// Add returns the component-wise sum of l and d.
func (l Location) Add(d Location) Location {
	return Location{X: l.X + d.X, Y: l.Y + d.Y}
}

// Less orders locations by X, then Y.
func (l Location) Less(o Location) bool {
	if l.X != o.X {
		return l.X < o.X
	}
	return l.Y < o.Y
}

// Key folds a non-negative location into a single integer using Szudzik's
// elegant pairing. The mapping is injective for X, Y >= 0.
func (l Location) Key() int {
	if l.X >= l.Y {
		return l.X*l.X + l.X + l.Y
	}
	return l.X + l.Y*l.Y
}

// String formats l as "(x,y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// ElementType is what a board cell displays as.
type ElementType int

const (
	Empty ElementType = iota
	Start
	Goal
	Wall
	Weight
)

var elementNames = [...]string{"EMPTY", "START", "GOAL", "WALL", "WEIGHT"}

// String returns the upper-case element name.
func (e ElementType) String() string {
	if e < 0 || int(e) >= len(elementNames) {
		return "UNKNOWN"
	}
	return elementNames[e]
}

// Glyph returns the single-character symbol used to draw the element.
func (e ElementType) Glyph() rune {
	switch e {
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Wall:
		return '#'
	case Weight:
		return ':'
	default:
		return '.'
	}
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithConnectivity selects 4- or 8-directional movement.
func WithConnectivity(c Connectivity) Option {
	return func(b *Board) {
		b.conn = c
	}
}

// Movement directions in their natural enumeration order.
var (
	dirs4 = []Location{
		{X: 1, Y: 0},  // East
		{X: -1, Y: 0}, // West
		{X: 0, Y: -1}, // North
		{X: 0, Y: 1},  // South
	}
	dirs8 = append(append([]Location(nil), dirs4...),
		Location{X: 1, Y: -1},  // North-east
		Location{X: -1, Y: -1}, // North-west
		Location{X: 1, Y: 1},   // South-east
		Location{X: -1, Y: 1},  // South-west
	)
)
