// Package gridgraph provides the Board type: a rectangular grid of cells with
// a start, a goal, walls and weighted cells, exposed as a graph.
package gridgraph

import (
	"sort"
	"strings"
)

// Board is the grid graph searched by BFS, Dijkstra and A*.
// Dimensions and connectivity are fixed at construction; start, goal, walls
// and weights are mutated between searches through the Set*/Toggle* methods.
//
// Board is not safe for concurrent mutation.
type Board struct {
	rows, columns int
	conn          Connectivity
	dirs          []Location

	start, goal Location

	walls   map[Location]struct{}
	weights map[Location]struct{}
}

// NewBoard constructs an empty rows×columns board with start and goal Unset.
// Returns ErrInvalidDimensions if either dimension is not positive.
// Complexity: O(1).
func NewBoard(rows, columns int, opts ...Option) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrInvalidDimensions
	}
	b := &Board{
		rows:    rows,
		columns: columns,
		conn:    Conn4,
		start:   Unset,
		goal:    Unset,
		walls:   make(map[Location]struct{}),
		weights: make(map[Location]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	// Precompute direction offsets based on connectivity
	if b.conn == Conn8 {
		b.dirs = dirs8
	} else {
		b.dirs = dirs4
	}

	return b, nil
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Columns returns the board width.
func (b *Board) Columns() int { return b.columns }

// Connectivity returns the movement model chosen at construction.
func (b *Board) Connectivity() Connectivity { return b.conn }

// Start returns the start cell, or Unset.
func (b *Board) Start() Location { return b.start }

// Goal returns the goal cell, or Unset.
func (b *Board) Goal() Location { return b.goal }

// InBounds reports whether 0 <= x < columns and 0 <= y < rows.
// Complexity: O(1).
func (b *Board) InBounds(l Location) bool {
	return l.X >= 0 && l.X < b.columns && l.Y >= 0 && l.Y < b.rows
}

// Passable reports whether l is not a wall. Bounds are not checked.
// Complexity: O(1).
func (b *Board) Passable(l Location) bool {
	_, wall := b.walls[l]
	return !wall
}

// IsStartGoal reports whether l is the start or the goal cell.
func (b *Board) IsStartGoal(l Location) bool {
	return l == b.start || l == b.goal
}

// Neighbors returns the in-bounds, passable cells adjacent to l.
//
// Generation order is East, West, North, South (then NE, NW, SE, SW under
// Conn8), reversed when l.X+l.Y is even. The reversal only changes which of
// several equal-cost paths a search settles on.
// Complexity: O(d).
func (b *Board) Neighbors(l Location) []Location {
	out := make([]Location, 0, len(b.dirs))
	for _, d := range b.dirs {
		next := l.Add(d)
		if b.InBounds(next) && b.Passable(next) {
			out = append(out, next)
		}
	}
	if (l.X+l.Y)%2 == 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// Cost returns the price of stepping from one cell onto to:
// WeightCost if to is weighted, BaseCost otherwise. from is ignored.
// Complexity: O(1).
func (b *Board) Cost(_, to Location) float64 {
	if _, ok := b.weights[to]; ok {
		return WeightCost
	}
	return BaseCost
}

// ElementTypeAt classifies l with precedence Wall > Start > Goal > Weight > Empty.
func (b *Board) ElementTypeAt(l Location) ElementType {
	if _, ok := b.walls[l]; ok {
		return Wall
	}
	switch l {
	case b.start:
		return Start
	case b.goal:
		return Goal
	}
	if _, ok := b.weights[l]; ok {
		return Weight
	}

	return Empty
}

// Walls returns the wall cells sorted by Location.Less.
func (b *Board) Walls() []Location { return sortedKeys(b.walls) }

// Weights returns the weighted cells sorted by Location.Less.
func (b *Board) Weights() []Location { return sortedKeys(b.weights) }

// String draws the board one row per line using ElementType glyphs.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns + 1))
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.columns; x++ {
			sb.WriteRune(b.ElementTypeAt(Location{X: x, Y: y}).Glyph())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func sortedKeys(set map[Location]struct{}) []Location {
	out := make([]Location, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
