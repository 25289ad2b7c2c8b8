package session

import (
	"math"

	"github.com/katalvlaran/pinder/gridgraph"
)

// Data is the outcome of the last search, kept for display until the board
// changes. The zero value means "nothing to show".
//
// The maps are owned by the Session; callers must treat them as read-only.
type Data struct {
	Algorithm Algorithm
	Ran       bool
	Found     bool

	// Path runs start→goal inclusive; nil when Found is false.
	Path []gridgraph.Location
	// CameFrom maps every reached cell to its predecessor.
	CameFrom map[gridgraph.Location]gridgraph.Location
	// Cost is the accumulated cost per reached cell; nil after BFS.
	Cost map[gridgraph.Location]float64
	// MaxCost is the largest value in Cost.
	MaxCost float64
	// PathCost is the total cost of Path.
	PathCost float64
	// Expanded counts the cells the search popped and expanded.
	Expanded int

	onPath map[gridgraph.Location]struct{}
}

// OnPath reports whether l lies on the found path.
func (d *Data) OnPath(l gridgraph.Location) bool {
	_, ok := d.onPath[l]
	return ok
}

// NormalizedCost maps the cost of l onto 0..MaxCostDigit as
// round(cost*9/MaxCost). ok is false when l has no recorded cost.
func (d *Data) NormalizedCost(l gridgraph.Location) (int, bool) {
	c, ok := d.Cost[l]
	if !ok {
		return 0, false
	}
	if d.MaxCost <= 0 {
		return 0, true
	}
	return int(math.Round(c * MaxCostDigit / d.MaxCost)), true
}

// Direction returns the arrow drawn on l for ViewCameFrom (pointing at the
// predecessor) or ViewGoingTo (pointing away from it). Horizontal offsets
// win over vertical ones, so diagonal steps show their east/west arrow.
// ok is false for other views, unreached cells and the start.
func (d *Data) Direction(l gridgraph.Location, v View) (rune, bool) {
	if v != ViewCameFrom && v != ViewGoingTo {
		return 0, false
	}
	prev, ok := d.CameFrom[l]
	if !ok || prev == l {
		return 0, false
	}

	var toward, away rune
	switch {
	case prev.X == l.X+1:
		toward, away = ArrowRight, ArrowLeft
	case prev.X == l.X-1:
		toward, away = ArrowLeft, ArrowRight
	case prev.Y == l.Y+1:
		toward, away = ArrowDown, ArrowUp
	case prev.Y == l.Y-1:
		toward, away = ArrowUp, ArrowDown
	default:
		return 0, false
	}
	if v == ViewCameFrom {
		return toward, true
	}
	return away, true
}

// Overlay returns the data glyph for l under view v, if any.
func (d *Data) Overlay(l gridgraph.Location, v View) (rune, bool) {
	switch v {
	case ViewPath:
		if d.OnPath(l) {
			return GlyphPath, true
		}
	case ViewCameFrom, ViewGoingTo:
		return d.Direction(l, v)
	case ViewCost:
		if n, ok := d.NormalizedCost(l); ok {
			return rune('0' + n), true
		}
	}
	return 0, false
}

// newData builds Data from a finished search.
func newData(a Algorithm, found bool, path []gridgraph.Location,
	cameFrom map[gridgraph.Location]gridgraph.Location,
	cost map[gridgraph.Location]float64, expanded int,
) Data {
	d := Data{
		Algorithm: a,
		Ran:       true,
		Found:     found,
		Path:      path,
		CameFrom:  cameFrom,
		Cost:      cost,
		Expanded:  expanded,
		onPath:    make(map[gridgraph.Location]struct{}, len(path)),
	}
	for _, c := range cost {
		if c > d.MaxCost {
			d.MaxCost = c
		}
	}
	for _, l := range path {
		d.onPath[l] = struct{}{}
	}
	return d
}
