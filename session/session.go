// Package session is the command layer behind pinder's front ends.
//
// A Session owns one gridgraph.Board and the result of the last search run
// on it. Front ends (the terminal UI and the --print mode) translate user
// input into Session calls and draw the board with Glyph.
//
// Every successful board edit discards the previous search result, so the
// overlay never describes a board that no longer exists.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/pinder/algorithms"
	"github.com/katalvlaran/pinder/gridgraph"
	"github.com/katalvlaran/pinder/logging"
)

// ErrBoardNil is returned by New for a nil board.
var ErrBoardNil = errors.New("session: board is nil")

type location = gridgraph.Location

// Session couples a board with the last search result. Not safe for
// concurrent use.
type Session struct {
	board *gridgraph.Board
	data  Data
	rng   *rand.Rand
	log   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the source used by Randomize; nil keeps the time-seeded default.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// New wraps board in a Session.
func New(board *gridgraph.Board, opts ...Option) (*Session, error) {
	if board == nil {
		return nil, ErrBoardNil
	}
	s := &Session{
		board: board,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "session")

	return s, nil
}

// Board returns the underlying board. Mutating it directly bypasses the
// stale-data bookkeeping; use the Session edit methods instead.
func (s *Session) Board() *gridgraph.Board { return s.board }

// Data returns the last search result.
func (s *Session) Data() *Data { return &s.data }

// ClearData drops the last search result.
func (s *Session) ClearData() { s.data = Data{} }

// Run executes algorithm a on the board, stores the result and reports
// whether a path was found. Previous data is cleared first, so a failed
// search leaves the reached-cell maps but no path.
func (s *Session) Run(a Algorithm) bool {
	s.ClearData()

	b := s.board
	if b.Start() == gridgraph.Unset || b.Goal() == gridgraph.Unset {
		s.log.Warn("search skipped: start or goal not placed", "algorithm", a.String())
		return false
	}

	var (
		res *algorithms.Result[location]
		err error
	)
	switch a {
	case BFS:
		res, err = algorithms.BFS[location](b)
	case Dijkstra:
		res, err = algorithms.Dijkstra[location](b)
	case AStar:
		res, err = algorithms.AStar[location](b, algorithms.HeuristicFor(b.Connectivity()))
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	if err != nil {
		s.log.Error("search failed", "algorithm", a.String(), "error", err)
		return false
	}

	path, found := res.PathTo(b)
	s.data = newData(a, found, path, res.CameFrom, res.CostSoFar, len(res.Order))
	if found {
		s.data.PathCost = algorithms.PathCost[location](b, path)
	}

	s.log.Info("search finished",
		"algorithm", a.String(),
		"found", found,
		"expanded", s.data.Expanded,
		"reached", len(res.CameFrom),
		"path_len", len(path),
		"cost", s.data.PathCost,
	)
	return found
}

// RunBFS is Run(BFS).
func (s *Session) RunBFS() bool { return s.Run(BFS) }

// RunDijkstra is Run(Dijkstra).
func (s *Session) RunDijkstra() bool { return s.Run(Dijkstra) }

// RunAStar is Run(AStar).
func (s *Session) RunAStar() bool { return s.Run(AStar) }

// edit applies a board mutation and clears stale data when it succeeds.
func (s *Session) edit(op string, l location, fn func(location) bool) bool {
	if !fn(l) {
		s.log.Debug("edit rejected", "op", op, "at", l.String())
		return false
	}
	s.ClearData()
	s.log.Debug("edit applied", "op", op, "at", l.String())
	return true
}

// SetStart moves the start to l.
func (s *Session) SetStart(l location) bool { return s.edit("start", l, s.board.SetStart) }

// SetGoal moves the goal to l.
func (s *Session) SetGoal(l location) bool { return s.edit("goal", l, s.board.SetGoal) }

// ToggleWall adds or removes a wall at l.
func (s *Session) ToggleWall(l location) bool { return s.edit("wall", l, s.board.ToggleWall) }

// ToggleWeight adds or removes a weight at l.
func (s *Session) ToggleWeight(l location) bool { return s.edit("weight", l, s.board.ToggleWeight) }

// SetEmpty clears the wall or weight at l.
func (s *Session) SetEmpty(l location) bool { return s.edit("empty", l, s.board.SetEmpty) }

// Reset removes all walls and weights and the search result. Start and goal stay.
func (s *Session) Reset() {
	s.board.Clear()
	s.ClearData()
	s.log.Debug("board reset")
}

// Randomize refills the board with a random start, goal, walls and weights.
func (s *Session) Randomize() {
	s.board.Randomize(s.rng)
	s.ClearData()
	s.log.Debug("board randomized",
		"start", s.board.Start().String(),
		"goal", s.board.Goal().String(),
		"walls", len(s.board.Walls()),
		"weights", len(s.board.Weights()),
	)
}

// Glyph returns the character drawn at l under view v. Start and goal always
// show; otherwise the data overlay, when present, replaces the cell glyph.
func (s *Session) Glyph(l location, v View) rune {
	et := s.board.ElementTypeAt(l)
	if et == gridgraph.Start || et == gridgraph.Goal {
		return et.Glyph()
	}
	if r, ok := s.data.Overlay(l, v); ok {
		return r
	}
	return et.Glyph()
}

// Render draws the whole board under view v, one row per line.
func (s *Session) Render(v View) string {
	var sb strings.Builder
	for y := 0; y < s.board.Rows(); y++ {
		for x := 0; x < s.board.Columns(); x++ {
			sb.WriteRune(s.Glyph(location{X: x, Y: y}, v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Status summarises the last search for a status line; empty if none ran.
func (s *Session) Status() string {
	d := &s.data
	if !d.Ran {
		return ""
	}
	if !d.Found {
		return fmt.Sprintf("%s: no path (%d expanded)", d.Algorithm.Title(), d.Expanded)
	}
	return fmt.Sprintf("%s: path found (cost %g, %d steps, %d expanded)",
		d.Algorithm.Title(), d.PathCost, len(d.Path)-1, d.Expanded)
}
