package gridgraph_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pinder/gridgraph"
)

type loc = gridgraph.Location

func newBoard(t *testing.T, rows, cols int, opts ...gridgraph.Option) *gridgraph.Board {
	t.Helper()
	b, err := gridgraph.NewBoard(rows, cols, opts...)
	require.NoError(t, err)
	return b
}

//----------------------------------------------------------------------------//
// NewBoard and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewBoard_Errors verifies that NewBoard rejects non-positive dimensions.
func TestNewBoard_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 5},
		{"ZeroCols", 5, 0},
		{"NegativeRows", -1, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewBoard(tc.rows, tc.cols)
			if !errors.Is(err, gridgraph.ErrInvalidDimensions) {
				t.Errorf("NewBoard(%d,%d) error = %v; want ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNewBoard_Defaults checks the zero state of a fresh board.
func TestNewBoard_Defaults(t *testing.T) {
	b := newBoard(t, 2, 3)
	assert.Equal(t, 2, b.Rows())
	assert.Equal(t, 3, b.Columns())
	assert.Equal(t, gridgraph.Conn4, b.Connectivity())
	assert.Equal(t, gridgraph.Unset, b.Start())
	assert.Equal(t, gridgraph.Unset, b.Goal())
	assert.Empty(t, b.Walls())
	assert.Empty(t, b.Weights())
}

// TestInBounds checks InBounds on a 2-row, 3-column board.
func TestInBounds(t *testing.T) {
	b := newBoard(t, 2, 3)

	valid := []loc{{0, 0}, {2, 1}, {1, 1}}
	for _, l := range valid {
		if !b.InBounds(l) {
			t.Errorf("InBounds(%v)=false; want true", l)
		}
	}
	invalid := []loc{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, l := range invalid {
		if b.InBounds(l) {
			t.Errorf("InBounds(%v)=true; want false", l)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors and Cost Tests
//----------------------------------------------------------------------------//

// TestNeighbors_ParityOrder pins the enumeration order: E, W, N, S on odd
// cells and the reverse on even cells.
func TestNeighbors_ParityOrder(t *testing.T) {
	b := newBoard(t, 5, 5)

	// (1,2): x+y odd → natural order.
	got := b.Neighbors(loc{1, 2})
	want := []loc{{2, 2}, {0, 2}, {1, 1}, {1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(1,2) = %v; want %v", got, want)
	}

	// (2,2): x+y even → reversed.
	got = b.Neighbors(loc{2, 2})
	want = []loc{{2, 3}, {2, 1}, {1, 2}, {3, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(2,2) = %v; want %v", got, want)
	}
}

// TestNeighbors_FiltersBoundsAndWalls checks corner and wall filtering.
func TestNeighbors_FiltersBoundsAndWalls(t *testing.T) {
	b := newBoard(t, 3, 3)

	// Corner (0,0) is even: natural [E,S] reversed.
	assert.Equal(t, []loc{{0, 1}, {1, 0}}, b.Neighbors(loc{0, 0}))

	require.True(t, b.SetWall(loc{1, 0}))
	assert.Equal(t, []loc{{0, 1}}, b.Neighbors(loc{0, 0}))

	// Weighted cells stay passable.
	require.True(t, b.SetWeight(loc{0, 1}))
	assert.Equal(t, []loc{{0, 1}}, b.Neighbors(loc{0, 0}))
}

// TestNeighbors_Conn8 checks diagonal enumeration order.
func TestNeighbors_Conn8(t *testing.T) {
	b := newBoard(t, 3, 3, gridgraph.WithConnectivity(gridgraph.Conn8))

	// (1,0): odd → E, W, S, SE, SW (north side is out of bounds).
	got := b.Neighbors(loc{1, 0})
	want := []loc{{2, 0}, {0, 0}, {1, 1}, {2, 1}, {0, 1}}
	assert.Equal(t, want, got)

	// (1,1): even, all eight neighbours, reversed.
	got = b.Neighbors(loc{1, 1})
	want = []loc{{0, 2}, {2, 2}, {0, 0}, {2, 0}, {1, 2}, {1, 0}, {0, 1}, {2, 1}}
	assert.Equal(t, want, got)
}

// TestCost verifies that cost depends only on the destination cell.
func TestCost(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.True(t, b.SetWeight(loc{1, 1}))

	assert.Equal(t, gridgraph.WeightCost, b.Cost(loc{0, 1}, loc{1, 1}))
	assert.Equal(t, gridgraph.WeightCost, b.Cost(loc{2, 1}, loc{1, 1}))
	assert.Equal(t, gridgraph.BaseCost, b.Cost(loc{1, 1}, loc{1, 2}))
}

//----------------------------------------------------------------------------//
// Mutation Tests
//----------------------------------------------------------------------------//

// TestMutations_OutOfBounds verifies that every mutation rejects
// out-of-bounds locations and leaves the board unchanged.
func TestMutations_OutOfBounds(t *testing.T) {
	b := newBoard(t, 3, 3)
	before := b.String()
	out := loc{3, 0}

	ops := map[string]func(gridgraph.Location) bool{
		"SetStart":     b.SetStart,
		"SetGoal":      b.SetGoal,
		"SetWall":      b.SetWall,
		"SetWeight":    b.SetWeight,
		"SetEmpty":     b.SetEmpty,
		"ToggleWall":   b.ToggleWall,
		"ToggleWeight": b.ToggleWeight,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.False(t, op(out))
			assert.Equal(t, before, b.String())
		})
	}
	assert.Equal(t, gridgraph.Unset, b.Start())
}

// TestSetWall_RejectsStartGoal verifies walls cannot cover start or goal.
func TestSetWall_RejectsStartGoal(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.True(t, b.SetStart(loc{0, 0}))
	require.True(t, b.SetGoal(loc{2, 2}))

	assert.False(t, b.SetWall(loc{0, 0}))
	assert.False(t, b.SetWall(loc{2, 2}))
	assert.False(t, b.ToggleWall(loc{0, 0}))
	assert.False(t, b.ToggleWall(loc{2, 2}))
	assert.Empty(t, b.Walls())
}

// TestSetStartGoal_ClearsCell checks that placing start or goal empties the cell.
func TestSetStartGoal_ClearsCell(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.True(t, b.SetWall(loc{1, 1}))
	require.True(t, b.SetWeight(loc{2, 2}))

	require.True(t, b.SetStart(loc{1, 1}))
	require.True(t, b.SetGoal(loc{2, 2}))

	assert.True(t, b.Passable(loc{1, 1}))
	assert.Empty(t, b.Walls())
	assert.Empty(t, b.Weights())
	assert.Equal(t, gridgraph.Start, b.ElementTypeAt(loc{1, 1}))
	assert.Equal(t, gridgraph.Goal, b.ElementTypeAt(loc{2, 2}))
}

// TestWallWeightExclusive checks that setting one category clears the other.
func TestWallWeightExclusive(t *testing.T) {
	b := newBoard(t, 3, 3)
	l := loc{1, 1}

	require.True(t, b.SetWall(l))
	require.True(t, b.SetWeight(l))
	assert.Equal(t, gridgraph.Weight, b.ElementTypeAt(l))
	assert.Empty(t, b.Walls())

	require.True(t, b.SetWall(l))
	assert.Equal(t, gridgraph.Wall, b.ElementTypeAt(l))
	assert.Empty(t, b.Weights())

	require.True(t, b.ToggleWeight(l))
	assert.Equal(t, gridgraph.Weight, b.ElementTypeAt(l))
	require.True(t, b.ToggleWall(l))
	assert.Equal(t, gridgraph.Wall, b.ElementTypeAt(l))
	assert.Empty(t, b.Weights())

	require.True(t, b.SetEmpty(l))
	assert.Equal(t, gridgraph.Empty, b.ElementTypeAt(l))
}

// TestToggleWall_Idempotent verifies two toggles restore an empty cell.
func TestToggleWall_Idempotent(t *testing.T) {
	b := newBoard(t, 4, 4)
	l := loc{2, 1}

	require.True(t, b.ToggleWall(l))
	assert.Equal(t, []loc{l}, b.Walls())
	require.True(t, b.ToggleWall(l))
	assert.Empty(t, b.Walls())
	assert.Equal(t, gridgraph.Empty, b.ElementTypeAt(l))

	require.True(t, b.ToggleWeight(l))
	require.True(t, b.ToggleWeight(l))
	assert.Empty(t, b.Weights())
}

// TestClear_KeepsStartGoal verifies Clear leaves start and goal in place.
func TestClear_KeepsStartGoal(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.True(t, b.SetStart(loc{0, 0}))
	require.True(t, b.SetGoal(loc{2, 2}))
	require.True(t, b.SetWall(loc{1, 0}))
	require.True(t, b.SetWeight(loc{1, 1}))

	b.Clear()

	assert.Empty(t, b.Walls())
	assert.Empty(t, b.Weights())
	assert.Equal(t, loc{0, 0}, b.Start())
	assert.Equal(t, loc{2, 2}, b.Goal())
}

// TestElementTypeAt_Precedence checks Start > Goal > Weight when they overlap.
func TestElementTypeAt_Precedence(t *testing.T) {
	b := newBoard(t, 3, 3)
	require.True(t, b.SetStart(loc{1, 1}))
	require.True(t, b.SetGoal(loc{1, 1}))
	// A weight placed after start/goal is allowed and sits under them.
	require.True(t, b.SetWeight(loc{1, 1}))

	assert.Equal(t, gridgraph.Start, b.ElementTypeAt(loc{1, 1}))
	assert.Equal(t, gridgraph.Empty, b.ElementTypeAt(loc{0, 0}))
}

// TestInvariants_RandomOps applies a long random sequence of mutations and
// checks that start/goal are never walls and walls/weights never overlap.
func TestInvariants_RandomOps(t *testing.T) {
	b := newBoard(t, 6, 7)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		l := loc{rng.Intn(9) - 1, rng.Intn(8) - 1} // includes out-of-bounds
		switch rng.Intn(8) {
		case 0:
			b.SetStart(l)
		case 1:
			b.SetGoal(l)
		case 2:
			b.SetWall(l)
		case 3:
			b.SetWeight(l)
		case 4:
			b.SetEmpty(l)
		case 5:
			b.ToggleWall(l)
		case 6:
			b.ToggleWeight(l)
		default:
			if rng.Intn(50) == 0 {
				b.Clear()
			}
		}

		if b.Start() != gridgraph.Unset {
			require.True(t, b.InBounds(b.Start()))
			require.True(t, b.Passable(b.Start()), "start walled after op %d", i)
		}
		if b.Goal() != gridgraph.Unset {
			require.True(t, b.InBounds(b.Goal()))
			require.True(t, b.Passable(b.Goal()), "goal walled after op %d", i)
		}
		for _, w := range b.Weights() {
			require.True(t, b.Passable(w), "cell %v is both wall and weight", w)
		}
	}
}

//----------------------------------------------------------------------------//
// Location, Randomize and String Tests
//----------------------------------------------------------------------------//

// TestLocation_Key checks that Szudzik pairing is injective on a small square.
func TestLocation_Key(t *testing.T) {
	seen := make(map[int]loc)
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			l := loc{x, y}
			if prev, dup := seen[l.Key()]; dup {
				t.Fatalf("Key collision: %v and %v -> %d", prev, l, l.Key())
			}
			seen[l.Key()] = l
		}
	}
	assert.True(t, loc{0, 5}.Less(loc{1, 0}))
	assert.True(t, loc{1, 0}.Less(loc{1, 1}))
	assert.Equal(t, "(3,4)", loc{3, 4}.String())
}

// TestRandomize verifies determinism and the invariants of random boards.
func TestRandomize(t *testing.T) {
	a := newBoard(t, 16, 16)
	b := newBoard(t, 16, 16)
	a.Randomize(rand.New(rand.NewSource(42)))
	b.Randomize(rand.New(rand.NewSource(42)))

	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.Start(), a.Goal())
	assert.True(t, a.Passable(a.Start()))
	assert.True(t, a.Passable(a.Goal()))
	assert.LessOrEqual(t, len(a.Walls()), 16*16/6)
	assert.LessOrEqual(t, len(a.Weights()), 16*16/4)

	// A second fill replaces the first one entirely.
	a.Randomize(rand.New(rand.NewSource(43)))
	assert.NotEqual(t, b.String(), a.String())
}

// TestString draws a small board with every glyph.
func TestString(t *testing.T) {
	b := newBoard(t, 2, 3)
	require.True(t, b.SetStart(loc{0, 0}))
	require.True(t, b.SetGoal(loc{2, 1}))
	require.True(t, b.SetWall(loc{1, 0}))
	require.True(t, b.SetWeight(loc{1, 1}))

	assert.Equal(t, "S#.\n.:G\n", b.String())
	assert.Equal(t, "WALL", gridgraph.Wall.String())
	assert.Equal(t, "UNKNOWN", gridgraph.ElementType(42).String())
}
