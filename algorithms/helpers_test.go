package algorithms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pinder/gridgraph"
)

type loc = gridgraph.Location

// mockGraph is a tiny directed graph over string IDs, used to test search
// logic independently of the grid.
type mockGraph struct {
	start, goal string
	adj         map[string][]string
	cost        map[[2]string]float64
}

func (m *mockGraph) Start() string                { return m.start }
func (m *mockGraph) Goal() string                 { return m.goal }
func (m *mockGraph) Neighbors(n string) []string  { return m.adj[n] }
func (m *mockGraph) Cost(from, to string) float64 { return m.cost[[2]string{from, to}] }

// edge adds a directed edge u→v with weight w.
func (m *mockGraph) edge(u, v string, w float64) {
	if m.adj == nil {
		m.adj = make(map[string][]string)
		m.cost = make(map[[2]string]float64)
	}
	m.adj[u] = append(m.adj[u], v)
	m.cost[[2]string{u, v}] = w
}

// boardFrom builds a board from an ASCII sketch:
// 'S' start, 'G' goal, '#' wall, ':' weight, anything else empty.
func boardFrom(t testing.TB, conn gridgraph.Connectivity, rows ...string) *gridgraph.Board {
	t.Helper()
	b, err := gridgraph.NewBoard(len(rows), len(rows[0]), gridgraph.WithConnectivity(conn))
	require.NoError(t, err)
	for y, row := range rows {
		for x, ch := range row {
			l := loc{X: x, Y: y}
			switch ch {
			case 'S':
				require.True(t, b.SetStart(l))
			case 'G':
				require.True(t, b.SetGoal(l))
			case '#':
				require.True(t, b.SetWall(l))
			case ':':
				require.True(t, b.SetWeight(l))
			}
		}
	}
	return b
}

// oracleCost computes the minimum cost from start to goal by exhaustive
// Bellman-Ford relaxation over every cell. With unit set, every step costs 1.
// Returns +Inf when the goal is unreachable.
func oracleCost(b *gridgraph.Board, unit bool) float64 {
	dist := map[loc]float64{b.Start(): 0}
	for changed := true; changed; {
		changed = false
		for y := 0; y < b.Rows(); y++ {
			for x := 0; x < b.Columns(); x++ {
				u := loc{X: x, Y: y}
				du, ok := dist[u]
				if !ok || !b.Passable(u) {
					continue
				}
				for _, v := range b.Neighbors(u) {
					step := b.Cost(u, v)
					if unit {
						step = 1
					}
					if dv, seen := dist[v]; !seen || du+step < dv {
						dist[v] = du + step
						changed = true
					}
				}
			}
		}
	}
	if d, ok := dist[b.Goal()]; ok {
		return d
	}
	return math.Inf(1)
}

// requireValidPath checks that consecutive path cells are board neighbours
// and that the path runs from start to goal.
func requireValidPath(t testing.TB, b *gridgraph.Board, path []loc) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, b.Start(), path[0])
	require.Equal(t, b.Goal(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		require.Contains(t, b.Neighbors(path[i-1]), path[i], "step %d: %v→%v", i, path[i-1], path[i])
	}
}
