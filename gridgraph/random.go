package gridgraph

import "math/rand"

// Randomize wipes the board and fills it with random content, the way the
// interactive "reset with random data" command does:
//
//  1. Clear walls and weights.
//  2. Place start and a distinct goal uniformly at random.
//  3. Attempt up to area/6 random walls and area/4 random weights.
//
// Individual placements may be rejected (e.g. a wall on the start cell) or
// overwrite earlier ones, so the final counts are upper bounds only.
// The result is fully determined by rng.
func (b *Board) Randomize(rng *rand.Rand) {
	b.Clear()

	area := b.rows * b.columns
	randomCell := func() Location {
		return Location{X: rng.Intn(b.columns), Y: rng.Intn(b.rows)}
	}

	start := randomCell()
	goal := randomCell()
	for area > 1 && goal == start {
		goal = randomCell()
	}
	b.SetStart(start)
	b.SetGoal(goal)

	nWalls, nWeights := 0, 0
	if area/6 > 0 {
		nWalls = rng.Intn(area / 6)
	}
	if area/4 > 0 {
		nWeights = rng.Intn(area / 4)
	}
	for i := 0; i < nWalls; i++ {
		b.SetWall(randomCell())
	}
	for i := 0; i < nWeights; i++ {
		b.SetWeight(randomCell())
	}
}
