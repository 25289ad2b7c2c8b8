package gridgraph

// SetStart moves the start to l, clearing any wall or weight there.
// Returns false, without changes, if l is out of bounds.
func (b *Board) SetStart(l Location) bool {
	if !b.InBounds(l) {
		return false
	}
	b.SetEmpty(l)
	b.start = l

	return true
}

// SetGoal moves the goal to l, clearing any wall or weight there.
// Returns false, without changes, if l is out of bounds.
func (b *Board) SetGoal(l Location) bool {
	if !b.InBounds(l) {
		return false
	}
	b.SetEmpty(l)
	b.goal = l

	return true
}

// SetWall turns l into a wall, replacing a weight if present.
// Returns false if l is out of bounds or is the start or goal.
func (b *Board) SetWall(l Location) bool {
	if !b.InBounds(l) || b.IsStartGoal(l) {
		return false
	}
	delete(b.weights, l)
	b.walls[l] = struct{}{}

	return true
}

// SetWeight turns l into a weighted cell, replacing a wall if present.
// Returns false if l is out of bounds.
func (b *Board) SetWeight(l Location) bool {
	if !b.InBounds(l) {
		return false
	}
	delete(b.walls, l)
	b.weights[l] = struct{}{}

	return true
}

// SetEmpty removes l from both walls and weights.
// Returns false if l is out of bounds.
func (b *Board) SetEmpty(l Location) bool {
	if !b.InBounds(l) {
		return false
	}
	delete(b.walls, l)
	delete(b.weights, l)

	return true
}

// ToggleWall removes the wall at l if present, otherwise clears l and walls it.
// Returns false if l is out of bounds or is the start or goal.
func (b *Board) ToggleWall(l Location) bool {
	if !b.InBounds(l) || b.IsStartGoal(l) {
		return false
	}
	if _, ok := b.walls[l]; ok {
		delete(b.walls, l)
		return true
	}

	return b.SetWall(l)
}

// ToggleWeight removes the weight at l if present, otherwise clears l and weights it.
// Returns false if l is out of bounds.
func (b *Board) ToggleWeight(l Location) bool {
	if !b.InBounds(l) {
		return false
	}
	if _, ok := b.weights[l]; ok {
		delete(b.weights, l)
		return true
	}

	return b.SetWeight(l)
}

// Clear removes every wall and weight. Start and goal stay where they are.
func (b *Board) Clear() {
	clear(b.walls)
	clear(b.weights)
}
