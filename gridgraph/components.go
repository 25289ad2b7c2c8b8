package gridgraph

// Components finds all contiguous regions of passable cells according to
// the board's connectivity. Regions are numbered in row-major order of
// their first cell; each region lists its cells in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (b *Board) Components() [][]Location {
	labels, order := b.label()
	var comps [][]Location
	for _, l := range order {
		id := labels[b.index(l.X, l.Y)]
		if id == len(comps) {
			comps = append(comps, nil)
		}
		comps[id] = append(comps[id], l)
	}

	return comps
}

// Connected reports whether a and c lie in the same passable region.
// Out-of-bounds or wall cells are never connected to anything.
func (b *Board) Connected(a, c Location) bool {
	if !b.InBounds(a) || !b.InBounds(c) || !b.Passable(a) || !b.Passable(c) {
		return false
	}
	labels, _ := b.label()

	return labels[b.index(a.X, a.Y)] == labels[b.index(c.X, c.Y)]
}

// label assigns a region id to every passable cell (-1 for walls) and
// returns the cells in BFS discovery order.
func (b *Board) label() ([]int, []Location) {
	total := b.rows * b.columns
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	order := make([]Location, 0, total)
	next := 0

	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.columns; x++ {
			l0 := Location{X: x, Y: y}
			if !b.Passable(l0) || labels[b.index(x, y)] >= 0 {
				continue // wall or already labelled
			}
			// BFS to collect region
			queue := []Location{l0}
			labels[b.index(x, y)] = next
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				order = append(order, u)
				for _, d := range b.dirs {
					v := u.Add(d)
					if !b.InBounds(v) || !b.Passable(v) || labels[b.index(v.X, v.Y)] >= 0 {
						continue
					}
					labels[b.index(v.X, v.Y)] = next
					queue = append(queue, v)
				}
			}
			next++
		}
	}

	return labels, order
}

// index maps (x,y) to a row-major index: y*columns + x.
// Complexity: O(1).
func (b *Board) index(x, y int) int {
	return y*b.columns + x
}
