package algorithms

// # BFS (breadth-first search)
//
// Steps:
//  1. Initialize: CameFrom[start] = start, enqueue start.
//  2. Loop until the queue is empty:
//     2.1 Dequeue the front node, record it in Order, invoke OnVisit.
//     2.2 Stop if it is the goal.
//     2.3 For every neighbour not yet in CameFrom: record the predecessor,
//     invoke OnEnqueue, enqueue.
//
// BFS ignores Graph.Cost; its path is shortest in number of steps only.
//
// Time complexity: O(V + E)
// Memory usage:    O(V)

// walker holds the mutable state for one BFS execution.
type walker[L comparable] struct {
	graph Graph[L]
	opts  Options[L]
	goal  L
	queue []L
	res   *Result[L]
}

// BFS runs breadth-first search on g from g.Start(), stopping early when
// g.Goal() is dequeued. Returns ErrGraphNil for a nil graph.
func BFS[L comparable](g Graph[L], opts ...Option[L]) (*Result[L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := &walker[L]{
		graph: g,
		opts:  buildOptions(opts),
		goal:  g.Goal(),
		res: &Result[L]{
			CameFrom: make(map[L]L),
		},
	}
	w.init(g.Start())
	w.loop()

	return w.res, nil
}

// init seeds the queue with start, its own predecessor.
func (w *walker[L]) init(start L) {
	w.res.CameFrom[start] = start
	w.opts.OnEnqueue(start)
	w.queue = append(w.queue, start)
}

// loop processes the queue until it is empty or the goal is dequeued.
func (w *walker[L]) loop() {
	for len(w.queue) > 0 {
		current := w.dequeue()
		w.res.Order = append(w.res.Order, current)
		w.opts.OnVisit(current)

		// Early exit
		if current == w.goal {
			return
		}
		w.enqueueNeighbors(current)
	}
}

func (w *walker[L]) dequeue() L {
	current := w.queue[0]
	w.queue = w.queue[1:]
	return current
}

func (w *walker[L]) enqueueNeighbors(current L) {
	for _, next := range w.graph.Neighbors(current) {
		if _, seen := w.res.CameFrom[next]; seen {
			continue
		}
		w.res.CameFrom[next] = current
		w.opts.OnEnqueue(next)
		w.queue = append(w.queue, next)
	}
}
