package frontier

import "container/heap"

// entry is one queued item with its priority and insertion sequence number.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entries is a min-heap ordered by priority, then by seq.
type entries[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entries[T]) Len() int { return len(h) }

// Less orders by priority; equal priorities fall back to insertion order.
func (h entries[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entries[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entries[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{} // drop reference for GC
	*h = old[:n-1]

	return e
}

// Queue is a stable min-priority queue. The zero value is ready to use.
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	h   entries[T]
	seq uint64
}

// New returns an empty Queue with room for capacity entries.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{h: make(entries[T], 0, capacity)}
}

// Put inserts item with the given priority. Duplicates are allowed.
func (q *Queue[T]) Put(item T, priority float64) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Get removes and returns the item with the smallest priority, ties broken
// by insertion order. ok is false when the queue is empty.
func (q *Queue[T]) Get() (item T, ok bool) {
	if len(q.h) == 0 {
		return item, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.item, true
}

// Peek returns the next item and its priority without removing it.
func (q *Queue[T]) Peek() (item T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	return q.h[0].item, q.h[0].priority, true
}

// Empty reports whether the queue holds no entries.
func (q *Queue[T]) Empty() bool { return len(q.h) == 0 }

// Len returns the number of entries, stale duplicates included.
func (q *Queue[T]) Len() int { return len(q.h) }
