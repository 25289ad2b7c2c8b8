// Package frontier provides the priority-ordered frontier used by Dijkstra
// and A*: a min-priority queue keyed by a float64 priority.
//
// What:
//
//   - Put inserts an item with a priority. The same item may be inserted any
//     number of times with different priorities; every entry is kept.
//   - Get removes and returns the entry with the smallest priority.
//   - Entries with equal priority come out in insertion order (FIFO), so a
//     search that uses the queue is fully reproducible.
//
// Why:
//
//   - Searches use a "lazy decrease-key" strategy: instead of updating an
//     entry in place they push a fresh one and skip stale entries on pop.
//     Allowing duplicates keeps Put O(log n) with no index bookkeeping.
//
// Complexity:
//
//   - Put, Get: O(log n).
//   - Empty, Len: O(1).
//   - Memory: O(n) entries, including stale duplicates.
package frontier
