// Package ucs implements uniform-cost search over a Rush Hour board
// (spec.md §4.6). Uniform-cost search is Dijkstra's algorithm specialized to
// a lazily generated state graph: vertices are board states, edges are
// board.Moves, and an edge's weight is its move cost (vehicle length times
// displacement magnitude) rather than a unit step.
//
// Overview:
//
//   - Expands the cheapest-cost-so-far state first, using a min-heap keyed
//     on accumulated path cost.
//   - Guarantees a minimum-total-cost solution, which need not be the
//     solution with the fewest moves (spec.md §8's cost-vs-move-count
//     divergence scenario).
//   - Uses the same lazy decrease-key discipline as the graph-Dijkstra this
//     package is descended from: a cheaper path to an already-queued state
//     is pushed as a new heap entry rather than mutating the old one, and
//     stale entries are discarded on pop via a finalized set.
//
// Complexity:
//
//	Time:  O(N log N) in the number of distinct states N reached, since
//	each state may be pushed once per improving relaxation.
//	Space: O(N) for the distance, parent, and finalized maps plus the heap.
//
// Errors:
//
//	ErrBoardNil (via search.ErrBoardNil) if constructed with a nil board.
package ucs
