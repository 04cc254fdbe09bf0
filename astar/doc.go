// Package astar implements A* search over a Rush Hour board (spec.md
// §4.7), structurally identical to package ucs but ordering the priority
// queue on f = g + h instead of g alone, where g is the UCS-style
// cumulative move cost and h is Heuristic, the bounded blocker-clearance
// estimate of spec.md §4.8.
//
// With h identically zero, A* reduces to UCS and must report the same
// optimal cost on the same board; this module's tests assert that
// equivalence directly rather than trusting it by inspection.
//
// Options:
//
//	WithHeuristic(fn) overrides the default Heuristic; mainly for tests
//	(e.g. a zero heuristic to compare against ucs).
//
// Errors:
//
//	ErrBoardNil (via search.ErrBoardNil) if constructed with a nil board.
package astar
