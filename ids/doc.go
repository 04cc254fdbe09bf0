// Package ids implements iterative deepening search over a Rush Hour board
// (spec.md §4.5). IDS runs depth-limited DFS repeatedly with an increasing
// depth cap, starting from 1, until a solution is found, the cap reaches
// MaxDepth, or a wall-clock deadline elapses.
//
// Each outer iteration uses its own fresh visited set (unlike plain DFS,
// whose visited set is global across the single run), since a state ruled
// out at a shallower depth limit may be reachable again profitably once the
// limit is raised. The deadline is checked between outer iterations and,
// within each iteration's DFS body, sampled every 1000 node expansions
// rather than on every pop, to keep the overhead of context cancellation
// checks negligible relative to search work.
//
// Options:
//
//	WithMaxDepth(n) caps the outer iteration; default 500 (spec.md §9.3).
//	WithTimeout(d) bounds wall-clock time; default 60s (spec.md §4.5).
//
// Errors:
//
//	ErrBoardNil (via search.ErrBoardNil) if constructed with a nil board.
package ids
