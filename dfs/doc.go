// Package dfs implements depth-limited, iterative depth-first search over a
// Rush Hour board (spec.md §4.4).
//
// DFS keeps an explicit stack of (board, move-path-so-far, depth) frames
// and a visited set that is global across the whole search, not per path.
// A depth limit (default 500) bounds exploration; frames at depth >= limit
// are goal-tested but not expanded, so solutions of up to limit moves can
// be found. Successors are pushed in reverse enumeration order so
// that popping yields them in board.Moves' natural order, which keeps runs
// reproducible (spec.md §5). DFS does not guarantee an optimal solution by
// move count or cost; it returns the first one reached.
//
// Options:
//
//	WithDepthLimit(n) caps recursion depth; default 500 (spec.md §9.3).
//
// Errors:
//
//	ErrBoardNil (via search.ErrBoardNil) if constructed with a nil board.
package dfs
