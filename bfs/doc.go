// Package bfs implements breadth-first search over a Rush Hour board,
// guaranteeing the shortest solution by move count.
//
// BFS holds a queue of (board, move-path-so-far) pairs and a visited set
// seeded with the start state's key. On dequeue it increments the node
// counter, then for each successor tests the goal before marking the
// child visited — an early goal test that shaves one round-trip off the
// trivial case and every case where a single move solves the puzzle.
//
// Complexity: O(V + E) over the reachable state space, where a state is a
// distinct board.Key() and an edge is a legal Move.
//
// Options:
//
//	WithOnExpand(fn)  hook called once per dequeued (expanded) board.
//	WithOnEnqueue(fn) hook called once per board added to the frontier.
//
// Errors:
//
//	ErrBoardNil (via search.ErrBoardNil) if constructed with a nil board.
package bfs
