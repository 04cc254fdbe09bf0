package search

import "errors"

// Sentinel errors shared by every strategy.
var (
	// ErrBoardNil is returned when a strategy is constructed with a nil board.
	ErrBoardNil = errors.New("search: board is nil")

	// ErrAlreadyRun is returned by Solve when called a second time on the
	// same solver instance; a solver is single-use.
	ErrAlreadyRun = errors.New("search: solver already run; construct a new instance")

	// ErrStatsNotReady is returned by Stats when called before Solve has
	// reached a terminal state.
	ErrStatsNotReady = errors.New("search: statistics are only readable in a terminal state")
)
