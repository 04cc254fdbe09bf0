package search

import (
	"context"
	"time"

	"github.com/rushhour-solver/rushhour/board"
)

// State is a solver's position in the idle -> running -> terminal state
// machine.
type State uint8

const (
	// StateIdle is the solver's state before Solve is called.
	StateIdle State = iota
	// StateRunning is set for the duration of Solve.
	StateRunning
	// StateSucceeded is the terminal state when a solution was found.
	StateSucceeded
	// StateExhausted is the terminal state when the frontier emptied with no solution.
	StateExhausted
	// StateTimedOut is the terminal state when the search context's deadline
	// fired or it was cancelled (only ids installs a deadline of its own).
	StateTimedOut
)

// String renders the state name, used in logs and test failure messages.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateExhausted:
		return "exhausted"
	case StateTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is one of the three terminal states.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateExhausted || s == StateTimedOut
}

// Solution is the move sequence a strategy found. A nil *Solution denotes
// "no solution"; a non-nil Solution with an empty Moves slice denotes a
// board that was already solved at construction.
type Solution struct {
	Moves []board.Move
	// Cost is the cumulative move cost (vehicle.Length * |Delta| summed
	// over Moves). Populated by every strategy, including BFS/DFS/IDS,
	// where it is informational rather than optimized.
	Cost int64
}

// Len returns the number of moves in the solution.
func (s *Solution) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Moves)
}

// Stats is the instrumentation record every strategy exposes after Solve.
type Stats struct {
	Solution      *Solution
	SearchTime    time.Duration
	MemoryUsageKB uint64
	NodesExpanded int
}

// Strategy is the capability set every search regime implements: solve
// once, then expose statistics.
type Strategy interface {
	// Solve executes the search and returns the resulting state.
	// ctx cancellation is honored by every strategy; only ids installs a
	// deadline of its own by default.
	Solve(ctx context.Context) (State, error)
	// Stats returns the instrumentation record. Valid only once State()
	// is terminal; returns ErrStatsNotReady otherwise.
	Stats() (Stats, error)
	// State returns the solver's current position in the state machine.
	State() State
}
