package dfs

import (
	"context"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/search"
)

// stackFrame is one entry on the DFS stack: a board, the path that reached
// it, and its depth.
type stackFrame struct {
	b     *board.Board
	path  []board.Move
	depth int
}

// Solver runs depth-limited, iterative depth-first search against a fixed
// starting board. A Solver is single-use; call New for each search.
type Solver struct {
	search.Base
	start *board.Board
	opts  Options
}

// New constructs a DFS solver over start.
func New(start *board.Board, opts ...Option) (*Solver, error) {
	if start == nil {
		return nil, search.ErrBoardNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{start: start, opts: o}, nil
}

// Solve runs the two-pass DFS contract and returns the resulting state.
func (s *Solver) Solve(ctx context.Context) (search.State, error) {
	return s.Run(ctx, func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		// checkInterval=1: a standalone DFS has no deadline of its own
		// (spec.md §5), so cancellation is checked on every pop for
		// maximum responsiveness to a caller-supplied context.
		return Run(ctx, s.start, s.opts.DepthLimit, make(map[string]bool), 1)
	})
}

// Run is the depth-limited iterative DFS body, exported so the ids package
// can reuse it per outer iteration with a fresh visited set and a coarser
// deadline-check interval (spec.md §4.5). checkInterval controls how many
// node expansions elapse between context cancellation checks; pass 1 for
// "check every pop" or 1000 for IDS's sampled deadline check.
func Run(ctx context.Context, start *board.Board, depthLimit int, visited map[string]bool, checkInterval int) (*search.Solution, int, error) {
	if checkInterval < 1 {
		checkInterval = 1
	}

	stack := []stackFrame{{b: start, path: nil, depth: 0}}
	nodes := 0

	for len(stack) > 0 {
		if nodes%checkInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, nodes, ctx.Err()
			default:
			}
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := item.b.Key()
		if visited[key] {
			continue
		}
		visited[key] = true
		nodes++

		if item.b.Solved() {
			return &search.Solution{
				Moves: item.path,
				Cost:  search.Cost(start, item.path),
			}, nodes, nil
		}

		if depthLimit > 0 && item.depth >= depthLimit {
			continue
		}

		moves := item.b.Moves()
		// Push in reverse so popping yields board.Moves' natural order.
		for i := len(moves) - 1; i >= 0; i-- {
			mv := moves[i]
			child := item.b.Apply(mv)
			if visited[child.Key()] {
				continue
			}
			childPath := append(append([]board.Move{}, item.path...), mv)
			stack = append(stack, stackFrame{b: child, path: childPath, depth: item.depth + 1})
		}
	}

	return nil, nodes, nil
}
