package ids

import (
	"context"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/dfs"
	"github.com/rushhour-solver/rushhour/search"
)

// Solver runs iterative deepening search against a fixed starting board. A
// Solver is single-use; call New for each search.
type Solver struct {
	search.Base
	start *board.Board
	opts  Options
}

// New constructs an IDS solver over start.
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

// Solve runs the two-pass IDS contract and returns the resulting state.
func (s *Solver) Solve(ctx context.Context) (search.State, error) {
	return s.Run(ctx, func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return s.run(ctx)
	})
}

// run is the IDS body: a depth loop from 1 to opts.MaxDepth (inclusive, or
// unbounded if MaxDepth <= 0), wrapped in the solver's own wall-clock
// deadline if one is configured.
func (s *Solver) run(outerCtx context.Context) (*search.Solution, int, error) {
	ctx := outerCtx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(outerCtx, s.opts.Timeout)
		defer cancel()
	}

	totalNodes := 0
	// dfs.Run treats a depth limit of 0 as "unbounded" (its own
	// WithDepthLimit sentinel for disabling the cap), so the outer loop
	// starts at 1: depth=1 permits exploring the root and its immediate
	// children, which already satisfies the trivial-already-solved case
	// since dfs.Run tests Solved() before checking the depth limit.
	for depth := 1; s.opts.MaxDepth <= 0 || depth <= s.opts.MaxDepth; depth++ {
		select {
		case <-ctx.Done():
			return nil, totalNodes, ctx.Err()
		default:
		}

		sol, nodes, err := dfs.Run(ctx, s.start, depth, make(map[string]bool), deadlineSampleInterval)
		totalNodes += nodes
		if err != nil {
			return nil, totalNodes, err
		}
		if sol != nil {
			return sol, totalNodes, nil
		}
	}

	return nil, totalNodes, nil
}
