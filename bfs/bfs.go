package bfs

import (
	"context"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/search"
)

// queueItem pairs a board with the move path that reached it from the
// start and its depth (move count).
type queueItem struct {
	b     *board.Board
	path  []board.Move
	depth int
}

// Solver runs breadth-first search against a fixed starting board. A
// Solver is single-use; call New for each search.
type Solver struct {
	search.Base
	start *board.Board
	opts  Options
}

// New constructs a BFS solver over start.
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

// Solve runs the two-pass BFS contract and returns the resulting state.
func (s *Solver) Solve(ctx context.Context) (search.State, error) {
	return s.Run(ctx, func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return s.run(ctx)
	})
}

// run is the BFS body, executed twice by search.Base.Run.
func (s *Solver) run(ctx context.Context) (*search.Solution, int, error) {
	if s.start.Solved() {
		// Trivial case: goal already reached. Counted as a single
		// expanded node.
		return &search.Solution{Moves: nil, Cost: 0}, 1, nil
	}

	queue := []queueItem{{b: s.start, path: nil, depth: 0}}
	visited := map[string]bool{s.start.Key(): true}
	nodes := 0

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, nodes, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		nodes++
		s.opts.OnExpand(item.b.Key(), item.depth)

		for _, mv := range item.b.Moves() {
			child := item.b.Apply(mv)
			childPath := append(append([]board.Move{}, item.path...), mv)

			if child.Solved() {
				return &search.Solution{
					Moves: childPath,
					Cost:  search.Cost(s.start, childPath),
				}, nodes, nil
			}

			key := child.Key()
			if !visited[key] {
				visited[key] = true
				s.opts.OnEnqueue(key, item.depth+1)
				queue = append(queue, queueItem{b: child, path: childPath, depth: item.depth + 1})
			}
		}
	}

	return nil, nodes, nil
}
