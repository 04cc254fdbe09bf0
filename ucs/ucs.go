package ucs

import (
	"container/heap"
	"context"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/search"
)

// Solver runs uniform-cost search against a fixed starting board. A Solver
// is single-use; call New for each search.
type Solver struct {
	search.Base
	start *board.Board
	opts  Options
}

// New constructs a UCS solver over start.
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

// Solve runs the two-pass UCS contract and returns the resulting state.
func (s *Solver) Solve(ctx context.Context) (search.State, error) {
	return s.Run(ctx, func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return s.run(ctx)
	})
}

// run is the UCS body shared by both instrumentation passes: best-known
// cost per state, a parent-pointer map for path reconstruction, and a
// finalized set for lazy decrease-key (stale heap entries are skipped on
// pop rather than mutated in place).
func (s *Solver) run(ctx context.Context) (*search.Solution, int, error) {
	best := make(map[string]int64)
	finalized := make(map[string]bool)
	parent := make(map[string]parentEntry)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)

	startKey := s.start.Key()
	best[startKey] = 0
	var seq int64
	heap.Push(&pq, &nodeItem{key: startKey, cost: 0, seq: seq, b: s.start})
	seq++

	nodes := 0
	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, nodes, ctx.Err()
		default:
		}

		item := heap.Pop(&pq).(*nodeItem)
		if finalized[item.key] {
			continue
		}
		if item.cost > best[item.key] {
			continue
		}
		finalized[item.key] = true
		nodes++

		if s.opts.OnExpand != nil {
			s.opts.OnExpand(item.key, item.cost)
		}

		if item.b.Solved() {
			moves := reconstructPath(startKey, item.key, parent)
			return &search.Solution{Moves: moves, Cost: item.cost}, nodes, nil
		}

		for _, mv := range item.b.Moves() {
			childCost, err := item.b.MoveCost(mv)
			if err != nil {
				return nil, nodes, err
			}
			child := item.b.Apply(mv)
			childKey := child.Key()
			if finalized[childKey] {
				continue
			}
			newCost := item.cost + childCost
			if prior, ok := best[childKey]; ok && newCost >= prior {
				continue
			}
			best[childKey] = newCost
			parent[childKey] = parentEntry{fromKey: item.key, move: mv}

			heap.Push(&pq, &nodeItem{key: childKey, cost: newCost, seq: seq, b: child})
			seq++
		}
	}

	return nil, nodes, nil
}
