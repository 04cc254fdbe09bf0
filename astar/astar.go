package astar

import (
	"container/heap"
	"context"
	"math"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/search"
)

// Solver runs A* search against a fixed starting board. A Solver is
// single-use; call New for each search.
type Solver struct {
	search.Base
	start *board.Board
	opts  Options
}

// New constructs an A* solver over start.
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

// Solve runs the two-pass A* contract and returns the resulting state.
func (s *Solver) Solve(ctx context.Context) (search.State, error) {
	return s.Run(ctx, func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return s.run(ctx)
	})
}

// run is the A* body: identical to ucs.Solver.run except the heap orders on
// f = g + h rather than g alone, and a child whose heuristic reports
// math.MaxInt64 (the deadlock-prune case of spec.md §4.8) is never pushed
// at all, rather than pushed with an overflow-prone infinite key.
func (s *Solver) run(ctx context.Context) (*search.Solution, int, error) {
	best := make(map[string]int64)
	finalized := make(map[string]bool)
	parent := make(map[string]parentEntry)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)

	startKey := s.start.Key()
	startH := s.opts.Heuristic(s.start)
	best[startKey] = 0
	var seq int64
	heap.Push(&pq, &nodeItem{key: startKey, g: 0, f: saturatingAdd(0, startH), seq: seq, b: s.start})
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
		if item.g > best[item.key] {
			continue
		}
		finalized[item.key] = true
		nodes++

		if s.opts.OnExpand != nil {
			s.opts.OnExpand(item.key, item.g, item.f-item.g)
		}

		if item.b.Solved() {
			moves := reconstructPath(startKey, item.key, parent)
			return &search.Solution{Moves: moves, Cost: item.g}, nodes, nil
		}

		for _, mv := range item.b.Moves() {
			moveCost, err := item.b.MoveCost(mv)
			if err != nil {
				return nil, nodes, err
			}
			child := item.b.Apply(mv)
			childKey := child.Key()
			if finalized[childKey] {
				continue
			}
			newG := item.g + moveCost
			if prior, ok := best[childKey]; ok && newG >= prior {
				continue
			}

			h := s.opts.Heuristic(child)
			if h == math.MaxInt64 {
				// Heuristic reports a boxed-in blocker; prune without enqueuing.
				continue
			}

			best[childKey] = newG
			parent[childKey] = parentEntry{fromKey: item.key, move: mv}
			heap.Push(&pq, &nodeItem{
				key: childKey,
				g:   newG,
				f:   saturatingAdd(newG, h),
				seq: seq,
				b:   child,
			})
			seq++
		}
	}

	return nil, nodes, nil
}

// saturatingAdd adds g and h, clamping to math.MaxInt64 instead of
// overflowing if the sum would exceed it.
func saturatingAdd(g, h int64) int64 {
	if h > 0 && g > math.MaxInt64-h {
		return math.MaxInt64
	}
	return g + h
}
