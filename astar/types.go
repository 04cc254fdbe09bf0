package astar

import "github.com/rushhour-solver/rushhour/board"

// HeuristicFunc estimates the residual cost to solve b. It must return 0 on
// a solved board; returning math.MaxInt64 signals a branch the search
// should prune (its child is never enqueued).
type HeuristicFunc func(b *board.Board) int64

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds A*'s tunable parameters.
type Options struct {
	Heuristic HeuristicFunc
	// OnExpand, if non-nil, is called each time a state is popped from the
	// heap and finalized.
	OnExpand func(key string, g, h int64)
}

// DefaultOptions returns Options using the package's Heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Heuristic}
}

// WithHeuristic overrides the default blocker heuristic.
func WithHeuristic(fn HeuristicFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithOnExpand installs a hook invoked on every finalized state.
func WithOnExpand(fn func(key string, g, h int64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// nodeItem is one entry in the priority queue, ordered by f = g + h with a
// FIFO tie-break on seq (spec.md §5). The path to this state is not
// carried on the item; like ucs, it is reconstructed from a parent-pointer
// map once the goal is popped (spec.md §9).
type nodeItem struct {
	key string
	g   int64
	f   int64
	seq int64
	b   *board.Board
}

// parentEntry records, for one state key, the predecessor key and the move
// that produced it.
type parentEntry struct {
	fromKey string
	move    board.Move
}

// reconstructPath walks the parent-pointer map backward from goalKey to
// startKey, collecting moves, then reverses them into start-to-goal order.
func reconstructPath(startKey, goalKey string, parent map[string]parentEntry) []board.Move {
	var moves []board.Move
	for key := goalKey; key != startKey; {
		pe := parent[key]
		moves = append(moves, pe.move)
		key = pe.fromKey
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// nodePQ is a min-heap of *nodeItem ordered by (f, seq) ascending.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
