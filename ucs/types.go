package ucs

import "github.com/rushhour-solver/rushhour/board"

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds UCS's tunable parameters.
type Options struct {
	// OnExpand, if non-nil, is called each time a state is popped from the
	// heap and finalized (its cheapest cost is no longer subject to change).
	OnExpand func(key string, cost int64)
}

// DefaultOptions returns the zero-value Options (no hooks installed).
func DefaultOptions() Options {
	return Options{}
}

// WithOnExpand installs a hook invoked on every finalized state.
func WithOnExpand(fn func(key string, cost int64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// nodeItem is one entry in the priority queue: a board state reached at a
// given accumulated cost, tagged with an insertion sequence so that equal
// costs break ties in FIFO order, keeping expansion order deterministic.
// Unlike bfs/dfs, the path to this state is not carried on the item; it is
// reconstructed from the parent-pointer map once the goal is popped.
type nodeItem struct {
	key  string
	cost int64
	seq  int64
	b    *board.Board
}

// parentEntry records, for one state key, the predecessor key and the move
// that produced it, generalizing a plain predecessor map from a single
// string key to a (predecessor, move) pair.
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

// nodePQ is a min-heap of *nodeItem ordered by (cost, seq) ascending. A
// cheaper path to an already-queued state is pushed as a new entry; the
// stale one is discarded on pop once its key is found already finalized.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
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
