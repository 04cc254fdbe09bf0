package rushhour

import (
	"context"
	"fmt"

	"github.com/rushhour-solver/rushhour/astar"
	"github.com/rushhour-solver/rushhour/bfs"
	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/dfs"
	"github.com/rushhour-solver/rushhour/ids"
	"github.com/rushhour-solver/rushhour/search"
	"github.com/rushhour-solver/rushhour/ucs"
)

// StrategyName selects one of the five registered search strategies.
type StrategyName string

const (
	BFS   StrategyName = "bfs"
	DFS   StrategyName = "dfs"
	IDS   StrategyName = "ids"
	UCS   StrategyName = "ucs"
	AStar StrategyName = "astar"
)

// Solve constructs the named strategy over start, runs it to a terminal
// state, and logs the phase transition and resulting statistics. It is the
// thin collaborator described for external callers (a GUI, a CLI launcher,
// a batch driver) that don't want to depend on five separate strategy
// packages directly.
func Solve(ctx context.Context, name StrategyName, start *board.Board) (search.State, search.Stats, error) {
	strategy, err := newStrategy(name, start)
	if err != nil {
		return search.StateIdle, search.Stats{}, err
	}

	log.Infof("%s: starting search, board %dx%d, %d vehicles", name, start.Width, start.Height, len(start.Vehicles))

	state, err := strategy.Solve(ctx)
	if err != nil {
		log.Warningf("%s: %s: %v", name, state, err)
		return state, search.Stats{}, err
	}

	stats, err := strategy.Stats()
	if err != nil {
		return state, search.Stats{}, err
	}

	if stats.Solution != nil {
		log.Infof("%s: %s in %s, %d moves, cost %d, %d nodes expanded, %dKB",
			name, state, stats.SearchTime, stats.Solution.Len(), stats.Solution.Cost, stats.NodesExpanded, stats.MemoryUsageKB)
	} else {
		log.Infof("%s: %s in %s, %d nodes expanded, %dKB",
			name, state, stats.SearchTime, stats.NodesExpanded, stats.MemoryUsageKB)
	}
	log.Debugf("%s: final stats: %+v", name, stats)

	return state, stats, nil
}

func newStrategy(name StrategyName, start *board.Board) (search.Strategy, error) {
	switch name {
	case BFS:
		return bfs.New(start)
	case DFS:
		return dfs.New(start)
	case IDS:
		return ids.New(start)
	case UCS:
		return ucs.New(start)
	case AStar:
		return astar.New(start)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
