package ids_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/ids"
)

func mustBoard(t *testing.T, vehicles []board.Vehicle) *board.Board {
	t.Helper()
	b, err := board.New(6, 6, vehicles)
	require.NoError(t, err)
	return b
}

func TestIDS_TrivialAlreadySolved(t *testing.T) {
	b := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 4, Y: 2, Length: 2, Orientation: board.Horizontal},
	})
	s, err := ids.New(b)
	require.NoError(t, err)

	state, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "succeeded", state.String())

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Empty(t, stats.Solution.Moves)
	assert.Equal(t, 1, stats.NodesExpanded)
}

func TestIDS_Soundness(t *testing.T) {
	start := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	s, err := ids.New(start)
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	require.NotNil(t, stats.Solution)

	final := start.ApplyAll(stats.Solution.Moves)
	assert.True(t, final.Solved())
}

func TestIDS_FindsShortestPath(t *testing.T) {
	// Same two-move scenario as bfs.TestBFS_OneBlocker; IDS, like BFS,
	// explores shallower depths exhaustively first, so it too must return
	// a shortest (by move count) solution.
	start := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	s, err := ids.New(start)
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Len(t, stats.Solution.Moves, 2)
}

func TestIDS_RespectsMaxDepth(t *testing.T) {
	start := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	// Solving needs depth 2; a max depth of 1 must fail to find it.
	s, err := ids.New(start, ids.WithMaxDepth(1))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Nil(t, stats.Solution)
}

func TestIDS_TimesOutOnExpiredContext(t *testing.T) {
	start := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	s, err := ids.New(start, ids.WithTimeout(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state, err := s.Solve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "timed-out", state.String())

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Nil(t, stats.Solution)
}

func TestIDS_RejectsNilBoard(t *testing.T) {
	_, err := ids.New(nil)
	assert.Error(t, err)
}
