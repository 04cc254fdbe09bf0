package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/dfs"
)

func mustBoard(t *testing.T, vehicles []board.Vehicle) *board.Board {
	t.Helper()
	b, err := board.New(6, 6, vehicles)
	require.NoError(t, err)
	return b
}

func TestDFS_TrivialAlreadySolved(t *testing.T) {
	b := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 4, Y: 2, Length: 2, Orientation: board.Horizontal},
	})
	s, err := dfs.New(b)
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Empty(t, stats.Solution.Moves)
	assert.Equal(t, 1, stats.NodesExpanded)
}

func TestDFS_Soundness(t *testing.T) {
	start := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	s, err := dfs.New(start)
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	require.NotNil(t, stats.Solution)

	final := start.ApplyAll(stats.Solution.Moves)
	assert.True(t, final.Solved())
}

func TestDFS_RespectsDepthLimit(t *testing.T) {
	start := mustBoard(t, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	// Solving needs 2 moves; a depth limit of 1 must fail to find it.
	s, err := dfs.New(start, dfs.WithDepthLimit(1))
	require.NoError(t, err)

	_, err = s.Solve(context.Background())
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Nil(t, stats.Solution)
}

func TestDFS_Determinism(t *testing.T) {
	vehicles := []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	}

	run := func() ([]board.Move, int) {
		b := mustBoard(t, vehicles)
		s, err := dfs.New(b)
		require.NoError(t, err)
		_, err = s.Solve(context.Background())
		require.NoError(t, err)
		stats, err := s.Stats()
		require.NoError(t, err)
		return stats.Solution.Moves, stats.NodesExpanded
	}

	moves1, nodes1 := run()
	moves2, nodes2 := run()
	assert.Equal(t, moves1, moves2)
	assert.Equal(t, nodes1, nodes2)
}

func TestDFS_RejectsNilBoard(t *testing.T) {
	_, err := dfs.New(nil)
	assert.Error(t, err)
}
