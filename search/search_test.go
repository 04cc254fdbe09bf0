package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/search"
)

func TestBase_IdleBeforeRun(t *testing.T) {
	var b search.Base
	assert.Equal(t, search.StateIdle, b.State())
	_, err := b.Stats()
	assert.ErrorIs(t, err, search.ErrStatsNotReady)
}

func TestBase_RunSucceeds(t *testing.T) {
	var b search.Base
	state, err := b.Run(context.Background(), func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return &search.Solution{Moves: []board.Move{{VehicleID: "R", Delta: 1}}}, 3, nil
	})
	require.NoError(t, err)
	assert.Equal(t, search.StateSucceeded, state)

	stats, err := b.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.NodesExpanded)
	assert.Len(t, stats.Solution.Moves, 1)
}

func TestBase_RunExhausted(t *testing.T) {
	var b search.Base
	state, err := b.Run(context.Background(), func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return nil, 5, nil
	})
	require.NoError(t, err)
	assert.Equal(t, search.StateExhausted, state)
}

func TestBase_RunTimedOutIsNotAnError(t *testing.T) {
	// spec.md §7: a context deadline/cancellation is a logical "no
	// solution" outcome, not a Go error, and the fields populated so far
	// (nodes expanded here) are kept in Stats.
	var b search.Base
	state, err := b.Run(context.Background(), func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return nil, 7, context.DeadlineExceeded
	})
	require.NoError(t, err)
	assert.Equal(t, search.StateTimedOut, state)

	stats, err := b.Stats()
	require.NoError(t, err)
	assert.Nil(t, stats.Solution)
	assert.Equal(t, 7, stats.NodesExpanded)
}

func TestBase_SecondRunRejected(t *testing.T) {
	var b search.Base
	body := func(ctx context.Context, profiling bool) (*search.Solution, int, error) {
		return nil, 0, nil
	}
	_, err := b.Run(context.Background(), body)
	require.NoError(t, err)

	_, err = b.Run(context.Background(), body)
	assert.ErrorIs(t, err, search.ErrAlreadyRun)
}

func TestCost_SumsVehicleLengthTimesDisplacement(t *testing.T) {
	b, err := board.New(6, 6, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	require.NoError(t, err)

	cost := search.Cost(b, []board.Move{
		{VehicleID: "B", Delta: 1},
		{VehicleID: "R", Delta: 4},
	})
	assert.EqualValues(t, 3*1+2*4, cost)
}
