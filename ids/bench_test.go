package ids_test

import (
	"context"
	"testing"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/ids"
)

// BenchmarkIDS_TwoVehicle measures throughput on the same fixed scenario
// bfs.BenchmarkBFS_TwoVehicle uses, for side-by-side comparison.
func BenchmarkIDS_TwoVehicle(b *testing.B) {
	vehicles := []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bd, _ := board.New(6, 6, vehicles)
		solver, _ := ids.New(bd)
		_, _ = solver.Solve(context.Background())
	}
}
