package dfs_test

import (
	"context"
	"fmt"

	"github.com/rushhour-solver/rushhour/board"
	"github.com/rushhour-solver/rushhour/dfs"
)

// ExampleNew demonstrates DFS finding a (not necessarily shortest) path
// to the goal.
func ExampleNew() {
	b, err := board.New(6, 6, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	solver, err := dfs.New(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	state, err := solver.Solve(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(state)
	// Output:
	// succeeded
}
