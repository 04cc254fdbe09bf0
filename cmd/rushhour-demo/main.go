// Command rushhour-demo is a thin, illustrative wiring of the rushhour
// package: it builds one fixed board, runs every registered strategy
// against it, and prints their statistics. It is not the puzzle-file
// loading, exit-code-contracted CLI launcher described as out of scope;
// it exists only to exercise the logging dependency end to end, printing
// each strategy's result for a human to read.
package main

import (
	"context"
	"os"

	"github.com/op/go-logging"

	"github.com/rushhour-solver/rushhour"
	"github.com/rushhour-solver/rushhour/board"
)

func main() {
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{level:-7.7s} %{message}`)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	logging.SetBackend(formatted)

	start, err := board.New(6, 6, []board.Vehicle{
		{ID: "R", X: 0, Y: 2, Length: 2, Orientation: board.Horizontal},
		{ID: "B", X: 3, Y: 0, Length: 3, Orientation: board.Vertical},
		{ID: "C", X: 5, Y: 3, Length: 3, Orientation: board.Vertical},
	})
	if err != nil {
		panic(err)
	}

	strategies := []rushhour.StrategyName{
		rushhour.BFS,
		rushhour.DFS,
		rushhour.IDS,
		rushhour.UCS,
		rushhour.AStar,
	}

	for _, name := range strategies {
		if _, _, err := rushhour.Solve(context.Background(), name, start); err != nil {
			panic(err)
		}
	}
}
