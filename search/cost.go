package search

import "github.com/rushhour-solver/rushhour/board"

// Cost sums vehicle.Length * |Delta| over moves, replaying them against
// start in order. Used by every strategy to populate Solution.Cost,
// including BFS/DFS/IDS where it is informational rather than the
// search's own ordering key.
func Cost(start *board.Board, moves []board.Move) int64 {
	cur := start
	var total int64
	for _, m := range moves {
		c, err := cur.MoveCost(m)
		if err != nil {
			panic("search: Cost: " + err.Error())
		}
		total += c
		cur = cur.Apply(m)
	}
	return total
}
