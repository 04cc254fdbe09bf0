package astar

import (
	"math"

	"github.com/rushhour-solver/rushhour/board"
)

// Heuristic estimates the residual cost to clear the target vehicle's row
// and drive it to the exit, using a bounded blocker-clearance analysis. It
// is an iterative worklist, not actual recursion: a queue of vehicles
// whose clearance must still be accounted for, seeded from the target's
// row and grown by each perpendicular blocker's own obstruction.
//
// Admissibility is not proven. math.MaxInt64 is returned when a
// perpendicular blocker has occupied cells both directly above and directly
// below it; whether the vehicles in those cells could themselves move away
// is not checked.
func Heuristic(b *board.Board) int64 {
	if b.Solved() {
		return 0
	}

	target := b.Target()
	occ, byID := occupancy(b)

	row := target.Y
	startCol := target.X + target.Length

	processed := make(map[string]bool)
	var queue []string
	for x := startCol; x < b.Width; x++ {
		id := occ[row][x]
		if id == "" || id == target.ID || processed[id] {
			continue
		}
		processed[id] = true
		queue = append(queue, id)
	}

	var total int64
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		v := byID[id]
		total += int64(v.Length)

		if v.Orientation == target.Orientation {
			// A same-orientation blocker in the target's row has no
			// perpendicular escape to analyze in this simplified design
			// (spec.md §4.8 step 4c).
			continue
		}

		upBlockers, upViable := escapeBlockers(occ, b, v, -1)
		downBlockers, downViable := escapeBlockers(occ, b, v, +1)

		if !upViable && !downViable && len(upBlockers) > 0 && len(downBlockers) > 0 {
			return math.MaxInt64
		}

		chosen := upBlockers
		switch {
		case upViable && !downViable:
			chosen = upBlockers
		case downViable && !upViable:
			chosen = downBlockers
		case len(upBlockers) > len(downBlockers):
			chosen = downBlockers
		}

		for _, bid := range chosen {
			if !processed[bid] {
				processed[bid] = true
				queue = append(queue, bid)
			}
		}
	}

	total += int64(target.Length) * int64(b.Width-(target.X+target.Length))

	return total
}

// escapeBlockers reports, for a vertical vehicle v, whether the row
// immediately beyond its span in the given direction (dir = -1 for above,
// +1 for below) is in bounds and empty (viable), and which vehicle id (if
// any) occupies that row when it is not.
func escapeBlockers(occ [][]string, b *board.Board, v board.Vehicle, dir int) ([]string, bool) {
	var adjRow int
	if dir < 0 {
		adjRow = v.Y - 1
	} else {
		adjRow = v.Y + v.Length
	}

	if adjRow < 0 || adjRow >= b.Height {
		return nil, false
	}
	occupant := occ[adjRow][v.X]
	if occupant == "" {
		return nil, true
	}
	return []string{occupant}, false
}

// occupancy builds a dense id grid and an id-to-vehicle lookup from b's
// exported Vehicles list, since board.Board keeps its own equivalent grid
// unexported.
func occupancy(b *board.Board) ([][]string, map[string]board.Vehicle) {
	grid := make([][]string, b.Height)
	for y := range grid {
		grid[y] = make([]string, b.Width)
	}
	byID := make(map[string]board.Vehicle, len(b.Vehicles))
	for _, v := range b.Vehicles {
		byID[v.ID] = v
		x, y := v.X, v.Y
		for i := 0; i < v.Length; i++ {
			if v.Orientation == board.Horizontal {
				grid[y][x+i] = v.ID
			} else {
				grid[y+i][x] = v.ID
			}
		}
	}
	return grid, byID
}
