package board

import (
	"fmt"
	"sort"
	"strings"
)

// Board is an immutable grid state: fixed dimensions plus an ordered list
// of vehicles, the first of which is always the target (conventionally
// id "R"). Construct with New; every transformation (Apply, ApplyAll)
// returns a fresh Board rather than mutating the receiver.
type Board struct {
	Width, Height int
	Vehicles      []Vehicle

	index map[string]int // vehicle id -> index in Vehicles, built once at construction
}

// New constructs a Board from width, height and vehicles, validating the
// three invariants of spec.md §3: positive dimensions, in-bounds vehicles,
// and no overlaps. The first element of vehicles is the target.
func New(width, height int, vehicles []Vehicle) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrNonPositiveDimensions
	}
	if len(vehicles) == 0 {
		return nil, ErrNoVehicles
	}

	cloned := make([]Vehicle, len(vehicles))
	copy(cloned, vehicles)

	b := &Board{
		Width:    width,
		Height:   height,
		Vehicles: cloned,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	b.buildIndex()

	return b, nil
}

func (b *Board) buildIndex() {
	b.index = make(map[string]int, len(b.Vehicles))
	for i, v := range b.Vehicles {
		b.index[v.ID] = i
	}
}

// validate re-runs the board invariants of spec.md §3 against the current
// vehicle list.
func (b *Board) validate() error {
	occupied := make(map[point]string, b.Width*b.Height)
	for _, v := range b.Vehicles {
		if v.Length < 1 {
			return fmt.Errorf("%w: vehicle %q has non-positive length %d", ErrVehicleOutOfBounds, v.ID, v.Length)
		}
		for _, c := range v.cells() {
			if c.x < 0 || c.x >= b.Width || c.y < 0 || c.y >= b.Height {
				return fmt.Errorf("%w: vehicle %q at (%d,%d)", ErrVehicleOutOfBounds, v.ID, c.x, c.y)
			}
			if owner, ok := occupied[c]; ok {
				return fmt.Errorf("%w: vehicle %q collides with %q at (%d,%d)", ErrVehicleOverlap, v.ID, owner, c.x, c.y)
			}
			occupied[c] = v.ID
		}
	}
	return nil
}

// Target returns the distinguished target vehicle (the first in the list).
func (b *Board) Target() Vehicle {
	return b.Vehicles[0]
}

// Solved reports whether the target vehicle's far edge has reached or
// passed the right edge of the grid (spec.md §3, Goal).
func (b *Board) Solved() bool {
	t := b.Target()
	return t.X+t.Length >= b.Width
}

// occupancy builds a dense grid of vehicle ids ('.' for empty) used by both
// Key and Moves.
func (b *Board) occupancy() [][]string {
	grid := make([][]string, b.Height)
	for y := range grid {
		grid[y] = make([]string, b.Width)
		for x := range grid[y] {
			grid[y][x] = "."
		}
	}
	for _, v := range b.Vehicles {
		for _, c := range v.cells() {
			grid[c.y][c.x] = v.ID
		}
	}
	return grid
}

// Key returns the canonical state-key serialization of the board: an
// HxW grid of single-id cells ('.' for empty), rows newline-joined. Two
// boards with identical occupancy produce identical keys regardless of
// vehicle-list order (spec.md §3).
func (b *Board) Key() string {
	grid := b.occupancy()
	rows := make([]string, b.Height)
	for y, row := range grid {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

// Moves enumerates every legal move from this board in the deterministic
// order spec.md §4.1 requires: vehicles in list order; for each vehicle,
// forward direction first (increasing magnitude) then reverse direction
// (increasing magnitude).
func (b *Board) Moves() []Move {
	grid := b.occupancy()
	var moves []Move

	for _, v := range b.Vehicles {
		moves = append(moves, scanDirection(v, grid, b.Width, b.Height, 1)...)
		moves = append(moves, scanDirection(v, grid, b.Width, b.Height, -1)...)
	}

	return moves
}

// scanDirection walks from v's leading edge in the given sign (+1 or -1)
// cell by cell, emitting one Move per empty cell reached until the first
// obstruction or board edge.
func scanDirection(v Vehicle, grid [][]string, width, height, sign int) []Move {
	var moves []Move
	for mag := 1; ; mag++ {
		var x, y int
		if v.Orientation == Horizontal {
			if sign > 0 {
				x, y = v.X+v.Length-1+mag, v.Y
			} else {
				x, y = v.X-mag, v.Y
			}
		} else {
			if sign > 0 {
				x, y = v.X, v.Y+v.Length-1+mag
			} else {
				x, y = v.X, v.Y-mag
			}
		}
		if x < 0 || x >= width || y < 0 || y >= height {
			break
		}
		if grid[y][x] != "." {
			break
		}
		moves = append(moves, Move{VehicleID: v.ID, Delta: sign * mag})
	}
	return moves
}

// MoveCost returns the cost of applying m against b: vehicle.Length *
// |Delta| (spec.md §4.6). The vehicle must exist on b.
func (b *Board) MoveCost(m Move) (int64, error) {
	idx, ok := b.index[m.VehicleID]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVehicle, m.VehicleID)
	}
	if m.Delta == 0 {
		return 0, ErrZeroDisplacement
	}
	v := b.Vehicles[idx]
	d := m.Delta
	if d < 0 {
		d = -d
	}
	return int64(v.Length) * int64(d), nil
}

// Apply produces a new Board with the named vehicle's origin shifted by
// Delta along its own axis, re-validating the result. Moves produced by
// Board.Moves never fail validation; a failure here indicates the caller
// constructed an illegal Move by hand or a successor-generation bug, which
// is a programmer error per spec.md §7 and is reported as a panic rather
// than an error return, to match the "invariant error" class.
func (b *Board) Apply(m Move) *Board {
	idx, ok := b.index[m.VehicleID]
	if !ok {
		panic(fmt.Sprintf("board: Apply: %v: %q", ErrUnknownVehicle, m.VehicleID))
	}
	if m.Delta == 0 {
		panic(fmt.Sprintf("board: Apply: %v", ErrZeroDisplacement))
	}

	cloned := make([]Vehicle, len(b.Vehicles))
	copy(cloned, b.Vehicles)

	v := cloned[idx]
	if v.Orientation == Horizontal {
		cloned[idx] = v.WithOrigin(v.X+m.Delta, v.Y)
	} else {
		cloned[idx] = v.WithOrigin(v.X, v.Y+m.Delta)
	}

	nb := &Board{Width: b.Width, Height: b.Height, Vehicles: cloned}
	if err := nb.validate(); err != nil {
		panic(fmt.Sprintf("board: Apply produced an invalid board: %v", err))
	}
	nb.buildIndex()

	return nb
}

// ApplyAll applies a sequence of moves in order, returning the resulting
// Board. Used to replay a solution for visualization (spec.md §2).
func (b *Board) ApplyAll(moves []Move) *Board {
	cur := b
	for _, m := range moves {
		cur = cur.Apply(m)
	}
	return cur
}

// Clone returns a deep, independent copy of b. Boards are immutable and
// safe to share by reference; Clone exists for callers that want a value
// guaranteed never to alias b's backing slice (e.g. recording history).
func (b *Board) Clone() *Board {
	cloned := make([]Vehicle, len(b.Vehicles))
	copy(cloned, b.Vehicles)
	nb := &Board{Width: b.Width, Height: b.Height, Vehicles: cloned}
	nb.buildIndex()
	return nb
}

// String renders the board as its occupancy grid followed by the sorted
// list of vehicle ids, for logs and test failure output.
func (b *Board) String() string {
	return fmt.Sprintf("%s\nvehicles: %s", b.Key(), strings.Join(b.sortedVehicleIDs(), ","))
}

// sortedVehicleIDs returns vehicle ids sorted, useful for deterministic
// diagnostics/tests that enumerate a board's pieces.
func (b *Board) sortedVehicleIDs() []string {
	ids := make([]string, len(b.Vehicles))
	for i, v := range b.Vehicles {
		ids[i] = v.ID
	}
	sort.Strings(ids)
	return ids
}
