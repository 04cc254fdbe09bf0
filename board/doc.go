// Package board defines the immutable grid state of a Rush Hour puzzle:
// vehicles, moves, successor generation, move application, goal testing,
// and the canonical state key used by every search strategy as a
// visited-set identifier.
//
// A Board is never mutated after construction. Applying a Move clones the
// vehicle list, shifts the named vehicle's origin, and re-validates the
// result, producing a fresh *Board. Moves and Vehicles are themselves
// immutable values.
//
// Invariants (checked by New and re-checked by Apply/ApplyAll):
//
//   - Every vehicle lies entirely within [0,Width) x [0,Height).
//   - No two vehicles occupy the same cell.
//   - Width and Height are positive.
//
// Errors:
//
//	ErrNonPositiveDimensions - Width or Height is not > 0.
//	ErrVehicleOutOfBounds    - a vehicle extends outside the grid.
//	ErrVehicleOverlap        - two vehicles occupy the same cell.
//	ErrNoVehicles            - the vehicle list is empty (no target).
//	ErrUnknownVehicle        - a Move names a vehicle id absent from the board.
//
// The first of ErrVehicleOutOfBounds/ErrVehicleOverlap raised by a move
// produced by Board.Moves is a programmer error, not a data error (see
// Board.Apply), and is reported by a panic rather than a returned error.
package board
