package board

import "errors"

// Sentinel errors for board construction and move application.
var (
	// ErrNonPositiveDimensions indicates Width or Height was not strictly positive.
	ErrNonPositiveDimensions = errors.New("board: width and height must be positive")

	// ErrVehicleOutOfBounds indicates a vehicle extends outside the grid.
	ErrVehicleOutOfBounds = errors.New("board: vehicle out of bounds")

	// ErrVehicleOverlap indicates two vehicles occupy the same cell.
	ErrVehicleOverlap = errors.New("board: vehicles overlap")

	// ErrNoVehicles indicates the vehicle list is empty; there is no target vehicle.
	ErrNoVehicles = errors.New("board: vehicle list is empty")

	// ErrUnknownVehicle indicates a Move names a vehicle id absent from the board.
	ErrUnknownVehicle = errors.New("board: unknown vehicle id")

	// ErrZeroDisplacement indicates a Move with a zero displacement was constructed.
	ErrZeroDisplacement = errors.New("board: move displacement must be nonzero")
)
