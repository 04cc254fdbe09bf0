package board

import "fmt"

// Orientation is the axis a Vehicle slides along.
type Orientation uint8

const (
	// Horizontal vehicles extend to the right (+X) and slide along X.
	Horizontal Orientation = iota
	// Vertical vehicles extend downward (+Y) and slide along Y.
	Vertical
)

// String renders the orientation as 'H' or 'V', matching spec notation.
func (o Orientation) String() string {
	if o == Vertical {
		return "V"
	}
	return "H"
}

// TargetID is the reserved identifier for the vehicle that must reach the
// exit. By convention it is also the first entry of Board.Vehicles.
const TargetID = "R"

// Vehicle is an immutable axis-aligned rigid piece.
//
// ID uniquely identifies the vehicle within its Board. Origin is the
// vehicle's (X, Y) top-left cell; X is the column, Y is the row. Length is
// the number of cells the vehicle occupies along its Orientation. A Vehicle
// is never mutated after construction; WithOrigin returns a shifted copy.
type Vehicle struct {
	ID          string
	X, Y        int
	Length      int
	Orientation Orientation
}

// WithOrigin returns a copy of v placed at the given origin.
func (v Vehicle) WithOrigin(x, y int) Vehicle {
	v.X, v.Y = x, y
	return v
}

// cells returns every (x, y) cell occupied by v.
func (v Vehicle) cells() []point {
	pts := make([]point, v.Length)
	for i := 0; i < v.Length; i++ {
		if v.Orientation == Horizontal {
			pts[i] = point{v.X + i, v.Y}
		} else {
			pts[i] = point{v.X, v.Y + i}
		}
	}
	return pts
}

// point is an internal (x, y) grid coordinate.
type point struct{ x, y int }

// Move is a signed, nonzero displacement of a single vehicle along its own
// axis, in units of cells. Positive is right (Horizontal) or down
// (Vertical). Move carries no notion of validity against a specific board;
// that is Board's responsibility.
type Move struct {
	VehicleID string
	Delta     int
}

// String renders a Move as "id:+n" or "id:-n", useful for logs and tests.
func (m Move) String() string {
	if m.Delta >= 0 {
		return fmt.Sprintf("%s:+%d", m.VehicleID, m.Delta)
	}
	return fmt.Sprintf("%s:%d", m.VehicleID, m.Delta)
}
