package piecewise

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Coord is an (x, y) pair of non-NaN float64 components. Values built
// through NewCoord are validated, and the zero value is (0, 0). Since
// NaN is excluded by construction, the ordering on the x component used
// to sort and search control points is total.
type Coord struct {
	x, y float64
}

// NewCoord returns the coordinate (x, y), or ErrNaN if either component
// is NaN. Infinities are accepted.
func NewCoord(x, y float64) (Coord, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Coord{}, fmt.Errorf("cannot NewCoord: (%v, %v): %w", x, y, ErrNaN)
	}

	return Coord{x: x, y: y}, nil
}

// Number matches the built-in numeric types accepted by NewCoordFrom.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewCoordFrom returns the coordinate (x, y) with both components
// converted to float64. Like NewCoord, it returns ErrNaN if a component
// converts to NaN.
func NewCoordFrom[X, Y Number](x X, y Y) (Coord, error) {
	return NewCoord(float64(x), float64(y))
}

// UncheckedCoord returns the coordinate (x, y) without the NaN check.
// It exists to embed compile-time-constant control points without the
// per-element validation cost and must never be fed untrusted input:
// passing a NaN component breaks the Coord invariant and is a contract
// violation by the caller, not a runtime-checked error.
func UncheckedCoord(x, y float64) Coord {
	return Coord{x: x, y: y}
}

// X returns the x component.
func (c Coord) X() float64 { return c.x }

// Y returns the y component.
func (c Coord) Y() float64 { return c.y }

// Equal reports whether both components of c and other are equal.
func (c Coord) Equal(other Coord) bool {
	return c.x == other.x && c.y == other.y
}

// Compare orders coordinates by their x component only. It returns -1
// if c.X() < other.X(), 1 if c.X() > other.X() and 0 otherwise.
func (c Coord) Compare(other Coord) int {
	switch {
	case c.x < other.x:
		return -1
	case c.x > other.x:
		return 1
	default:
		return 0
	}
}
