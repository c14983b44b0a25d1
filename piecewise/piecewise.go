// Package piecewise implements one-dimensional piecewise-linear
// functions defined by a set of (x, y) control points and evaluated by
// linear interpolation between the two nearest bracketing points.
// Queries outside of the defined domain are rejected rather than
// extrapolated.
package piecewise

import (
	"fmt"
	"math"
	"slices"

	"github.com/zeebo/blake3"
)

// Piecewise is an immutable piecewise-linear function stored as a
// non-empty sequence of control points sorted ascending by x. For every
// stored x there is exactly one associated y (exact duplicate points
// are tolerated). The zero value is not a valid function: evaluating it
// fails with ErrNotInDomain and every other method requires a value
// built by New, FromPairs or one of the decoding methods.
//
// A Piecewise holds no mutable state and is safe for concurrent use.
type Piecewise struct {
	points []Coord
}

// New validates and canonicalizes points into a Piecewise. The input
// may be in any order and may contain exact duplicates. It returns
// ErrEmpty for a zero-length input and ErrUndefined if two points share
// the same x but differ in y. A single point is accepted as-is and
// yields a function defined at that x only.
//
// The input slice is copied; the returned value does not retain it.
func New(points []Coord) (Piecewise, error) {
	switch len(points) {
	case 0:
		return Piecewise{}, fmt.Errorf("cannot New: %w", ErrEmpty)
	case 1:
		return Piecewise{points: []Coord{points[0]}}, nil
	}

	pts := make([]Coord, len(points))
	copy(pts, points)

	slices.SortStableFunc(pts, Coord.Compare)

	for i := 1; i < len(pts); i++ {
		if pts[i-1].x == pts[i].x && pts[i-1].y != pts[i].y {
			return Piecewise{}, fmt.Errorf("cannot New: two points at x=%v with different y: %w", pts[i].x, ErrUndefined)
		}
	}

	return Piecewise{points: pts}, nil
}

// FromPairs builds a Piecewise from raw (x, y) pairs, validating each
// pair through NewCoord before running the full construction.
func FromPairs(pairs [][2]float64) (Piecewise, error) {
	points := make([]Coord, len(pairs))

	var err error
	for i, pair := range pairs {
		if points[i], err = NewCoord(pair[0], pair[1]); err != nil {
			return Piecewise{}, fmt.Errorf("cannot FromPairs: pair %d: %w", i, err)
		}
	}

	return New(points)
}

// Len returns the number of stored control points.
func (p Piecewise) Len() int {
	return len(p.points)
}

// MinX returns the smallest x of the domain.
func (p Piecewise) MinX() float64 {
	return p.points[0].x
}

// MaxX returns the largest x of the domain.
func (p Piecewise) MaxX() float64 {
	return p.points[len(p.points)-1].x
}

// Points returns a copy of the control points in ascending-x order.
func (p Piecewise) Points() []Coord {
	pts := make([]Coord, len(p.points))
	copy(pts, p.points)
	return pts
}

// YAtX evaluates the function at x.
//
// A query equal to a stored control point returns the stored y
// directly, without interpolation, so control-point values are always
// recovered exactly. Any other in-domain query is interpolated between
// the bracketing points (x1, y1) and (x2, y2) as slope*(x-x1)+y1 with
// slope = (y1-y2)/(x1-x2); x1 != x2 is guaranteed by construction.
// Queries below MinX or above MaxX fail with ErrNotInDomain and NaN
// queries fail with ErrNaN.
func (p Piecewise) YAtX(x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("cannot YAtX: %w", ErrNaN)
	}

	// The points are sorted by construction, so the bracket around x is
	// the insertion index returned by a binary search.
	i, found := slices.BinarySearchFunc(p.points, x, func(c Coord, x float64) int {
		switch {
		case c.x < x:
			return -1
		case c.x > x:
			return 1
		default:
			return 0
		}
	})

	if found {
		return p.points[i].y, nil
	}

	if i == 0 || i == len(p.points) {
		return 0, fmt.Errorf("cannot YAtX: x=%v: %w", x, ErrNotInDomain)
	}

	x1, y1 := p.points[i-1].x, p.points[i-1].y
	x2, y2 := p.points[i].x, p.points[i].y

	slope := (y1 - y2) / (x1 - x2)

	return slope*(x-x1) + y1, nil
}

// Sample evaluates the function at n evenly spaced queries spanning
// [MinX, MaxX] and returns the resulting coordinates. The first and
// last sample coincide with the first and last control points. It
// requires n >= 2 and a domain wider than a single x, otherwise the
// spacing is undefined.
func (p Piecewise) Sample(n int) ([]Coord, error) {
	if n < 2 {
		return nil, fmt.Errorf("cannot Sample: n=%d but at least 2 samples are required", n)
	}

	minX, maxX := p.MinX(), p.MaxX()

	if minX == maxX {
		return nil, fmt.Errorf("cannot Sample: the domain is the single point x=%v: %w", minX, ErrNotInDomain)
	}

	step := (maxX - minX) / float64(n-1)

	samples := make([]Coord, n)
	for i := range samples {
		x := minX + float64(i)*step
		if i == n-1 {
			x = maxX // keeps rounding from drifting past the domain
		}

		y, err := p.YAtX(x)
		if err != nil {
			return nil, fmt.Errorf("cannot Sample: %w", err)
		}

		samples[i] = Coord{x: x, y: y}
	}

	return samples, nil
}

// Fingerprint returns the blake3 digest of the canonical binary
// encoding of p. Two functions with the same control points have the
// same fingerprint regardless of the order the points were supplied in.
func (p Piecewise) Fingerprint() ([32]byte, error) {
	data, err := p.MarshalBinary()
	if err != nil {
		return [32]byte{}, fmt.Errorf("cannot Fingerprint: %w", err)
	}

	return blake3.Sum256(data), nil
}
