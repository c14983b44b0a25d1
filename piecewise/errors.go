package piecewise

import "errors"

// Errors returned by construction and evaluation. Every fallible
// operation of this package wraps one of these sentinels; callers
// discriminate with errors.Is.
var (
	// ErrEmpty is returned when construction is given zero points.
	ErrEmpty = errors.New("the provided point set is empty")

	// ErrUndefined is returned when two points share the same x but
	// differ in y, so the point set does not describe a function.
	ErrUndefined = errors.New("the function is undefined")

	// ErrNotInDomain is returned when an evaluation query falls outside
	// of [MinX, MaxX].
	ErrNotInDomain = errors.New("the value is not in the domain")

	// ErrNaN is returned when a NaN value is supplied to construction
	// or as an evaluation query.
	ErrNaN = errors.New("the value provided is NaN")
)
