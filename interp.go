/*
Package interp provides a small, pure Go library for one-dimensional
piecewise-linear functions. A function is described by a set of (x, y)
control points and evaluated at arbitrary query points by linear
interpolation between the two nearest bracketing points, without
extrapolation outside the defined domain.
*/
package interp
