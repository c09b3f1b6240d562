package spline

import "github.com/pkg/errors"

// Errors returned by constructors and functions that validate their input.
// They are wrapped with additional context; use [errors.Is] to test for them.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidDegree   = errors.New("invalid degree")
	ErrKnotCount       = errors.New("knot count must equal point count + degree + 1")
	ErrKnotOrder       = errors.New("knots must be non-decreasing")
	ErrTooFewPoints    = errors.New("too few control points")
	ErrWeightCount     = errors.New("weight count must equal point count")
)
