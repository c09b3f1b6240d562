package spline

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// DefaultArcLengthAccuracy is the number of samples used by [ArcLength] when
// callers don't have more specific requirements.
const DefaultArcLengthAccuracy = 8

// Tangent returns the unit tangent of the curve at t. It returns the zero
// vector where the curve is stationary.
func Tangent[V Vector[V]](c Deriver[V], t float64) V {
	return normalizeOrZero(c.EvalDerivative(t))
}

// Speed returns the magnitude of the curve's velocity at t.
func Speed[V Vector[V]](c Deriver[V], t float64) float64 {
	return c.EvalDerivative(t).Hypot()
}

// ArcLength approximates the length of the curve on iv by the length of the
// polyline through accuracy evenly spaced samples. accuracy is clamped to a
// minimum of 2.
//
// The approximation never overestimates the length of a curve and approaches
// it as accuracy grows, but it is only exact for straight segments. Use
// [ArcLengthQuadrature] for curves with a derivative when precision matters.
func ArcLength[V Vector[V]](c Evaler[V], iv Interval, accuracy int) float64 {
	accuracy = max(accuracy, 2)
	var (
		length float64
		prev   V
		first  = true
	)
	for _, p := range Samples(c, iv, accuracy) {
		if !first {
			length += Distance(prev, p)
		}
		first = false
		prev = p
	}
	return length
}

// ArcLengthQuadrature computes the length of the curve on iv by integrating
// its speed with n-point Gauss-Legendre quadrature. For polynomial segments
// the integrand is smooth and a handful of points per segment suffice.
//
// n is clamped to a minimum of 1.
func ArcLengthQuadrature[V Vector[V]](c Deriver[V], iv Interval, n int) float64 {
	lo, hi := iv.Start, iv.End
	if lo > hi {
		lo, hi = hi, lo
	}
	speed := func(t float64) float64 {
		return c.EvalDerivative(t).Hypot()
	}
	l := quad.Fixed(speed, lo, hi, max(n, 1), quad.Legendre{}, 0)
	if math.IsNaN(l) {
		return 0
	}
	return l
}
