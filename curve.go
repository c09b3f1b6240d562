package spline

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Evaler describes values that can be evaluated at a parameter t.
type Evaler[V any] interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1], but curves are free to define values outside of it.
	Eval(t float64) V
}

// Deriver describes curves that can evaluate their first derivative.
type Deriver[V any] interface {
	EvalDerivative(t float64) V
}

// SecondDeriver describes curves that can evaluate their second derivative.
type SecondDeriver[V any] interface {
	EvalSecondDerivative(t float64) V
}

// ThirdDeriver describes curves that can evaluate their third derivative.
type ThirdDeriver[V any] interface {
	EvalThirdDerivative(t float64) V
}

// FourthDeriver describes curves that can evaluate their fourth derivative.
type FourthDeriver[V any] interface {
	EvalFourthDerivative(t float64) V
}

// Curve describes a curve parametrized by a scalar.
//
// If the result is interpreted as a point, this represents a curve. But the
// result can be interpreted as a vector as well.
type Curve[V any] interface {
	Evaler[V]
	// Degree returns the polynomial degree of the curve.
	Degree() int
}

// Curve1Diff is a [Curve] with a first derivative.
type Curve1Diff[V any] interface {
	Curve[V]
	Deriver[V]
}

// Curve2Diff is a [Curve] with first and second derivatives.
type Curve2Diff[V any] interface {
	Curve1Diff[V]
	SecondDeriver[V]
}

// Curve3Diff is a [Curve] with the first three derivatives.
type Curve3Diff[V any] interface {
	Curve2Diff[V]
	ThirdDeriver[V]
}

// Curve4Diff is a [Curve] with the first four derivatives.
type Curve4Diff[V any] interface {
	Curve3Diff[V]
	FourthDeriver[V]
}

// Interval is a closed parameter interval. Start may be larger than End, in
// which case the interval is traversed backwards.
type Interval struct {
	Start float64
	End   float64
}

// UnitInterval is the interval [0, 1], the default parameter range of
// curve segments.
var UnitInterval = Interval{0, 1}

// Length returns End - Start.
func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// Lerp maps t ∈ [0, 1] onto the interval.
func (iv Interval) Lerp(t float64) float64 {
	return iv.Start*(1-t) + iv.End*t
}

// InverseLerp maps a value in the interval to [0, 1]. It returns 0 for an
// empty interval.
func (iv Interval) InverseLerp(v float64) float64 {
	if iv.End == iv.Start {
		return 0
	}
	return (v - iv.Start) / (iv.End - iv.Start)
}

// Contains reports whether v lies in the closed interval.
func (iv Interval) Contains(v float64) bool {
	lo, hi := min(iv.Start, iv.End), max(iv.Start, iv.End)
	return v >= lo && v <= hi
}

// Samples returns an iterator over n evenly spaced parameters in iv and the
// curve's values at them. The first and last samples are at iv.Start and
// iv.End. For n == 1, only iv.Start is sampled.
func Samples[V any](c Evaler[V], iv Interval, n int) iter.Seq2[float64, V] {
	return func(yield func(float64, V) bool) {
		switch {
		case n <= 0:
			return
		case n == 1:
			yield(iv.Start, c.Eval(iv.Start))
			return
		}
		for _, t := range floats.Span(make([]float64, n), iv.Start, iv.End) {
			if !yield(t, c.Eval(t)) {
				return
			}
		}
	}
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}
