package spline

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

var _ Curve4Diff[Vec3] = BSpline[Vec3]{}

// BSpline is a B-spline of arbitrary degree over an arbitrary non-decreasing
// knot vector.
//
// The curve is defined on the internal knot range, the knots from index
// Degree to KnotCount-Degree-1. Each pair of consecutive internal knots
// delimits one polynomial segment (possibly empty, for repeated knots).
//
// BSpline values are immutable and safe for concurrent use.
type BSpline[V Vector[V]] struct {
	points []V
	knots  []float64
	degree int
}

// NewBSpline returns a B-spline with the given control points, knot vector and
// degree. The slices are copied.
//
// The knot vector must have exactly len(points)+degree+1 non-decreasing
// entries, and there must be at least degree+1 points.
func NewBSpline[V Vector[V]](points []V, knots []float64, degree int) (BSpline[V], error) {
	if degree < 0 {
		return BSpline[V]{}, errors.Wrapf(ErrInvalidDegree, "degree %d is negative", degree)
	}
	if len(points) < degree+1 {
		return BSpline[V]{}, errors.Wrapf(ErrTooFewPoints,
			"a degree %d B-spline needs at least %d points, got %d", degree, degree+1, len(points))
	}
	if want := len(points) + degree + 1; len(knots) != want {
		return BSpline[V]{}, errors.Wrapf(ErrKnotCount,
			"got %d knots for %d points of degree %d, want %d", len(knots), len(points), degree, want)
	}
	if !knotsNonDecreasing(knots) {
		return BSpline[V]{}, errors.WithStack(ErrKnotOrder)
	}
	return BSpline[V]{
		points: slices.Clone(points),
		knots:  slices.Clone(knots),
		degree: degree,
	}, nil
}

// NewUniformBSpline returns a B-spline with a uniform knot vector, as
// generated by [UniformKnots]. An open B-spline passes through its first and
// last control points.
func NewUniformBSpline[V Vector[V]](points []V, degree int, open bool) (BSpline[V], error) {
	if degree < 0 {
		return BSpline[V]{}, errors.Wrapf(ErrInvalidDegree, "degree %d is negative", degree)
	}
	return NewBSpline(points, UniformKnots(degree, len(points), open), degree)
}

// Degree returns the polynomial degree of the B-spline.
func (s BSpline[V]) Degree() int { return s.degree }

// Order returns Degree()+1.
func (s BSpline[V]) Order() int { return s.degree + 1 }

func (s BSpline[V]) PointCount() int { return len(s.points) }
func (s BSpline[V]) KnotCount() int  { return len(s.knots) }

// Point returns control point i.
func (s BSpline[V]) Point(i int) V { return s.points[i] }

// Points returns a copy of the control points.
func (s BSpline[V]) Points() []V { return slices.Clone(s.points) }

// Knots returns a copy of the knot vector.
func (s BSpline[V]) Knots() []float64 { return slices.Clone(s.knots) }

// InternalKnotIndexStart returns the index of the first internal knot, which
// is the degree.
func (s BSpline[V]) InternalKnotIndexStart() int { return s.degree }

// InternalKnotIndexEnd returns the index of the last internal knot.
func (s BSpline[V]) InternalKnotIndexEnd() int { return len(s.knots) - s.degree - 1 }

// InternalKnotCount returns the number of internal knots.
func (s BSpline[V]) InternalKnotCount() int { return len(s.knots) - 2*s.degree }

// SegmentCount returns the number of segments, InternalKnotCount()-1.
func (s BSpline[V]) SegmentCount() int { return s.InternalKnotCount() - 1 }

// Domain returns the parameter range of the curve, from the first to the last
// internal knot.
func (s BSpline[V]) Domain() Interval {
	return Interval{s.knots[s.InternalKnotIndexStart()], s.knots[s.InternalKnotIndexEnd()]}
}

// IsOpen reports whether the first and last degree+1 knots are repeated,
// which makes the curve start and end at its first and last control points.
func (s BSpline[V]) IsOpen() bool {
	n := len(s.knots)
	for i := 1; i <= s.degree; i++ {
		if s.knots[i] != s.knots[0] || s.knots[n-1-i] != s.knots[n-1] {
			return false
		}
	}
	return true
}

// SpanIndex returns the index k of the knot span Knots[k] <= u < Knots[k+1]
// that contains u. Values outside the domain are clamped to the first or last
// span; u at the end of the domain belongs to the last span.
func (s BSpline[V]) SpanIndex(u float64) int {
	return knotSpan(s.knots, s.InternalKnotIndexStart(), s.InternalKnotIndexEnd(), u)
}

// Eval evaluates the curve at t ∈ [0, 1], which is mapped linearly onto the
// domain.
func (s BSpline[V]) Eval(t float64) V {
	return s.EvalAtKnotValue(s.Domain().Lerp(t))
}

// EvalAtKnotValue evaluates the curve at the knot value u. Outside the domain,
// the polynomial of the nearest segment is extrapolated.
func (s BSpline[V]) EvalAtKnotValue(u float64) V {
	return s.EvalSegment(s.SpanIndex(u), u)
}

// EvalSegment evaluates the polynomial of knot span k at the knot value u,
// using De Boor's algorithm. k must be an internal span, that is, in the range
// [InternalKnotIndexStart(), InternalKnotIndexEnd()).
func (s BSpline[V]) EvalSegment(k int, u float64) V {
	var stack [8]V
	return s.EvalSegmentBuffer(stack[:0], k, u)
}

// EvalSegmentBuffer is like [BSpline.EvalSegment] but uses buf as scratch
// space. If buf has a capacity of at least Degree()+1, evaluation doesn't
// allocate. buf can be reused across calls; its contents are overwritten.
func (s BSpline[V]) EvalSegmentBuffer(buf []V, k int, u float64) V {
	lo, hi := s.InternalKnotIndexStart(), s.InternalKnotIndexEnd()
	if k < lo || k >= hi {
		panic(fmt.Sprintf("knot span %d out of range [%d, %d)", k, lo, hi))
	}
	p := s.degree
	if cap(buf) < p+1 {
		buf = make([]V, p+1)
	}
	buf = buf[:p+1]
	copy(buf, s.points[k-p:k+1])
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			k0 := s.knots[j+k-p]
			den := s.knots[j+1+k-r] - k0
			var alpha float64
			if den != 0 {
				alpha = (u - k0) / den
			}
			buf[j] = buf[j-1].Lerp(buf[j], alpha)
		}
	}
	return buf[p]
}

// Basis returns the weight of control point i at the knot value u, computed
// with the Cox-de Boor recursion. The weights of all points sum to 1, and
// Basis agrees with [BSpline.EvalAtKnotValue] everywhere, including outside
// the domain.
func (s BSpline[V]) Basis(i int, u float64) float64 {
	if i < 0 || i >= len(s.points) {
		panic(fmt.Sprintf("basis function index %d out of range [0, %d)", i, len(s.points)))
	}
	return s.coxDeBoor(i, s.degree, s.SpanIndex(u), u)
}

// coxDeBoor evaluates N_{i,k}(u). The degree 0 functions are the indicator of
// the span chosen by SpanIndex, which closes the last span at the end of the
// domain.
func (s BSpline[V]) coxDeBoor(i, k, span int, u float64) float64 {
	if k == 0 {
		if i == span {
			return 1
		}
		return 0
	}
	return knotRatio(s.knots, i, k, u)*s.coxDeBoor(i, k-1, span, u) +
		(1-knotRatio(s.knots, i+1, k, u))*s.coxDeBoor(i+1, k-1, span, u)
}

// Differentiate returns the derivative of the curve with respect to the knot
// value, a B-spline of one degree lower with one control point less. It
// shares the knot storage of s.
//
// Differentiate panics if the degree is 0.
func (s BSpline[V]) Differentiate() BSpline[V] {
	if s.degree == 0 {
		panic("cannot differentiate a B-spline of degree 0")
	}
	p := s.degree
	d := make([]V, len(s.points)-1)
	for i := range d {
		den := s.knots[i+p+1] - s.knots[i+1]
		if den == 0 {
			// repeated knot; the zero value is the zero vector
			continue
		}
		d[i] = s.points[i+1].Sub(s.points[i]).Mul(float64(p) / den)
	}
	return BSpline[V]{
		points: d,
		knots:  s.knots[1 : len(s.knots)-1],
		degree: p - 1,
	}
}

// evalDerivative evaluates the nth derivative with respect to t ∈ [0, 1].
func (s BSpline[V]) evalDerivative(t float64, n int) V {
	dom := s.Domain()
	scale := 1.0
	d := s
	for range n {
		if d.degree == 0 {
			var zero V
			return zero
		}
		d = d.Differentiate()
		scale *= dom.Length()
	}
	return d.EvalAtKnotValue(dom.Lerp(t)).Mul(scale)
}

// EvalDerivative evaluates the first derivative with respect to t, the
// normalized parameter used by [BSpline.Eval].
func (s BSpline[V]) EvalDerivative(t float64) V { return s.evalDerivative(t, 1) }

// EvalSecondDerivative evaluates the second derivative with respect to t.
func (s BSpline[V]) EvalSecondDerivative(t float64) V { return s.evalDerivative(t, 2) }

// EvalThirdDerivative evaluates the third derivative with respect to t.
func (s BSpline[V]) EvalThirdDerivative(t float64) V { return s.evalDerivative(t, 3) }

// EvalFourthDerivative evaluates the fourth derivative with respect to t.
func (s BSpline[V]) EvalFourthDerivative(t float64) V { return s.evalDerivative(t, 4) }

// InsertKnot inserts the knot value u using Boehm's algorithm. The returned
// B-spline has one more control point and describes the same curve. u must lie
// in the domain.
func (s BSpline[V]) InsertKnot(u float64) (BSpline[V], error) {
	if !s.Domain().Contains(u) {
		return BSpline[V]{}, errors.Wrapf(ErrInvalidArgument, "knot %g outside of domain [%g, %g]",
			u, s.Domain().Start, s.Domain().End)
	}
	p := s.degree
	k := s.SpanIndex(u)
	points := make([]V, len(s.points)+1)
	for i := range points {
		switch {
		case i <= k-p:
			points[i] = s.points[i]
		case i > k:
			points[i] = s.points[i-1]
		default:
			a := knotRatio(s.knots, i, p, u)
			points[i] = s.points[i-1].Lerp(s.points[i], a)
		}
	}
	knots := make([]float64, 0, len(s.knots)+1)
	knots = append(knots, s.knots[:k+1]...)
	knots = append(knots, u)
	knots = append(knots, s.knots[k+1:]...)
	return BSpline[V]{points: points, knots: knots, degree: p}, nil
}

// UniformBSplineSegments returns the segments of the uniform cubic B-spline
// with the given control points, one per window of four consecutive points.
// Together they trace the same curve as a closed (unclamped) degree 3
// [BSpline] over the points.
func UniformBSplineSegments[V Vector[V]](points []V) iter.Seq[CubicUniformBSpline[V]] {
	return func(yield func(CubicUniformBSpline[V]) bool) {
		for i := 0; i+3 < len(points); i++ {
			if !yield(NewCubicUniformBSpline(points[i], points[i+1], points[i+2], points[i+3])) {
				return
			}
		}
	}
}
