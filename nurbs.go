package spline

import (
	"math"

	"github.com/pkg/errors"
)

var _ Curve2Diff[Vec2] = NURBS[Vec2]{}

// NURBS is a non-uniform rational B-spline: a [BSpline] whose control points
// carry weights. Raising a weight pulls the curve towards its point. Unlike
// polynomial B-splines, NURBS can represent conic sections exactly.
//
// Internally, the curve is the quotient of two B-splines over the same knots,
// one of the weighted points and one of the weights.
type NURBS[V Vector[V]] struct {
	num BSpline[V]
	den BSpline[Vec1]
}

// NewNURBS returns a rational B-spline. There must be exactly one positive
// weight per control point; the remaining arguments are validated as by
// [NewBSpline].
func NewNURBS[V Vector[V]](points []V, weights []float64, knots []float64, degree int) (NURBS[V], error) {
	if len(weights) != len(points) {
		return NURBS[V]{}, errors.Wrapf(ErrWeightCount, "got %d weights for %d points", len(weights), len(points))
	}
	wpts := make([]V, len(points))
	ws := make([]Vec1, len(points))
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 0) {
			return NURBS[V]{}, errors.Wrapf(ErrInvalidArgument, "weight %d is %g, must be positive and finite", i, w)
		}
		wpts[i] = points[i].Mul(w)
		ws[i] = Vec1{w}
	}
	num, err := NewBSpline(wpts, knots, degree)
	if err != nil {
		return NURBS[V]{}, err
	}
	den, err := NewBSpline(ws, knots, degree)
	if err != nil {
		return NURBS[V]{}, err
	}
	return NURBS[V]{num: num, den: den}, nil
}

// NewUniformNURBS is like [NewNURBS] but generates the knot vector with
// [UniformKnots].
func NewUniformNURBS[V Vector[V]](points []V, weights []float64, degree int, open bool) (NURBS[V], error) {
	if degree < 0 {
		return NURBS[V]{}, errors.Wrapf(ErrInvalidDegree, "degree %d is negative", degree)
	}
	return NewNURBS(points, weights, UniformKnots(degree, len(points), open), degree)
}

func (n NURBS[V]) Degree() int      { return n.num.Degree() }
func (n NURBS[V]) Domain() Interval { return n.num.Domain() }
func (n NURBS[V]) Knots() []float64 { return n.num.Knots() }

// Points returns the unweighted control points.
func (n NURBS[V]) Points() []V {
	pts := make([]V, n.num.PointCount())
	for i := range pts {
		pts[i] = n.num.Point(i).Mul(1 / n.den.Point(i).X)
	}
	return pts
}

// Weights returns the weights of the control points.
func (n NURBS[V]) Weights() []float64 {
	ws := make([]float64, n.den.PointCount())
	for i := range ws {
		ws[i] = n.den.Point(i).X
	}
	return ws
}

// Eval evaluates the curve at t ∈ [0, 1], which is mapped onto the domain.
func (n NURBS[V]) Eval(t float64) V {
	return n.num.Eval(t).Mul(1 / n.den.Eval(t).X)
}

// EvalAtKnotValue evaluates the curve at the knot value u.
func (n NURBS[V]) EvalAtKnotValue(u float64) V {
	return n.num.EvalAtKnotValue(u).Mul(1 / n.den.EvalAtKnotValue(u).X)
}

// EvalDerivative evaluates the first derivative with respect to t.
//
//	C' = (A' − W'C) / W
func (n NURBS[V]) EvalDerivative(t float64) V {
	w := n.den.Eval(t).X
	dw := n.den.EvalDerivative(t).X
	c := n.num.Eval(t).Mul(1 / w)
	return n.num.EvalDerivative(t).Sub(c.Mul(dw)).Mul(1 / w)
}

// EvalSecondDerivative evaluates the second derivative with respect to t.
//
//	C'' = (A'' − 2W'C' − W''C) / W
func (n NURBS[V]) EvalSecondDerivative(t float64) V {
	w := n.den.Eval(t).X
	dw := n.den.EvalDerivative(t).X
	ddw := n.den.EvalSecondDerivative(t).X
	c := n.num.Eval(t).Mul(1 / w)
	dc := n.num.EvalDerivative(t).Sub(c.Mul(dw)).Mul(1 / w)
	return n.num.EvalSecondDerivative(t).Sub(dc.Mul(2 * dw)).Sub(c.Mul(ddw)).Mul(1 / w)
}

// InsertKnot inserts the knot value u without changing the curve's shape.
func (n NURBS[V]) InsertKnot(u float64) (NURBS[V], error) {
	num, err := n.num.InsertKnot(u)
	if err != nil {
		return NURBS[V]{}, err
	}
	den, err := n.den.InsertKnot(u)
	if err != nil {
		return NURBS[V]{}, err
	}
	return NURBS[V]{num: num, den: den}, nil
}
