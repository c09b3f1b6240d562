package spline

// cubicSegment is the shared representation of the cubic uniform spline
// segments. The polynomial is derived from the control points exactly once,
// when the segment is constructed.
type cubicSegment[V Vector[V]] struct {
	pts  [4]V
	poly Polynomial[V]
}

func newCubicSegment[V Vector[V]](m CharacteristicMatrix, pts [4]V) cubicSegment[V] {
	return cubicSegment[V]{
		pts:  pts,
		poly: PolynomialFromPoints(m, pts[:]...),
	}
}

// Degree returns 3.
func (s cubicSegment[V]) Degree() int { return 3 }

// Polynomial returns the polynomial form of the segment.
func (s cubicSegment[V]) Polynomial() Polynomial[V] { return s.poly }

// Points returns the segment's control set.
func (s cubicSegment[V]) Points() [4]V { return s.pts }

func (s cubicSegment[V]) Eval(t float64) V                 { return s.poly.Eval(t) }
func (s cubicSegment[V]) EvalDerivative(t float64) V       { return s.poly.EvalDerivative(t) }
func (s cubicSegment[V]) EvalSecondDerivative(t float64) V { return s.poly.EvalSecondDerivative(t) }
func (s cubicSegment[V]) EvalThirdDerivative(t float64) V  { return s.poly.EvalThirdDerivative(t) }

// Bounds returns the bounding box of the segment on t ∈ [0, 1].
func (s cubicSegment[V]) Bounds() Bounds[V] { return s.poly.Bounds() }

// quadSegment is the quadratic counterpart of cubicSegment.
type quadSegment[V Vector[V]] struct {
	pts  [3]V
	poly Polynomial[V]
}

func newQuadSegment[V Vector[V]](m CharacteristicMatrix, pts [3]V) quadSegment[V] {
	return quadSegment[V]{
		pts:  pts,
		poly: PolynomialFromPoints(m, pts[:]...),
	}
}

// Degree returns 2.
func (s quadSegment[V]) Degree() int { return 2 }

// Polynomial returns the polynomial form of the segment.
func (s quadSegment[V]) Polynomial() Polynomial[V] { return s.poly }

// Points returns the segment's control set.
func (s quadSegment[V]) Points() [3]V { return s.pts }

func (s quadSegment[V]) Eval(t float64) V                 { return s.poly.Eval(t) }
func (s quadSegment[V]) EvalDerivative(t float64) V       { return s.poly.EvalDerivative(t) }
func (s quadSegment[V]) EvalSecondDerivative(t float64) V { return s.poly.EvalSecondDerivative(t) }

// Bounds returns the bounding box of the segment on t ∈ [0, 1].
func (s quadSegment[V]) Bounds() Bounds[V] { return s.poly.Bounds() }

func convert4[V Vector[V]](from, to CharacteristicMatrix, pts [4]V) [4]V {
	return [4]V(Transform(ConversionMatrix(from, to), pts[:]...))
}

func convert3[V Vector[V]](from, to CharacteristicMatrix, pts [3]V) [3]V {
	return [3]V(Transform(ConversionMatrix(from, to), pts[:]...))
}

// pointsFromPolynomial recovers the control points of a cubic polynomial in
// the basis described by m.
func pointsFromPolynomial[V Vector[V]](m CharacteristicMatrix, p Polynomial[V]) [4]V {
	return [4]V(Transform(inverseOf(m), p.C0, p.C1, p.C2, p.C3))
}
