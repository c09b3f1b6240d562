package spline

var (
	_ Curve3Diff[Vec2] = CubicBezier[Vec2]{}
	_ Curve2Diff[Vec2] = QuadBezier[Vec2]{}
)

// CubicBezier is a cubic Bézier segment. It passes through its first and last
// control points; the inner control points shape the tangents.
type CubicBezier[V Vector[V]] struct {
	cubicSegment[V]
}

// NewCubicBezier returns the Bézier segment with the control points p0–p3.
func NewCubicBezier[V Vector[V]](p0, p1, p2, p3 V) CubicBezier[V] {
	return CubicBezier[V]{newCubicSegment(CubicBezierMatrix, [4]V{p0, p1, p2, p3})}
}

func (c CubicBezier[V]) Start() V { return c.pts[0] }
func (c CubicBezier[V]) End() V   { return c.pts[3] }

// Split subdivides the segment at t, using de Casteljau.
func (c CubicBezier[V]) Split(t float64) (CubicBezier[V], CubicBezier[V]) {
	p0, p1, p2, p3 := c.pts[0], c.pts[1], c.pts[2], c.pts[3]
	a := p0.Lerp(p1, t)
	b := p1.Lerp(p2, t)
	cc := p2.Lerp(p3, t)
	d := a.Lerp(b, t)
	e := b.Lerp(cc, t)
	pm := d.Lerp(e, t)
	return NewCubicBezier(p0, a, d, pm), NewCubicBezier(pm, e, cc, p3)
}

// Subdivide subdivides the segment into halves.
func (c CubicBezier[V]) Subdivide() (CubicBezier[V], CubicBezier[V]) {
	return c.Split(0.5)
}

// Subsegment returns the Bézier segment tracing c on [t0, t1].
func (c CubicBezier[V]) Subsegment(t0, t1 float64) CubicBezier[V] {
	pts := pointsFromPolynomial(CubicBezierMatrix, c.poly.Remap(t0, t1))
	return NewCubicBezier(pts[0], pts[1], pts[2], pts[3])
}

// Differentiate returns the hodograph of the segment, a quadratic Bézier.
func (c CubicBezier[V]) Differentiate() QuadBezier[V] {
	return NewQuadBezier(
		c.pts[1].Sub(c.pts[0]).Mul(3),
		c.pts[2].Sub(c.pts[1]).Mul(3),
		c.pts[3].Sub(c.pts[2]).Mul(3),
	)
}

// ToUniformBSpline converts the segment to the uniform B-spline segment
// describing the same curve.
func (c CubicBezier[V]) ToUniformBSpline() CubicUniformBSpline[V] {
	p := convert4(CubicBezierMatrix, CubicUniformBSplineMatrix, c.pts)
	return NewCubicUniformBSpline(p[0], p[1], p[2], p[3])
}

// ToHermite converts the segment to Hermite form.
func (c CubicBezier[V]) ToHermite() CubicHermite[V] {
	p := convert4(CubicBezierMatrix, CubicHermiteMatrix, c.pts)
	return NewCubicHermite(p[0], p[1], p[2], p[3])
}

// ToCatmullRom converts the segment to a Catmull-Rom segment.
func (c CubicBezier[V]) ToCatmullRom() CatmullRom[V] {
	p := convert4(CubicBezierMatrix, CatmullRomMatrix, c.pts)
	return NewCatmullRom(p[0], p[1], p[2], p[3])
}

// QuadBezier is a quadratic Bézier segment.
type QuadBezier[V Vector[V]] struct {
	quadSegment[V]
}

// NewQuadBezier returns the Bézier segment with the control points p0–p2.
func NewQuadBezier[V Vector[V]](p0, p1, p2 V) QuadBezier[V] {
	return QuadBezier[V]{newQuadSegment(QuadraticBezierMatrix, [3]V{p0, p1, p2})}
}

func (q QuadBezier[V]) Start() V { return q.pts[0] }
func (q QuadBezier[V]) End() V   { return q.pts[2] }

// Raise raises the degree by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBezier[V]) Raise() CubicBezier[V] {
	p0, p1, p2 := q.pts[0], q.pts[1], q.pts[2]
	return NewCubicBezier(
		p0,
		p0.Add(p1.Sub(p0).Mul(2.0/3.0)),
		p2.Add(p1.Sub(p2).Mul(2.0/3.0)),
		p2,
	)
}

// Split subdivides the segment at t, using de Casteljau.
func (q QuadBezier[V]) Split(t float64) (QuadBezier[V], QuadBezier[V]) {
	a := q.pts[0].Lerp(q.pts[1], t)
	b := q.pts[1].Lerp(q.pts[2], t)
	pm := a.Lerp(b, t)
	return NewQuadBezier(q.pts[0], a, pm), NewQuadBezier(pm, b, q.pts[2])
}

// ToUniformBSpline converts the segment to the quadratic uniform B-spline
// segment describing the same curve.
func (q QuadBezier[V]) ToUniformBSpline() QuadUniformBSpline[V] {
	p := convert3(QuadraticBezierMatrix, QuadraticUniformBSplineMatrix, q.pts)
	return NewQuadUniformBSpline(p[0], p[1], p[2])
}
