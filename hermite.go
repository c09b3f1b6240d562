package spline

var _ Curve3Diff[Vec3] = CubicHermite[Vec3]{}

// CubicHermite is a cubic segment defined by its end points and the
// velocities at them.
type CubicHermite[V Vector[V]] struct {
	cubicSegment[V]
}

// NewCubicHermite returns the segment starting at p0 with velocity v0 and
// ending at p1 with velocity v1.
func NewCubicHermite[V Vector[V]](p0, v0, p1, v1 V) CubicHermite[V] {
	return CubicHermite[V]{newCubicSegment(CubicHermiteMatrix, [4]V{p0, v0, p1, v1})}
}

func (h CubicHermite[V]) P0() V { return h.pts[0] }
func (h CubicHermite[V]) V0() V { return h.pts[1] }
func (h CubicHermite[V]) P1() V { return h.pts[2] }
func (h CubicHermite[V]) V1() V { return h.pts[3] }

// ToBezier converts the segment to Bézier form.
func (h CubicHermite[V]) ToBezier() CubicBezier[V] {
	p := convert4(CubicHermiteMatrix, CubicBezierMatrix, h.pts)
	return NewCubicBezier(p[0], p[1], p[2], p[3])
}

// ToUniformBSpline converts the segment to uniform B-spline form.
func (h CubicHermite[V]) ToUniformBSpline() CubicUniformBSpline[V] {
	p := convert4(CubicHermiteMatrix, CubicUniformBSplineMatrix, h.pts)
	return NewCubicUniformBSpline(p[0], p[1], p[2], p[3])
}
