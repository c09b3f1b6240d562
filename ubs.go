package spline

var (
	_ Curve3Diff[Vec2] = CubicUniformBSpline[Vec2]{}
	_ Curve2Diff[Vec2] = QuadUniformBSpline[Vec2]{}
)

// CubicUniformBSpline is a single segment of a uniform cubic B-spline. It
// generally passes through none of its control points, but consecutive
// segments that share three control points join with C² continuity.
type CubicUniformBSpline[V Vector[V]] struct {
	cubicSegment[V]
}

// NewCubicUniformBSpline returns the uniform B-spline segment with the control
// points p0–p3.
func NewCubicUniformBSpline[V Vector[V]](p0, p1, p2, p3 V) CubicUniformBSpline[V] {
	return CubicUniformBSpline[V]{newCubicSegment(CubicUniformBSplineMatrix, [4]V{p0, p1, p2, p3})}
}

// ToBezier converts the segment to Bézier form.
func (s CubicUniformBSpline[V]) ToBezier() CubicBezier[V] {
	p := convert4(CubicUniformBSplineMatrix, CubicBezierMatrix, s.pts)
	return NewCubicBezier(p[0], p[1], p[2], p[3])
}

// ToCatmullRom converts the segment to a Catmull-Rom segment.
func (s CubicUniformBSpline[V]) ToCatmullRom() CatmullRom[V] {
	p := convert4(CubicUniformBSplineMatrix, CatmullRomMatrix, s.pts)
	return NewCatmullRom(p[0], p[1], p[2], p[3])
}

// QuadUniformBSpline is a single segment of a uniform quadratic B-spline.
type QuadUniformBSpline[V Vector[V]] struct {
	quadSegment[V]
}

// NewQuadUniformBSpline returns the uniform B-spline segment with the control
// points p0–p2.
func NewQuadUniformBSpline[V Vector[V]](p0, p1, p2 V) QuadUniformBSpline[V] {
	return QuadUniformBSpline[V]{newQuadSegment(QuadraticUniformBSplineMatrix, [3]V{p0, p1, p2})}
}

// ToBezier converts the segment to Bézier form.
func (s QuadUniformBSpline[V]) ToBezier() QuadBezier[V] {
	p := convert3(QuadraticUniformBSplineMatrix, QuadraticBezierMatrix, s.pts)
	return NewQuadBezier(p[0], p[1], p[2])
}
