package spline

import (
	"fmt"

	"github.com/pkg/errors"
)

var _ Curve3Diff[Vec2] = CatmullRom[Vec2]{}

// CatmullRom is a uniform Catmull-Rom segment. It passes through its two
// inner control points, p1 at t = 0 and p2 at t = 1; the outer points shape
// the tangents.
type CatmullRom[V Vector[V]] struct {
	cubicSegment[V]
}

// NewCatmullRom returns the Catmull-Rom segment with the control points p0–p3.
func NewCatmullRom[V Vector[V]](p0, p1, p2, p3 V) CatmullRom[V] {
	return CatmullRom[V]{newCubicSegment(CatmullRomMatrix, [4]V{p0, p1, p2, p3})}
}

// ToBezier converts the segment to Bézier form.
func (c CatmullRom[V]) ToBezier() CubicBezier[V] {
	p := convert4(CatmullRomMatrix, CubicBezierMatrix, c.pts)
	return NewCubicBezier(p[0], p[1], p[2], p[3])
}

// ToHermite converts the segment to Hermite form.
func (c CatmullRom[V]) ToHermite() CubicHermite[V] {
	p := convert4(CatmullRomMatrix, CubicHermiteMatrix, c.pts)
	return NewCubicHermite(p[0], p[1], p[2], p[3])
}

// CatmullRomSegment returns segment i of the Catmull-Rom spline through
// points, that is, the segment between points[i] and points[i+1].
//
// The first and last segments lack an outer neighbour; the adjacent end point
// is used in its place. It panics if i is not in [0, len(points)-2].
func CatmullRomSegment[V Vector[V]](points []V, i int) CatmullRom[V] {
	if i < 0 || i > len(points)-2 {
		panic(fmt.Sprintf("segment index %d out of range [0, %d]", i, len(points)-2))
	}
	p1, p2 := points[i], points[i+1]
	p0, p3 := p1, p2
	if i > 0 {
		p0 = points[i-1]
	}
	if i+2 < len(points) {
		p3 = points[i+2]
	}
	return NewCatmullRom(p0, p1, p2, p3)
}

// InterpolateCatmullRom samples the Catmull-Rom spline through points.
//
// Every segment contributes n samples, at t = 0, 1/n, …, (n-1)/n, followed by
// the final point. The result thus has (len(points)-1)·n + 1 entries and
// contains every input point.
func InterpolateCatmullRom[V Vector[V]](points []V, n int) ([]V, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "need at least 1 interpolated point per segment, got %d", n)
	}
	if len(points) < 2 {
		return nil, errors.Wrapf(ErrTooFewPoints, "need at least 2 points, got %d", len(points))
	}
	out := make([]V, 0, (len(points)-1)*n+1)
	for i := range len(points) - 1 {
		seg := CatmullRomSegment(points, i)
		for j := range n {
			out = append(out, seg.Eval(float64(j)/float64(n)))
		}
	}
	return append(out, points[len(points)-1]), nil
}
