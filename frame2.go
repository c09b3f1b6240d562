package spline

import "math"

// CurvatureEpsilon is the curvature magnitude below which a curve is treated
// as locally straight, for example at inflection points. Osculating circles
// are not defined there.
const CurvatureEpsilon = 1e-9

// Normal2 returns the unit normal of a planar curve at t: the tangent,
// rotated by 90° counter-clockwise.
func Normal2(c Deriver[Vec2], t float64) Vec2 {
	return Tangent(c, t).Turn90()
}

// Angle2 returns the direction of travel of a planar curve at t, as an angle
// in radians measured from the positive x axis.
func Angle2(c Deriver[Vec2], t float64) float64 {
	return c.EvalDerivative(t).Angle()
}

// Curvature2 returns the signed curvature of a planar curve at t,
//
//	κ = (x'y'' − y'x'') / (x'² + y'²)^1.5.
//
// The curvature is positive where the curve turns counter-clockwise and
// negative where it turns clockwise. It is 0 where the curve is stationary.
func Curvature2(c interface {
	Deriver[Vec2]
	SecondDeriver[Vec2]
}, t float64) float64 {
	v := c.EvalDerivative(t)
	a := c.EvalSecondDerivative(t)
	d := v.Hypot2()
	if d == 0 {
		return 0
	}
	return v.Cross(a) / (d * math.Sqrt(d))
}

// OsculatingCircle2 returns the circle that best approximates the curve at t.
//
// Its radius is 1/|κ| and its center lies on the side of the curve it is
// turning towards. At points where the curve is (nearly) straight, the circle
// degenerates; ok is false if |κ| < [CurvatureEpsilon].
func OsculatingCircle2(c interface {
	Evaler[Vec2]
	Deriver[Vec2]
	SecondDeriver[Vec2]
}, t float64) (circle Circle2, ok bool) {
	k := Curvature2(c, t)
	if math.Abs(k) < CurvatureEpsilon {
		return Circle2{}, false
	}
	// The sign of k places the center on the correct side of the normal.
	center := c.Eval(t).Add(Normal2(c, t).Mul(1 / k))
	return Circle2{Center: center, Radius: 1 / math.Abs(k)}, true
}
