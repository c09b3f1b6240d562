package spline

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame3 is an orthonormal, right-handed frame. Z points along the tangent of
// the curve, Y is the caller's up vector orthogonalized against Z and X
// completes the frame.
type Frame3 struct {
	X, Y, Z Vec3
}

// Pose is a position and an orientation in space.
type Pose struct {
	Position Vec3
	Rotation r3.Rotation
}

// Transform maps p from the pose's local space to world space.
func (p Pose) Transform(v Vec3) Vec3 {
	return Vec3FromR3(p.Rotation.Rotate(v.R3())).Add(p.Position)
}

// Frame3At returns the frame of the curve at t. The frame is undefined (NaN)
// where up is parallel to the tangent or where the curve is stationary.
func Frame3At(c Deriver[Vec3], t float64, up Vec3) Frame3 {
	z := c.EvalDerivative(t).Normalize()
	// Gram-Schmidt: remove the tangential component of up.
	y := up.Sub(z.Mul(z.Dot(up))).Normalize()
	x := y.Cross(z)
	return Frame3{X: x, Y: y, Z: z}
}

// Normal3 returns the unit normal of a space curve at t, that is, the up
// vector made orthogonal to the tangent.
func Normal3(c Deriver[Vec3], t float64, up Vec3) Vec3 {
	return Frame3At(c, t, up).Y
}

// Binormal3 returns the unit binormal T × N of a space curve at t, where N
// is [Normal3].
func Binormal3(c Deriver[Vec3], t float64, up Vec3) Vec3 {
	f := Frame3At(c, t, up)
	return f.Z.Cross(f.Y)
}

// Orientation3 returns the rotation that maps the axes of the coordinate
// system onto the curve's frame at t.
func Orientation3(c Deriver[Vec3], t float64, up Vec3) r3.Rotation {
	return Frame3At(c, t, up).Rotation()
}

// Pose3 returns the position and orientation of the curve at t.
func Pose3(c interface {
	Evaler[Vec3]
	Deriver[Vec3]
}, t float64, up Vec3) Pose {
	return Pose{
		Position: c.Eval(t),
		Rotation: Orientation3(c, t, up),
	}
}

// Matrix3 returns the 4×4 affine matrix of the curve's pose at t. Its columns
// are the frame's X, Y and Z axes and the position.
func Matrix3(c interface {
	Evaler[Vec3]
	Deriver[Vec3]
}, t float64, up Vec3) *mat.Dense {
	f := Frame3At(c, t, up)
	p := c.Eval(t)
	return mat.NewDense(4, 4, []float64{
		f.X.X, f.Y.X, f.Z.X, p.X,
		f.X.Y, f.Y.Y, f.Z.Y, p.Y,
		f.X.Z, f.Y.Z, f.Z.Z, p.Z,
		0, 0, 0, 1,
	})
}

// Rotation converts the frame to a unit quaternion.
func (f Frame3) Rotation() r3.Rotation {
	// Rotation matrix with the frame's axes as columns.
	m00, m01, m02 := f.X.X, f.Y.X, f.Z.X
	m10, m11, m12 := f.X.Y, f.Y.Y, f.Z.Y
	m20, m21, m22 := f.X.Z, f.Y.Z, f.Z.Z

	// Pick the numerically largest of w, x, y and z to divide by.
	var q quat.Number
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1)
		q = quat.Number{
			Real: s / 4,
			Imag: (m21 - m12) / s,
			Jmag: (m02 - m20) / s,
			Kmag: (m10 - m01) / s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = quat.Number{
			Real: (m21 - m12) / s,
			Imag: s / 4,
			Jmag: (m01 + m10) / s,
			Kmag: (m02 + m20) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = quat.Number{
			Real: (m02 - m20) / s,
			Imag: (m01 + m10) / s,
			Jmag: s / 4,
			Kmag: (m12 + m21) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = quat.Number{
			Real: (m10 - m01) / s,
			Imag: (m02 + m20) / s,
			Jmag: (m12 + m21) / s,
			Kmag: s / 4,
		}
	}
	return r3.Rotation(quat.Scale(1/quat.Abs(q), q))
}

// Curvature3 returns the curvature bivector of a space curve at t,
//
//	(v ∧ a) / |v|³.
//
// Its magnitude is the curvature and its plane is the osculating plane. It is
// zero where the curve is stationary.
func Curvature3(c interface {
	Deriver[Vec3]
	SecondDeriver[Vec3]
}, t float64) Bivector3 {
	v := c.EvalDerivative(t)
	a := c.EvalSecondDerivative(t)
	s := v.Hypot()
	if s == 0 {
		return Bivector3{}
	}
	return v.Wedge(a).Mul(1 / (s * s * s))
}

// OsculatingCircle3 returns the circle that best approximates the space curve
// at t. ok is false where the curvature is below [CurvatureEpsilon].
func OsculatingCircle3(c interface {
	Evaler[Vec3]
	Deriver[Vec3]
	SecondDeriver[Vec3]
}, t float64) (circle Circle3, ok bool) {
	k := Curvature3(c, t)
	km := k.Magnitude()
	if km < CurvatureEpsilon {
		return Circle3{}, false
	}
	v := c.EvalDerivative(t)
	a := c.EvalSecondDerivative(t)
	// Principal normal: the part of the acceleration perpendicular to the
	// velocity.
	n := a.Sub(v.Mul(v.Dot(a) / v.Hypot2())).Normalize()
	return Circle3{
		Center: c.Eval(t).Add(n.Mul(1 / km)),
		Normal: k.Normal().Normalize(),
		Radius: 1 / km,
	}, true
}

// Torsion3 returns the torsion of a space curve at t,
//
//	τ = det(v, a, j) / |v × a|²,
//
// the rate at which the curve twists out of its osculating plane. It is 0
// where the curvature vanishes.
func Torsion3(c interface {
	Deriver[Vec3]
	SecondDeriver[Vec3]
	ThirdDeriver[Vec3]
}, t float64) float64 {
	v := c.EvalDerivative(t)
	a := c.EvalSecondDerivative(t)
	j := c.EvalThirdDerivative(t)
	va := v.Cross(a)
	d := va.Hypot2()
	if d == 0 {
		return 0
	}
	return va.Dot(j) / d
}
