package spline

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// helix winds around the z axis with radius r, rising c per radian.
type helix struct {
	r, c float64
}

func (h helix) Degree() int { return -1 }

func (h helix) Eval(t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{h.r * c, h.r * s, h.c * t}
}

func (h helix) EvalDerivative(t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{-h.r * s, h.r * c, h.c}
}

func (h helix) EvalSecondDerivative(t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{-h.r * c, -h.r * s, 0}
}

func (h helix) EvalThirdDerivative(t float64) Vec3 {
	s, c := math.Sincos(t)
	return Vec3{h.r * s, -h.r * c, 0}
}

func TestHelixCurvatureAndTorsion(t *testing.T) {
	checkDerivatives[Vec3](t, helix{2, 0.5}, derivativeParams)
	for _, h := range []helix{{1, 0}, {2, 0.5}, {0.5, 3}, {1, -1}} {
		d := h.r*h.r + h.c*h.c
		for _, ts := range []float64{0, 0.4, 2, 5} {
			test.FloatDiff(t, Curvature3(h, ts).Magnitude(), h.r/d, 1e-12)
			test.FloatDiff(t, Torsion3(h, ts), h.c/d, 1e-12)
		}
	}

	// A straight line neither bends nor twists.
	line := NewCubicBezier(Vec3{0, 0, 0}, Vec3{1, 1, 1}, Vec3{2, 2, 2}, Vec3{3, 3, 3})
	test.Float(t, Curvature3(line, 0.5).Magnitude(), 0)
	test.Float(t, Torsion3(line, 0.5), 0)
}

func TestOsculatingCircle3(t *testing.T) {
	h := helix{2, 0.5}
	d := h.r*h.r + h.c*h.c
	circle, ok := OsculatingCircle3(h, 0)
	test.That(t, ok)
	test.FloatDiff(t, circle.Radius, d/h.r, 1e-12)
	diff(t, Vec3{h.r - d/h.r, 0, 0}, circle.Center, approx(1e-12))
	diff(t, Vec3{0, -h.c, h.r}.Mul(1/math.Sqrt(d)), circle.Normal, approx(1e-12))

	// A planar circle is its own osculating circle.
	flat := helix{3, 0}
	for _, ts := range []float64{0, 1, 4} {
		circle, ok := OsculatingCircle3(flat, ts)
		test.That(t, ok)
		diff(t, Vec3{}, circle.Center, approx(1e-12))
		diff(t, Vec3{0, 0, 1}, circle.Normal, approx(1e-12))
		test.FloatDiff(t, circle.Radius, 3, 1e-12)
		test.FloatDiff(t, circle.Circumference(), 6*math.Pi, 1e-12)
	}

	line := NewQuadBezier(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{2, 0, 0})
	if _, ok := OsculatingCircle3(line, 0.5); ok {
		t.Error("straight line has an osculating circle")
	}
}

func TestFrame3(t *testing.T) {
	h := helix{2, 0.5}
	up := Vec3{0, 0, 1}
	for _, ts := range []float64{0, 0.4, 2, 5} {
		f := Frame3At(h, ts, up)
		for _, v := range []Vec3{f.X, f.Y, f.Z} {
			test.FloatDiff(t, v.Hypot(), 1, 1e-12)
		}
		test.FloatDiff(t, f.X.Dot(f.Y), 0, 1e-12)
		test.FloatDiff(t, f.Y.Dot(f.Z), 0, 1e-12)
		test.FloatDiff(t, f.Z.Dot(f.X), 0, 1e-12)
		// Right-handed.
		diff(t, f.Z, f.X.Cross(f.Y), approx(1e-12))

		diff(t, Tangent[Vec3](h, ts), f.Z, approx(1e-12))
		diff(t, f.Y, Normal3(h, ts, up))
		diff(t, f.X.Mul(-1), Binormal3(h, ts, up), approx(1e-12))
		// Y stays as close to up as the tangent allows.
		test.That(t, f.Y.Dot(up) > 0, "normal points upwards")
	}
}

func TestPose3(t *testing.T) {
	h := helix{2, 0.5}
	up := Vec3{0, 0, 1}
	for _, ts := range []float64{0, 0.4, 2, 5} {
		f := Frame3At(h, ts, up)
		pose := Pose3(h, ts, up)
		diff(t, h.Eval(ts), pose.Position)
		// The pose maps local axes to the frame, offset by the position.
		diff(t, pose.Position.Add(f.X), pose.Transform(Vec3{1, 0, 0}), approx(1e-12))
		diff(t, pose.Position.Add(f.Y), pose.Transform(Vec3{0, 1, 0}), approx(1e-12))
		diff(t, pose.Position.Add(f.Z), pose.Transform(Vec3{0, 0, 1}), approx(1e-12))

		m := Matrix3(h, ts, up)
		for i, v := range []Vec3{f.X, f.Y, f.Z, pose.Position} {
			diff(t, v, Vec3{m.At(0, i), m.At(1, i), m.At(2, i)}, approx(1e-12))
			test.Float(t, m.At(3, i), float64(i/3))
		}
	}
}

func TestFrame3Rotation(t *testing.T) {
	// Frames exercising each branch of the quaternion conversion.
	frames := []Frame3{
		{X: Vec3{1, 0, 0}, Y: Vec3{0, 1, 0}, Z: Vec3{0, 0, 1}},
		{X: Vec3{1, 0, 0}, Y: Vec3{0, -1, 0}, Z: Vec3{0, 0, -1}},
		{X: Vec3{-1, 0, 0}, Y: Vec3{0, 1, 0}, Z: Vec3{0, 0, -1}},
		{X: Vec3{-1, 0, 0}, Y: Vec3{0, -1, 0}, Z: Vec3{0, 0, 1}},
		{X: Vec3{0, 1, 0}, Y: Vec3{0, 0, 1}, Z: Vec3{1, 0, 0}},
	}
	for _, f := range frames {
		pose := Pose{Rotation: f.Rotation()}
		diff(t, f.X, pose.Transform(Vec3{1, 0, 0}), approx(1e-12))
		diff(t, f.Y, pose.Transform(Vec3{0, 1, 0}), approx(1e-12))
		diff(t, f.Z, pose.Transform(Vec3{0, 0, 1}), approx(1e-12))
	}
}
