package spline

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// arc is a circle of radius r around center, traversed at angular speed w.
// Negative w runs clockwise.
type arc struct {
	center Vec2
	r, w   float64
}

func (a arc) Degree() int { return -1 }

func (a arc) Eval(t float64) Vec2 {
	return a.center.Add(VecFromAngle(a.w * t).Mul(a.r))
}

func (a arc) EvalDerivative(t float64) Vec2 {
	return VecFromAngle(a.w * t).Turn90().Mul(a.r * a.w)
}

func (a arc) EvalSecondDerivative(t float64) Vec2 {
	return VecFromAngle(a.w * t).Mul(-a.r * a.w * a.w)
}

func TestArcDerivatives(t *testing.T) {
	checkDerivatives[Vec2](t, arc{Vec(1, 2), 3, 2}, derivativeParams)
}

func TestCurvature2(t *testing.T) {
	tests := []struct {
		name string
		c    arc
		want float64
	}{
		{"counter-clockwise", arc{Vec(0, 0), 2, 1}, 0.5},
		{"clockwise", arc{Vec(0, 0), 2, -1}, -0.5},
		{"fast", arc{Vec(3, -1), 0.25, 7}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, ts := range []float64{0, 0.3, 1, 2.5} {
				test.FloatDiff(t, Curvature2(tt.c, ts), tt.want, 1e-12)
			}
		})
	}

	// Stationary points have no curvature.
	p := Polynomial[Vec2]{C2: Vec(1, 1)}
	test.Float(t, Curvature2(p, 0), 0)
}

func TestOsculatingCircle2(t *testing.T) {
	for _, c := range []arc{
		{Vec(1, 2), 3, 1},
		{Vec(1, 2), 3, -1},
		{Vec(-4, 0.5), 0.5, 3},
	} {
		for _, ts := range []float64{0, 0.7, 2} {
			circle, ok := OsculatingCircle2(c, ts)
			test.That(t, ok, "arc has an osculating circle")
			diff(t, c.center, circle.Center, approx(1e-12))
			test.FloatDiff(t, circle.Radius, c.r, 1e-12)
			diff(t, c.Eval(ts), circle.Eval(VecFromAngle(c.w*ts).Angle()), approx(1e-12))
		}
	}

	// The osculating circle of a parabola at its vertex has radius 1/(2a).
	p := Polynomial[Vec2]{C1: Vec(1, 0), C2: Vec(0, 2)}
	circle, ok := OsculatingCircle2(p, 0)
	test.That(t, ok)
	test.FloatDiff(t, circle.Radius, 0.25, 1e-12)
	diff(t, Vec(0, 0.25), circle.Center, approx(1e-12))

	line := Polynomial[Vec2]{C0: Vec(1, 1), C1: Vec(2, -1)}
	if _, ok := OsculatingCircle2(line, 0.5); ok {
		t.Error("straight line has an osculating circle")
	}
}

func TestNormal2(t *testing.T) {
	c := arc{Vec(0, 0), 2, 1}
	for _, ts := range []float64{0, 1, 2} {
		// The normal of a counter-clockwise circle points at its center.
		diff(t, c.Eval(ts).Mul(-0.5), Normal2(c, ts), approx(1e-12))
		diff(t, VecFromAngle(ts).Turn90(), Tangent[Vec2](c, ts), approx(1e-12))
		test.FloatDiff(t, Speed[Vec2](c, ts), 2, 1e-12)
	}
	test.FloatDiff(t, Angle2(c, 0), math.Pi/2, 1e-15)
	test.FloatDiff(t, Angle2(arc{Vec(0, 0), 1, -1}, 0), -math.Pi/2, 1e-15)

	// Stationary points have no tangent.
	diff(t, Vec2{}, Normal2(Polynomial[Vec2]{C2: Vec(1, 1)}, 0))
}

func TestCircle2(t *testing.T) {
	c := Circle2{Center: Vec(1, 1), Radius: 2}
	diff(t, Vec(3, 1), c.Eval(0))
	diff(t, Vec(1, 3), c.Eval(math.Pi/2), approx(1e-15))
	test.Float(t, c.Area(), 4*math.Pi)
	test.Float(t, c.Circumference(), 4*math.Pi)
}
