package spline

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewUniformSamplerErrors(t *testing.T) {
	c := NewCubicBezier(Vec(0, 0), Vec(1, 1), Vec(2, 0), Vec(3, 1))
	for _, res := range []int{-1, 0, 1} {
		if _, err := NewUniformSampler[Vec2](c, UnitInterval, res); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("resolution %d: got error %v, want %v", res, err, ErrInvalidArgument)
		}
	}

	s, err := NewUniformSamplerOptions[Vec2](c, DefaultSampleOptions)
	test.Error(t, err)
	test.T(t, s.Resolution(), DefaultSamplerResolution)
	diff(t, UnitInterval, s.Interval())
}

func TestUniformSamplerTable(t *testing.T) {
	c := NewCubicBezier(Vec(0, 0), Vec(1, 2), Vec(3, -1), Vec(4, 1))
	s, err := NewUniformSampler[Vec2](c, UnitInterval, 100)
	test.Error(t, err)
	table := s.Table()
	test.T(t, len(table), 100)
	test.Float(t, table[0], 0)
	test.That(t, slices.IsSorted(table), "table is non-decreasing")
	// The table measures the same polyline as ArcLength.
	test.FloatDiff(t, s.Length(), ArcLength[Vec2](c, UnitInterval, 100), 1e-12)

	// Table returns a copy.
	table[1] = -1
	test.That(t, s.Table()[1] > 0)
}

func TestUniformSamplerLine(t *testing.T) {
	// A line with constant speed is already parametrized by arc length.
	c := NewCubicBezier(Vec(0, 0), Vec(1, 1), Vec(2, 2), Vec(3, 3))
	s, err := NewUniformSampler[Vec2](c, UnitInterval, 16)
	test.Error(t, err)
	l := 3 * math.Sqrt2
	test.FloatDiff(t, s.Length(), l, 1e-12)
	for i := range 21 {
		u := float64(i) / 20
		test.FloatDiff(t, s.DistanceToParam(u*l), u, 1e-12)
		test.FloatDiff(t, s.ParamToDistance(u), u*l, 1e-12)
		test.FloatDiff(t, s.UniformParamToParam(u), u, 1e-12)
	}

	// Distances beyond the ends are extrapolated at the average speed.
	test.FloatDiff(t, s.DistanceToParam(-l), -1, 1e-12)
	test.FloatDiff(t, s.DistanceToParam(2*l), 2, 1e-12)
	test.FloatDiff(t, s.ParamToDistance(1.5), 1.5*l, 1e-12)

	pts := s.Points(7)
	test.T(t, len(pts), 7)
	diff(t, c.Start(), pts[0])
	diff(t, c.End(), pts[6], approx(1e-12))
	for i := 1; i < len(pts); i++ {
		test.FloatDiff(t, Distance(pts[i-1], pts[i]), l/6, 1e-12)
	}
}

func TestUniformSamplerInverse(t *testing.T) {
	c := NewCubicBezier(Vec(0, 0), Vec(0.1, 3), Vec(3, 3), Vec(4, 0))
	s, err := NewUniformSampler[Vec2](c, UnitInterval, 32)
	test.Error(t, err)
	for i := range 51 {
		u := float64(i) / 50
		test.FloatDiff(t, s.ParamToUniformParam(s.UniformParamToParam(u)), u, 1e-12, fmt.Sprint(u))
		test.FloatDiff(t, s.UniformParamToParam(s.ParamToUniformParam(u)), u, 1e-12, fmt.Sprint(u))
	}
	// Equal steps in u cover equal distances.
	pts := s.Points(9)
	for i := 1; i < len(pts); i++ {
		test.FloatDiff(t, Distance(pts[i-1], pts[i]), s.Length()/8, 0.03*s.Length()/8)
	}
}

func TestUniformSamplerEvalUniform(t *testing.T) {
	// x = t³, which is parametrized by arc length as x = u.
	c := NewCubicBezier(Vec1{0}, Vec1{0}, Vec1{0}, Vec1{1})
	s, err := NewUniformSampler[Vec1](c, UnitInterval, 256)
	test.Error(t, err)
	test.FloatDiff(t, s.Length(), 1, 1e-12)
	for i := range 101 {
		u := float64(i) / 100
		test.FloatDiff(t, s.EvalUniform(u).X, u, 1e-4)
	}
}

func TestUniformSamplerInterval(t *testing.T) {
	c := NewCubicBezier(Vec(0, 0), Vec(1, 1), Vec(2, 2), Vec(3, 3))
	iv := Interval{0.2, 0.8}
	s, err := NewUniformSampler[Vec2](c, iv, 8)
	test.Error(t, err)
	test.FloatDiff(t, s.Length(), 0.6*3*math.Sqrt2, 1e-12)
	test.FloatDiff(t, s.UniformTToParam(0.2), 0.2, 1e-12)
	test.FloatDiff(t, s.UniformTToParam(0.5), 0.5, 1e-12)
	test.FloatDiff(t, s.UniformTToParam(0.8), 0.8, 1e-12)
	test.FloatDiff(t, s.DistanceToParam(0), 0.2, 1e-12)
	test.FloatDiff(t, s.ParamToDistance(0.8), s.Length(), 1e-12)
	diff(t, c.Eval(0.2), s.Points(1)[0])
	test.T(t, len(s.Points(0)), 0)
}

func TestUniformSamplerRecalculate(t *testing.T) {
	a := NewCubicBezier(Vec(0, 0), Vec(1, 0), Vec(2, 0), Vec(3, 0))
	b := NewCubicBezier(Vec(0, 0), Vec(0, 2), Vec(0, 4), Vec(0, 6))
	s, err := NewUniformSampler[Vec2](a, UnitInterval, 10)
	test.Error(t, err)
	test.FloatDiff(t, s.Length(), 3, 1e-12)
	s.Recalculate(b, Interval{0, 0.5})
	test.T(t, s.Resolution(), 10)
	test.FloatDiff(t, s.Length(), 3, 1e-12)
	diff(t, Vec(0, 3), s.EvalUniform(1), approx(1e-12))
}

func TestUniformSamplerDegenerate(t *testing.T) {
	c := Polynomial[Vec2]{C0: Vec(1, 2)}
	s, err := NewUniformSampler[Vec2](c, Interval{0.25, 1}, 4)
	test.Error(t, err)
	test.Float(t, s.Length(), 0)
	test.Float(t, s.DistanceToParam(1), 0.25)
	test.Float(t, s.ParamToUniformParam(0.5), 0)
	diff(t, []Vec2{Vec(1, 2), Vec(1, 2), Vec(1, 2)}, s.Points(3))
}

func TestUniformSamplerNaN(t *testing.T) {
	c := NewCubicBezier(Vec(0, 0), Vec(1, 2), Vec(3, -1), Vec(4, 1))
	s, err := NewUniformSampler[Vec2](c, UnitInterval, 16)
	test.Error(t, err)
	nan := math.NaN()
	test.That(t, math.IsNaN(s.DistanceToParam(nan)), "DistanceToParam(NaN) is NaN")
	test.That(t, math.IsNaN(s.ParamToDistance(nan)), "ParamToDistance(NaN) is NaN")
	test.That(t, math.IsNaN(s.UniformParamToParam(nan)), "UniformParamToParam(NaN) is NaN")
	test.That(t, math.IsNaN(s.ParamToUniformParam(nan)), "ParamToUniformParam(NaN) is NaN")
	test.That(t, math.IsInf(s.ParamToDistance(math.Inf(-1)), -1))
}

func BenchmarkUniformSampler(b *testing.B) {
	c := NewCubicBezier(Vec(0, 0), Vec(1, 2), Vec(3, -1), Vec(4, 1))
	s, err := NewUniformSampler[Vec2](c, UnitInterval, DefaultSamplerResolution)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("Recalculate", func(b *testing.B) {
		for range b.N {
			s.Recalculate(c, UnitInterval)
		}
	})
	b.Run("EvalUniform", func(b *testing.B) {
		for i := range b.N {
			s.EvalUniform(float64(i%100) / 100)
		}
	})
}
