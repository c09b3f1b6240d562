package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tdewolff/test"
	"honnef.co/go/spline"
)

func TestParsePoints(t *testing.T) {
	got, err := parsePoints(" 0,0  1.5,-2\t3e1,4 ")
	test.Error(t, err)
	want := []spline.Vec2{spline.Vec(0, 0), spline.Vec(1.5, -2), spline.Vec(30, 4)}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	for _, s := range []string{"1", "1,x", "y,2", "1,2 3"} {
		if _, err := parsePoints(s); err == nil {
			t.Errorf("parsePoints(%q) succeeded", s)
		}
	}
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats("0,0, 0 1 2,,3")
	test.Error(t, err)
	test.T(t, got, []float64{0, 0, 0, 1, 2, 3})

	if _, err := parseFloats("1,a"); err == nil {
		t.Error("parseFloats accepted a non-number")
	}
}

func TestBuild(t *testing.T) {
	points := []spline.Vec2{
		spline.Vec(0, 0), spline.Vec(1, 2), spline.Vec(3, 2), spline.Vec(4, 0),
		spline.Vec(5, -1), spline.Vec(6, 0), spline.Vec(7, 2),
	}
	tests := []struct {
		cfg        curveConfig
		degree     int
		start, end spline.Vec2
	}{
		{curveConfig{kind: "bspline", points: points, degree: 3, open: true}, 3, points[0], points[6]},
		{curveConfig{kind: "bspline", points: points[:4], knots: []float64{0, 0, 0, 0, 1, 1, 1, 1}, degree: 3}, 3, points[0], points[3]},
		{curveConfig{kind: "nurbs", points: points, degree: 2, open: true}, 2, points[0], points[6]},
		{curveConfig{kind: "nurbs", points: points[:3], weights: []float64{1, 5, 1}, degree: 2, open: true}, 2, points[0], points[2]},
		{curveConfig{kind: "catmullrom", points: points}, 3, points[0], points[6]},
		{curveConfig{kind: "bezier", points: points}, 3, points[0], points[6]},
	}
	for _, tt := range tests {
		t.Run(tt.cfg.kind, func(t *testing.T) {
			c, err := tt.cfg.build()
			test.Error(t, err)
			test.T(t, c.Degree(), tt.degree)
			opt := cmpopts.EquateApprox(0, 1e-12)
			if d := cmp.Diff(tt.start, c.Eval(0), opt); d != "" {
				t.Errorf("start: %s", d)
			}
			if d := cmp.Diff(tt.end, c.Eval(1), opt); d != "" {
				t.Errorf("end: %s", d)
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	points := []spline.Vec2{spline.Vec(0, 0), spline.Vec(1, 2), spline.Vec(3, 2)}
	tests := []struct {
		cfg  curveConfig
		want error
	}{
		{curveConfig{kind: "bspline", points: points, degree: 3, open: true}, spline.ErrTooFewPoints},
		{curveConfig{kind: "bspline", points: points, knots: []float64{0, 1}, degree: 2}, spline.ErrKnotCount},
		{curveConfig{kind: "nurbs", points: points, weights: []float64{1}, degree: 2}, spline.ErrWeightCount},
		{curveConfig{kind: "catmullrom", points: points[:1]}, spline.ErrTooFewPoints},
		{curveConfig{kind: "bezier", points: points}, spline.ErrInvalidArgument},
	}
	for _, tt := range tests {
		if _, err := tt.cfg.build(); !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.cfg.kind, err, tt.want)
		}
	}

	if _, err := (curveConfig{kind: "spiral", points: points}).build(); err == nil {
		t.Error("unknown kind was accepted")
	}
}

func TestPiecewise(t *testing.T) {
	points := []spline.Vec2{spline.Vec(0, 0), spline.Vec(1, 2), spline.Vec(3, 2), spline.Vec(4, 0), spline.Vec(6, 1)}
	var segs []spline.CatmullRom[spline.Vec2]
	for i := range len(points) - 1 {
		segs = append(segs, spline.CatmullRomSegment(points, i))
	}
	p := piecewise[spline.CatmullRom[spline.Vec2]](segs)
	opt := cmpopts.EquateApprox(0, 1e-12)

	// Segment boundaries fall on multiples of 1/n and hit the control points.
	for i, pt := range points {
		if d := cmp.Diff(pt, p.Eval(float64(i)/4), opt); d != "" {
			t.Errorf("point %d: %s", i, d)
		}
	}

	// Derivatives are scaled to the joined parameter range.
	const ts = 0.3
	seg, u, n := p.locate(ts)
	test.Float(t, n, 4)
	test.FloatDiff(t, u, 0.2, 1e-12)
	if d := cmp.Diff(seg.EvalDerivative(u).Mul(4), p.EvalDerivative(ts), opt); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(seg.EvalSecondDerivative(u).Mul(16), p.EvalSecondDerivative(ts), opt); d != "" {
		t.Error(d)
	}

	// Parameters outside [0, 1] extrapolate the end segments.
	first, u, _ := p.locate(-0.1)
	if d := cmp.Diff(segs[0].Points(), first.Points()); d != "" {
		t.Error(d)
	}
	test.FloatDiff(t, u, -0.4, 1e-12)
	last, u, _ := p.locate(1.1)
	if d := cmp.Diff(segs[3].Points(), last.Points()); d != "" {
		t.Error(d)
	}
	test.FloatDiff(t, u, 1.4, 1e-12)
}
