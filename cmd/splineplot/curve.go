package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"honnef.co/go/spline"
)

type curveConfig struct {
	kind    string
	points  []spline.Vec2
	knots   []float64
	weights []float64
	degree  int
	open    bool
}

func (cfg curveConfig) build() (spline.Curve2Diff[spline.Vec2], error) {
	switch cfg.kind {
	case "bspline":
		if cfg.knots != nil {
			return spline.NewBSpline(cfg.points, cfg.knots, cfg.degree)
		}
		return spline.NewUniformBSpline(cfg.points, cfg.degree, cfg.open)
	case "nurbs":
		weights := cfg.weights
		if weights == nil {
			weights = make([]float64, len(cfg.points))
			for i := range weights {
				weights[i] = 1
			}
		}
		knots := cfg.knots
		if knots == nil {
			knots = spline.UniformKnots(cfg.degree, len(cfg.points), cfg.open)
		}
		return spline.NewNURBS(cfg.points, weights, knots, cfg.degree)
	case "catmullrom":
		if len(cfg.points) < 2 {
			return nil, errors.Wrapf(spline.ErrTooFewPoints, "got %d points", len(cfg.points))
		}
		var segs []spline.CatmullRom[spline.Vec2]
		for i := range len(cfg.points) - 1 {
			segs = append(segs, spline.CatmullRomSegment(cfg.points, i))
		}
		return piecewise[spline.CatmullRom[spline.Vec2]](segs), nil
	case "bezier":
		n := len(cfg.points)
		if n < 4 || (n-1)%3 != 0 {
			return nil, errors.Wrapf(spline.ErrInvalidArgument, "a Bézier spline needs 3k+1 points, got %d", n)
		}
		var segs []spline.CubicBezier[spline.Vec2]
		for i := 0; i+3 < n; i += 3 {
			p := cfg.points[i : i+4]
			segs = append(segs, spline.NewCubicBezier(p[0], p[1], p[2], p[3]))
		}
		return piecewise[spline.CubicBezier[spline.Vec2]](segs), nil
	default:
		return nil, errors.Errorf("unknown curve kind %q", cfg.kind)
	}
}

// piecewise joins segments into one curve over [0, 1], each segment taking an
// equal share of the parameter range.
type piecewise[S spline.Curve2Diff[spline.Vec2]] []S

func (p piecewise[S]) locate(t float64) (S, float64, float64) {
	n := float64(len(p))
	i := min(max(int(t*n), 0), len(p)-1)
	return p[i], t*n - float64(i), n
}

func (p piecewise[S]) Degree() int { return p[0].Degree() }

func (p piecewise[S]) Eval(t float64) spline.Vec2 {
	s, u, _ := p.locate(t)
	return s.Eval(u)
}

func (p piecewise[S]) EvalDerivative(t float64) spline.Vec2 {
	s, u, n := p.locate(t)
	return s.EvalDerivative(u).Mul(n)
}

func (p piecewise[S]) EvalSecondDerivative(t float64) spline.Vec2 {
	s, u, n := p.locate(t)
	return s.EvalSecondDerivative(u).Mul(n * n)
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}

// parsePoints parses space-separated x,y pairs.
func parsePoints(s string) ([]spline.Vec2, error) {
	var out []spline.Vec2
	for _, pair := range strings.Fields(s) {
		x, y, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.Errorf("point %q is not of the form x,y", pair)
		}
		px, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse point %q", pair)
		}
		py, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't parse point %q", pair)
		}
		out = append(out, spline.Vec(px, py))
	}
	return out, nil
}
