package spline

import (
	"math"
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// DefaultSamplerResolution is the number of table entries used when callers
// don't pick a resolution.
const DefaultSamplerResolution = 64

// SampleOptions configures how a curve is sampled.
type SampleOptions struct {
	// Resolution is the number of samples. It must be at least 2.
	Resolution int
	// Interval is the parameter range to sample.
	Interval Interval
}

var DefaultSampleOptions = SampleOptions{DefaultSamplerResolution, UnitInterval}

// UniformSampler reparametrizes a curve by arc length. It samples the curve at
// evenly spaced parameters and records the cumulative length of the polyline
// through the samples, which is then used to map between distances along the
// curve and curve parameters.
//
// The table is only computed by [NewUniformSampler] and [UniformSampler.Recalculate].
// If the curve changes, the sampler has to be recalculated explicitly.
// Queries may run concurrently with each other but not with Recalculate.
type UniformSampler[V Vector[V]] struct {
	curve Evaler[V]
	iv    Interval
	// table[i] is the length of the polyline from iv.Start to the i-th sample.
	table []float64
}

// NewUniformSampler returns a sampler for c on iv, with a table of the given
// resolution. Resolution must be at least 2.
func NewUniformSampler[V Vector[V]](c Evaler[V], iv Interval, resolution int) (*UniformSampler[V], error) {
	if resolution < 2 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sampler resolution %d is less than 2", resolution)
	}
	s := &UniformSampler[V]{table: make([]float64, resolution)}
	s.Recalculate(c, iv)
	return s, nil
}

// NewUniformSamplerOptions is like [NewUniformSampler] but takes its
// parameters from opts.
func NewUniformSamplerOptions[V Vector[V]](c Evaler[V], opts SampleOptions) (*UniformSampler[V], error) {
	return NewUniformSampler(c, opts.Interval, opts.Resolution)
}

// Recalculate rebuilds the table for c on iv, keeping the resolution.
func (s *UniformSampler[V]) Recalculate(c Evaler[V], iv Interval) {
	s.curve = c
	s.iv = iv
	var prev V
	for i := range s.table {
		p := c.Eval(s.param(i))
		if i == 0 {
			s.table[0] = 0
		} else {
			s.table[i] = s.table[i-1] + Distance(prev, p)
		}
		prev = p
	}
}

// param returns the parameter of the i-th sample.
func (s *UniformSampler[V]) param(i int) float64 {
	return s.iv.Lerp(float64(i) / float64(len(s.table)-1))
}

func (s *UniformSampler[V]) Resolution() int    { return len(s.table) }
func (s *UniformSampler[V]) Interval() Interval { return s.iv }

// Table returns a copy of the cumulative distance table.
func (s *UniformSampler[V]) Table() []float64 { return slices.Clone(s.table) }

// Length returns the approximate arc length of the curve on the interval.
func (s *UniformSampler[V]) Length() float64 { return s.table[len(s.table)-1] }

// DistanceToParam returns the parameter at which the curve has travelled the
// distance d from the start of the interval.
//
// Between samples, the parameter is interpolated linearly. Distances outside
// [0, Length()] are extrapolated using the curve's average speed. A curve of
// zero length maps every distance to the start of the interval. NaN maps to
// NaN.
func (s *UniformSampler[V]) DistanceToParam(d float64) float64 {
	if math.IsNaN(d) {
		return d
	}
	total := s.Length()
	if total == 0 {
		return s.iv.Start
	}
	if d <= 0 || d >= total {
		return s.iv.Lerp(d / total)
	}
	// i is in [1, len-1] because table[0] = 0 < d < total.
	i := sort.SearchFloat64s(s.table, d)
	lo, hi := s.table[i-1], s.table[i]
	var frac float64
	if hi > lo {
		frac = (d - lo) / (hi - lo)
	}
	return s.param(i-1)*(1-frac) + s.param(i)*frac
}

// ParamToDistance returns the distance travelled along the curve from the
// start of the interval to the parameter t. It is the inverse of
// [UniformSampler.DistanceToParam].
func (s *UniformSampler[V]) ParamToDistance(t float64) float64 {
	if math.IsNaN(t) {
		return t
	}
	n := len(s.table) - 1
	x := s.iv.InverseLerp(t) * float64(n)
	if x <= 0 || x >= float64(n) {
		return x / float64(n) * s.Length()
	}
	i := int(math.Floor(x))
	frac := x - float64(i)
	return s.table[i]*(1-frac) + s.table[i+1]*frac
}

// UniformParamToParam maps u ∈ [0, 1], the fraction of the curve's length,
// to the curve parameter.
func (s *UniformSampler[V]) UniformParamToParam(u float64) float64 {
	return s.DistanceToParam(u * s.Length())
}

// ParamToUniformParam maps the curve parameter t to the fraction of the
// curve's length travelled at t. It is 0 for curves of zero length.
func (s *UniformSampler[V]) ParamToUniformParam(t float64) float64 {
	total := s.Length()
	if total == 0 {
		return 0
	}
	return s.ParamToDistance(t) / total
}

// UniformTToParam is like [UniformSampler.UniformParamToParam], but t is
// given in the sampler's interval instead of [0, 1].
func (s *UniformSampler[V]) UniformTToParam(t float64) float64 {
	return s.UniformParamToParam(s.iv.InverseLerp(t))
}

// EvalUniform evaluates the curve at the fraction u of its length.
func (s *UniformSampler[V]) EvalUniform(u float64) V {
	return s.curve.Eval(s.UniformParamToParam(u))
}

// Points returns n points on the curve, evenly spaced by arc length and
// including both ends.
func (s *UniformSampler[V]) Points(n int) []V {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []V{s.curve.Eval(s.iv.Start)}
	}
	pts := make([]V, n)
	for i := range pts {
		pts[i] = s.EvalUniform(float64(i) / float64(n-1))
	}
	return pts
}
