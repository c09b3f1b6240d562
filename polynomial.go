package spline

import (
	"fmt"
	"slices"
)

var _ Curve4Diff[Vec2] = Polynomial[Vec2]{}

// Polynomial is a cubic polynomial with vector coefficients,
//
//	P(t) = C0 + C1 t + C2 t² + C3 t³.
//
// Quadratic and linear polynomials simply have zero higher coefficients.
type Polynomial[V Vector[V]] struct {
	C0 V
	C1 V
	C2 V
	C3 V
}

// Coefficient returns the coefficient of tⁱ.
func (p Polynomial[V]) Coefficient(i int) V {
	switch i {
	case 0:
		return p.C0
	case 1:
		return p.C1
	case 2:
		return p.C2
	case 3:
		return p.C3
	default:
		panic(fmt.Sprintf("coefficient index %d out of range [0, 3]", i))
	}
}

// Degree returns the degree of the polynomial, that is, the index of the
// highest non-zero coefficient. The zero polynomial has degree 0.
func (p Polynomial[V]) Degree() int {
	var zero V
	switch {
	case p.C3 != zero:
		return 3
	case p.C2 != zero:
		return 2
	case p.C1 != zero:
		return 1
	default:
		return 0
	}
}

// Eval evaluates the polynomial at t, using Horner's method.
func (p Polynomial[V]) Eval(t float64) V {
	return p.C0.Add(p.C1.Add(p.C2.Add(p.C3.Mul(t)).Mul(t)).Mul(t))
}

// EvalDerivative evaluates P'(t) = C1 + 2 C2 t + 3 C3 t².
func (p Polynomial[V]) EvalDerivative(t float64) V {
	return p.C1.Add(p.C2.Mul(2).Add(p.C3.Mul(3 * t)).Mul(t))
}

// EvalSecondDerivative evaluates P''(t) = 2 C2 + 6 C3 t.
func (p Polynomial[V]) EvalSecondDerivative(t float64) V {
	return p.C2.Mul(2).Add(p.C3.Mul(6 * t))
}

// EvalThirdDerivative evaluates P'''(t) = 6 C3, which is constant.
func (p Polynomial[V]) EvalThirdDerivative(t float64) V {
	return p.C3.Mul(6)
}

// EvalFourthDerivative always returns the zero vector.
func (p Polynomial[V]) EvalFourthDerivative(t float64) V {
	var zero V
	return zero
}

// Differentiate returns the derivative of the polynomial.
func (p Polynomial[V]) Differentiate() Polynomial[V] {
	var zero V
	return Polynomial[V]{
		C0: p.C1,
		C1: p.C2.Mul(2),
		C2: p.C3.Mul(3),
		C3: zero,
	}
}

// Add returns the sum of two polynomials.
func (p Polynomial[V]) Add(o Polynomial[V]) Polynomial[V] {
	return Polynomial[V]{p.C0.Add(o.C0), p.C1.Add(o.C1), p.C2.Add(o.C2), p.C3.Add(o.C3)}
}

// Mul scales all coefficients by f.
func (p Polynomial[V]) Mul(f float64) Polynomial[V] {
	return Polynomial[V]{p.C0.Mul(f), p.C1.Mul(f), p.C2.Mul(f), p.C3.Mul(f)}
}

// Remap returns the polynomial Q(s) = P(t0 + s·(t1-t0)), so that Q on [0, 1]
// traces P on [t0, t1].
func (p Polynomial[V]) Remap(t0, t1 float64) Polynomial[V] {
	d := t1 - t0
	// Expand P(t0 + d s) and collect the powers of s.
	c0 := p.Eval(t0)
	c1 := p.EvalDerivative(t0).Mul(d)
	c2 := p.EvalSecondDerivative(t0).Mul(d * d / 2)
	c3 := p.EvalThirdDerivative(t0).Mul(d * d * d / 6)
	return Polynomial[V]{c0, c1, c2, c3}
}

// Extrema returns the parameters in (0, 1) at which any component of the
// polynomial has a local extremum, in increasing order.
//
// At most two extrema per dimension can exist for a cubic polynomial.
func (p Polynomial[V]) Extrema() []float64 {
	var out []float64
	for i := range p.C0.Dim() {
		// P'(t) = C1 + 2 C2 t + 3 C3 t²
		roots, n := SolveQuadratic(p.C1.Component(i), 2*p.C2.Component(i), 3*p.C3.Component(i))
		for _, t := range roots[:n] {
			if t > 0 && t < 1 {
				out = append(out, t)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Bounds returns the axis-aligned bounding box of the polynomial on [0, 1].
func (p Polynomial[V]) Bounds() Bounds[V] {
	b := NewBounds(p.Eval(0), p.Eval(1))
	for _, t := range p.Extrema() {
		b = b.Union(p.Eval(t))
	}
	return b
}
