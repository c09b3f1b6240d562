package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CharacteristicMatrix maps the control points of a uniform spline segment to
// the coefficients of its polynomial.
//
// Rows correspond to powers of t and columns to control points, so that the
// coefficient of tʲ is Σᵢ M[j][i]·Pᵢ. Column i, read as a polynomial in t, is
// the weight function of control point i (see [CharacteristicMatrix.BasisFunction]).
//
// Matrices are either 3×3 (quadratic segments) or 4×4 (cubic segments). The
// zero value is not a valid matrix.
type CharacteristicMatrix struct {
	n int
	m [4][4]float64
}

// Characteristic matrices of the segment types in this package.
var (
	CubicBezierMatrix = cubicMatrix([4][4]float64{
		{1, 0, 0, 0},
		{-3, 3, 0, 0},
		{3, -6, 3, 0},
		{-1, 3, -3, 1},
	})

	// CubicHermiteMatrix operates on the control set (P0, V0, P1, V1).
	CubicHermiteMatrix = cubicMatrix([4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{-3, -2, 3, -1},
		{2, 1, -2, 1},
	})

	CatmullRomMatrix = cubicMatrix([4][4]float64{
		{0, 1, 0, 0},
		{-0.5, 0, 0.5, 0},
		{1, -2.5, 2, -0.5},
		{-0.5, 1.5, -1.5, 0.5},
	})

	CubicUniformBSplineMatrix = cubicMatrix([4][4]float64{
		{1.0 / 6, 4.0 / 6, 1.0 / 6, 0},
		{-3.0 / 6, 0, 3.0 / 6, 0},
		{3.0 / 6, -6.0 / 6, 3.0 / 6, 0},
		{-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6},
	})

	QuadraticBezierMatrix = quadraticMatrix([3][3]float64{
		{1, 0, 0},
		{-2, 2, 0},
		{1, -2, 1},
	})

	QuadraticUniformBSplineMatrix = quadraticMatrix([3][3]float64{
		{0.5, 0.5, 0},
		{-1, 1, 0},
		{0.5, -1, 0.5},
	})
)

// Inverses of the constant matrices, computed once.
var (
	cubicBezierInverse             = CubicBezierMatrix.Inverse()
	cubicHermiteInverse            = CubicHermiteMatrix.Inverse()
	catmullRomInverse              = CatmullRomMatrix.Inverse()
	cubicUniformBSplineInverse     = CubicUniformBSplineMatrix.Inverse()
	quadraticBezierInverse         = QuadraticBezierMatrix.Inverse()
	quadraticUniformBSplineInverse = QuadraticUniformBSplineMatrix.Inverse()
)

func cubicMatrix(m [4][4]float64) CharacteristicMatrix {
	return CharacteristicMatrix{n: 4, m: m}
}

func quadraticMatrix(m [3][3]float64) CharacteristicMatrix {
	var out CharacteristicMatrix
	out.n = 3
	for i := range m {
		copy(out.m[i][:3], m[i][:])
	}
	return out
}

// Size returns the number of rows (and columns) of the matrix: 3 for
// quadratic and 4 for cubic segments.
func (m CharacteristicMatrix) Size() int {
	return m.n
}

// At returns the element at row i, column j.
func (m CharacteristicMatrix) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("index (%d, %d) out of range for %d×%d matrix", i, j, m.n, m.n))
	}
	return m.m[i][j]
}

func (m CharacteristicMatrix) dense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	for i := range m.n {
		for j := range m.n {
			d.Set(i, j, m.m[i][j])
		}
	}
	return d
}

func fromDense(d *mat.Dense) CharacteristicMatrix {
	r, c := d.Dims()
	if r != c || (r != 3 && r != 4) {
		panic(fmt.Sprintf("unsupported characteristic matrix shape %d×%d", r, c))
	}
	out := CharacteristicMatrix{n: r}
	for i := range r {
		for j := range c {
			out.m[i][j] = d.At(i, j)
		}
	}
	return out
}

// Inverse returns the inverse of the matrix.
//
// All characteristic matrices of spline bases are invertible. Inverse panics
// if m is singular.
func (m CharacteristicMatrix) Inverse() CharacteristicMatrix {
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		panic(fmt.Sprintf("characteristic matrix is not invertible: %v", err))
	}
	return fromDense(&inv)
}

// Mul returns the matrix product m·o.
func (m CharacteristicMatrix) Mul(o CharacteristicMatrix) CharacteristicMatrix {
	if m.n != o.n {
		panic(fmt.Sprintf("cannot multiply %d×%d and %d×%d matrices", m.n, m.n, o.n, o.n))
	}
	var out mat.Dense
	out.Mul(m.dense(), o.dense())
	return fromDense(&out)
}

// BasisFunction returns the weight function of control point i: column i of
// the matrix, read as a polynomial in t.
func (m CharacteristicMatrix) BasisFunction(i int) Polynomial[Vec1] {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("basis function index %d out of range [0, %d)", i, m.n))
	}
	return Polynomial[Vec1]{
		C0: Vec1{m.m[0][i]},
		C1: Vec1{m.m[1][i]},
		C2: Vec1{m.m[2][i]},
		C3: Vec1{m.m[3][i]},
	}
}

// ConversionMatrix returns the matrix that converts control points expressed
// in the basis from to control points in the basis to, such that both sets of
// points describe the same curve. It is to⁻¹·from.
func ConversionMatrix(from, to CharacteristicMatrix) CharacteristicMatrix {
	return inverseOf(to).Mul(from)
}

// inverseOf avoids inverting the package's constant matrices more than once.
func inverseOf(m CharacteristicMatrix) CharacteristicMatrix {
	switch m {
	case CubicBezierMatrix:
		return cubicBezierInverse
	case CubicHermiteMatrix:
		return cubicHermiteInverse
	case CatmullRomMatrix:
		return catmullRomInverse
	case CubicUniformBSplineMatrix:
		return cubicUniformBSplineInverse
	case QuadraticBezierMatrix:
		return quadraticBezierInverse
	case QuadraticUniformBSplineMatrix:
		return quadraticUniformBSplineInverse
	default:
		return m.Inverse()
	}
}

// Transform multiplies the matrix with a column of control points, returning
// the control points in the matrix's target space. len(pts) must equal the
// size of the matrix.
func Transform[V Vector[V]](m CharacteristicMatrix, pts ...V) []V {
	if len(pts) != m.n {
		panic(fmt.Sprintf("got %d points for a %d×%d matrix", len(pts), m.n, m.n))
	}
	out := make([]V, m.n)
	for j := range m.n {
		var acc V
		for i, p := range pts {
			acc = acc.Add(p.Mul(m.m[j][i]))
		}
		out[j] = acc
	}
	return out
}

// PolynomialFromPoints computes the polynomial of a segment from its control
// points and the characteristic matrix of its basis.
func PolynomialFromPoints[V Vector[V]](m CharacteristicMatrix, pts ...V) Polynomial[V] {
	c := Transform(m, pts...)
	p := Polynomial[V]{C0: c[0], C1: c[1], C2: c[2]}
	if m.n == 4 {
		p.C3 = c[3]
	}
	return p
}
