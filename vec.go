package spline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is the set of vector types that curves can be evaluated in.
//
// All curve code in this package is written once against this constraint and
// works for one to four dimensions. Operations that only make sense in a
// specific dimension (normals, torsion, …) are provided as functions over
// [Vec2] or [Vec3].
type Vector[V any] interface {
	Vec1 | Vec2 | Vec3 | Vec4

	Add(o V) V
	Sub(o V) V
	Mul(f float64) V
	Dot(o V) float64
	Lerp(o V, t float64) V
	Hypot() float64
	Hypot2() float64
	Normalize() V
	Dim() int
	Component(i int) float64
	IsNaN() bool
	IsInf() bool
}

// Lerp linearly interpolates between a and b.
//
// It computes a(1-t) + bt, so that t = 0 and t = 1 return exactly a and b.
func Lerp[V Vector[V]](a, b V, t float64) V {
	return a.Lerp(b, t)
}

// Distance returns the Euclidean distance between two points.
func Distance[V Vector[V]](a, b V) float64 {
	return b.Sub(a).Hypot()
}

func normalizeOrZero[V Vector[V]](v V) V {
	h := v.Hypot()
	if h == 0 {
		var zero V
		return zero
	}
	return v.Mul(1 / h)
}

// Vec1 is a one-dimensional vector. It's mostly useful for easing curves and
// for the weight functions of characteristic matrices.
type Vec1 struct {
	X float64
}

func (v Vec1) String() string              { return fmt.Sprintf("⟨%g⟩", v.X) }
func (v Vec1) Add(o Vec1) Vec1             { return Vec1{v.X + o.X} }
func (v Vec1) Sub(o Vec1) Vec1             { return Vec1{v.X - o.X} }
func (v Vec1) Mul(f float64) Vec1          { return Vec1{v.X * f} }
func (v Vec1) Dot(o Vec1) float64          { return v.X * o.X }
func (v Vec1) Hypot() float64              { return math.Abs(v.X) }
func (v Vec1) Hypot2() float64             { return v.X * v.X }
func (v Vec1) Dim() int                    { return 1 }
func (v Vec1) IsNaN() bool                 { return math.IsNaN(v.X) }
func (v Vec1) IsInf() bool                 { return math.IsInf(v.X, 0) }
func (v Vec1) Lerp(o Vec1, t float64) Vec1 { return Vec1{v.X*(1-t) + o.X*t} }
func (v Vec1) Normalize() Vec1             { return v.Mul(1.0 / v.Hypot()) }
func (v Vec1) Component(i int) float64 {
	if i != 0 {
		panic(fmt.Sprintf("component index %d out of range for Vec1", i))
	}
	return v.X
}

type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o. This is the scalar value of the
// wedge product v ∧ o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the positive y
// direction. This is atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Turn90 rotates the vector by 90° counter-clockwise (in a y-up coordinate
// system).
func (v Vec2) Turn90() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	mt := 1 - t
	return Vec2{
		X: v.X*mt + o.X*t,
		Y: v.Y*mt + o.Y*t,
	}
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

// Mul multiplies the vector by a scalar.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Dim() int { return 2 }

func (v Vec2) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("component index %d out of range for Vec2", i))
	}
}

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3FromR3 converts a gonum r3 vector.
func Vec3FromR3(v r3.Vec) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// R3 converts the vector to a gonum r3 vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3FromR3(r3.Cross(v.R3(), o.R3()))
}

// Wedge returns the wedge product v ∧ o, the bivector spanning the plane of
// both vectors.
func (v Vec3) Wedge(o Vec3) Bivector3 {
	return Bivector3{
		YZ: v.Y*o.Z - v.Z*o.Y,
		ZX: v.Z*o.X - v.X*o.Z,
		XY: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Hypot() float64 {
	return r3.Norm(v.R3())
}

func (v Vec3) Hypot2() float64 {
	return v.Dot(v)
}

func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	mt := 1 - t
	return Vec3{
		v.X*mt + o.X*t,
		v.Y*mt + o.Y*t,
		v.Z*mt + o.Z*t,
	}
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1.0 / v.Hypot())
}

func (v Vec3) Dim() int { return 3 }

func (v Vec3) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("component index %d out of range for Vec3", i))
	}
}

func (v Vec3) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

func (v Vec3) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func (v Vec4) String() string {
	return fmt.Sprintf("⟨%g, %g, %g, %g⟩", v.X, v.Y, v.Z, v.W)
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Mul(f float64) Vec4 {
	return Vec4{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

func (v Vec4) Hypot2() float64 {
	return v.Dot(v)
}

func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	mt := 1 - t
	return Vec4{
		v.X*mt + o.X*t,
		v.Y*mt + o.Y*t,
		v.Z*mt + o.Z*t,
		v.W*mt + o.W*t,
	}
}

func (v Vec4) Normalize() Vec4 {
	return v.Mul(1.0 / v.Hypot())
}

func (v Vec4) Dim() int { return 4 }

func (v Vec4) Component(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(fmt.Sprintf("component index %d out of range for Vec4", i))
	}
}

func (v Vec4) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0) || math.IsInf(v.W, 0)
}

func (v Vec4) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) || math.IsNaN(v.W)
}

// Bivector3 is a 3D bivector, an oriented plane segment. Its magnitude is the
// area of the segment; its dual is the vector normal to the plane.
type Bivector3 struct {
	YZ float64
	ZX float64
	XY float64
}

// Magnitude returns the area of the plane segment.
func (b Bivector3) Magnitude() float64 {
	return math.Sqrt(b.YZ*b.YZ + b.ZX*b.ZX + b.XY*b.XY)
}

// Mul scales the bivector.
func (b Bivector3) Mul(f float64) Bivector3 {
	return Bivector3{b.YZ * f, b.ZX * f, b.XY * f}
}

// Normal returns the dual of the bivector, the vector perpendicular to its
// plane whose length is the bivector's magnitude.
func (b Bivector3) Normal() Vec3 {
	return Vec3{b.YZ, b.ZX, b.XY}
}
