// Package spline evaluates parametric curves and splines in one to four
// dimensions. Given control points (and, for B-splines and NURBS, a knot
// vector and optional weights), it computes positions, derivatives, curvature
// and torsion, arc length, and local reference frames along the curve.
//
// It was designed for smooth interpolation, animation and trajectory
// sampling, and geometric analysis such as osculating circles and Frenet-style
// frames.
//
// # Vectors
//
// Curves are generic over their vector type, which is one of [Vec1], [Vec2],
// [Vec3] and [Vec4], as described by the [Vector] constraint. Every algorithm
// is written once and works in all dimensions. Operations that only exist in
// one dimension, such as the signed curvature of planar curves or the torsion
// of space curves, are functions over [Vec2] or [Vec3].
//
// # Capabilities
//
// Curves are described by what they can do rather than by what they are.
// [Evaler] describes curves that can be evaluated, [Deriver] through
// [FourthDeriver] describe curves that can evaluate their derivatives.
// [Curve], [Curve1Diff] and so on combine these capabilities with the
// polynomial degree of the curve.
//
// Functions that analyze curves accept the smallest set of capabilities they
// need. [Curvature2], for example, only needs the first and second
// derivatives, and [ArcLength] only needs evaluation.
//
// # Uniform spline segments
//
// A uniform spline segment is a polynomial in t ∈ [0, 1] defined by three or
// four control points and a [CharacteristicMatrix]. The package provides:
//   - [CubicBezier] and [QuadBezier]
//   - [CubicHermite], defined by end points and velocities
//   - [CatmullRom], which interpolates its inner control points
//   - [CubicUniformBSpline] and [QuadUniformBSpline]
//
// All segment types describe the same space of polynomials and can be
// converted into each other without loss, using [ConversionMatrix]. Segments
// are immutable; their [Polynomial] is computed once, on construction.
//
// # B-splines
//
// [BSpline] is a B-spline of arbitrary degree over an arbitrary
// non-decreasing knot vector, evaluated with De Boor's algorithm.
// [NewUniformBSpline] builds open (clamped) and closed knot vectors. [NURBS]
// adds weights, which allow the exact representation of conic sections.
//
// B-splines are evaluated at t ∈ [0, 1] like every other curve, with t mapped
// onto the range of internal knots. [BSpline.EvalAtKnotValue] evaluates at
// knot values directly.
//
// # Arc length
//
// [ArcLength] approximates the length of a curve by the length of a polyline
// through samples of the curve, while [ArcLengthQuadrature] integrates the
// speed of curves with derivatives. [UniformSampler] precomputes a table of
// distances along a curve, to evaluate curves at uniform speed.
//
// # Concurrency
//
// All curve values are immutable and safe for concurrent use.
// [UniformSampler] is the exception: it must not be recalculated while it is
// being queried.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - The NURBS Book by Les Piegl and Wayne Tiller
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package spline
