package spline

import "math"

// Circle2 is a circle in the plane.
type Circle2 struct {
	Center Vec2
	Radius float64
}

// Eval returns the point on the circle at angle θ, in radians.
func (c Circle2) Eval(th float64) Vec2 {
	return c.Center.Add(VecFromAngle(th).Mul(c.Radius))
}

func (c Circle2) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle2) Circumference() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

// Circle3 is a circle in space, lying in the plane through Center
// perpendicular to Normal.
type Circle3 struct {
	Center Vec3
	// Normal is the unit normal of the circle's plane.
	Normal Vec3
	Radius float64
}

func (c Circle3) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle3) Circumference() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}
