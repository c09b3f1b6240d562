package spline

import "fmt"

// Bounds is an axis-aligned bounding box in any of the supported dimensions.
type Bounds[V Vector[V]] struct {
	Min V
	Max V
}

// NewBounds returns the smallest box containing both p0 and p1.
func NewBounds[V Vector[V]](p0, p1 V) Bounds[V] {
	return Bounds[V]{Min: p0, Max: p0}.Union(p1)
}

// Union returns the smallest box containing b and pt.
func (b Bounds[V]) Union(pt V) Bounds[V] {
	var lo, hi [4]float64
	n := pt.Dim()
	for i := range n {
		lo[i] = min(b.Min.Component(i), pt.Component(i))
		hi[i] = max(b.Max.Component(i), pt.Component(i))
	}
	return Bounds[V]{
		Min: fromComponents[V](lo),
		Max: fromComponents[V](hi),
	}
}

// Size returns the extent of the box along every axis.
func (b Bounds[V]) Size() V {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box.
func (b Bounds[V]) Center() V {
	return b.Min.Lerp(b.Max, 0.5)
}

// Contains reports whether pt lies inside the box, boundary included.
func (b Bounds[V]) Contains(pt V) bool {
	for i := range pt.Dim() {
		c := pt.Component(i)
		if c < b.Min.Component(i) || c > b.Max.Component(i) {
			return false
		}
	}
	return true
}

func (b Bounds[V]) String() string {
	return fmt.Sprintf("Bounds{%v, %v}", b.Min, b.Max)
}

// fromComponents builds a vector from the first Dim() entries of c.
func fromComponents[V Vector[V]](c [4]float64) V {
	var v V
	switch p := any(&v).(type) {
	case *Vec1:
		*p = Vec1{c[0]}
	case *Vec2:
		*p = Vec2{c[0], c[1]}
	case *Vec3:
		*p = Vec3{c[0], c[1], c[2]}
	case *Vec4:
		*p = Vec4{c[0], c[1], c[2], c[3]}
	default:
		panic(fmt.Sprintf("unhandled vector type %T", v))
	}
	return v
}
