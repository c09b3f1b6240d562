package spline

import "sort"

// UniformKnots generates the knot vector of a uniform B-spline with the given
// degree and number of control points.
//
// A closed (unclamped) knot vector is 0, 1, 2, …; an open (clamped) one
// repeats its first and last knots degree+1 times, so that the curve passes
// through its first and last control points:
//
//	degree 3, 5 points, closed:  0 1 2 3 4 5 6 7 8
//	degree 3, 5 points, open:    0 0 0 0 1 2 2 2 2
func UniformKnots(degree, pointCount int, open bool) []float64 {
	n := degree + pointCount + 1
	knots := make([]float64, n)
	for i := range knots {
		if open {
			knots[i] = float64(min(max(i-degree, 0), n-2*degree-1))
		} else {
			knots[i] = float64(i)
		}
	}
	return knots
}

func knotsNonDecreasing(knots []float64) bool {
	return sort.Float64sAreSorted(knots)
}

// knotSpan returns the index j of the span knots[j] <= u < knots[j+1] among
// the spans [lo, hi). Values before the first span map to lo, values at or
// after knots[hi] to hi-1.
func knotSpan(knots []float64, lo, hi int, u float64) int {
	if u >= knots[hi] {
		return hi - 1
	}
	if u < knots[lo] {
		return lo
	}
	// The first span whose end lies beyond u. Repeated knots produce empty
	// spans, which are skipped.
	return lo + sort.Search(hi-lo, func(i int) bool {
		return knots[lo+i+1] > u
	})
}

// knotRatio is the blend factor (u - knots[i]) / (knots[i+k] - knots[i]) of
// the Cox-de Boor recursion. It is 0 for repeated knots.
func knotRatio(knots []float64, i, k int, u float64) float64 {
	den := knots[i+k] - knots[i]
	if den == 0 {
		return 0
	}
	return (u - knots[i]) / den
}
