package quadtree

import (
	"golang.org/x/exp/constraints"
)

// Coordinate is the set of numeric types a Quadtree can be built over.
type Coordinate interface {
	constraints.Integer | constraints.Float
}

// Midpoint returns the value halfway between a and b, where a <= b.
//
// Integer midpoints use truncating division, so splitting an odd-width range
// is not centered. Floats whose sum overflows are halved first. The result always satisfies a <= m <= b, and a < m < b
// whenever b-a >= 2. Integer halves are summed separately so that ranges
// near the limits of the type do not overflow.
func Midpoint[T Coordinate](a, b T) T {
	var half T = 1
	half /= 2
	if half != 0 { // floating point
		m := (a + b) / 2
		if m < a || m > b { // a+b overflowed
			m = a/2 + b/2
		}
		return m
	}
	ra, rb := a-a/2*2, b-b/2*2
	return a/2 + b/2 + (ra+rb)/2
}
