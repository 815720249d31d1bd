package quadtree

import (
	"fmt"
)

// Point is a location in the plane. Two points are equal iff both coordinates
// are equal.
type Point[T Coordinate] struct {
	X T
	Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Coordinate](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return "[" + fmt.Sprint(p.X) + "," + fmt.Sprint(p.Y) + "]"
}
