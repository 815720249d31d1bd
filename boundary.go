package quadtree

import (
	"fmt"
)

// Boundary is an axis-aligned rectangle. XMin <= XMax and YMin <= YMax must
// hold; this is not checked.
//
// Containment is half-open: the min edges are inside, the max edges are not.
// Sibling quadrants sharing an edge therefore never both contain a point.
type Boundary[T Coordinate] struct {
	XMin T
	XMax T
	YMin T
	YMax T
}

// Bounds returns the boundary [xmin,xmax) x [ymin,ymax).
func Bounds[T Coordinate](xmin, xmax, ymin, ymax T) Boundary[T] {
	return Boundary[T]{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

func (b Boundary[T]) Contains(p Point[T]) bool {
	return b.XMin <= p.X && p.X < b.XMax &&
		b.YMin <= p.Y && p.Y < b.YMax
}

// Intersects reports whether the open interiors of b and other overlap.
// Boundaries which only touch along an edge do not intersect.
func (b Boundary[T]) Intersects(other Boundary[T]) bool {
	return b.XMin < other.XMax &&
		b.XMax > other.XMin &&
		b.YMin < other.YMax &&
		b.YMax > other.YMin
}

// Quadrants splits b at the midpoint of each axis. The result is ordered
// top-left, bottom-left, top-right, bottom-right, with "top" meaning the
// smaller y. The four quadrants partition b exactly.
func (b Boundary[T]) Quadrants() [4]Boundary[T] {
	midX := Midpoint(b.XMin, b.XMax)
	midY := Midpoint(b.YMin, b.YMax)
	return [4]Boundary[T]{
		{XMin: b.XMin, XMax: midX, YMin: b.YMin, YMax: midY},
		{XMin: b.XMin, XMax: midX, YMin: midY, YMax: b.YMax},
		{XMin: midX, XMax: b.XMax, YMin: b.YMin, YMax: midY},
		{XMin: midX, XMax: b.XMax, YMin: midY, YMax: b.YMax},
	}
}

func (b Boundary[T]) String() string {
	return fmt.Sprintf("[%v,%v)x[%v,%v)", b.XMin, b.XMax, b.YMin, b.YMax)
}

// Contains reports whether p lies inside b, using the half-open rule of
// Boundary.Contains. It is meant for code which checks points against a
// region without holding a tree, e.g. a linear scan.
func Contains[T Coordinate](b Boundary[T], p Point[T]) bool {
	return b.Contains(p)
}

// Intersects reports whether a and b overlap, see Boundary.Intersects.
func Intersects[T Coordinate](a, b Boundary[T]) bool {
	return a.Intersects(b)
}
