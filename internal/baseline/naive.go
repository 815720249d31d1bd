package baseline

import (
	"github.com/robert-butts/quadtree/v2"
)

// Naive stores points in a slice and answers searches by scanning all of
// them.
type Naive[T quadtree.Coordinate] struct {
	boundary quadtree.Boundary[T]
	points   []quadtree.Point[T]
}

func NewNaive[T quadtree.Coordinate](b quadtree.Boundary[T]) *Naive[T] {
	return &Naive[T]{boundary: b}
}

// Insert follows the quadtree's rules: points outside the boundary are
// rejected, duplicates are accepted but not stored twice.
func (n *Naive[T]) Insert(p quadtree.Point[T]) bool {
	if !quadtree.Contains(n.boundary, p) {
		return false
	}
	for _, stored := range n.points {
		if stored == p {
			return true
		}
	}
	n.points = append(n.points, p)
	return true
}

func (n *Naive[T]) Search(b quadtree.Boundary[T]) []quadtree.Point[T] {
	var found []quadtree.Point[T]
	for _, p := range n.points {
		if quadtree.Contains(b, p) {
			found = append(found, p)
		}
	}
	return found
}

func (n *Naive[T]) Size() int {
	return len(n.points)
}
