package quadtree

import (
	"fmt"
)

// DefaultCapacity is the node capacity used by New.
const DefaultCapacity = 64

// Quadtree is a point quadtree over a fixed boundary.
//
// A Quadtree is not safe for concurrent mutation. Concurrent calls to Search
// are safe as long as no Insert is in flight.
type Quadtree[T Coordinate] struct {
	capacity int
	root     node[T]
}

// node is either a leaf, holding up to capacity points, or an internal node
// with exactly four children and no points. A leaf turns into an internal
// node once, by replacing its children slot; it never turns back.
type node[T Coordinate] struct {
	boundary Boundary[T]
	points   []Point[T]
	children *quad[T] // nil for leaves
}

// quad holds the children of an internal node, in the order of
// Boundary.Quadrants.
type quad[T Coordinate] [4]node[T]

// New returns an empty Quadtree covering b, with DefaultCapacity.
func New[T Coordinate](b Boundary[T]) *Quadtree[T] {
	return WithCapacity(DefaultCapacity, b)
}

// WithCapacity returns an empty Quadtree covering b whose leaves hold at most
// capacity distinct points before splitting. It panics if capacity < 1.
func WithCapacity[T Coordinate](capacity int, b Boundary[T]) *Quadtree[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("quadtree: capacity must be positive, got %d", capacity))
	}
	return &Quadtree[T]{
		capacity: capacity,
		root:     node[T]{boundary: b},
	}
}

func (q *Quadtree[T]) Boundary() Boundary[T] {
	return q.root.boundary
}

func (q *Quadtree[T]) Capacity() int {
	return q.capacity
}

// Insert adds p to the tree. It returns false if p lies outside the tree's
// boundary, and true otherwise. Inserting a point which is already stored is
// a no-op returning true.
func (q *Quadtree[T]) Insert(p Point[T]) bool {
	return q.root.insert(p, q.capacity)
}

// Search returns every stored point inside b, in no particular order.
func (q *Quadtree[T]) Search(b Boundary[T]) []Point[T] {
	return q.root.search(b, nil)
}

// Size returns the number of points stored. It walks the whole tree.
func (q *Quadtree[T]) Size() int {
	return q.root.size()
}

func (n *node[T]) insert(p Point[T], capacity int) bool {
	if !n.boundary.Contains(p) {
		return false
	}
	if n.children == nil {
		for _, stored := range n.points {
			if stored == p {
				return true
			}
		}
		if len(n.points) < capacity {
			n.points = append(n.points, p)
			return true
		}
		n.split(capacity)
	}
	if n.children.insert(p, capacity) {
		return true
	}
	panic(n.invariantViolated("insert", p))
}

// split turns the leaf n into an internal node, moving its points into four
// new leaves.
func (n *node[T]) split(capacity int) {
	tracer().Debugf("quadtree: splitting %v holding %d points", n.boundary, len(n.points))
	quadrants := n.boundary.Quadrants()
	children := new(quad[T])
	for i := range children {
		children[i].boundary = quadrants[i]
	}
	for _, p := range n.points {
		if !children.insert(p, capacity) {
			panic(n.invariantViolated("split", p))
		}
	}
	n.children = children
	n.points = nil
}

// insert offers p to the children in order and stops at the first one which
// accepts it.
func (c *quad[T]) insert(p Point[T], capacity int) bool {
	for i := range c {
		if c[i].insert(p, capacity) {
			return true
		}
	}
	return false
}

func (n *node[T]) invariantViolated(op string, p Point[T]) *InvariantError {
	err := &InvariantError{Op: op, Boundary: n.boundary.String(), Point: p.String()}
	tracer().Errorf("%v", err)
	return err
}

func (n *node[T]) search(b Boundary[T], found []Point[T]) []Point[T] {
	if !n.boundary.Intersects(b) {
		return found
	}
	if n.children == nil {
		for _, p := range n.points {
			if b.Contains(p) {
				found = append(found, p)
			}
		}
		return found
	}
	for i := range n.children {
		found = n.children[i].search(b, found)
	}
	return found
}

func (n *node[T]) size() int {
	if n.children == nil {
		return len(n.points)
	}
	size := 0
	for i := range n.children {
		size += n.children[i].size()
	}
	return size
}
