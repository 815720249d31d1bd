/*
Package quadtree implements a point quadtree with rectangular range search.

A Quadtree covers a fixed Boundary and stores distinct points inside it. Each
leaf holds up to a fixed number of points; inserting one more distinct point
splits the leaf into four quadrants at the midpoint of each axis. Trees are
generic over integer and floating point coordinates.

Boundaries are half-open: a point on the maximum x or y edge of a boundary
lies outside of it. The quadrants of a node therefore partition the node
exactly, and a point on a shared edge belongs to exactly one of them.

	qt := quadtree.New(quadtree.Bounds(0, 100, 0, 100))
	qt.Insert(quadtree.Pt(10, 20))
	found := qt.Search(quadtree.Bounds(0, 50, 0, 50))

Points outside the tree's boundary are rejected by Insert, duplicates are
ignored. There is no deletion.

quadtree is not safe for concurrent mutation.
*/
package quadtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quadtree'
func tracer() tracing.Trace {
	return tracing.Select("quadtree")
}
