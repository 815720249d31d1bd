/*
Package baseline holds point indexes which answer the same queries as a
quadtree.Quadtree by other means. They are used to check the quadtree's
results and to measure how much it gains over a plain scan and over an R-tree.
*/
package baseline

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/robert-butts/quadtree/v2"
)

// Index is the insert/search API shared by the quadtree and the baselines.
type Index[T quadtree.Coordinate] interface {
	Insert(p quadtree.Point[T]) bool
	Search(b quadtree.Boundary[T]) []quadtree.Point[T]
	Size() int
}

var (
	_ Index[int]     = (*quadtree.Quadtree[int])(nil)
	_ Index[int]     = (*Naive[int])(nil)
	_ Index[float64] = (*RTree)(nil)
)

// tracer writes to trace with key 'quadtree'
func tracer() tracing.Trace {
	return tracing.Select("quadtree")
}
