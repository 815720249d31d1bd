package baseline

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/robert-butts/quadtree/v2"
)

// Branching bounds of the R-tree nodes.
const (
	minChildren = 25
	maxChildren = 50
)

// RTree indexes float64 points in an R-tree. It is a proxy for
// github.com/dhconnelly/rtreego which keeps the quadtree's half-open
// containment and duplicate rules.
type RTree struct {
	boundary quadtree.Boundary[float64]
	rtree    *rtreego.Rtree
	stored   map[quadtree.Point[float64]]struct{}
}

type entry struct {
	point  quadtree.Point[float64]
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial for *entry.
func (e *entry) Bounds() rtreego.Rect {
	return e.bounds
}

func NewRTree(b quadtree.Boundary[float64]) *RTree {
	return &RTree{
		boundary: b,
		rtree:    rtreego.NewTree(2, minChildren, maxChildren),
		stored:   make(map[quadtree.Point[float64]]struct{}),
	}
}

func (t *RTree) Insert(p quadtree.Point[float64]) bool {
	if !quadtree.Contains(t.boundary, p) {
		return false
	}
	if _, ok := t.stored[p]; ok {
		return true
	}
	t.stored[p] = struct{}{}
	t.rtree.Insert(&entry{point: p, bounds: rtreego.Point{p.X, p.Y}.ToRect(0)})
	return true
}

// Search returns the points inside b. R-tree rectangles are closed, so
// candidates on the max edges of b are filtered out afterwards.
func (t *RTree) Search(b quadtree.Boundary[float64]) []quadtree.Point[float64] {
	if b.XMax <= b.XMin || b.YMax <= b.YMin {
		return nil
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.XMin, b.YMin}, []float64{span(b.XMin, b.XMax), span(b.YMin, b.YMax)})
	if err != nil {
		tracer().Errorf("rtree: cannot search %v: %v", b, err)
		return nil
	}
	var found []quadtree.Point[float64]
	for _, s := range t.rtree.SearchIntersect(rect) {
		p := s.(*entry).point
		if quadtree.Contains(b, p) {
			found = append(found, p)
		}
	}
	return found
}

func (t *RTree) Size() int {
	return t.rtree.Size()
}

// span is the length of [lo,hi], padded so that lo+span does not round to
// less than hi.
func span(lo, hi float64) float64 {
	return hi - lo + 1e-9*(math.Abs(lo)+math.Abs(hi)) + math.SmallestNonzeroFloat64
}
