package quadtree

import (
	"fmt"
)

// Stats describes the shape of a Quadtree.
type Stats struct {
	Leaves   int
	Internal int
	Depth    int // number of levels; a tree which never split has depth 1
	Points   int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d points in %d leaves, %d internal nodes, depth %d",
		s.Points, s.Leaves, s.Internal, s.Depth)
}

// Stats walks the tree and counts its nodes.
func (q *Quadtree[T]) Stats() Stats {
	var s Stats
	q.root.collect(&s, 1)
	return s
}

func (n *node[T]) collect(s *Stats, depth int) {
	if depth > s.Depth {
		s.Depth = depth
	}
	if n.children == nil {
		s.Leaves++
		s.Points += len(n.points)
		return
	}
	s.Internal++
	for i := range n.children {
		n.children[i].collect(s, depth+1)
	}
}
