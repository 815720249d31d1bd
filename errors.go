package quadtree

import (
	"fmt"
)

// InvariantError is the panic value raised when a node's children fail to
// accept a point the node itself contains. That can only happen if the
// quadrant geometry does not partition its parent, i.e. a bug in this
// package. It is never returned as an error.
type InvariantError struct {
	Op       string
	Boundary string
	Point    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("quadtree %s: no quadrant of %s accepted point %s", e.Op, e.Boundary, e.Point)
}
