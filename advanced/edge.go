package advanced

import "fmt"

// Build the canonical edge between two point indices. The result does not
// depend on argument order. An edge from a point to itself can only come from
// a degenerate triangle, so it panics with ErrDegenerateEdge.
func NewEdge(a, b int) Edge {
	if a == b {
		fatalf(ErrDegenerateEdge, "edge from point %d to itself", a)
	}
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

func (e Edge) Has(i int) bool {
	return e.A == i || e.B == i
}

// The endpoint opposite i. The result is meaningless if i is not an endpoint.
func (e Edge) Other(i int) int {
	if e.A == i {
		return e.B
	}
	return e.A
}

func (e Edge) String() string {
	return fmt.Sprintf("{%d, %d}", e.A, e.B)
}
