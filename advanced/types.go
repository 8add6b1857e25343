package advanced

// Points are identified by their index in the triangulation's point list.
// Points are never removed or reindexed, so an index is a permanent identity.
type Point struct {
	X float64
	Y float64
}

type Rect struct {
	Min, Max Point
}

// The unit square used to bootstrap a triangulation when no bounds are given.
var UnitSquare = Rect{Min: Point{0, 0}, Max: Point{1, 1}}

// An unordered pair of point indices. A is always the smaller index, so two
// edges are equal (and hash identically as map keys) regardless of the order
// their endpoints were given in. Always construct with NewEdge.
type Edge struct {
	A, B int
}

// A triangle over three point indices, plus the three canonical edges formed
// by consecutive vertex pairs. Triangles stored in a Triangulation are always
// counterclockwise.
//
// Triangle identity is positional: its slot in the triangulation. Removing a
// triangle moves the last triangle into the freed slot, so slots are not
// stable across removals.
type Triangle struct {
	A, B, C int
	Edges   [3]Edge
}

type IndexSet map[int]struct{}

func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

func (s IndexSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}
