package advanced

import (
	"sort"

	"github.com/pkg/errors"
)

// Triangulation owns the point list and the current triangle list. Both are
// flat slices addressed by integer index. Adjacency and edge membership are
// derived views computed from the triangles on demand, never stored.
//
// A Triangulation is not safe for concurrent use. The Inserter that mutates
// it expects exclusive ownership while a cycle is in progress.
type Triangulation struct {
	bounds    Rect
	points    []Point
	triangles []Triangle
}

// Create a triangulation bootstrapped over the unit square.
func NewTriangulation() *Triangulation {
	return NewTriangulationInRect(UnitSquare)
}

// Create a triangulation bootstrapped over the given rectangle. Every point
// inserted later must lie strictly inside it.
func NewTriangulationInRect(bounds Rect) *Triangulation {
	t := &Triangulation{bounds: bounds}
	t.Bootstrap()
	return t
}

// Reset to the seed triangulation: the four corners of the bounds, split
// along the diagonal from corner 1 to corner 3.
//
//	3-------2
//	| \     |
//	|   \   |
//	|     \ |
//	0-------1
func (t *Triangulation) Bootstrap() {
	b := t.bounds
	t.points = []Point{
		{b.Min.X, b.Min.Y},
		{b.Max.X, b.Min.Y},
		{b.Max.X, b.Max.Y},
		{b.Min.X, b.Max.Y},
	}
	t.triangles = t.triangles[:0]
	t.AddTriangle(0, 1, 3)
	t.AddTriangle(1, 2, 3)
}

func (t *Triangulation) Bounds() Rect {
	return t.bounds
}

// Append a point and return its index. The index never changes.
func (t *Triangulation) AddPoint(p Point) int {
	t.points = append(t.points, p)
	return len(t.points) - 1
}

func (t *Triangulation) Point(i int) Point {
	t.checkPointIndex(i)
	return t.points[i]
}

func (t *Triangulation) Points() []Point {
	return append([]Point(nil), t.points...)
}

func (t *Triangulation) NumPoints() int {
	return len(t.points)
}

func (t *Triangulation) NumTriangles() int {
	return len(t.triangles)
}

// A copy of the current triangles. The order has no meaning and changes
// whenever triangles are removed.
func (t *Triangulation) Triangles() []Triangle {
	return append([]Triangle(nil), t.triangles...)
}

func (t *Triangulation) Triangle(i int) Triangle {
	if i < 0 || i >= len(t.triangles) {
		fatalf(ErrIndexOutOfRange, "triangle %d of %d", i, len(t.triangles))
	}
	return t.triangles[i]
}

// Append a triangle over three existing points and return its slot. The
// vertices are reordered if necessary so that the stored triangle winds
// counterclockwise.
func (t *Triangulation) AddTriangle(a, b, c int) int {
	t.checkPointIndex(a)
	t.checkPointIndex(b)
	t.checkPointIndex(c)
	if IsCW(t.points[a], t.points[b], t.points[c]) {
		b, c = c, b
	}
	t.triangles = append(t.triangles, newTriangle(a, b, c))
	return len(t.triangles) - 1
}

// Remove triangles by slot using swap-with-last-and-truncate. Each removal
// moves the last triangle into the freed slot, so the indices must be given in
// strictly descending order for the later ones to still be valid. Any slot
// index held by the caller is invalid after this returns.
func (t *Triangulation) RemoveTriangles(indices ...int) {
	for i, index := range indices {
		if index < 0 || index >= len(t.triangles) {
			fatalf(ErrIndexOutOfRange, "triangle %d of %d", index, len(t.triangles))
		}
		if i > 0 && index >= indices[i-1] {
			fatalf(ErrRemoveOrder, "%d follows %d", index, indices[i-1])
		}
	}
	for _, index := range indices {
		last := len(t.triangles) - 1
		t.triangles[index] = t.triangles[last]
		t.triangles = t.triangles[:last]
	}
}

// How many triangles each edge belongs to.
func (t *Triangulation) EdgeCounts() map[Edge]int {
	counts := make(map[Edge]int, len(t.triangles)*3/2+2)
	for _, tri := range t.triangles {
		for _, e := range tri.Edges {
			counts[e]++
		}
	}
	return counts
}

// Every distinct edge, sorted by endpoint indices.
func (t *Triangulation) Edges() []Edge {
	counts := t.EdgeCounts()
	edges := make([]Edge, 0, len(counts))
	for e := range counts {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return edges
}

// Edges belonging to exactly one triangle. For a triangulation grown from the
// bootstrap, these are the four sides of the bounds.
func (t *Triangulation) HullEdges() []Edge {
	var edges []Edge
	for e, count := range t.EdgeCounts() {
		if count == 1 {
			edges = append(edges, e)
		}
	}
	sortEdges(edges)
	return edges
}

// For each point, the set of points it shares an edge with. This is rebuilt
// from the triangles on every call.
func (t *Triangulation) Adjacency() map[int]IndexSet {
	adjacency := make(map[int]IndexSet, len(t.points))
	link := func(a, b int) {
		set, ok := adjacency[a]
		if !ok {
			set = make(IndexSet)
			adjacency[a] = set
		}
		set.Add(b)
	}
	for _, tri := range t.triangles {
		for _, e := range tri.Edges {
			link(e.A, e.B)
			link(e.B, e.A)
		}
	}
	return adjacency
}

// Check the invariants that hold between insertion cycles:
//
// 1. Every edge belongs to exactly one or two triangles.
// 2. No point lies strictly inside the circumcircle of a triangle it is not a
// vertex of.
//
// This is quadratic, and intended for tests and debugging.
func (t *Triangulation) Validate() error {
	for e, count := range t.EdgeCounts() {
		if count < 1 || count > 2 {
			return errors.Wrapf(ErrNotManifold, "edge %s belongs to %d triangles", e, count)
		}
	}
	for slot, tri := range t.triangles {
		a, b, c := t.points[tri.A], t.points[tri.B], t.points[tri.C]
		for i, p := range t.points {
			if tri.Has(i) {
				continue
			}
			if InCircumcircle(p, a, b, c) {
				return errors.Wrapf(ErrNotDelaunay, "point %d is inside the circumcircle of triangle %d %v", i, slot, tri.Vertices())
			}
		}
	}
	return nil
}

func (t *Triangulation) checkPointIndex(i int) {
	if i < 0 || i >= len(t.points) {
		fatalf(ErrIndexOutOfRange, "point %d of %d", i, len(t.points))
	}
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})
}
