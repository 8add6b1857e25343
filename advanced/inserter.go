package advanced

import (
	"github.com/osuushi/delaunay/dbg"
	"go.uber.org/zap"
)

// Bowyer-Watson point insertion. Each new point goes through four phases:
//
//  1. Find every triangle whose circumcircle strictly contains the point.
//     These "bad" triangles are exactly the ones that stop being Delaunay.
//  2. Compute the boundary of the cavity they form. An edge shared by two bad
//     triangles is interior to the cavity and cancels out; an edge seen once
//     is on the boundary. Then remove the bad triangles.
//  3. Fill the cavity with a fan of triangles from each boundary edge to the
//     new point.
//  4. Return to idle. The triangulation is Delaunay again.
//
// Insert runs the phases back to back. Step runs one phase per call so that a
// visualizer can draw the intermediate state. Both go through the same phase
// functions, so they always produce the same triangulation.
//
// The new point must lie strictly inside the bootstrap bounds. A point on or
// outside them panics with ErrOutsideTriangulation before the triangulation is
// touched. A point just outside can still fall inside a circumcircle, so the
// bounds are checked before the scan.
//
// An Inserter holds no clock and never blocks. It is not safe for concurrent
// use: the caller must serialize Step and Insert. A cycle can be abandoned
// between phases, but there is no rollback. Once bad triangles have been
// removed, the cavity stays open until Retriangulate runs.

type Phase int

const (
	Idle Phase = iota
	FindBadTriangles
	ComputeBoundary
	Retriangulate
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case FindBadTriangles:
		return "FindBadTriangles"
	case ComputeBoundary:
		return "ComputeBoundary"
	case Retriangulate:
		return "Retriangulate"
	}
	return "Phase(?)"
}

type Inserter struct {
	mesh   *Triangulation
	source PointSource
	queue  []Point
	phase  Phase
	cycle  *cycle
}

// State for the point currently being inserted. It only exists between
// leaving Idle and returning to it.
type cycle struct {
	point Point
	index int
	// Slots of the bad triangles in ascending order, and copies of the
	// triangles themselves, which outlive their slots once removed.
	badSlots  []int
	bad       []Triangle
	boundary  []Edge
	discarded []Edge
}

func NewInserter(mesh *Triangulation) *Inserter {
	return &Inserter{mesh: mesh}
}

func (ins *Inserter) Mesh() *Triangulation {
	return ins.mesh
}

func (ins *Inserter) Phase() Phase {
	return ins.phase
}

// Points are taken from the source once the queue is empty.
func (ins *Inserter) SetSource(source PointSource) {
	ins.source = source
}

// Queue points for stepped insertion. They are taken in order each time Step
// leaves Idle.
func (ins *Inserter) Queue(points ...Point) {
	ins.queue = append(ins.queue, points...)
}

// Number of queued points, not counting the point of a cycle in progress or
// anything still available from the source.
func (ins *Inserter) Pending() int {
	return len(ins.queue)
}

// Insert a point, running all four phases. Panics with ErrCycleInProgress if a
// stepped cycle has not finished yet.
func (ins *Inserter) Insert(p Point) int {
	if ins.phase != Idle {
		fatalf(ErrCycleInProgress, "cannot insert %v during %s", p, ins.phase)
	}
	ins.findBadTriangles(p)
	index := ins.cycle.index
	ins.Finish()
	return index
}

func (ins *Inserter) InsertAll(points ...Point) {
	for _, p := range points {
		ins.Insert(p)
	}
}

// Advance exactly one phase and return the phase entered. Leaving Idle takes
// the next queued point, or the next point from the source. Panics with
// ErrNoPendingPoint if there is none.
func (ins *Inserter) Step() Phase {
	switch ins.phase {
	case Idle:
		p, ok := ins.nextPoint()
		if !ok {
			fatalf(ErrNoPendingPoint, "step from %s", ins.phase)
		}
		ins.findBadTriangles(p)
	case FindBadTriangles:
		ins.computeBoundary()
	case ComputeBoundary:
		ins.retriangulate()
	case Retriangulate:
		ins.finishCycle()
	}
	return ins.phase
}

// Run the remaining phases of the cycle in progress, if any.
func (ins *Inserter) Finish() {
	for ins.phase != Idle {
		ins.Step()
	}
}

// The point being inserted and its index. ok is false when Idle.
func (ins *Inserter) Current() (p Point, index int, ok bool) {
	if ins.cycle == nil {
		return Point{}, -1, false
	}
	return ins.cycle.point, ins.cycle.index, true
}

// The bad triangles of the cycle in progress. These remain available after
// they have been removed from the triangulation.
func (ins *Inserter) BadTriangles() []Triangle {
	if ins.cycle == nil {
		return nil
	}
	return append([]Triangle(nil), ins.cycle.bad...)
}

// The cavity boundary of the cycle in progress. Empty until ComputeBoundary.
func (ins *Inserter) Boundary() []Edge {
	if ins.cycle == nil {
		return nil
	}
	return append([]Edge(nil), ins.cycle.boundary...)
}

// Edges that were interior to the cavity and dropped with the bad triangles.
func (ins *Inserter) Discarded() []Edge {
	if ins.cycle == nil {
		return nil
	}
	return append([]Edge(nil), ins.cycle.discarded...)
}

func (ins *Inserter) nextPoint() (Point, bool) {
	if len(ins.queue) > 0 {
		p := ins.queue[0]
		ins.queue = ins.queue[1:]
		return p, true
	}
	if ins.source != nil {
		return ins.source.Next()
	}
	return Point{}, false
}

// Idle -> FindBadTriangles
func (ins *Inserter) findBadTriangles(p Point) {
	if !ins.mesh.bounds.ContainsStrict(p) {
		fatalf(ErrOutsideTriangulation, "%v is not strictly inside %v", p, ins.mesh.bounds)
	}
	c := &cycle{point: p}
	for slot, tri := range ins.mesh.triangles {
		a, b, cc := ins.mesh.points[tri.A], ins.mesh.points[tri.B], ins.mesh.points[tri.C]
		if InCircumcircle(p, a, b, cc) {
			c.badSlots = append(c.badSlots, slot)
			c.bad = append(c.bad, tri)
		}
	}
	if len(c.bad) == 0 {
		fatalf(ErrOutsideTriangulation, "no circumcircle contains %v (bounds %v)", p, ins.mesh.bounds)
	}

	c.index = ins.mesh.AddPoint(p)
	ins.cycle = c
	ins.phase = FindBadTriangles

	if ce := Logger().Check(zap.DebugLevel, "found bad triangles"); ce != nil {
		ce.Write(
			zap.String("cycle", dbg.Name(c)),
			zap.Int("point", c.index),
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Int("bad", len(c.bad)),
		)
	}
}

// FindBadTriangles -> ComputeBoundary
func (ins *Inserter) computeBoundary() {
	c := ins.cycle

	counts := make(map[Edge]int, len(c.bad)*3)
	for _, tri := range c.bad {
		for _, e := range tri.Edges {
			counts[e]++
		}
	}
	// Walk the triangles again rather than the map, so the boundary order is
	// deterministic.
	for _, tri := range c.bad {
		for _, e := range tri.Edges {
			switch counts[e] {
			case 1:
				c.boundary = append(c.boundary, e)
			case 2:
				c.discarded = append(c.discarded, e)
				// Only record the shared edge once
				counts[e] = -1
			}
		}
	}

	descending := make([]int, len(c.badSlots))
	for i, slot := range c.badSlots {
		descending[len(descending)-1-i] = slot
	}
	ins.mesh.RemoveTriangles(descending...)
	ins.phase = ComputeBoundary

	if ce := Logger().Check(zap.DebugLevel, "computed cavity boundary"); ce != nil {
		ce.Write(
			zap.String("cycle", dbg.Name(c)),
			zap.Int("boundary", len(c.boundary)),
			zap.Int("discarded", len(c.discarded)),
			zap.Int("triangles", ins.mesh.NumTriangles()),
		)
	}
}

// ComputeBoundary -> Retriangulate
func (ins *Inserter) retriangulate() {
	c := ins.cycle
	for _, e := range c.boundary {
		ins.mesh.AddTriangle(e.A, e.B, c.index)
	}
	ins.phase = Retriangulate

	if ce := Logger().Check(zap.DebugLevel, "retriangulated cavity"); ce != nil {
		ce.Write(
			zap.String("cycle", dbg.Name(c)),
			zap.Int("added", len(c.boundary)),
			zap.Int("triangles", ins.mesh.NumTriangles()),
		)
	}
}

// Retriangulate -> Idle
func (ins *Inserter) finishCycle() {
	if ce := Logger().Check(zap.DebugLevel, "inserted point"); ce != nil {
		ce.Write(
			zap.String("cycle", dbg.Name(ins.cycle)),
			zap.Int("point", ins.cycle.index),
			zap.Int("growth", len(ins.cycle.boundary)-len(ins.cycle.bad)),
		)
	}
	ins.cycle = nil
	ins.phase = Idle
}
