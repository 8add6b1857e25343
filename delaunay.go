// Incremental 2D Delaunay triangulation for Go.
//
// Points are inserted one at a time with the Bowyer-Watson algorithm into a
// triangulation bootstrapped from a rectangle split into two triangles. Each
// insertion can run atomically, or one phase at a time so that a visualizer
// can draw the intermediate state. See the advanced package for the engine
// itself; this package wraps it so that contract violations come back as
// errors instead of panics.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Rect = advanced.Rect
type Edge = advanced.Edge
type Triangle = advanced.Triangle
type IndexSet = advanced.IndexSet
type Phase = advanced.Phase
type PointSource = advanced.PointSource

const (
	Idle             = advanced.Idle
	FindBadTriangles = advanced.FindBadTriangles
	ComputeBoundary  = advanced.ComputeBoundary
	Retriangulate    = advanced.Retriangulate
)

var (
	ErrOutsideTriangulation = advanced.ErrOutsideTriangulation
	ErrNoPendingPoint       = advanced.ErrNoPendingPoint
	ErrCycleInProgress      = advanced.ErrCycleInProgress
	ErrNotManifold          = advanced.ErrNotManifold
	ErrNotDelaunay          = advanced.ErrNotDelaunay
)

var UnitSquare = advanced.UnitSquare

// A Delaunay triangulation that grows as points are inserted. It is not safe
// for concurrent use.
type Triangulation struct {
	inserter *advanced.Inserter
}

// Create a triangulation over the unit square. Every inserted point must lie
// strictly inside it.
func New() *Triangulation {
	return NewInRect(UnitSquare)
}

// Create a triangulation over the given bounds. The four corners of the bounds
// become points 0 through 3.
func NewInRect(bounds Rect) *Triangulation {
	return &Triangulation{advanced.NewInserter(advanced.NewTriangulationInRect(bounds))}
}

// Bootstrap bounds that strictly contain every given point: their bounding
// box, grown by 10% on every side.
func BoundsFor(points []Point) Rect {
	bounds := advanced.BoundingRect(points)
	if bounds.Width() == 0 || bounds.Height() == 0 {
		// Collinear or single points still need a box with some area
		bounds = Rect{
			Min: Point{X: bounds.Min.X - 1, Y: bounds.Min.Y - 1},
			Max: Point{X: bounds.Max.X + 1, Y: bounds.Max.Y + 1},
		}
	}
	return bounds.Dilate(0.1)
}

// Triangulate a set of points in one go over BoundsFor(points). Points 0
// through 3 of the result are the corners of that box and the given points
// start at index 4.
func Triangulate(points ...Point) (*Triangulation, error) {
	t := NewInRect(BoundsFor(points))
	if err := t.InsertAll(points...); err != nil {
		return nil, err
	}
	return t, nil
}

// Insert a point, returning its index once the triangulation is Delaunay
// again. Returns ErrOutsideTriangulation if the point is not strictly inside
// the bounds, and ErrCycleInProgress if a stepped insertion has not finished.
func (t *Triangulation) Insert(p Point) (index int, err error) {
	defer func() {
		recoveredErr := advanced.HandleDelaunayPanicRecover(recover())
		if recoveredErr != nil {
			index = -1
			err = recoveredErr
		}
	}()
	return t.inserter.Insert(p), nil
}

// Insert points in order, stopping at the first error.
func (t *Triangulation) InsertAll(points ...Point) error {
	for _, p := range points {
		if _, err := t.Insert(p); err != nil {
			return err
		}
	}
	return nil
}

// Queue points for Step.
func (t *Triangulation) Queue(points ...Point) {
	t.inserter.Queue(points...)
}

// Take points from source once the queue runs dry.
func (t *Triangulation) SetSource(source PointSource) {
	t.inserter.SetSource(source)
}

// Advance the insertion of the next pending point by one phase, and return the
// phase entered. Four steps insert one point. If the point is rejected, the
// phase stays Idle and the point is dropped.
func (t *Triangulation) Step() (phase Phase, err error) {
	defer func() {
		recoveredErr := advanced.HandleDelaunayPanicRecover(recover())
		if recoveredErr != nil {
			phase = t.inserter.Phase()
			err = recoveredErr
		}
	}()
	return t.inserter.Step(), nil
}

// Complete the insertion in progress, if any.
func (t *Triangulation) Finish() {
	t.inserter.Finish()
}

func (t *Triangulation) Phase() Phase {
	return t.inserter.Phase()
}

// Throw everything away and start again from the bootstrap bounds. Queued
// points and the source are dropped too.
func (t *Triangulation) Reset() {
	mesh := t.inserter.Mesh()
	mesh.Bootstrap()
	t.inserter = advanced.NewInserter(mesh)
}

func (t *Triangulation) Points() []Point {
	return t.inserter.Mesh().Points()
}

func (t *Triangulation) Triangles() []Triangle {
	return t.inserter.Mesh().Triangles()
}

func (t *Triangulation) Edges() []Edge {
	return t.inserter.Mesh().Edges()
}

func (t *Triangulation) Adjacency() map[int]IndexSet {
	return t.inserter.Mesh().Adjacency()
}

func (t *Triangulation) Validate() error {
	return t.inserter.Mesh().Validate()
}

// The engine underneath, for renderers that need the state of a cycle in
// progress. Its methods panic instead of returning errors.
func (t *Triangulation) Advanced() *advanced.Inserter {
	return t.inserter
}
