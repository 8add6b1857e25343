package delaunay

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in the advanced package.

func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 0.9, Y: 1.1},
		{X: -1.2, Y: 0.8},
		{X: -0.7, Y: -1.3},
		{X: 0.2, Y: 0.1},
	}

	tri, err := Triangulate(points...)
	require.NoError(t, err)
	assert.Len(t, tri.Points(), 4+len(points))
	assert.Len(t, tri.Triangles(), 2+2*len(points))
	assert.NoError(t, tri.Validate())
}

func TestTriangulate_Collinear(t *testing.T) {
	tri, err := Triangulate(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0})
	require.NoError(t, err)
	assert.Len(t, tri.Triangles(), 8)
	assert.NoError(t, tri.Validate())
}

func TestBoundsFor(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 4, Y: -5}}
	bounds := BoundsFor(points)
	for _, p := range points {
		assert.True(t, bounds.ContainsStrict(p), "%v", p)
	}

	single := BoundsFor([]Point{{X: 3, Y: 3}})
	assert.True(t, single.ContainsStrict(Point{X: 3, Y: 3}))
	assert.Greater(t, single.Width(), 2.0)
}

func TestInsert_Outside(t *testing.T) {
	tri := New()
	index, err := tri.Insert(Point{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 4, index)

	index, err = tri.Insert(Point{X: 3, Y: 3})
	assert.True(t, errors.Is(err, ErrOutsideTriangulation), "got %v", err)
	assert.Equal(t, -1, index)
	assert.Len(t, tri.Points(), 5)

	err = tri.InsertAll(Point{X: 0.1, Y: 0.1}, Point{X: -1, Y: 0.5}, Point{X: 0.9, Y: 0.9})
	assert.True(t, errors.Is(err, ErrOutsideTriangulation), "got %v", err)
	assert.Len(t, tri.Points(), 6, "stops at the first bad point")
	assert.NoError(t, tri.Validate())
}

func TestInsert_JustOutside(t *testing.T) {
	for _, p := range []Point{{X: 0.5, Y: -0.1}, {X: 1.1, Y: 0.5}, {X: 0.5, Y: 0}} {
		tri := New()
		index, err := tri.Insert(p)
		assert.True(t, errors.Is(err, ErrOutsideTriangulation), "%v: got %v", p, err)
		assert.Equal(t, -1, index)
		assert.Len(t, tri.Points(), 4)
		assert.Len(t, tri.Triangles(), 2)
		assert.NoError(t, tri.Validate())
	}
}

func TestStep(t *testing.T) {
	tri := New()
	phase, err := tri.Step()
	assert.True(t, errors.Is(err, ErrNoPendingPoint), "got %v", err)
	assert.Equal(t, Idle, phase)

	tri.Queue(Point{X: 0.5, Y: 0.5})
	for _, expected := range []Phase{FindBadTriangles, ComputeBoundary, Retriangulate, Idle} {
		phase, err := tri.Step()
		require.NoError(t, err)
		assert.Equal(t, expected, phase)
		assert.Equal(t, expected, tri.Phase())
	}
	assert.Len(t, tri.Triangles(), 4)
	assert.NoError(t, tri.Validate())
}

func TestStep_InsertDuringCycle(t *testing.T) {
	tri := New()
	tri.Queue(Point{X: 0.5, Y: 0.5})
	_, err := tri.Step()
	require.NoError(t, err)

	_, err = tri.Insert(Point{X: 0.3, Y: 0.3})
	assert.True(t, errors.Is(err, ErrCycleInProgress), "got %v", err)

	tri.Finish()
	_, err = tri.Insert(Point{X: 0.3, Y: 0.3})
	assert.NoError(t, err)
	assert.NoError(t, tri.Validate())
}

func TestReset(t *testing.T) {
	tri := New()
	require.NoError(t, tri.InsertAll(Point{X: 0.3, Y: 0.3}, Point{X: 0.6, Y: 0.2}))
	tri.Queue(Point{X: 0.5, Y: 0.5})
	tri.Reset()
	assert.Len(t, tri.Points(), 4)
	assert.Len(t, tri.Triangles(), 2)
	assert.Len(t, tri.Edges(), 5)
	_, err := tri.Step()
	assert.True(t, errors.Is(err, ErrNoPendingPoint), "queue is cleared")
}

func TestAdjacency(t *testing.T) {
	tri := New()
	_, err := tri.Insert(Point{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	assert.Len(t, tri.Adjacency()[4], 4)
}
