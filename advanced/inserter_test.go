package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInsert_Center(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	index := ins.Insert(Point{0.5, 0.5})
	assert.Equal(t, 4, index)

	require.Equal(t, 4, mesh.NumTriangles())
	keys := triangleKeys(mesh)
	assert.NotContains(t, keys, [3]int{0, 1, 3})
	assert.NotContains(t, keys, [3]int{1, 2, 3})
	for _, tri := range mesh.Triangles() {
		assert.True(t, tri.Has(4), "triangle %v must touch the center", tri.Vertices())
	}
	assert.Equal(t, map[[3]int]struct{}{
		{0, 1, 4}: {},
		{1, 2, 4}: {},
		{2, 3, 4}: {},
		{0, 3, 4}: {},
	}, keys)
	AssertValidTriangulation(t, mesh)
}

func TestInsert_TwoPoints(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Insert(Point{0.25, 0.25})
	ins.Insert(Point{0.6, 0.75})

	assert.Equal(t, 6, mesh.NumPoints())
	// Euler: 2n - 2 - h triangles for n points with h on the hull
	assert.Equal(t, 6, mesh.NumTriangles())
	for e, count := range mesh.EdgeCounts() {
		assert.True(t, count == 1 || count == 2, "edge %s belongs to %d triangles", e, count)
	}
	AssertValidTriangulation(t, mesh)
}

func TestInsert_Fixtures(t *testing.T) {
	for _, name := range []string{"scatter", "sunflower", "clusters"} {
		name := name
		t.Run(name, func(t *testing.T) {
			points := LoadFixture(name)
			mesh := NewTriangulation()
			ins := NewInserter(mesh)
			for i, p := range points {
				before := mesh.NumTriangles()
				ins.Insert(p)
				assert.Equal(t, before+2, mesh.NumTriangles(), "insertion %d", i)
				if err := mesh.Validate(); err != nil {
					maybeDbgDraw(ins)
					require.NoError(t, err, "after insertion %d", i)
				}
			}
			assert.Equal(t, 4+len(points), mesh.NumPoints())
			AssertValidTriangulation(t, mesh)
		})
	}
}

func TestInsert_HashSource(t *testing.T) {
	for _, seed := range []uint32{1, 42, 7} {
		mesh := NewTriangulation()
		ins := NewInserter(mesh)
		source := NewHashSource(seed, mesh.Bounds())
		const n = 300
		for i := 0; i < n; i++ {
			p, _ := source.Next()
			before := mesh.NumTriangles()
			ins.Insert(p)
			require.Equal(t, before+2, mesh.NumTriangles())
		}
		assert.Equal(t, 4+n, mesh.NumPoints())
		assert.Equal(t, 2+2*n, mesh.NumTriangles())
		AssertValidTriangulation(t, mesh)
	}
}

func TestInsert_Rect(t *testing.T) {
	bounds := Rect{Min: Point{-10, 5}, Max: Point{30, 25}}
	mesh := NewTriangulationInRect(bounds)
	ins := NewInserter(mesh)
	ins.InsertAll(NewHashSource(3, bounds).Take(100)...)
	assert.Equal(t, 104, mesh.NumPoints())
	AssertValidTriangulation(t, mesh)
}

func TestInsert_Outside(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Insert(Point{0.5, 0.5})

	for _, p := range []Point{{2, 2}, {-0.6, 0.5}, {0.5, 1.6}} {
		assertFatal(t, ErrOutsideTriangulation, func() {
			ins.Insert(p)
		})
	}
	// Nothing was touched
	assert.Equal(t, Idle, ins.Phase())
	assert.Equal(t, 5, mesh.NumPoints())
	assert.Equal(t, 4, mesh.NumTriangles())
	AssertValidTriangulation(t, mesh)

	// And the inserter still works
	ins.Insert(Point{0.2, 0.7})
	AssertValidTriangulation(t, mesh)
}

func TestInsert_JustOutside(t *testing.T) {
	// Inside the bootstrap circumcircle but not the bounds, or on a side
	for _, p := range []Point{{0.5, -0.1}, {1.1, 0.5}, {0.5, 0}, {1, 0.5}, {0, 0}} {
		mesh := NewTriangulation()
		ins := NewInserter(mesh)
		assertFatal(t, ErrOutsideTriangulation, func() {
			ins.Insert(p)
		})
		assert.Equal(t, Idle, ins.Phase(), "%v", p)
		assert.Equal(t, 4, mesh.NumPoints(), "%v", p)
		assert.Equal(t, 2, mesh.NumTriangles(), "%v", p)
		AssertValidTriangulation(t, mesh)
	}
}

func TestStep_JustOutsideIsDropped(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Queue(Point{0.5, -0.1}, Point{0.3, 0.3})
	assertFatal(t, ErrOutsideTriangulation, func() {
		ins.Step()
	})
	assert.Equal(t, Idle, ins.Phase())
	assert.Equal(t, 4, mesh.NumPoints())
	ins.Step()
	ins.Finish()
	assert.Equal(t, []Point{{0.3, 0.3}}, mesh.Points()[4:])
	AssertValidTriangulation(t, mesh)
}

func TestStep_Phases(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Queue(Point{0.5, 0.5})
	assert.Equal(t, 1, ins.Pending())
	assert.Equal(t, Idle, ins.Phase())
	_, _, ok := ins.Current()
	assert.False(t, ok)

	// Idle -> FindBadTriangles: the point is appended, nothing is removed yet
	require.Equal(t, FindBadTriangles, ins.Step())
	assert.Equal(t, 0, ins.Pending())
	p, index, ok := ins.Current()
	assert.True(t, ok)
	assert.Equal(t, Point{0.5, 0.5}, p)
	assert.Equal(t, 4, index)
	assert.Equal(t, 5, mesh.NumPoints())
	assert.Equal(t, 2, mesh.NumTriangles())
	assert.Len(t, ins.BadTriangles(), 2)
	assert.Empty(t, ins.Boundary())
	assert.Empty(t, ins.Discarded())

	// FindBadTriangles -> ComputeBoundary: the cavity is open
	require.Equal(t, ComputeBoundary, ins.Step())
	assert.Equal(t, []Edge{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, ins.Boundary())
	assert.Equal(t, []Edge{{1, 3}}, ins.Discarded())
	assert.Equal(t, 0, mesh.NumTriangles())
	assert.Len(t, ins.BadTriangles(), 2, "bad triangles outlive their removal")

	// ComputeBoundary -> Retriangulate: the fan is in place
	require.Equal(t, Retriangulate, ins.Step())
	assert.Equal(t, 4, mesh.NumTriangles())
	assert.NoError(t, mesh.Validate())

	// Retriangulate -> Idle
	require.Equal(t, Idle, ins.Step())
	_, _, ok = ins.Current()
	assert.False(t, ok)
	assert.Nil(t, ins.BadTriangles())
	assert.Nil(t, ins.Boundary())
	assert.Nil(t, ins.Discarded())
	AssertValidTriangulation(t, mesh)
}

func TestStep_ModeEquivalence(t *testing.T) {
	points := append(LoadFixture("clusters"), NewHashSource(9, UnitSquare).Take(80)...)

	atomic := NewTriangulation()
	NewInserter(atomic).InsertAll(points...)

	stepped := NewTriangulation()
	ins := NewInserter(stepped)
	ins.Queue(points...)
	for range points {
		for i := 0; i < 4; i++ {
			ins.Step()
		}
		require.Equal(t, Idle, ins.Phase())
	}

	assert.Equal(t, triangleKeys(atomic), triangleKeys(stepped))
	assert.Equal(t, atomic.Edges(), stepped.Edges())
	assert.Equal(t, atomic.Points(), stepped.Points())
	// Same code path, so even the triangle order matches
	assert.Equal(t, atomic.Triangles(), stepped.Triangles())
}

func TestStep_Source(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.SetSource(&SliceSource{Points: []Point{{0.3, 0.6}, {0.8, 0.1}}})
	ins.Queue(Point{0.5, 0.5})

	for i := 0; i < 3*4; i++ {
		ins.Step()
	}
	assert.Equal(t, []Point{{0.5, 0.5}, {0.3, 0.6}, {0.8, 0.1}}, mesh.Points()[4:], "queue first, then the source")

	assertFatal(t, ErrNoPendingPoint, func() {
		ins.Step()
	})
	assert.Equal(t, Idle, ins.Phase())
	AssertValidTriangulation(t, mesh)
}

func TestStep_NothingPending(t *testing.T) {
	ins := NewInserter(NewTriangulation())
	assertFatal(t, ErrNoPendingPoint, func() {
		ins.Step()
	})
}

func TestStep_OutsideIsDropped(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Queue(Point{5, 5}, Point{0.4, 0.4})

	assertFatal(t, ErrOutsideTriangulation, func() {
		ins.Step()
	})
	assert.Equal(t, Idle, ins.Phase())
	assert.Equal(t, 1, ins.Pending())
	assert.Equal(t, 4, mesh.NumPoints())

	assert.Equal(t, FindBadTriangles, ins.Step())
	ins.Finish()
	assert.Equal(t, []Point{{0.4, 0.4}}, mesh.Points()[4:])
}

func TestInsert_DuringCycle(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Queue(Point{0.5, 0.5})
	ins.Step()
	ins.Step()
	require.Equal(t, ComputeBoundary, ins.Phase())

	assertFatal(t, ErrCycleInProgress, func() {
		ins.Insert(Point{0.2, 0.2})
	})
	assert.Equal(t, ComputeBoundary, ins.Phase(), "the cycle is untouched")

	ins.Finish()
	assert.Equal(t, Idle, ins.Phase())
	ins.Insert(Point{0.2, 0.2})
	assert.Equal(t, 6, mesh.NumPoints())
	AssertValidTriangulation(t, mesh)
}

func TestFinish_Idle(t *testing.T) {
	mesh := NewTriangulation()
	ins := NewInserter(mesh)
	ins.Finish()
	assert.Equal(t, Idle, ins.Phase())
	assert.Equal(t, 2, mesh.NumTriangles())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "FindBadTriangles", FindBadTriangles.String())
	assert.Equal(t, "ComputeBoundary", ComputeBoundary.String())
	assert.Equal(t, "Retriangulate", Retriangulate.String())
	assert.Equal(t, "Phase(?)", Phase(9).String())
}

func TestInserter_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	ins := NewInserter(NewTriangulation())
	ins.Insert(Point{0.5, 0.5})

	require.Equal(t, 4, logs.Len())
	messages := []string{}
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{
		"found bad triangles",
		"computed cavity boundary",
		"retriangulated cavity",
		"inserted point",
	}, messages)

	inserted := logs.FilterMessage("inserted point").All()[0]
	assert.Equal(t, int64(2), inserted.ContextMap()["growth"])
	assert.NotEmpty(t, inserted.ContextMap()["cycle"])
}
