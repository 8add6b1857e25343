package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every edge belongs to one or two triangles.
// 2. The edges belonging to one triangle are exactly the four sides of the
// bounds.
// 3. Every triangle is counterclockwise.
// 4. No point lies inside the circumcircle of a triangle it is not part of.
// 5. The sum of the areas of all triangles is equal to the area of the bounds.
func AssertValidTriangulation(t *testing.T, mesh *Triangulation) {
	t.Helper()
	for e, count := range mesh.EdgeCounts() {
		require.True(t, count == 1 || count == 2, "edge %s belongs to %d triangles", e, count)
	}

	assert.ElementsMatch(t, []Edge{{0, 1}, {1, 2}, {2, 3}, {0, 3}}, mesh.HullEdges(), "hull must be the bootstrap bounds")

	var area float64
	points := mesh.Points()
	for _, tri := range mesh.Triangles() {
		a, b, c := points[tri.A], points[tri.B], points[tri.C]
		require.True(t, IsCCW(a, b, c), "clockwise triangle: %v", tri.Vertices())
		area += Orientation(a, b, c) / 2
		for i, p := range points {
			if tri.Has(i) {
				continue
			}
			require.False(t, InCircumcircle(p, a, b, c), "point %d inside circumcircle of %v", i, tri.Vertices())
		}
	}

	bounds := mesh.Bounds()
	require.InDelta(t, bounds.Width()*bounds.Height(), area, 1e-9, "triangles must tile the bounds")
}

// Triangle keys as a set, for comparing triangulations regardless of triangle
// order or winding.
func triangleKeys(mesh *Triangulation) map[[3]int]struct{} {
	keys := make(map[[3]int]struct{})
	for _, tri := range mesh.Triangles() {
		keys[tri.Key()] = struct{}{}
	}
	return keys
}

// Draw the inserter in the terminal when DELAUNAY_DBG_DRAW is set. Handy when
// a validity assertion fails and you want to see why.
func maybeDbgDraw(ins *Inserter) {
	if os.Getenv("DELAUNAY_DBG_DRAW") == "" {
		return
	}
	bounds := BoundingRect(ins.mesh.points)
	ins.dbgDraw(400 / math.Max(bounds.Width(), bounds.Height()))
}
