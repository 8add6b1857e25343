package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only. The render package has the real
// renderers; this exists so tests and the engine itself can dump a picture
// without an import cycle.

// Padding around the bounds so hull edges are visible
const dbgDrawPadding = 20

// Helper to draw a triangulation and print it in the terminal (iTerm only).
// Bad triangles of the current cycle are filled red, and the current point is
// marked.
func (ins *Inserter) dbgDraw(scale float64) {
	mesh := ins.mesh
	bounds := BoundingRect(mesh.points)

	width := int(scale*bounds.Width()) + dbgDrawPadding*2
	height := int(scale*bounds.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	for _, tri := range ins.BadTriangles() {
		a, b, cc := mesh.points[tri.A], mesh.points[tri.B], mesh.points[tri.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
	}
	c.SetRGBA(1, 0, 0, 0.5)
	c.Fill()

	for _, e := range mesh.Edges() {
		a, b := mesh.points[e.A], mesh.points[e.B]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	}
	c.SetLineWidth(1)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if p, _, ok := ins.Current(); ok {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.SetRGB(1, 1, 0)
		c.Fill()
	}

	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}
