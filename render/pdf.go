package render

import (
	"image/color"
	"io"

	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/advanced"
)

// A single A4 page in points, oriented to fit the bounds. The width and height
// options are ignored, since the page decides the size.
func PDF(w io.Writer, f Frame, o Options) error {
	orientation := "P"
	if f.Bounds.Width() > f.Bounds.Height() {
		orientation = "L"
	}
	dest := draw2dpdf.NewPdf(orientation, "pt", "A4")
	pageWidth, pageHeight := dest.GetPageSize()
	page := o
	page.Width, page.Height = int(pageWidth), int(pageHeight)
	v := NewViewport(f.Bounds, page)

	gc := draw2dpdf.NewGraphicContext(dest)
	gc.SetFillColor(DefaultPalette.Background)
	draw2dkit.Rectangle(gc, 0, 0, pageWidth, pageHeight)
	gc.Fill()

	for _, tri := range f.Bad {
		for i, p := range f.corners(tri) {
			x, y := v.Project(p)
			if i == 0 {
				gc.MoveTo(x, y)
			} else {
				gc.LineTo(x, y)
			}
		}
		gc.Close()
	}
	gc.SetFillColor(DefaultPalette.Bad)
	gc.Fill()

	strokeEdges := func(edges []advanced.Edge, width float64, clr color.NRGBA) {
		if len(edges) == 0 {
			return
		}
		for _, e := range edges {
			x1, y1 := v.Project(f.Points[e.A])
			x2, y2 := v.Project(f.Points[e.B])
			gc.MoveTo(x1, y1)
			gc.LineTo(x2, y2)
		}
		gc.SetLineWidth(width)
		gc.SetStrokeColor(clr)
		gc.Stroke()
	}
	strokeEdges(f.Edges, 0.5, DefaultPalette.Edge)
	strokeEdges(f.Discarded, 0.5, DefaultPalette.Discarded)
	strokeEdges(f.Boundary, 1.5, DefaultPalette.Boundary)

	for _, p := range f.Points {
		x, y := v.Project(p)
		draw2dkit.Circle(gc, x, y, PointRadius)
	}
	gc.SetFillColor(DefaultPalette.Point)
	gc.Fill()

	if f.HasCurrent {
		x, y := v.Project(f.Current)
		draw2dkit.Circle(gc, x, y, CurrentRadius)
		gc.SetFillColor(DefaultPalette.Current)
		gc.Fill()
	}

	if o.Labels {
		// Core fonts need no font files, unlike draw2d's own text support
		dest.SetFont("Courier", "", 9)
		dest.SetTextColor(int(DefaultPalette.Label.R), int(DefaultPalette.Label.G), int(DefaultPalette.Label.B))
		dest.Text(6, 14, f.Label())
	}
	return errors.Wrap(dest.Output(w), "writing pdf")
}
