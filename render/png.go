package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/delaunay/advanced"
)

func PNG(w io.Writer, f Frame, o Options) error {
	return errors.Wrap(rasterize(f, o).EncodePNG(w), "encoding png")
}

func Image(f Frame, o Options) image.Image {
	return rasterize(f, o).Image()
}

func rasterize(f Frame, o Options) *gg.Context {
	v := NewViewport(f.Bounds, o)
	c := gg.NewContext(o.Width, o.Height)
	c.SetColor(DefaultPalette.Background)
	c.Clear()

	for _, tri := range f.Bad {
		for i, p := range f.corners(tri) {
			x, y := v.Project(p)
			if i == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
	}
	c.SetColor(DefaultPalette.Bad)
	c.Fill()

	strokeEdges := func(edges []advanced.Edge, width float64, clr color.NRGBA) {
		for _, e := range edges {
			x1, y1 := v.Project(f.Points[e.A])
			x2, y2 := v.Project(f.Points[e.B])
			c.DrawLine(x1, y1, x2, y2)
		}
		c.SetLineWidth(width)
		c.SetColor(clr)
		c.Stroke()
	}
	strokeEdges(f.Edges, 1, DefaultPalette.Edge)
	strokeEdges(f.Discarded, 1, DefaultPalette.Discarded)
	strokeEdges(f.Boundary, 2, DefaultPalette.Boundary)

	for _, p := range f.Points {
		x, y := v.Project(p)
		c.DrawCircle(x, y, PointRadius)
	}
	c.SetColor(DefaultPalette.Point)
	c.Fill()

	if f.HasCurrent {
		x, y := v.Project(f.Current)
		c.DrawCircle(x, y, CurrentRadius)
		c.SetColor(DefaultPalette.Current)
		c.Fill()
	}

	if o.Labels {
		c.SetFontFace(basicfont.Face7x13)
		c.SetColor(DefaultPalette.Label)
		c.DrawString(f.Label(), 6, 16)
	}
	return c
}
