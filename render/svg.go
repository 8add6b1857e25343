package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/advanced"
)

func SVG(w io.Writer, f Frame, o Options) error {
	ew := &errWriter{w: w}
	v := NewViewport(f.Bounds, o)
	project := func(p advanced.Point) (int, int) {
		x, y := v.Project(p)
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(ew)
	canvas.Start(o.Width, o.Height)
	canvas.Rect(0, 0, o.Width, o.Height, "fill:"+cssColor(DefaultPalette.Background))

	canvas.Gstyle("stroke:none;fill:" + cssColor(DefaultPalette.Bad))
	for _, tri := range f.Bad {
		xs, ys := make([]int, 3), make([]int, 3)
		for i, p := range f.corners(tri) {
			xs[i], ys[i] = project(p)
		}
		canvas.Polygon(xs, ys)
	}
	canvas.Gend()

	lines := func(edges []advanced.Edge, width int, clr color.NRGBA) {
		canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%d", cssColor(clr), width))
		for _, e := range edges {
			x1, y1 := project(f.Points[e.A])
			x2, y2 := project(f.Points[e.B])
			canvas.Line(x1, y1, x2, y2)
		}
		canvas.Gend()
	}
	lines(f.Edges, 1, DefaultPalette.Edge)
	lines(f.Discarded, 1, DefaultPalette.Discarded)
	lines(f.Boundary, 2, DefaultPalette.Boundary)

	canvas.Gstyle("fill:" + cssColor(DefaultPalette.Point))
	for _, p := range f.Points {
		x, y := project(p)
		canvas.Circle(x, y, PointRadius)
	}
	canvas.Gend()

	if f.HasCurrent {
		x, y := project(f.Current)
		canvas.Circle(x, y, CurrentRadius, "fill:"+cssColor(DefaultPalette.Current))
	}
	if o.Labels {
		canvas.Text(6, 16, f.Label(), "font-family:monospace;font-size:12px;fill:"+cssColor(DefaultPalette.Label))
	}
	canvas.End()
	return errors.Wrap(ew.err, "writing svg")
}

// svgo ignores write errors, so keep the first one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
