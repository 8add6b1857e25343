// Package render draws snapshots of an insertion in progress.
//
// A Frame is captured from an Inserter between steps, and can then be written
// as PNG, SVG, HTML, PDF, or straight to an iTerm compatible terminal. All
// renderers use the same palette and the same layout: the triangulation
// bounds fill the image minus the padding, with y pointing up.
package render

import (
	"fmt"
	"image/color"

	"github.com/osuushi/delaunay/advanced"
)

type Frame struct {
	Bounds    advanced.Rect
	Points    []advanced.Point
	Triangles []advanced.Triangle
	Edges     []advanced.Edge
	Phase     advanced.Phase

	// The point being inserted. Only meaningful when HasCurrent is set.
	Current      advanced.Point
	CurrentIndex int
	HasCurrent   bool

	Bad       []advanced.Triangle
	Boundary  []advanced.Edge
	Discarded []advanced.Edge
}

// Snapshot the inserter's triangulation and cycle state. The frame shares
// nothing with the inserter, so it stays valid after further steps.
func Capture(ins *advanced.Inserter) Frame {
	mesh := ins.Mesh()
	frame := Frame{
		Bounds:    mesh.Bounds(),
		Points:    mesh.Points(),
		Triangles: mesh.Triangles(),
		Edges:     mesh.Edges(),
		Phase:     ins.Phase(),
		Bad:       ins.BadTriangles(),
		Boundary:  ins.Boundary(),
		Discarded: ins.Discarded(),
	}
	frame.Current, frame.CurrentIndex, frame.HasCurrent = ins.Current()
	return frame
}

// One line summary drawn in the corner of a frame.
func (f Frame) Label() string {
	label := fmt.Sprintf("%s  points %d  triangles %d", f.Phase, len(f.Points), len(f.Triangles))
	if f.HasCurrent {
		label += fmt.Sprintf("  inserting #%d (%.4g, %.4g)", f.CurrentIndex, f.Current.X, f.Current.Y)
	}
	return label
}

// The corners of a triangle, in winding order.
func (f Frame) corners(tri advanced.Triangle) [3]advanced.Point {
	return [3]advanced.Point{f.Points[tri.A], f.Points[tri.B], f.Points[tri.C]}
}

type Options struct {
	Width   int
	Height  int
	Padding float64
	Labels  bool
}

func DefaultOptions() Options {
	return Options{Width: 800, Height: 800, Padding: 20, Labels: true}
}

// Maps triangulation coordinates to image coordinates, preserving the aspect
// ratio and flipping y.
type Viewport struct {
	scale   float64
	offsetX float64
	offsetY float64
	height  float64
	min     advanced.Point
}

func NewViewport(bounds advanced.Rect, o Options) Viewport {
	innerWidth := float64(o.Width) - 2*o.Padding
	innerHeight := float64(o.Height) - 2*o.Padding
	scale := innerWidth / bounds.Width()
	if s := innerHeight / bounds.Height(); s < scale {
		scale = s
	}
	// Center the slack along the axis that doesn't fill
	return Viewport{
		scale:   scale,
		offsetX: o.Padding + (innerWidth-scale*bounds.Width())/2,
		offsetY: o.Padding + (innerHeight-scale*bounds.Height())/2,
		height:  float64(o.Height),
		min:     bounds.Min,
	}
}

func (v Viewport) Project(p advanced.Point) (x, y float64) {
	x = v.offsetX + (p.X-v.min.X)*v.scale
	y = v.height - (v.offsetY + (p.Y-v.min.Y)*v.scale)
	return
}

// Colors shared by every renderer and the viewer.
type Palette struct {
	Background color.NRGBA
	Edge       color.NRGBA
	Bad        color.NRGBA
	Boundary   color.NRGBA
	Discarded  color.NRGBA
	Point      color.NRGBA
	Current    color.NRGBA
	Label      color.NRGBA
}

var DefaultPalette = Palette{
	Background: color.NRGBA{0x10, 0x10, 0x18, 0xff},
	Edge:       color.NRGBA{0x00, 0xc8, 0xc8, 0xff},
	Bad:        color.NRGBA{0xe0, 0x30, 0x30, 0x80},
	Boundary:   color.NRGBA{0xff, 0xa0, 0x00, 0xff},
	Discarded:  color.NRGBA{0x80, 0x80, 0x80, 0xff},
	Point:      color.NRGBA{0xf0, 0xf0, 0xf0, 0xff},
	Current:    color.NRGBA{0xff, 0xff, 0x00, 0xff},
	Label:      color.NRGBA{0xff, 0xff, 0xff, 0xff},
}

const (
	PointRadius   = 2
	CurrentRadius = 5
)

// CSS form of a color, for the SVG and HTML renderers.
func cssColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/0xff)
}
