package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"

	"github.com/osuushi/delaunay/advanced"
)

// An interactive page: points as a scatter series, with each edge overlapped
// as its own two point line series. Series names group the edges in the
// legend so each kind can be toggled.
func HTML(w io.Writer, f Frame, o Options) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Delaunay triangulation",
			Width:           fmt.Sprintf("%dpx", o.Width),
			Height:          fmt.Sprintf("%dpx", o.Height),
			BackgroundColor: cssColor(DefaultPalette.Background),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    f.Phase.String(),
			Subtitle: subtitle(f, o),
			TitleStyle: &opts.TextStyle{
				Color: cssColor(DefaultPalette.Label),
			},
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: cssColor(DefaultPalette.Label),
			},
			Right: "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Min:  f.Bounds.Min.X,
			Max:  f.Bounds.Max.X,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Min:  f.Bounds.Min.Y,
			Max:  f.Bounds.Max.Y,
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
		}),
	)

	points := make([]opts.ScatterData, 0, len(f.Points))
	for _, p := range f.Points {
		points = append(points, opts.ScatterData{Value: []float64{p.X, p.Y}})
	}
	scatter.AddSeries("points", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: cssColor(DefaultPalette.Point),
			}),
		)
	if f.HasCurrent {
		scatter.AddSeries("current", []opts.ScatterData{
			{Value: []float64{f.Current.X, f.Current.Y}},
		}).SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: cssColor(DefaultPalette.Current),
			}),
		)
	}

	overlapEdges := func(name string, edges []advanced.Edge, style opts.LineStyle) {
		for _, e := range edges {
			scatter.Overlap(segment(name, f.Points[e.A], f.Points[e.B], style))
		}
	}
	for _, tri := range f.Bad {
		overlapEdges("bad", tri.Edges[:], opts.LineStyle{Width: 3, Color: cssColor(DefaultPalette.Bad)})
	}
	overlapEdges("edges", f.Edges, opts.LineStyle{Width: 1, Color: cssColor(DefaultPalette.Edge)})
	overlapEdges("discarded", f.Discarded, opts.LineStyle{Width: 1, Color: cssColor(DefaultPalette.Discarded)})
	overlapEdges("boundary", f.Boundary, opts.LineStyle{Width: 2, Color: cssColor(DefaultPalette.Boundary)})

	return errors.Wrap(scatter.Render(w), "rendering html")
}

func segment(name string, a, b advanced.Point, style opts.LineStyle) *charts.Line {
	line := charts.NewLine()
	line.AddSeries(name, []opts.LineData{
		{Value: []float64{a.X, a.Y}},
		{Value: []float64{b.X, b.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: style.Color,
		}),
	)
	return line
}

func subtitle(f Frame, o Options) string {
	if !o.Labels {
		return ""
	}
	return f.Label()
}
