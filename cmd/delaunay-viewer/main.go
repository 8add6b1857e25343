// Command delaunay-viewer steps through a triangulation interactively.
//
//	Space  advance one phase
//	P      play or pause
//	Enter  finish the point in progress
//	R      restart with the next seed
//	Esc    quit
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/logging"
	"github.com/osuushi/delaunay/render"
)

var overrides config.Overrides

var (
	app        = kingpin.New("delaunay-viewer", "Step through an incremental Delaunay triangulation.")
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	seed       = app.Flag("seed", "Seed for generated points.").IsSetByUser(&overrides.SeedSet).Uint32()
	count      = app.Flag("count", "Number of generated points.").Short('n').IsSetByUser(&overrides.CountSet).Int()
	interval   = app.Flag("interval", "Ticks between steps while playing.").Default("10").Int()
)

const help = "space: step  p: play/pause  enter: finish point  r: restart"

// The viewer owns the only clock. The triangulation just gets a Step call
// every interval ticks while playing.
type viewer struct {
	cfg      config.Config
	options  render.Options
	logger   *zap.Logger
	interval int

	tri     *delaunay.Triangulation
	playing bool
	ticks   int
	done    bool
}

func newViewer(cfg config.Config, logger *zap.Logger, interval int) *viewer {
	v := &viewer{
		cfg: cfg,
		options: render.Options{
			Width:   cfg.Render.Width,
			Height:  cfg.Render.Height,
			Padding: cfg.Render.Padding,
			Labels:  cfg.Render.Labels,
		},
		logger:   logger,
		interval: interval,
	}
	v.restart()
	return v
}

func (v *viewer) restart() {
	v.tri = delaunay.NewInRect(v.cfg.Bounds.Rect())
	v.tri.Queue(v.cfg.Source().Take(v.cfg.Count)...)
	v.ticks = 0
	v.done = false
	v.logger.Info("restarted", zap.Uint32("seed", v.cfg.Seed), zap.Int("count", v.cfg.Count))
}

func (v *viewer) step() {
	if v.done {
		return
	}
	phase, err := v.tri.Step()
	switch {
	case errors.Is(err, delaunay.ErrNoPendingPoint):
		v.done = true
		v.playing = false
		v.logger.Info("all points inserted", zap.Int("triangles", len(v.tri.Triangles())))
	case err != nil:
		v.logger.Warn("point rejected", zap.Error(err))
	default:
		v.logger.Debug("stepped", zap.Stringer("phase", phase))
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.playing = !v.playing
		v.ticks = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		v.tri.Finish()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.cfg.Seed++
		v.restart()
	}

	if v.playing {
		v.ticks++
		if v.ticks >= v.interval {
			v.ticks = 0
			v.step()
		}
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	palette := render.DefaultPalette
	screen.Fill(palette.Background)
	frame := render.Capture(v.tri.Advanced())
	view := render.NewViewport(frame.Bounds, v.options)

	line := func(a, b advanced.Point, width float32, clr color.Color) {
		x1, y1 := view.Project(a)
		x2, y2 := view.Project(b)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), width, clr, true)
	}
	dot := func(p advanced.Point, r float32, clr color.Color) {
		x, y := view.Project(p)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, clr, true)
	}

	for _, e := range frame.Edges {
		line(frame.Points[e.A], frame.Points[e.B], 1, palette.Edge)
	}
	for _, tri := range frame.Bad {
		for _, e := range tri.Edges {
			line(frame.Points[e.A], frame.Points[e.B], 3, palette.Bad)
		}
	}
	for _, e := range frame.Discarded {
		line(frame.Points[e.A], frame.Points[e.B], 1, palette.Discarded)
	}
	for _, e := range frame.Boundary {
		line(frame.Points[e.A], frame.Points[e.B], 2, palette.Boundary)
	}
	for _, p := range frame.Points {
		dot(p, render.PointRadius, palette.Point)
	}
	if frame.HasCurrent {
		dot(frame.Current, render.CurrentRadius, palette.Current)
	}

	if v.options.Labels {
		status := "paused"
		if v.playing {
			status = "playing"
		}
		if v.done {
			status = "done"
		}
		text.Draw(screen, frame.Label(), basicfont.Face7x13, 6, 16, palette.Label)
		text.Draw(screen, fmt.Sprintf("seed %d  %s", v.cfg.Seed, status), basicfont.Face7x13, 6, 32, palette.Label)
		text.Draw(screen, help, basicfont.Face7x13, 6, v.options.Height-8, palette.Label)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.options.Width, v.options.Height
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}
	overrides.Seed, overrides.Count = *seed, *count
	cfg = overrides.Apply(cfg)
	app.FatalIfError(cfg.Validate(), "")
	if *interval < 1 {
		app.Fatalf("--interval must be at least 1")
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr, true)
	app.FatalIfError(err, "")
	defer logger.Sync()
	advanced.SetLogger(logger.Named("engine"))

	ebiten.SetWindowSize(cfg.Render.Width, cfg.Render.Height)
	ebiten.SetWindowTitle("Delaunay")
	if err := ebiten.RunGame(newViewer(cfg, logger, *interval)); err != nil {
		logger.Fatal("viewer failed", zap.Error(err))
	}
}
