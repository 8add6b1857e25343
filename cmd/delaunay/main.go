// Command delaunay generates point sets and renders their Delaunay
// triangulations.
//
// Points come from a file (text "x y" lines, or circle centers of an SVG) or
// from the seeded hash source described by the config. With --frames, every
// phase of every insertion is written out as its own image, which is handy for
// stitching into an animation.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/internal/config"
	"github.com/osuushi/delaunay/internal/logging"
	"github.com/osuushi/delaunay/internal/pointio"
	"github.com/osuushi/delaunay/render"
)

var overrides config.Overrides

var (
	app = kingpin.New("delaunay", "Incremental Delaunay triangulation.")

	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	seed       = app.Flag("seed", "Seed for generated points.").IsSetByUser(&overrides.SeedSet).Uint32()
	count      = app.Flag("count", "Number of generated points.").Short('n').IsSetByUser(&overrides.CountSet).Int()
	logLevel   = app.Flag("log-level", "debug, info, warn or error.").String()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	pointsCmd = app.Command("points", "Print generated points as text.")

	renderCmd = app.Command("render", "Triangulate points and render the result.")
	input     = renderCmd.Arg("input", "Points file (.txt or .svg), or - for stdin. Generated points are used if omitted.").String()
	output    = renderCmd.Flag("output", "Output file. Defaults to stdout.").Short('o').String()
	format    = renderCmd.Flag("format", "png, svg, html, pdf or term. Inferred from --output if omitted.").Short('f').String()
	mode      = renderCmd.Flag("mode", "Insert points atomically or one phase at a time.").Enum(string(config.Atomic), string(config.Stepped))
	frames    = renderCmd.Flag("frames", "Write a frame per step into this directory. Implies stepped mode.").String()
	trace     = renderCmd.Flag("trace", "Print every step.").Bool()
	validate  = renderCmd.Flag("validate", "Check the Delaunay property of the result.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	app.FatalIfError(err, "")

	logger, err := logging.New(cfg.LogLevel, os.Stderr, !*noColor)
	app.FatalIfError(err, "")
	defer logger.Sync()
	advanced.SetLogger(logger.Named("engine"))

	switch command {
	case pointsCmd.FullCommand():
		err = pointio.WriteText(os.Stdout, cfg.Source().Take(cfg.Count))
	case renderCmd.FullCommand():
		err = runRender(cfg, logger)
	}
	if err != nil {
		logger.Error("failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}

// The config file, if any, with command line flags layered on top.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	overrides.Seed, overrides.Count = *seed, *count
	cfg = overrides.Apply(cfg)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *mode != "" {
		cfg.Mode = config.Mode(*mode)
	}
	if *frames != "" {
		cfg.Mode = config.Stepped
	}
	if *format != "" {
		cfg.Render.Format = *format
	} else if *output != "" {
		cfg.Render.Format = strings.TrimPrefix(filepath.Ext(*output), ".")
	}
	return cfg, cfg.Validate()
}

func runRender(cfg config.Config, logger *zap.Logger) error {
	outFormat, err := render.ParseFormat(cfg.Render.Format)
	if err != nil {
		return err
	}
	options := render.Options{
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
		Padding: cfg.Render.Padding,
		Labels:  cfg.Render.Labels,
	}

	points, bounds, err := readPoints(cfg)
	if err != nil {
		return err
	}
	logger.Info("triangulating",
		zap.Int("points", len(points)),
		zap.String("mode", string(cfg.Mode)),
		zap.String("bounds", fmt.Sprint(bounds)),
	)

	t := delaunay.NewInRect(bounds)
	recorder := &frameRecorder{dir: *frames, format: outFormat, options: options}
	if recorder.dir != "" {
		if err := os.MkdirAll(recorder.dir, 0o755); err != nil {
			return errors.Wrap(err, "creating frames directory")
		}
	}

	rejected := 0
	switch cfg.Mode {
	case config.Atomic:
		for _, p := range points {
			if _, err := t.Insert(p); err != nil {
				rejected++
				logger.Warn("point rejected", zap.Error(err))
			}
		}
	case config.Stepped:
		t.Queue(points...)
		if err := recorder.record(t); err != nil {
			return err
		}
		for {
			phase, err := t.Step()
			if errors.Is(err, delaunay.ErrNoPendingPoint) {
				break
			}
			if err != nil {
				rejected++
				logger.Warn("point rejected", zap.Error(err))
				continue
			}
			if *trace {
				printStep(os.Stderr, t, phase)
			}
			if err := recorder.record(t); err != nil {
				return err
			}
		}
	}
	logger.Info("triangulated",
		zap.Int("triangles", len(t.Triangles())),
		zap.Int("rejected", rejected),
		zap.Int("frames", recorder.count),
	)

	if *validate {
		if err := t.Validate(); err != nil {
			return err
		}
		logger.Info("triangulation is delaunay")
	}

	return writeOutput(outFormat, render.Capture(t.Advanced()), options)
}

// Points from the input argument, or generated from the config. File input
// gets bounds fitted around it; generated points use the config bounds.
func readPoints(cfg config.Config) ([]advanced.Point, advanced.Rect, error) {
	if *input == "" {
		return cfg.Source().Take(cfg.Count), cfg.Bounds.Rect(), nil
	}

	var in io.Reader = os.Stdin
	if *input != "-" {
		file, err := os.Open(*input)
		if err != nil {
			return nil, advanced.Rect{}, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}

	var points []advanced.Point
	var err error
	if strings.EqualFold(filepath.Ext(*input), ".svg") {
		points, err = pointio.ReadSVG(in, true)
	} else {
		points, err = pointio.ReadText(in)
	}
	if err != nil {
		return nil, advanced.Rect{}, errors.Wrapf(err, "reading %s", *input)
	}
	return points, delaunay.BoundsFor(points), nil
}

func writeOutput(outFormat render.Format, frame render.Frame, options render.Options) error {
	if *output == "" {
		return render.Write(outFormat, os.Stdout, frame, options)
	}
	file, err := os.Create(*output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	err = render.Write(outFormat, file, frame, options)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}

func printStep(w io.Writer, t *delaunay.Triangulation, phase delaunay.Phase) {
	ins := t.Advanced()
	_, index, _ := ins.Current()
	var label aurora.Value
	switch phase {
	case delaunay.Idle:
		label = aurora.Green(phase)
	case delaunay.FindBadTriangles:
		label = aurora.Red(phase)
	case delaunay.ComputeBoundary:
		label = aurora.Yellow(phase)
	case delaunay.Retriangulate:
		label = aurora.Cyan(phase)
	}
	if *noColor {
		label = aurora.Reset(phase)
	}
	switch phase {
	case delaunay.Idle:
		fmt.Fprintf(w, "%-18s triangles %d\n", label, ins.Mesh().NumTriangles())
	case delaunay.FindBadTriangles:
		fmt.Fprintf(w, "%-18s point %d bad %d\n", label, index, len(ins.BadTriangles()))
	case delaunay.ComputeBoundary:
		fmt.Fprintf(w, "%-18s point %d boundary %d discarded %d\n", label, index, len(ins.Boundary()), len(ins.Discarded()))
	case delaunay.Retriangulate:
		fmt.Fprintf(w, "%-18s point %d triangles %d\n", label, index, ins.Mesh().NumTriangles())
	}
}
