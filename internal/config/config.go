// Package config loads the settings shared by the command line tools.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/delaunay/advanced"
)

type Mode string

const (
	Atomic  Mode = "atomic"
	Stepped Mode = "stepped"
)

type Config struct {
	// Seed and Count drive the hash point source when no input file is given.
	Seed  uint32 `yaml:"seed"`
	Count int    `yaml:"count"`
	// The bootstrap rectangle. Every point must fall strictly inside it.
	Bounds Bounds `yaml:"bounds"`
	// Fraction of the bounds kept clear of generated points on every side.
	// Must be positive.
	Inset    float64 `yaml:"inset"`
	Mode     Mode    `yaml:"mode"`
	LogLevel string  `yaml:"log_level"`
	Render   Render  `yaml:"render"`
}

type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

type Render struct {
	Format  string  `yaml:"format"`
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
	Labels  bool    `yaml:"labels"`
}

func Default() Config {
	return Config{
		Seed:     1,
		Count:    100,
		Bounds:   Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		Inset:    advanced.DefaultInset,
		Mode:     Atomic,
		LogLevel: "info",
		Render: Render{
			Format:  "png",
			Width:   800,
			Height:  800,
			Padding: 20,
			Labels:  true,
		},
	}
}

// Load a YAML file over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %q", path)
	}
	config, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return config, nil
}

func Parse(data []byte) (Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "parsing yaml")
	}
	config.Mode = Mode(strings.ToLower(string(config.Mode)))
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.Errorf("count must not be negative, got %d", c.Count)
	}
	if c.Bounds.MaxX <= c.Bounds.MinX || c.Bounds.MaxY <= c.Bounds.MinY {
		return errors.Errorf("bounds must have positive area, got %+v", c.Bounds)
	}
	// HashSource treats a zero inset as DefaultInset
	if c.Inset <= 0 || c.Inset >= 0.5 {
		return errors.Errorf("inset must be in (0, 0.5), got %v", c.Inset)
	}
	switch c.Mode {
	case Atomic, Stepped:
	default:
		return errors.Errorf("mode must be %q or %q, got %q", Atomic, Stepped, c.Mode)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Padding < 0 {
		return errors.Errorf("render padding must not be negative, got %v", c.Render.Padding)
	}
	return nil
}

// Command line values layered over a loaded config. Only fields marked as set
// replace the config's values, so an explicit zero still counts.
type Overrides struct {
	Seed     uint32
	SeedSet  bool
	Count    int
	CountSet bool
}

func (o Overrides) Apply(c Config) Config {
	if o.SeedSet {
		c.Seed = o.Seed
	}
	if o.CountSet {
		c.Count = o.Count
	}
	return c
}

func (b Bounds) Rect() advanced.Rect {
	return advanced.Rect{
		Min: advanced.Point{X: b.MinX, Y: b.MinY},
		Max: advanced.Point{X: b.MaxX, Y: b.MaxY},
	}
}

// The point source described by the config.
func (c Config) Source() *advanced.HashSource {
	return &advanced.HashSource{Seed: c.Seed, Bounds: c.Bounds.Rect(), Inset: c.Inset}
}
