package fractals

import (
	"errors"
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of Params.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	MaxIterations int        `yaml:"max_iterations"`
	Boundary      float64    `yaml:"boundary"`
	JuliaC        [2]float64 `yaml:"julia_c"`
	JuliaRect     [4]float64 `yaml:"julia_rect"` // min x, max x, min y, max y

	KochDepth       int `yaml:"koch_depth"`
	KochRadius      int `yaml:"koch_radius"`
	SierpinskiDepth int `yaml:"sierpinski_depth"`
	TreeDepth       int `yaml:"tree_depth"`
	FernPoints      int `yaml:"fern_points"`

	LineColor  string `yaml:"line_color"`
	FernColor  string `yaml:"fern_color"`
	Background string `yaml:"background"`

	Seed string `yaml:"seed"` // hex, empty for a clock seed
}

// DefaultConfig mirrors DefaultParams.
func DefaultConfig() Config {
	p := DefaultParams()
	return Config{
		Width:           p.Width,
		Height:          p.Height,
		MaxIterations:   p.MaxIterations,
		Boundary:        p.Boundary,
		JuliaC:          [2]float64{real(p.JuliaC), imag(p.JuliaC)},
		JuliaRect:       [4]float64{p.JuliaRect.MinX, p.JuliaRect.MaxX, p.JuliaRect.MinY, p.JuliaRect.MaxY},
		KochDepth:       p.KochDepth,
		KochRadius:      p.KochRadius,
		SierpinskiDepth: p.SierpinskiDepth,
		TreeDepth:       p.TreeDepth,
		FernPoints:      p.FernPoints,
		LineColor:       White.Hex(),
		FernColor:       Green.Hex(),
		Background:      Black.Hex(),
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, err := cfg.Params(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Params validates the config and converts it.
func (c Config) Params() (Params, error) {
	p := DefaultParams()
	if c.Width <= 0 || c.Height <= 0 {
		return p, fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxIterations < 0 {
		return p, errors.New("max_iterations must not be negative")
	}
	if c.Boundary <= 0 {
		return p, errors.New("boundary must be positive")
	}
	for name, v := range map[string]int{
		"koch_depth":       c.KochDepth,
		"koch_radius":      c.KochRadius,
		"sierpinski_depth": c.SierpinskiDepth,
		"tree_depth":       c.TreeDepth,
		"fern_points":      c.FernPoints,
	} {
		if v < 0 {
			return p, fmt.Errorf("%s must not be negative", name)
		}
	}
	if c.JuliaRect[0] >= c.JuliaRect[1] || c.JuliaRect[2] >= c.JuliaRect[3] {
		return p, fmt.Errorf("julia_rect %v is empty", c.JuliaRect)
	}

	var err error
	if p.LineColor, err = parseColor("line_color", c.LineColor); err != nil {
		return p, err
	}
	if p.FernColor, err = parseColor("fern_color", c.FernColor); err != nil {
		return p, err
	}
	if p.Background, err = parseColor("background", c.Background); err != nil {
		return p, err
	}

	p.Width, p.Height = c.Width, c.Height
	p.MaxIterations = c.MaxIterations
	p.Boundary = c.Boundary
	p.JuliaC = complex(c.JuliaC[0], c.JuliaC[1])
	p.JuliaRect = PlaneRect{MinX: c.JuliaRect[0], MaxX: c.JuliaRect[1], MinY: c.JuliaRect[2], MaxY: c.JuliaRect[3]}
	p.KochDepth = c.KochDepth
	p.KochRadius = c.KochRadius
	p.SierpinskiDepth = c.SierpinskiDepth
	p.TreeDepth = c.TreeDepth
	p.FernPoints = c.FernPoints
	return p, nil
}

func parseColor(field, hex string) (colorful.Color, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return col, fmt.Errorf("%s: %w", field, err)
	}
	return col, nil
}
