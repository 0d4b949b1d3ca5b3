package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/waves"
)

// Config holds everything needed to render a model run
type Config struct {
	// Model output files
	Coast string `yaml:"coast"`
	Cliff string `yaml:"cliff,omitempty"`
	Fixed string `yaml:"fixed,omitempty"`

	// Output is a file path for single figures and a prefix for frames
	Output string `yaml:"output"`
	Format string `yaml:"format"`

	Figure    Figure    `yaml:"figure"`
	Extent    Extent    `yaml:"extent"`
	Sea       string    `yaml:"sea"`
	Transform Transform `yaml:"transform"`
	Ticks     Ticks     `yaml:"ticks"`
	Label     Label     `yaml:"label"`

	// ShowInitial draws the initial coastline dashed under each frame
	ShowInitial bool `yaml:"show_initial"`

	Frames    Frames    `yaml:"frames"`
	Evolution Evolution `yaml:"evolution"`

	Waves waves.Climate `yaml:"waves"`
	Inset Inset         `yaml:"inset"`

	// Seed is a hex seed for wave sampling. Empty picks one from the clock.
	Seed string `yaml:"seed,omitempty"`
}

// Figure is the page size in inches and the raster resolution
type Figure struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	DPI    int     `yaml:"dpi"`
}

// Extent either fixes the axis limits or derives them from the data
type Extent struct {
	// Limits is xmin, xmax, ymin, ymax. Empty means fit the data.
	Limits []float64 `yaml:"limits,flow,omitempty"`
	// Pad is left, right, bottom, top in metres around the fitted data
	Pad []float64 `yaml:"pad,flow,omitempty"`
	// Equal keeps one metre the same length on both axes. It is applied
	// when drawing, once the plot's data area is known.
	Equal bool `yaml:"equal"`
}

// Transform re-orients the model coordinates
type Transform struct {
	Rotate  bool `yaml:"rotate"`
	AnchorX bool `yaml:"anchor_x"`
	AnchorY bool `yaml:"anchor_y"`
}

// Ticks overrides the automatic axis ticks
type Ticks struct {
	X       []float64 `yaml:"x,flow,omitempty"`
	Y       []float64 `yaml:"y,flow,omitempty"`
	RotateY bool      `yaml:"rotate_y"`
}

// Label places the time label as fractions of the extent from its lower left corner
type Label struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Frames controls animation frame output
type Frames struct {
	Stride   int     `yaml:"stride"`
	MaxTime  float64 `yaml:"max_time"`
	Workers  int     `yaml:"workers"`
	FileList bool    `yaml:"filelist"`
	GIF      string  `yaml:"gif,omitempty"`
	FPS      int     `yaml:"fps"`
	GIFWidth int     `yaml:"gif_width"`
}

// Evolution controls the multi-time figures
type Evolution struct {
	// Times selects the intermediate coastlines by nearest model time
	Times []float64 `yaml:"times,flow,omitempty"`
	// Every draws every n-th historic coastline on still figures
	Every int `yaml:"every"`
}

// Inset is the wave rose position as fractions of the figure
type Inset struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the settings used when neither a run file nor flags
// say otherwise
func Default() *Config {
	return &Config{
		Output: "frames/frame",
		Format: "png",
		Figure: Figure{Width: 6, Height: 6, DPI: 150},
		Sea:    "auto",
		Label:  Label{X: 0.05, Y: 0.93},
		Frames: Frames{
			Stride:   1,
			Workers:  runtime.NumCPU(),
			FileList: true,
			FPS:      10,
			GIFWidth: 800,
		},
		Evolution: Evolution{Every: 10},
		Waves:     waves.Climate{Kind: "none"},
		Inset:     Inset{X: 0.68, Y: 0.12, Width: 0.22, Height: 0.22},
	}
}

// Load reads a YAML run file over the defaults. Relative file paths in the
// run file are taken relative to the run file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes a run file body over the defaults, rejecting unknown keys
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse run file: %w", err)
	}
	return cfg, nil
}

func (c *Config) resolve(dir string) {
	for _, p := range []*string{&c.Coast, &c.Cliff, &c.Fixed, &c.Output, &c.Frames.GIF, &c.Waves.File} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

// Save writes the configuration as YAML
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

var formats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true,
}

// Validate checks the settings for consistency
func (c *Config) Validate() error {
	if !formats[strings.ToLower(c.Format)] {
		return &ValidationError{fmt.Sprintf("unsupported format %q", c.Format)}
	}
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return &ValidationError{fmt.Sprintf("figure size must be positive, got %gx%g in", c.Figure.Width, c.Figure.Height)}
	}
	if c.Figure.DPI <= 0 {
		return &ValidationError{fmt.Sprintf("dpi must be positive, got %d", c.Figure.DPI)}
	}

	switch len(c.Extent.Limits) {
	case 0:
	case 4:
		l := c.Extent.Limits
		if l[0] >= l[1] || l[2] >= l[3] {
			return &ValidationError{fmt.Sprintf("extent limits must be xmin < xmax and ymin < ymax, got %v", l)}
		}
	default:
		return &ValidationError{fmt.Sprintf("extent limits need 4 values (xmin xmax ymin ymax), got %d", len(c.Extent.Limits))}
	}
	if n := len(c.Extent.Pad); n != 0 && n != 4 {
		return &ValidationError{fmt.Sprintf("extent pad needs 4 values (left right bottom top), got %d", n)}
	}

	if _, err := shore.ParseSide(c.Sea); err != nil {
		return &ValidationError{err.Error()}
	}

	if c.Frames.Stride < 1 {
		return &ValidationError{fmt.Sprintf("frame stride must be at least 1, got %d", c.Frames.Stride)}
	}
	if c.Frames.Workers < 0 {
		return &ValidationError{fmt.Sprintf("workers cannot be negative, got %d", c.Frames.Workers)}
	}
	if c.Frames.FPS < 1 {
		return &ValidationError{fmt.Sprintf("fps must be at least 1, got %d", c.Frames.FPS)}
	}
	if c.Evolution.Every < 1 {
		return &ValidationError{fmt.Sprintf("evolution spacing must be at least 1, got %d", c.Evolution.Every)}
	}

	in := c.Inset
	if in.Width <= 0 || in.Height <= 0 || in.X < 0 || in.Y < 0 || in.X+in.Width > 1 || in.Y+in.Height > 1 {
		return &ValidationError{fmt.Sprintf("inset must lie inside the figure, got %+v", in)}
	}

	if err := c.Waves.Validate(); err != nil {
		return &ValidationError{err.Error()}
	}
	return nil
}

// Side returns the configured sea side
func (c *Config) Side() shore.Side {
	s, _ := shore.ParseSide(c.Sea)
	return s
}

// ShoreTransform converts the transform settings
func (c *Config) ShoreTransform() shore.Transform {
	return shore.Transform{
		Rotate:  c.Transform.Rotate,
		AnchorX: c.Transform.AnchorX,
		AnchorY: c.Transform.AnchorY,
	}
}

// Resolve returns the plotting extent for the given lines before any equal
// axis scaling
func (e Extent) Resolve(lines ...shore.Line) shore.Extent {
	var ext shore.Extent
	if len(e.Limits) == 4 {
		ext = shore.Extent{XMin: e.Limits[0], XMax: e.Limits[1], YMin: e.Limits[2], YMax: e.Limits[3]}
	} else {
		ext = shore.Bounds(lines...)
		if len(e.Pad) == 4 {
			ext = ext.Pad(e.Pad[0], e.Pad[1], e.Pad[2], e.Pad[3])
		}
	}
	return ext
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
