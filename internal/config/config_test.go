package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goshore/internal/shore"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
coast: run/Spit.xy
cliff: run/Spit.cliff
sea: west
figure:
  width: 8
  dpi: 300
extent:
  limits: [-500, 3000, -4500, 500]
ticks:
  x: [0, 1000, 2000]
  rotate_y: true
frames:
  stride: 5
  max_time: 100
waves:
  kind: gaussian
  mean: 245
  std: 15
`))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Coast != "run/Spit.xy" || cfg.Side() != shore.West {
		t.Errorf("coast %q side %v", cfg.Coast, cfg.Side())
	}
	// Unset keys keep their defaults
	if cfg.Figure.Width != 8 || cfg.Figure.Height != 6 || cfg.Figure.DPI != 300 {
		t.Errorf("figure = %+v", cfg.Figure)
	}
	if cfg.Frames.Stride != 5 || cfg.Frames.FPS != 10 || !cfg.Frames.FileList {
		t.Errorf("frames = %+v", cfg.Frames)
	}
	if !cfg.Ticks.RotateY || len(cfg.Ticks.X) != 3 {
		t.Errorf("ticks = %+v", cfg.Ticks)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("coastline: a.xy\n")); err == nil {
		t.Fatal("expected an error for a misspelt key")
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format != "png" {
		t.Errorf("format = %q", cfg.Format)
	}
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	body := "coast: Spit.xy\nfixed: /abs/Fixed.txt\noutput: out/frame\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Coast != filepath.Join(dir, "Spit.xy") {
		t.Errorf("coast = %q", cfg.Coast)
	}
	if cfg.Fixed != "/abs/Fixed.txt" {
		t.Errorf("absolute path changed: %q", cfg.Fixed)
	}
	if cfg.Output != filepath.Join(dir, "out/frame") {
		t.Errorf("output = %q", cfg.Output)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"format", func(c *Config) { c.Format = "bmp" }, "unsupported format"},
		{"figure", func(c *Config) { c.Figure.Height = 0 }, "figure size"},
		{"dpi", func(c *Config) { c.Figure.DPI = 0 }, "dpi"},
		{"limits count", func(c *Config) { c.Extent.Limits = []float64{0, 1} }, "4 values"},
		{"limits order", func(c *Config) { c.Extent.Limits = []float64{1, 0, 0, 1} }, "xmin < xmax"},
		{"pad", func(c *Config) { c.Extent.Pad = []float64{1} }, "pad"},
		{"sea", func(c *Config) { c.Sea = "up" }, "unknown side"},
		{"stride", func(c *Config) { c.Frames.Stride = 0 }, "stride"},
		{"inset", func(c *Config) { c.Inset.X = 0.9 }, "inset"},
		{"waves", func(c *Config) { c.Waves.Kind = "gaussian" }, "std"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want a ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestExtentResolve(t *testing.T) {
	line := shore.Line{{X: 0, Y: 0}, {X: 100, Y: -200}}

	got := Extent{Pad: []float64{10, 20, 30, 40}}.Resolve(line)
	want := shore.Extent{XMin: -10, XMax: 120, YMin: -230, YMax: 40}
	if got != want {
		t.Errorf("padded extent = %+v, want %+v", got, want)
	}

	got = Extent{Limits: []float64{0, 10, 0, 20}}.Resolve(line)
	if got != (shore.Extent{XMin: 0, XMax: 10, YMin: 0, YMax: 20}) {
		t.Errorf("fixed extent = %+v", got)
	}

	got = Extent{Limits: []float64{0, 10, 0, 20}, Equal: true}.Resolve(line)
	if got != (shore.Extent{XMin: 0, XMax: 10, YMin: 0, YMax: 20}) {
		t.Errorf("equal extent before drawing = %+v, want the limits unchanged", got)
	}
}

func TestSaveRoundTrips(t *testing.T) {
	cfg := Default()
	cfg.Coast = "a.xy"
	cfg.Extent.Limits = []float64{0, 1, 0, 1}

	var buf bytes.Buffer
	if err := cfg.Save(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("saved config does not parse: %v\n%s", err, buf.String())
	}
	if back.Coast != "a.xy" || len(back.Extent.Limits) != 4 {
		t.Errorf("round trip lost fields: %+v", back)
	}
}
