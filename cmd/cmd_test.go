package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/config"
	"github.com/alexiusacademia/goshore/internal/generate"
	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/xy"
)

func TestFigureName(t *testing.T) {
	tests := []struct {
		output, format, kind string
		want                 string
	}{
		{"frames/frame", "png", "still", "frames/frame_still.png"},
		{"out/spit", "pdf", "evolution", "out/spit_evolution.pdf"},
		{"spit.svg", "png", "still", "spit.svg"},
	}

	for _, tt := range tests {
		cfg := config.Default()
		cfg.Output = tt.output
		cfg.Format = tt.format
		if got := figureName(cfg, tt.kind); got != tt.want {
			t.Errorf("figureName(%q, %q) = %q, want %q", tt.output, tt.kind, got, tt.want)
		}
	}
}

func TestMoveCells(t *testing.T) {
	coast := shore.Line{{X: 100, Y: 50}, {X: 100, Y: 150}}
	cells := []xy.Cell{{X: []float64{100, 110}, Y: []float64{50, 60}}}
	tf := shore.Transform{Rotate: true, AnchorX: true, AnchorY: true}

	got := moveCells(cells, tf, coast)
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("moveCells() = %v", got)
	}
	// The first cell node coincides with the first coast node, which
	// anchors to the origin; the second moves with the same shift
	want := []shore.Point{{X: 0, Y: 0}, {X: -10, Y: 10}}
	for i, p := range got[0] {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("node %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestBoundaryOr(t *testing.T) {
	defer func() { generateBoundary = 0 }()

	generateBoundary = 0
	if got := boundaryOr(xy.Fixed); got != xy.Fixed {
		t.Errorf("boundaryOr() = %v, want fixed", got)
	}
	generateBoundary = 3
	if got := boundaryOr(xy.Fixed); got != xy.Prescribed {
		t.Errorf("boundaryOr() = %v, want prescribed", got)
	}
}

func newRunCommand() *cobra.Command {
	c := &cobra.Command{Use: "test"}
	addRunFlags(c)
	return c
}

func TestLoadRunConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	run := filepath.Join(dir, "run.yaml")
	body := "coast: spit.xy\nformat: svg\nsea: west\n"
	if err := os.WriteFile(run, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newRunCommand()
	for name, value := range map[string]string{"config": run, "format": "pdf"} {
		if err := c.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := loadRunConfig(c)
	if err != nil {
		t.Fatalf("loadRunConfig() error = %v", err)
	}
	if cfg.Format != "pdf" {
		t.Errorf("Format = %q, want flag value pdf", cfg.Format)
	}
	if cfg.Sea != "west" {
		t.Errorf("Sea = %q, want run file value west", cfg.Sea)
	}
	if want := filepath.Join(dir, "spit.xy"); cfg.Coast != want {
		t.Errorf("Coast = %q, want %q", cfg.Coast, want)
	}
	if cfg.Figure.DPI != config.Default().Figure.DPI {
		t.Errorf("DPI = %d, want default", cfg.Figure.DPI)
	}
}

func TestLoadRunConfigInvalid(t *testing.T) {
	c := newRunCommand()
	if err := c.Flags().Set("sea", "sideways"); err != nil {
		t.Fatal(err)
	}
	if _, err := loadRunConfig(c); err == nil {
		t.Error("expected error for unknown sea side")
	}
}

func TestOpenRun(t *testing.T) {
	cfg := config.Default()
	if _, err := openRun(cfg); err == nil {
		t.Error("expected error without a coastline file")
	}

	l, err := generate.DefaultSine().Line(nil)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Coast = filepath.Join(t.TempDir(), "sine.xy")
	if err := xy.WriteFile(cfg.Coast, generate.Series(l, xy.Periodic)); err != nil {
		t.Fatal(err)
	}
	cfg.Transform.AnchorY = true

	run, err := openRun(cfg)
	if err != nil {
		t.Fatalf("openRun() error = %v", err)
	}
	if run.coast.Len() != 1 {
		t.Errorf("snapshots = %d, want 1", run.coast.Len())
	}
	if run.rose != nil {
		t.Error("expected no rose without a wave climate")
	}

	coast := run.coastAt(0)
	if coast[0].Y != 0 {
		t.Errorf("anchored first node y = %g, want 0", coast[0].Y)
	}
	if run.cliffAt(0) != nil {
		t.Error("expected no cliffline")
	}

	d := run.frame(0, run.extent(0))
	if d.Extent.Width() <= 0 || d.Extent.Height() <= 0 {
		t.Errorf("empty extent %+v", d.Extent)
	}
}

func TestGenerateSeedAndOutput(t *testing.T) {
	defer func() { generateSeed, generateOutput = "", "" }()

	generateSeed, generateOutput = "7b", ""
	s, out, err := generateSeedAndOutput("Spit")
	if err != nil {
		t.Fatal(err)
	}
	if s.Hex() != "7b" || out != "Spit-7b.xy" {
		t.Errorf("got seed %s, output %q, want 7b and Spit-7b.xy", s.Hex(), out)
	}

	generateOutput = "mine.xy"
	if _, out, _ = generateSeedAndOutput("Spit"); out != "mine.xy" {
		t.Errorf("output = %q, want mine.xy", out)
	}

	generateSeed = "not hex"
	if _, _, err := generateSeedAndOutput("Spit"); err == nil {
		t.Error("expected error for a bad seed")
	}
}

func TestGenerateCuspateWritesCliffAtZeroWidth(t *testing.T) {
	defer func() { generateSeed, generateOutput = "", "" }()

	dir := t.TempDir()
	generateSeed = "1"
	generateOutput = filepath.Join(dir, "Beach.xy")
	if err := generateCuspateCmd.Flags().Set("beach-width", "0"); err != nil {
		t.Fatal(err)
	}
	runGenerateCuspate(generateCuspateCmd, nil)

	beach, err := xy.ReadFile(generateOutput)
	if err != nil {
		t.Fatal(err)
	}
	cliff, err := xy.ReadFile(filepath.Join(dir, "Beach_cliff.xy"))
	if err != nil {
		t.Fatalf("cliffline not written: %v", err)
	}
	if err := xy.Pair(beach, cliff); err != nil {
		t.Errorf("beach and cliff do not pair: %v", err)
	}
	if cliff.Start != xy.Periodic {
		t.Errorf("cliff boundary = %v, want periodic", cliff.Start)
	}
}

func TestConfigWriteLoadsBack(t *testing.T) {
	defer func() { configWrite = "" }()

	c := newRunCommand()
	for name, value := range map[string]string{"coast": "/data/spit.xy", "sea": "west", "dpi": "300"} {
		if err := c.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	configWrite = filepath.Join(t.TempDir(), "run.yaml")
	runConfigCmd(c, nil)

	cfg, err := config.Load(configWrite)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Coast != "/data/spit.xy" || cfg.Sea != "west" || cfg.Figure.DPI != 300 {
		t.Errorf("loaded %q %q %d, want /data/spit.xy west 300", cfg.Coast, cfg.Sea, cfg.Figure.DPI)
	}
}
