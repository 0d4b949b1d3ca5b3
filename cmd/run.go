package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/config"
	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/seed"
	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/waves"
	"github.com/alexiusacademia/goshore/internal/xy"
)

// Flags shared by every command that renders a model run. Values given on
// the command line override the run file.
var (
	runConfig   string
	runCoast    string
	runCliff    string
	runFixed    string
	runOutput   string
	runFormat   string
	runWidth    float64
	runHeight   float64
	runDPI      int
	runSea      string
	runRotate   bool
	runAnchorX  bool
	runAnchorY  bool
	runLimits   []float64
	runPad      []float64
	runEqual    bool
	runXTicks   []float64
	runYTicks   []float64
	runRotateY  bool
	runWaves    string
	runWaveMean float64
	runWaveStd  float64
	runWaveFile string
	runSeed     string
)

func addRunFlags(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.Flags()

	f.StringVarP(&runConfig, "config", "c", "", "YAML run file")
	f.StringVar(&runCoast, "coast", "", "Coastline .xy file")
	f.StringVar(&runCliff, "cliff", "", "Cliffline .xy file (optional)")
	f.StringVar(&runFixed, "fixed", "", "Fixed cliff node file (optional)")
	f.StringVarP(&runOutput, "output", "o", d.Output, "Output file, or prefix for frames")
	f.StringVar(&runFormat, "format", d.Format, "Frame format (png, jpg, tif, svg, pdf, eps)")

	// Figure
	f.Float64Var(&runWidth, "width", d.Figure.Width, "Figure width (inches)")
	f.Float64Var(&runHeight, "height", d.Figure.Height, "Figure height (inches)")
	f.IntVar(&runDPI, "dpi", d.Figure.DPI, "Raster resolution (dots per inch)")
	f.Float64SliceVar(&runLimits, "limits", nil, "Axis limits: xmin,xmax,ymin,ymax")
	f.Float64SliceVar(&runPad, "pad", nil, "Padding around the data: left,right,bottom,top (m)")
	f.BoolVar(&runEqual, "equal", d.Extent.Equal, "Equal scaling on both axes")
	f.Float64SliceVar(&runXTicks, "xticks", nil, "Custom x tick positions")
	f.Float64SliceVar(&runYTicks, "yticks", nil, "Custom y tick positions")
	f.BoolVar(&runRotateY, "rotate-y-labels", false, "Rotate y tick labels")

	// Geometry
	f.StringVar(&runSea, "sea", d.Sea, "Side of the extent the sea lies on (north, south, east, west, auto)")
	f.BoolVar(&runRotate, "rotate", false, "Rotate coordinates: (x, y) becomes (-y, x)")
	f.BoolVar(&runAnchorX, "anchor-x", false, "Shift x so the first node sits at 0")
	f.BoolVar(&runAnchorY, "anchor-y", false, "Shift y so the first node sits at 0")

	// Wave climate
	f.StringVar(&runWaves, "waves", d.Waves.Kind, "Wave rose: none, gaussian, bimodal, ua or file")
	f.Float64Var(&runWaveMean, "wave-mean", 0, "Mean offshore wave direction (degrees)")
	f.Float64Var(&runWaveStd, "wave-std", 0, "Standard deviation of wave direction (degrees)")
	f.StringVar(&runWaveFile, "wave-file", "", "Recorded wave file for --waves file")
	f.StringVar(&runSeed, "seed", "", "Hex seed for wave sampling")
}

// loadRunConfig builds the configuration from defaults, the run file and
// any flags set on the command line, in that order
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if runConfig != "" {
		var err error
		if cfg, err = config.Load(runConfig); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("coast", func() { cfg.Coast = runCoast })
	set("cliff", func() { cfg.Cliff = runCliff })
	set("fixed", func() { cfg.Fixed = runFixed })
	set("output", func() { cfg.Output = runOutput })
	set("format", func() { cfg.Format = runFormat })
	set("width", func() { cfg.Figure.Width = runWidth })
	set("height", func() { cfg.Figure.Height = runHeight })
	set("dpi", func() { cfg.Figure.DPI = runDPI })
	set("limits", func() { cfg.Extent.Limits = runLimits })
	set("pad", func() { cfg.Extent.Pad = runPad })
	set("equal", func() { cfg.Extent.Equal = runEqual })
	set("xticks", func() { cfg.Ticks.X = runXTicks })
	set("yticks", func() { cfg.Ticks.Y = runYTicks })
	set("rotate-y-labels", func() { cfg.Ticks.RotateY = runRotateY })
	set("sea", func() { cfg.Sea = runSea })
	set("rotate", func() { cfg.Transform.Rotate = runRotate })
	set("anchor-x", func() { cfg.Transform.AnchorX = runAnchorX })
	set("anchor-y", func() { cfg.Transform.AnchorY = runAnchorY })
	set("waves", func() { cfg.Waves.Kind = runWaves })
	set("wave-mean", func() { cfg.Waves.Mean = runWaveMean })
	set("wave-std", func() { cfg.Waves.Std = runWaveStd })
	set("wave-file", func() { cfg.Waves.File = runWaveFile })
	set("seed", func() { cfg.Seed = runSeed })

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// modelRun is a loaded model run ready to draw
type modelRun struct {
	cfg   *config.Config
	coast *xy.Series
	cliff *xy.Series // nil without a cliffline
	fixed []bool
	seed  seed.Seed
	rose  *waves.Rose
	tf    shore.Transform
}

// openRun reads the files named in the configuration
func openRun(cfg *config.Config) (*modelRun, error) {
	if cfg.Coast == "" {
		return nil, fmt.Errorf("no coastline file given (use --coast or a run file)")
	}

	r := &modelRun{cfg: cfg, tf: cfg.ShoreTransform()}

	var err error
	if r.coast, err = xy.ReadFile(cfg.Coast); err != nil {
		return nil, err
	}
	if cfg.Cliff != "" {
		if r.cliff, err = xy.ReadFile(cfg.Cliff); err != nil {
			return nil, err
		}
		if err := xy.Pair(r.coast, r.cliff); err != nil {
			return nil, err
		}
	}
	if cfg.Fixed != "" {
		if r.fixed, err = xy.ReadFixed(cfg.Fixed); err != nil {
			return nil, fmt.Errorf("failed to read fixed cliff nodes: %w", err)
		}
	}

	if r.seed, err = seed.Init(cfg.Seed); err != nil {
		return nil, err
	}
	if r.rose, err = cfg.Waves.Rose(r.seed.Source(1)); err != nil {
		return nil, fmt.Errorf("failed to build wave rose: %w", err)
	}
	return r, nil
}

// line returns snapshot i of s, transformed for plotting
func (r *modelRun) line(s *xy.Series, i int) shore.Line {
	if s == nil {
		return nil
	}
	snap := s.Snapshots[i]
	l, _ := shore.FromXY(snap.X, snap.Y)
	return r.tf.Apply(l)
}

func (r *modelRun) coastAt(i int) shore.Line { return r.line(r.coast, i) }
func (r *modelRun) cliffAt(i int) shore.Line { return r.line(r.cliff, i) }

// extent covers the given snapshots of both lines so that every frame of
// a sequence shares the same axes
func (r *modelRun) extent(indices ...int) shore.Extent {
	var lines []shore.Line
	for _, i := range indices {
		lines = append(lines, r.coastAt(i))
		if r.cliff != nil {
			lines = append(lines, r.cliffAt(i))
		}
	}
	return r.cfg.Extent.Resolve(lines...)
}

// fit applies equal axis scaling when configured, measuring the data area
// of the figure build draws
func (r *modelRun) fit(ext shore.Extent, build func(shore.Extent) (*diagram.Figure, error)) (shore.Extent, error) {
	if !r.cfg.Extent.Equal {
		return ext, nil
	}
	return diagram.EqualExtent(ext, r.page(), build)
}

func (r *modelRun) style() diagram.Style {
	c := r.cfg
	return diagram.Style{
		XTicks:  c.Ticks.X,
		YTicks:  c.Ticks.Y,
		RotateY: c.Ticks.RotateY,
		LabelX:  c.Label.X,
		LabelY:  c.Label.Y,
		Rose:    r.rose,
		Inset:   diagram.Rect{X: c.Inset.X, Y: c.Inset.Y, Width: c.Inset.Width, Height: c.Inset.Height},
	}
}

func (r *modelRun) page() diagram.Page {
	return diagram.Page{Width: r.cfg.Figure.Width, Height: r.cfg.Figure.Height, DPI: r.cfg.Figure.DPI}
}

// frame assembles the data for snapshot i
func (r *modelRun) frame(i int, ext shore.Extent) diagram.FrameData {
	d := diagram.FrameData{
		Time:   r.coast.Snapshots[i].Time,
		Coast:  r.coastAt(i),
		Cliff:  r.cliffAt(i),
		Extent: ext,
		Sea:    r.cfg.Side(),
		Style:  r.style(),
	}
	if r.cfg.ShowInitial {
		d.Initial = r.coastAt(0)
	}
	if len(r.fixed) > 0 && r.cliff != nil {
		d.InitialCliff = r.cliffAt(0)
		d.Fixed = r.fixed
	}
	return d
}

func (r *modelRun) printHeader(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Coastline:  %s (%d snapshots, %.1f to %.1f years)\n",
		r.cfg.Coast, r.coast.Len(), r.coast.Initial().Time, r.coast.Last().Time)
	if r.cliff != nil {
		fmt.Printf("  Cliffline:  %s\n", r.cfg.Cliff)
	}
	if r.rose != nil {
		fmt.Printf("  Waves:      %s (seed %s)\n", r.cfg.Waves.Kind, r.seed.Hex())
	}
	fmt.Println()
}
