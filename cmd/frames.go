package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/animate"
	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
)

var (
	framesStride   int
	framesMaxTime  float64
	framesWorkers  int
	framesInitial  bool
	framesGIF      string
	framesFPS      int
	framesGIFWidth int
	framesNoList   bool
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Render animation frames from a model run",
	Long: `Render one figure per output step of a model run, shading the sea,
beach and land, for assembly into an animation.

Frames are written to <output>_<n>.<format> with a filelist.txt beside
them listing the frames in order. Use --gif to also assemble them into an
animated GIF.

Examples:
  goshore frames --coast Spit.xy -o frames/spit --stride 5
  goshore frames --coast Beach.xy --cliff Cliff.xy --fixed Fixed.txt --sea west
  goshore frames -c run.yaml --gif spit.gif --fps 12`,
	Run: runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	addRunFlags(framesCmd)

	framesCmd.Flags().IntVar(&framesStride, "stride", 1, "Render every n-th output step")
	framesCmd.Flags().Float64Var(&framesMaxTime, "max-time", 0, "Stop after the first step past this time (years, 0 = all)")
	framesCmd.Flags().IntVarP(&framesWorkers, "workers", "j", 0, "Frames rendered at once (0 = all CPUs)")
	framesCmd.Flags().BoolVar(&framesInitial, "initial", false, "Draw the initial coastline dashed on every frame")
	framesCmd.Flags().BoolVar(&framesNoList, "no-filelist", false, "Do not write filelist.txt")

	// Animation
	framesCmd.Flags().StringVar(&framesGIF, "gif", "", "Assemble the frames into this animated GIF")
	framesCmd.Flags().IntVar(&framesFPS, "fps", 10, "GIF frames per second")
	framesCmd.Flags().IntVar(&framesGIFWidth, "gif-width", 800, "GIF width in pixels")
}

func runFrames(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	f := cmd.Flags()
	if f.Changed("stride") {
		cfg.Frames.Stride = framesStride
	}
	if f.Changed("max-time") {
		cfg.Frames.MaxTime = framesMaxTime
	}
	if f.Changed("workers") {
		cfg.Frames.Workers = framesWorkers
	}
	if f.Changed("initial") {
		cfg.ShowInitial = framesInitial
	}
	if f.Changed("no-filelist") {
		cfg.Frames.FileList = !framesNoList
	}
	if f.Changed("gif") {
		cfg.Frames.GIF = framesGIF
	}
	if f.Changed("fps") {
		cfg.Frames.FPS = framesFPS
	}
	if f.Changed("gif-width") {
		cfg.Frames.GIFWidth = framesGIFWidth
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error in frame options: %v\n", err)
		return
	}

	run, err := openRun(cfg)
	if err != nil {
		fmt.Printf("Error reading model output: %v\n", err)
		return
	}

	indices := run.coast.Stride(cfg.Frames.Stride, cfg.Frames.MaxTime)
	last := indices[len(indices)-1]
	ext, err := run.fit(run.extent(indices...), func(e shore.Extent) (*diagram.Figure, error) {
		return diagram.Frame(run.frame(last, e))
	})
	if err != nil {
		fmt.Printf("Error sizing frames: %v\n", err)
		return
	}

	run.printHeader("ANIMATION FRAMES")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Frames:\t%d (every %d of %d steps)\n", len(indices), cfg.Frames.Stride, run.coast.Len())
	fmt.Fprintf(w, "  Extent:\tx %.0f to %.0f m, y %.0f to %.0f m\n", ext.XMin, ext.XMax, ext.YMin, ext.YMax)
	fmt.Fprintf(w, "  Sea side:\t%s\n", cfg.Side())
	fmt.Fprintf(w, "  Output:\t%s\n", animate.FramePath(cfg.Output, 0, cfg.Format))
	w.Flush()
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	paths, err := animate.Render(ctx, animate.Job{
		Snapshots: indices,
		Build: func(i int) (*diagram.Figure, error) {
			return diagram.Frame(run.frame(i, ext))
		},
		Prefix:   cfg.Output,
		Format:   cfg.Format,
		Page:     run.page(),
		Workers:  cfg.Frames.Workers,
		FileList: cfg.Frames.FileList,
		Progress: func(done, total int) {
			fmt.Printf("\r  Rendered %d/%d", done, total)
		},
	})
	fmt.Println()
	if err != nil {
		fmt.Printf("Error rendering frames: %v\n", err)
		return
	}
	fmt.Printf("  ✓ %d frames written in %s\n", len(paths), time.Since(start).Round(time.Millisecond))
	if cfg.Frames.FileList {
		fmt.Printf("  ✓ Frame list: %s\n", filepath.Join(filepath.Dir(cfg.Output), animate.FileList))
	}

	if cfg.Frames.GIF == "" {
		return
	}
	if cfg.Format != "png" && cfg.Format != "jpg" && cfg.Format != "jpeg" && cfg.Format != "tif" && cfg.Format != "tiff" {
		fmt.Printf("Error assembling GIF: %s frames cannot be decoded, use a raster format\n", cfg.Format)
		return
	}
	if err := animate.Assemble(ctx, paths, cfg.Frames.GIF, cfg.Frames.FPS, cfg.Frames.GIFWidth); err != nil {
		fmt.Printf("Error assembling GIF: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Animation: %s\n", cfg.Frames.GIF)
	fmt.Println()
}
