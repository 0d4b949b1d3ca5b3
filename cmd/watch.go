package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/watch"
)

var watchDelay time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw the latest coastline while a model runs",
	Long: `Watch the coastline file of a running simulation and redraw its latest
output step each time the file settles after a write.

The figure is written to <output>_latest.<format> (or to --output when it
has an extension). Press Ctrl+C to stop.

Examples:
  goshore watch --coast Spit.xy -o live/spit
  goshore watch -c run.yaml --delay 2s`,
	Run: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addRunFlags(watchCmd)

	watchCmd.Flags().DurationVar(&watchDelay, "delay", watch.DefaultDelay, "Quiet period before redrawing")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}
	if cfg.Coast == "" {
		fmt.Println("Error: no coastline file given (use --coast or a run file)")
		return
	}
	out := figureName(cfg, "latest")

	redraw := func() {
		run, err := openRun(cfg)
		if err != nil {
			fmt.Printf("Error reading model output: %v\n", err)
			return
		}
		last := run.coast.Len() - 1
		build := func(e shore.Extent) (*diagram.Figure, error) {
			return diagram.Frame(run.frame(last, e))
		}
		ext, err := run.fit(run.extent(0, last), build)
		if err != nil {
			fmt.Printf("Error sizing frame: %v\n", err)
			return
		}
		fig, err := build(ext)
		if err != nil {
			fmt.Printf("Error drawing frame: %v\n", err)
			return
		}
		if err := fig.Save(out, run.page()); err != nil {
			fmt.Printf("Error saving figure: %v\n", err)
			return
		}
		fmt.Printf("  [%s] step %d, %.1f years → %s\n",
			time.Now().Format("15:04:05"), last, run.coast.Last().Time, out)
	}

	fmt.Println()
	fmt.Printf("  Watching %s (Ctrl+C to stop)\n", cfg.Coast)
	fmt.Println()
	if _, err := os.Stat(cfg.Coast); err == nil {
		redraw()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := &watch.Watcher{
		Path:     cfg.Coast,
		Delay:    watchDelay,
		OnChange: redraw,
		OnError: func(err error) {
			fmt.Printf("Error watching file: %v\n", err)
		},
	}
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Printf("Error watching file: %v\n", err)
		return
	}
	fmt.Println()
}
