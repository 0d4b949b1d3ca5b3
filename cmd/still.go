package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/config"
	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
)

var stillEvery int

var stillCmd = &cobra.Command{
	Use:   "still",
	Short: "Draw the final coastline over its history",
	Long: `Draw the last output step of a model run with sea, beach and land
shading, over every n-th earlier coastline in grey.

Examples:
  goshore still --coast Spit.xy -o spit_still.png --every 20
  goshore still -c run.yaml --format pdf`,
	Run: runStill,
}

func init() {
	rootCmd.AddCommand(stillCmd)
	addRunFlags(stillCmd)

	stillCmd.Flags().IntVar(&stillEvery, "every", 10, "Draw every n-th historic coastline")
}

// figureName turns the output setting into a single figure file name. A
// name without an extension is treated as a prefix.
func figureName(cfg *config.Config, kind string) string {
	if filepath.Ext(cfg.Output) != "" {
		return cfg.Output
	}
	return fmt.Sprintf("%s_%s.%s", cfg.Output, kind, cfg.Format)
}

func runStill(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}
	if cmd.Flags().Changed("every") {
		cfg.Evolution.Every = stillEvery
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error in still options: %v\n", err)
		return
	}

	run, err := openRun(cfg)
	if err != nil {
		fmt.Printf("Error reading model output: %v\n", err)
		return
	}

	last := run.coast.Len() - 1
	all := make([]int, run.coast.Len())
	for i := range all {
		all[i] = i
	}

	var history []shore.Line
	for i := 0; i < last; i += cfg.Evolution.Every {
		history = append(history, run.coastAt(i))
	}

	data := diagram.StillData{
		Time:    run.coast.Last().Time,
		Coast:   run.coastAt(last),
		Cliff:   run.cliffAt(last),
		History: history,
		Sea:     cfg.Side(),
		Style:   run.style(),
	}
	build := func(e shore.Extent) (*diagram.Figure, error) {
		data.Extent = e
		return diagram.Still(data)
	}
	ext, err := run.fit(run.extent(all...), build)
	if err != nil {
		fmt.Printf("Error sizing still: %v\n", err)
		return
	}
	fig, err := build(ext)
	if err != nil {
		fmt.Printf("Error drawing still: %v\n", err)
		return
	}

	out := figureName(cfg, "still")
	if err := fig.Save(out, run.page()); err != nil {
		fmt.Printf("Error saving figure: %v\n", err)
		return
	}

	run.printHeader("FINAL COASTLINE")
	fmt.Printf("  Historic coastlines:  %d (every %d steps)\n", len(history), cfg.Evolution.Every)
	fmt.Printf("  ✓ Figure saved to: %s\n", out)
	fmt.Println()
}
