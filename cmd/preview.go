package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/diagram"
)

var (
	previewStep int
	previewCols int
	previewRows int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show one output step in the terminal",
	Long: `Draw one output step of a model run as a character map:
  ~ sea   . beach   # land   * nodes

The map uses the same extent, transform and sea side as the figures, so it
is a quick way to check options before rendering frames.

Examples:
  goshore preview --coast Spit.xy
  goshore preview --coast Beach.xy --cliff Cliff.xy --step 0 --cols 100`,
	Run: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addRunFlags(previewCmd)

	previewCmd.Flags().IntVar(&previewStep, "step", -1, "Output step to show (-1 = last)")
	previewCmd.Flags().IntVar(&previewCols, "cols", 72, "Map width in characters")
	previewCmd.Flags().IntVar(&previewRows, "rows", 32, "Map height in characters")
}

func runPreview(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}
	run, err := openRun(cfg)
	if err != nil {
		fmt.Printf("Error reading model output: %v\n", err)
		return
	}

	step := previewStep
	if step < 0 {
		step = run.coast.Len() - 1
	}
	if step >= run.coast.Len() {
		fmt.Printf("Error: step %d out of range (run has %d steps)\n", step, run.coast.Len())
		return
	}

	d := run.frame(step, run.extent(step))
	m := diagram.DrawASCIIFrame(d, previewCols, previewRows)
	if m == "" {
		fmt.Println("Error: nothing to draw (empty extent or map too small)")
		return
	}

	fmt.Println()
	fmt.Print(m)
	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("STEP %d", step), []string{
		fmt.Sprintf("Time:      %.1f years", d.Time),
		fmt.Sprintf("Nodes:     %d", len(d.Coast)),
		fmt.Sprintf("Sea side:  %s", cfg.Side()),
		fmt.Sprintf("Extent:    x %.0f to %.0f m", d.Extent.XMin, d.Extent.XMax),
		fmt.Sprintf("           y %.0f to %.0f m", d.Extent.YMin, d.Extent.YMax),
	}))
}
