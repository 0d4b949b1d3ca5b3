package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
)

var evolutionTimes []float64

var evolutionCmd = &cobra.Command{
	Use:   "evolution",
	Short: "Overlay the initial, intermediate and final coastlines",
	Long: `Draw how a coastline evolved: the initial nodes dotted, the coastlines
nearest each requested time dashed, and the final coastline solid with its
nodes marked. The boundary segments held by the model are drawn bold.

Examples:
  goshore evolution --coast Cuspate.xy --times 100,200,300 -o cuspate.png
  goshore evolution -c run.yaml --waves gaussian --wave-mean 245 --wave-std 15`,
	Run: runEvolution,
}

func init() {
	rootCmd.AddCommand(evolutionCmd)
	addRunFlags(evolutionCmd)

	evolutionCmd.Flags().Float64SliceVar(&evolutionTimes, "times", nil, "Model times of intermediate coastlines (years)")
}

func runEvolution(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}
	if cmd.Flags().Changed("times") {
		cfg.Evolution.Times = evolutionTimes
	}

	run, err := openRun(cfg)
	if err != nil {
		fmt.Printf("Error reading model output: %v\n", err)
		return
	}

	last := run.coast.Len() - 1
	shown := []int{0, last}
	var intermediate []shore.Line

	run.printHeader("COASTLINE EVOLUTION")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Requested\tStep\tTime (years)\n")
	fmt.Fprintf(w, "  ─────────\t────\t────────────\n")
	for _, t := range cfg.Evolution.Times {
		i := run.coast.Nearest(t)
		shown = append(shown, i)
		intermediate = append(intermediate, run.coastAt(i))
		fmt.Fprintf(w, "  %.1f\t%d\t%.1f\n", t, i, run.coast.Snapshots[i].Time)
	}
	w.Flush()
	fmt.Println()

	data := diagram.EvolutionData{
		Initial:      run.coastAt(0),
		Intermediate: intermediate,
		Final:        run.coastAt(last),
		Sea:          cfg.Side(),
		Style:        run.style(),
	}
	build := func(e shore.Extent) (*diagram.Figure, error) {
		data.Extent = e
		return diagram.Evolution(data)
	}
	ext, err := run.fit(run.extent(shown...), build)
	if err != nil {
		fmt.Printf("Error sizing evolution: %v\n", err)
		return
	}
	fig, err := build(ext)
	if err != nil {
		fmt.Printf("Error drawing evolution: %v\n", err)
		return
	}

	out := figureName(cfg, "evolution")
	if err := fig.Save(out, run.page()); err != nil {
		fmt.Printf("Error saving figure: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Figure saved to: %s\n", out)
	fmt.Println()
}
