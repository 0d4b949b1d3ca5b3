package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/analysis"
)

var (
	statsEvery  int
	statsTol    float64
	statsChart  string
	statsWidth  int
	statsHeight int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise how a coastline changed over a model run",
	Long: `Print the length, mean position, trend and beach area of every n-th
output step, and report whether the coast has reached a steady length.

Use --chart to plot one metric against output step in the terminal:
  length, nodes, mean_x, mean_y, trend, area

Examples:
  goshore stats --coast Spit.xy --every 20
  goshore stats --coast Beach.xy --cliff Cliff.xy --chart area`,
	Run: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addRunFlags(statsCmd)

	statsCmd.Flags().IntVar(&statsEvery, "every", 10, "Print every n-th output step")
	statsCmd.Flags().Float64Var(&statsTol, "tolerance", 0.001, "Steady-state tolerance on the relative length change")
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Plot this metric in the terminal")
	statsCmd.Flags().IntVar(&statsWidth, "chart-width", 60, "Chart width in columns")
	statsCmd.Flags().IntVar(&statsHeight, "chart-height", 12, "Chart height in rows")
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}
	if statsEvery < 1 {
		fmt.Printf("Error: --every must be at least 1, got %d\n", statsEvery)
		return
	}

	run, err := openRun(cfg)
	if err != nil {
		fmt.Printf("Error reading model output: %v\n", err)
		return
	}
	stats, err := analysis.Summarize(run.coast, run.cliff)
	if err != nil {
		fmt.Printf("Error summarising run: %v\n", err)
		return
	}

	run.printHeader("COASTLINE STATISTICS")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Step\tTime (yr)\tNodes\tLength (m)\tMean X (m)\tMean Y (m)\tTrend (°)\t")
	if run.cliff != nil {
		fmt.Fprintf(w, "Beach (m²)\t")
	}
	fmt.Fprintln(w)
	for i, s := range stats {
		if i%statsEvery != 0 && i != len(stats)-1 {
			continue
		}
		fmt.Fprintf(w, "  %d\t%.1f\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t", i, s.Time, s.Nodes, s.Length, s.MeanX, s.MeanY, s.Trend)
		if run.cliff != nil {
			fmt.Fprintf(w, "%.0f\t", s.BeachArea)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()

	steady, change := analysis.SteadyState(stats, statsTol)
	switch {
	case len(stats) < 2:
		fmt.Println("  Steady state:  needs at least two output steps")
	case steady:
		fmt.Printf("  ✓ Steady state: length changed %.4f%% over the last step\n", change*100)
	default:
		fmt.Printf("  ✗ Still evolving: length changed %.4f%% over the last step\n", change*100)
	}
	fmt.Println()

	if statsChart == "" {
		return
	}
	chart, err := analysis.Chart(stats, statsChart, statsWidth, statsHeight)
	if err != nil {
		fmt.Printf("Error drawing chart: %v\n", err)
		return
	}
	fmt.Println(chart)
	fmt.Println()
}
