package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/bay"
	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/xy"
)

var (
	bayOrientation float64
	bayLength      float64
	bayBeta        float64
	bayStep        float64
	bayWaveDir     float64
	bayCoast       string
	bayOutput      string
)

var bayCmd = &cobra.Command{
	Use:   "bay",
	Short: "Model a static equilibrium bay (Hsu & Evans)",
	Long: `Compute the parabolic static equilibrium bay shape of Hsu & Evans (1989)
behind a control line, or fit it to the final coastline of a model run.

Without --coast the bay is built from the control line orientation, length
and wave obliquity β. With --coast the control line runs from the second to
the second-last node of the final coastline, and β follows from --wave-dir.

Examples:
  goshore bay --orientation 180 --length 1000 --beta 30 -o bay.png
  goshore bay --coast Bay.xy --wave-dir 45 -o bay_fit.png`,
	Run: runBay,
}

func init() {
	rootCmd.AddCommand(bayCmd)

	bayCmd.Flags().Float64Var(&bayOrientation, "orientation", 180, "Control line azimuth (degrees)")
	bayCmd.Flags().Float64Var(&bayLength, "length", 1000, "Control line length (m)")
	bayCmd.Flags().Float64Var(&bayBeta, "beta", 30, "Wave obliquity to the control line (degrees)")
	bayCmd.Flags().Float64Var(&bayStep, "step", 5, "Angle increment along the bay (degrees)")

	bayCmd.Flags().StringVar(&bayCoast, "coast", "", "Fit the bay to the final coastline of this .xy file")
	bayCmd.Flags().Float64Var(&bayWaveDir, "wave-dir", 45, "Offshore wave direction for fitting (degrees)")

	bayCmd.Flags().StringVarP(&bayOutput, "output", "o", "", "Export figure to file (png, svg, pdf)")
}

func runBay(cmd *cobra.Command, args []string) {
	var data diagram.BayData

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STATIC EQUILIBRIUM BAY - HSU & EVANS (1989)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if bayCoast == "" {
		res, err := bay.Model(shore.Point{}, bayOrientation, bayLength, bayBeta, bayStep)
		if err != nil {
			fmt.Printf("Error modelling bay: %v\n", err)
			return
		}
		c0, c1, c2 := bay.Coefficients(bayBeta)

		fmt.Fprintf(w, "  Control line:\t%.1f m at %.1f°\n", res.Length, bayOrientation)
		fmt.Fprintf(w, "  β:\t%.1f°\n", res.Beta)
		fmt.Fprintf(w, "  C0, C1, C2:\t%.3f, %.3f, %.3f\n", c0, c1, c2)
		fmt.Fprintf(w, "  Down-drift point:\t(%.1f, %.1f)\n", res.Down.X, res.Down.Y)
		w.Flush()
		fmt.Println()

		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  θ (°)\tR (m)\tX (m)\tY (m)\n")
		fmt.Fprintf(w, "  ─────\t─────\t─────\t─────\n")
		for i, theta := range res.Theta {
			fmt.Fprintf(w, "  %.1f\t%.1f\t%.1f\t%.1f\n", theta, res.Radius[i], res.Shore[i].X, res.Shore[i].Y)
		}
		w.Flush()

		data = diagram.BayData{
			Title: fmt.Sprintf("Hsu & Evans bay, β = %.1f°", res.Beta),
			Up:    res.Up,
			Down:  res.Down,
			Shore: res.Shore,
		}
	} else {
		s, err := xy.ReadFile(bayCoast)
		if err != nil {
			fmt.Printf("Error reading coastline: %v\n", err)
			return
		}
		last := s.Last()
		coast, _ := shore.FromXY(last.X, last.Y)

		fit, err := bay.Fit(coast, bayWaveDir)
		if err != nil {
			fmt.Printf("Error fitting bay: %v\n", err)
			return
		}

		fmt.Fprintf(w, "  Coastline:\t%s at %.1f years\n", bayCoast, last.Time)
		fmt.Fprintf(w, "  Control line:\t%.1f m at %.1f°\n", fit.Length, fit.Orientation)
		fmt.Fprintf(w, "  β:\t%.1f°\n", fit.Beta)
		if fit.Control >= 0 {
			fmt.Fprintf(w, "  Control point:\tnode %d\n", fit.Control)
		} else {
			fmt.Fprintf(w, "  Control point:\tnone faces the waves\n")
		}
		w.Flush()
		fmt.Println()

		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Node\tθ (°)\tR (m)\tX (m)\tY (m)\n")
		fmt.Fprintf(w, "  ────\t─────\t─────\t─────\t─────\n")
		for i, node := range fit.Nodes {
			fmt.Fprintf(w, "  %d\t%.1f\t%.1f\t%.1f\t%.1f\n", node, fit.Theta[i], fit.Radius[i], fit.Model[i].X, fit.Model[i].Y)
		}
		w.Flush()

		data = diagram.BayData{
			Title: fmt.Sprintf("Model coastline vs Hsu & Evans, β = %.1f°", fit.Beta),
			Coast: coast,
			Up:    coast[1],
			Down:  coast[len(coast)-2],
			Shore: fit.Model,
		}
	}
	fmt.Println()

	if bayOutput == "" {
		return
	}
	fig, err := diagram.Bay(data)
	if err != nil {
		fmt.Printf("Error drawing bay: %v\n", err)
		return
	}
	if err := fig.Save(bayOutput, diagram.DefaultPage); err != nil {
		fmt.Printf("Error saving figure: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Figure saved to: %s\n", bayOutput)
	fmt.Println()
}
