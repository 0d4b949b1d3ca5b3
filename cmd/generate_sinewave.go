package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/generate"
	"github.com/alexiusacademia/goshore/internal/xy"
)

var (
	sineNodes      int
	sineSpacing    float64
	sineAmplitude  float64
	sineWavelength float64
	sineJitter     float64
)

var generateSineCmd = &cobra.Command{
	Use:   "sinewave",
	Short: "Sinusoidal coast for testing symmetric behaviour",
	Long: `Generate a south-running coast whose cross-shore position follows a
sine wave. Under a symmetric wave climate the bumps should diffuse evenly.

Examples:
  goshore generate sinewave
  goshore generate sinewave -o Sine.xy --amplitude 200 --wavelength 2500`,
	Run: runGenerateSine,
}

func init() {
	generateCmd.AddCommand(generateSineCmd)

	d := generate.DefaultSine()
	generateSineCmd.Flags().IntVar(&sineNodes, "nodes", d.Nodes, "Number of nodes")
	generateSineCmd.Flags().Float64Var(&sineSpacing, "spacing", d.Spacing, "Node spacing (m)")
	generateSineCmd.Flags().Float64Var(&sineAmplitude, "amplitude", d.Amplitude, "Cross-shore step amplitude (m)")
	generateSineCmd.Flags().Float64Var(&sineWavelength, "wavelength", d.Wavelength, "Alongshore wavelength (m)")
	generateSineCmd.Flags().Float64Var(&sineJitter, "jitter", d.Jitter, "Random node displacement (m)")
}

func runGenerateSine(cmd *cobra.Command, args []string) {
	s, out, err := generateSeedAndOutput("Sine")
	if err != nil {
		fmt.Printf("Error reading seed: %v\n", err)
		return
	}

	g := generate.Sine{Nodes: sineNodes, Spacing: sineSpacing, Amplitude: sineAmplitude, Wavelength: sineWavelength, Jitter: sineJitter}
	l, err := g.Line(s.Rand(0))
	if err != nil {
		fmt.Printf("Error generating coast: %v\n", err)
		return
	}
	if err := writeCoast("SINE-WAVE COAST", out, l, boundaryOr(xy.Periodic), s); err != nil {
		fmt.Printf("Error writing coast: %v\n", err)
		return
	}
	previewCoast(l, nil)
}
