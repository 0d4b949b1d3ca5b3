package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/generate"
	"github.com/alexiusacademia/goshore/internal/xy"
)

var (
	cuspateNodes       int
	cuspateSpacing     float64
	cuspateTrend       float64
	cuspateAmplitude   float64
	cuspateStdDev      float64
	cuspateBeachWidth  float64
	cuspateJitter      float64
	cuspateCliffOutput string
)

var generateCuspateCmd = &cobra.Command{
	Use:   "cuspate",
	Short: "Straight coast with a Gaussian bump, optionally cliffed",
	Long: `Generate a straight coast with a Gaussian bump half way along, the
seed for cuspate foreland growth.

With --beach-width (zero included) or --cliff-output the coast is backed
by a straight cliffline that far landward, written to --cliff-output (by
default <output>_cliff.xy).

Examples:
  goshore generate cuspate -o Cuspate.xy
  goshore generate cuspate -o Beach.xy --beach-width 0
  goshore generate cuspate -o Beach.xy --nodes 51 --spacing 100 --amplitude 100 --sigma 100 --beach-width 20`,
	Run: runGenerateCuspate,
}

func init() {
	generateCmd.AddCommand(generateCuspateCmd)

	d := generate.DefaultCuspate()
	generateCuspateCmd.Flags().IntVar(&cuspateNodes, "nodes", d.Nodes, "Number of nodes")
	generateCuspateCmd.Flags().Float64Var(&cuspateSpacing, "spacing", d.Spacing, "Node spacing (m)")
	generateCuspateCmd.Flags().Float64Var(&cuspateTrend, "trend", d.Trend, "Coast azimuth (degrees)")
	generateCuspateCmd.Flags().Float64Var(&cuspateAmplitude, "amplitude", d.Amplitude, "Bump height (m)")
	generateCuspateCmd.Flags().Float64Var(&cuspateStdDev, "sigma", d.StdDev, "Bump standard deviation (m)")
	generateCuspateCmd.Flags().Float64Var(&cuspateBeachWidth, "beach-width", 0, "Beach width in front of the cliffline (m)")
	generateCuspateCmd.Flags().Float64Var(&cuspateJitter, "jitter", d.Jitter, "Random beach node displacement (m)")
	generateCuspateCmd.Flags().StringVar(&cuspateCliffOutput, "cliff-output", "", "Cliffline .xy file")
}

func runGenerateCuspate(cmd *cobra.Command, args []string) {
	s, out, err := generateSeedAndOutput("Cuspate")
	if err != nil {
		fmt.Printf("Error reading seed: %v\n", err)
		return
	}

	g := generate.Cuspate{
		Nodes:      cuspateNodes,
		Spacing:    cuspateSpacing,
		Trend:      cuspateTrend,
		Amplitude:  cuspateAmplitude,
		StdDev:     cuspateStdDev,
		BeachWidth: cuspateBeachWidth,
		Jitter:     cuspateJitter,
	}
	beach, cliff, err := g.Lines(s.Rand(0))
	if err != nil {
		fmt.Printf("Error generating coast: %v\n", err)
		return
	}

	boundary := boundaryOr(xy.Periodic)
	if err := writeCoast("CUSPATE COAST", out, beach, boundary, s); err != nil {
		fmt.Printf("Error writing coast: %v\n", err)
		return
	}
	if !cmd.Flags().Changed("beach-width") && cuspateCliffOutput == "" {
		previewCoast(beach, nil)
		return
	}

	cliffOut := cuspateCliffOutput
	if cliffOut == "" {
		cliffOut = cliffName(out)
	}
	if err := writeCoast("CLIFFLINE", cliffOut, cliff, boundary, s); err != nil {
		fmt.Printf("Error writing cliffline: %v\n", err)
		return
	}
	previewCoast(beach, cliff)
}

// cliffName derives the cliffline file name from the beach file name
func cliffName(beach string) string {
	return strings.TrimSuffix(beach, filepath.Ext(beach)) + "_cliff.xy"
}
