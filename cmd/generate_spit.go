package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/generate"
	"github.com/alexiusacademia/goshore/internal/xy"
)

var (
	spitNodes   int
	spitSpacing float64
	spitTrend   float64
	spitAngle   float64
	spitJitter  float64
)

var generateSpitCmd = &cobra.Command{
	Use:   "spit",
	Short: "Coast with a right-angle turn for growing spits",
	Long: `Generate a coast whose first half runs along --trend and whose second
half turns through --angle degrees. Waves driving transport round the
corner grow a spit from it.

Examples:
  goshore generate spit
  goshore generate spit -o Spit.xy --trend 120 --angle 75`,
	Run: runGenerateSpit,
}

func init() {
	generateCmd.AddCommand(generateSpitCmd)

	d := generate.DefaultRightAngle()
	generateSpitCmd.Flags().IntVar(&spitNodes, "nodes", d.Nodes, "Number of nodes")
	generateSpitCmd.Flags().Float64Var(&spitSpacing, "spacing", d.Spacing, "Node spacing (m)")
	generateSpitCmd.Flags().Float64Var(&spitTrend, "trend", d.Trend, "Azimuth of the first reach (degrees)")
	generateSpitCmd.Flags().Float64Var(&spitAngle, "angle", d.Angle, "Turn at the corner (degrees)")
	generateSpitCmd.Flags().Float64Var(&spitJitter, "jitter", d.Jitter, "Random node displacement (m)")
}

func runGenerateSpit(cmd *cobra.Command, args []string) {
	s, out, err := generateSeedAndOutput("Spit")
	if err != nil {
		fmt.Printf("Error reading seed: %v\n", err)
		return
	}

	g := generate.RightAngle{Nodes: spitNodes, Spacing: spitSpacing, Trend: spitTrend, Angle: spitAngle, Jitter: spitJitter}
	l, err := g.Line(s.Rand(0))
	if err != nil {
		fmt.Printf("Error generating coast: %v\n", err)
		return
	}
	if err := writeCoast("RIGHT-ANGLE COAST", out, l, boundaryOr(xy.Fixed), s); err != nil {
		fmt.Printf("Error writing coast: %v\n", err)
		return
	}
	previewCoast(l, nil)
}
