package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/generate"
	"github.com/alexiusacademia/goshore/internal/xy"
)

var (
	straightNodes   int
	straightSpacing float64
	straightInland  int
	straightJitter  float64
)

var generateStraightCmd = &cobra.Command{
	Use:   "straight",
	Short: "Straight coast with estuary reaches at each end",
	Long: `Generate a straight, south-running coast. The first and last reaches
run east-west like estuary banks so the open coast is held between them.

Examples:
  goshore generate straight
  goshore generate straight -o Straight.xy --nodes 200 --spacing 50 --seed 1f`,
	Run: runGenerateStraight,
}

func init() {
	generateCmd.AddCommand(generateStraightCmd)

	d := generate.DefaultStraight()
	generateStraightCmd.Flags().IntVar(&straightNodes, "nodes", d.Nodes, "Number of nodes")
	generateStraightCmd.Flags().Float64Var(&straightSpacing, "spacing", d.Spacing, "Node spacing (m)")
	generateStraightCmd.Flags().IntVar(&straightInland, "inland", d.Inland, "Nodes in each estuary reach")
	generateStraightCmd.Flags().Float64Var(&straightJitter, "jitter", d.Jitter, "Random node displacement (m)")
}

func runGenerateStraight(cmd *cobra.Command, args []string) {
	s, out, err := generateSeedAndOutput("Straight")
	if err != nil {
		fmt.Printf("Error reading seed: %v\n", err)
		return
	}

	g := generate.Straight{Nodes: straightNodes, Spacing: straightSpacing, Inland: straightInland, Jitter: straightJitter}
	l, err := g.Line(s.Rand(0))
	if err != nil {
		fmt.Printf("Error generating coast: %v\n", err)
		return
	}
	if err := writeCoast("STRAIGHT COAST", out, l, boundaryOr(xy.Fixed), s); err != nil {
		fmt.Printf("Error writing coast: %v\n", err)
		return
	}
	previewCoast(l, nil)
}
