package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goshore/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goshore",
	Short: "Coastline evolution plotting tool",
	Long: `goshore - Go Coastline Evolution Plotter

A CLI tool for visualising the output of a coastline evolution model.
The model writes .xy files holding the coastline (and cliffline) at each
output step; goshore turns them into figures and animations.

This tool helps coastal modellers:
  - Render animation frames with sea, beach and land shading
  - Draw evolution and still figures of a whole run
  - Debug node geometry and wave shadowing
  - Compare runs with Hsu & Evans equilibrium bays
  - Generate initial coastlines for new runs
  - Watch a running model and preview steps in the terminal

Run parameters come from flags or a YAML run file (--config).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goshore v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Coastline Evolution Plotter                          ║")
		fmt.Printf("  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for visualising coastline evolution model output.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Animation frames and GIFs from .xy time series")
		fmt.Println("    • Sea, beach and land shading with cliffed coasts")
		fmt.Println("    • Wave climate roses (Gaussian, bimodal, U/A, recorded)")
		fmt.Println("    • Hsu & Evans static equilibrium bays")
		fmt.Println("    • Initial coastline generators")
		fmt.Println("    • Live redraw and terminal previews of running models")
		fmt.Println()
		fmt.Println("  Use 'goshore --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
