package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshore/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goshore",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goshore %s\n", version.String())
		fmt.Println("Coastline Evolution Plotter")
		fmt.Println("Reads .xy output from the COVE coastline evolution model")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
