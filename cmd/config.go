package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/atomicfile"
)

var configWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved run file",
	Long: `Print the run settings that the figure commands would use, after the
defaults, the run file (--config) and any flags are combined. The output is
a valid run file, so it is a quick way to start one.

Examples:
  goshore config > run.yaml
  goshore config --coast Spit.xy --sea west --waves gaussian --wave-std 15 --write run.yaml
  goshore config -c run.yaml --format pdf`,
	Run: runConfigCmd,
}

func init() {
	rootCmd.AddCommand(configCmd)
	addRunFlags(configCmd)

	configCmd.Flags().StringVar(&configWrite, "write", "", "Write the run file here instead of stdout")
}

func runConfigCmd(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	if configWrite == "" {
		if err := cfg.Save(os.Stdout); err != nil {
			fmt.Printf("Error writing configuration: %v\n", err)
		}
		return
	}
	if err := atomicfile.Write(configWrite, func(w io.Writer) error { return cfg.Save(w) }); err != nil {
		fmt.Printf("Error writing configuration: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Run file saved to: %s\n", configWrite)
}
