package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/animate"
)

var (
	gifOutput string
	gifFPS    int
	gifWidth  int
)

var gifCmd = &cobra.Command{
	Use:   "gif <filelist.txt>",
	Short: "Assemble rendered frames into an animated GIF",
	Long: `Assemble the frames listed in a filelist.txt written by 'goshore frames'
into an animated GIF, without rendering them again.

Examples:
  goshore gif frames/filelist.txt -o spit.gif
  goshore gif frames/filelist.txt -o spit.gif --fps 20 --width 600`,
	Args: cobra.ExactArgs(1),
	Run:  runGIF,
}

func init() {
	rootCmd.AddCommand(gifCmd)

	gifCmd.Flags().StringVarP(&gifOutput, "output", "o", "animation.gif", "Output GIF file")
	gifCmd.Flags().IntVar(&gifFPS, "fps", 10, "Frames per second")
	gifCmd.Flags().IntVar(&gifWidth, "width", 800, "GIF width in pixels (0 = frame width)")
}

func runGIF(cmd *cobra.Command, args []string) {
	paths, err := animate.ReadFileList(args[0])
	if err != nil {
		fmt.Printf("Error reading frame list: %v\n", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println()
	fmt.Printf("  Assembling %d frames from %s\n", len(paths), args[0])
	if err := animate.Assemble(ctx, paths, gifOutput, gifFPS, gifWidth); err != nil {
		fmt.Printf("Error assembling GIF: %v\n", err)
		return
	}
	fmt.Printf("  ✓ Animation: %s\n", gifOutput)
	fmt.Println()
}
