package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/xy"
)

var (
	nodesStep    int
	nodesCells   string
	nodesShadows string
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "Plot numbered nodes for debugging model geometry",
	Long: `Plot the coastline (and cliffline) nodes of one output step with their
indices, optionally over the model's shoreface cells.

With --shadows the coastline is read from a shadow dump (columns X, Y and
shadow code) and each node is marked by its code:
  1 large black, 2 red, 3 green, 4 blue.

Examples:
  goshore nodes --coast Spit.xy --step 40 -o nodes.png
  goshore nodes --coast Spit.xy --cliff Spit.cliff --cells Nodes.txt
  goshore nodes --shadows Shadows.txt -o shadows.png`,
	Run: runNodes,
}

func init() {
	rootCmd.AddCommand(nodesCmd)
	addRunFlags(nodesCmd)

	nodesCmd.Flags().IntVar(&nodesStep, "step", -1, "Output step to plot (-1 = last)")
	nodesCmd.Flags().StringVar(&nodesCells, "cells", "", "Shoreface cell file (id n x0 y0 ...)")
	nodesCmd.Flags().StringVar(&nodesShadows, "shadows", "", "Shadow dump with X, Y and code columns")
}

func runNodes(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	data := diagram.NodesData{}
	tf := cfg.ShoreTransform()
	var raw shore.Line

	if nodesShadows != "" {
		cols, err := xy.ReadColumns(nodesShadows, 0)
		if err != nil {
			fmt.Printf("Error reading shadows: %v\n", err)
			return
		}
		if len(cols) < 3 {
			fmt.Printf("Error reading shadows: expected X, Y and code columns, found %d\n", len(cols))
			return
		}
		raw, _ = shore.FromXY(cols[0], cols[1])
		data.Coast = tf.Apply(raw)
		data.Shadows = make([]int, len(cols[2]))
		for i, c := range cols[2] {
			data.Shadows[i] = int(c)
		}
		data.Title = "Wave shadows"
	} else {
		run, err := openRun(cfg)
		if err != nil {
			fmt.Printf("Error reading model output: %v\n", err)
			return
		}
		step := nodesStep
		if step < 0 {
			step = run.coast.Len() - 1
		}
		if step >= run.coast.Len() {
			fmt.Printf("Error: step %d out of range (run has %d steps)\n", step, run.coast.Len())
			return
		}
		snap := run.coast.Snapshots[step]
		raw, _ = shore.FromXY(snap.X, snap.Y)
		data.Coast = run.coastAt(step)
		data.Cliff = run.cliffAt(step)
		data.Title = fmt.Sprintf("Step %d, %.1f years", step, run.coast.Snapshots[step].Time)
	}

	if nodesCells != "" {
		cells, err := xy.ReadCells(nodesCells)
		if err != nil {
			fmt.Printf("Error reading cells: %v\n", err)
			return
		}
		data.Cells = moveCells(cells, tf, raw)
	}

	fig, err := diagram.Nodes(data)
	if err != nil {
		fmt.Printf("Error drawing nodes: %v\n", err)
		return
	}
	out := figureName(cfg, "nodes")
	if err := fig.Save(out, diagram.Page{Width: cfg.Figure.Width, Height: cfg.Figure.Height, DPI: cfg.Figure.DPI}); err != nil {
		fmt.Printf("Error saving figure: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println(diagram.DrawSummaryBox("NODE DEBUG PLOT", []string{
		fmt.Sprintf("Coast nodes:  %d", len(data.Coast)),
		fmt.Sprintf("Cliff nodes:  %d", len(data.Cliff)),
		fmt.Sprintf("Cells:        %d", len(data.Cells)),
		fmt.Sprintf("Saved to:     %s", out),
	}))
}

// moveCells rotates the cells like the coast and shifts them by the coast's
// anchor offset, not by their own first node
func moveCells(cells []xy.Cell, tf shore.Transform, coast shore.Line) []shore.Polygon {
	rotate := shore.Transform{Rotate: tf.Rotate}
	var shift shore.Point
	if len(coast) > 0 {
		ref := rotate.Apply(coast[:1])[0]
		if tf.AnchorX {
			shift.X = ref.X
		}
		if tf.AnchorY {
			shift.Y = ref.Y
		}
	}

	out := make([]shore.Polygon, 0, len(cells))
	for _, c := range cells {
		l, _ := shore.FromXY(c.X, c.Y)
		l = rotate.Apply(l)
		for i := range l {
			l[i].X -= shift.X
			l[i].Y -= shift.Y
		}
		out = append(out, shore.Polygon(l))
	}
	return out
}
