package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/goshore/internal/shore"
)

// Preview cell characters
const (
	seaCell   = '~'
	beachCell = '.'
	landCell  = '#'
	nodeCell  = '*'
)

// DrawASCIIFrame renders a snapshot as a cols x rows character map of the
// sea, beach and land regions with the coast and cliff nodes marked
func DrawASCIIFrame(d FrameData, cols, rows int) string {
	if cols < 2 || rows < 2 || d.Extent.Width() <= 0 || d.Extent.Height() <= 0 {
		return ""
	}

	r := shore.BuildRegions(d.Coast, d.Cliff, d.Extent, d.Sea)
	dx := d.Extent.Width() / float64(cols)
	dy := d.Extent.Height() / float64(rows)

	grid := make([][]rune, rows)
	for row := range grid {
		grid[row] = make([]rune, cols)
		y := d.Extent.YMax - (float64(row)+0.5)*dy
		for col := range grid[row] {
			pt := shore.Point{X: d.Extent.XMin + (float64(col)+0.5)*dx, Y: y}
			switch {
			case shore.Contains(r.Sea, pt):
				grid[row][col] = seaCell
			case shore.Contains(r.Land, pt):
				grid[row][col] = landCell
			case shore.Contains(r.Beach, pt):
				grid[row][col] = beachCell
			default:
				grid[row][col] = ' '
			}
		}
	}

	for _, l := range []shore.Line{d.Coast, d.Cliff} {
		for _, p := range l {
			// Nodes on the right or bottom edge belong to the last cell
			col := min(int((p.X-d.Extent.XMin)/dx), cols-1)
			row := min(int((d.Extent.YMax-p.Y)/dy), rows-1)
			if p.X >= d.Extent.XMin && p.Y <= d.Extent.YMax && p.X <= d.Extent.XMax && p.Y >= d.Extent.YMin {
				grid[row][col] = nodeCell
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  %c sea   %c beach   %c land   %c node\n", seaCell, beachCell, landCell, nodeCell))
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	border := strings.Repeat("═", width+4)
	pad := func(s string) string {
		return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
	}

	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
