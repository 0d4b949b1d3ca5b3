package diagram

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/waves"
)

// Region fill colours
var (
	SeaColor   = color.RGBA{R: 179, G: 230, B: 255, A: 255}
	BeachColor = color.RGBA{R: 255, G: 230, B: 153, A: 255}
	LandColor  = color.RGBA{R: 153, G: 230, B: 153, A: 255}
)

var (
	dashed = []vg.Length{vg.Points(5), vg.Points(3)}
	dotted = []vg.Length{vg.Points(1), vg.Points(2)}
	grey   = color.Gray{Y: 128}
)

// Style holds the settings shared by all map figures
type Style struct {
	Title string

	// Custom tick positions; empty means automatic
	XTicks []float64
	YTicks []float64
	// RotateY turns the y tick labels to run along the axis
	RotateY bool

	// Time label position as fractions of the extent from its lower left
	LabelX float64
	LabelY float64

	Rose  *waves.Rose
	Inset Rect
}

func newPlot(s Style) *plot.Plot {
	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "X [m]"
	p.Y.Label.Text = "Y [m]"

	if len(s.XTicks) > 0 {
		p.X.Tick.Marker = constantTicks(s.XTicks)
	}
	if len(s.YTicks) > 0 {
		p.Y.Tick.Marker = constantTicks(s.YTicks)
	}
	if s.RotateY {
		p.Y.Tick.Label.Rotation = math.Pi / 2
		p.Y.Tick.Label.XAlign = draw.XCenter
		p.Y.Tick.Label.YAlign = draw.YBottom
	}
	return p
}

func constantTicks(values []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return ticks
}

// limit fixes the axes to the extent. Plotters added earlier may have
// widened the ranges.
func limit(p *plot.Plot, ext shore.Extent) {
	p.X.Min, p.X.Max = ext.XMin, ext.XMax
	p.Y.Min, p.Y.Max = ext.YMin, ext.YMax
}

func figure(p *plot.Plot, s Style) *Figure {
	return &Figure{Plot: p, Rose: s.Rose, Inset: s.Inset}
}

func xys[T ~[]shore.Point](pts T) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return out
}

func fill(p *plot.Plot, poly shore.Polygon, c color.Color) error {
	if len(poly) < 3 {
		return nil
	}
	pg, err := plotter.NewPolygon(xys(poly))
	if err != nil {
		return err
	}
	pg.Color = c
	pg.LineStyle.Width = 0
	p.Add(pg)
	return nil
}

func regions(p *plot.Plot, r shore.Regions) error {
	if err := fill(p, r.Sea, SeaColor); err != nil {
		return err
	}
	if err := fill(p, r.Beach, BeachColor); err != nil {
		return err
	}
	return fill(p, r.Land, LandColor)
}

func line(l shore.Line, c color.Color, width vg.Length, dashes []vg.Length) (*plotter.Line, error) {
	ln, err := plotter.NewLine(xys(l))
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Color = c
	ln.LineStyle.Width = width
	ln.LineStyle.Dashes = dashes
	return ln, nil
}

func addLine(p *plot.Plot, l shore.Line, c color.Color, width vg.Length, dashes []vg.Length) error {
	if len(l) < 2 {
		return nil
	}
	ln, err := line(l, c, width, dashes)
	if err != nil {
		return err
	}
	p.Add(ln)
	return nil
}

// timeLabel writes "<t> years" at the style's label position
func timeLabel(p *plot.Plot, t float64, ext shore.Extent, s Style) error {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{
			X: ext.XMin + s.LabelX*ext.Width(),
			Y: ext.YMin + s.LabelY*ext.Height(),
		}},
		Labels: []string{strconv.FormatFloat(t, 'f', 1, 64) + " years"},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)
	return nil
}
