package diagram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goshore/internal/waves"
)

// RosePlot implements plot.Plotter for a wave rose. Each bin is a wedge
// running clockwise from north whose radius is proportional to its weight.
type RosePlot struct {
	*waves.Rose

	Fill      color.Color
	LineStyle draw.LineStyle
	TextStyle text.Style
}

var _ plot.Plotter = (*RosePlot)(nil)

// NewRose returns a rose with white wedges and black edges
func NewRose(r *waves.Rose) *RosePlot {
	return &RosePlot{
		Rose: r,
		Fill: color.White,
		LineStyle: draw.LineStyle{
			Color: color.Black,
			Width: vg.Points(0.5),
		},
		TextStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(8)),
			Handler: plot.DefaultTextHandler,
		},
	}
}

// Plot implements the plot.Plotter interface
func (r *RosePlot) Plot(c draw.Canvas, _ *plot.Plot) {
	r.draw(c)
}

// DataRange implements plot.DataRanger so a rose can stand alone on a plot
func (r *RosePlot) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -1, 1, -1, 1
}

// arcStep is the angular resolution of wedge outlines in degrees
const arcStep = 2.0

func (r *RosePlot) draw(c draw.Canvas) {
	if r.Rose == nil {
		return
	}
	peak := r.Max()
	if peak <= 0 {
		return
	}

	centre := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y) / 2

	for i, w := range r.Weights {
		if w <= 0 {
			continue
		}
		pts := wedge(centre, radius*vg.Length(w/peak), r.Starts[i], r.Width)
		c.FillPolygon(r.Fill, pts)
		c.StrokeLines(r.LineStyle, append(pts, pts[0]))
	}

	if r.Note != "" {
		sty := r.TextStyle
		sty.XAlign = draw.XLeft
		sty.YAlign = draw.YCenter
		c.FillText(sty, vg.Point{X: centre.X + radius + vg.Points(4), Y: centre.Y}, r.Note)
	}
}

// wedge returns the outline of a sector from compass bearing start through
// width degrees, beginning and ending at the centre
func wedge(centre vg.Point, radius vg.Length, start, width float64) []vg.Point {
	n := int(math.Ceil(width / arcStep))
	if n < 1 {
		n = 1
	}

	pts := make([]vg.Point, 0, n+2)
	pts = append(pts, centre)
	for i := 0; i <= n; i++ {
		theta := (start + width*float64(i)/float64(n)) * math.Pi / 180
		pts = append(pts, vg.Point{
			X: centre.X + radius*vg.Length(math.Sin(theta)),
			Y: centre.Y + radius*vg.Length(math.Cos(theta)),
		})
	}
	return pts
}

// RoseFigure draws a rose on its own, without axes
func RoseFigure(r *waves.Rose, title string) *Figure {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(NewRose(r))
	return &Figure{Plot: p}
}
