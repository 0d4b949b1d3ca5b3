package diagram

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goshore/internal/shore"
)

// NodesData is the input for the node debugging figure
type NodesData struct {
	Title string
	Coast shore.Line
	Cliff shore.Line      // optional
	Cells []shore.Polygon // optional
	// Shadows holds one shadow code per coast node: 1 shadowed, 2-4 the
	// model's other shadow states, anything else unmarked
	Shadows []int
}

var shadowGlyphs = map[int]draw.GlyphStyle{
	1: {Color: color.Black, Radius: vg.Points(5), Shape: draw.CircleGlyph{}},
	2: {Color: color.RGBA{R: 255, A: 255}, Radius: vg.Points(3), Shape: draw.CircleGlyph{}},
	3: {Color: color.RGBA{G: 160, A: 255}, Radius: vg.Points(3), Shape: draw.CircleGlyph{}},
	4: {Color: color.RGBA{B: 255, A: 255}, Radius: vg.Points(3), Shape: draw.CircleGlyph{}},
}

// Nodes draws the coast (and cliff) nodes with their indices for checking
// model geometry
func Nodes(d NodesData) (*Figure, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "X [m]"
	p.Y.Label.Text = "Y [m]"

	for _, cell := range d.Cells {
		if len(cell) < 2 {
			continue
		}
		if err := addLine(p, shore.Line(cell), grey, vg.Points(0.5), nil); err != nil {
			return nil, err
		}
	}

	if len(d.Cliff) > 0 {
		if err := indexed(p, d.Cliff, color.Black, dashed); err != nil {
			return nil, err
		}
	}
	if err := indexed(p, d.Coast, color.RGBA{B: 255, A: 255}, nil); err != nil {
		return nil, err
	}

	for code := 1; code <= len(shadowGlyphs); code++ {
		var pts plotter.XYs
		for i, c := range d.Shadows {
			if c == code && i < len(d.Coast) {
				pts = append(pts, plotter.XY{X: d.Coast[i].X, Y: d.Coast[i].Y})
			}
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle = shadowGlyphs[code]
		p.Add(sc)
	}

	return &Figure{Plot: p}, nil
}

// indexed draws a line with node markers and labels each node with its index
func indexed(p *plot.Plot, l shore.Line, c color.Color, dashes []vg.Length) error {
	ln, pts, err := plotter.NewLinePoints(xys(l))
	if err != nil {
		return err
	}
	ln.LineStyle.Color = c
	ln.LineStyle.Dashes = dashes
	pts.GlyphStyle.Color = c
	pts.GlyphStyle.Radius = vg.Points(1.5)
	pts.GlyphStyle.Shape = draw.CircleGlyph{}

	labels := make([]string, len(l))
	for i := range l {
		labels[i] = strconv.Itoa(i)
	}
	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys(l), Labels: labels})
	if err != nil {
		return err
	}
	lbl.Offset = vg.Point{X: vg.Points(3)}

	p.Add(ln, pts, lbl)
	return nil
}

// BayData is a modelled static equilibrium bay, optionally with the model
// coastline it was fitted to
type BayData struct {
	Title    string
	Coast    shore.Line
	Up, Down shore.Point
	Shore    shore.Line
}

// Bay draws the equilibrium planform and its control line with equal
// scaling on both axes, so the bay shape stays true on the default page
func Bay(d BayData) (*Figure, error) {
	ext := shore.Bounds(d.Coast, d.Shore, shore.Line{d.Up, d.Down})
	ext = ext.Pad(ext.Width()*0.05, ext.Width()*0.05, ext.Height()*0.05, ext.Height()*0.05)

	build := func(e shore.Extent) (*Figure, error) { return bay(d, e) }
	ext, err := EqualExtent(ext, DefaultPage, build)
	if err != nil {
		return nil, err
	}
	return bay(d, ext)
}

func bay(d BayData, ext shore.Extent) (*Figure, error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "X [m]"
	p.Y.Label.Text = "Y [m]"

	if err := addLine(p, d.Coast, color.Black, vg.Points(1), nil); err != nil {
		return nil, err
	}
	if err := addLine(p, shore.Line{d.Up, d.Down}, grey, vg.Points(1), dashed); err != nil {
		return nil, err
	}

	model, pts, err := plotter.NewLinePoints(xys(d.Shore))
	if err != nil {
		return nil, err
	}
	model.LineStyle.Color = color.RGBA{R: 255, A: 255}
	pts.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	pts.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(model, pts)
	p.Legend.Add("Hsu & Evans", model, pts)
	p.Legend.Top = true

	limit(p, ext)
	return &Figure{Plot: p}, nil
}
