package diagram

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goshore/internal/shore"
)

// FrameData holds one snapshot of a model run
type FrameData struct {
	Time  float64
	Coast shore.Line
	Cliff shore.Line // optional

	// Initial coastline, drawn dashed when set
	Initial shore.Line
	// InitialCliff and Fixed mark defended cliff nodes with thick segments
	InitialCliff shore.Line
	Fixed        []bool

	Extent shore.Extent
	Sea    shore.Side
	Style  Style
}

// Frame draws a single snapshot with its sea, beach and land shading
func Frame(d FrameData) (*Figure, error) {
	p := newPlot(d.Style)

	if err := regions(p, shore.BuildRegions(d.Coast, d.Cliff, d.Extent, d.Sea)); err != nil {
		return nil, err
	}
	if err := addLine(p, d.Initial, color.Black, vg.Points(0.75), dashed); err != nil {
		return nil, err
	}
	for _, seg := range fixedSegments(d.InitialCliff, d.Fixed) {
		if err := addLine(p, seg, color.Black, vg.Points(3), nil); err != nil {
			return nil, err
		}
	}
	if err := addLine(p, d.Cliff, color.Black, vg.Points(1), nil); err != nil {
		return nil, err
	}
	if err := addLine(p, d.Coast, color.Black, vg.Points(1), nil); err != nil {
		return nil, err
	}
	if err := timeLabel(p, d.Time, d.Extent, d.Style); err != nil {
		return nil, err
	}

	limit(p, d.Extent)
	return figure(p, d.Style), nil
}

// fixedSegments splits the cliff into runs of consecutive fixed nodes
func fixedSegments(cliff shore.Line, fixed []bool) []shore.Line {
	var segs []shore.Line
	var cur shore.Line
	for i, p := range cliff {
		if i < len(fixed) && fixed[i] {
			cur = append(cur, p)
			continue
		}
		if len(cur) > 1 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	if len(cur) > 1 {
		segs = append(segs, cur)
	}
	return segs
}

// EvolutionData holds the coastlines shown on an evolution figure
type EvolutionData struct {
	Initial      shore.Line
	Intermediate []shore.Line
	Final        shore.Line

	Extent shore.Extent
	Sea    shore.Side
	Style  Style
}

// Evolution overlays the initial, intermediate and final coastlines
func Evolution(d EvolutionData) (*Figure, error) {
	p := newPlot(d.Style)

	if err := regions(p, shore.BuildRegions(d.Final, nil, d.Extent, d.Sea)); err != nil {
		return nil, err
	}

	initial, err := line(d.Initial, color.Black, vg.Points(1), dotted)
	if err != nil {
		return nil, err
	}
	p.Add(initial)
	p.Legend.Add("Initial Coastline", initial)

	for i, l := range d.Intermediate {
		ln, err := line(l, grey, vg.Points(0.75), dashed)
		if err != nil {
			return nil, err
		}
		p.Add(ln)
		if i == 0 {
			p.Legend.Add("Intermediate", ln)
		}
	}

	final, nodes, err := plotter.NewLinePoints(xys(d.Final))
	if err != nil {
		return nil, err
	}
	final.LineStyle.Width = vg.Points(1.5)
	nodes.GlyphStyle.Shape = draw.CircleGlyph{}
	nodes.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(final, nodes)
	p.Legend.Add("Final Coastline", final, nodes)

	// Boundary segments are held by the model's boundary conditions
	if n := len(d.Final); n >= 2 {
		for _, seg := range []shore.Line{d.Final[:2], d.Final[n-2:]} {
			if err := addLine(p, seg, color.Black, vg.Points(3), nil); err != nil {
				return nil, err
			}
		}
	}

	p.Legend.Top = true
	limit(p, d.Extent)
	return figure(p, d.Style), nil
}

// StillData holds the final state and history of a run
type StillData struct {
	Time    float64
	Coast   shore.Line
	Cliff   shore.Line
	History []shore.Line

	Extent shore.Extent
	Sea    shore.Side
	Style  Style
}

// Still draws the final snapshot over faded historic coastlines
func Still(d StillData) (*Figure, error) {
	p := newPlot(d.Style)

	if err := regions(p, shore.BuildRegions(d.Coast, d.Cliff, d.Extent, d.Sea)); err != nil {
		return nil, err
	}
	for _, l := range d.History {
		if err := addLine(p, l, grey, vg.Points(0.5), nil); err != nil {
			return nil, err
		}
	}
	if err := addLine(p, d.Cliff, color.Black, vg.Points(1), nil); err != nil {
		return nil, err
	}
	if err := addLine(p, d.Coast, color.Black, vg.Points(1.5), nil); err != nil {
		return nil, err
	}
	if err := timeLabel(p, d.Time, d.Extent, d.Style); err != nil {
		return nil, err
	}

	limit(p, d.Extent)
	return figure(p, d.Style), nil
}
