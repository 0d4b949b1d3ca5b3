package diagram

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/recorder"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/alexiusacademia/goshore/internal/atomicfile"
	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/waves"
)

// Page is the output size in inches and the raster resolution
type Page struct {
	Width  float64
	Height float64
	DPI    int
}

// DefaultPage is used when a zero Page is given
var DefaultPage = Page{Width: 6, Height: 6, DPI: 150}

func (pg Page) size() (vg.Length, vg.Length) {
	if pg.Width <= 0 || pg.Height <= 0 {
		pg = DefaultPage
	}
	return vg.Length(pg.Width) * vg.Inch, vg.Length(pg.Height) * vg.Inch
}

func (pg Page) dpi() int {
	if pg.DPI <= 0 {
		return DefaultPage.DPI
	}
	return pg.DPI
}

// layout is a page-sized canvas for measuring a plot. Nothing drawn on it
// is kept.
func (pg Page) layout() draw.Canvas {
	w, h := pg.size()
	return draw.Canvas{
		Canvas:    new(recorder.Canvas),
		Rectangle: vg.Rectangle{Max: vg.Point{X: w, Y: h}},
	}
}

// Rect is a rectangle in fractions of the whole figure, from the lower left
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Figure is a plot plus an optional wave rose inset drawn over it
type Figure struct {
	Plot  *plot.Plot
	Rose  *waves.Rose
	Inset Rect
}

// Draw renders the figure onto c
func (f *Figure) Draw(c draw.Canvas) {
	f.Plot.Draw(c)
	if f.Rose == nil || f.Inset.Width <= 0 || f.Inset.Height <= 0 {
		return
	}

	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	inset := c
	inset.Rectangle = vg.Rectangle{
		Min: vg.Point{X: c.Min.X + vg.Length(f.Inset.X)*w, Y: c.Min.Y + vg.Length(f.Inset.Y)*h},
		Max: vg.Point{X: c.Min.X + vg.Length(f.Inset.X+f.Inset.Width)*w, Y: c.Min.Y + vg.Length(f.Inset.Y+f.Inset.Height)*h},
	}

	rp := NewRose(f.Rose)
	rp.TextStyle = f.Plot.X.Tick.Label
	rp.draw(inset)
}

// DataArea is the size of the plot's data area once the title, axes and
// glyph padding have taken their share of the page
func (f *Figure) DataArea(pg Page) (width, height vg.Length) {
	dc := f.Plot.DataCanvas(pg.layout())
	return dc.Max.X - dc.Min.X, dc.Max.Y - dc.Min.Y
}

// equalPasses bounds the re-measuring in EqualExtent. Tick labels settle
// after one or two passes.
const equalPasses = 4

// EqualExtent grows ext until one metre spans the same length on both axes
// of the data area of the figure build draws for it. The axes take a
// different share of the page in x and y, and that share depends on the
// tick labels of the limits, so the figure is rebuilt and measured until
// the extent stops changing.
func EqualExtent(ext shore.Extent, pg Page, build func(shore.Extent) (*Figure, error)) (shore.Extent, error) {
	cur := ext
	for range equalPasses {
		fig, err := build(cur)
		if err != nil {
			return ext, err
		}
		w, h := fig.DataArea(pg)
		next := ext.EqualAspect(float64(w), float64(h))
		if sameExtent(next, cur) {
			return next, nil
		}
		cur = next
	}
	return cur, nil
}

func sameExtent(a, b shore.Extent) bool {
	tol := 1e-9 * math.Max(a.Width(), a.Height())
	return math.Abs(a.XMin-b.XMin) <= tol && math.Abs(a.XMax-b.XMax) <= tol &&
		math.Abs(a.YMin-b.YMin) <= tol && math.Abs(a.YMax-b.YMax) <= tol
}

// WriterTo renders the figure in the given format (png, jpg, tif, svg, pdf or eps)
func (f *Figure) WriterTo(pg Page, format string) (io.WriterTo, error) {
	w, h := pg.size()

	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(pg.dpi()))
		f.Draw(draw.New(c))
		switch strings.ToLower(format) {
		case "png":
			return vgimg.PngCanvas{Canvas: c}, nil
		case "jpg", "jpeg":
			return vgimg.JpegCanvas{Canvas: c}, nil
		default:
			return vgimg.TiffCanvas{Canvas: c}, nil
		}
	case "svg":
		c := vgsvg.New(w, h)
		f.Draw(draw.New(c))
		return c, nil
	case "pdf":
		c := vgpdf.New(w, h)
		f.Draw(draw.New(c))
		return c, nil
	case "eps":
		c := vgeps.New(w, h)
		f.Draw(draw.New(c))
		return c, nil
	}
	return nil, fmt.Errorf("unsupported figure format %q", format)
}

// Save writes the figure to filename, choosing the format from the
// extension. The directory is created if needed and the file is replaced
// atomically.
func (f *Figure) Save(filename string, pg Page) error {
	format := strings.TrimPrefix(filepath.Ext(filename), ".")
	if format == "" {
		return fmt.Errorf("figure file %q has no extension", filename)
	}

	wt, err := f.WriterTo(pg, format)
	if err != nil {
		return err
	}
	return atomicfile.Write(filename, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	})
}
