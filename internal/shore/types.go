package shore

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a planform coordinate in metres
type Point struct {
	X float64
	Y float64
}

// Line is an ordered sequence of nodes, e.g. a coastline or cliffline
type Line []Point

// Polygon is a closed ring. The last node is not repeated.
type Polygon []Point

// FromXY zips parallel coordinate slices into a line
func FromXY(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("coordinate length mismatch: %d x values, %d y values", len(x), len(y))
	}
	line := make(Line, len(x))
	for i := range x {
		line[i] = Point{X: x[i], Y: y[i]}
	}
	return line, nil
}

// XY splits the line back into parallel slices
func (l Line) XY() (x, y []float64) {
	x = make([]float64, len(l))
	y = make([]float64, len(l))
	for i, p := range l {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

// Reversed returns a reversed copy of the line
func (l Line) Reversed() Line {
	r := make(Line, len(l))
	for i, p := range l {
		r[len(l)-1-i] = p
	}
	return r
}

// Extent is an axis-aligned bounding box
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Bounds returns the smallest extent holding every node of every line
func Bounds(lines ...Line) Extent {
	e := Extent{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for _, l := range lines {
		for _, p := range l {
			e.XMin = math.Min(e.XMin, p.X)
			e.XMax = math.Max(e.XMax, p.X)
			e.YMin = math.Min(e.YMin, p.Y)
			e.YMax = math.Max(e.YMax, p.Y)
		}
	}
	return e
}

// Width returns the x range
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns the y range
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Pad grows each side of the extent by the given margin
func (e Extent) Pad(left, right, bottom, top float64) Extent {
	return Extent{
		XMin: e.XMin - left,
		XMax: e.XMax + right,
		YMin: e.YMin - bottom,
		YMax: e.YMax + top,
	}
}

// EqualAspect grows the narrower axis about its centre so that one metre
// spans the same physical length on both axes of a width x height figure
func (e Extent) EqualAspect(width, height float64) Extent {
	if width <= 0 || height <= 0 || e.Width() <= 0 || e.Height() <= 0 {
		return e
	}

	xScale := e.Width() / width
	yScale := e.Height() / height
	if xScale > yScale {
		// x is the limiting axis, stretch y
		h := xScale * height
		cy := (e.YMin + e.YMax) / 2
		e.YMin, e.YMax = cy-h/2, cy+h/2
	} else {
		w := yScale * width
		cx := (e.XMin + e.XMax) / 2
		e.XMin, e.XMax = cx-w/2, cx+w/2
	}
	return e
}

// Side names an edge of the plotting extent
type Side int

const (
	Auto Side = iota
	North
	South
	East
	West
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "auto"
}

// ParseSide converts a side name to a Side
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, nil
	case "north", "n", "top":
		return North, nil
	case "south", "s", "bottom":
		return South, nil
	case "east", "e", "right":
		return East, nil
	case "west", "w", "left":
		return West, nil
	}
	return Auto, fmt.Errorf("unknown side %q (want north, south, east, west or auto)", name)
}

// Opposite returns the facing side. Auto has no opposite and is returned as is.
func (s Side) Opposite() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return Auto
}

// corners returns the two extent corners on the given side
func (e Extent) corners(s Side) (Point, Point) {
	switch s {
	case North:
		return Point{e.XMin, e.YMax}, Point{e.XMax, e.YMax}
	case South:
		return Point{e.XMin, e.YMin}, Point{e.XMax, e.YMin}
	case West:
		return Point{e.XMin, e.YMin}, Point{e.XMin, e.YMax}
	default:
		return Point{e.XMax, e.YMin}, Point{e.XMax, e.YMax}
	}
}
