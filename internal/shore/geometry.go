package shore

import (
	"math"
	"sort"
)

// Azimuth converts a displacement into a compass bearing in degrees,
// measured clockwise from north (positive y)
func Azimuth(dx, dy float64) float64 {
	switch {
	case dx == 0 && dy < 0:
		return 180
	case dx == 0 && dy > 0:
		return 0
	case dx > 0:
		return 90 - math.Atan(dy/dx)*180/math.Pi
	case dx < 0:
		return 270 - math.Atan(dy/dx)*180/math.Pi
	}
	return 0
}

// Trend is the bearing from the first to the last node of a line
func Trend(l Line) float64 {
	if len(l) < 2 {
		return 0
	}
	first, last := l[0], l[len(l)-1]
	return Azimuth(last.X-first.X, last.Y-first.Y)
}

// ResolveSide turns Auto into a concrete sea side from the coast's trend:
// trends beyond 180 degrees face the sea west, everything else east
func ResolveSide(s Side, coast Line) Side {
	if s != Auto {
		return s
	}
	if Trend(coast) > 180 {
		return West
	}
	return East
}

// Regions are the shaded areas of a coastline figure
type Regions struct {
	Sea   Polygon
	Beach Polygon
	Land  Polygon // empty when there is no cliffline
}

// BuildRegions closes the coastline (and cliffline, when given) against the
// plotting extent. The sea polygon runs along the coast and returns along
// the sea-side edge of the extent. With a cliffline the beach is the strip
// between coast and cliff and the land lies behind the cliff. Without one the
// beach fills everything landward of the coast.
func BuildRegions(coast, cliff Line, ext Extent, sea Side) Regions {
	sea = ResolveSide(sea, coast)
	land := sea.Opposite()

	r := Regions{
		Sea: closeAgainst(coast, ext, sea),
	}
	if len(cliff) == 0 {
		r.Beach = closeAgainst(coast, ext, land)
		return r
	}

	r.Beach = make(Polygon, 0, len(coast)+len(cliff))
	r.Beach = append(r.Beach, coast...)
	r.Beach = append(r.Beach, cliff.Reversed()...)
	r.Land = closeAgainst(cliff, ext, land)
	return r
}

// closeAgainst appends the two extent corners of side s to the line, nearest
// to the line's end first, giving a ring that encloses the area between the
// line and that edge
func closeAgainst(l Line, ext Extent, s Side) Polygon {
	if len(l) == 0 {
		return nil
	}
	a, b := ext.corners(s)
	end := l[len(l)-1]
	if dist2(end, b) < dist2(end, a) {
		a, b = b, a
	}

	p := make(Polygon, 0, len(l)+2)
	p = append(p, l...)
	return append(p, a, b)
}

func dist2(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Transform re-orients raw model coordinates before plotting
type Transform struct {
	// Rotate turns the frame 90 degrees anticlockwise: (x, y) becomes (-y, x)
	Rotate bool
	// AnchorX and AnchorY shift the line so its first node sits on that axis origin
	AnchorX bool
	AnchorY bool
}

// Apply returns a transformed copy of the line
func (t Transform) Apply(l Line) Line {
	out := make(Line, len(l))
	copy(out, l)
	if t.Rotate {
		for i, p := range out {
			out[i] = Point{X: -p.Y, Y: p.X}
		}
	}
	if len(out) == 0 {
		return out
	}
	x0, y0 := out[0].X, out[0].Y
	for i := range out {
		if t.AnchorX {
			out[i].X -= x0
		}
		if t.AnchorY {
			out[i].Y -= y0
		}
	}
	return out
}

// Length is the along-line distance from first to last node
func Length(l Line) float64 {
	var total float64
	for i := 1; i < len(l); i++ {
		total += math.Hypot(l[i].X-l[i-1].X, l[i].Y-l[i-1].Y)
	}
	return total
}

// Mean returns the centroid of the nodes (not of the enclosed area)
func Mean(l Line) Point {
	if len(l) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range l {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(l))
	return Point{X: sx / n, Y: sy / n}
}

// Area uses the shoelace formula and returns the unsigned area
func Area(p Polygon) float64 {
	n := len(p)
	if n < 3 {
		return 0
	}

	var signed float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		signed += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(signed / 2)
}

// Crossings finds all x coordinates where a horizontal line at y crosses
// the polygon boundary, sorted ascending
func Crossings(p Polygon, y float64) []float64 {
	var xs []float64
	n := len(p)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := p[i], p[j]

		// Half-open test so a vertex exactly on y is counted once
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}

	sort.Float64s(xs)
	return xs
}

// Contains reports whether pt lies inside the polygon under the even-odd rule
func Contains(p Polygon, pt Point) bool {
	if len(p) < 3 {
		return false
	}
	inside := false
	for _, x := range Crossings(p, pt.Y) {
		if x > pt.X {
			break
		}
		inside = !inside
	}
	return inside
}
