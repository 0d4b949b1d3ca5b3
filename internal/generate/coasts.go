package generate

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/xy"
)

func rad(deg float64) float64 { return deg * math.Pi / 180 }

// jitter returns uniform noise in [-amp/2, amp/2)
func jitter(rng *rand.Rand, amp float64) float64 {
	if rng == nil || amp == 0 {
		return 0
	}
	return amp * (rng.Float64() - 0.5)
}

// Straight is a coast running south with short "estuary" reaches at each
// end that run east-west
type Straight struct {
	Nodes   int
	Spacing float64
	Inland  int     // nodes in each estuary reach
	Jitter  float64 // amplitude of random node displacement
}

// DefaultStraight matches the straight-coast model runs
func DefaultStraight() Straight {
	return Straight{Nodes: 120, Spacing: 100, Inland: 10, Jitter: 2}
}

// Line generates the coast
func (s Straight) Line(rng *rand.Rand) (shore.Line, error) {
	if s.Nodes < 2 || s.Spacing <= 0 {
		return nil, fmt.Errorf("invalid straight coast: %d nodes at %g m", s.Nodes, s.Spacing)
	}
	if 2*s.Inland >= s.Nodes {
		return nil, fmt.Errorf("estuary reaches (%d nodes each) leave no open coast in %d nodes", s.Inland, s.Nodes)
	}

	l := make(shore.Line, s.Nodes)
	for i := range l {
		switch {
		case i < s.Inland:
			l[i] = shore.Point{X: float64(i) * s.Spacing, Y: jitter(rng, s.Jitter/2)}
		case i <= s.Nodes-s.Inland:
			l[i] = shore.Point{
				X: l[i-1].X + jitter(rng, s.Jitter),
				Y: l[i-1].Y - s.Spacing + jitter(rng, s.Jitter),
			}
		default:
			l[i] = shore.Point{
				X: l[i-1].X - s.Spacing + jitter(rng, s.Jitter),
				Y: l[i-1].Y + jitter(rng, s.Jitter/2),
			}
		}
	}
	return l, nil
}

// RightAngle is a coast that turns through Angle degrees half way along,
// the starting point for growing a spit
type RightAngle struct {
	Nodes   int
	Spacing float64
	Trend   float64 // azimuth of the first reach
	Angle   float64 // turn at the corner
	Jitter  float64
}

// DefaultRightAngle matches the spit model runs
func DefaultRightAngle() RightAngle {
	return RightAngle{Nodes: 50, Spacing: 50, Trend: 135, Angle: 90, Jitter: 2}
}

// Line generates the coast
func (r RightAngle) Line(rng *rand.Rand) (shore.Line, error) {
	if r.Nodes < 3 || r.Spacing <= 0 {
		return nil, fmt.Errorf("invalid right-angle coast: %d nodes at %g m", r.Nodes, r.Spacing)
	}

	l := make(shore.Line, r.Nodes)
	for i := 1; i < r.Nodes; i++ {
		trend := r.Trend
		if i >= r.Nodes/2 {
			trend += r.Angle
		}
		l[i] = shore.Point{
			X: l[i-1].X + r.Spacing*math.Sin(rad(trend)) + jitter(rng, r.Jitter),
			Y: l[i-1].Y + r.Spacing*math.Cos(rad(trend)) + jitter(rng, r.Jitter),
		}
	}
	return l, nil
}

// Cuspate is a straight coast with a Gaussian bump, optionally backed by a
// straight cliffline BeachWidth behind the beach
type Cuspate struct {
	Nodes      int
	Spacing    float64
	Trend      float64
	Amplitude  float64
	StdDev     float64
	BeachWidth float64
	// Jitter displaces beach nodes at random. The cliff stays straight.
	Jitter float64
}

// DefaultCuspate matches the cuspate model runs
func DefaultCuspate() Cuspate {
	return Cuspate{Nodes: 100, Spacing: 50, Trend: 180, Amplitude: 200, StdDev: 200}
}

// Lines generates the beach and the cliff behind it
func (c Cuspate) Lines(rng *rand.Rand) (beach, cliff shore.Line, err error) {
	if c.Nodes < 2 || c.Spacing <= 0 {
		return nil, nil, fmt.Errorf("invalid cuspate coast: %d nodes at %g m", c.Nodes, c.Spacing)
	}
	if c.StdDev <= 0 {
		return nil, nil, fmt.Errorf("bump standard deviation must be positive, got %g", c.StdDev)
	}

	cliff = make(shore.Line, c.Nodes)
	beach = make(shore.Line, c.Nodes)
	offX := c.BeachWidth * math.Sin(rad(c.Trend-90))
	offY := c.BeachWidth * math.Cos(rad(c.Trend-90))

	for i := range cliff {
		if i > 0 {
			cliff[i] = shore.Point{
				X: cliff[i-1].X + c.Spacing*math.Sin(rad(c.Trend)),
				Y: cliff[i-1].Y + c.Spacing*math.Cos(rad(c.Trend)),
			}
		}
		beach[i] = shore.Point{X: cliff[i].X + offX, Y: cliff[i].Y + offY}
	}

	// Centre the bump half way along the coast
	position := -float64(c.Nodes) * c.Spacing / 2
	for i := range beach {
		d := beach[i].Y - position
		beach[i].X += c.Amplitude*math.Exp(-(d*d)/(2*c.StdDev*c.StdDev)) + jitter(rng, c.Jitter)
		beach[i].Y += jitter(rng, c.Jitter)
	}
	return beach, cliff, nil
}

// Sine is a south-running coast with a sinusoidal planform
type Sine struct {
	Nodes      int
	Spacing    float64
	Amplitude  float64
	Wavelength float64
	Jitter     float64
}

// DefaultSine matches the symmetric-behaviour test runs
func DefaultSine() Sine {
	return Sine{Nodes: 51, Spacing: 100, Amplitude: 100, Wavelength: 5000}
}

// Line generates the coast
func (s Sine) Line(rng *rand.Rand) (shore.Line, error) {
	if s.Nodes < 2 || s.Spacing <= 0 || s.Wavelength <= 0 {
		return nil, fmt.Errorf("invalid sine coast: %d nodes at %g m, wavelength %g", s.Nodes, s.Spacing, s.Wavelength)
	}

	// Jitter moves each node off the curve without carrying into the next
	l := make(shore.Line, s.Nodes)
	var x, y float64
	for i := 1; i < s.Nodes; i++ {
		y -= s.Spacing
		x += s.Amplitude * math.Sin(2*math.Pi*y/s.Wavelength)
		l[i] = shore.Point{X: x + jitter(rng, s.Jitter), Y: y + jitter(rng, s.Jitter)}
	}
	return l, nil
}

// Series wraps a generated line as a single time-zero snapshot ready to
// feed the simulation
func Series(l shore.Line, boundary xy.Boundary) *xy.Series {
	x, y := l.XY()
	return &xy.Series{
		Start:     boundary,
		End:       boundary,
		Snapshots: []xy.Snapshot{{Time: 0, X: x, Y: y}},
	}
}
