package waves

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/alexiusacademia/goshore/internal/xy"
)

// Defaults used by the model runs
const (
	DefaultSamples = 10000
	DefaultWidth   = 10.0 // degrees
)

// Rose is a binned distribution of offshore wave directions. Bins start at
// Starts[i] (degrees clockwise from north) and span Width degrees.
type Rose struct {
	Starts  []float64
	Width   float64
	Weights []float64
	Note    string // optional annotation drawn beside the rose
}

// Max returns the largest bin weight
func (r *Rose) Max() float64 {
	if len(r.Weights) == 0 {
		return 0
	}
	return floats.Max(r.Weights)
}

// Mean returns the weighted circular mean direction in degrees, using bin centres
func (r *Rose) Mean() float64 {
	var s, c float64
	for i, w := range r.Weights {
		theta := (r.Starts[i] + r.Width/2) * math.Pi / 180
		s += w * math.Sin(theta)
		c += w * math.Cos(theta)
	}
	return wrap(math.Atan2(s, c) * 180 / math.Pi)
}

// Climate describes how the offshore wave climate of a run was generated
type Climate struct {
	// Kind is one of gaussian, bimodal, ua, file or none
	Kind string `yaml:"kind"`

	Mean  float64 `yaml:"mean,omitempty"`
	Std   float64 `yaml:"std,omitempty"`
	Mean2 float64 `yaml:"mean2,omitempty"`
	Std2  float64 `yaml:"std2,omitempty"`

	// U is the fraction of waves approaching from the left, A the
	// fraction of high-angle waves
	U float64 `yaml:"u,omitempty"`
	A float64 `yaml:"a,omitempty"`

	// File holds recorded wave directions in its first column
	File string `yaml:"file,omitempty"`
	Skip int    `yaml:"skip,omitempty"`

	Samples int     `yaml:"samples,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
}

// Validate checks the climate parameters
func (c Climate) Validate() error {
	switch strings.ToLower(c.Kind) {
	case "", "none":
	case "gaussian":
		if c.Std <= 0 {
			return fmt.Errorf("gaussian climate needs a positive std, got %g", c.Std)
		}
	case "bimodal":
		if c.Std <= 0 || c.Std2 <= 0 {
			return fmt.Errorf("bimodal climate needs positive std and std2, got %g and %g", c.Std, c.Std2)
		}
	case "ua":
		if c.U < 0 || c.U > 1 || c.A < 0 || c.A > 1 {
			return fmt.Errorf("u and a must lie in [0, 1], got %g and %g", c.U, c.A)
		}
	case "file":
		if c.File == "" {
			return fmt.Errorf("file climate needs a file")
		}
	default:
		return fmt.Errorf("unknown wave climate %q (want gaussian, bimodal, ua, file or none)", c.Kind)
	}
	if c.Width < 0 || c.Width > 360 {
		return fmt.Errorf("bin width must lie in (0, 360], got %g", c.Width)
	}
	return nil
}

// Rose builds the rose for the climate. It returns nil when Kind is none.
func (c Climate) Rose(src rand.Source) (*Rose, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := c.Samples
	if n <= 0 {
		n = DefaultSamples
	}
	width := c.Width
	if width == 0 {
		width = DefaultWidth
	}

	switch strings.ToLower(c.Kind) {
	case "gaussian":
		return Gaussian(c.Mean, c.Std, n, width, src), nil
	case "bimodal":
		return Bimodal(c.Mean, c.Std, c.Mean2, c.Std2, n, width, src), nil
	case "ua":
		return UA(c.U, c.A), nil
	case "file":
		cols, err := xy.ReadColumns(c.File, c.Skip)
		if err != nil {
			return nil, fmt.Errorf("read wave file: %w", err)
		}
		return FromDirections(cols[0], width), nil
	}
	return nil, nil
}

// Gaussian samples n directions from N(mean, std) and bins them
func Gaussian(mean, std float64, n int, width float64, src rand.Source) *Rose {
	return FromDirections(sample(mean, std, n, src), width)
}

// Bimodal bins n samples from each of two normal distributions
func Bimodal(mean1, std1, mean2, std2 float64, n int, width float64, src rand.Source) *Rose {
	dirs := sample(mean1, std1, n, src)
	dirs = append(dirs, sample(mean2, std2, n, src)...)
	return FromDirections(dirs, width)
}

func sample(mean, std float64, n int, src rand.Source) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// UA builds the four-bin rose of a U/A wave climate: 45 degree bins from
// -90 to 90 weighted by the proportions of high/low angle waves from the
// left and right
func UA(u, a float64) *Rose {
	return &Rose{
		Starts:  []float64{-90, -45, 0, 45},
		Width:   45,
		Weights: []float64{u * a, (1 - u) * a, (1 - u) * (1 - a), u * (1 - a)},
		Note:    fmt.Sprintf("U = %g\nA = %g", u, a),
	}
}

// FromDirections bins directions in degrees into a rose. The largest bin
// is normalised to 1.
func FromDirections(dirs []float64, width float64) *Rose {
	if width <= 0 {
		width = DefaultWidth
	}

	x := make([]float64, len(dirs))
	for i, d := range dirs {
		x[i] = wrap(d)
	}
	sort.Float64s(x)

	nBins := int(math.Ceil(360/width - 1e-9))
	dividers := make([]float64, nBins+1)
	for i := range dividers {
		dividers[i] = float64(i) * width
	}
	dividers[nBins] = math.Max(dividers[nBins], 360)

	counts := make([]float64, nBins)
	if len(x) > 0 {
		counts = stat.Histogram(nil, dividers, x, nil)
	}

	r := &Rose{
		Starts:  dividers[:nBins],
		Width:   width,
		Weights: counts,
	}
	if m := r.Max(); m > 0 {
		floats.Scale(1/m, r.Weights)
	}
	return r
}

// wrap folds an angle into [0, 360)
func wrap(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
