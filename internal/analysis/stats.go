package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/stat"

	"github.com/alexiusacademia/goshore/internal/shore"
	"github.com/alexiusacademia/goshore/internal/xy"
)

// Stats summarises one snapshot
type Stats struct {
	Time   float64
	Nodes  int
	Length float64 // along-coast length (m)
	MeanX  float64
	MeanY  float64
	Trend  float64 // azimuth from first to last node (degrees)
	// BeachArea is the area between coast and cliff (m²), zero without a cliffline
	BeachArea float64
}

// Summarize computes Stats for every snapshot. cliff may be nil; when given
// it must pair with coast.
func Summarize(coast, cliff *xy.Series) ([]Stats, error) {
	if cliff != nil {
		if err := xy.Pair(coast, cliff); err != nil {
			return nil, err
		}
	}

	out := make([]Stats, coast.Len())
	for i, snap := range coast.Snapshots {
		l, err := shore.FromXY(snap.X, snap.Y)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", i, err)
		}
		s := Stats{
			Time:   snap.Time,
			Nodes:  snap.Len(),
			Length: shore.Length(l),
			MeanX:  stat.Mean(snap.X, nil),
			MeanY:  stat.Mean(snap.Y, nil),
			Trend:  shore.Trend(l),
		}

		if cliff != nil {
			c, err := shore.FromXY(cliff.Snapshots[i].X, cliff.Snapshots[i].Y)
			if err != nil {
				return nil, fmt.Errorf("cliff snapshot %d: %w", i, err)
			}
			beach := append(shore.Polygon(append(shore.Line{}, l...)), c.Reversed()...)
			s.BeachArea = shore.Area(beach)
		}
		out[i] = s
	}
	return out, nil
}

// SteadyState reports whether the coast length changed by less than tol
// (as a fraction) between the last two snapshots, and the change itself
func SteadyState(stats []Stats, tol float64) (bool, float64) {
	n := len(stats)
	if n < 2 {
		return false, math.NaN()
	}
	prev, last := stats[n-2].Length, stats[n-1].Length
	if prev == 0 {
		return false, math.NaN()
	}
	change := math.Abs(last-prev) / prev
	return change < tol, change
}

// Metrics maps metric names to their Stats field
var Metrics = map[string]func(Stats) float64{
	"length": func(s Stats) float64 { return s.Length },
	"nodes":  func(s Stats) float64 { return float64(s.Nodes) },
	"mean_x": func(s Stats) float64 { return s.MeanX },
	"mean_y": func(s Stats) float64 { return s.MeanY },
	"trend":  func(s Stats) float64 { return s.Trend },
	"area":   func(s Stats) float64 { return s.BeachArea },
}

// MetricNames lists the valid metric names
func MetricNames() []string {
	names := make([]string, 0, len(Metrics))
	for name := range Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Values extracts one metric from every snapshot
func Values(stats []Stats, metric string) ([]float64, error) {
	fn, ok := Metrics[strings.ToLower(metric)]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (want one of %s)", metric, strings.Join(MetricNames(), ", "))
	}
	v := make([]float64, len(stats))
	for i, s := range stats {
		v[i] = fn(s)
	}
	return v, nil
}

// Chart draws one metric against snapshot number as a terminal line graph
func Chart(stats []Stats, metric string, width, height int) (string, error) {
	v, err := Values(stats, metric)
	if err != nil {
		return "", err
	}
	if len(v) == 0 {
		return "", fmt.Errorf("no snapshots to chart")
	}

	caption := fmt.Sprintf("%s, %.1f to %.1f years", strings.ToLower(metric), stats[0].Time, stats[len(stats)-1].Time)
	opts := []asciigraph.Option{asciigraph.Caption(caption), asciigraph.Precision(1)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	return asciigraph.Plot(v, opts...), nil
}
