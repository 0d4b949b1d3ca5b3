package bay

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goshore/internal/shore"
)

// Parabolic bay shape coefficients from Hsu and Evans (1989), tabulated
// against the wave obliquity β in degrees
var (
	tableBeta = []float64{10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80}
	tableC0   = []float64{0.036, 0.050, 0.055, 0.054, 0.045, 0.029, 0.000, -0.039, -0.088, -0.151, -0.227, -0.315, -0.409, -0.505, -0.600}
	tableC1   = []float64{1.011, 0.998, 1.029, 1.083, 1.146, 1.220, 1.326, 1.446, 1.588, 1.756, 1.930, 2.113, 2.284, 2.422, 2.520}
	tableC2   = []float64{-0.047, -0.049, -0.088, -0.142, -0.194, -0.253, -0.332, -0.412, -0.507, -0.611, -0.706, -0.800, -0.873, -0.909, -0.906}
)

// Coefficients returns C0, C1 and C2 for β, interpolating linearly between
// table rows and clamping outside the table
func Coefficients(beta float64) (c0, c1, c2 float64) {
	return interp(beta, tableC0), interp(beta, tableC1), interp(beta, tableC2)
}

func interp(x float64, ys []float64) float64 {
	if x <= tableBeta[0] {
		return ys[0]
	}
	last := len(tableBeta) - 1
	if x >= tableBeta[last] {
		return ys[last]
	}
	for i := 1; i <= last; i++ {
		if x <= tableBeta[i] {
			t := (x - tableBeta[i-1]) / (tableBeta[i] - tableBeta[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1])
		}
	}
	return ys[last]
}

// Radius is the distance from the up-drift control point to the shore at
// angle theta (degrees from the control line) for control line length rb
func Radius(rb, beta, theta float64) float64 {
	c0, c1, c2 := Coefficients(beta)
	r := beta / theta
	return rb * (c0 + c1*r + c2*r*r)
}

// Result is a modelled static equilibrium bay
type Result struct {
	Up, Down shore.Point // control line end points
	Beta     float64     // wave obliquity to the control line (degrees)
	Length   float64     // control line length
	Theta    []float64   // angles from the control line (degrees)
	Radius   []float64
	Shore    shore.Line
}

// Model builds the bay shape behind a control line that starts at up, has
// the given orientation (azimuth, degrees) and length. Angles run from β
// towards 180 degrees in step increments.
func Model(up shore.Point, orientation, length, beta, step float64) (*Result, error) {
	if length <= 0 {
		return nil, fmt.Errorf("control line length must be positive, got %g", length)
	}
	if beta <= 0 || beta >= 180 {
		return nil, fmt.Errorf("beta must lie in (0, 180), got %g", beta)
	}
	if step <= 0 {
		return nil, fmt.Errorf("angle step must be positive, got %g", step)
	}

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	res := &Result{
		Up:     up,
		Beta:   beta,
		Length: length,
	}
	res.Down = shore.Point{
		X: up.X + length*math.Cos(rad(orientation-90)),
		Y: up.Y - length*math.Sin(rad(orientation-90)),
	}

	for theta := beta; theta < 180; theta += step {
		rn := Radius(length, beta, theta)
		angle := orientation - beta + theta
		res.Theta = append(res.Theta, theta)
		res.Radius = append(res.Radius, rn)
		res.Shore = append(res.Shore, shore.Point{
			X: up.X + rn*math.Cos(rad(angle-90)),
			Y: up.Y - rn*math.Sin(rad(angle-90)),
		})
	}
	return res, nil
}

// FitResult compares a modelled coast with the Hsu and Evans shape for the
// same control line
type FitResult struct {
	Orientation float64 // control line azimuth (degrees)
	Beta        float64
	Length      float64
	Control     int // first node whose shoreline faces the waves
	Model       shore.Line
	Nodes       []int     // coast node each modelled point corresponds to
	Theta       []float64 // node angle from the control line (degrees)
	Radius      []float64 // modelled distance from the up-drift control point
}

// Fit takes the control line from node 1 to node N-2 of a modelled coast
// and predicts the equilibrium position of each interior node for waves
// arriving from waveDir (azimuth, degrees)
func Fit(coast shore.Line, waveDir float64) (*FitResult, error) {
	n := len(coast)
	if n < 5 {
		return nil, fmt.Errorf("need at least 5 nodes to fit a bay, got %d", n)
	}

	up, end := coast[1], coast[n-2]
	dx, dy := end.X-up.X, end.Y-up.Y
	res := &FitResult{
		Orientation: shore.Azimuth(dx, dy),
		Length:      math.Hypot(dx, dy),
		Control:     -1,
	}
	res.Beta = res.Orientation - (waveDir + 90)

	for i := 2; i < n-1; i++ {
		seg := shore.Azimuth(coast[i+1].X-coast[i].X, coast[i+1].Y-coast[i].Y)
		if seg < waveDir+90 {
			res.Control = i
			break
		}
	}

	for i := 2; i < n-2; i++ {
		theta := shore.Azimuth(coast[i].X-up.X, coast[i].Y-up.Y) - res.Orientation
		if theta == 0 {
			continue
		}
		rn := Radius(res.Length, res.Beta, theta)
		a := (theta - 90) * math.Pi / 180
		res.Model = append(res.Model, shore.Point{
			X: up.X - rn*math.Cos(a),
			Y: up.Y + rn*math.Sin(a),
		})
		res.Nodes = append(res.Nodes, i)
		res.Theta = append(res.Theta, theta)
		res.Radius = append(res.Radius, rn)
	}
	return res, nil
}
