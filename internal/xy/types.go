package xy

import (
	"fmt"
	"math"
)

// Boundary is the boundary condition code the simulation writes in the
// header of every .xy file
type Boundary int

const (
	Periodic   Boundary = 1
	Fixed      Boundary = 2
	Prescribed Boundary = 3
)

func (b Boundary) String() string {
	switch b {
	case Periodic:
		return "periodic"
	case Fixed:
		return "fixed"
	case Prescribed:
		return "prescribed"
	}
	return fmt.Sprintf("unknown(%d)", int(b))
}

// Snapshot is the position of every node of a line at one model time
type Snapshot struct {
	Time float64 // years
	X    []float64
	Y    []float64
}

// Len returns the number of nodes in the snapshot
func (s Snapshot) Len() int {
	return len(s.X)
}

// Series is the full time evolution of a coastline or cliffline as written
// by the simulation. Snapshots are stored in file order.
type Series struct {
	Start     Boundary
	End       Boundary
	Snapshots []Snapshot
}

// Len returns the number of snapshots
func (s *Series) Len() int {
	return len(s.Snapshots)
}

// Initial returns the first snapshot
func (s *Series) Initial() Snapshot {
	return s.Snapshots[0]
}

// Last returns the final snapshot
func (s *Series) Last() Snapshot {
	return s.Snapshots[len(s.Snapshots)-1]
}

// Times returns the model time of every snapshot
func (s *Series) Times() []float64 {
	times := make([]float64, len(s.Snapshots))
	for i, snap := range s.Snapshots {
		times[i] = snap.Time
	}
	return times
}

// Nearest returns the index of the snapshot whose time is closest to t.
// Ties resolve to the earliest snapshot.
func (s *Series) Nearest(t float64) int {
	best := 0
	bestDiff := math.Inf(1)
	for i, snap := range s.Snapshots {
		if d := math.Abs(snap.Time - t); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// Stride returns the index of every step-th snapshot. When maxTime is
// positive the selection ends with the first snapshot whose time exceeds it.
func (s *Series) Stride(step int, maxTime float64) []int {
	if step < 1 {
		step = 1
	}
	var idx []int
	for i := 0; i < len(s.Snapshots); i += step {
		idx = append(idx, i)
		if maxTime > 0 && s.Snapshots[i].Time > maxTime {
			break
		}
	}
	return idx
}

// Validate checks that the series is usable for plotting
func (s *Series) Validate() error {
	if s.Start < Periodic || s.Start > Prescribed || s.End < Periodic || s.End > Prescribed {
		return &ValidationError{fmt.Sprintf("boundary codes must be 1, 2 or 3, got %d %d", s.Start, s.End)}
	}
	if s.Start != s.End {
		return &ValidationError{fmt.Sprintf("start and end boundary must match, got %d %d", s.Start, s.End)}
	}
	if len(s.Snapshots) == 0 {
		return &ValidationError{"series has no snapshots"}
	}
	for i, snap := range s.Snapshots {
		if len(snap.X) != len(snap.Y) {
			return &ValidationError{fmt.Sprintf("snapshot %d: %d x values but %d y values", i, len(snap.X), len(snap.Y))}
		}
		if len(snap.X) < 2 {
			return &ValidationError{fmt.Sprintf("snapshot %d: need at least 2 nodes, got %d", i, len(snap.X))}
		}
		if i > 0 && snap.Time < s.Snapshots[i-1].Time {
			return &ValidationError{fmt.Sprintf("snapshot %d: time %.4f is earlier than %.4f", i, snap.Time, s.Snapshots[i-1].Time)}
		}
	}
	return nil
}

// ValidationError represents a series validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// ParseError reports malformed input together with its line number
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
