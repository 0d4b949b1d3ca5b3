package xy

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLine bounds a single row; long runs write thousands of nodes per row
const maxLine = 64 << 20

// ReadFile loads and validates a .xy time series
func ReadFile(filename string) (*Series, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Read parses a .xy time series:
//
//	StartBoundary EndBoundary
//	Time X[0] X[1] ... X[N-1]
//	Time Y[0] Y[1] ... Y[N-1]
//	...
func Read(r io.Reader) (*Series, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	series := &Series{}
	lineNo := 0
	headerRead := false

	var pending []float64 // X row waiting for its Y row
	pendingLine := 0

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if !headerRead {
			if len(fields) < 2 {
				return nil, &ParseError{lineNo, "header must hold start and end boundary codes"}
			}
			start, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, &ParseError{lineNo, fmt.Sprintf("bad start boundary %q", fields[0])}
			}
			end, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{lineNo, fmt.Sprintf("bad end boundary %q", fields[1])}
			}
			series.Start, series.End = Boundary(start), Boundary(end)
			headerRead = true
			continue
		}

		row, err := parseRow(fields)
		if err != nil {
			return nil, &ParseError{lineNo, err.Error()}
		}

		if pending == nil {
			pending, pendingLine = row, lineNo
			continue
		}

		if pending[0] != row[0] {
			return nil, &ParseError{lineNo, fmt.Sprintf("y row time %g does not match x row time %g on line %d", row[0], pending[0], pendingLine)}
		}
		series.Snapshots = append(series.Snapshots, Snapshot{
			Time: pending[0],
			X:    pending[1:],
			Y:    row[1:],
		})
		pending = nil
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !headerRead {
		return nil, &ParseError{lineNo, "missing header"}
	}
	if pending != nil {
		return nil, &ParseError{pendingLine, "x row has no matching y row"}
	}

	if err := series.Validate(); err != nil {
		return nil, err
	}
	return series, nil
}

func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not a number", i+1, f)
		}
		row[i] = v
	}
	return row, nil
}
