package xy

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// timeTolerance is how far apart paired coastline and cliffline snapshots
// may be and still count as written at the same model time
const timeTolerance = 1e-6

// Cell is a closed polygon read from a cells file, e.g. the shoreface
// cells the simulation dumps for debugging
type Cell struct {
	ID int
	X  []float64
	Y  []float64
}

// ReadFixed reads a fixed-cliff file: one header line followed by
// "id flag" pairs, where flag 1 marks a fixed (defended) cliff node
func ReadFixed(filename string) ([]bool, error) {
	cols, err := ReadColumns(filename, 1)
	if err != nil {
		return nil, err
	}
	if len(cols) < 2 {
		return nil, fmt.Errorf("%s: expected id and flag columns, found %d", filename, len(cols))
	}

	fixed := make([]bool, len(cols[1]))
	for i, flag := range cols[1] {
		fixed[i] = flag == 1
	}
	return fixed, nil
}

// ReadColumns reads a whitespace-delimited table of numbers, skipping the
// first skip lines, and returns the data column by column
func ReadColumns(filename string, skip int) ([][]float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var cols [][]float64
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= skip {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, &ParseError{lineNo, err.Error()})
		}
		if cols == nil {
			cols = make([][]float64, len(row))
		}
		if len(row) != len(cols) {
			return nil, fmt.Errorf("%s: %w", filename, &ParseError{lineNo, fmt.Sprintf("expected %d columns, found %d", len(cols), len(row))})
		}
		for i, v := range row {
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cols == nil {
		return nil, fmt.Errorf("%s: no data", filename)
	}
	return cols, nil
}

// ReadCells reads one polygon per line: "id n x0 y0 x1 y1 ...". Each
// polygon is returned closed, with its first node repeated at the end.
func ReadCells(filename string) ([]Cell, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var cells []Cell
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			return nil, fmt.Errorf("%s: %w", filename, &ParseError{lineNo, "cell needs an id, a count and at least one node"})
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, &ParseError{lineNo, fmt.Sprintf("bad cell id %q", fields[0])})
		}
		coords, err := parseRow(fields[2:])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, &ParseError{lineNo, err.Error()})
		}

		n := len(coords) / 2
		cell := Cell{ID: id, X: make([]float64, 0, n+1), Y: make([]float64, 0, n+1)}
		for i := 0; i < n; i++ {
			cell.X = append(cell.X, coords[2*i])
			cell.Y = append(cell.Y, coords[2*i+1])
		}
		cell.X = append(cell.X, cell.X[0])
		cell.Y = append(cell.Y, cell.Y[0])
		cells = append(cells, cell)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}

// Pair checks that a coastline and a cliffline were written by the same
// run: same number of snapshots at the same times
func Pair(coast, cliff *Series) error {
	if coast.Len() != cliff.Len() {
		return &ValidationError{fmt.Sprintf("output mismatch: coastline has %d snapshots, cliffline has %d", coast.Len(), cliff.Len())}
	}
	for i := range coast.Snapshots {
		ct, kt := coast.Snapshots[i].Time, cliff.Snapshots[i].Time
		if math.Abs(ct-kt) > timeTolerance {
			return &ValidationError{fmt.Sprintf("output mismatch: snapshot %d is at %.4f in the coastline but %.4f in the cliffline", i, ct, kt)}
		}
	}
	return nil
}
