package xy

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/alexiusacademia/goshore/internal/atomicfile"
)

// Write encodes a series in the layout the simulation itself writes: times
// with 4 significant digits and coordinates with 10.
func Write(w io.Writer, s *Series) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", s.Start, s.End)
	for _, snap := range s.Snapshots {
		writeRow(bw, snap.Time, snap.X)
		writeRow(bw, snap.Time, snap.Y)
	}
	return bw.Flush()
}

// WriteFile writes a series to filename atomically
func WriteFile(filename string, s *Series) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return atomicfile.Write(filename, func(w io.Writer) error {
		return Write(w, s)
	})
}

func writeRow(bw *bufio.Writer, t float64, values []float64) {
	bw.WriteString(strconv.FormatFloat(t, 'g', 4, 64))
	for _, v := range values {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(v, 'g', 10, 64))
	}
	bw.WriteByte('\n')
}
