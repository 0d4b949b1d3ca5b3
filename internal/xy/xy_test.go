package xy

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `2 2
0 0 10 20
0 0 -5 -10
0.5 0 11 21 30
0.5 0 -4 -9 -15
1 1 12 22
1 0 -3 -8
`

func TestRead(t *testing.T) {
	s, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if s.Start != Fixed || s.End != Fixed {
		t.Errorf("boundaries = %v %v, want fixed fixed", s.Start, s.End)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if got := s.Snapshots[1].Len(); got != 4 {
		t.Errorf("snapshot 1 has %d nodes, want 4", got)
	}
	if got := s.Last().X[0]; got != 1 {
		t.Errorf("last X[0] = %v, want 1", got)
	}
	if got := s.Initial().Y[2]; got != -10 {
		t.Errorf("initial Y[2] = %v, want -10", got)
	}
}

func TestReadToleratesGeneratedLayout(t *testing.T) {
	// Generated initial conditions end rows with a space and omit the final newline
	in := "1 1\n0 0.0 50.0 100.0 \n\n0 0.0 0.0 0.0 "
	s, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Len() != 1 || s.Initial().Len() != 3 {
		t.Errorf("got %d snapshots of %d nodes, want 1 of 3", s.Len(), s.Initial().Len())
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int // 0 when the error is not a ParseError
	}{
		{"empty", "", 0},
		{"short header", "2\n0 1 2\n0 1 2\n", 1},
		{"odd rows", "2 2\n0 1 2\n0 1 2\n1 1 2\n", 4},
		{"time mismatch", "2 2\n0 1 2\n0.5 1 2\n", 3},
		{"bad number", "2 2\n0 1 x\n0 1 2\n", 2},
		{"length mismatch", "2 2\n0 1 2 3\n0 1 2\n", 0},
		{"bad boundary", "4 4\n0 1 2\n0 1 2\n", 0},
		{"mixed boundary", "1 2\n0 1 2\n0 1 2\n", 0},
		{"time goes back", "2 2\n1 1 2\n1 1 2\n0 1 2\n0 1 2\n", 0},
		{"single node", "2 2\n0 1\n0 1\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			var pe *ParseError
			if tt.line > 0 {
				if !errors.As(err, &pe) {
					t.Fatalf("error %v is not a ParseError", err)
				}
				if pe.Line != tt.line {
					t.Errorf("error on line %d, want %d", pe.Line, tt.line)
				}
			}
		})
	}
}

func TestNearestAndStride(t *testing.T) {
	s, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}

	nearest := []struct {
		t    float64
		want int
	}{
		{-3, 0},
		{0.2, 0},
		{0.25, 0}, // tie goes to the earlier snapshot
		{0.6, 1},
		{9, 2},
	}
	for _, tt := range nearest {
		if got := s.Nearest(tt.t); got != tt.want {
			t.Errorf("Nearest(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}

	stride := []struct {
		step    int
		maxTime float64
		want    []int
	}{
		{1, 0, []int{0, 1, 2}},
		{2, 0, []int{0, 2}},
		{0, 0, []int{0, 1, 2}},
		{1, 0.4, []int{0, 1}},
	}
	for _, tt := range stride {
		got := s.Stride(tt.step, tt.maxTime)
		if len(got) != len(tt.want) {
			t.Errorf("Stride(%d, %v) = %v, want %v", tt.step, tt.maxTime, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Stride(%d, %v) = %v, want %v", tt.step, tt.maxTime, got, tt.want)
				break
			}
		}
	}
}

func TestWriteThenRead(t *testing.T) {
	in := &Series{
		Start: Periodic,
		End:   Periodic,
		Snapshots: []Snapshot{
			{Time: 0, X: []float64{0, 100.125, 200.5}, Y: []float64{0, -1234567.891, 3}},
			{Time: 12.5, X: []float64{1, 2}, Y: []float64{3, 4}},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "1 1\n0 0 100.125 200.5\n") {
		t.Errorf("unexpected layout:\n%s", buf.String())
	}

	out, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out.Len() != 2 || out.Snapshots[0].Y[1] != -1234567.891 || out.Last().Time != 12.5 {
		t.Errorf("round trip lost data: %+v", out)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFixed(t *testing.T) {
	path := writeTemp(t, "fixed.data", "ID Fixed\n0 0\n1 1\n2 1\n3 0\n")
	fixed, err := ReadFixed(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, true, false}
	if len(fixed) != len(want) {
		t.Fatalf("got %v, want %v", fixed, want)
	}
	for i := range want {
		if fixed[i] != want[i] {
			t.Errorf("fixed[%d] = %v, want %v", i, fixed[i], want[i])
		}
	}
}

func TestReadColumns(t *testing.T) {
	path := writeTemp(t, "shadows.txt", "1 2 0\n3 4 1\n5 6 2\n")
	cols, err := ReadColumns(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 || len(cols[0]) != 3 || cols[1][2] != 6 || cols[2][1] != 1 {
		t.Errorf("unexpected columns %v", cols)
	}

	ragged := writeTemp(t, "ragged.txt", "1 2\n3\n")
	if _, err := ReadColumns(ragged, 0); err == nil {
		t.Error("expected an error for ragged rows")
	}
}

func TestReadCells(t *testing.T) {
	path := writeTemp(t, "Nodes.txt", "0 3 0 0 1 0 1 1\n1 2 5 5 6 6\n")
	cells, err := ReadCells(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	c := cells[0]
	if len(c.X) != 4 || c.X[3] != c.X[0] || c.Y[3] != c.Y[0] {
		t.Errorf("cell 0 not closed: %+v", c)
	}
	if cells[1].ID != 1 {
		t.Errorf("cell 1 id = %d", cells[1].ID)
	}
}

func TestPair(t *testing.T) {
	coast, _ := Read(strings.NewReader(sample))
	same, _ := Read(strings.NewReader(sample))
	if err := Pair(coast, same); err != nil {
		t.Errorf("Pair: %v", err)
	}

	short, _ := Read(strings.NewReader("2 2\n0 0 1\n0 0 1\n"))
	if err := Pair(coast, short); err == nil {
		t.Error("expected output mismatch")
	}
}
