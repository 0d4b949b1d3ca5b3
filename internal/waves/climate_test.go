package waves

import (
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func TestFromDirections(t *testing.T) {
	r := FromDirections([]float64{5, 5, 15, -5, 365, 359.9}, 10)

	if len(r.Starts) != 36 || len(r.Weights) != 36 {
		t.Fatalf("got %d bins, want 36", len(r.Weights))
	}
	// 5, 5 and 365 land in bin 0; -5 and 359.9 in the last bin; 15 in bin 1
	want := map[int]float64{0: 1, 1: 1.0 / 3, 35: 2.0 / 3}
	for i, w := range r.Weights {
		if math.Abs(w-want[i]) > 1e-12 {
			t.Errorf("bin %d weight = %v, want %v", i, w, want[i])
		}
	}
}

func TestFromDirectionsUnevenWidth(t *testing.T) {
	r := FromDirections([]float64{355}, 25)
	if len(r.Weights) != 15 {
		t.Fatalf("got %d bins, want 15", len(r.Weights))
	}
	if r.Weights[14] != 1 {
		t.Errorf("355 should fall in the last, shortened bin: %v", r.Weights)
	}
}

func TestGaussianPeaksAtMean(t *testing.T) {
	src := rand.NewPCG(1, 2)
	r := Gaussian(245, 15, 20000, 10, src)

	peak := 0
	for i, w := range r.Weights {
		if w > r.Weights[peak] {
			peak = i
		}
	}
	if got := r.Starts[peak]; got < 230 || got > 250 {
		t.Errorf("peak bin starts at %v, expected near 245", got)
	}
	if m := r.Mean(); math.Abs(m-245) > 2 {
		t.Errorf("circular mean = %v, want about 245", m)
	}
	if r.Max() != 1 {
		t.Errorf("largest bin = %v, want 1", r.Max())
	}
}

func TestGaussianIsReproducible(t *testing.T) {
	a := Gaussian(45, 20, 1000, 10, rand.NewPCG(7, 7))
	b := Gaussian(45, 20, 1000, 10, rand.NewPCG(7, 7))
	for i := range a.Weights {
		if a.Weights[i] != b.Weights[i] {
			t.Fatal("same source produced different roses")
		}
	}
}

func TestBimodalWrapsThroughNorth(t *testing.T) {
	r := Bimodal(340, 5, 20, 5, 5000, 10, rand.NewPCG(3, 4))

	var north, south float64
	for i, start := range r.Starts {
		if start >= 90 && start < 270 {
			south += r.Weights[i]
		} else {
			north += r.Weights[i]
		}
	}
	if south > 0.01*north {
		t.Errorf("waves leaked south of the modes: north %v south %v", north, south)
	}
}

func TestUA(t *testing.T) {
	r := UA(0.7, 0.5)
	want := []float64{0.35, 0.15, 0.15, 0.35}
	for i := range want {
		if math.Abs(r.Weights[i]-want[i]) > 1e-12 {
			t.Errorf("weight %d = %v, want %v", i, r.Weights[i], want[i])
		}
	}
	if r.Starts[0] != -90 || r.Width != 45 {
		t.Errorf("bins start %v width %v", r.Starts[0], r.Width)
	}
	if r.Note != "U = 0.7\nA = 0.5" {
		t.Errorf("note = %q", r.Note)
	}
}

func TestClimateRose(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Waves.txt")
	if err := os.WriteFile(file, []byte("Dir Height Period\n10 1 6\n12 1.5 7\n200 2 8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		c       Climate
		wantNil bool
		wantErr bool
	}{
		{"none", Climate{Kind: "none"}, true, false},
		{"empty", Climate{}, true, false},
		{"gaussian", Climate{Kind: "gaussian", Mean: 50, Std: 15, Samples: 100}, false, false},
		{"bimodal", Climate{Kind: "Bimodal", Mean: 45, Std: 20, Mean2: 140, Std2: 20, Samples: 100}, false, false},
		{"ua", Climate{Kind: "ua", U: 0.6, A: 0.4}, false, false},
		{"file", Climate{Kind: "file", File: file, Skip: 1, Width: 15}, false, false},
		{"bad std", Climate{Kind: "gaussian"}, false, true},
		{"bad ua", Climate{Kind: "ua", U: 2}, false, true},
		{"unknown", Climate{Kind: "swell"}, false, true},
		{"missing file", Climate{Kind: "file", File: filepath.Join(dir, "nope.txt")}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.c.Rose(rand.NewPCG(1, 1))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if (r == nil) != tt.wantNil {
				t.Errorf("rose nil = %v, want %v", r == nil, tt.wantNil)
			}
		})
	}
}
