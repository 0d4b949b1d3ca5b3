package shore

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestAzimuth(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   float64
	}{
		{0, 1, 0},
		{1, 1, 45},
		{1, 0, 90},
		{1, -1, 135},
		{0, -1, 180},
		{-1, -1, 225},
		{-1, 0, 270},
		{-1, 1, 315},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Azimuth(tt.dx, tt.dy); !near(got, tt.want) {
			t.Errorf("Azimuth(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestResolveSide(t *testing.T) {
	southward := Line{{0, 0}, {0, -100}}
	northward := Line{{0, 0}, {-1, 100}}

	if got := ResolveSide(Auto, southward); got != East {
		t.Errorf("southward coast: sea %v, want east", got)
	}
	if got := ResolveSide(Auto, northward); got != West {
		t.Errorf("north-westward coast: sea %v, want west", got)
	}
	if got := ResolveSide(North, southward); got != North {
		t.Errorf("explicit side overridden: %v", got)
	}
}

func TestParseSide(t *testing.T) {
	for name, want := range map[string]Side{"": Auto, "East": East, "w": West, "top": North, "south": South} {
		got, err := ParseSide(name)
		if err != nil || got != want {
			t.Errorf("ParseSide(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseSide("up"); err == nil {
		t.Error("expected error for unknown side")
	}
}

func TestBuildRegionsCoastOnly(t *testing.T) {
	// Coast running south along x = 0, sea to the east
	coast := Line{{0, 0}, {10, -50}, {0, -100}}
	ext := Extent{XMin: -100, XMax: 100, YMin: -100, YMax: 0}

	r := BuildRegions(coast, nil, ext, East)

	wantSea := Polygon{{0, 0}, {10, -50}, {0, -100}, {100, -100}, {100, 0}}
	if !samePolygon(r.Sea, wantSea) {
		t.Errorf("sea = %v, want %v", r.Sea, wantSea)
	}
	wantBeach := Polygon{{0, 0}, {10, -50}, {0, -100}, {-100, -100}, {-100, 0}}
	if !samePolygon(r.Beach, wantBeach) {
		t.Errorf("beach = %v, want %v", r.Beach, wantBeach)
	}
	if len(r.Land) != 0 {
		t.Errorf("land should be empty without a cliff, got %v", r.Land)
	}

	// Sea and beach split the extent exactly
	total := Area(r.Sea) + Area(r.Beach)
	if !near(total, ext.Width()*ext.Height()) {
		t.Errorf("sea + beach area = %v, want %v", total, ext.Width()*ext.Height())
	}
}

func TestBuildRegionsWithCliff(t *testing.T) {
	coast := Line{{10, 0}, {10, 100}}
	cliff := Line{{0, 0}, {0, 100}}
	ext := Extent{XMin: -50, XMax: 50, YMin: 0, YMax: 100}

	r := BuildRegions(coast, cliff, ext, East)

	if got := Area(r.Beach); !near(got, 1000) {
		t.Errorf("beach area = %v, want 1000", got)
	}
	if got := Area(r.Land); !near(got, 5000) {
		t.Errorf("land area = %v, want 5000", got)
	}
	if got := Area(r.Sea); !near(got, 4000) {
		t.Errorf("sea area = %v, want 4000", got)
	}
	// End of the coast is at the top, so the sea returns via the top corner first
	if r.Sea[2] != (Point{50, 100}) {
		t.Errorf("sea corner order: %v", r.Sea)
	}
}

func TestTransform(t *testing.T) {
	l := Line{{1, 2}, {3, 5}}

	tests := []struct {
		name string
		tf   Transform
		want Line
	}{
		{"none", Transform{}, Line{{1, 2}, {3, 5}}},
		{"rotate", Transform{Rotate: true}, Line{{-2, 1}, {-5, 3}}},
		{"anchor y", Transform{AnchorY: true}, Line{{1, 0}, {3, 3}}},
		{"anchor x", Transform{AnchorX: true}, Line{{0, 2}, {2, 5}}},
		// Anchoring uses the first node after rotation
		{"rotate anchor x", Transform{Rotate: true, AnchorX: true}, Line{{0, 1}, {-3, 3}}},
		{"rotate anchor both", Transform{Rotate: true, AnchorX: true, AnchorY: true}, Line{{0, 0}, {-3, 2}}},
	}

	for _, tt := range tests {
		got := tt.tf.Apply(l)
		if len(got) != len(tt.want) || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("%s: Apply = %v, want %v", tt.name, got, tt.want)
		}
	}
	if l[0] != (Point{1, 2}) {
		t.Error("Apply modified its input")
	}
	if got := (Transform{Rotate: true, AnchorX: true}).Apply(nil); len(got) != 0 {
		t.Errorf("Apply(nil) = %v", got)
	}
}

func TestCrossings(t *testing.T) {
	square := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	triangle := Polygon{{0, 0}, {10, 10}, {20, 0}}
	notch := Polygon{{0, 0}, {30, 0}, {30, 10}, {20, 10}, {20, 5}, {10, 5}, {10, 10}, {0, 10}}

	tests := []struct {
		name string
		p    Polygon
		y    float64
		want []float64
	}{
		{"square middle", square, 5, []float64{0, 10}},
		{"square bottom vertex", square, 0, []float64{0, 10}},
		{"square top edge", square, 10, nil},
		{"outside", square, 20, nil},
		{"triangle", triangle, 5, []float64{5, 15}},
		{"notch", notch, 8, []float64{0, 10, 20, 30}},
		{"below notch", notch, 3, []float64{0, 30}},
	}

	for _, tt := range tests {
		got := Crossings(tt.p, tt.y)
		if len(got) != len(tt.want) {
			t.Errorf("%s: Crossings = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if !near(got[i], tt.want[i]) {
				t.Errorf("%s: Crossings = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestMeasures(t *testing.T) {
	l := Line{{0, 0}, {3, 4}, {3, 10}}
	if got := Length(l); !near(got, 11) {
		t.Errorf("Length = %v, want 11", got)
	}
	if got := Mean(l); !near(got.X, 2) || !near(got.Y, 14.0/3) {
		t.Errorf("Mean = %v", got)
	}

	square := Polygon{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if got := Area(square); !near(got, 4) {
		t.Errorf("Area = %v, want 4", got)
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{3, 1}, false},
		{Point{-1, 1}, false},
		{Point{1, 3}, false},
	}
	for _, tt := range tests {
		if got := Contains(square, tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestExtent(t *testing.T) {
	e := Bounds(Line{{0, 0}, {10, 5}}, Line{{-2, 1}})
	if e != (Extent{-2, 10, 0, 5}) {
		t.Fatalf("Bounds = %+v", e)
	}

	p := e.Pad(1, 2, 3, 4)
	if p != (Extent{-3, 12, -3, 9}) {
		t.Errorf("Pad = %+v", p)
	}

	// 12 x 5 data on a square figure: y must grow to 12, centred on 2.5
	eq := e.EqualAspect(4, 4)
	if !near(eq.Width(), 12) || !near(eq.Height(), 12) || !near((eq.YMin+eq.YMax)/2, 2.5) {
		t.Errorf("EqualAspect = %+v", eq)
	}
}

func samePolygon(a, b Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i].X, b[i].X) || !near(a[i].Y, b[i].Y) {
			return false
		}
	}
	return true
}
