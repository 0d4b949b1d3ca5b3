package animate

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alexiusacademia/goshore/internal/diagram"
	"github.com/alexiusacademia/goshore/internal/shore"
)

func frameBuilder(t *testing.T) Builder {
	t.Helper()
	return func(i int) (*diagram.Figure, error) {
		x := float64(i)
		return diagram.Frame(diagram.FrameData{
			Time:   x,
			Coast:  shore.Line{{X: x, Y: 10}, {X: x, Y: -10}},
			Extent: shore.Extent{XMin: -10, XMax: 10, YMin: -10, YMax: 10},
		})
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	var mu sync.Mutex
	var calls int

	paths, err := Render(context.Background(), Job{
		Snapshots: []int{0, 2, 4},
		Build:     frameBuilder(t),
		Prefix:    filepath.Join(dir, "out", "spit"),
		Format:    "png",
		Page:      diagram.Page{Width: 2, Height: 2, DPI: 40},
		Workers:   2,
		FileList:  true,
		Progress: func(done, total int) {
			mu.Lock()
			calls++
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(paths) != 3 || paths[2] != filepath.Join(dir, "out", "spit_2.png") {
		t.Fatalf("paths = %v", paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("frame missing: %v", err)
		}
	}
	if calls != 3 {
		t.Errorf("progress called %d times", calls)
	}

	list, err := ReadFileList(filepath.Join(dir, "out", FileList))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0] != paths[0] || list[2] != paths[2] {
		t.Errorf("file list = %v", list)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "out", FileList))
	if err != nil {
		t.Fatal(err)
	}
	if first := strings.SplitN(string(raw), "\n", 2)[0]; first != filepath.Base(paths[0]) {
		t.Errorf("first entry = %q, want %q relative to the list", first, filepath.Base(paths[0]))
	}
}

func TestReadFileListResolvesRelative(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "frames", FileList)
	if err := os.MkdirAll(filepath.Dir(list), 0o755); err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(dir, "elsewhere.png")
	body := "frame_0.png\n\nsub/frame_1.png\n" + abs + "\n"
	if err := os.WriteFile(list, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileList(list)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "frames", "frame_0.png"),
		filepath.Join(dir, "frames", "sub", "frame_1.png"),
		abs,
	}
	if len(got) != len(want) {
		t.Fatalf("ReadFileList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Render(context.Background(), Job{
		Snapshots: []int{0, 1, 2},
		Build: func(i int) (*diagram.Figure, error) {
			return nil, boom
		},
		Prefix: filepath.Join(t.TempDir(), "f"),
		Format: "png",
	})
	if !errors.Is(err, boom) {
		t.Errorf("got %v, want the builder error", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Render(ctx, Job{
		Snapshots: []int{0, 1},
		Build:     frameBuilder(t),
		Prefix:    filepath.Join(t.TempDir(), "f"),
		Format:    "png",
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestAssemble(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.png"),
	}
	writePNG(t, paths[0], 40, 40, color.White)
	writePNG(t, paths[1], 40, 40, color.Black)
	writePNG(t, paths[2], 80, 40, color.White)

	out := filepath.Join(dir, "anim", "run.gif")
	if err := Assemble(context.Background(), paths, out, 5, 20); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}

	if len(anim.Image) != 3 {
		t.Fatalf("got %d frames", len(anim.Image))
	}
	for i, img := range anim.Image {
		if img.Bounds().Dx() != 20 {
			t.Errorf("frame %d width %d, want 20", i, img.Bounds().Dx())
		}
		if anim.Delay[i] != 20 {
			t.Errorf("frame %d delay %d, want 20", i, anim.Delay[i])
		}
	}
	if h := anim.Image[2].Bounds().Dy(); h != 10 {
		t.Errorf("wide frame height %d, want 10", h)
	}
}

func TestAssembleErrors(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "x.gif")

	if err := Assemble(context.Background(), nil, out, 10, 0); err == nil {
		t.Error("expected an error with no frames")
	}
	if err := Assemble(context.Background(), []string{filepath.Join(dir, "missing.png")}, out, 10, 0); err == nil {
		t.Error("expected an error for a missing frame")
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Assemble(context.Background(), []string{bad}, out, 10, 0); err == nil {
		t.Error("expected a decode error")
	}
}
