package animate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/goshore/internal/atomicfile"
	"github.com/alexiusacademia/goshore/internal/diagram"
)

// FileList is the name of the frame index written beside the frames
const FileList = "filelist.txt"

// Builder draws the figure for snapshot i of a series
type Builder func(i int) (*diagram.Figure, error)

// Job describes a frame sequence
type Job struct {
	// Snapshots are the series indices to render, in frame order
	Snapshots []int
	Build     Builder

	// Frames are written to <Prefix>_<n>.<Format>
	Prefix string
	Format string
	Page   diagram.Page

	// Workers bounds the frames rendered at once. Zero uses every CPU.
	Workers int
	// FileList writes filelist.txt next to the frames
	FileList bool

	// Progress, when set, is called after each frame. It may be called
	// from several goroutines at once.
	Progress func(done, total int)
}

// FramePath returns the path of frame n
func FramePath(prefix string, n int, format string) string {
	return fmt.Sprintf("%s_%d.%s", prefix, n, strings.TrimPrefix(format, "."))
}

// Render draws every frame of the job and returns the frame paths in order.
// Rendering stops at the first error or when ctx is cancelled.
func Render(ctx context.Context, job Job) ([]string, error) {
	if job.Build == nil {
		return nil, fmt.Errorf("no frame builder")
	}
	if job.Prefix == "" || job.Format == "" {
		return nil, fmt.Errorf("frame prefix and format are required")
	}

	workers := job.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	paths := make([]string, len(job.Snapshots))
	for n := range job.Snapshots {
		paths[n] = FramePath(job.Prefix, n, job.Format)
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n, idx := range job.Snapshots {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fig, err := job.Build(idx)
			if err != nil {
				return fmt.Errorf("frame %d (snapshot %d): %w", n, idx, err)
			}
			if err := fig.Save(paths[n], job.Page); err != nil {
				return fmt.Errorf("frame %d: %w", n, err)
			}
			if job.Progress != nil {
				job.Progress(int(done.Add(1)), len(paths))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if job.FileList {
		if err := WriteFileList(filepath.Join(filepath.Dir(job.Prefix), FileList), paths); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// WriteFileList writes one frame path per line, relative to the list's
// directory so the frames and their list can be moved together
func WriteFileList(filename string, paths []string) error {
	dir := filepath.Dir(filename)
	return atomicfile.Write(filename, func(w io.Writer) error {
		for _, p := range paths {
			if rel, err := filepath.Rel(dir, p); err == nil {
				p = rel
			}
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReadFileList reads a frame index, skipping blank lines. Relative entries
// are resolved against the list's directory.
func ReadFileList(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(filepath.Dir(filename), line)
		}
		paths = append(paths, line)
	}
	return paths, sc.Err()
}
