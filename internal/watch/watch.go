package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long a file must stay quiet before it is re-read
const DefaultDelay = 500 * time.Millisecond

// Watcher calls OnChange when Path has been written and then left alone for
// Delay. The simulation appends a pair of rows per output step, so a change
// is only acted on once the writes settle.
type Watcher struct {
	Path     string
	Delay    time.Duration
	OnChange func()
	// OnError receives watcher errors. Nil ignores them.
	OnError func(error)
}

// Watch runs a Watcher until ctx is cancelled
func Watch(ctx context.Context, path string, delay time.Duration, fn func()) error {
	w := &Watcher{Path: path, Delay: delay, OnChange: fn}
	return w.Run(ctx)
}

// Run blocks until ctx is cancelled or the underlying watcher fails
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return fmt.Errorf("no change handler")
	}
	name, err := filepath.Abs(w.Path)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory so the file can be replaced as well as appended to
	if err := fw.Add(filepath.Dir(name)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(name), err)
	}

	return w.loop(ctx, name, fw.Events, fw.Errors)
}

func (w *Watcher) loop(ctx context.Context, name string, events <-chan fsnotify.Event, errs <-chan error) error {
	delay := w.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fire = time.After(delay)
			}

		case <-fire:
			fire = nil
			w.OnChange()

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}
