package settings

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a Store when its file is edited outside the overlay.
type Watcher struct {
	store       *Store
	watcher     *fsnotify.Watcher
	debounceDur time.Duration
	onChange    func(*IconsBuilderSettings)

	mu      sync.Mutex
	pending time.Time
	doneCh  chan struct{}
}

func NewWatcher(store *Store, onChange func(*IconsBuilderSettings)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors replace the file, so watch the directory.
	dir := filepath.Dir(store.Path())
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	return &Watcher{
		store:       store,
		watcher:     w,
		debounceDur: 300 * time.Millisecond,
		onChange:    onChange,
		doneCh:      make(chan struct{}),
	}, nil
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.doneCh)
	defer w.watcher.Close()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	target := filepath.Clean(w.store.Path())

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			setLog.Error().Err(err).Msg("settings watcher error")

		case <-ticker.C:
			w.flush()
		}
	}
}

// Done is closed once Run returns.
func (w *Watcher) Done() <-chan struct{} {
	return w.doneCh
}

func (w *Watcher) flush() {
	w.mu.Lock()
	due := !w.pending.IsZero() && time.Since(w.pending) >= w.debounceDur
	if due {
		w.pending = time.Time{}
	}
	w.mu.Unlock()
	if !due {
		return
	}

	changed, err := w.store.Reload()
	if err != nil {
		setLog.Warn().Err(err).Msg("settings reload failed, keeping current values")
		return
	}
	if changed && w.onChange != nil {
		w.onChange(w.store.Settings())
	}
}
