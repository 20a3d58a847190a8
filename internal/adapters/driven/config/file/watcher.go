package file

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/lookfar-cli/internal/logger"
)

// ReloadFunc is invoked after the store has been reloaded from disk.
type ReloadFunc func(store *ConfigStore)

// Watcher observes the config file and reloads the store when it changes.
// Editors commonly replace files on save, so the watcher monitors the
// containing directory and filters events down to the config path.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	onReload ReloadFunc

	mu      sync.Mutex
	done    chan struct{}
	started bool
}

// NewWatcher creates a watcher for the given store.
// onReload may be nil when only the store refresh is needed.
func NewWatcher(store *ConfigStore, onReload ReloadFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(store.Path())); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watch config dir: %w", err)
	}

	return &Watcher{
		store:    store,
		watcher:  fsWatcher,
		onReload: onReload,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching in a background goroutine. Calling Start more
// than once has no effect.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true

	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", w.store.Path())

			if w.onReload != nil {
				w.onReload(w.store)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error: %v", err)
		}
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		close(w.done)
		w.started = false
	}
	return w.watcher.Close()
}
