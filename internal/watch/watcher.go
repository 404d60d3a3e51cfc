// Package watch regenerates theme artifacts when the upstream theme
// selection changes on disk.
//
// The upstream TUI writes theme switches to its KV store and config
// files; watching those directories and re-running generation means a
// user who changes their theme sees every embedded tool repaint
// without touching sheen.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// defaultDebounce coalesces bursts of filesystem events. Editors and
// the upstream tool both write config files with several syscalls in
// quick succession; regenerating once per burst is enough.
const defaultDebounce = 500 * time.Millisecond

// RegenerateFunc re-resolves the theme and rewrites the artifact tree.
// Invoked after each debounced change burst.
type RegenerateFunc func(ctx context.Context) error

// Watcher monitors the upstream config and state directories and
// triggers regeneration on relevant changes.
type Watcher struct {
	mu sync.Mutex

	fsw        *fsnotify.Watcher
	dirs       []string
	regenerate RegenerateFunc
	debounce   time.Duration
	log        *zap.Logger

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// New creates a Watcher over dirs. Directories that do not exist are
// skipped at Start time with a warning — a user without an upstream
// config simply gets no regeneration triggers. logger may be nil.
func New(dirs []string, regenerate RegenerateFunc, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		fsw:        fsw,
		dirs:       dirs,
		regenerate: regenerate,
		debounce:   defaultDebounce,
		log:        logger,
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}, nil
}

// Start registers the watch directories and begins processing events
// in a goroutine. It is non-blocking; use Stop or cancel ctx to end
// processing. Calling Start on a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	watched := 0
	for _, dir := range w.dirs {
		if err := w.fsw.Add(dir); err != nil {
			w.log.Warn("cannot watch directory, skipping",
				zap.String("dir", dir), zap.Error(err))
			continue
		}
		watched++
		w.log.Debug("watching directory", zap.String("dir", dir))
	}
	if watched == 0 {
		w.log.Warn("no watchable directories, watcher will idle")
	}

	go w.run(ctx)
	return nil
}

// Stop ends event processing and closes the underlying watcher.
// It blocks until the processing goroutine has exited.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fsw.Close()
}

// run is the event loop. Relevant events arm a debounce timer; when
// the timer fires with no further events, regeneration runs once.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.log.Debug("upstream change detected",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()))

			// Re-arm the debounce window on every relevant event so a
			// burst collapses into one regeneration.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.regenerate(ctx); err != nil {
				w.log.Warn("regeneration failed", zap.Error(err))
			} else {
				w.log.Info("artifacts regenerated")
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// relevant filters events down to the files that can change the
// resolved theme: the KV store, config files, and theme definitions.
func relevant(event fsnotify.Event) bool {
	// Chmod-only events carry no content change.
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	name := filepath.Base(event.Name)
	if name == "kv.json" {
		return true
	}
	switch filepath.Ext(name) {
	case ".json", ".jsonc":
		return true
	}
	return false
}
