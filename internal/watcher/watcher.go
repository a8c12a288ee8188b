// Package watcher reports changes to a single file, debounced.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounceDuration sets the debounce window
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// Watcher watches one file. It subscribes to the parent directory so that
// editors replacing the file by rename are still noticed.
type Watcher struct {
	path      string
	debouncer *Debouncer

	fsw     *fsnotify.Watcher
	changed chan struct{}
	errs    chan error

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for path. Call Start to begin watching.
func NewWatcher(path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	w := &Watcher{
		path:      abs,
		debouncer: NewDebouncer(0),
		changed:   make(chan struct{}, 1),
		errs:      make(chan error, 1),
		stop:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Changed receives one value per debounced burst of changes. Bursts
// that arrive while a value is pending are merged into it.
func (w *Watcher) Changed() <-chan struct{} {
	return w.changed
}

// Errors receives watch errors. Errors are dropped while one is pending.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Start begins watching until ctx is done or Stop is called
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.loop(ctx)
	log.Printf("Watcher: watching %s", w.path)
	return nil
}

// Stop ends watching and waits for the watch goroutine to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.debouncer.Cancel()
		if w.fsw != nil {
			w.fsw.Close()
		}
	})
	w.wg.Wait()
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			w.debouncer.Cancel()
			return
		case <-w.stop:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.debouncer.Trigger(w.notify)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher: error on %s: %v", w.path, err)
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) notify() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}
