package watcher

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"fnav/internal/app/errors"
	"fnav/internal/config"
	"fnav/internal/config/logger"
)

// Change reports that entries of a watched directory changed
type Change struct {
	Dir   string
	Names []string
}

// Watcher follows the displayed directory and reports debounced changes
type Watcher interface {
	Watch(dir string) error
	Changes() <-chan Change
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	fsWatcher *fsnotify.Watcher
	matcher   Matcher
	debouncer Debouncer
	changes   chan Change
	dir       string
	log       logger.Logger
	mu        sync.RWMutex
	closed    bool
}

// disabled is the Watcher used when auto refresh is turned off; it opens no OS handles
type disabled struct {
	changes chan Change
}

// NewWatcher creates a new Watcher instance
func NewWatcher(cfg *config.Config, log logger.Logger) (Watcher, error) {
	if !cfg.Watch.Enabled {
		changes := make(chan Change)
		close(changes)

		return &disabled{changes: changes}, nil
	}

	matcher, err := NewMatcher(cfg.Watch.Ignore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidWatchIgnore, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrWatchFailed, err)
	}

	w := &watcher{
		fsWatcher: fsw,
		matcher:   matcher,
		changes:   make(chan Change, 1),
		log:       log.WithComponent("WATCHER"),
	}

	w.debouncer = NewDebouncer(cfg.Watch.Debounce, w.emit)

	go w.processEvents()

	return w, nil
}

// Watch replaces the watched directory with dir
func (w *watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || dir == w.dir {
		return nil
	}

	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			w.log.Debug().Err(err).Msgf("Failed to stop watching %s", w.dir)
		}
	}

	w.debouncer.Cancel()
	w.dir = ""

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("%w %s: %w", errors.ErrWatchFailed, dir, err)
	}

	w.dir = dir
	w.log.Debug().Msgf("Watching %s", dir)

	return nil
}

// Changes returns the channel of debounced changes; it is closed by Close
func (w *watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()
	w.fsWatcher.Close()
	close(w.changes)
}

// processEvents handles fsnotify events until the fsnotify watcher is closed
func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent forwards a relevant event of the watched directory to the debouncer
func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	dir := filepath.Dir(event.Name)
	name := filepath.Base(event.Name)

	w.mu.RLock()
	watched := w.dir
	w.mu.RUnlock()

	if dir != watched || w.matcher.Ignored(name) {
		return
	}

	w.debouncer.Trigger(dir, name)
}

// emit delivers a change, replacing an undelivered one
func (w *watcher) emit(dir string, names []string) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed || dir != w.dir {
		return
	}

	change := Change{Dir: dir, Names: names}

	select {
	case w.changes <- change:
		return
	default:
	}

	select {
	case <-w.changes:
	default:
	}

	select {
	case w.changes <- change:
	default:
	}
}

// isRelevantEvent returns true if the event changes the directory listing
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}

func (d *disabled) Watch(string) error {
	return nil
}

func (d *disabled) Changes() <-chan Change {
	return d.changes
}

func (d *disabled) Close() {}
