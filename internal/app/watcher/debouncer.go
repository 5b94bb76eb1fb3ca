package watcher

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces rapid changes of one directory into a single callback after a delay
type Debouncer interface {
	Trigger(dir, name string)
	Cancel()
	Stop()
}

// debouncer implements the Debouncer interface
type debouncer struct {
	duration time.Duration
	callback func(dir string, names []string)
	timer    *time.Timer
	dir      string
	names    map[string]struct{}
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer creates a new Debouncer with the specified duration and callback
func NewDebouncer(duration time.Duration, callback func(dir string, names []string)) Debouncer {
	return &debouncer{
		duration: duration,
		callback: callback,
		names:    make(map[string]struct{}),
	}
}

// Trigger records a changed name and resets the timer. A different directory discards pending names.
func (d *debouncer) Trigger(dir, name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if dir != d.dir {
		d.dir = dir
		d.names = make(map[string]struct{})
	}

	d.names[name] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.fire)
}

// Cancel drops pending changes without stopping the debouncer
func (d *debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reset()
}

// Stop cancels pending changes and ignores further triggers
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.reset()
}

func (d *debouncer) reset() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.dir = ""
	d.names = make(map[string]struct{})
}

// fire executes the callback with the accumulated names in sorted order
func (d *debouncer) fire() {
	d.mu.Lock()

	if d.stopped || len(d.names) == 0 {
		d.mu.Unlock()
		return
	}

	dir := d.dir
	names := make([]string, 0, len(d.names))

	for n := range d.names {
		names = append(names, n)
	}

	sort.Strings(names)

	d.names = make(map[string]struct{})
	d.timer = nil

	d.mu.Unlock()

	d.callback(dir, names)
}
