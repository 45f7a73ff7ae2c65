// Package watcher reloads the converto config file when it changes on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default debounce window. Editors emit a burst of
// write/rename events per save; one reload per burst is enough.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback invocation.
// Only the last callback scheduled within the window runs.
type Debouncer struct {
	window time.Duration
	timer  *time.Timer
	mu     sync.Mutex
	seq    uint64
}

// NewDebouncer creates a Debouncer. A zero window uses DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the window elapses, cancelling any
// previously scheduled callback.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// Stop() can return false once the timer has fired; the sequence
		// check keeps a stale callback from running alongside a newer one.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
