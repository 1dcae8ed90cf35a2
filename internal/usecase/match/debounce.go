package match

import (
	"sync"
	"time"
)

// SearchDebouncer coalesces a burst of search input changes into a
// single fetch: each Trigger restarts the quiescence window and
// cancels whatever was pending, so only the last query of a burst
// fires.
type SearchDebouncer struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
}

func NewSearchDebouncer(window time.Duration) *SearchDebouncer {
	return &SearchDebouncer{window: window}
}

// Trigger schedules fn(query) after the quiescence window, replacing
// any pending schedule.
func (d *SearchDebouncer) Trigger(query string, fn func(query string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		fn(query)
	})
}

// Stop cancels any pending fetch, e.g. when the session ends.
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
