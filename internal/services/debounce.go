// internal/services/debounce.go
package services

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the debounce applied by search-as-you-type
// clients before a query is executed.
const DefaultSearchDelay = 250 * time.Millisecond

// Debouncer reproduces the search box discipline: a query is executed
// only after the delay elapses with no newer submission, and a result is
// delivered only if its query is still the most recent one. Stale timers
// are cancelled; superseded results are discarded.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	seq   uint64
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Submit schedules run after the debounce delay. A later Submit cancels
// the pending one. deliver is invoked with run's result only when no
// newer submission happened while run executed.
func (d *Debouncer) Submit(run func() interface{}, deliver func(interface{})) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		result := run()
		d.mu.Lock()
		latest := d.seq == seq
		d.mu.Unlock()
		if latest {
			deliver(result)
		}
	})
}

// Stop cancels any pending submission.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
