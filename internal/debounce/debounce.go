// Package debounce suppresses repeated button transitions that arrive
// closer together than a minimum quiet interval.
package debounce

import (
	"traffic-light-service/internal/clock"

	"go.uber.org/atomic"
)

const (
	// EdgeIntervalMicros applies to the interrupt-driven buttons.
	EdgeIntervalMicros uint32 = 200000
	// PollIntervalMillis applies to the polled button.
	PollIntervalMillis uint32 = 50
)

// Debouncer accepts an event only if at least Interval counter units have
// passed since the previously accepted one. The unit is whatever clock the
// caller timestamps with; it must be the same for every call.
//
// The last accepted timestamp starts at zero, the counter value at startup.
type Debouncer struct {
	last     atomic.Uint32
	interval uint32
}

func New(interval uint32) *Debouncer {
	return &Debouncer{interval: interval}
}

func (d *Debouncer) Interval() uint32 {
	return d.interval
}

// Accept reports whether an event at now passes the debounce window and,
// if so, records now as the last accepted event. It never blocks and is
// safe to call from an edge callback while other goroutines read.
func (d *Debouncer) Accept(now uint32) bool {
	last := d.last.Load()
	if clock.Since(now, last) < d.interval {
		return false
	}
	return d.last.CompareAndSwap(last, now)
}

// Last returns the timestamp of the last accepted event.
func (d *Debouncer) Last() uint32 {
	return d.last.Load()
}
