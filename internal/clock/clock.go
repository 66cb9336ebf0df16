// Package clock provides free-running, wrapping time counters.
//
// Both counters are uint32 and wrap around: milliseconds after ~49.7 days,
// microseconds after ~71.6 minutes. Durations must always be measured with
// Since (unsigned subtraction), which stays correct across a wrap as long as
// the measured interval is shorter than one full counter period.
package clock

import (
	"time"

	"go.uber.org/atomic"
)

// Clock is a monotonic time source counted from an arbitrary origin.
type Clock interface {
	Millis() uint32
	Micros() uint32
}

// Since returns now - then on the wrapping counter.
func Since(now, then uint32) uint32 {
	return now - then
}

// Manual is a Clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	micros atomic.Uint64
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Millis() uint32 {
	return uint32(m.micros.Load() / 1000)
}

func (m *Manual) Micros() uint32 {
	return uint32(m.micros.Load())
}

// Advance moves the clock forward by d, truncated to whole microseconds.
func (m *Manual) Advance(d time.Duration) {
	m.micros.Add(uint64(d / time.Microsecond))
}

// Set places the clock at an absolute offset from its origin.
func (m *Manual) Set(d time.Duration) {
	m.micros.Store(uint64(d / time.Microsecond))
}
