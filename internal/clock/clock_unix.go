//go:build linux && !baremetal

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// Monotonic counts from the moment it was created using CLOCK_MONOTONIC,
// which is not affected by wall-clock adjustments.
type Monotonic struct {
	origin int64
}

func NewMonotonic() *Monotonic {
	return &Monotonic{origin: monotonicNanos()}
}

func (m *Monotonic) elapsed() uint64 {
	return uint64(monotonicNanos() - m.origin)
}

func (m *Monotonic) Millis() uint32 {
	return uint32(m.elapsed() / uint64(time.Millisecond))
}

func (m *Monotonic) Micros() uint32 {
	return uint32(m.elapsed() / uint64(time.Microsecond))
}

func monotonicNanos() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC is always available on Linux; the runtime's
		// monotonic reading is the next best thing.
		return int64(time.Since(processStart))
	}
	return ts.Nano()
}

var processStart = time.Now()
