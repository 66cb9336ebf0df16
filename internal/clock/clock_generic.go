//go:build !linux || baremetal

package clock

import "time"

// Monotonic counts from the moment it was created using the runtime's
// monotonic clock reading.
type Monotonic struct {
	origin time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{origin: time.Now()}
}

func (m *Monotonic) Millis() uint32 {
	return uint32(time.Since(m.origin) / time.Millisecond)
}

func (m *Monotonic) Micros() uint32 {
	return uint32(time.Since(m.origin) / time.Microsecond)
}
