package lamps

import (
	"errors"
	"fmt"

	"traffic-light-service/internal/mode"
)

// Output is where lamp values end up. The hardware layer satisfies it.
type Output interface {
	WriteDigitalOutput(channel string, value bool) error
}

// FlagSource yields the current override flags.
type FlagSource interface {
	Snapshot() mode.Snapshot
}

// Updater re-renders every lamp from scratch on each call.
type Updater struct {
	flags      FlagSource
	out        Output
	cycleStart uint32
	last       State
}

// NewUpdater anchors the normal cycle at cycleStart, the startup instant.
func NewUpdater(flags FlagSource, out Output, cycleStart uint32) *Updater {
	return &Updater{
		flags:      flags,
		out:        out,
		cycleStart: cycleStart,
	}
}

func (u *Updater) CycleStart() uint32 {
	return u.cycleStart
}

// Last is the state computed by the most recent Update.
func (u *Updater) Last() State {
	return u.last
}

// Update computes the lamp state at nowMillis and writes all four outputs.
// Every lamp is written even if an earlier write failed; the returned error
// joins all failures.
func (u *Updater) Update(nowMillis uint32) (State, mode.Snapshot, error) {
	snap := u.flags.Snapshot()
	state := Compute(snap, nowMillis, u.cycleStart)
	u.last = state

	var errs []error
	for _, l := range All {
		if err := u.out.WriteDigitalOutput(l.Channel(), state[l]); err != nil {
			errs = append(errs, fmt.Errorf("lamp %s: %w", l.Channel(), err))
		}
	}
	return state, snap, errors.Join(errs...)
}

// AllOff writes every lamp dark regardless of mode.
func AllOff(out Output) error {
	var errs []error
	for _, l := range All {
		if err := out.WriteDigitalOutput(l.Channel(), false); err != nil {
			errs = append(errs, fmt.Errorf("lamp %s: %w", l.Channel(), err))
		}
	}
	return errors.Join(errs...)
}
