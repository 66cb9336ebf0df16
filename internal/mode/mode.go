// Package mode holds the three override toggles shared between the input
// handlers and the lamp-update routine.
package mode

import "go.uber.org/atomic"

// Mode is the override that currently determines lamp output.
type Mode string

const (
	ModeCycle     Mode = "cycle"
	ModeBlinking  Mode = "blinking"
	ModeEmergency Mode = "emergency"
	ModeOff       Mode = "off"
)

// Flags are independent toggles. Each one has exactly one writer (its input
// handler) and is read by the lamp-update routine; every access is a single
// atomic word, so no lock spans more than one flag.
type Flags struct {
	emergency atomic.Bool
	powerOff  atomic.Bool
	blinking  atomic.Bool
}

func (f *Flags) ToggleEmergency() { f.emergency.Toggle() }
func (f *Flags) TogglePowerOff()  { f.powerOff.Toggle() }
func (f *Flags) ToggleBlinking()  { f.blinking.Toggle() }

func (f *Flags) Emergency() bool { return f.emergency.Load() }
func (f *Flags) PowerOff() bool  { return f.powerOff.Load() }
func (f *Flags) Blinking() bool  { return f.blinking.Load() }

// Snapshot reads each flag once. Flags toggled while the snapshot is taken
// may or may not be included; both outcomes are valid observations.
func (f *Flags) Snapshot() Snapshot {
	return Snapshot{
		PowerOff:  f.powerOff.Load(),
		Emergency: f.emergency.Load(),
		Blinking:  f.blinking.Load(),
	}
}

// Snapshot is a point-in-time copy of Flags.
type Snapshot struct {
	Emergency bool
	PowerOff  bool
	Blinking  bool
}

// Effective applies the priority rule: power-off, then emergency, then
// blinking, then the normal cycle.
func (s Snapshot) Effective() Mode {
	switch {
	case s.PowerOff:
		return ModeOff
	case s.Emergency:
		return ModeEmergency
	case s.Blinking:
		return ModeBlinking
	default:
		return ModeCycle
	}
}
