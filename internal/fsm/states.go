package fsm

import (
	"github.com/librescoot/librefsm"

	"traffic-light-service/internal/mode"
)

// Effective-mode states. The IDs match mode.Mode so they can be published as-is.
const (
	StateCycle     librefsm.StateID = librefsm.StateID(mode.ModeCycle)
	StateBlinking  librefsm.StateID = librefsm.StateID(mode.ModeBlinking)
	StateEmergency librefsm.StateID = librefsm.StateID(mode.ModeEmergency)
	StateOff       librefsm.StateID = librefsm.StateID(mode.ModeOff)
)

// Events
const (
	// EvModeChanged is sent whenever the effective mode of the latest flag
	// snapshot differs from the one last reported.
	EvModeChanged librefsm.EventID = "mode-changed"
)

// States lists every state in priority order, highest first.
var States = []librefsm.StateID{StateOff, StateEmergency, StateBlinking, StateCycle}

// StateFor maps an effective mode to its state.
func StateFor(m mode.Mode) librefsm.StateID {
	return librefsm.StateID(m)
}

// ModeFor maps a state back to the effective mode.
func ModeFor(id librefsm.StateID) mode.Mode {
	return mode.Mode(id)
}
