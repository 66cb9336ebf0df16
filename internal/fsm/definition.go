package fsm

import (
	"github.com/librescoot/librefsm"
)

// NewDefinition creates the effective-mode FSM definition. Every state can
// reach every other state on EvModeChanged; the guard of the target decides.
func NewDefinition(actions Actions) *librefsm.Definition {
	enter := map[librefsm.StateID]func(*librefsm.Context) error{
		StateCycle:     actions.EnterCycle,
		StateBlinking:  actions.EnterBlinking,
		StateEmergency: actions.EnterEmergency,
		StateOff:       actions.EnterOff,
	}
	guard := map[librefsm.StateID]func(*librefsm.Context) bool{
		StateOff:       actions.IsPowerOff,
		StateEmergency: actions.IsEmergency,
		StateBlinking:  actions.IsBlinking,
		StateCycle:     actions.IsNormal,
	}

	def := librefsm.NewDefinition()
	for _, s := range States {
		def = def.State(s, librefsm.WithOnEnter(enter[s]))
	}

	for _, from := range States {
		for _, to := range States {
			if from == to {
				continue
			}
			def = def.Transition(from, EvModeChanged, to,
				librefsm.WithGuard(guard[to]),
			)
		}
	}

	return def.Initial(StateCycle)
}
