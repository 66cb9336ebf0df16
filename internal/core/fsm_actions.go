package core

import (
	"context"

	"github.com/librescoot/librefsm"

	"traffic-light-service/internal/fsm"
	"traffic-light-service/internal/mode"
)

// Ensure TrafficLightSystem implements fsm.Actions
var _ fsm.Actions = (*TrafficLightSystem)(nil)

// initFSM builds and starts the effective-mode machine. It stops when ctx
// is cancelled or on Shutdown.
func (s *TrafficLightSystem) initFSM(ctx context.Context) error {
	def := fsm.NewDefinition(s)
	machine, err := def.Build()
	if err != nil {
		return err
	}
	s.machine = machine

	machine.OnStateChange(func(from, to librefsm.StateID) {
		newMode := fsm.ModeFor(to)

		s.mu.Lock()
		s.mode = newMode
		snap := s.snapshot
		s.mu.Unlock()

		s.logger.Infof("Mode transition: %s -> %s", fsm.ModeFor(from), newMode)

		if s.publisher != nil {
			if err := s.publisher.PublishMode(newMode, snap); err != nil {
				s.logger.Warnf("Failed to publish mode: %v", err)
			}
		}
	})

	fsmCtx, cancel := context.WithCancel(ctx)
	if err := machine.Start(fsmCtx); err != nil {
		cancel()
		return err
	}
	s.fsmCancel = cancel

	s.logger.Debugf("Mode FSM started in %s", s.CurrentMode())
	return nil
}

func (s *TrafficLightSystem) guardSnapshot() mode.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// === State Entry Actions ===

func (s *TrafficLightSystem) EnterCycle(c *librefsm.Context) error {
	s.logger.Infof("Running normal cycle")
	return nil
}

func (s *TrafficLightSystem) EnterBlinking(c *librefsm.Context) error {
	s.logger.Infof("All lamps blinking")
	return nil
}

func (s *TrafficLightSystem) EnterEmergency(c *librefsm.Context) error {
	s.logger.Infof("Emergency: red only")
	return nil
}

func (s *TrafficLightSystem) EnterOff(c *librefsm.Context) error {
	s.logger.Infof("Powered off: all lamps dark")
	return nil
}

// === Guards ===

func (s *TrafficLightSystem) IsPowerOff(c *librefsm.Context) bool {
	return s.guardSnapshot().Effective() == mode.ModeOff
}

func (s *TrafficLightSystem) IsEmergency(c *librefsm.Context) bool {
	return s.guardSnapshot().Effective() == mode.ModeEmergency
}

func (s *TrafficLightSystem) IsBlinking(c *librefsm.Context) bool {
	return s.guardSnapshot().Effective() == mode.ModeBlinking
}

func (s *TrafficLightSystem) IsNormal(c *librefsm.Context) bool {
	return s.guardSnapshot().Effective() == mode.ModeCycle
}
