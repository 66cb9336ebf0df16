package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/librescoot/librefsm"

	"traffic-light-service/internal/clock"
	"traffic-light-service/internal/fsm"
	"traffic-light-service/internal/hardware"
	"traffic-light-service/internal/input"
	"traffic-light-service/internal/lamps"
	"traffic-light-service/internal/logger"
	"traffic-light-service/internal/mode"
	"traffic-light-service/internal/scheduler"
)

const (
	// LampUpdateInterval is the cadence of the lamp-update task.
	LampUpdateInterval uint32 = 100
	// LoopInterval is how often the main loop dispatches the scheduler and
	// samples the polled button.
	LoopInterval = time.Millisecond
)

type TrafficLightSystem struct {
	logger    *logger.Logger
	io        HardwareIO
	publisher StatePublisher
	clock     clock.Clock

	flags       mode.Flags
	emergency   *input.EdgeHandler
	power       *input.EdgeHandler
	blinkButton *input.PolledButton
	scheduler   *scheduler.Scheduler
	lampTask    *scheduler.Task
	updater     *lamps.Updater

	machine   *librefsm.Machine
	fsmCancel context.CancelFunc

	// Owned by the main loop
	reported     mode.Mode
	lastSnapshot mode.Snapshot
	pollFailing  bool
	writeFailing bool

	mu          sync.RWMutex
	mode        mode.Mode     // current FSM state
	snapshot    mode.Snapshot // snapshot the FSM guards evaluate
	initialized bool
}

// NewTrafficLightSystem wires the system. publisher may be nil.
func NewTrafficLightSystem(io HardwareIO, publisher StatePublisher, clk clock.Clock, l *logger.Logger) *TrafficLightSystem {
	s := &TrafficLightSystem{
		logger:    l,
		io:        io,
		publisher: publisher,
		clock:     clk,
		scheduler: scheduler.New(),
		reported:  mode.ModeCycle,
		mode:      mode.ModeCycle,
	}
	s.emergency = input.NewEdgeHandler(hardware.ChannelEmergency, s.flags.ToggleEmergency)
	s.power = input.NewEdgeHandler(hardware.ChannelPower, s.flags.TogglePowerOff)
	s.blinkButton = input.NewPolledButton(hardware.ChannelBlinkButton, s.flags.ToggleBlinking)
	s.lampTask = scheduler.NewTask("lamp-update", LampUpdateInterval, scheduler.Forever, s.updateLamps)
	return s
}

// Start brings up hardware with every lamp off and every mode cleared,
// anchors the cycle at the current instant and arms the lamp task.
func (s *TrafficLightSystem) Start(ctx context.Context) error {
	s.logger.Infof("Starting traffic light system")

	if err := s.io.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize hardware: %w", err)
	}
	if err := lamps.AllOff(s.io); err != nil {
		return fmt.Errorf("failed to switch lamps off: %w", err)
	}

	s.updater = lamps.NewUpdater(&s.flags, s.io, s.clock.Millis())

	s.io.RegisterEdgeCallback(hardware.ChannelEmergency, s.onEdge)
	s.io.RegisterEdgeCallback(hardware.ChannelPower, s.onEdge)

	if s.publisher != nil {
		if err := s.publisher.Connect(); err != nil {
			s.logger.Warnf("Status publishing disabled: %v", err)
			s.publisher = nil
		}
	}

	if err := s.initFSM(ctx); err != nil {
		return fmt.Errorf("failed to start mode FSM: %w", err)
	}

	s.scheduler.Add(s.lampTask, true)

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()

	s.logger.Infof("System started, cycle anchored at %dms", s.updater.CycleStart())
	return nil
}

// onEdge runs on the GPIO event goroutine. It must stay short: no logging,
// no calls into the scheduler or lamp logic.
func (s *TrafficLightSystem) onEdge(channel string) {
	now := s.clock.Micros()
	switch channel {
	case hardware.ChannelEmergency:
		s.emergency.OnFallingEdge(now)
	case hardware.ChannelPower:
		s.power.OnFallingEdge(now)
	}
}

// Run is the cooperative main loop. Each iteration dispatches due scheduler
// tasks and then samples the blink button. It returns when ctx is done.
func (s *TrafficLightSystem) Run(ctx context.Context) error {
	s.mu.RLock()
	ready := s.initialized
	s.mu.RUnlock()
	if !ready {
		return fmt.Errorf("system not started")
	}

	ticker := time.NewTicker(LoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infof("Main loop stopped")
			return nil
		case <-ticker.C:
			s.step()
		}
	}
}

func (s *TrafficLightSystem) step() {
	s.scheduler.Execute(s.clock.Millis())
	s.pollBlinkButton()
}

func (s *TrafficLightSystem) pollBlinkButton() {
	raw, err := s.io.ReadDigitalInput(hardware.ChannelBlinkButton)
	if err != nil {
		if !s.pollFailing {
			s.logger.Warnf("Failed to read %s: %v", hardware.ChannelBlinkButton, err)
			s.pollFailing = true
		}
		return
	}
	if s.pollFailing {
		s.logger.Infof("Reading %s again", hardware.ChannelBlinkButton)
		s.pollFailing = false
	}
	s.blinkButton.Poll(input.Level(raw), s.clock.Millis())
}

// updateLamps is the lamp-update task.
func (s *TrafficLightSystem) updateLamps(now uint32) {
	state, snap, err := s.updater.Update(now)
	if err != nil {
		if !s.writeFailing {
			s.logger.Warnf("Failed to write lamps: %v", err)
			s.writeFailing = true
		}
	} else if s.writeFailing {
		s.logger.Infof("Lamp writes recovered")
		s.writeFailing = false
	}

	if snap != s.lastSnapshot {
		s.logger.Debugf("Flags changed: emergency=%v power-off=%v blinking=%v (%s)",
			snap.Emergency, snap.PowerOff, snap.Blinking, state)
		s.lastSnapshot = snap
	}
	s.reportMode(snap)
}

// reportMode forwards a new effective mode to the FSM. The send is
// asynchronous so publishing never delays the lamp cadence.
func (s *TrafficLightSystem) reportMode(snap mode.Snapshot) {
	effective := snap.Effective()
	if effective == s.reported {
		return
	}
	s.reported = effective

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	if s.machine != nil {
		s.machine.Send(librefsm.Event{ID: fsm.EvModeChanged})
	}
}

// Flags exposes the mode flags for status reporting.
func (s *TrafficLightSystem) Flags() mode.Snapshot {
	return s.flags.Snapshot()
}

// CurrentMode is the FSM's view of the effective mode.
func (s *TrafficLightSystem) CurrentMode() mode.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Lamps is the output computed by the latest lamp update.
func (s *TrafficLightSystem) Lamps() lamps.State {
	if s.updater == nil {
		return lamps.State{}
	}
	return s.updater.Last()
}

func (s *TrafficLightSystem) Shutdown() {
	s.logger.Infof("Shutting down traffic light system")

	s.lampTask.Disable()
	if s.fsmCancel != nil {
		s.fsmCancel()
	}

	if err := lamps.AllOff(s.io); err != nil {
		s.logger.Warnf("Failed to switch lamps off: %v", err)
	}
	s.io.Cleanup()

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.logger.Warnf("Failed to close publisher: %v", err)
		}
	}

	s.mu.Lock()
	s.initialized = false
	s.mu.Unlock()
}
