package core

import (
	"traffic-light-service/internal/hardware"
	"traffic-light-service/internal/mode"
)

// HardwareIO defines the pin operations needed by TrafficLightSystem
type HardwareIO interface {
	Initialize() error
	Cleanup()

	// ReadDigitalInput returns the raw line level, true for HIGH.
	ReadDigitalInput(channel string) (bool, error)
	WriteDigitalOutput(channel string, value bool) error
	RegisterEdgeCallback(channel string, callback hardware.EdgeCallback)
}

// StatePublisher receives effective-mode transitions. It is optional.
type StatePublisher interface {
	Connect() error
	PublishMode(m mode.Mode, flags mode.Snapshot) error
	Close() error
}
