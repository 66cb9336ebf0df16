package hardware

import (
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"

	"traffic-light-service/internal/logger"
)

// EdgeCallback is invoked from the line's event goroutine on each falling
// edge. It must return quickly.
type EdgeCallback func(channel string)

type LinuxHardwareIO struct {
	logger        *logger.Logger
	config        Config
	chip          *gpiocdev.Chip
	lines         map[string]*gpiocdev.Line
	edgeCallbacks map[string]EdgeCallback
	mu            sync.RWMutex
}

func NewLinuxHardwareIO(config Config, l *logger.Logger) *LinuxHardwareIO {
	return &LinuxHardwareIO{
		logger:        l,
		config:        config,
		lines:         make(map[string]*gpiocdev.Line),
		edgeCallbacks: make(map[string]EdgeCallback),
	}
}

func (io *LinuxHardwareIO) Initialize() error {
	if err := io.config.Validate(); err != nil {
		return fmt.Errorf("invalid GPIO configuration: %w", err)
	}

	io.logger.Infof("Initializing hardware IO on %s", io.config.Chip)

	chip, err := gpiocdev.NewChip(io.config.Chip, gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return fmt.Errorf("failed to open GPIO chip %s: %w", io.config.Chip, err)
	}
	io.chip = chip

	// Lamps start dark
	for name, offset := range io.config.Outputs() {
		line, err := chip.RequestLine(offset, gpiocdev.AsOutput(0))
		if err != nil {
			io.Cleanup()
			return fmt.Errorf("failed to request output line %d for %s: %w", offset, name, err)
		}
		io.addLine(name, line)
		io.logger.Infof("Configured DO %s: line=%d", name, offset)
	}

	for name, offset := range io.config.EdgeInputs() {
		line, err := chip.RequestLine(offset,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithFallingEdge,
			gpiocdev.WithEventHandler(io.edgeHandler(name)))
		if err != nil {
			io.Cleanup()
			return fmt.Errorf("failed to request edge input line %d for %s: %w", offset, name, err)
		}
		io.addLine(name, line)
		io.logger.Infof("Configured DI %s: line=%d (falling edge)", name, offset)
	}

	for name, offset := range io.config.PolledInputs() {
		line, err := chip.RequestLine(offset,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp)
		if err != nil {
			io.Cleanup()
			return fmt.Errorf("failed to request input line %d for %s: %w", offset, name, err)
		}
		io.addLine(name, line)
		io.logger.Infof("Configured DI %s: line=%d (polled)", name, offset)
	}

	return nil
}

func (io *LinuxHardwareIO) addLine(name string, line *gpiocdev.Line) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.lines[name] = line
}

func (io *LinuxHardwareIO) edgeHandler(channel string) gpiocdev.EventHandler {
	return func(evt gpiocdev.LineEvent) {
		if evt.Type != gpiocdev.LineEventFallingEdge {
			return
		}
		io.mu.RLock()
		callback := io.edgeCallbacks[channel]
		io.mu.RUnlock()
		if callback != nil {
			callback(channel)
		}
	}
}

// RegisterEdgeCallback sets the falling-edge callback of an edge input.
// Edges arriving before registration are dropped.
func (io *LinuxHardwareIO) RegisterEdgeCallback(channel string, callback EdgeCallback) {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.edgeCallbacks[channel] = callback
	io.logger.Debugf("Registered edge callback for channel: %s", channel)
}

// ReadDigitalInput returns the raw level of an input line, true for HIGH.
func (io *LinuxHardwareIO) ReadDigitalInput(channel string) (bool, error) {
	io.mu.RLock()
	line, ok := io.lines[channel]
	io.mu.RUnlock()

	if !ok {
		return false, fmt.Errorf("unknown input channel: %s", channel)
	}

	val, err := line.Value()
	if err != nil {
		return false, fmt.Errorf("failed to read DI %s: %w", channel, err)
	}
	return val != 0, nil
}

func (io *LinuxHardwareIO) WriteDigitalOutput(channel string, value bool) error {
	io.mu.RLock()
	line, ok := io.lines[channel]
	io.mu.RUnlock()

	if !ok {
		return fmt.Errorf("unknown digital output channel: %s", channel)
	}

	val := 0
	if value {
		val = 1
	}

	if err := line.SetValue(val); err != nil {
		return fmt.Errorf("failed to set DO %s=%v: %w", channel, value, err)
	}
	return nil
}

func (io *LinuxHardwareIO) Cleanup() {
	io.mu.Lock()
	defer io.mu.Unlock()

	io.logger.Infof("Cleaning up hardware resources")

	for name, line := range io.lines {
		line.Close()
		io.logger.Debugf("Closed GPIO line for %s", name)
	}
	io.lines = make(map[string]*gpiocdev.Line)

	if io.chip != nil {
		io.chip.Close()
		io.chip = nil
	}

	io.logger.Infof("Hardware cleanup complete")
}
