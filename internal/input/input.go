// Package input turns raw button activity into mode toggles.
//
// Buttons are wired active-low against a pull-up: idle reads HIGH, a press
// pulls the line LOW, so a press is a falling edge.
package input

import (
	"traffic-light-service/internal/debounce"
)

type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// EdgeHandler reacts to hardware falling-edge notifications. OnFallingEdge
// may run on an interrupt or event goroutine: it does not block, allocate
// or log, and touches only its own debouncer and toggle.
type EdgeHandler struct {
	name      string
	debouncer *debounce.Debouncer
	toggle    func()
}

// NewEdgeHandler builds a handler debounced on the microsecond counter.
func NewEdgeHandler(name string, toggle func()) *EdgeHandler {
	return &EdgeHandler{
		name:      name,
		debouncer: debounce.New(debounce.EdgeIntervalMicros),
		toggle:    toggle,
	}
}

func (h *EdgeHandler) Name() string {
	return h.name
}

// OnFallingEdge toggles the mode if the edge at nowMicros is outside the
// debounce window. It reports whether the edge was accepted.
func (h *EdgeHandler) OnFallingEdge(nowMicros uint32) bool {
	if !h.debouncer.Accept(nowMicros) {
		return false
	}
	h.toggle()
	return true
}

// PolledButton reconstructs falling edges from periodic level samples.
// It is owned by the main loop and is not safe for concurrent use.
type PolledButton struct {
	name      string
	previous  Level
	debouncer *debounce.Debouncer
	toggle    func()
}

// NewPolledButton builds a button debounced on the millisecond counter.
// The previous level starts HIGH, the pull-up idle level.
func NewPolledButton(name string, toggle func()) *PolledButton {
	return &PolledButton{
		name:      name,
		previous:  High,
		debouncer: debounce.New(debounce.PollIntervalMillis),
		toggle:    toggle,
	}
}

func (b *PolledButton) Name() string {
	return b.name
}

// Poll feeds one sample. A HIGH to LOW change outside the debounce window
// toggles the mode. The sample always becomes the new previous level.
func (b *PolledButton) Poll(level Level, nowMillis uint32) bool {
	edge := b.previous == High && level == Low
	b.previous = level
	if !edge || !b.debouncer.Accept(nowMillis) {
		return false
	}
	b.toggle()
	return true
}
