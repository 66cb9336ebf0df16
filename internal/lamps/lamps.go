// Package lamps decides what the four lamps show and writes it out.
package lamps

import (
	"fmt"

	"traffic-light-service/internal/clock"
	"traffic-light-service/internal/mode"
)

type Lamp int

const (
	Red Lamp = iota
	Yellow
	Green
	Blink
	lampCount
)

// All lists the lamps in output order.
var All = [lampCount]Lamp{Red, Yellow, Green, Blink}

// Channel is the output channel name the hardware layer knows the lamp by.
func (l Lamp) Channel() string {
	switch l {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blink:
		return "blink"
	default:
		return fmt.Sprintf("lamp%d", int(l))
	}
}

// Timing of the normal cycle and blink modes, in milliseconds.
const (
	CycleDuration   uint32 = 6000
	BlinkHalfPeriod uint32 = 500

	redEnd         uint32 = 2000
	firstYellowEnd uint32 = 2500
	greenEnd       uint32 = 4500
	pulseEnd       uint32 = 5500
	pulseTick      uint32 = 100
)

// pulseTicks are the 100ms ticks of the pulse window that light the blink lamp.
var pulseTicks = map[uint32]bool{0: true, 3: true, 6: true}

// State is one value per lamp, true meaning lit.
type State [lampCount]bool

func (s State) On(l Lamp) bool {
	return s[l]
}

func (s State) String() string {
	return fmt.Sprintf("red=%v yellow=%v green=%v blink=%v", s[Red], s[Yellow], s[Green], s[Blink])
}

func only(l Lamp) State {
	var s State
	s[l] = true
	return s
}

func allLamps(on bool) State {
	return State{on, on, on, on}
}

// Compute returns the lamp state for the given flags at nowMillis. It keeps
// no state of its own: the same inputs always give the same output.
func Compute(flags mode.Snapshot, nowMillis, cycleStart uint32) State {
	switch flags.Effective() {
	case mode.ModeOff:
		return State{}
	case mode.ModeEmergency:
		return only(Red)
	case mode.ModeBlinking:
		return allLamps((nowMillis/BlinkHalfPeriod)%2 == 0)
	default:
		return CycleState(clock.Since(nowMillis, cycleStart) % CycleDuration)
	}
}

// CycleState is the normal-cycle output at elapsed milliseconds into a cycle.
func CycleState(elapsed uint32) State {
	switch {
	case elapsed < redEnd:
		return only(Red)
	case elapsed < firstYellowEnd:
		return only(Yellow)
	case elapsed < greenEnd:
		return only(Green)
	case elapsed < pulseEnd:
		if pulseTicks[(elapsed-greenEnd)/pulseTick] {
			return only(Blink)
		}
		return State{}
	default:
		return only(Yellow)
	}
}
