//go:build tinygo

// Command traffic-light-mcu runs the traffic light directly on a
// microcontroller with TinyGo. The emergency and power buttons use pin
// interrupts; the blink button is polled from the main loop.
package main

import (
	"machine"

	"traffic-light-service/internal/clock"
	"traffic-light-service/internal/input"
	"traffic-light-service/internal/lamps"
	"traffic-light-service/internal/mode"
	"traffic-light-service/internal/scheduler"
)

// Arduino header pin assignment
var (
	lampPins = map[string]machine.Pin{
		lamps.Red.Channel():    machine.D5,
		lamps.Yellow.Channel(): machine.D6,
		lamps.Green.Channel():  machine.D7,
		lamps.Blink.Channel():  machine.D8,
	}

	emergencyPin   = machine.D2
	powerPin       = machine.D3
	blinkButtonPin = machine.D4
)

type pinOutput map[string]machine.Pin

func (p pinOutput) WriteDigitalOutput(channel string, value bool) error {
	if pin, ok := p[channel]; ok {
		pin.Set(value)
	}
	return nil
}

func main() {
	out := pinOutput(lampPins)
	for _, pin := range out {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	for _, pin := range []machine.Pin{emergencyPin, powerPin, blinkButtonPin} {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	clk := clock.NewMonotonic()
	var flags mode.Flags

	emergency := input.NewEdgeHandler("emergency", flags.ToggleEmergency)
	power := input.NewEdgeHandler("power", flags.TogglePowerOff)
	blink := input.NewPolledButton("blink_button", flags.ToggleBlinking)

	emergencyPin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		emergency.OnFallingEdge(clk.Micros())
	})
	powerPin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		power.OnFallingEdge(clk.Micros())
	})

	updater := lamps.NewUpdater(&flags, out, clk.Millis())
	sched := scheduler.New()
	sched.Add(scheduler.NewTask("lamp-update", 100, scheduler.Forever, func(now uint32) {
		updater.Update(now)
	}), true)

	for {
		sched.Execute(clk.Millis())
		blink.Poll(input.Level(blinkButtonPin.Get()), clk.Millis())
	}
}
