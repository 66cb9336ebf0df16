package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"traffic-light-service/internal/mode"
)

func TestEdgeHandlerDebounce(t *testing.T) {
	var flags mode.Flags
	h := NewEdgeHandler("emergency", flags.ToggleEmergency)

	assert.True(t, h.OnFallingEdge(1000000))
	assert.True(t, flags.Emergency())

	// Contact bounce 150ms later is dropped.
	assert.False(t, h.OnFallingEdge(1150000))
	assert.True(t, flags.Emergency())

	// A real second press 200ms after the first toggles back.
	assert.True(t, h.OnFallingEdge(1200000))
	assert.False(t, flags.Emergency())
}

func TestEdgeHandlersHaveSeparateWindows(t *testing.T) {
	var flags mode.Flags
	emergency := NewEdgeHandler("emergency", flags.ToggleEmergency)
	power := NewEdgeHandler("power", flags.TogglePowerOff)

	assert.True(t, emergency.OnFallingEdge(1000000))
	assert.True(t, power.OnFallingEdge(1000010))

	assert.Equal(t, mode.Snapshot{Emergency: true, PowerOff: true}, flags.Snapshot())
}

func TestPolledButtonFallingEdge(t *testing.T) {
	var flags mode.Flags
	b := NewPolledButton("blink_button", flags.ToggleBlinking)

	assert.False(t, b.Poll(High, 100))
	assert.True(t, b.Poll(Low, 101))
	assert.True(t, flags.Blinking())
}

func TestPolledButtonHeldLowIsOneEdge(t *testing.T) {
	var flags mode.Flags
	b := NewPolledButton("blink_button", flags.ToggleBlinking)

	assert.True(t, b.Poll(Low, 100))
	for now := uint32(101); now < 1000; now += 10 {
		assert.False(t, b.Poll(Low, now))
	}
	assert.True(t, flags.Blinking())

	assert.False(t, b.Poll(High, 1000))
	assert.True(t, b.Poll(Low, 1001))
	assert.False(t, flags.Blinking())
}

func TestPolledButtonDebounce(t *testing.T) {
	var flags mode.Flags
	b := NewPolledButton("blink_button", flags.ToggleBlinking)

	assert.True(t, b.Poll(Low, 100))
	assert.False(t, b.Poll(High, 110))
	// Bounce 20ms after the accepted edge.
	assert.False(t, b.Poll(Low, 120))
	assert.True(t, flags.Blinking())

	// The rejected edge still updated the previous level, so a new edge
	// needs a HIGH first.
	assert.False(t, b.Poll(Low, 200))
	assert.False(t, b.Poll(High, 210))
	assert.True(t, b.Poll(Low, 220))
	assert.False(t, flags.Blinking())
}

func TestPolledButtonStartupWindow(t *testing.T) {
	var flags mode.Flags
	b := NewPolledButton("blink_button", flags.ToggleBlinking)

	assert.False(t, b.Poll(Low, 10))
	assert.False(t, flags.Blinking())
}
