package hardware

// Consumer is the label reported to the kernel for every requested line.
const Consumer = "traffic-light-service"

// Channel names
const (
	ChannelRed    = "red"
	ChannelYellow = "yellow"
	ChannelGreen  = "green"
	ChannelBlink  = "blink"

	ChannelEmergency   = "emergency"
	ChannelPower       = "power"
	ChannelBlinkButton = "blink_button"
)

// Default line offsets on DefaultChip, matching the Arduino header
// numbering the fixture was first wired to.
const (
	DefaultChip = "gpiochip0"

	DefaultRedLine    = 5
	DefaultYellowLine = 6
	DefaultGreenLine  = 7
	DefaultBlinkLine  = 8

	DefaultEmergencyLine   = 2
	DefaultPowerLine       = 3
	DefaultBlinkButtonLine = 4
)
