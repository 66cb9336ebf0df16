package hardware

import (
	"fmt"
	"sort"
)

// Config maps every channel to a line offset on a single GPIO chip.
type Config struct {
	Chip string

	Red    int
	Yellow int
	Green  int
	Blink  int

	Emergency   int
	Power       int
	BlinkButton int
}

func DefaultConfig() Config {
	return Config{
		Chip:        DefaultChip,
		Red:         DefaultRedLine,
		Yellow:      DefaultYellowLine,
		Green:       DefaultGreenLine,
		Blink:       DefaultBlinkLine,
		Emergency:   DefaultEmergencyLine,
		Power:       DefaultPowerLine,
		BlinkButton: DefaultBlinkButtonLine,
	}
}

// Outputs returns the lamp channels and their offsets.
func (c Config) Outputs() map[string]int {
	return map[string]int{
		ChannelRed:    c.Red,
		ChannelYellow: c.Yellow,
		ChannelGreen:  c.Green,
		ChannelBlink:  c.Blink,
	}
}

// EdgeInputs returns the buttons that notify on falling edges.
func (c Config) EdgeInputs() map[string]int {
	return map[string]int{
		ChannelEmergency: c.Emergency,
		ChannelPower:     c.Power,
	}
}

// PolledInputs returns the buttons that are sampled by the main loop.
func (c Config) PolledInputs() map[string]int {
	return map[string]int{
		ChannelBlinkButton: c.BlinkButton,
	}
}

// Validate rejects an empty chip name, negative offsets and offsets used by
// more than one channel.
func (c Config) Validate() error {
	if c.Chip == "" {
		return fmt.Errorf("no GPIO chip configured")
	}

	byOffset := make(map[int][]string)
	for _, m := range []map[string]int{c.Outputs(), c.EdgeInputs(), c.PolledInputs()} {
		for name, offset := range m {
			if offset < 0 {
				return fmt.Errorf("invalid line offset %d for %s", offset, name)
			}
			byOffset[offset] = append(byOffset[offset], name)
		}
	}

	for offset, names := range byOffset {
		if len(names) > 1 {
			sort.Strings(names)
			return fmt.Errorf("line %d assigned to more than one channel: %v", offset, names)
		}
	}
	return nil
}
