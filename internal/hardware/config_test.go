package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigChannels(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, map[string]int{"red": 5, "yellow": 6, "green": 7, "blink": 8}, c.Outputs())
	assert.Equal(t, map[string]int{"emergency": 2, "power": 3}, c.EdgeInputs())
	assert.Equal(t, map[string]int{"blink_button": 4}, c.PolledInputs())
}

func TestConfigRejectsDuplicateOffsets(t *testing.T) {
	c := DefaultConfig()
	c.Power = c.Red

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 5")
	assert.Contains(t, err.Error(), "power")
	assert.Contains(t, err.Error(), "red")
}

func TestConfigRejectsNegativeOffset(t *testing.T) {
	c := DefaultConfig()
	c.BlinkButton = -1

	assert.ErrorContains(t, c.Validate(), "blink_button")
}

func TestConfigRejectsMissingChip(t *testing.T) {
	c := DefaultConfig()
	c.Chip = ""

	assert.Error(t, c.Validate())
}
