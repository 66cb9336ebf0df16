package messaging

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-light-service/internal/logger"
	"traffic-light-service/internal/mode"
)

func TestStatusFields(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	fields := statusFields(mode.ModeOff, mode.Snapshot{PowerOff: true, Blinking: true}, ts)

	assert.Equal(t, map[string]interface{}{
		"mode":           "off",
		"mode:timestamp": "2024-05-01T12:30:00Z",
		"emergency":      "false",
		"power-off":      "true",
		"blinking":       "true",
	}, fields)
}

func TestBootIDIsUnique(t *testing.T) {
	l := logger.NewLogger(nil, logger.LogLevelNone)
	a := NewRedisPublisher("127.0.0.1:6379", l)
	b := NewRedisPublisher("127.0.0.1:6379", l)
	defer a.Close()
	defer b.Close()

	_, err := uuid.Parse(a.BootID())
	require.NoError(t, err)
	assert.NotEqual(t, a.BootID(), b.BootID())
}
