package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0), LogLevelWarning)

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	assert.Equal(t, "WARN: warn 3\nERROR: error 4\n", buf.String())
}

func TestWithTag(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(log.New(&buf, "", 0), LogLevelDebug).WithTag("lamps")

	l.Infof("red=%v", true)
	l.Debugf("tick")

	assert.Equal(t, "[lamps] red=true\n[lamps] DEBUG: tick\n", buf.String())
}

func TestNilLoggerDiscards(t *testing.T) {
	l := NewLogger(nil, LogLevelDebug)
	assert.NotPanics(t, func() {
		l.Debugf("x")
		l.Infof("x")
		l.Warnf("x")
		l.Errorf("x")
	})
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"0":       LogLevelNone,
		"error":   LogLevelError,
		"2":       LogLevelWarning,
		"warning": LogLevelWarning,
		"INFO":    LogLevelInfo,
		" 4 ":     LogLevelDebug,
	}
	for in, want := range cases {
		got, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}
