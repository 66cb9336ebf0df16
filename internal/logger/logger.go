package logger

import (
	"fmt"
	"log"
	"strings"
)

type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "none"
	case LogLevelError:
		return "error"
	case LogLevelWarning:
		return "warn"
	case LogLevelInfo:
		return "info"
	case LogLevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLogLevel accepts either the numeric form used by the -log flag or a level name.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "none":
		return LogLevelNone, nil
	case "1", "error":
		return LogLevelError, nil
	case "2", "warn", "warning":
		return LogLevelWarning, nil
	case "3", "info":
		return LogLevelInfo, nil
	case "4", "debug":
		return LogLevelDebug, nil
	}
	return LogLevelNone, fmt.Errorf("unknown log level: %q", s)
}

// Logger is a leveled wrapper around a standard logger. A nil underlying
// logger discards everything except Fatalf.
type Logger struct {
	logger *log.Logger
	level  LogLevel
	tag    string
}

func NewLogger(logger *log.Logger, level LogLevel) *Logger {
	return &Logger{
		logger: logger,
		level:  level,
	}
}

// WithTag creates a new logger with a tag prefix
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{
		logger: l.logger,
		level:  l.level,
		tag:    tag,
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) formatMessage(level string, format string) string {
	var b strings.Builder
	if l.tag != "" {
		b.WriteString("[" + l.tag + "] ")
	}
	if level != "" {
		b.WriteString(level + " ")
	}
	b.WriteString(format)
	return b.String()
}

func (l *Logger) printf(min LogLevel, level, format string, v ...interface{}) {
	if l.logger == nil || l.level < min {
		return
	}
	l.logger.Printf(l.formatMessage(level, format), v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.printf(LogLevelDebug, "DEBUG:", format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.printf(LogLevelInfo, "", format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l.printf(LogLevelWarning, "WARN:", format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.printf(LogLevelError, "ERROR:", format, v...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	if l.logger == nil {
		log.Fatalf(l.formatMessage("FATAL:", format), v...)
	}
	l.logger.Fatalf(l.formatMessage("FATAL:", format), v...)
}
