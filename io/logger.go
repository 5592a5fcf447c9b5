package argio

import (
	"fmt"
	"os"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides minimal leveled logging. The parser uses it for opt-in
// trace output (schema cache hits, compile timing) controlled by the
// ARGPARSE_TRACE environment variable.
type Logger struct {
	io       *IOManager
	minLevel LogLevel
	withTime bool
}

// NewLogger creates a logger writing to the manager's error stream.
func NewLogger(m *IOManager) *Logger {
	return &Logger{io: m, minLevel: LevelInfo}
}

// NewTraceLogger creates a logger whose debug output is enabled only when
// ARGPARSE_TRACE is set in the environment.
func NewTraceLogger(m *IOManager) *Logger {
	l := NewLogger(m)
	if os.Getenv("ARGPARSE_TRACE") != "" {
		l.minLevel = LevelDebug
	} else {
		l.minLevel = LevelError
	}
	return l
}

// WithTime enables timestamps on log lines.
func (l *Logger) WithTime() *Logger { l.withTime = true; return l }

// SetLevel sets the minimum level that produces output.
func (l *Logger) SetLevel(level LogLevel) *Logger { l.minLevel = level; return l }

// Enabled reports whether the given level produces output.
func (l *Logger) Enabled(level LogLevel) bool { return level >= l.minLevel }

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.withTime {
		msg = time.Now().Format("15:04:05") + " " + msg
	}
	fmt.Fprintf(l.io.Err(), "[%s] %s\n", level, msg)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs at warning level.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarning, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }
