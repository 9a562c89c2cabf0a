package logfacade

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Level is the severity of an entry. Lower values are more severe.
type Level int8

const (
	FatalLevel Level = iota
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// offLevel is the threshold of a silenced logger: it enables no level, yet
// the façade still emits Fatal and Error through it, since those are never
// gated.
const offLevel Level = -1

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case offLevel:
		return "off"
	case FatalLevel:
		return "fatal"
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	default:
		return fmt.Sprintf("level(%d)", int8(l))
	}
}

// ParseLevel converts a case-insensitive level name into a Level.
// "off", "disabled" and "none" silence everything below Error; Fatal and
// Error entries are always emitted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "disabled", "none":
		return offLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace", "all":
		return TraceLevel, nil
	default:
		return offLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// enables reports whether a logger configured at threshold l emits entries at level.
func (l Level) enables(level Level) bool {
	return l != offLevel && level <= l
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case FatalLevel:
		return zerolog.FatalLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case TraceLevel:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}
