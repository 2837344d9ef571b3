package treelog

import (
	"fmt"
	"strings"
)

// Level is the severity of a log entry or the threshold of a logger or sink.
// Levels are totally ordered: LevelAll < LevelTrace < ... < LevelFatal <
// LevelOff. LevelInherit is a sentinel meaning "use the parent logger's
// effective level"; it is only valid as a logger's stored level and never
// participates in ordering comparisons.
type Level int8

const (
	// LevelInherit defers to the parent logger's effective level. Threshold
	// use only; never a message level and never the root logger's level.
	LevelInherit Level = iota - 1

	// LevelAll passes every entry. Threshold use only.
	LevelAll

	// LevelTrace is for tracing program flow in detail.
	LevelTrace

	// LevelDebug is for debugging information.
	LevelDebug

	// LevelInfo is the general informational level.
	LevelInfo

	// LevelWarn reports an undesired but recoverable state.
	LevelWarn

	// LevelError reports errors that can be handled.
	LevelError

	// LevelFatal reports errors that lead to termination.
	LevelFatal

	// LevelOff suppresses every entry. Threshold use only.
	LevelOff
)

// DefaultLevel is the root logger's initial stored level.
const DefaultLevel = LevelWarn

// String implements fmt.Stringer. Inherit and out-of-range values render as
// placeholders that no valid threshold produces.
func (l Level) String() string {
	switch l {
	case LevelAll:
		return "ALL"
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	case LevelInherit:
		return "INHERIT"
	default:
		return "???"
	}
}

// ParseLevel converts a case-insensitive level name into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return LevelAll, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	case "off":
		return LevelOff, nil
	case "inherit":
		return LevelInherit, nil
	default:
		return LevelInherit, fmt.Errorf("%s: %q", errMsgUnknownLevel, s)
	}
}

// Enabled reports whether a message at level l passes a threshold.
// Thresholds of LevelOff suppress everything, including LevelOff itself.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold && l != LevelOff
}
