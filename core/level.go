package core

import "strings"

// Level represents the severity of a log record. Levels are ordered from
// most verbose (VerboseLevel) to most severe; SilentLevel suppresses
// everything and is only meaningful as a filter bound.
type Level int8

const (
	// VerboseLevel for very detailed tracing output
	VerboseLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages (default ceiling)
	ErrorLevel
	// FatalLevel for unrecoverable errors
	FatalLevel
	// SilentLevel disables all output when used as a filter bound
	SilentLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case SilentLevel:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. It accepts full level names
// ("verbose", "warn", "warning", ...) as well as the single-letter
// Android conventions (V, D, I, W, E, F, S). Unrecognized input reports
// ok == false and falls back to InfoLevel.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "TRACE", "V", "T":
		return VerboseLevel, true
	case "DEBUG", "D":
		return DebugLevel, true
	case "INFO", "I":
		return InfoLevel, true
	case "WARN", "WARNING", "W":
		return WarnLevel, true
	case "ERROR", "ERR", "E":
		return ErrorLevel, true
	case "FATAL", "ASSERT", "F", "A":
		return FatalLevel, true
	case "SILENT", "OFF", "S":
		return SilentLevel, true
	default:
		return InfoLevel, false
	}
}
