package platform

import "github.com/droidkit/droidlog/core"

// Priority is the Android logging subsystem's native severity scale
// (android_LogPriority). It is distinct from core.Level but
// order-compatible with it.
type Priority uint8

const (
	PriorityUnknown Priority = iota
	PriorityDefault
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityFatal
	PrioritySilent
)

// PriorityForLevel maps a facade level to its platform priority. The
// mapping is monotonic: more severe levels map to higher priorities.
func PriorityForLevel(l core.Level) Priority {
	switch l {
	case core.VerboseLevel:
		return PriorityVerbose
	case core.DebugLevel:
		return PriorityDebug
	case core.InfoLevel:
		return PriorityInfo
	case core.WarnLevel:
		return PriorityWarn
	case core.ErrorLevel:
		return PriorityError
	case core.FatalLevel:
		return PriorityFatal
	case core.SilentLevel:
		return PrioritySilent
	default:
		return PriorityDefault
	}
}

// Level maps the priority back to a facade level. Unknown and Default
// resolve to InfoLevel.
func (p Priority) Level() core.Level {
	switch p {
	case PriorityVerbose:
		return core.VerboseLevel
	case PriorityDebug:
		return core.DebugLevel
	case PriorityInfo:
		return core.InfoLevel
	case PriorityWarn:
		return core.WarnLevel
	case PriorityError:
		return core.ErrorLevel
	case PriorityFatal:
		return core.FatalLevel
	case PrioritySilent:
		return core.SilentLevel
	default:
		return core.InfoLevel
	}
}

// Letter returns the single-character logcat notation for the priority.
func (p Priority) Letter() byte {
	switch p {
	case PriorityVerbose:
		return 'V'
	case PriorityDebug:
		return 'D'
	case PriorityInfo:
		return 'I'
	case PriorityWarn:
		return 'W'
	case PriorityError:
		return 'E'
	case PriorityFatal:
		return 'F'
	case PrioritySilent:
		return 'S'
	default:
		return '?'
	}
}

// String returns the priority name as printed by logcat tooling.
func (p Priority) String() string {
	switch p {
	case PriorityUnknown:
		return "UNKNOWN"
	case PriorityDefault:
		return "DEFAULT"
	case PriorityVerbose:
		return "VERBOSE"
	case PriorityDebug:
		return "DEBUG"
	case PriorityInfo:
		return "INFO"
	case PriorityWarn:
		return "WARN"
	case PriorityError:
		return "ERROR"
	case PriorityFatal:
		return "FATAL"
	case PrioritySilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}
