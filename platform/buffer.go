package platform

import "fmt"

// Buffer identifies one of the Android logging subsystem's log buffers
// (log_id_t). Logs go to the Main buffer unless configured otherwise;
// most of the others are only writable by privileged processes.
type Buffer uint8

const (
	// BufferMain is the main log buffer, the only one available to apps.
	BufferMain Buffer = iota
	// BufferRadio is the radio/telephony log buffer.
	BufferRadio
	// BufferEvents is the binary event log buffer.
	BufferEvents
	// BufferSystem is the system log buffer.
	BufferSystem
	// BufferCrash is the crash log buffer.
	BufferCrash
	// BufferStats is the statistics log buffer.
	BufferStats
	// BufferSecurity is the security log buffer.
	BufferSecurity
	// BufferKernel is the kernel log buffer.
	BufferKernel
)

// String returns the buffer name as used by logcat's -b flag.
func (b Buffer) String() string {
	switch b {
	case BufferMain:
		return "main"
	case BufferRadio:
		return "radio"
	case BufferEvents:
		return "events"
	case BufferSystem:
		return "system"
	case BufferCrash:
		return "crash"
	case BufferStats:
		return "stats"
	case BufferSecurity:
		return "security"
	case BufferKernel:
		return "kernel"
	default:
		return "unknown"
	}
}

// ParseBuffer converts a logcat buffer name to a Buffer.
func ParseBuffer(s string) (Buffer, error) {
	switch s {
	case "main":
		return BufferMain, nil
	case "radio":
		return BufferRadio, nil
	case "events":
		return BufferEvents, nil
	case "system":
		return BufferSystem, nil
	case "crash":
		return BufferCrash, nil
	case "stats":
		return BufferStats, nil
	case "security":
		return BufferSecurity, nil
	case "kernel":
		return BufferKernel, nil
	default:
		return BufferMain, fmt.Errorf("platform: unknown log buffer %q", s)
	}
}
