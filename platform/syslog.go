//go:build !windows && !plan9

package platform

import (
	"fmt"
	"log/syslog"
	"sync"
)

// SyslogWriter forwards messages to the local syslog daemon. It exists
// for daemons that run the same binary on Android (logd) and stock
// Linux (syslogd); the tag passed per write is part of the message
// because syslog fixes its tag at connection time.
type SyslogWriter struct {
	mu  sync.Mutex
	out *syslog.Writer
	buf []byte
}

// NewSyslogWriter connects to syslog with the given connection-level
// tag.
func NewSyslogWriter(tag string) (*SyslogWriter, error) {
	out, err := syslog.New(syslog.LOG_USER|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, fmt.Errorf("platform: connecting to syslog: %w", err)
	}
	return &SyslogWriter{out: out}, nil
}

// Write maps the platform priority onto a syslog severity and sends the
// message.
func (s *SyslogWriter) Write(_ Buffer, prio Priority, tag string, msg []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := s.buf[:0]
	buf = append(buf, tag...)
	buf = append(buf, ':', ' ')
	buf = append(buf, msg...)
	s.buf = buf
	line := string(buf)

	switch prio {
	case PriorityVerbose, PriorityDebug:
		return s.out.Debug(line)
	case PriorityInfo:
		return s.out.Info(line)
	case PriorityWarn:
		return s.out.Warning(line)
	case PriorityError:
		return s.out.Err(line)
	case PriorityFatal:
		return s.out.Crit(line)
	default:
		return s.out.Notice(line)
	}
}

// Close closes the syslog connection.
func (s *SyslogWriter) Close() error {
	return s.out.Close()
}
