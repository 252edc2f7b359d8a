//go:build linux

package platform

import (
	"fmt"
	"net"
	"sync"
	"syscall"

	"github.com/droidkit/droidlog/core"
)

// logdSocket is logd's write socket. Every Android process with logging
// permission can send datagrams to it.
const logdSocket = "/dev/socket/logdw"

// LogdWriter transmits log messages to Android's logd daemon over its
// unixgram socket, one datagram per message segment. This is the wire
// protocol liblog itself speaks, so no cgo is involved.
type LogdWriter struct {
	mu   sync.Mutex
	conn net.Conn
	path string
	buf  []byte
}

// NewLogdWriter connects to the logd write socket. It fails when the
// socket does not exist or is not writable, which is the normal state
// on non-Android hosts.
func NewLogdWriter() (*LogdWriter, error) {
	return newLogdWriter(logdSocket)
}

func newLogdWriter(path string) (*LogdWriter, error) {
	conn, err := net.Dial("unixgram", path)
	if err != nil {
		return nil, fmt.Errorf("platform: connecting to logd: %w", err)
	}
	// Every write stamps a frame header; keep those stamps off the
	// time.Now fallback.
	core.StartCoarseClock()
	return &LogdWriter{conn: conn, path: path}, nil
}

// Write sends one datagram carrying the message segment. The frame
// buffer is reused across calls under the lock.
func (w *LogdWriter) Write(buf Buffer, prio Priority, tag string, msg []byte) error {
	now := core.CoarseNow()

	w.mu.Lock()
	defer w.mu.Unlock()

	frame := appendLogdFrame(w.buf[:0], buf, prio, tag, msg, uint16(syscall.Gettid()), now)
	w.buf = frame

	if _, err := w.conn.Write(frame); err != nil {
		// logd may have restarted; retry once on a fresh connection.
		if rerr := w.redial(); rerr != nil {
			return fmt.Errorf("platform: logd write: %w", err)
		}
		if _, err = w.conn.Write(frame); err != nil {
			return fmt.Errorf("platform: logd write: %w", err)
		}
	}
	return nil
}

func (w *LogdWriter) redial() error {
	conn, err := net.Dial("unixgram", w.path)
	if err != nil {
		return err
	}
	w.conn.Close()
	w.conn = conn
	return nil
}

// Close closes the logd socket.
func (w *LogdWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Close()
}
