package platform

import (
	"io"
	"sync"
)

// TextWriter renders messages in logcat's brief text format
// ("P/tag: msg") to an io.Writer. It is the host-side fallback when the
// logd socket is unavailable, and the capture writer used in tests.
type TextWriter struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewTextWriter creates a TextWriter targeting w. The writer does not
// take ownership of w; Close is a no-op.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Write renders one message line. The internal line buffer is reused
// across calls under the lock.
func (t *TextWriter) Write(_ Buffer, prio Priority, tag string, msg []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	buf := t.buf[:0]
	buf = append(buf, prio.Letter(), '/')
	buf = append(buf, tag...)
	buf = append(buf, ':', ' ')
	buf = append(buf, msg...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		buf = append(buf, '\n')
	}
	t.buf = buf

	_, err := t.w.Write(buf)
	return err
}

// Close implements Writer. The underlying io.Writer is not closed.
func (t *TextWriter) Close() error {
	return nil
}
