package formatter

import (
	"bytes"
	"sync"

	"github.com/droidkit/droidlog/core"
)

// Formatter renders a record into the text that will be sent to the
// platform. Unlike file-oriented log formats, the output carries no
// timestamp or level: logcat stamps both on every message itself.
type Formatter interface {
	// Format renders a record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can
// implement to render directly into a caller-provided buffer, avoiding
// the intermediate byte slice allocation on the emit path.
type BufferFormatter interface {
	// FormatRecord renders a record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// Func adapts a plain function to the Formatter interface, for callers
// that configure a custom format inline.
type Func func(rec *core.Record) ([]byte, error)

// Format implements Formatter.
func (f Func) Format(rec *core.Record) ([]byte, error) {
	return f(rec)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
