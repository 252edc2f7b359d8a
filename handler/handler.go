package handler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/droidkit/droidlog/core"
	"github.com/droidkit/droidlog/filter"
	"github.com/droidkit/droidlog/formatter"
	"github.com/droidkit/droidlog/platform"
)

// Options configures a Handler. Zero-value fields get defaults in New.
type Options struct {
	// Tag identifies the log source; normalized to the platform's tag
	// limit.
	Tag string
	// Buffer selects the platform log buffer (default: main).
	Buffer platform.Buffer
	// Evaluator decides which records are emitted (required).
	Evaluator *filter.Evaluator
	// Formatter renders records (default: MessageFormatter).
	Formatter formatter.Formatter
	// Writer transmits segments (required).
	Writer platform.Writer
	// Limit caps a single platform write (default: platform.MaxPayload).
	Limit int
}

// Handler is the emit pipeline: filter, format, chunk, write. It is
// immutable after construction; the per-record path touches no shared
// mutable state beyond the writer, so a single Handler is safe for
// concurrent use from any number of goroutines.
//
// Handler implements slog.Handler (see slog.go) and backs the zap,
// zerolog, and logrus bridges.
type Handler struct {
	tag          string
	buffer       platform.Buffer
	eval         *filter.Evaluator
	formatter    formatter.Formatter
	bufFormatter formatter.BufferFormatter
	writer       platform.Writer
	limit        int
	stats        *Stats
	diagOnce     *sync.Once

	// slog state, extended copy-on-write by WithAttrs/WithGroup
	attrs  []core.Field
	group  string
	target string
}

// New creates a Handler from the given options.
func New(opts Options) (*Handler, error) {
	if opts.Writer == nil {
		return nil, fmt.Errorf("handler: a platform writer is required")
	}
	if opts.Evaluator == nil {
		return nil, fmt.Errorf("handler: a filter evaluator is required")
	}
	if opts.Formatter == nil {
		opts.Formatter = formatter.NewMessageFormatter()
	}
	if opts.Limit <= 0 {
		opts.Limit = platform.MaxPayload
	}

	h := &Handler{
		tag:       platform.TruncateTag(opts.Tag),
		buffer:    opts.Buffer,
		eval:      opts.Evaluator,
		formatter: opts.Formatter,
		writer:    opts.Writer,
		limit:     opts.Limit,
		stats:     NewStats(),
		diagOnce:  new(sync.Once),
	}
	// Cache BufferFormatter for the zero-copy path
	h.bufFormatter, _ = opts.Formatter.(formatter.BufferFormatter)
	return h, nil
}

// Tag returns the handler's normalized tag.
func (h *Handler) Tag() string {
	return h.tag
}

// Stats returns the handler's counters.
func (h *Handler) Stats() *Stats {
	return h.stats
}

// Emit runs one record through the pipeline. Platform write failures
// are absorbed: they are counted, reported once to stderr, and never
// surface to the application. Logging must not introduce failure modes
// into its host.
func (h *Handler) Emit(rec *core.Record) {
	if !h.eval.Enabled(rec.Level, rec.Target) {
		h.stats.IncrementDropped()
		return
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if h.bufFormatter != nil {
		h.bufFormatter.FormatRecord(rec, buf)
	} else {
		rendered, err := h.formatter.Format(rec)
		if err != nil {
			h.diagnose(err)
			h.stats.IncrementFailed()
			return
		}
		buf.Write(rendered)
	}

	h.transmit(platform.PriorityForLevel(rec.Level), buf.Bytes())
}

// emitPrerendered is the bridge path for facades that deliver already
// rendered output (zerolog's JSON lines). The filter still applies; the
// formatter is bypassed. msg is copied before sanitizing, since it
// belongs to the caller.
func (h *Handler) emitPrerendered(level core.Level, target string, msg []byte) {
	if !h.eval.Enabled(level, target) {
		h.stats.IncrementDropped()
		return
	}
	buf := getBuffer()
	defer putBuffer(buf)
	buf.Write(msg)
	h.transmit(platform.PriorityForLevel(level), buf.Bytes())
}

// transmit sanitizes, chunks, and writes one rendered message. It may
// mutate msg in place.
func (h *Handler) transmit(prio platform.Priority, msg []byte) {
	msg = platform.Sanitize(msg)
	if len(msg) == 0 {
		return
	}

	chunker := platform.NewChunker(msg, h.limit)
	for {
		chunk, ok := chunker.Next()
		if !ok {
			break
		}
		if err := h.writer.Write(h.buffer, prio, h.tag, chunk); err != nil {
			h.diagnose(err)
			h.stats.IncrementFailed()
			continue
		}
		h.stats.IncrementEmitted()
	}
}

// diagOut receives the one-shot failure diagnostic. Overridable in
// tests.
var diagOut io.Writer = os.Stderr

// diagnose reports the first failure on the emit path, whether it came
// from the formatter or the platform write. Repeats are only counted; a
// broken sink must not flood the host's stderr.
func (h *Handler) diagnose(err error) {
	h.diagOnce.Do(func() {
		fmt.Fprintf(diagOut, "droidlog: emit failed: %v (further failures counted, not reported)\n", err)
	})
}

// Close closes the underlying writer.
func (h *Handler) Close() error {
	return h.writer.Close()
}

// clone returns a copy sharing the writer, evaluator, and counters.
func (h *Handler) clone() *Handler {
	c := *h
	return &c
}

// bufferPool holds the per-emit scratch buffers.
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
