package platform

import "go.uber.org/multierr"

// Writer performs the single blocking call into a platform log sink.
// Implementations must be safe for concurrent use and must not buffer
// across calls: one Write is one platform transmission.
type Writer interface {
	// Write sends one message segment at the given priority and tag to
	// the selected buffer. The tag is assumed normalized (TruncateTag)
	// and msg free of NUL bytes.
	Write(buf Buffer, prio Priority, tag string, msg []byte) error

	// Close releases resources held by the writer.
	Close() error
}

// MultiWriter fans a single write out to multiple writers, e.g. logd
// plus stderr during bring-up.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a writer that duplicates every write to all
// the given writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write sends the segment to every child writer. All children are
// attempted regardless of individual failures.
func (m *MultiWriter) Write(buf Buffer, prio Priority, tag string, msg []byte) error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Write(buf, prio, tag, msg))
	}
	return err
}

// Close closes all child writers.
func (m *MultiWriter) Close() error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Close())
	}
	return err
}
