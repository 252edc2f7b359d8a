package formatter

import (
	"bytes"

	"github.com/droidkit/droidlog/core"
)

// MessageFormatter is the default format: the message followed by
// space-separated key=value pairs for any structured fields. This is
// what a logcat reader expects to see after the "P/tag:" prefix.
type MessageFormatter struct {
	// IncludeTarget prefixes the output with the record's target in
	// brackets, useful when several packages share one tag.
	IncludeTarget bool
}

// NewMessageFormatter creates the default logcat message formatter.
func NewMessageFormatter() *MessageFormatter {
	return &MessageFormatter{}
}

// Format renders the record into bytes
func (f *MessageFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord renders the record into the given buffer
func (f *MessageFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	if f.IncludeTarget && rec.Target != "" {
		buf.WriteByte('[')
		buf.WriteString(rec.Target)
		buf.WriteString("] ")
	}

	buf.WriteString(rec.Message)

	for _, field := range rec.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.Write(field.AppendTo(buf.AvailableBuffer()))
	}
}
