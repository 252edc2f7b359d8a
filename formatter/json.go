package formatter

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"

	"github.com/droidkit/droidlog/core"
)

// JSONFormatter renders records as single-line JSON objects, for
// pipelines that pull structured logs back out of logcat.
type JSONFormatter struct {
	// MessageKey overrides the key for the message text (default "message").
	MessageKey string
}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{MessageKey: "message"}
}

// Format renders the record into bytes
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord renders the record into the given buffer
func (f *JSONFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	msgKey := f.MessageKey
	if msgKey == "" {
		msgKey = "message"
	}

	obj := make(map[string]interface{}, len(rec.Fields)+2)
	obj[msgKey] = rec.Message
	if rec.Target != "" {
		obj["target"] = rec.Target
	}
	for _, field := range rec.Fields {
		obj[field.Key] = fieldValue(field)
	}

	enc := json.NewEncoder(buf)
	if err := enc.Encode(obj); err != nil {
		// Fall back to the bare message; emitting something beats
		// failing the log call.
		buf.Reset()
		buf.WriteString(rec.Message)
		return
	}
	// Encode terminates the object with a newline; the platform write
	// adds its own framing.
	if b := buf.Bytes(); len(b) > 0 && b[len(b)-1] == '\n' {
		buf.Truncate(len(b) - 1)
	}
}

// fieldValue unwraps a Field into a JSON-encodable value.
func fieldValue(f core.Field) interface{} {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return f.Str
	case core.Int64Type:
		return f.Int64
	case core.Uint64Type:
		return f.Uint64
	case core.Float64Type:
		return f.Float64
	case core.BoolType:
		return f.Int64 == 1
	case core.TimeType:
		return time.Unix(0, f.Int64).Format(time.RFC3339)
	case core.DurationType:
		return time.Duration(f.Int64).String()
	case core.AnyType:
		return f.Any
	default:
		return nil
	}
}
