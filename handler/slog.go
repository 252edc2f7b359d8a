package handler

import (
	"context"
	"log/slog"

	"github.com/droidkit/droidlog/core"
)

// TargetKey is the attribute key that overrides a record's target for
// per-module filtering, e.g.:
//
//	slog.Debug("cache miss", "target", "app/db")
//
// Records without it derive their target from the call site's package.
const TargetKey = "target"

// Enabled reports whether the handler could emit a record at the given
// level under any target. The exact per-target decision happens in
// Handle; this is the cheap pre-check slog uses to skip argument
// evaluation.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return levelFromSlog(level) >= h.eval.MinLevel()
}

// Handle converts a slog.Record and runs it through the emit pipeline.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	if !record.Time.IsZero() {
		rec.Time = record.Time
	}
	rec.Level = levelFromSlog(record.Level)
	rec.Message = record.Message

	target := h.target
	if len(h.attrs) > 0 {
		rec.Fields = append(rec.Fields, h.attrs...)
	}
	record.Attrs(func(a slog.Attr) bool {
		if h.group == "" && a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			target = a.Value.String()
			return true
		}
		rec.Fields = appendAttr(rec.Fields, h.group, a)
		return true
	})

	if target == "" {
		target = core.TargetForPC(record.PC)
	}
	rec.Target = target

	h.Emit(rec)
	return nil
}

// WithAttrs returns a new Handler with additional pre-resolved
// attributes. A top-level "target" attribute becomes the handler's
// target instead of a field.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := h.clone()
	fields := make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(fields, h.attrs)
	for _, a := range attrs {
		if h.group == "" && a.Key == TargetKey && a.Value.Kind() == slog.KindString {
			c.target = a.Value.String()
			continue
		}
		fields = appendAttr(fields, h.group, a)
	}
	c.attrs = fields
	return c
}

// WithGroup returns a new Handler that prefixes subsequent attribute
// keys with the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	if h.group != "" {
		c.group = h.group + "." + name
	} else {
		c.group = name
	}
	return c
}

// appendAttr converts a slog.Attr to fields, prepending the group
// prefix and flattening nested groups into dotted keys.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return fields
		}
		sub := key
		if a.Key == "" {
			sub = group // inline group: no prefix of its own
		}
		for _, ga := range attrs {
			fields = appendAttr(fields, sub, ga)
		}
		return fields
	case slog.KindString:
		return append(fields, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(fields, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(fields, core.Field{Key: key, Type: core.Uint64Type, Uint64: a.Value.Uint64()})
	case slog.KindFloat64:
		return append(fields, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(fields, core.Bool(key, a.Value.Bool()))
	case slog.KindDuration:
		return append(fields, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindTime:
		return append(fields, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	default:
		return append(fields, core.Any(key, a.Value.Any()))
	}
}

// levelFromSlog maps slog levels onto the platform-aligned scale.
// Levels below Debug are Verbose, levels above Error are Fatal.
func levelFromSlog(level slog.Level) core.Level {
	switch {
	case level < slog.LevelDebug:
		return core.VerboseLevel
	case level < slog.LevelInfo:
		return core.DebugLevel
	case level < slog.LevelWarn:
		return core.InfoLevel
	case level < slog.LevelError:
		return core.WarnLevel
	case level <= slog.LevelError+3:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}
