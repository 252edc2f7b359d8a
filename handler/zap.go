package handler

import (
	"go.uber.org/zap/zapcore"

	"github.com/droidkit/droidlog/core"
)

// ZapCore adapts a Handler to zap's zapcore.Core, so zap-based
// applications can log to the platform without switching facades:
//
//	logger := zap.New(handler.NewZapCore(h))
//
// The zap logger's name becomes the record target when set.
type ZapCore struct {
	h      *Handler
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core backed by the given Handler.
func NewZapCore(h *Handler) *ZapCore {
	return &ZapCore{h: h}
}

// Enabled reports whether the level can pass the filter under any
// target.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return levelFromZap(level) >= c.h.eval.MinLevel()
}

// With returns a child core carrying the additional fields.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &ZapCore{h: c.h, fields: merged}
}

// Check adds this core to the checked entry when the level is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry and runs it through the emit pipeline.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	rec.Time = ent.Time
	rec.Level = levelFromZap(ent.Level)
	rec.Message = ent.Message
	rec.Target = ent.LoggerName

	if n := len(c.fields) + len(fields); n > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		for k, v := range enc.Fields {
			rec.Fields = append(rec.Fields, core.Any(k, v))
		}
	}

	c.h.Emit(rec)
	return nil
}

// Sync implements zapcore.Core. Platform writes are unbuffered.
func (c *ZapCore) Sync() error {
	return nil
}

// levelFromZap maps zap levels onto the platform-aligned scale.
func levelFromZap(level zapcore.Level) core.Level {
	switch {
	case level <= zapcore.DebugLevel:
		return core.DebugLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.ErrorLevel:
		return core.ErrorLevel
	default: // DPanic, Panic, Fatal
		return core.FatalLevel
	}
}
