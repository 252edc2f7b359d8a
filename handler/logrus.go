package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/droidkit/droidlog/core"
)

// LogrusHook adapts a Handler to logrus's hook mechanism:
//
//	log := logrus.New()
//	log.AddHook(handler.NewLogrusHook(h))
//
// A "target" entry in the fields overrides the record target, matching
// the slog handler's convention.
type LogrusHook struct {
	h *Handler
}

// NewLogrusHook creates a logrus hook backed by the given Handler.
func NewLogrusHook(h *Handler) *LogrusHook {
	return &LogrusHook{h: h}
}

// Levels implements logrus.Hook; the handler's own filter decides.
func (hk *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire converts the entry and runs it through the emit pipeline.
func (hk *LogrusHook) Fire(entry *logrus.Entry) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	if !entry.Time.IsZero() {
		rec.Time = entry.Time
	}
	rec.Level = levelFromLogrus(entry.Level)
	rec.Message = entry.Message

	for k, v := range entry.Data {
		if k == TargetKey {
			if target, ok := v.(string); ok {
				rec.Target = target
				continue
			}
		}
		rec.Fields = append(rec.Fields, core.Any(k, v))
	}

	hk.h.Emit(rec)
	return nil
}

// levelFromLogrus maps logrus levels onto the platform-aligned scale.
func levelFromLogrus(level logrus.Level) core.Level {
	switch level {
	case logrus.TraceLevel:
		return core.VerboseLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.WarnLevel:
		return core.WarnLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	default: // Fatal, Panic
		return core.FatalLevel
	}
}
