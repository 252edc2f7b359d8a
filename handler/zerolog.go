package handler

import (
	"bytes"

	"github.com/rs/zerolog"

	"github.com/droidkit/droidlog/core"
)

// ZerologWriter adapts a Handler to zerolog's LevelWriter, forwarding
// each rendered JSON line at its mapped priority:
//
//	logger := zerolog.New(handler.NewZerologWriter(h))
//
// The lines arrive pre-rendered, so the handler's formatter is
// bypassed; filtering and chunking still apply.
type ZerologWriter struct {
	h *Handler
}

// NewZerologWriter creates a zerolog-compatible writer backed by the
// given Handler.
func NewZerologWriter(h *Handler) *ZerologWriter {
	return &ZerologWriter{h: h}
}

// Write implements io.Writer; lines without level information go out at
// Info.
func (w *ZerologWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.InfoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *ZerologWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	w.h.emitPrerendered(levelFromZerolog(level), "", bytes.TrimRight(p, "\n"))
	return len(p), nil
}

// levelFromZerolog maps zerolog levels onto the platform-aligned scale.
func levelFromZerolog(level zerolog.Level) core.Level {
	switch level {
	case zerolog.TraceLevel:
		return core.VerboseLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.InfoLevel:
		return core.InfoLevel
	case zerolog.WarnLevel:
		return core.WarnLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return core.FatalLevel
	default:
		return core.InfoLevel
	}
}
