package logcat

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/droidkit/droidlog/core"
	"github.com/droidkit/droidlog/filter"
	"github.com/droidkit/droidlog/handler"
	"github.com/droidkit/droidlog/platform"
)

// installation is the process-wide handler state, published in one
// piece so a concurrent loser always observes a fully built winner.
type installation struct {
	handler *handler.Handler
	logger  *slog.Logger
}

var (
	installed atomic.Pointer[installation]
	warned    atomic.Bool
)

// New builds a handler from the config without touching global state.
// Use this to run several independently configured handlers; Install
// covers the common single-backend case.
func New(cfg *Config) (*handler.Handler, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	tag := cfg.tag
	if tag == "" {
		tag = filepath.Base(os.Args[0])
	}
	tag = platform.TruncateTag(tag)

	f := cfg.filter
	if f == nil && cfg.filterSpec != "" {
		parsed, err := filter.Parse(cfg.filterSpec)
		if err != nil {
			return nil, err
		}
		f = parsed
	}
	if f == nil {
		level := core.ErrorLevel
		if cfg.maxLevelSet {
			level = cfg.maxLevel
		}
		f = filter.New(level)
	}

	var query filter.PlatformQuery
	if cfg.systemOverrides {
		query = platform.NewProperties(platform.PropertiesConfig{})
	}

	writer := cfg.writer
	if writer == nil {
		logd, err := platform.NewLogdWriter()
		if err != nil {
			// Off-device fallback: keep output visible instead of
			// silently dropping it.
			writer = platform.NewTextWriter(os.Stderr)
		} else {
			writer = logd
		}
	}

	return handler.New(handler.Options{
		Tag:       tag,
		Buffer:    cfg.buffer,
		Evaluator: filter.NewEvaluator(f, query, tag),
		Formatter: cfg.formatter,
		Writer:    writer,
	})
}

// Install builds a handler from the config and makes it the process
// default: slog's default logger routes to the platform log from then
// on.
//
// The first successful call wins. Later calls leave the installed
// handler untouched, log a single warning through it, and return nil;
// a process must not break because two libraries both try to set up
// logging. A config that fails to build returns its error without
// affecting installed state.
func Install(cfg *Config) error {
	h, err := New(cfg)
	if err != nil {
		return err
	}

	inst := &installation{handler: h, logger: slog.New(h)}
	if !installed.CompareAndSwap(nil, inst) {
		h.Close()
		if warned.CompareAndSwap(false, true) {
			installed.Load().logger.Warn("logcat backend already installed; keeping the first configuration")
		}
		return nil
	}

	slog.SetDefault(inst.logger)
	return nil
}

// Installed reports whether Install has taken effect.
func Installed() bool {
	return installed.Load() != nil
}

// Default returns the installed logger, or slog's current default when
// nothing is installed yet.
func Default() *slog.Logger {
	if inst := installed.Load(); inst != nil {
		return inst.logger
	}
	return slog.Default()
}

// reset clears installed state. Tests only.
func reset() {
	installed.Store(nil)
	warned.Store(false)
}
