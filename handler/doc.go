// Package handler implements the emit pipeline that carries a log
// record to the platform: filter, format, chunk, write.
//
// Handler is immutable after construction and safe for concurrent use.
// It implements log/slog's Handler interface, making slog the primary
// facade:
//
//	slog.SetDefault(slog.New(h))
//
// Bridges cover the other widespread facades without a second pipeline:
// ZapCore plugs into zap as a zapcore.Core, ZerologWriter into zerolog
// as a LevelWriter, and LogrusHook into logrus as a hook. All of them
// funnel into the same filter and writer, so configuration is done
// once.
//
// Platform write failures never propagate into the application: the
// first failure is reported to stderr, the rest are only counted
// (Stats). The write path must not log through itself, as that would
// re-enter the sink mid-write.
package handler
