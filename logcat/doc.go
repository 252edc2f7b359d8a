// Package logcat is the user-facing entry point: configure once, then
// log through log/slog (or the zap/zerolog/logrus bridges) and have
// every record land in the Android platform log.
//
// The minimal setup is a single call at startup:
//
//	if err := logcat.Install(logcat.NewConfig().
//		WithTag("myapp").
//		WithMaxLevel(core.DebugLevel)); err != nil {
//		// invalid configuration
//	}
//	slog.Info("ready")
//
// Install is process-wide and idempotent: the first call wins, later
// calls warn and are ignored. For multiple independently configured
// handlers, use New instead and wire the returned handler yourself.
//
// Off an Android device the logd socket is absent; output then goes to
// stderr in logcat's brief format, so the library stays usable in host
// tests and development builds.
package logcat
