// Package filter decides which log records reach the platform.
//
// A Filter holds a default minimum level plus per-target overrides
// ("directives"). Targets are matched by longest prefix, so a directive
// for "app/db/tx" beats one for "app/db". Specs use the familiar
// comma-separated syntax:
//
//	"info,app/db=debug,app/db/tx=error"
//
// parsed by Parse at construction time; malformed specs fail before the
// filter can be installed.
//
// The Evaluator layers an optional PlatformQuery on top of the local
// filter. Android's logging subsystem carries its own per-tag and
// process-wide level settings (log.tag.* properties, ANDROID_LOG_TAGS);
// when reconciliation is enabled the evaluator takes the least
// restrictive of the local and platform decisions, so verbosity raised
// on either side takes effect.
package filter
