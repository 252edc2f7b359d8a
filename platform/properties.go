package platform

import (
	"os"
	"strings"

	"github.com/droidkit/droidlog/core"
)

// Properties reads the platform's own filtering state so that the
// evaluator can reconcile it with the in-process filter. Two sources
// exist, both honored by liblog itself:
//
//   - the ANDROID_LOG_TAGS environment variable, a space-separated list
//     of "tag:P" entries with logcat priority letters, where "*" is the
//     process-wide default, e.g. "ActivityManager:I MyApp:V *:S";
//   - per-tag "log.tag.<tag>" system properties.
//
// Property lookup goes through a pluggable getter because system
// properties are not reachable the same way on every host; the default
// getter falls back to the environment. Entries that do not parse are
// ignored, matching liblog's lenient handling.
type Properties struct {
	getprop func(key string) string
	tags    map[string]core.Level
	min     core.Level
	minSet  bool
}

// PropertiesConfig configures platform property lookup.
type PropertiesConfig struct {
	// Tags overrides the ANDROID_LOG_TAGS value (default: read from the
	// environment).
	Tags string
	// Getprop resolves a system property by name (default: environment
	// lookup).
	Getprop func(key string) string
}

// NewProperties creates a Properties query from the environment.
func NewProperties(cfg PropertiesConfig) *Properties {
	if cfg.Getprop == nil {
		cfg.Getprop = os.Getenv
	}
	if cfg.Tags == "" {
		cfg.Tags = os.Getenv("ANDROID_LOG_TAGS")
	}

	p := &Properties{
		getprop: cfg.Getprop,
		tags:    make(map[string]core.Level),
	}
	for _, entry := range strings.Fields(cfg.Tags) {
		tag, prio, ok := strings.Cut(entry, ":")
		if !ok || tag == "" {
			continue
		}
		level, ok := core.ParseLevel(prio)
		if !ok {
			continue
		}
		if tag == "*" {
			p.min, p.minSet = level, true
		} else {
			p.tags[tag] = level
		}
	}
	return p
}

// MinLevel returns the process-wide minimum level from the "*" entry.
func (p *Properties) MinLevel() (core.Level, bool) {
	return p.min, p.minSet
}

// TagLevel returns the level configured for the tag: the
// ANDROID_LOG_TAGS entry wins over the log.tag.<tag> property.
func (p *Properties) TagLevel(tag string) (core.Level, bool) {
	if level, ok := p.tags[tag]; ok {
		return level, true
	}
	if v := p.getprop("log.tag." + tag); v != "" {
		if level, ok := core.ParseLevel(v); ok {
			return level, true
		}
	}
	return 0, false
}
