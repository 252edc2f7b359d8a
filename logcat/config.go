package logcat

import (
	"github.com/droidkit/droidlog/core"
	"github.com/droidkit/droidlog/filter"
	"github.com/droidkit/droidlog/formatter"
	"github.com/droidkit/droidlog/platform"
)

// Config collects construction options for a logcat handler. The zero
// value (via NewConfig) is usable as-is: process-name tag, errors only,
// the main buffer, and the platform logd socket with a stderr fallback.
//
// Config is a builder; it is read once at New/Install and never again,
// so mutating it afterwards has no effect on a live handler.
type Config struct {
	tag             string
	maxLevel        core.Level
	maxLevelSet     bool
	filterSpec      string
	filter          *filter.Filter
	buffer          platform.Buffer
	formatter       formatter.Formatter
	writer          platform.Writer
	systemOverrides bool
}

// NewConfig creates a Config with default settings
func NewConfig() *Config {
	return &Config{}
}

// WithTag sets the platform log tag. Tags longer than the platform
// limit are truncated. Default: the process name.
func (c *Config) WithTag(tag string) *Config {
	c.tag = tag
	return c
}

// WithMaxLevel sets the default severity ceiling: records below it are
// dropped unless a filter directive says otherwise. Default: errors
// only.
func (c *Config) WithMaxLevel(level core.Level) *Config {
	c.maxLevel = level
	c.maxLevelSet = true
	return c
}

// WithFilterSpec sets a filter from a directive string, e.g.
// "info,app/db=debug". A malformed spec surfaces as an error from
// New or Install, not here. Overrides WithMaxLevel.
func (c *Config) WithFilterSpec(spec string) *Config {
	c.filterSpec = spec
	return c
}

// WithFilter sets a pre-built filter. Overrides WithFilterSpec and
// WithMaxLevel.
func (c *Config) WithFilter(f *filter.Filter) *Config {
	c.filter = f
	return c
}

// WithBuffer selects the platform log buffer. Default: main.
func (c *Config) WithBuffer(buf platform.Buffer) *Config {
	c.buffer = buf
	return c
}

// WithFormatter sets the record formatter. Default: the plain message
// format.
func (c *Config) WithFormatter(f formatter.Formatter) *Config {
	c.formatter = f
	return c
}

// WithWriter sets the platform writer, replacing the default logd
// socket. Useful for tests and for mirroring output with a MultiWriter.
func (c *Config) WithWriter(w platform.Writer) *Config {
	c.writer = w
	return c
}

// WithSystemLevelOverrides enables reconciliation with the platform's
// own per-tag verbosity (ANDROID_LOG_TAGS, log.tag.* properties): a
// record passes if either the local filter or the platform allows it.
func (c *Config) WithSystemLevelOverrides(enabled bool) *Config {
	c.systemOverrides = enabled
	return c
}
