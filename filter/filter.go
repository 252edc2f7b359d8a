package filter

import (
	"sort"

	"github.com/droidkit/droidlog/core"
)

// Directive binds a target prefix to the minimum level required for
// records under that prefix. An empty Target matches everything and is
// equivalent to the filter's default level.
type Directive struct {
	Target string
	Level  core.Level
}

// Filter decides whether a record should be emitted based on its level
// and target. It holds a default minimum level plus per-target
// overrides; the override with the longest matching prefix wins.
//
// A Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	defaultLevel core.Level
	directives   []Directive // sorted by target length, longest first
	minLevel     core.Level  // most verbose level any directive allows
}

// New creates a Filter with the given default minimum level and
// per-target overrides. When the same target appears more than once the
// last directive wins.
func New(defaultLevel core.Level, directives ...Directive) *Filter {
	byTarget := make(map[string]core.Level, len(directives))
	for _, d := range directives {
		if d.Target == "" {
			defaultLevel = d.Level
			continue
		}
		byTarget[d.Target] = d.Level
	}

	f := &Filter{
		defaultLevel: defaultLevel,
		directives:   make([]Directive, 0, len(byTarget)),
		minLevel:     defaultLevel,
	}
	for target, level := range byTarget {
		f.directives = append(f.directives, Directive{Target: target, Level: level})
		if level < f.minLevel {
			f.minLevel = level
		}
	}
	sort.Slice(f.directives, func(i, j int) bool {
		a, b := f.directives[i].Target, f.directives[j].Target
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return f
}

// Enabled reports whether a record at the given level and target passes
// the filter. It is a pure function of the filter's configuration.
func (f *Filter) Enabled(level core.Level, target string) bool {
	return level >= f.LevelFor(target)
}

// LevelFor returns the minimum level required for the given target: the
// level of the longest-prefix directive matching it, or the default
// level when none matches.
func (f *Filter) LevelFor(target string) core.Level {
	for _, d := range f.directives {
		if matchesPrefix(target, d.Target) {
			return d.Level
		}
	}
	return f.defaultLevel
}

// MinLevel returns the most verbose level the filter can ever let
// through, across the default and every directive. Useful as a cheap
// pre-check before the target is known.
func (f *Filter) MinLevel() core.Level {
	return f.minLevel
}

// DefaultLevel returns the filter's default minimum level.
func (f *Filter) DefaultLevel() core.Level {
	return f.defaultLevel
}

// matchesPrefix reports whether target falls under the directive
// prefix. The match must end at a path boundary so that a directive for
// "app" does not capture "apple".
func matchesPrefix(target, prefix string) bool {
	if len(target) < len(prefix) || target[:len(prefix)] != prefix {
		return false
	}
	if len(target) == len(prefix) {
		return true
	}
	switch target[len(prefix)] {
	case '/', '.', ':':
		return true
	}
	return false
}
