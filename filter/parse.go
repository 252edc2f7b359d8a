package filter

import (
	"fmt"
	"strings"

	"github.com/droidkit/droidlog/core"
)

// Parse builds a Filter from a comma-separated directive spec, e.g.
//
//	"info,app/db=debug,app/db/tx=error"
//
// Each directive is either "target=level", a bare level name that sets
// the default, or a bare target that enables everything under it. The
// default minimum level when the spec sets none is Error.
//
// Malformed input is rejected here, at construction time, so a broken
// spec never makes it into an installed configuration.
func Parse(spec string) (*Filter, error) {
	defaultLevel := core.ErrorLevel
	var directives []Directive

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		target, levelStr, hasLevel := strings.Cut(tok, "=")
		target = strings.TrimSpace(target)
		levelStr = strings.TrimSpace(levelStr)

		if !hasLevel {
			// Bare token: a level name sets the default, anything else
			// is a target allowed at full verbosity.
			if level, ok := core.ParseLevel(tok); ok {
				defaultLevel = level
			} else {
				directives = append(directives, Directive{Target: tok, Level: core.VerboseLevel})
			}
			continue
		}

		if target == "" {
			return nil, fmt.Errorf("filter: directive %q is missing a target", tok)
		}
		if levelStr == "" {
			return nil, fmt.Errorf("filter: directive %q is missing a level", tok)
		}
		level, ok := core.ParseLevel(levelStr)
		if !ok {
			return nil, fmt.Errorf("filter: directive %q has unknown level %q", tok, levelStr)
		}
		directives = append(directives, Directive{Target: target, Level: level})
	}

	return New(defaultLevel, directives...), nil
}
