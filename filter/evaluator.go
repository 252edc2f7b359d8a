package filter

import "github.com/droidkit/droidlog/core"

// PlatformQuery exposes the platform's own log filtering state: the
// process-wide minimum level and the per-tag level configured through
// system properties. Implementations report ok == false when the
// platform has no opinion.
//
// The query is a capability: tests substitute a stub, hosts without a
// platform filter pass nil.
type PlatformQuery interface {
	// MinLevel returns the process-wide minimum level, if set.
	MinLevel() (core.Level, bool)

	// TagLevel returns the level configured for the given tag, if set.
	TagLevel(tag string) (core.Level, bool)
}

// Evaluator combines the local Filter with an optional PlatformQuery.
// When a query is present, the local and platform decisions are
// reconciled by taking the least restrictive of the two: either layer
// may have been raised independently, and a message should be visible
// if any authority allows it through.
type Evaluator struct {
	filter *Filter
	query  PlatformQuery
	tag    string
}

// NewEvaluator creates an Evaluator for the given filter and tag. A nil
// query disables platform reconciliation so that only the local filter
// governs.
func NewEvaluator(f *Filter, query PlatformQuery, tag string) *Evaluator {
	return &Evaluator{filter: f, query: query, tag: tag}
}

// Enabled reports whether a record at the given level and target should
// be emitted. Pure function of configuration and inputs; no side
// effects.
func (e *Evaluator) Enabled(level core.Level, target string) bool {
	if e.filter.Enabled(level, target) {
		return true
	}
	if e.query == nil {
		return false
	}
	platformMin, ok := e.platformMin()
	return ok && level >= platformMin
}

// MinLevel returns the most verbose level the evaluator can let
// through, considering both the local filter and the platform layer.
func (e *Evaluator) MinLevel() core.Level {
	min := e.filter.MinLevel()
	if e.query != nil {
		if platformMin, ok := e.platformMin(); ok && platformMin < min {
			min = platformMin
		}
	}
	return min
}

// platformMin resolves the platform's minimum level for the configured
// tag. The tag-specific property is authoritative when present; the
// process-wide setting only applies to tags without their own entry, so
// a tag silenced via log.tag stays silent under a verbose "*" entry.
func (e *Evaluator) platformMin() (core.Level, bool) {
	if level, ok := e.query.TagLevel(e.tag); ok {
		return level, true
	}
	return e.query.MinLevel()
}
