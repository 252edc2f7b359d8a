package filter

import (
	"testing"

	"github.com/droidkit/droidlog/core"
)

// stubQuery is a PlatformQuery with fixed answers.
type stubQuery struct {
	minLevel   core.Level
	minOK      bool
	tagLevels  map[string]core.Level
	queriedTag string
}

func (s *stubQuery) MinLevel() (core.Level, bool) {
	return s.minLevel, s.minOK
}

func (s *stubQuery) TagLevel(tag string) (core.Level, bool) {
	s.queriedTag = tag
	level, ok := s.tagLevels[tag]
	return level, ok
}

func TestEvaluatorLocalOnly(t *testing.T) {
	f := New(core.InfoLevel)
	e := NewEvaluator(f, nil, "mytag")

	if e.Enabled(core.DebugLevel, "app") {
		t.Error("Debug should be dropped with no platform query")
	}
	if !e.Enabled(core.WarnLevel, "app") {
		t.Error("Warn should pass the local filter")
	}
}

func TestEvaluatorPlatformRaisesVerbosity(t *testing.T) {
	// Local filter says Error-only, but the platform has the tag at
	// Verbose. Least restrictive wins: the record is emitted.
	f := New(core.ErrorLevel)
	q := &stubQuery{tagLevels: map[string]core.Level{"mytag": core.VerboseLevel}}
	e := NewEvaluator(f, q, "mytag")

	if !e.Enabled(core.DebugLevel, "app") {
		t.Error("platform override should let Debug through")
	}
	if q.queriedTag != "mytag" {
		t.Errorf("queried tag %q, want %q", q.queriedTag, "mytag")
	}
}

func TestEvaluatorLocalRaisesVerbosity(t *testing.T) {
	// Platform says Error-only, but the local filter allows Debug.
	f := New(core.DebugLevel)
	q := &stubQuery{minLevel: core.ErrorLevel, minOK: true}
	e := NewEvaluator(f, q, "mytag")

	if !e.Enabled(core.DebugLevel, "app") {
		t.Error("local filter should let Debug through despite platform")
	}
}

func TestEvaluatorBothRestrictive(t *testing.T) {
	f := New(core.ErrorLevel)
	q := &stubQuery{minLevel: core.WarnLevel, minOK: true}
	e := NewEvaluator(f, q, "mytag")

	if e.Enabled(core.DebugLevel, "app") {
		t.Error("Debug should be dropped when both layers are above it")
	}
	if !e.Enabled(core.WarnLevel, "app") {
		t.Error("Warn passes via the platform layer")
	}
}

func TestEvaluatorTagBeatsProcessWide(t *testing.T) {
	q := &stubQuery{
		minLevel:  core.ErrorLevel,
		minOK:     true,
		tagLevels: map[string]core.Level{"mytag": core.WarnLevel},
	}
	e := NewEvaluator(New(core.SilentLevel), q, "mytag")

	if !e.Enabled(core.WarnLevel, "app") {
		t.Error("tag-specific platform level should apply")
	}
	if e.Enabled(core.DebugLevel, "app") {
		t.Error("tag entry is authoritative; the process-wide level must not apply")
	}
}

func TestEvaluatorSilencedTagStaysSilent(t *testing.T) {
	// A tag explicitly silenced via log.tag must not log even when the
	// process-wide "*" entry is fully verbose.
	q := &stubQuery{
		minLevel:  core.VerboseLevel,
		minOK:     true,
		tagLevels: map[string]core.Level{"mytag": core.SilentLevel},
	}
	e := NewEvaluator(New(core.SilentLevel), q, "mytag")

	for _, level := range []core.Level{core.DebugLevel, core.ErrorLevel, core.FatalLevel} {
		if e.Enabled(level, "app") {
			t.Errorf("%v record emitted for a silenced tag", level)
		}
	}
}

func TestEvaluatorNoPlatformOpinion(t *testing.T) {
	f := New(core.InfoLevel)
	e := NewEvaluator(f, &stubQuery{}, "mytag")

	if e.Enabled(core.DebugLevel, "app") {
		t.Error("with no platform opinion only the local filter governs")
	}
}

func TestEvaluatorMinLevel(t *testing.T) {
	f := New(core.InfoLevel)
	e := NewEvaluator(f, nil, "mytag")
	if got := e.MinLevel(); got != core.InfoLevel {
		t.Errorf("MinLevel() = %v, want InfoLevel", got)
	}

	q := &stubQuery{tagLevels: map[string]core.Level{"mytag": core.VerboseLevel}}
	e = NewEvaluator(f, q, "mytag")
	if got := e.MinLevel(); got != core.VerboseLevel {
		t.Errorf("MinLevel() with platform override = %v, want VerboseLevel", got)
	}
}
