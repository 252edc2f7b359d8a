package filter

import (
	"testing"

	"github.com/droidkit/droidlog/core"
)

func TestParse(t *testing.T) {
	f, err := Parse("info,app/db=debug,app/db/tx=error")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := f.DefaultLevel(); got != core.InfoLevel {
		t.Errorf("default level = %v, want InfoLevel", got)
	}
	if got := f.LevelFor("app/db/conn"); got != core.DebugLevel {
		t.Errorf("LevelFor(app/db/conn) = %v, want DebugLevel", got)
	}
	if got := f.LevelFor("app/db/tx/commit"); got != core.ErrorLevel {
		t.Errorf("LevelFor(app/db/tx/commit) = %v, want ErrorLevel", got)
	}
}

func TestParseBareTarget(t *testing.T) {
	f, err := Parse("app/ws")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := f.LevelFor("app/ws"); got != core.VerboseLevel {
		t.Errorf("bare target should enable full verbosity, got %v", got)
	}
	if got := f.DefaultLevel(); got != core.ErrorLevel {
		t.Errorf("default level = %v, want ErrorLevel", got)
	}
}

func TestParseEmptySpec(t *testing.T) {
	f, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// Matches the library default: errors only.
	if got := f.DefaultLevel(); got != core.ErrorLevel {
		t.Errorf("default level = %v, want ErrorLevel", got)
	}
}

func TestParseWhitespaceAndEmptyTokens(t *testing.T) {
	f, err := Parse(" info , app = debug ,, ")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := f.LevelFor("app"); got != core.DebugLevel {
		t.Errorf("LevelFor(app) = %v, want DebugLevel", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"app=",        // missing level
		"=debug",      // missing target
		"app=loud",    // unknown level
		"info,app=no", // error anywhere in the spec aborts
	}

	for _, spec := range tests {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", spec)
		}
	}
}

func TestParseBareLevelLastWins(t *testing.T) {
	f, err := Parse("debug,warn")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := f.DefaultLevel(); got != core.WarnLevel {
		t.Errorf("default level = %v, want WarnLevel", got)
	}
}
