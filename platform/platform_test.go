package platform

import (
	"strings"
	"testing"

	"github.com/droidkit/droidlog/core"
)

func TestPriorityForLevelMonotonic(t *testing.T) {
	levels := []core.Level{
		core.VerboseLevel, core.DebugLevel, core.InfoLevel,
		core.WarnLevel, core.ErrorLevel, core.FatalLevel, core.SilentLevel,
	}
	prev := PriorityForLevel(levels[0])
	for _, l := range levels[1:] {
		p := PriorityForLevel(l)
		if p <= prev {
			t.Errorf("PriorityForLevel(%v) = %v, not above %v", l, p, prev)
		}
		prev = p
	}
}

func TestPriorityLevelRoundTrip(t *testing.T) {
	for _, l := range []core.Level{
		core.VerboseLevel, core.DebugLevel, core.InfoLevel,
		core.WarnLevel, core.ErrorLevel, core.FatalLevel, core.SilentLevel,
	} {
		if got := PriorityForLevel(l).Level(); got != l {
			t.Errorf("round trip of %v came back as %v", l, got)
		}
	}
}

func TestPriorityLetter(t *testing.T) {
	tests := []struct {
		prio Priority
		want byte
	}{
		{PriorityVerbose, 'V'},
		{PriorityDebug, 'D'},
		{PriorityInfo, 'I'},
		{PriorityWarn, 'W'},
		{PriorityError, 'E'},
		{PriorityFatal, 'F'},
		{PrioritySilent, 'S'},
		{PriorityUnknown, '?'},
	}
	for _, tt := range tests {
		if got := tt.prio.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c, want %c", tt.prio, got, tt.want)
		}
	}
}

func TestParseBuffer(t *testing.T) {
	for _, name := range []string{"main", "radio", "events", "system", "crash", "stats", "security", "kernel"} {
		b, err := ParseBuffer(name)
		if err != nil {
			t.Errorf("ParseBuffer(%q) error = %v", name, err)
		}
		if b.String() != name {
			t.Errorf("ParseBuffer(%q).String() = %q", name, b.String())
		}
	}

	if _, err := ParseBuffer("bogus"); err == nil {
		t.Error("ParseBuffer(bogus) expected error")
	}
}

func TestBufferValues(t *testing.T) {
	// The numeric values are the wire protocol (log_id_t); they must
	// not drift.
	tests := []struct {
		buf  Buffer
		want uint8
	}{
		{BufferMain, 0},
		{BufferRadio, 1},
		{BufferEvents, 2},
		{BufferSystem, 3},
		{BufferCrash, 4},
		{BufferStats, 5},
		{BufferSecurity, 6},
		{BufferKernel, 7},
	}
	for _, tt := range tests {
		if uint8(tt.buf) != tt.want {
			t.Errorf("%v = %d, want %d", tt.buf, tt.buf, tt.want)
		}
	}
}

func TestTruncateTag(t *testing.T) {
	short := "mytag"
	if got := TruncateTag(short); got != short {
		t.Errorf("TruncateTag(%q) = %q", short, got)
	}

	exact := strings.Repeat("a", MaxTagLen)
	if got := TruncateTag(exact); got != exact {
		t.Errorf("tag of exactly MaxTagLen bytes was modified: %q", got)
	}

	long := strings.Repeat("a", MaxTagLen+20)
	got := TruncateTag(long)
	if len(got) != MaxTagLen {
		t.Fatalf("truncated tag is %d bytes, want %d", len(got), MaxTagLen)
	}
	want := strings.Repeat("a", MaxTagLen-2) + ".."
	if got != want {
		t.Errorf("TruncateTag = %q, want %q", got, want)
	}
}

func TestTruncateTagReplacesNul(t *testing.T) {
	if got := TruncateTag("my\x00tag"); got != "my tag" {
		t.Errorf("TruncateTag = %q, want %q", got, "my tag")
	}
}

func TestSanitize(t *testing.T) {
	msg := []byte("with\x00nul\x00bytes")
	if got := string(Sanitize(msg)); got != "with nul bytes" {
		t.Errorf("Sanitize = %q", got)
	}
}
