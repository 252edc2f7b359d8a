package platform

import (
	"bytes"
	"unicode/utf8"
)

// MaxPayload is the default byte limit for a single platform write.
// logd caps one write at 4068 payload bytes including the priority
// byte, tag, and terminators; 4000 leaves headroom for the longest
// permitted tag.
const MaxPayload = 4000

// Chunker splits a message into segments no larger than the write
// limit. It is lazy and finite: each Next call carves off the next
// segment, and the concatenation of all segments reproduces the input
// exactly.
//
// Cut points are chosen in order of preference: the last newline inside
// the window, else the closest UTF-8 rune boundary at or below the
// limit. Binary input (or a limit smaller than a code point) degrades
// to splitting on the raw limit. A recognized multi-byte sequence is
// never split.
type Chunker struct {
	rest  []byte
	limit int
}

// NewChunker creates a Chunker over msg. A non-positive limit selects
// MaxPayload. The Chunker aliases msg; the caller must not mutate it
// until iteration is done.
func NewChunker(msg []byte, limit int) *Chunker {
	if limit <= 0 {
		limit = MaxPayload
	}
	return &Chunker{rest: msg, limit: limit}
}

// Next returns the next segment. ok is false once the input is
// exhausted.
func (c *Chunker) Next() (chunk []byte, ok bool) {
	if len(c.rest) == 0 {
		return nil, false
	}
	if len(c.rest) <= c.limit {
		chunk = c.rest
		c.rest = nil
		return chunk, true
	}
	cut := cutIndex(c.rest, c.limit)
	chunk = c.rest[:cut]
	c.rest = c.rest[cut:]
	return chunk, true
}

// cutIndex picks the split position for a message longer than limit.
func cutIndex(msg []byte, limit int) int {
	if i := bytes.LastIndexByte(msg[:limit], '\n'); i >= 0 {
		return i + 1
	}
	// Walk back at most a rune's worth of bytes looking for a boundary.
	for cut := limit; cut > 0 && cut > limit-utf8.UTFMax; cut-- {
		if utf8.RuneStart(msg[cut]) {
			return cut
		}
	}
	// No boundary within reach: not valid UTF-8, split on the raw byte.
	return limit
}
