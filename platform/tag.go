package platform

import "strings"

// MaxTagLen is the longest tag the platform accepts. liblog silently
// drops messages with longer tags, so over-long tags are truncated with
// a ".." marker instead.
const MaxTagLen = 23

// TruncateTag normalizes a tag for the platform: NUL bytes become
// spaces (the tag travels as a C string) and tags longer than MaxTagLen
// are shortened, keeping the leading bytes and appending "..".
func TruncateTag(tag string) string {
	tag = strings.ReplaceAll(tag, "\x00", " ")
	if len(tag) <= MaxTagLen {
		return tag
	}
	return tag[:MaxTagLen-2] + ".."
}

// Sanitize replaces NUL bytes in msg with spaces, in place. The message
// payload is NUL-terminated on the wire, so embedded NULs would
// truncate it.
func Sanitize(msg []byte) []byte {
	for i, b := range msg {
		if b == 0 {
			msg[i] = ' '
		}
	}
	return msg
}
