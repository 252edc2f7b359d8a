// Package formatter defines how log records are rendered into the text
// sent to the platform.
//
// Logcat output differs from file logging in one important way: the
// platform stamps every message with a timestamp, priority, and tag on
// its own, so formatters emit only the message body. MessageFormatter
// (the default) produces the message followed by key=value pairs;
// JSONFormatter produces a single-line JSON object for pipelines that
// re-parse structured logs out of logcat.
//
// Formatters that also implement BufferFormatter render directly into a
// caller-provided buffer; the handler checks for it at construction
// time and prefers it, eliminating the intermediate byte slice
// allocation on the emit path. Custom formats can be supplied as a
// plain function via Func.
package formatter
