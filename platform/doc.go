// Package platform talks to the Android logging subsystem.
//
// It defines the platform's Priority and Buffer scales, normalizes tags
// to the 23-byte limit liblog enforces, and splits oversized messages
// into bounded segments (Chunker) since logd caps a single write at
// roughly 4 KiB.
//
// The Writer interface is the transmission boundary: one Write call is
// one platform transmission, with no buffering across calls. LogdWriter
// is the real thing, speaking logd's unixgram datagram protocol in pure
// Go. TextWriter renders logcat-style text lines to any io.Writer and
// doubles as the host-side fallback and the capture writer in tests.
// SyslogWriter and MultiWriter round out deployments that span Android
// and stock Linux.
//
// Properties exposes the platform's own filter state (ANDROID_LOG_TAGS,
// log.tag.* properties) to the filter package's evaluator.
package platform
