//go:build !linux

package platform

import "errors"

// LogdWriter is only functional on Linux-based platforms; this stub
// keeps the package portable.
type LogdWriter struct{}

// NewLogdWriter always fails on non-Linux platforms.
func NewLogdWriter() (*LogdWriter, error) {
	return nil, errors.New("platform: logd socket is not available on this OS")
}

func (w *LogdWriter) Write(Buffer, Priority, string, []byte) error {
	return errors.New("platform: logd socket is not available on this OS")
}

func (w *LogdWriter) Close() error { return nil }
