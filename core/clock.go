package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every millisecond. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process, which is intentional because logging typically spans the
// entire application lifecycle.
//
// Writers that stamp every outgoing message (the logd frame header
// carries a timestamp) use CoarseNow to avoid a vdso call per write.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(time.Millisecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time, or the precise
// current time when the coarse clock has not been started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
