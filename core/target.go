package core

import (
	"runtime"
	"strings"
	"sync"
)

// targetCache memoizes pc -> target lookups. Call sites are stable for
// the lifetime of the process, so the cache only grows up to the number
// of distinct logging statements.
var targetCache sync.Map // uintptr -> string

// TargetForPC derives the log target (the import path of the calling
// package) from a program counter, e.g. the PC carried by a
// slog.Record. It returns "" when the PC cannot be resolved.
func TargetForPC(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	if cached, ok := targetCache.Load(pc); ok {
		return cached.(string)
	}

	// CallersFrames handles the return-address adjustment and inlined
	// frames that a plain FuncForPC lookup would get wrong.
	target := ""
	frames := runtime.CallersFrames([]uintptr{pc})
	if frame, _ := frames.Next(); frame.Function != "" {
		target = packageOf(frame.Function)
	}
	targetCache.Store(pc, target)
	return target
}

// packageOf extracts the package import path from a fully qualified
// function name such as "github.com/acme/app/web.(*Server).Start".
func packageOf(fn string) string {
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}
