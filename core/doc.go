// Package core defines the shared types used across droidlog.
//
// It provides the Level type for severity filtering, the Record type
// that represents a single log event on its way to the platform, and
// the Field type for zero-allocation structured key-value pairs.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Handlers get a Record with GetRecord and must
// return it with PutRecord once the writer has consumed it. The pool
// pre-allocates the Fields slice with capacity 8, which covers most
// log calls without triggering a slice growth.
//
// TargetForPC recovers the calling package's import path from a
// program counter; it is the module-path equivalent used for
// per-module filtering when a record carries no explicit target.
package core
