package core

import (
	"sync"
	"time"
)

// Record represents a single log event on its way to the platform. It is
// ephemeral: handlers populate it, format it, and must not retain it past
// the call.
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Fields  []Field
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Fields: make([]Field, 0, 8), // Pre-allocate for 8 fields
		}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Now()
	r.Fields = r.Fields[:0]
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Fields = r.Fields[:0]
	r.Target = ""
	r.Message = ""
	recordPool.Put(r)
}
