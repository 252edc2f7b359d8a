package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	Int64Type
	Uint64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair attached to a Record. Values are
// encoded into fixed-size numeric slots where possible so that common
// types never escape to the heap.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Uint64  uint64
	Float64 float64
	Str     string
	Any     interface{}
}

// AppendTo appends the field's value in its text form to buf and returns
// the extended slice.
func (f Field) AppendTo(buf []byte) []byte {
	switch f.Type {
	case StringType, ErrorType:
		return append(buf, f.Str...)
	case Int64Type:
		return strconv.AppendInt(buf, f.Int64, 10)
	case Uint64Type:
		return strconv.AppendUint(buf, f.Uint64, 10)
	case Float64Type:
		return strconv.AppendFloat(buf, f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.AppendBool(buf, f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).UTC().AppendFormat(buf, time.RFC3339)
	case DurationType:
		return append(buf, time.Duration(f.Int64).String()...)
	case AnyType:
		return fmt.Appendf(buf, "%v", f.Any)
	default:
		return buf
	}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	return string(f.AppendTo(nil))
}

// Field constructors

// String creates a string field
func String(key, val string) Field {
	return Field{Key: key, Type: StringType, Str: val}
}

// Int creates an int field
func Int(key string, val int) Field {
	return Field{Key: key, Type: Int64Type, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Int64: val}
}

// Uint64 creates a uint64 field
func Uint64(key string, val uint64) Field {
	return Field{Key: key, Type: Uint64Type, Uint64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return Field{Key: key, Type: BoolType, Int64: int64Val}
}

// Time creates a time field
func Time(key string, val time.Time) Field {
	return Field{Key: key, Type: TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Int64: int64(val)}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Type: ErrorType, Str: ""}
	}
	return Field{Key: "error", Type: ErrorType, Str: err.Error()}
}

// Any creates a field with any value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Type: AnyType, Any: val}
}
