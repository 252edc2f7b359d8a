package platform

import (
	"encoding/binary"
	"time"
)

// logdHeaderLen is the size of android_log_header_t: buffer id byte,
// little-endian uint16 tid, and a log_time of two little-endian uint32s.
const logdHeaderLen = 1 + 2 + 4 + 4

// appendLogdFrame appends one logd wire frame to dst: the packed
// android_log_header_t followed by the payload (priority byte, tag and
// message, each NUL-terminated).
func appendLogdFrame(dst []byte, buf Buffer, prio Priority, tag string, msg []byte, tid uint16, t time.Time) []byte {
	dst = append(dst, byte(buf))
	dst = binary.LittleEndian.AppendUint16(dst, tid)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(t.Unix()))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(t.Nanosecond()))
	dst = append(dst, byte(prio))
	dst = append(dst, tag...)
	dst = append(dst, 0)
	dst = append(dst, msg...)
	dst = append(dst, 0)
	return dst
}
