// Package proto defines the message kinds used by the demo tasks.
package proto

import (
	"encoding/binary"

	"flit/ipc"
)

const (
	MsgGreeting ipc.Kind = iota + 1
	MsgStatus
)

// Name returns a short identifier for a demo message kind.
func Name(k ipc.Kind) string {
	switch k {
	case MsgGreeting:
		return "greeting"
	case MsgStatus:
		return "status"
	default:
		return "unknown"
	}
}

// StatusPayload encodes a MsgStatus payload.
//
// Layout (little-endian):
//   - u32: sequence number
//   - bytes: optional detail (task-defined)
func StatusPayload(seq uint32, detail []byte) []byte {
	buf := make([]byte, 4+len(detail))
	binary.LittleEndian.PutUint32(buf[0:4], seq)
	copy(buf[4:], detail)
	return buf
}

// ParseStatus decodes a MsgStatus payload. It reports false when the buffer
// is too short to hold the header.
func ParseStatus(b []byte) (seq uint32, detail []byte, ok bool) {
	if len(b) < 4 {
		return 0, nil, false
	}
	return binary.LittleEndian.Uint32(b[0:4]), b[4:], true
}
