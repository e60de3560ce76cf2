package ipc

// MaxPayload is the maximum payload size for IPC messages.
//
// Every queue slot stores a full fixed-size envelope, so raising this grows
// each inbox by QueueCapacity*MaxPayload bytes.
const MaxPayload = 512

// TaskID identifies a receiving task. Each task uses exactly one ID.
type TaskID uint8

// Kind identifies the payload semantics of a message.
//
// The core does not interpret it; embedding applications define their own
// values (package proto holds the demo protocol's).
type Kind uint16

// Message is a fixed-size message envelope.
//
// Messages are copied by value into and out of a queue. The core never keeps
// a reference into caller-owned memory past the send call.
type Message struct {
	Kind Kind
	Len  uint16
	Data [MaxPayload]byte
}

// Payload returns the valid portion of Data, clamping Len to MaxPayload.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxPayload {
		n = MaxPayload
	}
	return m.Data[:n]
}
