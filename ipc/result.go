package ipc

// Result describes the outcome of a registry operation.
type Result uint8

const (
	OK Result = iota
	ErrInvalidHandle
	ErrRegistryFull
	ErrInboxExists
	ErrPayloadTooLarge
	ErrNoInbox
	ErrQueueFull
	ErrQueueEmpty
	ErrWakeFailed
)

func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case ErrInvalidHandle:
		return "invalid wake handle"
	case ErrRegistryFull:
		return "inbox table full"
	case ErrInboxExists:
		return "inbox already registered"
	case ErrPayloadTooLarge:
		return "payload too large"
	case ErrNoInbox:
		return "no such inbox"
	case ErrQueueFull:
		return "queue full"
	case ErrQueueEmpty:
		return "queue empty"
	case ErrWakeFailed:
		return "wake signal failed"
	default:
		return "unknown"
	}
}
