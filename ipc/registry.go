package ipc

import "sync"

// MaxInboxes bounds the number of tasks that can register an inbox.
const MaxInboxes = 32

// Waker signals a receiving task's execution context.
//
// Wake must not block. It reports false when the underlying primitive could
// not record the signal, e.g. because its pending count is saturated.
type Waker interface {
	Wake() bool
}

// inbox pairs one task's queue with the handle used to wake it.
type inbox struct {
	id   TaskID
	wake Waker

	mu sync.Mutex
	q  msgQueue
}

// Registry maps task IDs to inboxes.
//
// Registration must happen during single-threaded startup, before any Send
// or Receive. Send may be called concurrently, from different tasks, against
// the same inbox. Receive is called only by the inbox's owning task.
type Registry struct {
	inboxes [MaxInboxes]inbox
	count   uint8
}

// NewRegistry returns an initialized empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Reset discards all registrations.
//
// It exists for statically allocated registries. It must run before any task
// has registered or exchanged messages; calling it later is a precondition
// violation, not a supported operation.
func (r *Registry) Reset() {
	r.count = 0
}

// Count returns the number of registered inboxes.
func (r *Registry) Count() int {
	return int(r.count)
}

// Register creates the inbox for a task. Each task owns at most one inbox.
//
// The new inbox starts empty and is immediately eligible as a send target.
func (r *Registry) Register(id TaskID, wake Waker) Result {
	if wake == nil {
		return ErrInvalidHandle
	}
	if r.count == MaxInboxes {
		return ErrRegistryFull
	}
	if r.lookup(id) != nil {
		return ErrInboxExists
	}

	ib := &r.inboxes[r.count]
	ib.id = id
	ib.wake = wake
	ib.q = msgQueue{}
	r.count++
	return OK
}

// Send copies a message into the receiver's queue and wakes the receiver.
//
// The payload must be shorter than MaxPayload. A full queue rejects the
// message; nothing is overwritten. ErrWakeFailed means the message was
// stored but the wake signal was not delivered: the data stays queued and
// the receiver's next independent wake or poll will observe it.
func (r *Registry) Send(to TaskID, kind Kind, payload []byte) Result {
	if len(payload) >= MaxPayload {
		return ErrPayloadTooLarge
	}
	ib := r.lookup(to)
	if ib == nil {
		return ErrNoInbox
	}

	var msg Message
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)

	ib.mu.Lock()
	ok := ib.q.push(&msg)
	ib.mu.Unlock()
	if !ok {
		return ErrQueueFull
	}

	if !ib.wake.Wake() {
		return ErrWakeFailed
	}
	return OK
}

// Receive pops the oldest message from the owner's queue.
//
// more reports that further messages remain, so the owner can keep draining
// without consulting its wake count again.
func (r *Registry) Receive(owner TaskID) (msg Message, more bool, res Result) {
	ib := r.lookup(owner)
	if ib == nil {
		return Message{}, false, ErrNoInbox
	}

	ib.mu.Lock()
	msg, ok := ib.q.pop()
	more = ib.q.size > 0
	ib.mu.Unlock()
	if !ok {
		return Message{}, false, ErrQueueEmpty
	}
	return msg, more, OK
}

// lookup scans the registered prefix of the table. MaxInboxes is small and
// lookups are rare next to queue traffic.
func (r *Registry) lookup(id TaskID) *inbox {
	for i := uint8(0); i < r.count; i++ {
		if r.inboxes[i].id == id {
			return &r.inboxes[i]
		}
	}
	return nil
}
