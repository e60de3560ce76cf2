// Package notify implements the counting wake primitive tasks block on.
package notify

import (
	"sync"
	"time"
)

// MaxPending caps a Note's pending count. Signal reports failure once the
// count is saturated.
const MaxPending = 1 << 16

// Note is a counting wake primitive for one task: many signalers, one waiter.
//
// Signal never blocks. Wait blocks until at least one signal is pending or a
// timeout elapses, then consumes the whole count, mirroring direct-to-task
// notification takes: the count accumulates while the owner is busy and is
// drained in one call.
type Note struct {
	_ [0]func() // prevent accidental copying.

	mu      sync.Mutex
	pending uint32
	wake    chan struct{}
}

// NewNote returns a Note with a zero pending count.
func NewNote() *Note {
	return &Note{wake: make(chan struct{}, 1)}
}

// Signal records one wake event without blocking.
//
// It reports false when the pending count is saturated at MaxPending; the
// event is dropped but previously recorded events remain pending.
func (n *Note) Signal() bool {
	n.mu.Lock()
	if n.pending == MaxPending {
		n.mu.Unlock()
		return false
	}
	n.pending++
	n.mu.Unlock()

	select {
	case n.wake <- struct{}{}:
	default:
	}
	return true
}

// Wake records one wake event. It makes a Note usable as an inbox wake
// handle.
func (n *Note) Wake() bool {
	return n.Signal()
}

// Pending returns the current pending count without consuming it.
func (n *Note) Pending() uint32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pending
}

// TryWait consumes and returns the pending count without blocking.
func (n *Note) TryWait() uint32 {
	n.mu.Lock()
	got := n.pending
	n.pending = 0
	n.mu.Unlock()
	return got
}

// Wait blocks until at least one signal is pending or the timeout elapses,
// then consumes and returns the pending count. A zero return means the
// timeout expired with nothing pending.
func (n *Note) Wait(timeout time.Duration) uint32 {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		if got := n.TryWait(); got > 0 {
			return got
		}
		select {
		case <-n.wake:
		case <-deadline.C:
			// A signal may have landed between the last check and the
			// timer firing.
			return n.TryWait()
		}
	}
}
