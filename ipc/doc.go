// Package ipc provides fast bounded message passing between tasks.
//
// Each receiving task owns exactly one inbox: a fixed-capacity FIFO of
// fixed-size messages plus an opaque wake handle. A sender resolves the
// receiver through a Registry, enqueues a copy of the payload, and signals
// the wake handle; the receiver drains its own inbox after waking. All
// storage lives inside the Registry, so steady-state send and receive
// perform no allocation.
//
// A per-inbox lock covers the queue-mutation critical section on both the
// send and receive paths: multiple tasks may send to the same inbox
// concurrently, and the owner may receive while sends are in flight.
// Registration is startup-only and not safe for concurrent use.
package ipc
