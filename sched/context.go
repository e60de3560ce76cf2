package sched

import (
	"time"

	"flit/ipc"
	"flit/notify"
)

// Context provides task-local access to the runtime.
type Context struct {
	rt   *Runtime
	id   ipc.TaskID
	note *notify.Note
	done <-chan struct{}
}

// TaskID returns the current task's ID.
func (c *Context) TaskID() ipc.TaskID {
	return c.id
}

// Done is closed when the runtime is shutting down.
func (c *Context) Done() <-chan struct{} {
	return c.done
}

// Send delivers a message to another task's inbox.
func (c *Context) Send(to ipc.TaskID, kind ipc.Kind, payload []byte) ipc.Result {
	return c.rt.reg.Send(to, kind, payload)
}

// Recv pops the oldest message from this task's inbox.
func (c *Context) Recv() (ipc.Message, bool, ipc.Result) {
	return c.rt.reg.Receive(c.id)
}

// Wait blocks until this task has pending wake events or the timeout
// elapses, consuming and returning the event count.
//
// Wait does not observe Done; use bounded timeouts and check Done in the
// task loop. Sender-only tasks have no note and always get 0.
func (c *Context) Wait(timeout time.Duration) uint32 {
	if c.note == nil {
		return 0
	}
	return c.note.Wait(timeout)
}

// Sleep pauses for d, returning early with false when the runtime is
// shutting down.
func (c *Context) Sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-c.done:
		return false
	case <-t.C:
		return true
	}
}
