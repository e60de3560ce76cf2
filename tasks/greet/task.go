// Package greet implements the demo sender: a periodic producer that
// greets one receiving task.
package greet

import (
	"fmt"
	"time"

	"flit/ipc"
	"flit/proto"
	"flit/sched"
)

// Task sends a greeting plus a status message to one receiver each interval.
type Task struct {
	to       ipc.TaskID
	interval time.Duration
	count    int // 0 = run until shutdown
}

// New returns a greeter targeting task to. count limits the number of
// greetings; 0 keeps greeting until the runtime shuts down.
func New(to ipc.TaskID, interval time.Duration, count int) *Task {
	return &Task{to: to, interval: interval, count: count}
}

func (t *Task) Run(ctx *sched.Context) error {
	seq := uint32(0)
	for {
		if !ctx.Sleep(t.interval) {
			return nil
		}
		seq++

		if res := ctx.Send(t.to, proto.MsgGreeting, []byte("Hello world!")); fatal(res) {
			return fmt.Errorf("greet: send greeting: %s", res)
		}
		if res := ctx.Send(t.to, proto.MsgStatus, proto.StatusPayload(seq, nil)); fatal(res) {
			return fmt.Errorf("greet: send status: %s", res)
		}

		if t.count > 0 && int(seq) >= t.count {
			return nil
		}
	}
}

// fatal reports whether a send result should stop the task. A full queue or
// a lost wake is transient: the receiver will catch up on its next poll.
func fatal(res ipc.Result) bool {
	switch res {
	case ipc.OK, ipc.ErrQueueFull, ipc.ErrWakeFailed:
		return false
	}
	return true
}
