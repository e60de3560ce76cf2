// Package echo implements the demo receiver: it drains its inbox on every
// wake and prints what it finds.
package echo

import (
	"fmt"
	"time"

	"flit/hal"
	"flit/ipc"
	"flit/proto"
	"flit/sched"
)

// pollInterval bounds how long the task blocks between shutdown checks.
const pollInterval = 50 * time.Millisecond

// Task prints every message delivered to its inbox.
type Task struct {
	log hal.Logger
}

// New returns an echo task writing to log.
func New(log hal.Logger) *Task {
	return &Task{log: log}
}

func (t *Task) Run(ctx *sched.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// One wake event is recorded per enqueued message, so the wake
		// count bounds the drain loop.
		for events := ctx.Wait(pollInterval); events > 0; events-- {
			msg, _, res := ctx.Recv()
			if res != ipc.OK {
				break
			}
			t.print(&msg)
		}
	}
}

func (t *Task) print(msg *ipc.Message) {
	switch msg.Kind {
	case proto.MsgGreeting:
		t.log.WriteLineBytes(msg.Payload())
	case proto.MsgStatus:
		seq, detail, ok := proto.ParseStatus(msg.Payload())
		if !ok {
			return
		}
		if len(detail) == 0 {
			t.log.WriteLineString(fmt.Sprintf("status: seq=%d", seq))
			return
		}
		t.log.WriteLineString(fmt.Sprintf("status: seq=%d %s", seq, detail))
	default:
		t.log.WriteLineString(fmt.Sprintf("echo: unexpected %s message (kind %d)", proto.Name(msg.Kind), msg.Kind))
	}
}
