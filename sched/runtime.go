// Package sched hosts tasks around a shared message registry.
//
// It is the glue the ipc core expects from its embedding runtime: it creates
// tasks, binds a wake note to every receiving task's inbox, and runs each
// task on its own goroutine until shutdown.
package sched

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"flit/ipc"
	"flit/notify"
)

// Task is a unit of execution hosted by a Runtime.
//
// Run should loop until ctx.Done() is closed and return nil on a clean
// exit. A non-nil error shuts the whole runtime down.
type Task interface {
	Run(ctx *Context) error
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(ctx *Context) error

func (f TaskFunc) Run(ctx *Context) error {
	return f(ctx)
}

type taskEntry struct {
	id   ipc.TaskID
	task Task
	note *notify.Note // nil for sender-only tasks
}

// Runtime owns a registry and the tasks exchanging messages through it.
//
// Add tasks during single-threaded setup, then call Run once. Adding tasks
// while Run is active is a precondition violation.
type Runtime struct {
	reg   *ipc.Registry
	tasks []taskEntry
}

// New returns a runtime with an empty registry.
func New() *Runtime {
	return &Runtime{reg: ipc.NewRegistry()}
}

// Registry exposes the message registry, e.g. for senders living outside
// the runtime.
func (rt *Runtime) Registry() *ipc.Registry {
	return rt.reg
}

// Add registers a receiving task: the task gets an inbox plus a wake note
// bound to it.
func (rt *Runtime) Add(id ipc.TaskID, t Task) error {
	if t == nil {
		return fmt.Errorf("sched: nil task %d", id)
	}
	note := notify.NewNote()
	if res := rt.reg.Register(id, note); res != ipc.OK {
		return fmt.Errorf("sched: register task %d: %s", id, res)
	}
	rt.tasks = append(rt.tasks, taskEntry{id: id, task: t, note: note})
	return nil
}

// AddSender adds a task that owns no inbox; it can send but not receive.
func (rt *Runtime) AddSender(id ipc.TaskID, t Task) error {
	if t == nil {
		return fmt.Errorf("sched: nil task %d", id)
	}
	rt.tasks = append(rt.tasks, taskEntry{id: id, task: t})
	return nil
}

// Run launches one goroutine per task and blocks until every task returns.
//
// The first task error cancels the remaining tasks' Done channel and becomes
// Run's return value. Cancelling ctx asks all tasks to stop.
func (rt *Runtime) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range rt.tasks {
		entry := rt.tasks[i]
		g.Go(func() error {
			tctx := &Context{
				rt:   rt,
				id:   entry.id,
				note: entry.note,
				done: gctx.Done(),
			}
			return entry.task.Run(tctx)
		})
	}
	return g.Wait()
}
