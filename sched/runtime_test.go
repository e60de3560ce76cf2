package sched

import (
	"context"
	"errors"
	"testing"
	"time"

	"flit/ipc"
)

func TestAddDuplicateID(t *testing.T) {
	rt := New()
	noop := TaskFunc(func(*Context) error { return nil })

	if err := rt.Add(1, noop); err != nil {
		t.Fatalf("Add() error = %v, want nil", err)
	}
	if err := rt.Add(1, noop); err == nil {
		t.Fatal("Add() error = nil for duplicate ID, want error")
	}
}

func TestAddNilTask(t *testing.T) {
	rt := New()

	if err := rt.Add(1, nil); err == nil {
		t.Fatal("Add() error = nil for nil task, want error")
	}
	if err := rt.AddSender(2, nil); err == nil {
		t.Fatal("AddSender() error = nil for nil task, want error")
	}
}

func TestRuntimeDelivers(t *testing.T) {
	const (
		server ipc.TaskID = 1
		client ipc.TaskID = 2
		nmsgs             = 5
	)

	rt := New()
	received := make(chan ipc.Message, nmsgs)

	err := rt.Add(server, TaskFunc(func(c *Context) error {
		for {
			select {
			case <-c.Done():
				return nil
			default:
			}
			for events := c.Wait(10 * time.Millisecond); events > 0; events-- {
				msg, _, res := c.Recv()
				if res != ipc.OK {
					break
				}
				received <- msg
			}
		}
	}))
	if err != nil {
		t.Fatalf("Add() error = %v, want nil", err)
	}

	err = rt.AddSender(client, TaskFunc(func(c *Context) error {
		for i := 0; i < nmsgs; i++ {
			for c.Send(server, 7, []byte{byte(i)}) == ipc.ErrQueueFull {
				if !c.Sleep(time.Millisecond) {
					return nil
				}
			}
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("AddSender() error = %v, want nil", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rt.Run(ctx)
	}()

	for i := 0; i < nmsgs; i++ {
		select {
		case msg := <-received:
			if msg.Kind != 7 || msg.Len != 1 || msg.Data[0] != byte(i) {
				t.Fatalf("message %d: kind=%d data=%d, want kind=7 data=%d", i, msg.Kind, msg.Data[0], i)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestTaskErrorStopsRuntime(t *testing.T) {
	rt := New()
	boom := errors.New("boom")

	err := rt.Add(1, TaskFunc(func(c *Context) error {
		<-c.Done()
		return nil
	}))
	if err != nil {
		t.Fatalf("Add() error = %v, want nil", err)
	}
	err = rt.AddSender(2, TaskFunc(func(c *Context) error {
		return boom
	}))
	if err != nil {
		t.Fatalf("AddSender() error = %v, want nil", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- rt.Run(context.Background())
	}()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Fatalf("Run() error = %v, want %v", err, boom)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}
