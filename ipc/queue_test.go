package ipc

import "testing"

func TestQueuePopEmpty(t *testing.T) {
	var q msgQueue

	if _, ok := q.pop(); ok {
		t.Fatalf("pop() ok = true, want false")
	}
}

func TestQueuePushFull(t *testing.T) {
	var q msgQueue
	var msg Message

	for i := 0; i < QueueCapacity; i++ {
		if ok := q.push(&msg); !ok {
			t.Fatalf("push() ok = false at slot %d, want true", i)
		}
	}
	if ok := q.push(&msg); ok {
		t.Fatalf("push() ok = true when full, want false")
	}

	for i := 0; i < QueueCapacity; i++ {
		if _, ok := q.pop(); !ok {
			t.Fatalf("pop() ok = false at slot %d, want true", i)
		}
	}
}

func TestQueueWraparound(t *testing.T) {
	var q msgQueue

	// Cycle several capacities' worth of messages so head and tail wrap.
	for i := 0; i < QueueCapacity*3; i++ {
		var msg Message
		msg.Kind = Kind(i)
		if ok := q.push(&msg); !ok {
			t.Fatalf("push() ok = false at step %d, want true", i)
		}
		got, ok := q.pop()
		if !ok {
			t.Fatalf("pop() ok = false at step %d, want true", i)
		}
		if got.Kind != Kind(i) {
			t.Fatalf("pop() kind = %d, want %d", got.Kind, i)
		}
	}

	if q.size != 0 {
		t.Fatalf("size = %d after drain, want 0", q.size)
	}
}

func TestQueueFIFOAcrossWrap(t *testing.T) {
	var q msgQueue

	// Leave the indices mid-array, then fill completely so the tail wraps
	// past the head.
	for i := 0; i < QueueCapacity/2; i++ {
		var msg Message
		q.push(&msg)
		q.pop()
	}
	for i := 0; i < QueueCapacity; i++ {
		var msg Message
		msg.Kind = Kind(i)
		if ok := q.push(&msg); !ok {
			t.Fatalf("push() ok = false at slot %d, want true", i)
		}
	}
	for i := 0; i < QueueCapacity; i++ {
		got, ok := q.pop()
		if !ok {
			t.Fatalf("pop() ok = false at slot %d, want true", i)
		}
		if got.Kind != Kind(i) {
			t.Fatalf("pop() kind = %d, want %d", got.Kind, i)
		}
	}
}
