package ipc

// QueueCapacity is the number of message slots in each inbox queue.
const QueueCapacity = 16

// msgQueue is a bounded FIFO over a flat slot array.
//
// Index advancement is branch-based rather than modulo, so QueueCapacity
// does not need to be a power of two.
type msgQueue struct {
	head  uint8
	tail  uint8
	size  uint8
	slots [QueueCapacity]Message
}

func (q *msgQueue) push(msg *Message) bool {
	if q.size == QueueCapacity {
		return false
	}
	q.slots[q.tail] = *msg
	if q.tail == QueueCapacity-1 {
		q.tail = 0
	} else {
		q.tail++
	}
	q.size++
	return true
}

func (q *msgQueue) pop() (Message, bool) {
	if q.size == 0 {
		return Message{}, false
	}
	msg := q.slots[q.head]
	if q.head == QueueCapacity-1 {
		q.head = 0
	} else {
		q.head++
	}
	q.size--
	return msg, true
}
