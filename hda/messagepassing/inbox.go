package messagepassing

import (
	"sync"

	"github.com/gammazero/deque"
)

// Inbox is a worker's mutex-guarded MPSC queue: any worker may Push onto
// it, but only its owner ever Pops. deque.Deque backs it with an
// amortized O(1) ring buffer rather than a linked list (spec.md §9,
// Domain Stack: github.com/gammazero/deque).
type Inbox struct {
	mu  sync.Mutex
	buf deque.Deque[Message]
}

// NewInbox returns an empty Inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

// Push enqueues m. Safe for concurrent use by any number of senders.
func (ib *Inbox) Push(m Message) {
	ib.mu.Lock()
	ib.buf.PushBack(m)
	ib.mu.Unlock()
}

// Pop dequeues the oldest message, reporting false if the inbox is empty.
func (ib *Inbox) Pop() (Message, bool) {
	ib.mu.Lock()
	defer ib.mu.Unlock()
	if ib.buf.Len() == 0 {
		return Message{}, false
	}
	return ib.buf.PopFront(), true
}

// Empty reports whether the inbox currently holds no messages. Used only
// by the inbox's own owner as part of the termination snapshot; a true
// result is a point-in-time observation, not a guarantee against a
// concurrent Push that races it.
func (ib *Inbox) Empty() bool {
	ib.mu.Lock()
	defer ib.mu.Unlock()
	return ib.buf.Len() == 0
}
