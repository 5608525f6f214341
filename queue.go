// ABOUTME: Unbounded FIFO message queue feeding the dispatch loop
// ABOUTME: Safe for any number of producers; drained by a single consumer

package snaptui

import "sync"

// queue is the inbound message queue. Commands, subscriptions, and
// external senders push from arbitrary goroutines; the dispatch loop
// drains it between input reads. Arrival order is the only ordering
// guarantee.
type queue struct {
	mu    sync.Mutex
	items []Msg
}

// push appends one message.
func (q *queue) push(msg Msg) {
	q.mu.Lock()
	q.items = append(q.items, msg)
	q.mu.Unlock()
}

// pushAll appends messages as one unit, with nothing interleaved between
// them.
func (q *queue) pushAll(msgs []Msg) {
	q.mu.Lock()
	q.items = append(q.items, msgs...)
	q.mu.Unlock()
}

// tryPop removes and returns the oldest message, or (nil, false) when the
// queue is empty.
func (q *queue) tryPop() (Msg, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}
	msg := q.items[0]
	q.items = q.items[1:]
	return msg, true
}

// len reports the number of queued messages.
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
