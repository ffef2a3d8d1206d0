// Package interaction provides the run-after-interactions queue that defers
// work until no animation or touch interaction is in flight.
//
// The host drives the queue: it marks interactions with Begin/End and calls
// Drain from its frame loop. Deferred callbacks run on the goroutine that
// calls Drain, in the order they were scheduled.
package interaction

import (
	"sync"

	"go.uber.org/atomic"
)

// Handle marks one interaction in flight. End is idempotent.
type Handle struct {
	queue *Queue
	ended atomic.Bool
}

// End finishes the interaction.
func (h *Handle) End() {
	if h == nil || !h.ended.CompareAndSwap(false, true) {
		return
	}
	h.queue.active.Dec()
}

// Queue is a FIFO of deferred callbacks. There is no cancellation and no
// timeout: once scheduled, a callback runs the next time the queue is drained
// while idle.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	active  atomic.Int32
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// RunAfterInteractions schedules fn to run once no interaction is in flight.
// Safe to call from any goroutine.
func (q *Queue) RunAfterInteractions(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Begin marks the start of an interaction. Draining is suspended until every
// handle has ended.
func (q *Queue) Begin() *Handle {
	q.active.Inc()
	return &Handle{queue: q}
}

// Idle reports whether no interaction is in flight.
func (q *Queue) Idle() bool {
	return q.active.Load() == 0
}

// Pending returns the number of callbacks waiting to run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs queued callbacks in order while the queue is idle and returns
// how many ran. Callbacks scheduled by a running callback run in the same
// drain, after those already queued. If a callback begins an interaction the
// drain stops and the rest stay queued.
func (q *Queue) Drain() int {
	ran := 0
	for q.Idle() {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			break
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		fn()
		ran++
	}
	return ran
}
