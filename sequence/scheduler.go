package sequence

import "sync"

// Scheduler decides when a pending commit runs. It marks the boundary
// between a burst of producer calls and the single publication the burst
// collapses into.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a plain function into a Scheduler.
type SchedulerFunc func(func())

// Schedule dispatches fn through the wrapped function.
func (f SchedulerFunc) Schedule(fn func()) {
	if f == nil || fn == nil {
		return
	}
	f(fn)
}

// Direct runs commits inline: every producer call publishes on its own,
// with no coalescing window at all.
var Direct Scheduler = SchedulerFunc(func(fn func()) {
	fn()
})

// Async runs commits on their own goroutine. Synchronous bursts of
// producer calls collapse into one publication because only the first
// call of a window arms a commit.
type Async struct{}

// Schedule dispatches fn on a new goroutine.
func (Async) Schedule(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}

// Queue holds commits until Flush, handing tests and frame loops an
// explicit window boundary. The zero value is ready for use.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule enqueues fn for the next Flush.
func (q *Queue) Schedule(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Flush runs the queued commits in order and reports how many ran.
// Commits scheduled while flushing land in the next Flush.
func (q *Queue) Flush() int {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}
