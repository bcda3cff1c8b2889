// Package sequence bridges push-based sources to pull-based consumers.
// A Deferred coalesces bursts of outcomes into one commit per scheduler
// window; a Cursor iterates the commits, always skipping ahead to the
// newest.
package sequence

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrFinished is the terminal outcome of a sequence that finished
	// without an explicit reason.
	ErrFinished = errors.New("sequence finished")

	// ErrRejected stands in for a nil reason passed to Reject.
	ErrRejected = errors.New("sequence rejected")
)

// Deferred coalesces producer calls: Resolve and Reject overwrite a
// pending outcome slot, and the slot is published as one commit when the
// scheduler window closes. Whatever was recorded last wins the window.
// Consumers await commits, never individual calls, so a synchronous
// burst reads as a single iteration.
type Deferred[T any] struct {
	mu    sync.Mutex
	sched Scheduler

	pending   bool // commit armed, not yet applied
	finishing bool // terminal outcome recorded, not yet applied
	slotVal   T
	slotErr   error

	gen   uint64 // commits applied so far
	val   T      // latest committed outcome
	err   error
	final bool          // terminal commit applied
	wake  chan struct{} // allocated only while someone waits
}

// NewDeferred creates a Deferred that commits on the Async scheduler.
func NewDeferred[T any]() *Deferred[T] {
	return NewDeferredOn[T](nil)
}

// NewDeferredOn creates a Deferred that commits on sched. A nil sched
// falls back to Async.
func NewDeferredOn[T any](sched Scheduler) *Deferred[T] {
	if sched == nil {
		sched = Async{}
	}
	return &Deferred[T]{sched: sched}
}

// Resolve records v as the outcome of the current window. The last
// record before the commit wins; earlier ones vanish without ever
// reaching a consumer.
func (d *Deferred[T]) Resolve(v T) {
	d.mu.Lock()
	if d.final || d.finishing {
		d.mu.Unlock()
		return
	}
	d.slotVal = v
	d.slotErr = nil
	arm := !d.pending
	d.pending = true
	d.mu.Unlock()
	if arm {
		d.sched.Schedule(d.commit)
	}
}

// Reject records reason as the outcome of the current window. A later
// Resolve in the same window supersedes it, and the other way around.
// A nil reason is normalized to ErrRejected. Rejection is not terminal;
// the next window starts clean.
func (d *Deferred[T]) Reject(reason error) {
	if reason == nil {
		reason = ErrRejected
	}
	d.mu.Lock()
	if d.final || d.finishing {
		d.mu.Unlock()
		return
	}
	var zero T
	d.slotVal = zero
	d.slotErr = reason
	arm := !d.pending
	d.pending = true
	d.mu.Unlock()
	if arm {
		d.sched.Schedule(d.commit)
	}
}

// Finish records the terminal outcome. Once its commit applies, every
// Await and Cursor.Next returns the zero value and reason without
// blocking, forever. A nil reason means ErrFinished. Finish supersedes
// any uncommitted Resolve or Reject in the same window; further producer
// calls are ignored.
func (d *Deferred[T]) Finish(reason error) {
	if reason == nil {
		reason = ErrFinished
	}
	d.mu.Lock()
	if d.final || d.finishing {
		d.mu.Unlock()
		return
	}
	d.finishing = true
	var zero T
	d.slotVal = zero
	d.slotErr = reason
	arm := !d.pending
	d.pending = true
	d.mu.Unlock()
	if arm {
		d.sched.Schedule(d.commit)
	}
}

// commit publishes the last recorded outcome of the window and wakes
// every waiting consumer.
func (d *Deferred[T]) commit() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.val = d.slotVal
	d.err = d.slotErr
	d.final = d.finishing
	d.gen++
	var zero T
	d.slotVal = zero
	d.slotErr = nil
	if d.wake != nil {
		close(d.wake)
		d.wake = nil
	}
	d.mu.Unlock()
}

// wakeLocked hands out the channel the next commit will close.
func (d *Deferred[T]) wakeLocked() chan struct{} {
	if d.wake == nil {
		d.wake = make(chan struct{})
	}
	return d.wake
}

// Await returns the latest committed outcome, blocking only while no
// commit has been applied yet.
func (d *Deferred[T]) Await(ctx context.Context) (T, error) {
	d.mu.Lock()
	for d.gen == 0 {
		wake := d.wakeLocked()
		d.mu.Unlock()
		select {
		case <-wake:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
		d.mu.Lock()
	}
	v, err := d.val, d.err
	d.mu.Unlock()
	return v, err
}

// Settled reports whether any commit has been applied.
func (d *Deferred[T]) Settled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen > 0
}

// Finished reports whether the terminal commit has been applied.
func (d *Deferred[T]) Finished() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.final
}
