package sequence

import "github.com/delaneyj/statehouse/observe"

// Watch subscribes a new Deferred to src so pull consumers can iterate a
// push source: every published value resolves the current window, an
// upstream error finishes the sequence with that reason, and completion
// finishes it with ErrFinished. The returned stop detaches from src; the
// sequence itself keeps its last outcome.
//
// Watching a settled replay source records its current value before
// Watch returns.
func Watch[T any](src observe.Observable[T]) (*Deferred[T], observe.Unsubscribe, error) {
	return WatchOn[T](src, nil)
}

// WatchOn is Watch with an explicit commit scheduler.
func WatchOn[T any](src observe.Observable[T], sched Scheduler) (*Deferred[T], observe.Unsubscribe, error) {
	d := NewDeferredOn[T](sched)
	stop, err := src.Subscribe(observe.Observer[T]{
		Next:     d.Resolve,
		Error:    d.Finish,
		Complete: func() { d.Finish(nil) },
	})
	if err != nil {
		return nil, nil, err
	}
	return d, stop, nil
}
