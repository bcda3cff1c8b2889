// Package observe provides push-based reactive primitives: a multicast
// Subject, a replay-latest State with equality dedupe, and generated
// CombineN derivations over groups of states.
package observe

// Observer is a consumer-supplied set of callbacks. Any subset may be
// nil; delivery skips missing handlers instead of panicking.
type Observer[T any] struct {
	// Next receives each published value.
	Next func(T)
	// Error receives the terminal failure reason, exactly as the
	// producer raised it.
	Error func(error)
	// Complete is called once on successful termination.
	Complete func()
	// Closed optionally reports that the observer no longer accepts
	// delivery. Subscribe rejects observers that report true.
	Closed func() bool
}

// OnNext wraps a bare value callback in an Observer.
func OnNext[T any](fn func(T)) Observer[T] {
	return Observer[T]{Next: fn}
}

// Emit delivers v to the Next handler if one is set.
func (o Observer[T]) Emit(v T) {
	if o.Next != nil {
		o.Next(v)
	}
}

// EmitError delivers reason to the Error handler if one is set.
func (o Observer[T]) EmitError(reason error) {
	if o.Error != nil {
		o.Error(reason)
	}
}

// EmitComplete delivers the completion signal if a handler is set.
func (o Observer[T]) EmitComplete() {
	if o.Complete != nil {
		o.Complete()
	}
}

func (o Observer[T]) isClosed() bool {
	return o.Closed != nil && o.Closed()
}

// Unsubscribe detaches an observer registered with Subscribe. Calling it
// more than once, or after the source has closed, is harmless.
type Unsubscribe func()

// Observable is any source observers can attach to.
type Observable[T any] interface {
	Subscribe(Observer[T]) (Unsubscribe, error)
}
