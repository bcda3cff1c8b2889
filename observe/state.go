package observe

// State is a Subject that retains its latest settled condition and
// replays it synchronously to every new subscriber: the recorded
// failure, the completion signal, or the cached value. While no value
// has arrived yet the State is loading and reads fail with the loading
// condition.
type State[T any] struct {
	Subject[T]
	equal    EqualFunc[T]
	hasValue bool
	value    T
	failure  error
	done     bool
}

// EqualFunc reports whether two values are interchangeable. States drop
// a Next whose value is equal to the cached one without notifying
// anyone.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares with ==.
func EqualComparable[T comparable](a, b T) bool { return a == b }

// NewState creates a loading State that dedupes with ==.
func NewState[T comparable]() *State[T] {
	return &State[T]{equal: EqualComparable[T]}
}

// NewStateOf creates a State already settled on initial, deduping
// with ==.
func NewStateOf[T comparable](initial T) *State[T] {
	s := NewState[T]()
	s.hasValue = true
	s.value = initial
	return s
}

// NewStateAny creates a loading State without an equality check: every
// Next counts as a change. Use SetEqualFunc to opt back in to dedupe.
func NewStateAny[T any]() *State[T] {
	return &State[T]{}
}

// NewStateAnyOf creates a State settled on initial without an equality
// check.
func NewStateAnyOf[T any](initial T) *State[T] {
	s := NewStateAny[T]()
	s.hasValue = true
	s.value = initial
	return s
}

// SetEqualFunc replaces the dedupe check. A nil eq disables dedupe.
func (s *State[T]) SetEqualFunc(eq EqualFunc[T]) {
	s.mu.Lock()
	s.equal = eq
	s.mu.Unlock()
}

// Next caches v, then fans out. A value equal to the cached one is
// dropped without notifying anyone. The cache is updated before
// dispatch, so an observer subscribing from inside a handler sees v
// immediately.
func (s *State[T]) Next(v T) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return newErr("next", CodeClosed, ErrClosed)
	}
	if s.hasValue && s.equal != nil && s.equal(s.value, v) {
		s.mu.Unlock()
		return nil
	}
	s.hasValue = true
	s.value = v
	snapshot := s.copyObserversLocked()
	s.mu.Unlock()

	for _, o := range snapshot {
		o.Emit(v)
	}
	return nil
}

// Error closes the State. The reason is retained and replayed verbatim
// to any later subscriber. A nil reason is normalized to ErrFailed.
func (s *State[T]) Error(reason error) error {
	if reason == nil {
		reason = ErrFailed
	}
	snapshot, links, err := s.terminate("error", func() { s.failure = reason })
	if err != nil {
		return err
	}
	for _, o := range snapshot {
		o.EmitError(reason)
	}
	releaseAll(links)
	return nil
}

// Complete closes the State. Later subscribers replay the completion
// signal; the cached value, if any, stays readable through Value.
func (s *State[T]) Complete() error {
	snapshot, links, err := s.terminate("complete", func() { s.done = true })
	if err != nil {
		return err
	}
	for _, o := range snapshot {
		o.EmitComplete()
	}
	releaseAll(links)
	return nil
}

// Subscribe registers o, first catching it up synchronously: a settled
// State replays its terminal condition or cached value into o before
// Subscribe returns. Subscribing to a closed State succeeds with that
// terminal replay alone and hands back a no-op stop.
func (s *State[T]) Subscribe(o Observer[T]) (Unsubscribe, error) {
	if o.isClosed() {
		return nil, newErr("subscribe", CodeObserverClosed, ErrObserverClosed)
	}
	s.mu.Lock()
	if s.closed {
		failure, done := s.failure, s.done
		s.mu.Unlock()
		if done {
			o.EmitComplete()
		} else {
			o.EmitError(failure)
		}
		return func() {}, nil
	}
	id := s.register(o)
	replay, hasValue := s.value, s.hasValue
	s.mu.Unlock()

	if hasValue {
		o.Emit(replay)
	}
	return s.stopFunc(id), nil
}

// Value returns the cached value. While loading it fails with the
// loading condition; once the State has errored, the recorded reason is
// surfaced instead, no matter what was cached before; after Complete
// with no value ever seen it fails with the closed condition.
func (s *State[T]) Value() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	switch {
	case s.failure != nil:
		return zero, s.failure
	case s.hasValue:
		return s.value, nil
	case s.done:
		return zero, newErr("value", CodeClosed, ErrClosed)
	default:
		return zero, newErr("value", CodeLoading, ErrLoading)
	}
}

// MustValue is Value for read paths that treat an unsettled or failed
// state as a programming error. It panics instead of returning one.
func (s *State[T]) MustValue() T {
	v, err := s.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// AsObserver returns the forwarding view of the State. Unlike the
// Subject form, forwarded values go through the cache and dedupe.
func (s *State[T]) AsObserver() Observer[T] {
	return Observer[T]{
		Next:     func(v T) { _ = s.Next(v) },
		Error:    func(reason error) { _ = s.Error(reason) },
		Complete: func() { _ = s.Complete() },
		Closed:   s.Closed,
	}
}

// Connect subscribes the State to an upstream source. A source with
// replay settles the State before Connect returns.
func (s *State[T]) Connect(src Observable[T]) error {
	return s.connect(src, s.AsObserver())
}
