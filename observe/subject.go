package observe

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// Subject is a multicast hub: values pushed with Next fan out
// synchronously to every registered observer. A Subject closes exactly
// once, on Error or Complete; every call after that fails with the
// closed condition. The zero value is an open Subject ready for use.
type Subject[T any] struct {
	mu     sync.Mutex
	closed bool
	nextID int
	subs   []registration[T]
	links  mapset.Set[*upstream]
}

type registration[T any] struct {
	id  int
	obs Observer[T]
}

// upstream is one Connect link. stop runs exactly once, on whichever
// side tears the link down first.
type upstream struct {
	once sync.Once
	stop Unsubscribe
}

func (u *upstream) release() {
	u.once.Do(u.stop)
}

// NewSubject creates an open Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Subscribe registers o and returns an idempotent stop function. It
// fails when the Subject is closed, or when o itself reports closed.
func (s *Subject[T]) Subscribe(o Observer[T]) (Unsubscribe, error) {
	if o.isClosed() {
		return nil, newErr("subscribe", CodeObserverClosed, ErrObserverClosed)
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, newErr("subscribe", CodeClosed, ErrClosed)
	}
	id := s.register(o)
	s.mu.Unlock()
	return s.stopFunc(id), nil
}

func (s *Subject[T]) register(o Observer[T]) int {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, registration[T]{id: id, obs: o})
	return id
}

func (s *Subject[T]) stopFunc(id int) Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.deregister(id)
			s.mu.Unlock()
		})
	}
}

func (s *Subject[T]) deregister(id int) {
	for i, r := range s.subs {
		if r.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// copyObserversLocked snapshots the registry so dispatch never holds the
// lock and observers added or removed mid-dispatch do not disturb the
// pass in flight.
func (s *Subject[T]) copyObserversLocked() []Observer[T] {
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]Observer[T], len(s.subs))
	for i, r := range s.subs {
		out[i] = r.obs
	}
	return out
}

// Next synchronously delivers v, in registration order, to every
// observer registered at the time of the call.
func (s *Subject[T]) Next(v T) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return newErr("next", CodeClosed, ErrClosed)
	}
	snapshot := s.copyObserversLocked()
	s.mu.Unlock()

	for _, o := range snapshot {
		o.Emit(v)
	}
	return nil
}

// Error closes the Subject, delivering reason verbatim to every
// observer, then drops all registrations and releases upstream links.
// A nil reason is normalized to ErrFailed.
func (s *Subject[T]) Error(reason error) error {
	if reason == nil {
		reason = ErrFailed
	}
	snapshot, links, err := s.terminate("error", nil)
	if err != nil {
		return err
	}
	for _, o := range snapshot {
		o.EmitError(reason)
	}
	releaseAll(links)
	return nil
}

// Complete closes the Subject with a completion signal.
func (s *Subject[T]) Complete() error {
	snapshot, links, err := s.terminate("complete", nil)
	if err != nil {
		return err
	}
	for _, o := range snapshot {
		o.EmitComplete()
	}
	releaseAll(links)
	return nil
}

// terminate flips the closed flag and drains every registration and
// upstream link. prep, when set, runs under the lock in the same
// critical section, so subclasses can record their settled condition
// atomically with the close. Delivery happens at the caller; the lock is
// never held across observer handlers.
func (s *Subject[T]) terminate(op string, prep func()) ([]Observer[T], []*upstream, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, nil, newErr(op, CodeClosed, ErrClosed)
	}
	s.closed = true
	if prep != nil {
		prep()
	}
	snapshot := s.copyObserversLocked()
	s.subs = nil
	var links []*upstream
	if s.links != nil {
		links = s.links.ToSlice()
		s.links.Clear()
	}
	s.mu.Unlock()
	return snapshot, links, nil
}

func releaseAll(links []*upstream) {
	for _, l := range links {
		l.release()
	}
}

// Closed reports whether the Subject has errored or completed.
func (s *Subject[T]) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// ObserverCount reports how many observers are currently registered.
// It drops to zero once the Subject closes.
func (s *Subject[T]) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// AsObserver returns the forwarding view of the Subject, suitable for
// subscribing it to another source by hand.
func (s *Subject[T]) AsObserver() Observer[T] {
	return Observer[T]{
		Next:     func(v T) { _ = s.Next(v) },
		Error:    func(reason error) { _ = s.Error(reason) },
		Complete: func() { _ = s.Complete() },
		Closed:   s.Closed,
	}
}

// Connect subscribes the Subject to an upstream source, forwarding every
// signal. The link is released when either side closes; an upstream
// error or completion therefore closes this Subject too.
func (s *Subject[T]) Connect(src Observable[T]) error {
	return s.connect(src, s.AsObserver())
}

func (s *Subject[T]) connect(src Observable[T], fwd Observer[T]) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return newErr("connect", CodeClosed, ErrClosed)
	}
	s.mu.Unlock()

	// Subscribe without the lock held: sources with replay dispatch into
	// fwd synchronously, which locks this Subject again.
	stop, err := src.Subscribe(fwd)
	if err != nil {
		return err
	}
	link := &upstream{stop: stop}

	s.mu.Lock()
	if s.closed {
		// Closed while attaching, possibly by the source's own replay.
		s.mu.Unlock()
		link.release()
		return nil
	}
	if s.links == nil {
		s.links = mapset.NewSet[*upstream]()
	}
	s.links.Add(link)
	s.mu.Unlock()
	return nil
}
