package observe

import "sync"

// Subscriptions collects stop functions so composite consumers, a widget
// or a derived view, can tear everything down in one call. The zero
// value is ready for use.
type Subscriptions struct {
	mu    sync.Mutex
	stops []Unsubscribe
}

// Add tracks a stop function. nil stops are ignored.
func (s *Subscriptions) Add(stop Unsubscribe) {
	if stop == nil {
		return
	}
	s.mu.Lock()
	s.stops = append(s.stops, stop)
	s.mu.Unlock()
}

// Len reports how many stops are tracked.
func (s *Subscriptions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stops)
}

// Clear runs every tracked stop once, in registration order, and empties
// the bag. The bag can be reused afterwards.
func (s *Subscriptions) Clear() {
	s.mu.Lock()
	stops := s.stops
	s.stops = nil
	s.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}

// Collect subscribes o to src and tracks the resulting stop in subs.
func Collect[T any](subs *Subscriptions, src Observable[T], o Observer[T]) error {
	stop, err := src.Subscribe(o)
	if err != nil {
		return err
	}
	subs.Add(stop)
	return nil
}
