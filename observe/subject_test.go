package observe_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delaneyj/statehouse/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectDeliversInRegistrationOrder(t *testing.T) {
	s := observe.NewSubject[int]()

	var order []string
	_, err := s.Subscribe(observe.OnNext(func(v int) {
		order = append(order, fmt.Sprintf("first:%d", v))
	}))
	require.NoError(t, err)
	_, err = s.Subscribe(observe.OnNext(func(v int) {
		order = append(order, fmt.Sprintf("second:%d", v))
	}))
	require.NoError(t, err)

	require.NoError(t, s.Next(1))
	require.NoError(t, s.Next(2))

	assert.Equal(t, []string{"first:1", "second:1", "first:2", "second:2"}, order)
}

func TestZeroValueSubjectIsOpen(t *testing.T) {
	var s observe.Subject[int]

	got := 0
	_, err := s.Subscribe(observe.OnNext(func(v int) { got = v }))
	require.NoError(t, err)

	require.NoError(t, s.Next(42))
	assert.Equal(t, 42, got)
}

func TestPartialObserversSkipMissingHandlers(t *testing.T) {
	s := observe.NewSubject[int]()

	nexts := 0
	_, err := s.Subscribe(observe.OnNext(func(int) { nexts++ }))
	require.NoError(t, err)
	_, err = s.Subscribe(observe.Observer[int]{}) // no handlers at all
	require.NoError(t, err)

	require.NoError(t, s.Next(1))
	require.NoError(t, s.Complete())
	assert.Equal(t, 1, nexts)
}

func TestSubjectCompleteClosesForGood(t *testing.T) {
	s := observe.NewSubject[string]()

	completions := 0
	_, err := s.Subscribe(observe.Observer[string]{Complete: func() { completions++ }})
	require.NoError(t, err)

	require.NoError(t, s.Complete())
	assert.Equal(t, 1, completions)
	assert.True(t, s.Closed())
	assert.Zero(t, s.ObserverCount())

	assert.ErrorIs(t, s.Next("x"), observe.ErrClosed)
	assert.ErrorIs(t, s.Complete(), observe.ErrClosed)
	assert.ErrorIs(t, s.Error(errors.New("boom")), observe.ErrClosed)

	_, err = s.Subscribe(observe.OnNext(func(string) {}))
	assert.ErrorIs(t, err, observe.ErrClosed)
	assert.Equal(t, observe.CodeClosed, observe.CodeOf(err))
}

func TestSubjectErrorReachesEveryObserverVerbatim(t *testing.T) {
	s := observe.NewSubject[int]()
	boom := errors.New("boom")

	var got []error
	for i := 0; i < 3; i++ {
		_, err := s.Subscribe(observe.Observer[int]{Error: func(reason error) {
			got = append(got, reason)
		}})
		require.NoError(t, err)
	}

	require.NoError(t, s.Error(boom))
	require.Len(t, got, 3)
	for _, reason := range got {
		assert.Same(t, boom, reason)
	}
	assert.True(t, s.Closed())
}

func TestSubjectNilReasonBecomesErrFailed(t *testing.T) {
	s := observe.NewSubject[int]()

	var got error
	_, err := s.Subscribe(observe.Observer[int]{Error: func(reason error) { got = reason }})
	require.NoError(t, err)

	require.NoError(t, s.Error(nil))
	assert.ErrorIs(t, got, observe.ErrFailed)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s := observe.NewSubject[int]()

	calls := 0
	stop, err := s.Subscribe(observe.OnNext(func(int) { calls++ }))
	require.NoError(t, err)
	other := 0
	_, err = s.Subscribe(observe.OnNext(func(int) { other++ }))
	require.NoError(t, err)

	require.NoError(t, s.Next(1))
	stop()
	stop() // second call is a no-op
	require.NoError(t, s.Next(2))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
	assert.Equal(t, 1, s.ObserverCount())

	require.NoError(t, s.Complete())
	stop() // still harmless after close
}

func TestSubscribeRejectsClosedObserver(t *testing.T) {
	s := observe.NewSubject[int]()

	_, err := s.Subscribe(observe.Observer[int]{
		Next:   func(int) {},
		Closed: func() bool { return true },
	})
	assert.ErrorIs(t, err, observe.ErrObserverClosed)
	assert.Equal(t, observe.CodeObserverClosed, observe.CodeOf(err))
	assert.Zero(t, s.ObserverCount())
}

func TestSubscribeDuringDispatchMissesThePassInFlight(t *testing.T) {
	s := observe.NewSubject[int]()

	lateCalls := 0
	_, err := s.Subscribe(observe.OnNext(func(v int) {
		_, serr := s.Subscribe(observe.OnNext(func(int) { lateCalls++ }))
		require.NoError(t, serr)
	}))
	require.NoError(t, err)

	require.NoError(t, s.Next(1))
	assert.Zero(t, lateCalls) // the newcomer was not in the snapshot
	assert.Equal(t, 2, s.ObserverCount())

	require.NoError(t, s.Next(2))
	assert.Equal(t, 1, lateCalls)
	assert.Equal(t, 3, s.ObserverCount())
}

func TestUnsubscribeDuringDispatchIsSafe(t *testing.T) {
	s := observe.NewSubject[int]()

	var stopSelf observe.Unsubscribe
	selfCalls := 0
	stopSelf, err := s.Subscribe(observe.OnNext(func(int) {
		selfCalls++
		stopSelf()
	}))
	require.NoError(t, err)

	require.NoError(t, s.Next(1))
	require.NoError(t, s.Next(2))

	assert.Equal(t, 1, selfCalls)
	assert.Zero(t, s.ObserverCount())
}

func TestAsObserverForwards(t *testing.T) {
	s := observe.NewSubject[int]()

	var got []int
	_, err := s.Subscribe(observe.OnNext(func(v int) { got = append(got, v) }))
	require.NoError(t, err)

	o := s.AsObserver()
	o.Emit(3)
	assert.Equal(t, []int{3}, got)
	assert.False(t, o.Closed())

	o.EmitComplete()
	assert.True(t, s.Closed())
	assert.True(t, o.Closed())
}

func TestConnectForwardsSignals(t *testing.T) {
	src := observe.NewSubject[int]()
	dst := observe.NewSubject[int]()
	require.NoError(t, dst.Connect(src))

	var got []int
	_, err := dst.Subscribe(observe.OnNext(func(v int) { got = append(got, v) }))
	require.NoError(t, err)

	require.NoError(t, src.Next(7))
	require.NoError(t, src.Next(8))
	assert.Equal(t, []int{7, 8}, got)
	assert.Equal(t, 1, src.ObserverCount())
}

func TestConnectFanInReleasesEveryUpstream(t *testing.T) {
	left := observe.NewSubject[string]()
	right := observe.NewSubject[string]()
	sink := observe.NewSubject[string]()
	require.NoError(t, sink.Connect(left))
	require.NoError(t, sink.Connect(right))

	var got []string
	_, err := sink.Subscribe(observe.OnNext(func(v string) { got = append(got, v) }))
	require.NoError(t, err)

	require.NoError(t, left.Next("l"))
	require.NoError(t, right.Next("r"))
	assert.Equal(t, []string{"l", "r"}, got)

	require.NoError(t, sink.Complete())
	assert.Zero(t, left.ObserverCount())
	assert.Zero(t, right.ObserverCount())
}

// countingSource records how often it was subscribed and how often the
// handed out stop ran.
type countingSource[T any] struct {
	subscribes int
	stops      int
}

func (c *countingSource[T]) Subscribe(o observe.Observer[T]) (observe.Unsubscribe, error) {
	c.subscribes++
	return func() { c.stops++ }, nil
}

func TestConnectStopRunsExactlyOnceOnClose(t *testing.T) {
	src := &countingSource[int]{}
	dst := observe.NewSubject[int]()

	require.NoError(t, dst.Connect(src))
	require.Equal(t, 1, src.subscribes)
	require.Zero(t, src.stops)

	require.NoError(t, dst.Complete())
	assert.Equal(t, 1, src.stops)
}

func TestConnectUpstreamCompleteClosesDownstream(t *testing.T) {
	src := observe.NewSubject[int]()
	dst := observe.NewSubject[int]()
	require.NoError(t, dst.Connect(src))

	completions := 0
	_, err := dst.Subscribe(observe.Observer[int]{Complete: func() { completions++ }})
	require.NoError(t, err)

	require.NoError(t, src.Complete())
	assert.Equal(t, 1, completions)
	assert.True(t, dst.Closed())
}

func TestConnectUpstreamErrorPropagatesVerbatim(t *testing.T) {
	boom := errors.New("boom")
	src := observe.NewSubject[int]()
	dst := observe.NewSubject[int]()
	require.NoError(t, dst.Connect(src))

	var got error
	_, err := dst.Subscribe(observe.Observer[int]{Error: func(reason error) { got = reason }})
	require.NoError(t, err)

	require.NoError(t, src.Error(boom))
	assert.Same(t, boom, got)
	assert.True(t, dst.Closed())
}

func TestConnectOnClosedSubjectFails(t *testing.T) {
	src := observe.NewSubject[int]()
	dst := observe.NewSubject[int]()
	require.NoError(t, dst.Complete())

	err := dst.Connect(src)
	assert.ErrorIs(t, err, observe.ErrClosed)
	assert.Zero(t, src.ObserverCount())
}
