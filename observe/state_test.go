package observe_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/statehouse/observe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateReplaysLatestToNewSubscribers(t *testing.T) {
	s := observe.NewState[int]()
	require.NoError(t, s.Next(1))

	var got []int
	_, err := s.Subscribe(observe.OnNext(func(v int) { got = append(got, v) }))
	require.NoError(t, err)
	// caught up synchronously, before Subscribe returned
	assert.Equal(t, []int{1}, got)

	require.NoError(t, s.Next(2))
	assert.Equal(t, []int{1, 2}, got)
}

func TestStateStartsLoading(t *testing.T) {
	s := observe.NewState[string]()

	_, err := s.Value()
	assert.ErrorIs(t, err, observe.ErrLoading)
	assert.Equal(t, observe.CodeLoading, observe.CodeOf(err))

	calls := 0
	_, err = s.Subscribe(observe.OnNext(func(string) { calls++ }))
	require.NoError(t, err)
	assert.Zero(t, calls) // nothing to replay yet
}

func TestStateDropsEqualValues(t *testing.T) {
	s := observe.NewStateOf("a")

	var got []string
	_, err := s.Subscribe(observe.OnNext(func(v string) { got = append(got, v) }))
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, got)

	require.NoError(t, s.Next("a")) // dropped
	require.NoError(t, s.Next("b"))
	require.NoError(t, s.Next("b")) // dropped
	assert.Equal(t, []string{"a", "b"}, got)

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestStateAnyDispatchesEveryValue(t *testing.T) {
	s := observe.NewStateAny[[]int]()

	calls := 0
	_, err := s.Subscribe(observe.OnNext(func([]int) { calls++ }))
	require.NoError(t, err)

	require.NoError(t, s.Next([]int{1}))
	require.NoError(t, s.Next([]int{1}))
	assert.Equal(t, 2, calls)
}

func TestSetEqualFuncOptsBackIntoDedupe(t *testing.T) {
	s := observe.NewStateAny[[]int]()
	s.SetEqualFunc(func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})

	calls := 0
	_, err := s.Subscribe(observe.OnNext(func([]int) { calls++ }))
	require.NoError(t, err)

	require.NoError(t, s.Next([]int{1, 2}))
	require.NoError(t, s.Next([]int{1, 2}))
	assert.Equal(t, 1, calls)

	require.NoError(t, s.Next([]int{1, 3}))
	assert.Equal(t, 2, calls)
}

func TestStateErrorIsStickyAndVerbatim(t *testing.T) {
	boom := errors.New("boom")
	s := observe.NewStateOf(1)
	require.NoError(t, s.Error(boom))

	// the failure outranks the cached value
	_, err := s.Value()
	assert.Same(t, boom, err)

	// late subscribers get the terminal replay and a no-op stop
	var got error
	stop, err := s.Subscribe(observe.Observer[int]{Error: func(reason error) { got = reason }})
	require.NoError(t, err)
	assert.Same(t, boom, got)
	stop()

	assert.ErrorIs(t, s.Next(2), observe.ErrClosed)
}

func TestStateNilReasonBecomesErrFailed(t *testing.T) {
	s := observe.NewState[int]()
	require.NoError(t, s.Error(nil))

	_, err := s.Value()
	assert.ErrorIs(t, err, observe.ErrFailed)
}

func TestStateCompleteKeepsLastValueReadable(t *testing.T) {
	s := observe.NewStateOf(9)
	require.NoError(t, s.Complete())

	completions := 0
	values := 0
	_, err := s.Subscribe(observe.Observer[int]{
		Next:     func(int) { values++ },
		Complete: func() { completions++ },
	})
	require.NoError(t, err)
	assert.Equal(t, 1, completions)
	assert.Zero(t, values) // terminal replay only

	v, err := s.Value()
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	assert.ErrorIs(t, s.Next(10), observe.ErrClosed)
}

func TestStateCompletedWithoutValue(t *testing.T) {
	s := observe.NewState[int]()
	require.NoError(t, s.Complete())

	_, err := s.Value()
	assert.ErrorIs(t, err, observe.ErrClosed)
	assert.Equal(t, observe.CodeClosed, observe.CodeOf(err))
}

func TestStateCacheIsVisibleDuringDispatch(t *testing.T) {
	s := observe.NewState[int]()

	var nested []int
	_, err := s.Subscribe(observe.OnNext(func(v int) {
		if v == 5 {
			_, serr := s.Subscribe(observe.OnNext(func(nv int) { nested = append(nested, nv) }))
			require.NoError(t, serr)
		}
	}))
	require.NoError(t, err)

	require.NoError(t, s.Next(5))
	// the nested subscriber caught up via replay, not the pass in flight
	assert.Equal(t, []int{5}, nested)

	require.NoError(t, s.Next(6))
	assert.Equal(t, []int{5, 6}, nested)
}

func TestMustValuePanicsWhileLoading(t *testing.T) {
	s := observe.NewState[int]()
	assert.Panics(t, func() { s.MustValue() })

	require.NoError(t, s.Next(3))
	assert.NotPanics(t, func() {
		assert.Equal(t, 3, s.MustValue())
	})
}

func TestStateConnectReplaysUpstream(t *testing.T) {
	src := observe.NewStateOf(1)
	mirror := observe.NewState[int]()
	require.NoError(t, mirror.Connect(src))

	// settled by the replay during Connect
	v, err := mirror.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, src.Next(2))
	assert.Equal(t, 2, mirror.MustValue())

	require.NoError(t, src.Complete())
	assert.True(t, mirror.Closed())
	assert.Equal(t, 2, mirror.MustValue())
}

func TestStateConnectDedupesForwardedValues(t *testing.T) {
	src := observe.NewSubject[int]()
	mirror := observe.NewState[int]()
	require.NoError(t, mirror.Connect(src))

	calls := 0
	_, err := mirror.Subscribe(observe.OnNext(func(int) { calls++ }))
	require.NoError(t, err)

	require.NoError(t, src.Next(1))
	require.NoError(t, src.Next(1))
	require.NoError(t, src.Next(2))
	assert.Equal(t, 2, calls)
}

func TestStateConnectToFailedSourceClosesDownstream(t *testing.T) {
	boom := errors.New("boom")
	src := observe.NewState[int]()
	require.NoError(t, src.Error(boom))

	mirror := observe.NewState[int]()
	require.NoError(t, mirror.Connect(src))

	assert.True(t, mirror.Closed())
	_, err := mirror.Value()
	assert.Same(t, boom, err)
}
