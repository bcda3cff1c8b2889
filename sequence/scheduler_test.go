package sequence_test

import (
	"testing"

	"github.com/delaneyj/statehouse/sequence"
	"github.com/stretchr/testify/assert"
)

func TestQueueFlushRunsInOrder(t *testing.T) {
	queue := sequence.NewQueue()

	var order []int
	queue.Schedule(func() { order = append(order, 1) })
	queue.Schedule(func() { order = append(order, 2) })

	assert.Equal(t, 2, queue.Flush())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 0, queue.Flush())
}

func TestQueueReschedulesLandInNextFlush(t *testing.T) {
	queue := sequence.NewQueue()

	runs := 0
	queue.Schedule(func() {
		runs++
		queue.Schedule(func() { runs++ })
	})

	assert.Equal(t, 1, queue.Flush())
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, queue.Flush())
	assert.Equal(t, 2, runs)
}

func TestDirectRunsInline(t *testing.T) {
	ran := false
	sequence.Direct.Schedule(func() { ran = true })
	assert.True(t, ran)
}

func TestSchedulerFuncGuards(t *testing.T) {
	var nilSched sequence.SchedulerFunc
	assert.NotPanics(t, func() { nilSched.Schedule(func() {}) })

	calls := 0
	sched := sequence.SchedulerFunc(func(fn func()) {
		fn()
		calls++
	})
	sched.Schedule(nil) // dropped before reaching the wrapped func
	assert.Zero(t, calls)
	sched.Schedule(func() {})
	assert.Equal(t, 1, calls)
}
