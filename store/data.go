package store

import (
	"errors"

	"github.com/delaneyj/statehouse/observe"
)

// Data holds a record, typically a struct. Updates go through
// copy-producing transformers so the previous record is never mutated.
type Data[T any] struct {
	*observe.State[T]
}

// NewData creates a loading Data store. Update fails with the
// no-current-value condition until a first record arrives through Set.
func NewData[T any]() *Data[T] {
	return &Data[T]{State: observe.NewStateAny[T]()}
}

// NewDataOf creates a Data store settled on initial.
func NewDataOf[T any](initial T) *Data[T] {
	return &Data[T]{State: observe.NewStateAnyOf(initial)}
}

// Set replaces the record wholesale.
func (d *Data[T]) Set(record T) error {
	return d.Next(record)
}

// Update applies transformers in order to the current record and
// publishes the result. Each transformer receives the output of the one
// before it and must return a new record rather than mutate its input.
// nil transformers are skipped. Update is not atomic across goroutines:
// transformers run outside the store lock.
func (d *Data[T]) Update(fns ...func(T) T) error {
	cur, err := d.Value()
	if err != nil {
		if errors.Is(err, observe.ErrLoading) {
			return &observe.Error{Code: observe.CodeNoValue, Op: "update", Err: observe.ErrNoValue}
		}
		return err
	}
	next := cur
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		next = fn(next)
	}
	return d.Next(next)
}
