package sequence

import "context"

// Cursor iterates a Deferred's commits. Each Next blocks until a commit
// newer than the one it last returned, then yields the latest outcome.
// Commits that land while the consumer is busy are conflated: a slow
// cursor skips straight to the newest, it never replays history.
//
// A Cursor serves one consumer; share the Deferred, not the Cursor.
type Cursor[T any] struct {
	d    *Deferred[T]
	seen uint64
}

// Cursor creates an independent iterator over d. A cursor opened after
// commits have already been applied starts by yielding the latest one.
func (d *Deferred[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{d: d}
}

// Next returns the outcome of the next unseen commit. After the terminal
// commit it keeps returning the zero value and the terminal reason
// without blocking. A value committed before ctx was cancelled still
// wins over the cancellation.
func (c *Cursor[T]) Next(ctx context.Context) (T, error) {
	d := c.d
	d.mu.Lock()
	for d.gen == c.seen && !d.final {
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
	c.seen = d.gen
	v, err := d.val, d.err
	d.mu.Unlock()
	return v, err
}
