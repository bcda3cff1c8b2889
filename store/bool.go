package store

import "github.com/delaneyj/statehouse/observe"

// Bool holds a flag. Redundant writes dedupe, so subscribers only hear
// actual flips.
type Bool struct {
	*observe.State[bool]
}

// NewBool creates a Bool settled on initial.
func NewBool(initial bool) *Bool {
	return &Bool{State: observe.NewStateOf(initial)}
}

// Toggle flips the flag and publishes the result.
func (b *Bool) Toggle() error {
	cur, err := b.Value()
	if err != nil {
		return err
	}
	return b.Next(!cur)
}
