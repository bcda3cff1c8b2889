// Package store provides typed convenience stores over observe.State:
// an ordered Array with membership toggling, a Bool flag and a Data
// record with transformer updates. Every mutation publishes a fresh
// value; previous snapshots are never mutated in place.
package store

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/statehouse/observe"
)

// Array holds an ordered slice of comparable items. Mutators read the
// current slice, build a copy and publish it, so values handed to
// subscribers stay stable. Callers must not mutate returned slices.
type Array[T comparable] struct {
	*observe.State[[]T]
}

// NewArray creates an Array settled on a copy of items. With no items it
// starts empty, not loading.
func NewArray[T comparable](items ...T) *Array[T] {
	initial := make([]T, len(items))
	copy(initial, items)
	return &Array[T]{State: observe.NewStateAnyOf(initial)}
}

// Items returns the current slice.
func (a *Array[T]) Items() ([]T, error) {
	return a.Value()
}

// Add appends items in order and publishes the result.
func (a *Array[T]) Add(items ...T) error {
	cur, err := a.Value()
	if err != nil {
		return err
	}
	next := make([]T, 0, len(cur)+len(items))
	next = append(next, cur...)
	next = append(next, items...)
	return a.Next(next)
}

// Delete removes every occurrence of each item and publishes the result.
// Items not present are ignored.
func (a *Array[T]) Delete(items ...T) error {
	cur, err := a.Value()
	if err != nil {
		return err
	}
	drop := mapset.NewSet(items...)
	next := make([]T, 0, len(cur))
	for _, v := range cur {
		if drop.Contains(v) {
			continue
		}
		next = append(next, v)
	}
	return a.Next(next)
}

// Toggle flips membership item by item: a present item is removed
// entirely, an absent one is appended. Items are processed in argument
// order, so toggling the same item twice lands back where it started.
func (a *Array[T]) Toggle(items ...T) error {
	cur, err := a.Value()
	if err != nil {
		return err
	}
	next := make([]T, len(cur))
	copy(next, cur)
	for _, item := range items {
		if contains(next, item) {
			next = removeAll(next, item)
		} else {
			next = append(next, item)
		}
	}
	return a.Next(next)
}

func contains[T comparable](list []T, item T) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

func removeAll[T comparable](list []T, item T) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}
