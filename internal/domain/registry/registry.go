// Package registry provides the id-keyed collections that own patients and
// appointments. Ids are 0-based, assigned in increasing order and never
// reused while a higher id exists.
package registry

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotFound    = errors.New("no record with that id")
	ErrDuplicateID = errors.New("duplicate id")
	ErrInvalidID   = errors.New("id must not be negative")
)

// Entry pairs a record with its id.
type Entry[T any] struct {
	ID    int
	Value T
}

// Registry is an in-memory collection of records keyed by id.
type Registry[T any] struct {
	items  map[int]T
	nextID int
}

func New[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[int]T)}
}

// Add stores v under the next free id and returns that id.
func (r *Registry[T]) Add(v T) int {
	id := r.nextID
	r.items[id] = v
	r.nextID++
	return id
}

// Put stores v under an explicit id, as done when loading persisted data.
func (r *Registry[T]) Put(id int, v T) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}
	if _, ok := r.items[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	r.items[id] = v
	if id >= r.nextID {
		r.nextID = id + 1
	}
	return nil
}

// Set replaces the record stored under id.
func (r *Registry[T]) Set(id int, v T) error {
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	r.items[id] = v
	return nil
}

func (r *Registry[T]) Get(id int) (T, bool) {
	v, ok := r.items[id]
	return v, ok
}

func (r *Registry[T]) Contains(id int) bool {
	_, ok := r.items[id]
	return ok
}

// Remove deletes and returns the record stored under id.
func (r *Registry[T]) Remove(id int) (T, error) {
	v, ok := r.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	delete(r.items, id)
	return v, nil
}

func (r *Registry[T]) Len() int { return len(r.items) }

// NextID is the id the next Add will use.
func (r *Registry[T]) NextID() int { return r.nextID }

// IDs returns every id in ascending order.
func (r *Registry[T]) IDs() []int {
	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entries returns every record in id order.
func (r *Registry[T]) Entries() []Entry[T] {
	return r.Filter(nil)
}

// Filter returns, in id order, the records that satisfy pred. A nil pred
// matches everything.
func (r *Registry[T]) Filter(pred func(T) bool) []Entry[T] {
	out := make([]Entry[T], 0, len(r.items))
	for _, id := range r.IDs() {
		v := r.items[id]
		if pred == nil || pred(v) {
			out = append(out, Entry[T]{ID: id, Value: v})
		}
	}
	return out
}

// Equal compares ids and records using eq.
func (r *Registry[T]) Equal(o *Registry[T], eq func(a, b T) bool) bool {
	if r.Len() != o.Len() {
		return false
	}
	for id, v := range r.items {
		ov, ok := o.items[id]
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}
