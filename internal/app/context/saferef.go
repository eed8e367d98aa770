package appctx

import "sync"

// SafeRef is a value behind a read/write lock. The registration service
// keeps one per form session so concurrent edits of a session serialize.
type SafeRef[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewRef returns a SafeRef holding v.
func NewRef[T any](v T) *SafeRef[T] {
	return &SafeRef[T]{v: v}
}

// Get copies the value out under the read lock.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	v := r.v
	r.mu.RUnlock()
	return v
}

// Update edits the value in place under the write lock.
func (r *SafeRef[T]) Update(fn func(*T)) {
	_ = r.UpdateErr(func(v *T) error {
		fn(v)
		return nil
	})
}

// UpdateErr is Update for edits that can fail. Whatever fn left in place
// stays, error or not.
func (r *SafeRef[T]) UpdateErr(fn func(*T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(&r.v)
}
