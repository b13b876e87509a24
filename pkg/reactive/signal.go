// Package reactive provides a value container that notifies subscribers on
// every write, and a memo that caches a value derived from it.
package reactive

import (
	"sync"

	"github.com/google/uuid"
)

type subscriber[T any] struct {
	id uuid.UUID
	fn func(T)
}

// Signal holds a value of type T. Every Set or Update replaces the value,
// bumps the version and notifies subscribers with the new value.
type Signal[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64

	subMu sync.RWMutex
	subs  []subscriber[T]
}

func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{value: initial}
}

func (s *Signal[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Snapshot returns the value together with the version it was written at.
func (s *Signal[T]) Snapshot() (T, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.version
}

func (s *Signal[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Signal[T]) Set(value T) {
	s.Store(value)()
}

// Store writes value without notifying anyone. The returned func notifies
// subscribers with value, so a caller can publish related state in between.
func (s *Signal[T]) Store(value T) (notify func()) {
	s.mu.Lock()
	s.value = value
	s.version++
	s.mu.Unlock()

	return func() { s.notify(value) }
}

// Update applies fn to the current value under the write lock and returns
// the result.
func (s *Signal[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	value := fn(s.value)
	s.value = value
	s.version++
	s.mu.Unlock()

	s.notify(value)
	return value
}

// Subscribe registers fn to be called after each write. Callbacks run on
// the writer's goroutine, outside the signal's locks, in subscription order.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := uuid.New()
	s.subMu.Lock()
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Signal[T]) notify(value T) {
	s.subMu.RLock()
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.fn(value)
	}
}
