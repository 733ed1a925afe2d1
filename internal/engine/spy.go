package engine

import "sync"

// Spy records every emission of a signal it is connected to.
type Spy[T any] struct {
	mu         sync.Mutex
	values     []T
	disconnect func()
}

// SpyOn connects a new Spy to sig.
func SpyOn[T any](sig *Signal[T]) *Spy[T] {
	s := &Spy[T]{}
	s.disconnect = sig.Connect(s.record)
	return s
}

func (s *Spy[T]) record(v T) {
	s.mu.Lock()
	s.values = append(s.values, v)
	s.mu.Unlock()
}

// Count returns how many notifications the spy has received.
func (s *Spy[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Value returns the argument of the i-th notification, or the zero value if
// there is none.
func (s *Spy[T]) Value(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.values) {
		var zero T
		return zero
	}
	return s.values[i]
}

// Close disconnects the spy. Recorded values stay readable.
func (s *Spy[T]) Close() { s.disconnect() }
