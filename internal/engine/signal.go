package engine

import "sync"

// Signal is a list of slots invoked synchronously, in connection order, each
// time the signal is emitted. The zero value is ready to use.
type Signal[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	slots  []slot[T]
}

type slot[T any] struct {
	id uint64
	fn func(T)
}

// Connect registers fn and returns a func that disconnects it. Calling the
// returned func more than once is harmless.
func (s *Signal[T]) Connect(fn func(T)) (disconnect func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.disconnect(id) })
	}
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

func (s *Signal[T]) disconnect(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

func (s *Signal[T]) emit(v T) {
	s.mu.RLock()
	slots := make([]slot[T], len(s.slots))
	copy(slots, s.slots)
	s.mu.RUnlock()
	for _, sl := range slots {
		sl.fn(v)
	}
}
