package engine

import "sync"

var _ EventPublisher = (*Bus)(nil)

// Bus fans published events out to subscriber channels. A subscriber whose
// channel is full misses the event.
type Bus struct {
	mu       sync.RWMutex
	channels []chan Event
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.channels = append(b.channels, ch)
}

func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, c := range b.channels {
		if c == ch {
			b.channels = append(b.channels[:i], b.channels[i+1:]...)
			return
		}
	}
}

func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.channels)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.channels {
		select {
		case ch <- e:
		default:
		}
	}
}
