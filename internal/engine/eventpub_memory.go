package engine

import "sync"

// MemoryPublisher keeps the most recent engine events, oldest first. A limit
// of zero or less keeps everything.
type MemoryPublisher struct {
	mu     sync.Mutex
	limit  int
	events []Event
}

func NewMemoryPublisher(limit int) *MemoryPublisher { return &MemoryPublisher{limit: limit} }

func (p *MemoryPublisher) Publish(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	if p.limit > 0 && len(p.events) > p.limit {
		p.events = append(p.events[:0:0], p.events[len(p.events)-p.limit:]...)
	}
}

// Events returns a copy of the retained events.
func (p *MemoryPublisher) Events() []Event {
	return p.filter(func(Event) bool { return true })
}

// Since returns retained events whose Seq is greater than seq.
func (p *MemoryPublisher) Since(seq uint64) []Event {
	return p.filter(func(e Event) bool { return e.Seq > seq })
}

// Named returns retained events called name, e.g. EventModuleIDChanged.
func (p *MemoryPublisher) Named(name string) []Event {
	return p.filter(func(e Event) bool { return e.Name == name })
}

func (p *MemoryPublisher) filter(keep func(Event) bool) []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, 0, len(p.events))
	for _, e := range p.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Fanout publishes every event to each of pubs in order. Nil entries are skipped.
type Fanout []EventPublisher

func (f Fanout) Publish(e Event) {
	for _, p := range f {
		if p != nil {
			p.Publish(e)
		}
	}
}
