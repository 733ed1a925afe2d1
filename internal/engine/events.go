package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"moduled/pkg/types"
)

// Event names published by Forward.
const (
	EventModuleChanged   = "module_changed"
	EventModuleIDChanged = "module_id_changed"
)

// Event represents an engine notification.
type Event struct {
	ID       string
	Seq      uint64
	Name     string
	ModuleID types.ModuleID
	Time     time.Time
}

// Message converts the event to its wire form.
func (e Event) Message() types.EventMessage {
	return types.EventMessage{
		ID:         e.ID,
		Seq:        e.Seq,
		Name:       e.Name,
		ModuleID:   e.ModuleID,
		TimeUnixMs: e.Time.UnixMilli(),
	}
}

// EventPublisher receives events from the engine. Implementations should be
// lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// Forward connects both engine signals to pub and returns a func that
// disconnects them. Events are stamped with a random id and a sequence
// number that starts at 1 and increases by one per event.
func Forward(e *Engine, pub EventPublisher) (stop func()) {
	if pub == nil {
		pub = noopPublisher{}
	}
	var seq atomic.Uint64
	publish := func(name string, id types.ModuleID) {
		pub.Publish(Event{
			ID:       uuid.NewString(),
			Seq:      seq.Add(1),
			Name:     name,
			ModuleID: id,
			Time:     time.Now(),
		})
	}
	stopModule := e.ModuleChanged.Connect(func(m *Module) {
		publish(EventModuleChanged, m.ID())
	})
	stopID := e.ModuleIDChanged.Connect(func(id types.ModuleID) {
		publish(EventModuleIDChanged, id)
	})
	return func() {
		stopModule()
		stopID()
	}
}
