// Package engine holds the current module and notifies observers when it
// changes. It is structured into small files by concern:
//
//   - module.go: Module, the identifier-carrying value owned by the engine.
//   - engine.go: Engine type, constructor, getters and SetCurrentModuleID.
//   - config.go: Config and defaults; NewWithConfig applies defaults.
//   - signal.go: Signal, a typed list of slots run synchronously on emit.
//   - spy.go: Spy, a recording slot used by tests and diagnostics.
//   - events.go: Event and EventPublisher; Forward bridges signals to a publisher.
//   - eventpub_memory.go: MemoryPublisher, an in-memory publisher for tests.
//   - bus.go: Bus, a fan-out publisher feeding subscriber channels.
//
// An Engine owns exactly one Module for its whole life. Switching modules
// rewrites the identifier of that Module in place, so pointers returned by
// CurrentModule stay valid and keep comparing equal.
package engine
