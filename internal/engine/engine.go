package engine

import (
	"sync"

	"moduled/pkg/types"
)

// Engine owns the current module and announces identifier changes through
// ModuleChanged followed by ModuleIDChanged. Build one with New or
// NewWithConfig; the zero value has no module.
type Engine struct {
	// mu serializes switches, including slot execution, so each change is
	// announced exactly once and in order.
	mu  sync.Mutex
	cur *Module

	// ModuleChanged fires with the (updated) current module.
	ModuleChanged Signal[*Module]
	// ModuleIDChanged fires with the new identifier, after ModuleChanged.
	ModuleIDChanged Signal[types.ModuleID]
}

// New returns an engine whose current module is ModuleOne.
func New() *Engine {
	return NewWithConfig(Config{})
}

// CurrentModule returns the module owned by the engine. It is never nil and
// is the same pointer for the life of the engine.
func (e *Engine) CurrentModule() *Module {
	return e.cur
}

// CurrentModuleID returns the identifier of the current module.
func (e *Engine) CurrentModuleID() types.ModuleID {
	return e.cur.ID()
}

// SetCurrentModuleID makes id current. Setting the identifier that is already
// current does nothing and notifies no one.
func (e *Engine) SetCurrentModuleID(id types.ModuleID) {
	e.Switch(id)
}

// Switch is SetCurrentModuleID reporting whether the current module changed.
// Slots must not call back into Switch or SetCurrentModuleID.
func (e *Engine) Switch(id types.ModuleID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cur.ID() == id {
		return false
	}
	e.cur.Reset(NewModule(id))
	e.ModuleChanged.emit(e.cur)
	e.ModuleIDChanged.emit(id)
	return true
}
