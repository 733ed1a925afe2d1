package engine

import (
	"sync/atomic"

	"moduled/pkg/types"
)

// Module is a logical unit identified by a ModuleID.
type Module struct {
	id atomic.Int64
}

// NewModule returns a module carrying id.
func NewModule(id types.ModuleID) *Module {
	m := &Module{}
	m.id.Store(int64(id))
	return m
}

// ID returns the module identifier.
func (m *Module) ID() types.ModuleID {
	return types.ModuleID(m.id.Load())
}

// Reset makes m adopt the identifier of other. other is not retained.
func (m *Module) Reset(other *Module) {
	if other == nil {
		return
	}
	m.id.Store(int64(other.ID()))
}
