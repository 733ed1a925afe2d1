package engine

import "moduled/pkg/types"

// defaultInitialModule is used when Config.InitialModule is unset or invalid.
const defaultInitialModule = types.ModuleOne

// Config holds Engine construction options.
type Config struct {
	// InitialModule is the identifier of the module the engine starts with.
	InitialModule types.ModuleID
}

// NewWithConfig constructs an Engine from cfg.
func NewWithConfig(cfg Config) *Engine {
	initial := cfg.InitialModule
	if !initial.Valid() {
		initial = defaultInitialModule
	}
	return &Engine{cur: NewModule(initial)}
}
