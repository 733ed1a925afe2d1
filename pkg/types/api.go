package types

// ModulesResponse wraps the identifiers returned by GET /modules.
type ModulesResponse struct {
	// All module identifiers.
	// example: ["one","another","forty_two"]
	Modules []ModuleID `json:"modules"`
}

// CurrentModuleResponse is returned by GET /module.
type CurrentModuleResponse struct {
	// Identifier of the current module.
	// example: one
	ID ModuleID `json:"id" example:"one"`
}

// SwitchRequest is the body of PUT /module.
type SwitchRequest struct {
	// Identifier to make current, by name or decimal value.
	// example: another
	ID string `json:"id" example:"another"`
}

// SwitchResponse reports the outcome of PUT /module.
type SwitchResponse struct {
	// Identifier of the current module after the request.
	// example: another
	ID ModuleID `json:"id" example:"another"`
	// Whether the request changed the current module. False when it was already current.
	// example: true
	Changed bool `json:"changed" example:"true"`
	// Operation identifier for correlating with /events.
	// example: 1b4e28ba-2fa1-11d2-883f-0016d3cca427
	OpID string `json:"op_id" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
}

// EventMessage is one NDJSON line streamed by GET /events.
type EventMessage struct {
	// Unique event id.
	ID string `json:"id"`
	// Monotonic sequence number, starting at 1.
	// example: 7
	Seq uint64 `json:"seq" example:"7"`
	// Event name: module_changed or module_id_changed.
	// example: module_id_changed
	Name string `json:"name" example:"module_id_changed"`
	// Module identifier carried by the event.
	// example: another
	ModuleID ModuleID `json:"module_id" example:"another"`
	// Event time in unix milliseconds.
	// example: 1700000000000
	TimeUnixMs int64 `json:"time_unix_ms" example:"1700000000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// RecentEventsResponse is returned by GET /events/recent.
type RecentEventsResponse struct {
	// Retained events newer than the requested sequence number, oldest first.
	Events []EventMessage `json:"events"`
}
