package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ModuleID identifies a module. The set of identifiers is closed; only
// equality is meaningful.
type ModuleID int

const (
	ModuleOne      ModuleID = 1
	ModuleAnother  ModuleID = 2
	ModuleFortyTwo ModuleID = 42
)

// ErrUnknownModuleID is returned when parsing a name or value outside the enumeration.
var ErrUnknownModuleID = errors.New("unknown module id")

var moduleNames = map[ModuleID]string{
	ModuleOne:      "one",
	ModuleAnother:  "another",
	ModuleFortyTwo: "forty_two",
}

// ModuleIDs returns every identifier in declaration order.
func ModuleIDs() []ModuleID {
	return []ModuleID{ModuleOne, ModuleAnother, ModuleFortyTwo}
}

// Valid reports whether id is part of the enumeration.
func (id ModuleID) Valid() bool {
	_, ok := moduleNames[id]
	return ok
}

func (id ModuleID) String() string {
	if name, ok := moduleNames[id]; ok {
		return name
	}
	return "module(" + strconv.Itoa(int(id)) + ")"
}

// ParseModuleID accepts either a name ("another") or the decimal value ("2").
func ParseModuleID(s string) (ModuleID, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for id, name := range moduleNames {
		if name == in {
			return id, nil
		}
	}
	if n, err := strconv.Atoi(in); err == nil {
		if id := ModuleID(n); id.Valid() {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModuleID, s)
}

// MarshalText encodes the identifier by name.
func (id ModuleID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModuleID, int(id))
	}
	return []byte(id.String()), nil
}

// UnmarshalText decodes a name or decimal value.
func (id *ModuleID) UnmarshalText(b []byte) error {
	v, err := ParseModuleID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// UnmarshalJSON accepts a JSON string (name or decimal value) or a bare number.
func (id *ModuleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return id.UnmarshalText([]byte(s))
	}
	return id.UnmarshalText(b)
}
