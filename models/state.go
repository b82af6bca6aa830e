package models

import (
	"encoding/json"
	"time"
)

// LastVersion is the sentinel version that selects the most recently
// updated version of a state.
const LastVersion = "last"

// State is a named, versioned JSON document served by the state routes.
type State struct {
	// Name identifies the state, e.g. "app-settings".
	Name string `json:"name"`

	// Version is the concrete version that was resolved. When the caller
	// asked for [LastVersion] it holds the version actually found.
	Version string `json:"version"`

	// Payload is the stored document, passed through verbatim.
	Payload json.RawMessage `json:"payload"`

	// UpdatedAt is the time the version was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// StateRequest identifies the state a caller asks for.
type StateRequest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
