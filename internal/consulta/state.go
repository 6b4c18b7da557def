package consulta

import "encoding/json"

// Status is the submission lifecycle phase.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is the outcome of one form submission. Exactly one State exists per
// in-flight submission and only the orchestrator transitions it.
type State struct {
	Status Status `json:"status"`

	// Payload holds the backend report on success. The core treats it as
	// opaque; only the display and history layers parse it.
	Payload json.RawMessage `json:"data,omitempty"`

	// Err carries the presentable message after a remote failure.
	Err string `json:"error,omitempty"`

	// Invalid carries the validation message when a submission is rejected
	// before any network call. The state stays Idle in that case.
	Invalid string `json:"invalid,omitempty"`

	// Input preserves the user's raw input so a failed submission does not
	// force retyping.
	Input string `json:"input,omitempty"`
}

// Terminal reports whether the state reached Success or Error.
func (s State) Terminal() bool {
	return s.Status == StatusSuccess || s.Status == StatusError
}
