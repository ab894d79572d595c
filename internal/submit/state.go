package submit

import "napt/internal/napkin"

// Phase identifies which variant of RequestState is active.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// RequestState tracks the lifecycle of one submission attempt. Exactly one
// variant is active at a time: Idle, Loading, Success (with the created
// thought), or Error (with a user-safe message). The zero value is Idle.
type RequestState struct {
	phase    Phase
	response napkin.ThoughtResponse
	message  string
}

// Idle returns the initial state.
func Idle() RequestState {
	return RequestState{phase: PhaseIdle}
}

// Loading returns the in-flight state.
func Loading() RequestState {
	return RequestState{phase: PhaseLoading}
}

// Succeeded returns the success state carrying the created thought.
func Succeeded(resp napkin.ThoughtResponse) RequestState {
	return RequestState{phase: PhaseSuccess, response: resp}
}

// Failed returns the error state. The message is always non-empty; a blank
// message falls back to the generic network message.
func Failed(message string) RequestState {
	if message == "" {
		message = MsgNetwork
	}
	return RequestState{phase: PhaseError, message: message}
}

// Phase reports the active variant.
func (s RequestState) Phase() Phase {
	return s.phase
}

// Response returns the success payload; ok is false unless the state is
// Success.
func (s RequestState) Response() (napkin.ThoughtResponse, bool) {
	return s.response, s.phase == PhaseSuccess
}

// Message returns the error message; empty unless the state is Error.
func (s RequestState) Message() string {
	if s.phase != PhaseError {
		return ""
	}
	return s.message
}
