package viewstate

import "github.com/lifeassist/goals/internal/core/domain"

// Phase is the lifecycle of the most recent intent.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

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

// AuthState backs the login and registration screens.
type AuthState struct {
	Phase    Phase
	LoggedIn bool
	User     domain.User
	// Message is the server confirmation after a successful registration.
	Message string
	Err     error
}

func (s AuthState) ErrorMessage() string { return domain.Message(s.Err) }

// MainState backs the goal list and detail screens.
type MainState struct {
	Phase    Phase
	LoggedIn bool
	Data     domain.Aggregate
	Err      error
}

func (s MainState) ErrorMessage() string { return domain.Message(s.Err) }

// CompletedState is the completed-goals projection.
type CompletedState struct {
	Phase Phase
	Goals []domain.Goal
	Err   error
}

func (s CompletedState) ErrorMessage() string { return domain.Message(s.Err) }
