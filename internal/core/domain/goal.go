package domain

import (
	"fmt"
	"strings"
	"time"
)

// Status is the progress state shared by goals and steps.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus accepts the two known statuses, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", s)}
}

// OrPending returns s, or StatusPending when s is unset.
func (s Status) OrPending() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// Step is a single unit of work inside a goal.
type Step struct {
	Title  string
	Status Status
}

// Completed reports whether the step is done.
func (s Step) Completed() bool { return s.Status == StatusCompleted }

// Goal is a titled list of steps owned by one user.
// ID, CreatedAt and UpdatedAt stay empty until the server has seen the goal.
type Goal struct {
	ID        string
	Title     string
	Status    Status
	CreatedAt string
	UpdatedAt string
	Steps     []Step
}

// Completed reports whether the goal itself was marked completed.
// Step status does not count.
func (g Goal) Completed() bool { return g.Status == StatusCompleted }

// CompletedSteps counts steps in the completed state.
func (g Goal) CompletedSteps() int {
	n := 0
	for _, s := range g.Steps {
		if s.Completed() {
			n++
		}
	}
	return n
}

// Progress renders the step counter shown next to a goal, e.g. "1/2".
func (g Goal) Progress() string {
	return fmt.Sprintf("%d/%d", g.CompletedSteps(), len(g.Steps))
}

// AllStepsCompleted reports whether every step is done. A goal without steps never is.
func (g Goal) AllStepsCompleted() bool {
	return len(g.Steps) > 0 && g.CompletedSteps() == len(g.Steps)
}

// WithStepStatus returns a copy of g where step i has the given status.
func (g Goal) WithStepStatus(i int, status Status) (Goal, error) {
	if i < 0 || i >= len(g.Steps) {
		return Goal{}, &ValidationError{Field: "step", Message: fmt.Sprintf("step %d out of range", i)}
	}
	out := g
	out.Steps = make([]Step, len(g.Steps))
	copy(out.Steps, g.Steps)
	out.Steps[i].Status = status
	return out, nil
}

// WithStatus returns a copy of g carrying status.
func (g Goal) WithStatus(status Status) Goal {
	out := g
	out.Steps = make([]Step, len(g.Steps))
	copy(out.Steps, g.Steps)
	out.Status = status
	return out
}

// CompletedGoals keeps the goals whose own status is completed, in their original order.
func CompletedGoals(goals []Goal) []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.Completed() {
			out = append(out, g)
		}
	}
	return out
}

const displayTimeLayout = "02/01/2006 15:04"

// FormatTimestamp renders an ISO-8601 server timestamp as dd/MM/yyyy HH:mm in UTC.
// Empty input renders as "N/A"; anything unparsable is returned unchanged.
func FormatTimestamp(ts string) string {
	if ts == "" {
		return "N/A"
	}
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format(displayTimeLayout)
}
