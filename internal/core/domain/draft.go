package domain

import "strings"

// GoalDraft is the pending-edit buffer used while composing a new goal.
// Step titles are trimmed and must be unique within the draft.
type GoalDraft struct {
	Title string
	steps []string
}

// NewGoalDraft starts a draft with the given title.
func NewGoalDraft(title string) *GoalDraft {
	return &GoalDraft{Title: strings.TrimSpace(title)}
}

// AddStep appends a step, rejecting empty and duplicate titles.
func (d *GoalDraft) AddStep(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "step", Err: ErrEmptyTitle}
	}
	for _, s := range d.steps {
		if s == title {
			return &ValidationError{Field: "step", Message: "step already exists: " + title, Err: ErrDuplicateStep}
		}
	}
	d.steps = append(d.steps, title)
	return nil
}

// RemoveStep drops a step by title. It reports whether anything was removed.
func (d *GoalDraft) RemoveStep(title string) bool {
	title = strings.TrimSpace(title)
	for i, s := range d.steps {
		if s == title {
			d.steps = append(d.steps[:i:i], d.steps[i+1:]...)
			return true
		}
	}
	return false
}

// Steps returns a copy of the step titles in insertion order.
func (d *GoalDraft) Steps() []string {
	out := make([]string, len(d.steps))
	copy(out, d.steps)
	return out
}

// Build turns the draft into a pending goal with one pending step per title.
func (d *GoalDraft) Build() (Goal, error) {
	if strings.TrimSpace(d.Title) == "" {
		return Goal{}, &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	steps := make([]Step, len(d.steps))
	for i, t := range d.steps {
		steps[i] = Step{Title: t, Status: StatusPending}
	}
	return Goal{Title: strings.TrimSpace(d.Title), Status: StatusPending, Steps: steps}, nil
}

// DraftFromTitles builds a draft in one go. Blank step titles are skipped;
// a duplicate aborts.
func DraftFromTitles(title string, stepTitles []string) (*GoalDraft, error) {
	d := NewGoalDraft(title)
	if d.Title == "" {
		return nil, &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	for _, s := range stepTitles {
		if strings.TrimSpace(s) == "" {
			continue
		}
		if err := d.AddStep(s); err != nil {
			return nil, err
		}
	}
	return d, nil
}
