package domain

import (
	"errors"
	"testing"
)

func twoStepGoal() Goal {
	return Goal{
		ID:     "g1",
		Title:  "Run a marathon",
		Status: StatusPending,
		Steps: []Step{
			{Title: "Buy shoes", Status: StatusCompleted},
			{Title: "Run 10k", Status: StatusPending},
		},
	}
}

func TestGoal_Progress(t *testing.T) {
	if got := twoStepGoal().Progress(); got != "1/2" {
		t.Fatalf("expected 1/2, got %s", got)
	}
	if got := (Goal{}).Progress(); got != "0/0" {
		t.Fatalf("expected 0/0, got %s", got)
	}
}

func TestGoal_AllStepsCompleted(t *testing.T) {
	g := twoStepGoal()
	if g.AllStepsCompleted() {
		t.Fatal("goal with a pending step must not be complete")
	}

	done, err := g.WithStepStatus(1, StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done.AllStepsCompleted() {
		t.Fatal("expected all steps completed")
	}
	if (Goal{Title: "empty"}).AllStepsCompleted() {
		t.Fatal("goal without steps must not report completion")
	}
}

func TestGoal_WithStepStatus_DoesNotMutateOriginal(t *testing.T) {
	g := twoStepGoal()
	changed, err := g.WithStepStatus(1, StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Steps[1].Status != StatusPending {
		t.Fatalf("original goal was mutated: %+v", g.Steps[1])
	}
	if changed.Steps[1].Status != StatusCompleted {
		t.Fatalf("expected changed step to be completed, got %s", changed.Steps[1].Status)
	}
}

func TestGoal_WithStepStatus_OutOfRange(t *testing.T) {
	_, err := twoStepGoal().WithStepStatus(5, StatusCompleted)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGoal_CompletionIgnoresStepStatus(t *testing.T) {
	g := twoStepGoal()
	g, _ = g.WithStepStatus(1, StatusCompleted)

	if got := CompletedGoals([]Goal{g}); len(got) != 0 {
		t.Fatalf("goal status gates completion, got %d completed goals", len(got))
	}

	marked := g.WithStatus(StatusCompleted)
	if got := CompletedGoals([]Goal{g, marked}); len(got) != 1 || got[0].Status != StatusCompleted {
		t.Fatalf("expected only the marked goal, got %+v", got)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus(" Completed "); err != nil || s != StatusCompleted {
		t.Fatalf("expected completed, got %q (%v)", s, err)
	}
	if _, err := ParseStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
	if Status("").OrPending() != StatusPending {
		t.Fatal("unset status must default to pending")
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := map[string]string{
		"":                         "N/A",
		"2024-12-14T12:45:59.749Z": "14/12/2024 12:45",
		"2024-12-14T12:45:59Z":     "14/12/2024 12:45",
		"yesterday":                "yesterday",
	}
	for in, want := range cases {
		if got := FormatTimestamp(in); got != want {
			t.Errorf("FormatTimestamp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAggregate_WithGoalCopies(t *testing.T) {
	agg := Aggregate{User: User{ID: "u1"}, Goals: []Goal{twoStepGoal()}}
	updated := agg.WithGoal(agg.Goals[0].WithStatus(StatusCompleted))

	if agg.Goals[0].Status != StatusPending {
		t.Fatal("original aggregate was mutated")
	}
	if updated.Goals[0].Status != StatusCompleted {
		t.Fatalf("expected replaced goal, got %s", updated.Goals[0].Status)
	}
	if _, ok := updated.FindGoal("missing"); ok {
		t.Fatal("unexpected goal found")
	}
	if _, ok := updated.FindGoal(""); ok {
		t.Fatal("empty id must never match")
	}
}
