package handler

import (
	"time"

	"github.com/lifeassist/goals/internal/api/store"
	"github.com/lifeassist/goals/internal/core/ports"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func toGoalResponse(g store.Goal) ports.GoalResponse {
	steps := make([]ports.StepPayload, 0, len(g.Steps))
	for _, s := range g.Steps {
		steps = append(steps, ports.StepPayload{Title: s.Title, Status: s.Status})
	}
	return ports.GoalResponse{
		ID:        g.ID,
		Title:     g.Title,
		Steps:     steps,
		Status:    g.Status,
		CreatedAt: formatTime(g.CreatedAt),
		UpdatedAt: formatTime(g.UpdatedAt),
	}
}

func toUserDataResponse(a store.Account) ports.UserDataResponse {
	goals := make([]ports.GoalResponse, 0, len(a.Goals))
	for _, g := range a.Goals {
		goals = append(goals, toGoalResponse(g))
	}
	return ports.UserDataResponse{
		UserID:      a.ID,
		Email:       a.Email,
		Username:    a.Username,
		Description: a.Description,
		Goals:       goals,
	}
}
