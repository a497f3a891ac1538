package repository

import (
	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

func userFromLogin(resp ports.LoginResponse, submittedEmail string) domain.User {
	u := domain.User{
		ID:          resp.UserID,
		Email:       resp.Email,
		Username:    resp.Username,
		Description: resp.Description,
	}
	if u.Email == "" {
		u.Email = submittedEmail
	}
	if u.Username == "" {
		u.Username = domain.DefaultUsername
	}
	return u
}

func aggregateFromResponse(resp ports.UserDataResponse, requestedID string) domain.Aggregate {
	id := resp.UserID
	if id == "" {
		id = requestedID
	}
	goals := make([]domain.Goal, 0, len(resp.Goals))
	for _, g := range resp.Goals {
		goals = append(goals, goalFromResponse(g))
	}
	return domain.Aggregate{
		User: domain.User{
			ID:          id,
			Email:       resp.Email,
			Username:    resp.Username,
			Description: resp.Description,
		},
		Goals: goals,
	}
}

func goalFromResponse(g ports.GoalResponse) domain.Goal {
	steps := make([]domain.Step, 0, len(g.Steps))
	for _, s := range g.Steps {
		steps = append(steps, domain.Step{Title: s.Title, Status: domain.Status(s.Status).OrPending()})
	}
	return domain.Goal{
		ID:        g.ID,
		Title:     g.Title,
		Status:    domain.Status(g.Status).OrPending(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Steps:     steps,
	}
}

func goalRequest(g domain.Goal) ports.GoalRequest {
	steps := make([]ports.StepPayload, 0, len(g.Steps))
	for _, s := range g.Steps {
		steps = append(steps, ports.StepPayload{Title: s.Title, Status: string(s.Status.OrPending())})
	}
	return ports.GoalRequest{
		ID:     g.ID,
		Title:  g.Title,
		Steps:  steps,
		Status: string(g.Status.OrPending()),
	}
}

// mergeProfile prefers what the server echoed, keeping the requested values for blanks.
func mergeProfile(u domain.User, resp ports.UserDataResponse) domain.User {
	if resp.UserID != "" {
		u.ID = resp.UserID
	}
	if resp.Email != "" {
		u.Email = resp.Email
	}
	if resp.Username != "" {
		u.Username = resp.Username
	}
	if resp.Description != "" {
		u.Description = resp.Description
	}
	return u
}
