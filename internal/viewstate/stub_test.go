package viewstate

import (
	"context"
	"sync"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

type stubUsers struct {
	mu    sync.Mutex
	calls []string

	getUserData      func(userID string) (domain.Aggregate, error)
	submitGoal       func(userID string, g domain.Goal) error
	updateGoalStatus func(userID, goalID string, s domain.Status) error
	updateProfile    func(userID, username, description string) (domain.User, error)
}

var _ ports.UserRepository = (*stubUsers)(nil)

func (s *stubUsers) record(name string) {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.mu.Unlock()
}

func (s *stubUsers) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *stubUsers) GetUserData(_ context.Context, userID string) (domain.Aggregate, error) {
	s.record("get")
	return s.getUserData(userID)
}

func (s *stubUsers) SubmitGoal(_ context.Context, userID string, g domain.Goal) error {
	s.record("submit")
	return s.submitGoal(userID, g)
}

func (s *stubUsers) UpdateGoalStatus(_ context.Context, userID, goalID string, st domain.Status) error {
	s.record("status")
	return s.updateGoalStatus(userID, goalID, st)
}

func (s *stubUsers) UpdateProfile(_ context.Context, userID, username, description string) (domain.User, error) {
	s.record("profile")
	return s.updateProfile(userID, username, description)
}

type stubAuth struct {
	login    func(email, password string) (domain.User, error)
	register func(email, password string) (string, error)
	logout   func() error
}

var _ ports.AuthRepository = (*stubAuth)(nil)

func (s *stubAuth) Login(_ context.Context, email, password string) (domain.User, error) {
	return s.login(email, password)
}

func (s *stubAuth) Register(_ context.Context, email, password string) (string, error) {
	return s.register(email, password)
}

func (s *stubAuth) Logout() error { return s.logout() }

func twoStepGoal() domain.Goal {
	return domain.Goal{
		ID:     "g1",
		Title:  "Run a marathon",
		Status: domain.StatusPending,
		Steps: []domain.Step{
			{Title: "Buy shoes", Status: domain.StatusCompleted},
			{Title: "Train", Status: domain.StatusPending},
		},
	}
}
