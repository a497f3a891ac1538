package repository

import (
	"context"

	"github.com/lifeassist/goals/internal/core/ports"
)

// stubClient lets each test override only the calls it cares about.
// Unset calls count as a violation of "no network call".
type stubClient struct {
	calls int

	register          func(ports.CredentialsRequest) (*ports.RegisterResponse, error)
	login             func(ports.CredentialsRequest) (*ports.LoginResponse, error)
	getUser           func(string) (*ports.UserDataResponse, error)
	submitGoal        func(string, ports.GoalRequest) (*ports.GoalResponse, error)
	updateGoalStatus  func(string, string, ports.GoalStatusRequest) error
	updateProfile     func(string, ports.UpdateProfileRequest) (*ports.UserDataResponse, error)
	updateDescription func(string, ports.UpdateDescriptionRequest) (*ports.UserDataResponse, error)
}

var _ ports.APIClient = (*stubClient)(nil)

func (s *stubClient) Register(_ context.Context, req ports.CredentialsRequest) (*ports.RegisterResponse, error) {
	s.calls++
	return s.register(req)
}

func (s *stubClient) Login(_ context.Context, req ports.CredentialsRequest) (*ports.LoginResponse, error) {
	s.calls++
	return s.login(req)
}

func (s *stubClient) GetUser(_ context.Context, userID string) (*ports.UserDataResponse, error) {
	s.calls++
	return s.getUser(userID)
}

func (s *stubClient) SubmitGoal(_ context.Context, userID string, req ports.GoalRequest) (*ports.GoalResponse, error) {
	s.calls++
	return s.submitGoal(userID, req)
}

func (s *stubClient) UpdateGoalStatus(_ context.Context, userID, goalID string, req ports.GoalStatusRequest) error {
	s.calls++
	return s.updateGoalStatus(userID, goalID, req)
}

func (s *stubClient) UpdateProfile(_ context.Context, userID string, req ports.UpdateProfileRequest) (*ports.UserDataResponse, error) {
	s.calls++
	return s.updateProfile(userID, req)
}

func (s *stubClient) UpdateDescription(_ context.Context, userID string, req ports.UpdateDescriptionRequest) (*ports.UserDataResponse, error) {
	s.calls++
	return s.updateDescription(userID, req)
}
