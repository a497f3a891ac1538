package ports

import "context"

// APIClient is one method per remote capability. Failures are *domain.TransportError
// or *domain.APIError.
type APIClient interface {
	Register(ctx context.Context, req CredentialsRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req CredentialsRequest) (*LoginResponse, error)
	GetUser(ctx context.Context, userID string) (*UserDataResponse, error)
	// SubmitGoal returns the created goal when the server echoes it, nil for a bare ack.
	SubmitGoal(ctx context.Context, userID string, req GoalRequest) (*GoalResponse, error)
	UpdateGoalStatus(ctx context.Context, userID, goalID string, req GoalStatusRequest) error
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*UserDataResponse, error)
	UpdateDescription(ctx context.Context, userID string, req UpdateDescriptionRequest) (*UserDataResponse, error)
}
