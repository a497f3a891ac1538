package ports

import (
	"context"

	"github.com/lifeassist/goals/internal/core/domain"
)

// UserRepository reads and writes the signed-in user's profile and goals.
// Every failure is returned as *domain.Error.
type UserRepository interface {
	GetUserData(ctx context.Context, userID string) (domain.Aggregate, error)
	// SubmitGoal posts a new goal. Callers refetch to see the server-assigned id and timestamps.
	SubmitGoal(ctx context.Context, userID string, goal domain.Goal) error
	UpdateGoalStatus(ctx context.Context, userID, goalID string, status domain.Status) error
	UpdateProfile(ctx context.Context, userID, username, description string) (domain.User, error)
}
