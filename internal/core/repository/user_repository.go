package repository

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

// UserRepository implements ports.UserRepository. Each call is a single attempt.
type UserRepository struct {
	client ports.APIClient
	log    zerolog.Logger
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(client ports.APIClient, log zerolog.Logger) *UserRepository {
	return &UserRepository{client: client, log: log}
}

func (r *UserRepository) GetUserData(ctx context.Context, userID string) (domain.Aggregate, error) {
	if userID == "" {
		return domain.Aggregate{}, domain.AsError(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}

	resp, err := r.client.GetUser(ctx, userID)
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("fetch user data failed")
		return domain.Aggregate{}, domain.AsError(err)
	}
	if resp == nil {
		return domain.Aggregate{}, domain.AsError(&domain.MalformedResponseError{Field: "user"})
	}
	return aggregateFromResponse(*resp, userID), nil
}

func (r *UserRepository) SubmitGoal(ctx context.Context, userID string, goal domain.Goal) error {
	if userID == "" {
		return domain.AsError(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}
	if strings.TrimSpace(goal.Title) == "" {
		return domain.AsError(&domain.ValidationError{Field: "title", Err: domain.ErrEmptyTitle})
	}

	if _, err := r.client.SubmitGoal(ctx, userID, goalRequest(goal)); err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("submit goal failed")
		return domain.AsError(err)
	}
	r.log.Debug().Str("user_id", userID).Int("steps", len(goal.Steps)).Msg("goal submitted")
	return nil
}

func (r *UserRepository) UpdateGoalStatus(ctx context.Context, userID, goalID string, status domain.Status) error {
	if userID == "" {
		return domain.AsError(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}
	if goalID == "" {
		return domain.AsError(&domain.ValidationError{Field: "goalId", Err: domain.ErrGoalNotFound})
	}
	parsed, err := domain.ParseStatus(string(status))
	if err != nil {
		return domain.AsError(err)
	}

	if err := r.client.UpdateGoalStatus(ctx, userID, goalID, ports.GoalStatusRequest{Status: string(parsed)}); err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Str("goal_id", goalID).Msg("update goal status failed")
		return domain.AsError(err)
	}
	return nil
}

// UpdateProfile sets the description, clearing it when empty, and renames the
// user when username is non-empty. An empty username goes through the
// description endpoint and keeps the current name.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID, username, description string) (domain.User, error) {
	if userID == "" {
		return domain.User{}, domain.AsError(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}
	username = strings.TrimSpace(username)

	var (
		resp *ports.UserDataResponse
		err  error
	)
	if username == "" {
		resp, err = r.client.UpdateDescription(ctx, userID, ports.UpdateDescriptionRequest{Description: description})
	} else {
		if vErr := domain.ValidateProfile(username); vErr != nil {
			return domain.User{}, domain.AsError(vErr)
		}
		resp, err = r.client.UpdateProfile(ctx, userID, ports.UpdateProfileRequest{
			UserID:      userID,
			Username:    username,
			Description: &description,
		})
	}
	if err != nil {
		r.log.Warn().Err(err).Str("user_id", userID).Msg("update profile failed")
		return domain.User{}, domain.AsError(err)
	}

	user := domain.User{ID: userID, Username: username, Description: description}
	if resp != nil {
		user = mergeProfile(user, *resp)
	}
	return user, nil
}
