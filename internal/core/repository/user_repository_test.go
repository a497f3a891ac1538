package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

func TestUserRepository_GetUserData_NeverNilSlices(t *testing.T) {
	client := &stubClient{getUser: func(id string) (*ports.UserDataResponse, error) {
		return &ports.UserDataResponse{
			Email: "a@b.com",
			Goals: []ports.GoalResponse{{ID: "g1", Title: "Run"}},
		}, nil
	}}

	agg, err := NewUserRepository(client, zerolog.Nop()).GetUserData(context.Background(), "u1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if agg.User.ID != "u1" {
		t.Fatalf("expected id fallback to requested id, got %q", agg.User.ID)
	}
	if len(agg.Goals) != 1 || agg.Goals[0].Steps == nil {
		t.Fatalf("expected non-nil steps, got %+v", agg.Goals)
	}
	if agg.Goals[0].Status != domain.StatusPending {
		t.Fatalf("expected pending default, got %q", agg.Goals[0].Status)
	}
}

func TestUserRepository_GetUserData_EmptyGoals(t *testing.T) {
	client := &stubClient{getUser: func(id string) (*ports.UserDataResponse, error) {
		return &ports.UserDataResponse{UserID: "u1"}, nil
	}}
	agg, err := NewUserRepository(client, zerolog.Nop()).GetUserData(context.Background(), "u1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if agg.Goals == nil || len(agg.Goals) != 0 {
		t.Fatalf("expected empty non-nil goals, got %#v", agg.Goals)
	}
}

func TestUserRepository_GetUserData_RequiresUserID(t *testing.T) {
	client := &stubClient{}
	_, err := NewUserRepository(client, zerolog.Nop()).GetUserData(context.Background(), "")
	if !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("no request expected")
	}
}

func TestUserRepository_SubmitGoal_DefaultsPending(t *testing.T) {
	var sent ports.GoalRequest
	client := &stubClient{submitGoal: func(id string, req ports.GoalRequest) (*ports.GoalResponse, error) {
		sent = req
		return nil, nil
	}}

	goal := domain.Goal{Title: "Run", Steps: []domain.Step{{Title: "a"}, {Title: "b", Status: domain.StatusCompleted}}}
	if err := NewUserRepository(client, zerolog.Nop()).SubmitGoal(context.Background(), "u1", goal); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if sent.Status != "pending" || sent.Steps[0].Status != "pending" || sent.Steps[1].Status != "completed" {
		t.Fatalf("unexpected request: %+v", sent)
	}
}

func TestUserRepository_SubmitGoal_EmptyTitle(t *testing.T) {
	client := &stubClient{}
	err := NewUserRepository(client, zerolog.Nop()).SubmitGoal(context.Background(), "u1", domain.Goal{Title: "  "})
	if !errors.Is(err, domain.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if client.calls != 0 {
		t.Fatal("no request expected")
	}
}

func TestUserRepository_UpdateGoalStatus(t *testing.T) {
	var got []string
	client := &stubClient{updateGoalStatus: func(uid, gid string, req ports.GoalStatusRequest) error {
		got = append(got, uid+"/"+gid+"="+req.Status)
		return nil
	}}
	repo := NewUserRepository(client, zerolog.Nop())

	if err := repo.UpdateGoalStatus(context.Background(), "u1", "g1", "Completed"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(got) != 1 || got[0] != "u1/g1=completed" {
		t.Fatalf("unexpected calls %v", got)
	}

	err := repo.UpdateGoalStatus(context.Background(), "u1", "g1", "archived")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("expected status validation error, got %v", err)
	}
	if client.calls != 1 {
		t.Fatalf("unknown status must not reach the network, calls=%d", client.calls)
	}
}

func TestUserRepository_TransportErrorIsWrapped(t *testing.T) {
	cause := &domain.TransportError{Op: "get_user", Err: errors.New("connection refused")}
	client := &stubClient{getUser: func(string) (*ports.UserDataResponse, error) { return nil, cause }}

	_, err := NewUserRepository(client, zerolog.Nop()).GetUserData(context.Background(), "u1")
	var de *domain.Error
	if !errors.As(err, &de) || de.Message != cause.Error() {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatal("cause must stay reachable")
	}
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	client := &stubClient{
		updateProfile: func(uid string, req ports.UpdateProfileRequest) (*ports.UserDataResponse, error) {
			return &ports.UserDataResponse{UserID: uid, Email: "a@b.com", Username: req.Username}, nil
		},
		updateDescription: func(uid string, req ports.UpdateDescriptionRequest) (*ports.UserDataResponse, error) {
			return &ports.UserDataResponse{}, nil
		},
	}
	repo := NewUserRepository(client, zerolog.Nop())

	u, err := repo.UpdateProfile(context.Background(), "u1", "ann", "runner")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if u.Username != "ann" || u.Description != "runner" || u.Email != "a@b.com" {
		t.Fatalf("unexpected user %+v", u)
	}

	u, err = repo.UpdateProfile(context.Background(), "u1", "", "only description")
	if err != nil {
		t.Fatalf("description update failed: %v", err)
	}
	if u.ID != "u1" || u.Description != "only description" {
		t.Fatalf("unexpected user %+v", u)
	}
	if client.calls != 2 {
		t.Fatalf("expected two calls, got %d", client.calls)
	}
}

func TestUserRepository_UpdateProfile_RenameCanClearDescription(t *testing.T) {
	var sent ports.UpdateProfileRequest
	client := &stubClient{updateProfile: func(uid string, req ports.UpdateProfileRequest) (*ports.UserDataResponse, error) {
		sent = req
		return &ports.UserDataResponse{UserID: uid, Username: req.Username}, nil
	}}
	repo := NewUserRepository(client, zerolog.Nop())

	u, err := repo.UpdateProfile(context.Background(), "u1", "ann", "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if sent.Description == nil || *sent.Description != "" {
		t.Fatalf("expected an explicit empty description on the wire, got %v", sent.Description)
	}
	body, _ := json.Marshal(sent)
	if !strings.Contains(string(body), `"description":""`) {
		t.Fatalf("description dropped from request body: %s", body)
	}
	if u.Username != "ann" || u.Description != "" {
		t.Fatalf("unexpected user %+v", u)
	}
}
