package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifeassist/goals/internal/api/metrics"
	"github.com/lifeassist/goals/internal/api/store"
)

func newService() (*AccountService, *store.Memory) {
	st := store.NewMemory()
	return NewAccountService(st, zerolog.Nop()).WithHashCost(bcrypt.MinCost), st
}

func TestAccountService_RegisterHashesPassword(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()

	before := testutil.ToFloat64(metrics.RegistrationsTotal.WithLabelValues("created"))
	id, err := svc.Register(ctx, "a@b.com", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := testutil.ToFloat64(metrics.RegistrationsTotal.WithLabelValues("created")) - before; got != 1 {
		t.Fatalf("expected one created registration, got %v", got)
	}

	acc, _ := st.FindByID(ctx, id)
	if acc.PasswordHash == "secret" || bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("secret")) != nil {
		t.Fatal("password must be stored as a bcrypt hash")
	}
	if acc.Goals == nil {
		t.Fatal("new accounts start with an empty goal list")
	}
}

func TestAccountService_RegisterDuplicate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, _ = svc.Register(ctx, "a@b.com", "secret")

	if _, err := svc.Register(ctx, "a@b.com", "other"); !errors.Is(err, store.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAccountService_Login(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id, _ := svc.Register(ctx, "a@b.com", "secret")

	acc, err := svc.Login(ctx, "a@b.com", "secret")
	if err != nil || acc.ID != id {
		t.Fatalf("login: %+v %v", acc, err)
	}
	for _, pw := range []string{"wrong", ""} {
		if _, err := svc.Login(ctx, "a@b.com", pw); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("password %q: expected ErrInvalidCredentials, got %v", pw, err)
		}
	}
	if _, err := svc.Login(ctx, "ghost@b.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestAccountService_AddGoalDefaults(t *testing.T) {
	svc, st := newService()
	ctx := context.Background()
	id, _ := svc.Register(ctx, "a@b.com", "secret")

	g, err := svc.AddGoal(ctx, id, " Run ", []StepInput{{Title: "a"}, {Title: "b", Status: StatusCompleted}})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if g.ID == "" || g.Title != "Run" || g.Status != StatusPending || g.CreatedAt.IsZero() {
		t.Fatalf("unexpected goal %+v", g)
	}
	if g.Steps[0].Status != StatusPending || g.Steps[1].Status != StatusCompleted {
		t.Fatalf("unexpected steps %+v", g.Steps)
	}

	acc, _ := st.FindByID(ctx, id)
	if len(acc.Goals) != 1 || acc.Goals[0].ID != g.ID {
		t.Fatalf("goal not persisted: %+v", acc.Goals)
	}
}

func TestAccountService_AddGoalUnknownUser(t *testing.T) {
	svc, _ := newService()
	if _, err := svc.AddGoal(context.Background(), "ghost", "Run", nil); !errors.Is(err, store.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
