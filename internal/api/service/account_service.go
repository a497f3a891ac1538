// Package service holds the use cases of the reference goals server.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifeassist/goals/internal/api/metrics"
	"github.com/lifeassist/goals/internal/api/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// StepInput is one step of a submitted goal. An empty status means pending.
type StepInput struct {
	Title  string
	Status string
}

// AccountService implements registration, login and goal bookkeeping.
type AccountService struct {
	store store.Store
	log   zerolog.Logger
	now   func() time.Time
	cost  int
}

func NewAccountService(st store.Store, log zerolog.Logger) *AccountService {
	return &AccountService{store: st, log: log, now: func() time.Time { return time.Now().UTC() }, cost: bcrypt.DefaultCost}
}

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost.
func (s *AccountService) WithHashCost(cost int) *AccountService {
	s.cost = cost
	return s
}

func (s *AccountService) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return "", ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}

	now := s.now()
	acc := store.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Goals:        []store.Goal{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		}
		return "", err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("user_id", acc.ID).Msg("account registered")
	return acc.ID, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (store.Account, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return store.Account{}, ErrInvalidCredentials
	}

	acc, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return store.Account{}, ErrInvalidCredentials
		}
		return store.Account{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return store.Account{}, ErrInvalidCredentials
	}
	return acc, nil
}

func (s *AccountService) Get(ctx context.Context, userID string) (store.Account, error) {
	return s.store.FindByID(ctx, userID)
}

// AddGoal stores a new pending goal and returns it with its id and timestamps.
func (s *AccountService) AddGoal(ctx context.Context, userID, title string, steps []StepInput) (store.Goal, error) {
	now := s.now()
	g := store.Goal{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Status:    StatusPending,
		Steps:     make([]store.Step, 0, len(steps)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, st := range steps {
		status := st.Status
		if status == "" {
			status = StatusPending
		}
		g.Steps = append(g.Steps, store.Step{Title: st.Title, Status: status})
	}

	if err := s.store.AddGoal(ctx, userID, g); err != nil {
		return store.Goal{}, err
	}
	metrics.GoalsSubmittedTotal.Inc()
	s.log.Debug().Str("user_id", userID).Str("goal_id", g.ID).Msg("goal stored")
	return g, nil
}

// SetGoalStatus is idempotent: repeating the same status succeeds.
func (s *AccountService) SetGoalStatus(ctx context.Context, userID, goalID, status string) error {
	return s.store.SetGoalStatus(ctx, userID, goalID, status, s.now())
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID string, upd store.ProfileUpdate) (store.Account, error) {
	return s.store.UpdateProfile(ctx, userID, upd, s.now())
}
