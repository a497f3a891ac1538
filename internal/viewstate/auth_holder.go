package viewstate

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

// AuthHolder drives sign-in, registration and sign-out.
type AuthHolder struct {
	repo     ports.AuthRepository
	launcher *Launcher
	state    *Observable[AuthState]
	log      zerolog.Logger
}

func NewAuthHolder(ctx context.Context, repo ports.AuthRepository, log zerolog.Logger) *AuthHolder {
	return &AuthHolder{
		repo:     repo,
		launcher: NewLauncher(ctx, log),
		state:    NewObservable(AuthState{}),
		log:      log,
	}
}

func (h *AuthHolder) State() AuthState { return h.state.Get() }

func (h *AuthHolder) Subscribe(fn func(AuthState)) func() { return h.state.Subscribe(fn) }

// Login validates the credentials and signs in asynchronously. A validation
// failure is returned and published without touching the network.
func (h *AuthHolder) Login(email, password string) error {
	if err := domain.ValidateCredentials(email, password); err != nil {
		return h.fail(err)
	}
	h.loading()
	h.launcher.Go("login", func(ctx context.Context) {
		user, err := h.repo.Login(ctx, email, password)
		if err != nil {
			h.fail(err)
			return
		}
		h.state.Set(AuthState{Phase: PhaseSuccess, LoggedIn: true, User: user})
	})
	return nil
}

// Register creates an account. It never signs the user in.
func (h *AuthHolder) Register(email, password string) error {
	if err := domain.ValidateCredentials(email, password); err != nil {
		return h.fail(err)
	}
	h.loading()
	h.launcher.Go("register", func(ctx context.Context) {
		msg, err := h.repo.Register(ctx, email, password)
		if err != nil {
			h.fail(err)
			return
		}
		h.state.Update(func(s AuthState) AuthState {
			return AuthState{Phase: PhaseSuccess, LoggedIn: s.LoggedIn, User: s.User, Message: msg}
		})
	})
	return nil
}

func (h *AuthHolder) Logout() error {
	if err := h.repo.Logout(); err != nil {
		return h.fail(err)
	}
	h.state.Set(AuthState{})
	return nil
}

// Acknowledge returns a settled holder to idle once the result has been shown.
func (h *AuthHolder) Acknowledge() {
	h.state.Update(func(s AuthState) AuthState {
		if s.Phase == PhaseLoading {
			return s
		}
		s.Phase, s.Message, s.Err = PhaseIdle, "", nil
		return s
	})
}

func (h *AuthHolder) Wait()  { h.launcher.Wait() }
func (h *AuthHolder) Close() { h.launcher.Close() }

func (h *AuthHolder) loading() {
	h.state.Update(func(s AuthState) AuthState {
		s.Phase, s.Message, s.Err = PhaseLoading, "", nil
		return s
	})
}

func (h *AuthHolder) fail(err error) error {
	err = domain.AsError(err)
	h.state.Update(func(s AuthState) AuthState {
		s.Phase, s.Message, s.Err = PhaseError, "", err
		return s
	})
	return err
}
