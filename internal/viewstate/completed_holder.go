package viewstate

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

// CompletedGoalsHolder exposes only the goals whose status is completed.
type CompletedGoalsHolder struct {
	users    ports.UserRepository
	session  ports.SessionStore
	launcher *Launcher
	state    *Observable[CompletedState]
}

func NewCompletedGoalsHolder(ctx context.Context, users ports.UserRepository, session ports.SessionStore, log zerolog.Logger) *CompletedGoalsHolder {
	return &CompletedGoalsHolder{
		users:    users,
		session:  session,
		launcher: NewLauncher(ctx, log),
		state:    NewObservable(CompletedState{Goals: []domain.Goal{}}),
	}
}

func (h *CompletedGoalsHolder) State() CompletedState { return h.state.Get() }

func (h *CompletedGoalsHolder) Subscribe(fn func(CompletedState)) func() {
	return h.state.Subscribe(fn)
}

// Follow derives the projection from main until the returned function is called.
func (h *CompletedGoalsHolder) Follow(main *MainHolder) (stop func()) {
	return main.Subscribe(func(s MainState) {
		h.state.Set(CompletedState{
			Phase: s.Phase,
			Goals: domain.CompletedGoals(s.Data.Goals),
			Err:   s.Err,
		})
	})
}

// Fetch derives the projection from a fresh fetch of the stored user.
func (h *CompletedGoalsHolder) Fetch() error {
	userID, _ := h.session.Get(domain.FieldUserID)
	if userID == "" {
		err := domain.AsError(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
		h.state.Update(func(s CompletedState) CompletedState {
			s.Phase, s.Err = PhaseError, err
			return s
		})
		return err
	}

	h.state.Update(func(s CompletedState) CompletedState {
		s.Phase, s.Err = PhaseLoading, nil
		return s
	})
	h.launcher.Go("fetch_completed", func(ctx context.Context) {
		agg, err := h.users.GetUserData(ctx, userID)
		if err != nil {
			h.state.Update(func(s CompletedState) CompletedState {
				s.Phase, s.Err = PhaseError, domain.AsError(err)
				return s
			})
			return
		}
		h.state.Set(CompletedState{Phase: PhaseSuccess, Goals: domain.CompletedGoals(agg.Goals)})
	})
	return nil
}

func (h *CompletedGoalsHolder) Acknowledge() {
	h.state.Update(func(s CompletedState) CompletedState {
		if s.Phase == PhaseLoading {
			return s
		}
		s.Phase, s.Err = PhaseIdle, nil
		return s
	})
}

func (h *CompletedGoalsHolder) Wait()  { h.launcher.Wait() }
func (h *CompletedGoalsHolder) Close() { h.launcher.Close() }
