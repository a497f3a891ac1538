package viewstate

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

// MainHolder owns the signed-in user's aggregate and every goal intent.
//
// Logout starts a new session epoch. Results of intents started in an earlier
// epoch are dropped, so they never reach the state or the session store.
type MainHolder struct {
	users    ports.UserRepository
	auth     ports.AuthRepository
	session  ports.SessionStore
	launcher *Launcher
	state    *Observable[MainState]
	log      zerolog.Logger

	// sessionMu orders identity writes against logout.
	sessionMu sync.Mutex
	epoch     atomic.Uint64
}

func NewMainHolder(ctx context.Context, users ports.UserRepository, auth ports.AuthRepository, session ports.SessionStore, log zerolog.Logger) *MainHolder {
	return &MainHolder{
		users:    users,
		auth:     auth,
		session:  session,
		launcher: NewLauncher(ctx, log),
		state:    NewObservable(MainState{Data: domain.Aggregate{Goals: []domain.Goal{}}}),
		log:      log,
	}
}

func (h *MainHolder) State() MainState { return h.state.Get() }

func (h *MainHolder) Subscribe(fn func(MainState)) func() { return h.state.Subscribe(fn) }

// Initialize restores the session. With no stored id the user is signed out
// and nothing is fetched; a partial identity triggers a fetch.
func (h *MainHolder) Initialize() {
	sess := domain.LoadSession(h.session.Get)

	switch {
	case sess.UserID == "":
		h.state.Set(MainState{Data: domain.Aggregate{Goals: []domain.Goal{}}})
	case sess.Complete():
		h.state.Set(MainState{LoggedIn: true, Data: domain.Aggregate{User: sess.User(), Goals: []domain.Goal{}}})
	default:
		h.state.Update(func(s MainState) MainState {
			s.LoggedIn = true
			s.Data = s.Data.WithUser(sess.User())
			return s
		})
		_ = h.FetchUserData()
	}
}

// FetchUserData refetches the aggregate and refreshes the stored identity.
func (h *MainHolder) FetchUserData() error {
	userID := h.userID()
	if userID == "" {
		return h.fail(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}
	epoch := h.loading()
	h.launcher.Go("fetch_user_data", func(ctx context.Context) {
		h.settle(epoch, h.refetch(ctx, epoch, userID))
	})
	return nil
}

// PrepareAndSubmitGoal builds a pending goal, submits it and refetches.
// The refetch runs whether or not the submit succeeded.
func (h *MainHolder) PrepareAndSubmitGoal(title string, stepTitles []string) error {
	draft, err := domain.DraftFromTitles(title, stepTitles)
	if err != nil {
		return h.fail(err)
	}
	goal, err := draft.Build()
	if err != nil {
		return h.fail(err)
	}
	userID := h.userID()
	if userID == "" {
		return h.fail(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}

	epoch := h.loading()
	h.launcher.Go("submit_goal", func(ctx context.Context) {
		submitErr := h.users.SubmitGoal(ctx, userID, goal)
		fetchErr := h.refetch(ctx, epoch, userID)
		if submitErr != nil {
			h.settle(epoch, submitErr)
			return
		}
		h.settle(epoch, fetchErr)
	})
	return nil
}

// PrepareAndUpdateGoalStatus changes a cached goal's status and refetches.
func (h *MainHolder) PrepareAndUpdateGoalStatus(goalID string, status domain.Status) error {
	parsed, err := domain.ParseStatus(string(status))
	if err != nil {
		return h.fail(err)
	}
	if _, ok := h.state.Get().Data.FindGoal(goalID); !ok {
		return h.fail(&domain.ValidationError{Field: "goalId", Err: domain.ErrGoalNotFound})
	}
	userID := h.userID()
	if userID == "" {
		return h.fail(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}

	epoch := h.loading()
	h.launcher.Go("update_goal_status", func(ctx context.Context) {
		if err := h.users.UpdateGoalStatus(ctx, userID, goalID, parsed); err != nil {
			h.settle(epoch, err)
			return
		}
		h.settle(epoch, h.refetch(ctx, epoch, userID))
	})
	return nil
}

// ToggleStep marks one step locally. promptCompletion reports that every step
// is now done while the goal itself is still pending.
func (h *MainHolder) ToggleStep(goalID string, index int, completed bool) (promptCompletion bool, err error) {
	goal, ok := h.state.Get().Data.FindGoal(goalID)
	if !ok {
		return false, h.fail(&domain.ValidationError{Field: "goalId", Err: domain.ErrGoalNotFound})
	}
	status := domain.StatusPending
	if completed {
		status = domain.StatusCompleted
	}
	updated, err := goal.WithStepStatus(index, status)
	if err != nil {
		return false, h.fail(err)
	}

	h.state.Update(func(s MainState) MainState {
		s.Data = s.Data.WithGoal(updated)
		return s
	})
	return updated.AllStepsCompleted() && !updated.Completed(), nil
}

// ConfirmGoalCompletion completes a goal whose steps are all done.
func (h *MainHolder) ConfirmGoalCompletion(goalID string) error {
	goal, ok := h.state.Get().Data.FindGoal(goalID)
	if !ok {
		return h.fail(&domain.ValidationError{Field: "goalId", Err: domain.ErrGoalNotFound})
	}
	if !goal.AllStepsCompleted() {
		return h.fail(&domain.ValidationError{Field: "steps", Err: domain.ErrStepsPending})
	}
	return h.PrepareAndUpdateGoalStatus(goalID, domain.StatusCompleted)
}

// UpdateProfile edits the display name and replaces the description; an empty
// description clears it. An empty username leaves the name alone.
func (h *MainHolder) UpdateProfile(username, description string) error {
	if username != "" {
		if err := domain.ValidateProfile(username); err != nil {
			return h.fail(err)
		}
	}
	userID := h.userID()
	if userID == "" {
		return h.fail(&domain.ValidationError{Field: "userId", Err: domain.ErrNotLoggedIn})
	}

	epoch := h.loading()
	h.launcher.Go("update_profile", func(ctx context.Context) {
		user, err := h.users.UpdateProfile(ctx, userID, username, description)
		if err != nil {
			h.settle(epoch, err)
			return
		}
		next, ok := h.publish(epoch, func(s MainState) MainState {
			merged := s.Data.User
			merged.ID = user.ID
			if user.Username != "" {
				merged.Username = user.Username
			}
			if user.Email != "" {
				merged.Email = user.Email
			}
			merged.Description = user.Description
			s.Data = s.Data.WithUser(merged)
			return s
		})
		if !ok {
			return
		}
		h.storeIdentity(epoch, next.Data.User)
		h.settle(epoch, nil)
	})
	return nil
}

// Logout clears the session and resets the holder. In-flight intents are
// cancelled and whatever they still return is discarded.
func (h *MainHolder) Logout() error {
	h.sessionMu.Lock()
	h.epoch.Add(1)
	h.launcher.Interrupt()
	err := h.auth.Logout()
	h.sessionMu.Unlock()

	if err != nil {
		return h.fail(err)
	}
	h.state.Set(MainState{Data: domain.Aggregate{Goals: []domain.Goal{}}})
	return nil
}

// Goals returns the cached goals matching query, ordered by mode.
func (h *MainHolder) Goals(query string, mode domain.SortMode) []domain.Goal {
	return domain.FilterGoals(h.state.Get().Data.Goals, query, mode)
}

func (h *MainHolder) Acknowledge() {
	h.state.Update(func(s MainState) MainState {
		if s.Phase == PhaseLoading {
			return s
		}
		s.Phase, s.Err = PhaseIdle, nil
		return s
	})
}

func (h *MainHolder) Wait()  { h.launcher.Wait() }
func (h *MainHolder) Close() { h.launcher.Close() }

func (h *MainHolder) userID() string {
	if id := h.state.Get().Data.User.ID; id != "" {
		return id
	}
	id, _ := h.session.Get(domain.FieldUserID)
	return id
}

// refetch replaces the cached aggregate on success, leaving it as is on failure.
func (h *MainHolder) refetch(ctx context.Context, epoch uint64, userID string) error {
	agg, err := h.users.GetUserData(ctx, userID)
	if err != nil {
		return err
	}
	if agg.User.Username == "" {
		agg.User.Username = domain.DefaultUsername
	}
	if _, ok := h.publish(epoch, func(s MainState) MainState {
		s.LoggedIn = true
		s.Data = agg
		return s
	}); ok {
		h.storeIdentity(epoch, agg.User)
	}
	return nil
}

// storeIdentity writes u to the session unless a logout happened since epoch.
func (h *MainHolder) storeIdentity(epoch uint64, u domain.User) {
	h.sessionMu.Lock()
	defer h.sessionMu.Unlock()

	if h.epoch.Load() != epoch {
		h.log.Debug().Str("user_id", u.ID).Msg("session ended, identity not stored")
		return
	}
	if err := h.session.Set(domain.SessionFromUser(u).IdentityFields()); err != nil {
		h.log.Warn().Err(err).Str("user_id", u.ID).Msg("refresh stored identity")
	}
}

// publish applies fn unless a logout happened since epoch.
func (h *MainHolder) publish(epoch uint64, fn func(MainState) MainState) (MainState, bool) {
	applied := false
	next := h.state.Update(func(s MainState) MainState {
		if h.epoch.Load() != epoch {
			return s
		}
		applied = true
		return fn(s)
	})
	return next, applied
}

// loading marks an intent as started and returns the epoch it belongs to.
func (h *MainHolder) loading() uint64 {
	epoch := h.epoch.Load()
	h.publish(epoch, func(s MainState) MainState {
		s.Phase, s.Err = PhaseLoading, nil
		return s
	})
	return epoch
}

// settle publishes the outcome of an async intent.
func (h *MainHolder) settle(epoch uint64, err error) {
	err = domain.AsError(err)
	h.publish(epoch, func(s MainState) MainState {
		if err != nil {
			s.Phase, s.Err = PhaseError, err
			return s
		}
		s.Phase, s.Err = PhaseSuccess, nil
		return s
	})
}

func (h *MainHolder) fail(err error) error {
	err = domain.AsError(err)
	h.state.Update(func(s MainState) MainState {
		s.Phase, s.Err = PhaseError, err
		return s
	})
	return err
}
