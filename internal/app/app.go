// Package app wires the client: session backend, API client, repositories and holders.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/ports"
	"github.com/lifeassist/goals/internal/core/repository"
	"github.com/lifeassist/goals/internal/infrastructure/api"
	"github.com/lifeassist/goals/internal/infrastructure/db/redis"
	"github.com/lifeassist/goals/internal/infrastructure/session"
	"github.com/lifeassist/goals/internal/pkg/config"
	"github.com/lifeassist/goals/internal/viewstate"
)

// App owns every long-lived client component. Build it once per process.
type App struct {
	Session   ports.SessionStore
	Auth      *viewstate.AuthHolder
	Main      *viewstate.MainHolder
	Completed *viewstate.CompletedGoalsHolder

	closers []io.Closer
}

// New builds the client from cfg.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{}

	store, err := a.sessionStore(ctx, cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}
	if cfg.Session.Secret != "" {
		sealed, err := session.NewSealedStore(store, cfg.Session.Secret, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		store = sealed
	}
	a.Session = store

	client, err := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(log.With().Str("component", "api").Logger()),
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	return a.wire(ctx, client, log), nil
}

// NewWith wires holders over an existing client and session store.
func NewWith(ctx context.Context, client ports.APIClient, store ports.SessionStore, log zerolog.Logger) *App {
	a := &App{Session: store}
	return a.wire(ctx, client, log)
}

func (a *App) wire(ctx context.Context, client ports.APIClient, log zerolog.Logger) *App {
	authRepo := repository.NewAuthRepository(client, a.Session, log)
	userRepo := repository.NewUserRepository(client, log)

	a.Auth = viewstate.NewAuthHolder(ctx, authRepo, log)
	a.Main = viewstate.NewMainHolder(ctx, userRepo, authRepo, a.Session, log)
	a.Completed = viewstate.NewCompletedGoalsHolder(ctx, userRepo, a.Session, log)
	return a
}

func (a *App) sessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.SessionStore, error) {
	switch cfg.Session.Backend {
	case config.BackendMemory:
		return session.NewMemoryStore(), nil
	case config.BackendRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client)
		return redis.NewSessionStore(client, cfg.Session.Profile, 0, log), nil
	case config.BackendFile, "":
		path := cfg.Session.Path
		if path == "" {
			path = session.DefaultPath()
		}
		return session.NewFileStore(path, log), nil
	}
	return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
}

// Close stops every holder and releases backend connections.
func (a *App) Close() {
	if a.Auth != nil {
		a.Auth.Close()
	}
	if a.Main != nil {
		a.Main.Close()
	}
	if a.Completed != nil {
		a.Completed.Close()
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}
