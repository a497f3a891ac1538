// Command goalsapi serves the LifeAssist goals API for local development and tests.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/api"
	"github.com/lifeassist/goals/internal/api/store"
	"github.com/lifeassist/goals/internal/infrastructure/config"
	"github.com/lifeassist/goals/internal/infrastructure/db/mongo"
	"github.com/lifeassist/goals/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env != "production",
		Output:  os.Stdout,
		Service: "goalsapi",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store).Msg("open store")
	}
	defer cleanup()

	e := api.NewRouter(st, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("goals api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("goals api stopped")
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, func(), error) {
	if cfg.Store != config.StoreMongo {
		return store.NewMemory(), func() {}, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "goalsapi"})
	if err != nil {
		return nil, nil, err
	}
	s := mongo.NewAccountStore(db)
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	return s, func() { _ = client.Disconnect(context.Background()) }, nil
}
