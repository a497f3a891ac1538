// Package repository turns raw API exchanges into domain values and uniform errors.
package repository

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

// AuthRepository implements ports.AuthRepository on top of the API client and
// writes the signed-in identity through to the session store.
type AuthRepository struct {
	client  ports.APIClient
	session ports.SessionStore
	log     zerolog.Logger
}

var _ ports.AuthRepository = (*AuthRepository)(nil)

func NewAuthRepository(client ports.APIClient, session ports.SessionStore, log zerolog.Logger) *AuthRepository {
	return &AuthRepository{client: client, session: session, log: log}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if err := domain.ValidateCredentials(email, password); err != nil {
		return domain.User{}, domain.AsError(err)
	}

	resp, err := r.client.Login(ctx, ports.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		r.log.Warn().Err(err).Str("operation", "login").Msg("login failed")
		return domain.User{}, domain.AsError(err)
	}
	if resp == nil || resp.UserID == "" {
		return domain.User{}, domain.AsError(&domain.MalformedResponseError{Field: "userId"})
	}

	user := userFromLogin(*resp, email)
	user.Password = password

	if err := r.session.Set(domain.SessionFromUser(user).Fields()); err != nil {
		r.log.Error().Err(err).Str("user_id", user.ID).Msg("persist session after login")
		return domain.User{}, domain.AsError(err)
	}

	r.log.Info().Str("user_id", user.ID).Msg("logged in")
	return user, nil
}

func (r *AuthRepository) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if err := domain.ValidateCredentials(email, password); err != nil {
		return "", domain.AsError(err)
	}

	resp, err := r.client.Register(ctx, ports.CredentialsRequest{Email: email, Password: password})
	if err != nil {
		r.log.Warn().Err(err).Str("operation", "register").Msg("registration failed")
		return "", domain.AsError(err)
	}

	msg := ""
	if resp != nil {
		msg = resp.Message
	}
	if msg == "" {
		msg = "registration successful"
	}
	return msg, nil
}

func (r *AuthRepository) Logout() error {
	if err := r.session.Clear(); err != nil {
		return domain.AsError(err)
	}
	r.log.Info().Msg("logged out")
	return nil
}
