package ports

import (
	"context"

	"github.com/lifeassist/goals/internal/core/domain"
)

// AuthRepository signs users in and out against the remote API.
// Every failure is returned as *domain.Error.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	// Register returns the server's confirmation message. It never signs the user in.
	Register(ctx context.Context, email, password string) (string, error)
	Logout() error
}
