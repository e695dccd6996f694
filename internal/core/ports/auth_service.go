package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// RegisterInput carries a self-service or admin-created account request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     string
}

// LoginInput carries login credentials plus the role the client claims to be
// signing in as; a mismatch with the stored role is rejected.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// AuthService defines registration, login and session introspection.
type AuthService interface {
	// Register validates and creates an account, returning the new user's
	// id. It does not log the user in.
	Register(ctx context.Context, input RegisterInput) (uint, error)
	// Login checks credentials and mints a signed session token. The user's
	// public profile accompanies the token; the hash never does.
	Login(ctx context.Context, input LoginInput) (*domain.User, string, error)
	// Me resolves the authenticated user from a verified token's subject id.
	Me(ctx context.Context, userID uint) (*domain.User, error)
	// UpdatePassword re-authenticates with the old password and stores a
	// new hash after re-running the registration complexity rule.
	UpdatePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}
