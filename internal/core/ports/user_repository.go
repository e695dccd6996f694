package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// UserFilter carries the admin user-list filters. Empty fields are ignored;
// supplied fields are AND-combined. Role is an exact match when set.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    domain.Role
}

// UserRepository defines persistence for accounts.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailExists when the
	// email unique constraint rejects the insert.
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	List(ctx context.Context) ([]domain.User, error)
	Filter(ctx context.Context, filter UserFilter) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}
