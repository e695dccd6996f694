package ports

import (
	"context"

	"github.com/ratewise/store-ratings/internal/core/domain"
)

// DashboardStats are the platform-wide counters on the admin console.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// StoreSummary is a store annotated with its computed average, as listed on
// admin views.
type StoreSummary struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	AverageRating string     `json:"averageRating"`
	Owner         *OwnerInfo `json:"owner,omitempty"`
}

// DashboardStore is a store row as the admin dashboard renders it. The
// dashboard serializes the average under "rating"; the filtered /admin/stores
// listing keeps StoreSummary's "averageRating" key. The client reads the two
// views with different keys, so they cannot share one type.
type DashboardStore struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	AverageRating string `json:"rating"`
}

// DashboardResult bundles everything the admin dashboard renders in one
// response. Full lists, no pagination: admin-console scale.
type DashboardResult struct {
	Stats  DashboardStats         `json:"stats"`
	Users  []domain.PublicProfile `json:"users"`
	Stores []DashboardStore       `json:"stores"`
}

// UserDetail is the admin view of one account. AverageRating is present only
// when the account owns a store (role OWNER).
type UserDetail struct {
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Address       string      `json:"address"`
	Role          domain.Role `json:"role"`
	AverageRating string      `json:"rating,omitempty"`
}

// AdminService defines the admin console operations.
type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardResult, error)
	// CreateUser runs the same validation as self-registration but is only
	// reachable through the admin route group.
	CreateUser(ctx context.Context, input RegisterInput) (*domain.User, error)
	FilterUsers(ctx context.Context, filter UserFilter) ([]domain.PublicProfile, error)
	FilterStores(ctx context.Context, filter StoreFilter) ([]StoreSummary, error)
	UserDetails(ctx context.Context, id uint) (*UserDetail, error)
}
